// Package simulation orchestrates the Monte Carlo run: trajectory sampling,
// per-scenario cash-flow synthesis, and indicator evaluation.
package simulation

import (
	"runtime"
	"sync"

	"retrofit-risk/internal/finance"
	"retrofit-risk/internal/market"
	"retrofit-risk/internal/model"
)

// Scenario-count bounds and defaults for one run.
const (
	DefaultNSims = 10000
	MinNSims     = 1000
	MaxNSims     = 100000
	DefaultSeed  = 42
)

// Options controls one simulation run.
type Options struct {
	NSims int
	Seed  uint64
}

// DefaultOptions returns the canonical 10,000-scenario seeded run.
func DefaultOptions() Options {
	return Options{NSims: DefaultNSims, Seed: DefaultSeed}
}

// Engine runs Monte Carlo risk assessments. It holds no per-request state;
// one Engine may serve concurrent requests.
type Engine struct {
	// Workers bounds the scenario-evaluation parallelism. 0 means GOMAXPROCS.
	Workers int
}

func New() *Engine { return &Engine{} }

// Run samples n market trajectories and evaluates the five indicators per
// scenario. Sampling is single-stream and seeded, so identical (inputs,
// forecasts, options) produce identical results; scenario evaluation fans out
// across workers that each write only their own output slots.
func (e *Engine) Run(inputs model.ProjectInputs, forecasts model.MarketForecasts, opts Options) (*Result, error) {
	if err := inputs.Validate(); err != nil {
		return nil, err
	}
	if opts.NSims == 0 {
		opts.NSims = DefaultNSims
	}
	if opts.NSims < MinNSims || opts.NSims > MaxNSims {
		return nil, model.InvalidInputs("n_sims must be in [%d, %d], got %d", MinNSims, MaxNSims, opts.NSims)
	}

	params, err := market.BuildDistributions(forecasts, inputs.ProjectLifetime)
	if err != nil {
		return nil, err
	}
	samples := market.Draw(params, opts.NSims, opts.Seed)

	res := newResult(opts.NSims, inputs.ProjectLifetime, params)
	res.MedianDiscount = median(samples.Discount)

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > opts.NSims {
		workers = opts.NSims
	}

	var wg sync.WaitGroup
	chunk := (opts.NSims + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > opts.NSims {
			hi = opts.NSims
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				evaluateScenario(res, inputs, samples, i)
			}
		}(lo, hi)
	}
	wg.Wait()

	// The sample matrices are dead past this point; only the indicator
	// vectors and the distribution parameters travel onward.
	return res, nil
}

// evaluateScenario computes all five indicators for scenario i. A numeric
// failure inside one scenario leaves NaN in that scenario's slots and never
// poisons the rest of the ensemble.
func evaluateScenario(res *Result, inputs model.ProjectInputs, samples *market.Samples, i int) {
	defer func() {
		// Result vectors are pre-filled with NaN, so a panicking scenario
		// simply keeps its NaN slots.
		_ = recover()
	}()

	loan := finance.LoanTerms{}
	if inputs.HasLoan() {
		loan = finance.LoanTerms{Amount: inputs.LoanAmount, TermYears: inputs.LoanTerm}
	}

	flows := finance.CashFlows(
		inputs.CapEx, inputs.AnnualEnergySavings, inputs.AnnualMaintenanceCost,
		inputs.ProjectLifetime,
		samples.Electricity[i], samples.Inflation[i], samples.InterestRate[i],
		loan,
	)
	if finance.Degenerate(flows) {
		return
	}
	r := samples.Discount[i]

	res.NPV[i] = finance.NPV(r, flows)
	res.IRR[i] = finance.IRR(flows)
	res.ROI[i] = finance.ROI(flows)
	res.PBP[i] = finance.Payback(flows)
	res.DPP[i] = finance.DiscountedPayback(r, flows)
}
