package analysis

import (
	"retrofit-risk/internal/market"
	"retrofit-risk/internal/model"
)

// Timeline is the single representative cash-flow series shown to private
// users: the deterministic "median scenario" with every market variable fixed
// at its P50 trajectory. All arrays span years 0..T; year 0 carries the
// equity outflow and no inflows.
type Timeline struct {
	Years             []int
	InitialInvestment float64
	AnnualInflows     []float64
	AnnualOutflows    []float64
	AnnualNet         []float64
	Cumulative        []float64
	// BreakevenYear is the first year the cumulative position turns
	// non-negative; nil when the project never breaks even in horizon.
	BreakevenYear *int
}

// BuildTimeline runs the cash-flow kernel once on the median trajectories:
// electricity at exp(μ_ln[t]), inflation and interest at μ[t]. Debt service
// follows the same constant-principal schedule the simulation uses.
func BuildTimeline(inputs model.ProjectInputs, params *market.DistributionParams) *Timeline {
	T := inputs.ProjectLifetime

	electricity := make([]float64, T)
	for t := 0; t < T; t++ {
		electricity[t] = params.MedianElectricity(t)
	}
	inflation := params.Inflation.Mu
	interest := params.InterestRate.Mu

	tl := &Timeline{
		Years:             make([]int, T+1),
		InitialInvestment: inputs.Equity(),
		AnnualInflows:     make([]float64, T+1),
		AnnualOutflows:    make([]float64, T+1),
		AnnualNet:         make([]float64, T+1),
		Cumulative:        make([]float64, T+1),
	}

	tl.AnnualOutflows[0] = inputs.Equity()
	tl.AnnualNet[0] = -inputs.Equity()
	tl.Cumulative[0] = -inputs.Equity()

	var principal float64
	if inputs.HasLoan() {
		principal = inputs.LoanAmount / float64(inputs.LoanTerm)
	}
	outstanding := inputs.LoanAmount
	cumInflation := 1.0

	for t := 1; t <= T; t++ {
		tl.Years[t] = t
		cumInflation *= 1 + inflation[t-1]

		savings := inputs.AnnualEnergySavings * electricity[t-1]
		maintenance := inputs.AnnualMaintenanceCost * cumInflation

		debtService := 0.0
		if principal > 0 && t <= inputs.LoanTerm {
			debtService = principal + outstanding*interest[t-1]
			outstanding -= principal
		}

		tl.AnnualInflows[t] = savings
		tl.AnnualOutflows[t] = maintenance + debtService
		tl.AnnualNet[t] = savings - maintenance - debtService
		tl.Cumulative[t] = tl.Cumulative[t-1] + tl.AnnualNet[t]
	}

	for t := 0; t <= T; t++ {
		if tl.Cumulative[t] >= 0 {
			year := t
			tl.BreakevenYear = &year
			break
		}
	}
	return tl
}

// MonthlyAvgSavings averages the median-scenario energy savings over the
// project's months: Σ savings[t] / (12·T). The divisor is the documented
// definition; it is intentionally not adjusted further.
func (tl *Timeline) MonthlyAvgSavings() float64 {
	total := 0.0
	for _, s := range tl.AnnualInflows {
		total += s
	}
	months := 12 * (len(tl.Years) - 1)
	if months == 0 {
		return 0
	}
	return total / float64(months)
}
