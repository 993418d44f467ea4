package report

import (
	"fmt"
	"math"
	"strconv"

	"retrofit-risk/internal/analysis"
	"retrofit-risk/internal/finance"
	"retrofit-risk/internal/model"
	"retrofit-risk/internal/simulation"
)

// indicatorLabels are the human-readable x-axis labels of the distribution
// charts. IRR and ROI are binned as decimal fractions.
var indicatorLabels = map[model.Indicator]string{
	model.NPV: "Net Present Value (€)",
	model.IRR: "Internal Rate of Return (fraction)",
	model.ROI: "Return on Investment (fraction)",
	model.PBP: "Payback Period (years)",
	model.DPP: "Discounted Payback Period (years)",
}

// Build assembles the audience-shaped envelope from a simulation result. The
// indicators slice restricts which indicators appear in percentiles, point
// forecasts and histograms; the success probabilities are always emitted on
// professional envelopes because their underlying indicators are always
// computed.
func Build(inputs model.ProjectInputs, res *simulation.Result, level OutputLevel, indicators []model.Indicator) (*Envelope, error) {
	if len(indicators) == 0 {
		indicators = model.AllIndicators()
	}

	env := &Envelope{
		PointForecasts: map[string]*float64{},
		Percentiles:    map[string]map[string]float64{},
	}

	lowConfidence := false
	for _, ind := range indicators {
		vec := res.Vector(ind)
		env.Percentiles[string(ind)] = analysis.Percentiles(vec)
		env.PointForecasts[string(ind)] = nullableFloat(analysis.Median(vec))
		if len(analysis.Finite(vec)) < analysis.MinFiniteForConfidence {
			lowConfidence = true
		}
	}

	names := make([]string, len(indicators))
	for i, ind := range indicators {
		names[i] = string(ind)
	}
	env.Metadata = Metadata{
		NSims:                 res.NSims,
		ProjectLifetime:       inputs.ProjectLifetime,
		CapEx:                 inputs.CapEx,
		AnnualMaintenanceCost: inputs.AnnualMaintenanceCost,
		AnnualEnergySavings:   inputs.AnnualEnergySavings,
		LoanAmount:            inputs.LoanAmount,
		LoanTerm:              inputs.LoanTerm,
		OutputLevel:           string(level),
		IndicatorsRequested:   names,
		LowConfidence:         lowConfidence,
	}

	if inputs.HasLoan() {
		// Reported loan terms use the median market rate: the annuity-style
		// yearly payment plus the rate as a percentage.
		rate := res.Params.InterestRate.Mu[0]
		payment := round(finance.AnnuityPayment(rate, inputs.LoanTerm, inputs.LoanAmount), 2)
		percent := round(rate*100, 2)
		env.Metadata.AnnualLoanPayment = &payment
		env.Metadata.LoanRatePercent = &percent
	}

	switch level {
	case Private:
		buildPrivate(env, inputs, res)
	case Professional:
		buildProfessional(env, inputs, res, indicators)
	default:
		return nil, model.InvalidInputs("output_level must be %q or %q, got %q", Private, Professional, level)
	}
	return env, nil
}

// buildPrivate adds the homeowner extras: intuitive point forecasts and the
// median-scenario cash-flow timeline. Probabilities and chart metadata are
// deliberately absent at this level.
func buildPrivate(env *Envelope, inputs model.ProjectInputs, res *simulation.Result) {
	tl := analysis.BuildTimeline(inputs, res.Params)

	monthly := round(tl.MonthlyAvgSavings(), 2)
	success := round(analysis.ProbabilityPositive(res.NPV), 3)
	env.PointForecasts["MonthlyAvgSavings"] = &monthly
	env.PointForecasts["SuccessRate"] = &success

	data := &CashFlowData{
		Years:              tl.Years,
		InitialInvestment:  tl.InitialInvestment,
		AnnualInflows:      tl.AnnualInflows,
		AnnualOutflows:     tl.AnnualOutflows,
		AnnualNetCashFlow:  tl.AnnualNet,
		CumulativeCashFlow: tl.Cumulative,
		BreakevenYear:      tl.BreakevenYear,
	}
	if inputs.HasLoan() {
		term := inputs.LoanTerm
		data.LoanTerm = &term
	}
	env.Metadata.CashFlowData = data
}

// buildProfessional adds the consultant extras: success probabilities,
// histogram chart metadata, and the realized median discount rate.
func buildProfessional(env *Envelope, inputs model.ProjectInputs, res *simulation.Result, indicators []model.Indicator) {
	T := inputs.ProjectLifetime
	env.Probabilities = map[string]float64{
		"Pr(NPV > 0)":                   round(analysis.ProbabilityPositive(res.NPV), 4),
		fmt.Sprintf("Pr(PBP < %dy)", T): round(analysis.ProbabilityBelow(res.PBP, float64(T)), 4),
		fmt.Sprintf("Pr(DPP < %dy)", T): round(analysis.ProbabilityBelow(res.DPP, float64(T)), 4),
	}

	charts := make(map[string]*IndicatorChart, len(indicators))
	for _, ind := range indicators {
		hist := analysis.BuildHistogram(res.Vector(ind))
		if hist == nil {
			continue
		}
		charts[string(ind)] = &IndicatorChart{
			Bins: ChartBins{
				Centers: hist.Centers,
				Counts:  hist.Counts,
				Edges:   hist.Edges,
			},
			Statistics: ChartStats{
				Mean: round(hist.Mean, 4),
				Std:  round(hist.Std, 4),
				P10:  round(hist.P10, 4),
				P50:  round(hist.P50, 4),
				P90:  round(hist.P90, 4),
			},
			ChartConfig: ChartText{
				XLabel: indicatorLabels[ind],
				YLabel: "Frequency (Number of Scenarios)",
				Title:  fmt.Sprintf("%s Distribution (%s Simulations)", ind, groupThousands(res.NSims)),
			},
		}
	}
	env.Metadata.ChartMetadata = charts

	disc := round(res.MedianDiscount, 4)
	env.Metadata.DiscountRate = &disc
}

// nullableFloat maps NaN to a JSON null.
func nullableFloat(x float64) *float64 {
	if math.IsNaN(x) {
		return nil
	}
	return &x
}

func round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scale := math.Pow(10, float64(digits))
	return math.Round(x*scale) / scale
}

// groupThousands formats n with comma separators ("10,000").
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
