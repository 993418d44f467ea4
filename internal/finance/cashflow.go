// Package finance implements the cash-flow and indicator kernel: yearly net
// cash-flow synthesis with an optional constant-principal loan overlay, and
// the five financial indicators evaluated on such a series. All functions are
// pure; NaN is the only infeasibility sentinel.
package finance

// LoanTerms describes a constant-principal loan drawn at t = 0. Equal
// principal is repaid each year over TermYears; interest accrues on the
// declining balance at that year's sampled rate.
type LoanTerms struct {
	Amount    float64
	TermYears int
}

// CashFlows builds the net cash-flow series of one scenario.
//
// The result has length lifetime+1. Index 0 is the equity outflow
// −(capex − loan amount); index t ∈ [1, lifetime] is the operating surplus of
// year t minus that year's debt service. Maintenance is inflated by the
// cumulative inflation from project start through year t. electricity,
// inflation and interest are year-indexed with len ≥ lifetime; interest is
// consulted only while the loan is outstanding.
func CashFlows(capex, annualEnergySavings, annualMaintenance float64, lifetime int,
	electricity, inflation, interest []float64, loan LoanTerms) []float64 {

	flows := make([]float64, lifetime+1)
	flows[0] = -(capex - loan.Amount)

	var principal float64
	if loan.Amount > 0 && loan.TermYears > 0 {
		principal = loan.Amount / float64(loan.TermYears)
	}
	outstanding := loan.Amount
	cumInflation := 1.0

	for t := 1; t <= lifetime; t++ {
		cumInflation *= 1 + inflation[t-1]
		operating := annualEnergySavings*electricity[t-1] - annualMaintenance*cumInflation

		debtService := 0.0
		if principal > 0 && t <= loan.TermYears {
			debtService = principal + outstanding*interest[t-1]
			outstanding -= principal
		}

		flows[t] = operating - debtService
	}
	return flows
}

// Degenerate reports whether a series carries no information past the initial
// outlay: shorter than two entries, or zero in every operating year. All five
// indicators are NaN for such a series.
func Degenerate(flows []float64) bool {
	if len(flows) < 2 {
		return true
	}
	for _, f := range flows[1:] {
		if f != 0 {
			return false
		}
	}
	return true
}

// AnnuityPayment is the constant yearly payment that amortizes principal over
// years at rate (fraction). Used for reporting only; the simulation kernel
// amortizes with constant principal instead.
func AnnuityPayment(rate float64, years int, principal float64) float64 {
	if years <= 0 {
		return 0
	}
	if rate == 0 {
		return principal / float64(years)
	}
	pow := 1.0
	for i := 0; i < years; i++ {
		pow *= 1 + rate
	}
	return principal * rate * pow / (pow - 1)
}
