// Package report shapes raw simulation results into the audience-specific
// response envelopes. The wire format is NaN-free: NaN percentiles are
// omitted from their maps and NaN scalars serialize as null.
package report

import "retrofit-risk/internal/model"

// OutputLevel selects the envelope audience.
type OutputLevel string

const (
	// Private targets individual homeowners: point forecasts, percentiles,
	// and a representative cash-flow timeline.
	Private OutputLevel = "private"
	// Professional targets energy consultants: point forecasts, percentiles,
	// success probabilities, and histogram chart metadata.
	Professional OutputLevel = "professional"
)

// ParseOutputLevel resolves a request's output_level string.
func ParseOutputLevel(s string) (OutputLevel, error) {
	switch OutputLevel(s) {
	case Private:
		return Private, nil
	case Professional:
		return Professional, nil
	}
	return "", model.InvalidInputs("output_level must be %q or %q, got %q", Private, Professional, s)
}

// Envelope is the response body of one risk assessment.
type Envelope struct {
	PointForecasts map[string]*float64           `json:"point_forecasts"`
	Percentiles    map[string]map[string]float64 `json:"percentiles"`
	Probabilities  map[string]float64            `json:"probabilities,omitempty"`
	Metadata       Metadata                      `json:"metadata"`
}

// Metadata echoes the request parameters and carries the audience-specific
// payloads: CashFlowData for private envelopes, ChartMetadata for
// professional ones.
type Metadata struct {
	NSims                 int      `json:"n_sims"`
	ProjectLifetime       int      `json:"project_lifetime"`
	CapEx                 float64  `json:"capex"`
	AnnualMaintenanceCost float64  `json:"annual_maintenance_cost"`
	AnnualEnergySavings   float64  `json:"annual_energy_savings"`
	LoanAmount            float64  `json:"loan_amount"`
	LoanTerm              int      `json:"loan_term"`
	OutputLevel           string   `json:"output_level"`
	IndicatorsRequested   []string `json:"indicators_requested"`

	AnnualLoanPayment *float64 `json:"annual_loan_payment,omitempty"`
	LoanRatePercent   *float64 `json:"loan_rate_percent,omitempty"`
	DiscountRate      *float64 `json:"discount_rate,omitempty"`

	LowConfidence bool `json:"low_confidence,omitempty"`

	CashFlowData  *CashFlowData             `json:"cash_flow_data,omitempty"`
	ChartMetadata map[string]*IndicatorChart `json:"chart_metadata,omitempty"`
}

// CashFlowData is the private-envelope cash-flow timeline, ready for a
// client-side chart. Arrays span years 0..T.
type CashFlowData struct {
	Years              []int     `json:"years"`
	InitialInvestment  float64   `json:"initial_investment"`
	AnnualInflows      []float64 `json:"annual_inflows"`
	AnnualOutflows     []float64 `json:"annual_outflows"`
	AnnualNetCashFlow  []float64 `json:"annual_net_cash_flow"`
	CumulativeCashFlow []float64 `json:"cumulative_cash_flow"`
	BreakevenYear      *int      `json:"breakeven_year"`
	LoanTerm           *int      `json:"loan_term"`
}

// IndicatorChart is one indicator's histogram descriptor for professional
// envelopes.
type IndicatorChart struct {
	Bins        ChartBins  `json:"bins"`
	Statistics  ChartStats `json:"statistics"`
	ChartConfig ChartText  `json:"chart_config"`
}

type ChartBins struct {
	Centers []float64 `json:"centers"`
	Counts  []int     `json:"counts"`
	Edges   []float64 `json:"edges"`
}

type ChartStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	P10  float64 `json:"P10"`
	P50  float64 `json:"P50"`
	P90  float64 `json:"P90"`
}

type ChartText struct {
	XLabel string `json:"xlabel"`
	YLabel string `json:"ylabel"`
	Title  string `json:"title"`
}
