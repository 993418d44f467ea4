package model

// MaxProjectLifetime caps the evaluation horizon; the embedded forecast
// tables carry 30 years of data.
const MaxProjectLifetime = 30

// ProjectInputs defines the economic parameters of one retrofit project.
// Units:
// - CapEx, AnnualMaintenanceCost, LoanAmount: €
// - AnnualEnergySavings: kWh/year
// - ProjectLifetime, LoanTerm: years
//
// The loan, when present, is repaid with constant principal over LoanTerm
// years; interest accrues on the declining balance.
type ProjectInputs struct {
	CapEx                 float64
	AnnualMaintenanceCost float64
	AnnualEnergySavings   float64
	ProjectLifetime       int
	LoanAmount            float64
	LoanTerm              int
}

// NewProjectInputs validates and returns the inputs record.
func NewProjectInputs(capex, maintenance, savings float64, lifetime int, loanAmount float64, loanTerm int) (ProjectInputs, error) {
	p := ProjectInputs{
		CapEx:                 capex,
		AnnualMaintenanceCost: maintenance,
		AnnualEnergySavings:   savings,
		ProjectLifetime:       lifetime,
		LoanAmount:            loanAmount,
		LoanTerm:              loanTerm,
	}
	if err := p.Validate(); err != nil {
		return ProjectInputs{}, err
	}
	return p, nil
}

func (p ProjectInputs) Validate() error {
	if p.CapEx <= 0 {
		return InvalidInputs("capex must be positive, got %v", p.CapEx)
	}
	if p.AnnualMaintenanceCost < 0 {
		return InvalidInputs("annual_maintenance_cost must be non-negative, got %v", p.AnnualMaintenanceCost)
	}
	if p.AnnualEnergySavings <= 0 {
		return InvalidInputs("annual_energy_savings must be positive, got %v", p.AnnualEnergySavings)
	}
	if p.ProjectLifetime < 1 || p.ProjectLifetime > MaxProjectLifetime {
		return InvalidInputs("project_lifetime must be in [1, %d], got %d", MaxProjectLifetime, p.ProjectLifetime)
	}
	if p.LoanAmount < 0 {
		return InvalidInputs("loan_amount must be non-negative, got %v", p.LoanAmount)
	}
	if p.LoanAmount > p.CapEx {
		return InvalidInputs("loan_amount (%v) cannot exceed capex (%v)", p.LoanAmount, p.CapEx)
	}
	if p.LoanTerm < 0 {
		return InvalidInputs("loan_term must be non-negative, got %d", p.LoanTerm)
	}
	if p.LoanTerm > p.ProjectLifetime {
		return InvalidInputs("loan_term (%d) cannot exceed project_lifetime (%d)", p.LoanTerm, p.ProjectLifetime)
	}
	if p.LoanAmount > 0 && p.LoanTerm == 0 {
		return InvalidInputs("loan_term must be positive when loan_amount > 0")
	}
	return nil
}

// HasLoan reports whether the project carries debt financing.
func (p ProjectInputs) HasLoan() bool {
	return p.LoanAmount > 0 && p.LoanTerm > 0
}

// Equity is the year-0 out-of-pocket outlay.
func (p ProjectInputs) Equity() float64 {
	return p.CapEx - p.LoanAmount
}
