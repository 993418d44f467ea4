package model

// ScenarioPath is the three-point forecast of one market variable: for each
// year, (Pessimistic, Moderate, Optimistic) are the P10/P50/P90 of that year's
// marginal distribution, ordered by value (pessimistic ≤ moderate ≤ optimistic
// at every year). Shorter paths are extended by repeating the final element;
// longer paths are truncated to the project horizon.
type ScenarioPath struct {
	Pessimistic []float64 `yaml:"pessimistic" json:"pessimistic"`
	Moderate    []float64 `yaml:"moderate" json:"moderate"`
	Optimistic  []float64 `yaml:"optimistic" json:"optimistic"`
}

// pathAt returns the year-t value of series with repeat-last padding.
func pathAt(series []float64, t int) float64 {
	if t >= len(series) {
		return series[len(series)-1]
	}
	return series[t]
}

// PadTo returns the three series padded or truncated to length n.
func (s ScenarioPath) PadTo(n int) (pess, mod, opt []float64) {
	pess = make([]float64, n)
	mod = make([]float64, n)
	opt = make([]float64, n)
	for t := 0; t < n; t++ {
		pess[t] = pathAt(s.Pessimistic, t)
		mod[t] = pathAt(s.Moderate, t)
		opt[t] = pathAt(s.Optimistic, t)
	}
	return pess, mod, opt
}

func (s ScenarioPath) validate(name string, requirePositive bool) error {
	if len(s.Pessimistic) == 0 || len(s.Moderate) == 0 || len(s.Optimistic) == 0 {
		return InvalidForecast("%s: all three scenario paths must be non-empty", name)
	}
	n := len(s.Pessimistic)
	if len(s.Moderate) > n {
		n = len(s.Moderate)
	}
	if len(s.Optimistic) > n {
		n = len(s.Optimistic)
	}
	for t := 0; t < n; t++ {
		pess := pathAt(s.Pessimistic, t)
		mod := pathAt(s.Moderate, t)
		opt := pathAt(s.Optimistic, t)
		if !(pess <= mod && mod <= opt) {
			return InvalidForecast("%s: year %d triple (%v, %v, %v) is not ordered pessimistic ≤ moderate ≤ optimistic",
				name, t, pess, mod, opt)
		}
		if requirePositive && pess <= 0 {
			return InvalidForecast("%s: year %d value %v must be positive", name, t, pess)
		}
	}
	return nil
}

// MarketForecasts bundles the three-scenario paths of every market variable.
// Rates (inflation, interest, discount) are decimal fractions; electricity
// prices are €/kWh. The tables are loaded once at startup and never mutated;
// they may be shared across requests without synchronization.
type MarketForecasts struct {
	Inflation        ScenarioPath `yaml:"inflation" json:"inflation"`
	ElectricityPrice ScenarioPath `yaml:"electricity_price" json:"electricity_price"`
	InterestRate     ScenarioPath `yaml:"interest_rate" json:"interest_rate"`
	DiscountRate     ScenarioPath `yaml:"discount_rate" json:"discount_rate"`
}

// Validate checks scenario ordering and electricity positivity. The startup
// loader calls it, so a failure prevents service start; BuildDistributions
// checks it again on every run.
func (f MarketForecasts) Validate() error {
	if err := f.Inflation.validate("inflation", false); err != nil {
		return err
	}
	if err := f.ElectricityPrice.validate("electricity_price", true); err != nil {
		return err
	}
	if err := f.InterestRate.validate("interest_rate", false); err != nil {
		return err
	}
	if err := f.DiscountRate.validate("discount_rate", false); err != nil {
		return err
	}
	return nil
}
