package market

import (
	"math"

	"retrofit-risk/internal/model"
)

// Z90 is the inverse standard-normal CDF at 0.9. The pessimistic→optimistic
// spread of a forecast triple covers the central 80% of the distribution, so
// sigma = (P90 − P10) / (2·Z90).
const Z90 = 1.2815515655446004

// minSigma guards against zero or negative spreads in degenerate forecasts.
const minSigma = 1e-12

// NormalParams holds per-year Normal(Mu[t], Sigma[t]) sampling parameters.
type NormalParams struct {
	Mu    []float64
	Sigma []float64
}

// DistributionParams carries the year-resolved sampling parameters derived
// from the three-scenario forecasts. ElectricityLog is parameterized in
// log-space: a sample is exp(Normal(Mu[t], Sigma[t])), which keeps prices
// positive and reflects multiplicative price dynamics.
type DistributionParams struct {
	Inflation      NormalParams
	InterestRate   NormalParams
	Discount       NormalParams
	ElectricityLog NormalParams
	Horizon        int
}

// MedianElectricity returns the year-t median price, exp(mu_ln[t]).
func (p *DistributionParams) MedianElectricity(t int) float64 {
	return math.Exp(p.ElectricityLog.Mu[t])
}

func normalFromTriple(pess, mod, opt []float64) NormalParams {
	n := len(mod)
	mu := make([]float64, n)
	sigma := make([]float64, n)
	for t := 0; t < n; t++ {
		mu[t] = mod[t]
		s := (opt[t] - pess[t]) / (2 * Z90)
		if s < minSigma {
			s = minSigma
		}
		sigma[t] = s
	}
	return NormalParams{Mu: mu, Sigma: sigma}
}

func logNormalFromTriple(pess, mod, opt []float64) NormalParams {
	n := len(mod)
	mu := make([]float64, n)
	sigma := make([]float64, n)
	for t := 0; t < n; t++ {
		mu[t] = math.Log(mod[t])
		s := (math.Log(opt[t]) - math.Log(pess[t])) / (2 * Z90)
		if s < minSigma {
			s = minSigma
		}
		sigma[t] = s
	}
	return NormalParams{Mu: mu, Sigma: sigma}
}

// BuildDistributions converts the three-scenario forecasts into per-year
// sampling parameters over the project horizon. Paths shorter than the
// horizon repeat their final element; longer paths are truncated. The
// discount triple is consumed as a scalar (year 0) and broadcast to the
// horizon. Malformed forecasts yield an InvalidForecast error.
func BuildDistributions(f model.MarketForecasts, projectLifetime int) (*DistributionParams, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if projectLifetime < 1 || projectLifetime > model.MaxProjectLifetime {
		return nil, model.InvalidInputs("project_lifetime must be in [1, %d], got %d", model.MaxProjectLifetime, projectLifetime)
	}
	T := projectLifetime

	inflPess, inflMod, inflOpt := f.Inflation.PadTo(T)
	ratePess, rateMod, rateOpt := f.InterestRate.PadTo(T)
	elecPess, elecMod, elecOpt := f.ElectricityPrice.PadTo(T)

	// Discount is a scalar triple: broadcast year 0 across the horizon.
	discPess, discMod, discOpt := f.DiscountRate.PadTo(1)
	discPessT := make([]float64, T)
	discModT := make([]float64, T)
	discOptT := make([]float64, T)
	for t := 0; t < T; t++ {
		discPessT[t] = discPess[0]
		discModT[t] = discMod[0]
		discOptT[t] = discOpt[0]
	}

	return &DistributionParams{
		Inflation:      normalFromTriple(inflPess, inflMod, inflOpt),
		InterestRate:   normalFromTriple(ratePess, rateMod, rateOpt),
		Discount:       normalFromTriple(discPessT, discModT, discOptT),
		ElectricityLog: logNormalFromTriple(elecPess, elecMod, elecOpt),
		Horizon:        T,
	}, nil
}
