package market

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Safety clamps applied element-wise after sampling. They keep pathological
// tails out of the present-value math without distorting the bulk of the
// distribution.
const (
	minInflation   = -0.5
	minInterest    = -0.5
	minDiscount    = -0.99 // keeps 1+r away from zero in discounting
	minElectricity = 1e-9
)

// Samples is the bundle of market trajectories consumed by the cash-flow
// layer. Matrices are scenario-major: Inflation[i][t] is year t+1 of scenario
// i. Discount is constant within a scenario, so it is held as one value per
// scenario rather than a replicated N×T matrix; downstream code reads only
// that value.
type Samples struct {
	Inflation    [][]float64
	InterestRate [][]float64
	Electricity  [][]float64
	Discount     []float64
	N            int
	Horizon      int
}

// Draw samples n independent market trajectories from params.
//
// The generator is a PCG source (golang.org/x/exp/rand) seeded with seed and
// consumed through gonum's distuv.Normal, in a fixed order: inflation,
// interest, discount, electricity. Identical (params, n, seed) therefore
// produce identical samples on every platform.
func Draw(params *DistributionParams, n int, seed uint64) *Samples {
	src := rand.NewSource(seed)
	s := &Samples{N: n, Horizon: params.Horizon}
	s.Inflation = drawMatrix(params.Inflation, n, params.Horizon, src, minInflation, false)
	s.InterestRate = drawMatrix(params.InterestRate, n, params.Horizon, src, minInterest, false)
	s.Discount = drawVector(params.Discount, n, src, minDiscount)
	s.Electricity = drawMatrix(params.ElectricityLog, n, params.Horizon, src, minElectricity, true)
	return s
}

func drawMatrix(p NormalParams, n, horizon int, src rand.Source, floor float64, exponentiate bool) [][]float64 {
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, horizon)
		for t := 0; t < horizon; t++ {
			v := distuv.Normal{Mu: p.Mu[t], Sigma: p.Sigma[t], Src: src}.Rand()
			if exponentiate {
				v = math.Exp(v)
			}
			if v < floor {
				v = floor
			}
			row[t] = v
		}
		out[i] = row
	}
	return out
}

// drawVector draws one value per scenario from the year-0 parameters.
func drawVector(p NormalParams, n int, src rand.Source, floor float64) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v := distuv.Normal{Mu: p.Mu[0], Sigma: p.Sigma[0], Src: src}.Rand()
		if v < floor {
			v = floor
		}
		out[i] = v
	}
	return out
}
