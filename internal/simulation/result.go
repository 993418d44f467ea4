package simulation

import (
	"math"
	"sort"

	"retrofit-risk/internal/market"
	"retrofit-risk/internal/model"
)

// Result is the raw outcome of one Monte Carlo run: one value per scenario
// for each indicator, NaN marking infeasible scenarios. The sampled market
// matrices are not retained; the distribution parameters are, so the
// aggregation layer can reconstruct the median (P50) trajectories.
type Result struct {
	NPV []float64
	IRR []float64
	ROI []float64
	PBP []float64
	DPP []float64

	NSims          int
	Lifetime       int
	MedianDiscount float64
	Params         *market.DistributionParams
}

func newResult(n, lifetime int, params *market.DistributionParams) *Result {
	res := &Result{
		NPV:      nanVector(n),
		IRR:      nanVector(n),
		ROI:      nanVector(n),
		PBP:      nanVector(n),
		DPP:      nanVector(n),
		NSims:    n,
		Lifetime: lifetime,
		Params:   params,
	}
	return res
}

func nanVector(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = math.NaN()
	}
	return v
}

// Vector returns the per-scenario values of one indicator.
func (r *Result) Vector(ind model.Indicator) []float64 {
	switch ind {
	case model.NPV:
		return r.NPV
	case model.IRR:
		return r.IRR
	case model.ROI:
		return r.ROI
	case model.PBP:
		return r.PBP
	case model.DPP:
		return r.DPP
	}
	return nil
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
