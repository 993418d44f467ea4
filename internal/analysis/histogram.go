package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// HistogramBins is the fixed bin count of every distribution chart.
const HistogramBins = 30

// Histogram describes one indicator's distribution for client-side chart
// rendering: 30 equal-width bins between the 0.5th and 99.5th percentile of
// the finite values (outliers beyond that range are trimmed so the bins stay
// informative), plus summary statistics over ALL finite values.
type Histogram struct {
	Centers []float64
	Counts  []int
	Edges   []float64

	Mean float64
	Std  float64
	P10  float64
	P50  float64
	P90  float64
}

// BuildHistogram bins the finite entries of xs. Nil when nothing is finite.
func BuildHistogram(xs []float64) *Histogram {
	finite := Finite(xs)
	if len(finite) == 0 {
		return nil
	}
	sorted := append([]float64(nil), finite...)
	sort.Float64s(sorted)

	lo := percentileSorted(sorted, 0.005)
	hi := percentileSorted(sorted, 0.995)
	if hi <= lo {
		// Degenerate spread: widen symmetrically so bins keep nonzero width.
		pad := math.Max(math.Abs(lo)*1e-6, 0.5)
		lo -= pad
		hi += pad
	}

	width := (hi - lo) / HistogramBins
	edges := make([]float64, HistogramBins+1)
	centers := make([]float64, HistogramBins)
	for i := 0; i <= HistogramBins; i++ {
		edges[i] = lo + float64(i)*width
	}
	for i := 0; i < HistogramBins; i++ {
		centers[i] = (edges[i] + edges[i+1]) / 2
	}

	counts := make([]int, HistogramBins)
	for _, v := range finite {
		if v < lo || v > hi {
			continue
		}
		idx := int((v - lo) / width)
		if idx == HistogramBins {
			idx = HistogramBins - 1
		}
		counts[idx]++
	}

	// A single finite value has zero spread; the sample estimator would
	// divide by n−1 = 0 and yield NaN.
	std := 0.0
	if len(finite) > 1 {
		std = stat.StdDev(finite, nil)
	}

	return &Histogram{
		Centers: centers,
		Counts:  counts,
		Edges:   edges,
		Mean:    stat.Mean(finite, nil),
		Std:     std,
		P10:     percentileSorted(sorted, 0.10),
		P50:     percentileSorted(sorted, 0.50),
		P90:     percentileSorted(sorted, 0.90),
	}
}
