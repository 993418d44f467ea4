package finance

import "math"

// NPV is the present value of flows at a constant discount rate r:
// Σ flows[t] / (1+r)^t. NaN when 1+r ≤ 0.
func NPV(r float64, flows []float64) float64 {
	if 1+r <= 0 {
		return math.NaN()
	}
	pv := 0.0
	discount := 1.0
	for t, f := range flows {
		if t > 0 {
			discount *= 1 + r
		}
		pv += f / discount
	}
	return pv
}

// npvDerivative is d/dr of NPV(r, flows).
func npvDerivative(r float64, flows []float64) float64 {
	d := 0.0
	for t := 1; t < len(flows); t++ {
		d -= float64(t) * flows[t] / math.Pow(1+r, float64(t+1))
	}
	return d
}

// IRR solves NPV(r, flows) = 0.
//
// Newton iteration from a conventional 10% starting guess, with a bracketed
// bisection fallback over (−0.99, 10]. Series whose flows never change sign
// have no real root and return NaN immediately. For series with multiple sign
// changes the first root the solver converges to is returned; that choice is
// the documented contract.
func IRR(flows []float64) float64 {
	if len(flows) < 2 || !hasSignChange(flows) {
		return math.NaN()
	}

	r := 0.1
	for iter := 0; iter < 64; iter++ {
		f := NPV(r, flows)
		if math.IsNaN(f) {
			break
		}
		if math.Abs(f) < 1e-9 {
			return r
		}
		d := npvDerivative(r, flows)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			break
		}
		next := r - f/d
		if next <= -1 {
			// Keep the iterate inside the domain.
			next = (r - 1) / 2
		}
		if math.Abs(next-r) < 1e-12 {
			return next
		}
		r = next
	}
	return irrBisect(flows)
}

func hasSignChange(flows []float64) bool {
	seenNeg, seenPos := false, false
	for _, f := range flows {
		if f < 0 {
			seenNeg = true
		}
		if f > 0 {
			seenPos = true
		}
	}
	return seenNeg && seenPos
}

// irrBisect scans (−0.99, 10] for a sign change of NPV and bisects it.
func irrBisect(flows []float64) float64 {
	const lo, hi, step = -0.99, 10.0, 0.01

	prevR := lo
	prevV := NPV(prevR, flows)
	for r := lo + step; r <= hi; r += step {
		v := NPV(r, flows)
		if !math.IsNaN(prevV) && !math.IsNaN(v) && (prevV == 0 || prevV*v < 0) {
			if prevV == 0 {
				return prevR
			}
			return bisect(flows, prevR, r, prevV)
		}
		prevR, prevV = r, v
	}
	return math.NaN()
}

func bisect(flows []float64, a, b, fa float64) float64 {
	for i := 0; i < 100; i++ {
		mid := (a + b) / 2
		fm := NPV(mid, flows)
		if fm == 0 || (b-a)/2 < 1e-12 {
			return mid
		}
		if fa*fm < 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	return (a + b) / 2
}

// ROI is (Σ_{t≥1} flows[t] − |flows[0]|) / |flows[0]|: net profit over the
// initial outlay. NaN when there is no initial outlay to measure against.
func ROI(flows []float64) float64 {
	if len(flows) == 0 || flows[0] == 0 {
		return math.NaN()
	}
	initial := math.Abs(flows[0])
	net := 0.0
	for _, f := range flows[1:] {
		net += f
	}
	return (net - initial) / initial
}

// Payback is the simple (undiscounted) payback period in years, resolved to
// fractional years by linear interpolation within the break-even year. NaN
// when cumulative cash never turns non-negative within the horizon. A
// non-negative year-0 flow (loan fully covering capex) pays back immediately.
func Payback(flows []float64) float64 {
	if len(flows) == 0 {
		return math.NaN()
	}
	if flows[0] >= 0 {
		return 0
	}
	cum := flows[0]
	for t := 1; t < len(flows); t++ {
		prev := cum
		cum += flows[t]
		if cum >= 0 {
			if prev < 0 && cum > 0 && flows[t] > 0 {
				return float64(t-1) + (-prev)/flows[t]
			}
			return float64(t)
		}
	}
	return math.NaN()
}

// DiscountedPayback applies the Payback algorithm to the series discounted at
// rate r. NaN when 1+r ≤ 0.
func DiscountedPayback(r float64, flows []float64) float64 {
	if 1+r <= 0 {
		return math.NaN()
	}
	discounted := make([]float64, len(flows))
	discount := 1.0
	for t, f := range flows {
		if t > 0 {
			discount *= 1 + r
		}
		discounted[t] = f / discount
	}
	return Payback(discounted)
}
