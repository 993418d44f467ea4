package finance

import (
	"math"
	"testing"
)

func TestNPV(t *testing.T) {
	// -100 + 60/1.1 + 60/1.21 = 4.1322...
	got := NPV(0.10, []float64{-100, 60, 60})
	want := -100 + 60/1.1 + 60/1.21
	if !almostEqual(got, want, 1e-12) {
		t.Errorf("NPV = %v, want %v", got, want)
	}

	if got := NPV(0, []float64{-100, 60, 60}); got != 20 {
		t.Errorf("NPV at r=0 = %v, want 20", got)
	}

	if !math.IsNaN(NPV(-1, []float64{-100, 60})) {
		t.Error("NPV at r=-1 should be NaN")
	}
	if !math.IsNaN(NPV(-1.5, []float64{-100, 60})) {
		t.Error("NPV at r<-1 should be NaN")
	}
}

func TestIRRClosedForm(t *testing.T) {
	// -100 + 60/(1+r) + 60/(1+r)^2 = 0. With x = 1/(1+r):
	// 60x^2 + 60x - 100 = 0 => x = (-60 + sqrt(3600+24000)) / 120.
	x := (-60 + math.Sqrt(3600+24000)) / 120
	want := 1/x - 1

	got := IRR([]float64{-100, 60, 60})
	if !almostEqual(got, want, 1e-8) {
		t.Errorf("IRR = %v, want %v", got, want)
	}
}

func TestIRRZeroAtExactBreakeven(t *testing.T) {
	// -100 then +50, +50: IRR is exactly 0.
	got := IRR([]float64{-100, 50, 50})
	if !almostEqual(got, 0, 1e-8) {
		t.Errorf("IRR = %v, want 0", got)
	}
}

func TestIRRNoSignChange(t *testing.T) {
	if !math.IsNaN(IRR([]float64{-100, -10, -20})) {
		t.Error("all-negative flows must yield NaN")
	}
	if !math.IsNaN(IRR([]float64{100, 10, 20})) {
		t.Error("all-positive flows must yield NaN")
	}
	if !math.IsNaN(IRR([]float64{-100})) {
		t.Error("single flow must yield NaN")
	}
}

func TestIRRRecoversNPVZero(t *testing.T) {
	flows := []float64{-5000, 1200, 1300, 1400, 1500, 1600}
	r := IRR(flows)
	if math.IsNaN(r) {
		t.Fatal("IRR should exist for a conventional series")
	}
	if npv := NPV(r, flows); !almostEqual(npv, 0, 1e-5) {
		t.Errorf("NPV at IRR = %v, want ≈0", npv)
	}
}

func TestROI(t *testing.T) {
	// (180 - 100) / 100 = 0.8
	if got := ROI([]float64{-100, 90, 90}); !almostEqual(got, 0.8, 1e-12) {
		t.Errorf("ROI = %v, want 0.8", got)
	}
	// Loss-making project: (50 - 100) / 100 = -0.5
	if got := ROI([]float64{-100, 25, 25}); !almostEqual(got, -0.5, 1e-12) {
		t.Errorf("ROI = %v, want -0.5", got)
	}
	if !math.IsNaN(ROI([]float64{0, 50, 50})) {
		t.Error("zero initial flow must yield NaN")
	}
}

func TestPaybackInterpolation(t *testing.T) {
	// Cumulative: -100, -50, +10 => breakeven inside year 2:
	// 1 + 50/60 = 1.8333...
	got := Payback([]float64{-100, 50, 60})
	if !almostEqual(got, 1+50.0/60.0, 1e-12) {
		t.Errorf("Payback = %v, want %v", got, 1+50.0/60.0)
	}
}

func TestPaybackExactYear(t *testing.T) {
	// Cumulative hits exactly zero at year 2.
	got := Payback([]float64{-100, 40, 60, 10})
	if got != 2 {
		t.Errorf("Payback = %v, want 2", got)
	}
}

func TestPaybackNever(t *testing.T) {
	if !math.IsNaN(Payback([]float64{-100, 10, 10, 10})) {
		t.Error("project that never breaks even must yield NaN")
	}
}

func TestPaybackNonNegativeYearZero(t *testing.T) {
	// Loan fully covers capex: immediate payback.
	if got := Payback([]float64{0, 10, 10}); got != 0 {
		t.Errorf("Payback = %v, want 0", got)
	}
	if got := Payback([]float64{5, 10, 10}); got != 0 {
		t.Errorf("Payback = %v, want 0", got)
	}
}

func TestDiscountedPayback(t *testing.T) {
	// At r=0 DPP equals PBP.
	flows := []float64{-100, 50, 60, 40}
	if got, want := DiscountedPayback(0, flows), Payback(flows); got != want {
		t.Errorf("DPP at r=0 = %v, want %v", got, want)
	}

	// Discounting delays breakeven.
	pbp := Payback(flows)
	dpp := DiscountedPayback(0.10, flows)
	if math.IsNaN(dpp) || dpp <= pbp {
		t.Errorf("DPP %v should exceed PBP %v at positive rates", dpp, pbp)
	}

	if !math.IsNaN(DiscountedPayback(-1, flows)) {
		t.Error("DPP at r=-1 must be NaN")
	}
}

func TestScaleInvariance(t *testing.T) {
	// Scaling every flow by k leaves IRR, ROI, PBP, DPP unchanged and scales
	// NPV by k.
	flows := []float64{-5000, 1500, 1800, 2100, 2400}
	const k = 3.5
	scaled := make([]float64, len(flows))
	for i, f := range flows {
		scaled[i] = f * k
	}

	if a, b := IRR(flows), IRR(scaled); !almostEqual(a, b, 1e-8) {
		t.Errorf("IRR changed under scaling: %v vs %v", a, b)
	}
	if a, b := ROI(flows), ROI(scaled); !almostEqual(a, b, 1e-12) {
		t.Errorf("ROI changed under scaling: %v vs %v", a, b)
	}
	if a, b := Payback(flows), Payback(scaled); !almostEqual(a, b, 1e-12) {
		t.Errorf("PBP changed under scaling: %v vs %v", a, b)
	}
	if a, b := DiscountedPayback(0.06, flows), DiscountedPayback(0.06, scaled); !almostEqual(a, b, 1e-12) {
		t.Errorf("DPP changed under scaling: %v vs %v", a, b)
	}
	if a, b := NPV(0.06, flows)*k, NPV(0.06, scaled); !almostEqual(a, b, 1e-9) {
		t.Errorf("NPV did not scale by k: %v vs %v", a, b)
	}
}
