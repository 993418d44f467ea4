package market

import (
	"testing"
)

func drawTestParams(t *testing.T, horizon int) *DistributionParams {
	t.Helper()
	params, err := BuildDistributions(validForecasts(), horizon)
	if err != nil {
		t.Fatal(err)
	}
	return params
}

func TestDrawShapes(t *testing.T) {
	params := drawTestParams(t, 5)
	s := Draw(params, 200, 1)

	if s.N != 200 || s.Horizon != 5 {
		t.Fatalf("N=%d horizon=%d, want 200/5", s.N, s.Horizon)
	}
	for name, m := range map[string][][]float64{
		"inflation":   s.Inflation,
		"interest":    s.InterestRate,
		"electricity": s.Electricity,
	} {
		if len(m) != 200 {
			t.Fatalf("%s: %d rows, want 200", name, len(m))
		}
		for i, row := range m {
			if len(row) != 5 {
				t.Fatalf("%s row %d: %d cols, want 5", name, i, len(row))
			}
		}
	}
	if len(s.Discount) != 200 {
		t.Fatalf("discount: %d values, want 200", len(s.Discount))
	}
}

func TestDrawDeterminism(t *testing.T) {
	params := drawTestParams(t, 5)

	a := Draw(params, 500, 42)
	b := Draw(params, 500, 42)

	for i := 0; i < 500; i++ {
		if a.Discount[i] != b.Discount[i] {
			t.Fatalf("discount[%d] differs across identical seeds", i)
		}
		for t2 := 0; t2 < 5; t2++ {
			if a.Inflation[i][t2] != b.Inflation[i][t2] ||
				a.InterestRate[i][t2] != b.InterestRate[i][t2] ||
				a.Electricity[i][t2] != b.Electricity[i][t2] {
				t.Fatalf("samples differ at (%d, %d) across identical seeds", i, t2)
			}
		}
	}
}

func TestDrawSeedSensitivity(t *testing.T) {
	params := drawTestParams(t, 3)

	a := Draw(params, 100, 1)
	b := Draw(params, 100, 2)

	same := true
	for i := 0; i < 100 && same; i++ {
		for t2 := 0; t2 < 3; t2++ {
			if a.Inflation[i][t2] != b.Inflation[i][t2] {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("different seeds produced identical inflation samples")
	}
}

func TestDrawClamps(t *testing.T) {
	params := drawTestParams(t, 2)
	// Force pathological tails: massive spread around a deep-negative center.
	for t2 := 0; t2 < 2; t2++ {
		params.Inflation.Mu[t2] = -5
		params.Inflation.Sigma[t2] = 10
		params.InterestRate.Mu[t2] = -5
		params.InterestRate.Sigma[t2] = 10
		params.Discount.Mu[t2] = -5
		params.Discount.Sigma[t2] = 10
		params.ElectricityLog.Mu[t2] = -50
		params.ElectricityLog.Sigma[t2] = 1
	}

	s := Draw(params, 2000, 7)
	for i := 0; i < s.N; i++ {
		if s.Discount[i] < -0.99 {
			t.Fatalf("discount[%d] = %v below clamp", i, s.Discount[i])
		}
		for t2 := 0; t2 < s.Horizon; t2++ {
			if s.Inflation[i][t2] < -0.5 {
				t.Fatalf("inflation[%d][%d] = %v below clamp", i, t2, s.Inflation[i][t2])
			}
			if s.InterestRate[i][t2] < -0.5 {
				t.Fatalf("interest[%d][%d] = %v below clamp", i, t2, s.InterestRate[i][t2])
			}
			if s.Electricity[i][t2] < 1e-9 {
				t.Fatalf("electricity[%d][%d] = %v below clamp", i, t2, s.Electricity[i][t2])
			}
		}
	}
}

func TestDrawElectricityPositive(t *testing.T) {
	params := drawTestParams(t, 4)
	s := Draw(params, 1000, 3)
	for i := range s.Electricity {
		for t2, v := range s.Electricity[i] {
			if v <= 0 {
				t.Fatalf("electricity[%d][%d] = %v, must be positive", i, t2, v)
			}
		}
	}
}
