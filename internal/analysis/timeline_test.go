package analysis

import (
	"math"
	"testing"

	"retrofit-risk/internal/market"
	"retrofit-risk/internal/model"
)

func timelineForecasts() model.MarketForecasts {
	return model.MarketForecasts{
		Inflation: model.ScenarioPath{
			Pessimistic: []float64{0.02},
			Moderate:    []float64{0.025},
			Optimistic:  []float64{0.03},
		},
		ElectricityPrice: model.ScenarioPath{
			Pessimistic: []float64{0.22},
			Moderate:    []float64{0.25},
			Optimistic:  []float64{0.28},
		},
		InterestRate: model.ScenarioPath{
			Pessimistic: []float64{0.025},
			Moderate:    []float64{0.035},
			Optimistic:  []float64{0.05},
		},
		DiscountRate: model.ScenarioPath{
			Pessimistic: []float64{0.03},
			Moderate:    []float64{0.05},
			Optimistic:  []float64{0.07},
		},
	}
}

func timelineParams(t *testing.T, lifetime int) *market.DistributionParams {
	t.Helper()
	params, err := market.BuildDistributions(timelineForecasts(), lifetime)
	if err != nil {
		t.Fatal(err)
	}
	return params
}

func TestTimelineYearZeroLaws(t *testing.T) {
	inputs := model.ProjectInputs{
		CapEx: 50000, AnnualMaintenanceCost: 1500, AnnualEnergySavings: 20000,
		ProjectLifetime: 15, LoanAmount: 20000, LoanTerm: 10,
	}
	tl := BuildTimeline(inputs, timelineParams(t, 15))

	if len(tl.Years) != 16 {
		t.Fatalf("years has %d elements, want 16", len(tl.Years))
	}
	if tl.AnnualInflows[0] != 0 {
		t.Errorf("annual_inflows[0] = %v, want 0", tl.AnnualInflows[0])
	}
	if tl.AnnualOutflows[0] != 30000 {
		t.Errorf("annual_outflows[0] = %v, want capex-loan = 30000", tl.AnnualOutflows[0])
	}
	if tl.InitialInvestment != 30000 {
		t.Errorf("initial_investment = %v, want 30000", tl.InitialInvestment)
	}
}

func TestTimelineCumulativeSumLaw(t *testing.T) {
	inputs := model.ProjectInputs{
		CapEx: 50000, AnnualMaintenanceCost: 1500, AnnualEnergySavings: 20000,
		ProjectLifetime: 15,
	}
	tl := BuildTimeline(inputs, timelineParams(t, 15))

	sum := 0.0
	for _, v := range tl.AnnualNet {
		sum += v
	}
	T := inputs.ProjectLifetime
	if math.Abs(tl.Cumulative[T]-sum) > 1e-9 {
		t.Errorf("cumulative[T] = %v, want running sum %v", tl.Cumulative[T], sum)
	}
	for t2 := 1; t2 <= T; t2++ {
		want := tl.AnnualInflows[t2] - tl.AnnualOutflows[t2]
		if math.Abs(tl.AnnualNet[t2]-want) > 1e-9 {
			t.Errorf("net[%d] = %v, want inflow-outflow %v", t2, tl.AnnualNet[t2], want)
		}
	}
}

func TestTimelineBreakeven(t *testing.T) {
	// 5000 €/year of savings (20000 kWh at 0.25 €/kWh) against a 50000 equity
	// outlay pays back well inside a 30-year horizon.
	inputs := model.ProjectInputs{
		CapEx: 50000, AnnualMaintenanceCost: 1500, AnnualEnergySavings: 20000,
		ProjectLifetime: 30,
	}
	tl := BuildTimeline(inputs, timelineParams(t, 30))
	if tl.BreakevenYear == nil {
		t.Fatal("project must break even inside the horizon")
	}
	if *tl.BreakevenYear < 1 || *tl.BreakevenYear > 25 {
		t.Errorf("breakeven_year = %d, outside plausible range", *tl.BreakevenYear)
	}
	if tl.Cumulative[*tl.BreakevenYear] < 0 {
		t.Errorf("cumulative at breakeven = %v, want >= 0", tl.Cumulative[*tl.BreakevenYear])
	}
	if tl.Cumulative[*tl.BreakevenYear-1] >= 0 {
		t.Errorf("cumulative before breakeven = %v, want < 0", tl.Cumulative[*tl.BreakevenYear-1])
	}
}

func TestTimelineNeverBreaksEven(t *testing.T) {
	inputs := model.ProjectInputs{
		CapEx: 10000, AnnualMaintenanceCost: 0, AnnualEnergySavings: 100,
		ProjectLifetime: 20,
	}
	tl := BuildTimeline(inputs, timelineParams(t, 20))
	if tl.BreakevenYear != nil {
		t.Errorf("100 kWh/year against 10000 € must not break even, got year %d", *tl.BreakevenYear)
	}
}

func TestTimelineImmediateBreakevenWithFullLoan(t *testing.T) {
	inputs := model.ProjectInputs{
		CapEx: 10000, AnnualMaintenanceCost: 100, AnnualEnergySavings: 5000,
		ProjectLifetime: 10, LoanAmount: 10000, LoanTerm: 10,
	}
	tl := BuildTimeline(inputs, timelineParams(t, 10))
	if tl.BreakevenYear == nil || *tl.BreakevenYear != 0 {
		t.Errorf("fully loan-financed project breaks even at year 0, got %v", tl.BreakevenYear)
	}
}

func TestMonthlyAvgSavings(t *testing.T) {
	inputs := model.ProjectInputs{
		CapEx: 50000, AnnualMaintenanceCost: 1500, AnnualEnergySavings: 20000,
		ProjectLifetime: 15,
	}
	tl := BuildTimeline(inputs, timelineParams(t, 15))

	// Median price is constant 0.25 here, so the closed form is simple.
	want := 20000 * 0.25 / 12
	if got := tl.MonthlyAvgSavings(); math.Abs(got-want) > 1e-9 {
		t.Errorf("MonthlyAvgSavings = %v, want %v", got, want)
	}
}
