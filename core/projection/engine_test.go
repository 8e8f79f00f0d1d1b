package projection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/heatcalc/core/model"
)

func TestProjectGasScenario(t *testing.T) {
	recs, err := Project(gasScenario())
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, 2025, recs[0].Year)
	assert.Equal(t, 12927.0, recs[0].FossilCost)
	assert.Equal(t, 22250.0, recs[0].HeatPumpCost)
	assert.Equal(t, -9323.0, recs[0].Savings)

	assert.Equal(t, 3927.0, recs[1].FossilCost)
	assert.Equal(t, 2250.0, recs[1].HeatPumpCost)
	assert.Equal(t, model.BracketPre2027, recs[1].Bracket)

	assert.Equal(t, model.BracketFrom2027, recs[2].Bracket)
	assert.Equal(t, 5597.0, recs[2].FossilCost)
	assert.Equal(t, 2250.0, recs[2].HeatPumpCost)
}

func TestProjectAccumulatesRoundedValues(t *testing.T) {
	for _, s := range []model.Scenario{gasScenario(), oilScenario()} {
		s.Assumptions.ProjectionYears = 25
		recs, err := Project(s)
		require.NoError(t, err)
		var fossil, hp float64
		for i, r := range recs {
			assert.Equal(t, s.Assumptions.StartYear+i, r.Year)
			assert.Equal(t, r.FossilCost, float64(int64(r.FossilCost)), "per-year cost must be whole")
			fossil += r.FossilCost
			hp += r.HeatPumpCost
			assert.Equal(t, fossil, r.FossilCumulative)
			assert.Equal(t, hp, r.HeatPumpCumulative)
			assert.Equal(t, r.FossilCost-r.HeatPumpCost, r.Savings)
			assert.Equal(t, r.FossilCumulative-r.HeatPumpCumulative, r.SavingsCumulative)
			if i > 0 {
				assert.GreaterOrEqual(t, r.FossilCumulative, recs[i-1].FossilCumulative)
				assert.GreaterOrEqual(t, r.HeatPumpCumulative, recs[i-1].HeatPumpCumulative)
			}
		}
	}
}

func TestProjectOneTimeChargesOnlyInFirstYear(t *testing.T) {
	for _, base := range []model.Scenario{gasScenario(), oilScenario()} {
		t.Run(base.Fossil.Fuel.String(), func(t *testing.T) {
			base.Assumptions.StartYear = 2030
			base.Assumptions.ProjectionYears = 5
			with, err := Project(base)
			require.NoError(t, err)

			bare := base
			bare.Fossil.ReplacementCost = 0
			bare.HeatPump.UpfrontCost = 0
			without, err := Project(bare)
			require.NoError(t, err)

			assert.Equal(t, base.Fossil.ReplacementCost, with[0].FossilCost-without[0].FossilCost)
			assert.Equal(t, base.HeatPump.NetUpfrontCost(), with[0].HeatPumpCost-without[0].HeatPumpCost)
			for i := 1; i < len(with); i++ {
				assert.Equal(t, without[i].FossilCost, with[i].FossilCost)
				assert.Equal(t, without[i].HeatPumpCost, with[i].HeatPumpCost)
			}
		})
	}
}

func TestProjectZeroReplacementCost(t *testing.T) {
	s := gasScenario()
	s.Fossil.ReplacementCost = 0
	recs, err := Project(s)
	require.NoError(t, err)
	assert.Equal(t, 3927.0, recs[0].FossilCost)
	assert.Equal(t, recs[1].FossilCost, recs[0].FossilCost)
}

func TestProjectBracketSwitchIsDiscrete(t *testing.T) {
	for _, s := range []model.Scenario{gasScenario(), oilScenario()} {
		s.Fossil.ReplacementCost = 0
		s.Assumptions.StartYear = 2026
		s.Assumptions.ProjectionYears = 2
		recs, err := Project(s)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		kwh := s.Fossil.ConsumptionKWh()
		pre := kwh * FossilDeliveredPrice(s.Fossil, s.Assumptions, 2000) / 100
		post := kwh * FossilDeliveredPrice(s.Fossil, s.Assumptions, 2100) / 100
		assert.Equal(t, roundCurrency(pre), recs[0].FossilCost)
		assert.Equal(t, roundCurrency(post), recs[1].FossilCost)
	}
}

func TestProjectStartAfterChangeYear(t *testing.T) {
	s := gasScenario()
	s.Assumptions.StartYear = 2035
	recs, err := Project(s)
	require.NoError(t, err)
	for _, r := range recs {
		assert.Equal(t, model.BracketFrom2027, r.Bracket)
	}
}

func TestProjectDeterministic(t *testing.T) {
	s := oilScenario()
	s.Assumptions.ProjectionYears = 30
	a, err := Project(s)
	require.NoError(t, err)
	b, err := Project(s)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestProjectRejectsInvalid(t *testing.T) {
	cases := map[string]func(*model.Scenario){
		"efficiency":  func(s *model.Scenario) { s.Fossil.BoilerEfficiency = 0 },
		"jaz":         func(s *model.Scenario) { s.HeatPump.SeasonalPerformanceFactor = -1 },
		"years":       func(s *model.Scenario) { s.Assumptions.ProjectionYears = 0 },
		"consumption": func(s *model.Scenario) { s.Fossil.AnnualConsumption = -1 },
		"electricity": func(s *model.Scenario) { s.Assumptions.ElectricityPrice = -0.1 },
		"fuel price":  func(s *model.Scenario) { s.Fossil.CurrentFuelPrice = -2 },
		"fuel":        func(s *model.Scenario) { s.Fossil.Fuel = model.FuelType(9) },
		"subsidy":     func(s *model.Scenario) { s.HeatPump.SubsidyPercent = 120 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := gasScenario()
			mutate(&s)
			recs, err := Project(s)
			assert.Nil(t, recs)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration), "got %v", err)
		})
	}
}

func TestValidateReportsAllFields(t *testing.T) {
	s := gasScenario()
	s.Fossil.BoilerEfficiency = 0
	s.Assumptions.ProjectionYears = -3
	err := Validate(s)
	require.Error(t, err)
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, err.Error(), "fossil.boiler_efficiency")
	assert.Contains(t, err.Error(), "assumptions.projection_years")
}

func TestRun(t *testing.T) {
	s := gasScenario()
	s.Assumptions.ProjectionYears = 20
	p, err := Run(s)
	require.NoError(t, err)
	assert.Len(t, p.Records, 20)
	assert.Equal(t, s, p.Scenario)
	assert.True(t, p.BreakEven.Reached)
	assert.InDelta(t, 20000, p.Prices.NetUpfrontCost, 1e-9)

	_, err = Run(model.Scenario{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestFindBreakEven(t *testing.T) {
	recs := []model.YearlyRecord{
		{Year: 2025, SavingsCumulative: -9000},
		{Year: 2026, SavingsCumulative: -4000},
		{Year: 2027, SavingsCumulative: 0},
		{Year: 2028, SavingsCumulative: 3000},
	}
	assert.Equal(t, model.BreakEven{Year: 2027, Reached: true}, FindBreakEven(recs))
	assert.False(t, FindBreakEven(recs[:2]).Reached)
	assert.False(t, FindBreakEven(nil).Reached)

	dip := []model.YearlyRecord{
		{Year: 2025, SavingsCumulative: 100},
		{Year: 2026, SavingsCumulative: -50},
		{Year: 2027, SavingsCumulative: 20},
	}
	assert.Equal(t, 2027, FindBreakEven(dip).Year)
}

func TestBreakEvenGasScenario(t *testing.T) {
	s := gasScenario()
	s.Assumptions.ProjectionYears = 20
	recs, err := Project(s)
	require.NoError(t, err)
	be := FindBreakEven(recs)
	require.True(t, be.Reached)
	// -9323 after 2025, +1677 in 2026, +3347 per year from 2027
	assert.Equal(t, 2029, be.Year)
}

func TestProjectRejectsPriceBelowCarbonSurcharge(t *testing.T) {
	s := gasScenario()
	s.Fossil.CurrentFuelPrice = 0
	s.Fossil.ReplacementCost = 0
	s.Assumptions.CO2PriceFrom2027 = 50
	s.Assumptions.StartYear = 2027
	recs, err := Project(s)
	assert.Nil(t, recs)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.ErrorContains(t, err, "fossil.current_fuel_price")

	o := oilScenario()
	o.Fossil.CurrentFuelPrice = 0.05
	assert.ErrorIs(t, Validate(o), ErrInvalidConfiguration)
}

func TestProjectCumulativeNeverDecreasesAtLowestCarbonPrice(t *testing.T) {
	for _, s := range []model.Scenario{gasScenario(), oilScenario()} {
		s.Fossil.ReplacementCost = 0
		// quote barely above its own carbon content
		surcharge := 1.001 * CarbonSurcharge(s.Fossil.IntensityPerKWh(), s.Assumptions.CO2PricePre2027)
		s.Fossil.CurrentFuelPrice = surcharge
		if s.Fossil.Fuel == model.FuelOil {
			s.Fossil.CurrentFuelPrice = surcharge / 10
		}
		s.Assumptions.CO2PriceFrom2027 = 50
		s.Assumptions.ProjectionYears = 10
		recs, err := Project(s)
		require.NoError(t, err)
		prev := model.YearlyRecord{}
		for _, r := range recs {
			assert.GreaterOrEqual(t, r.FossilCost, 0.0, "year %d", r.Year)
			assert.GreaterOrEqual(t, r.FossilCumulative, prev.FossilCumulative, "year %d", r.Year)
			assert.GreaterOrEqual(t, r.HeatPumpCumulative, prev.HeatPumpCumulative, "year %d", r.Year)
			prev = r
		}
	}
}
