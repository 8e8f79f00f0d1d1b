package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/heatcalc/core/metrics"
	"github.com/kilianp07/heatcalc/core/model"
	"github.com/kilianp07/heatcalc/core/projection"
)

func shortScenario() model.Scenario {
	return model.Scenario{
		Fossil: model.FossilSystemConfig{
			Fuel:              model.FuelGas,
			CO2Intensity:      216,
			AnnualConsumption: 30000,
			CurrentFuelPrice:  11.78,
			ReplacementCost:   9000,
			BoilerEfficiency:  90,
		},
		HeatPump: model.HeatPumpConfig{
			UpfrontCost:               40000,
			SeasonalPerformanceFactor: 4,
			SubsidyPercent:            50,
			SubsidyCap:                30000,
		},
		Assumptions: model.ScenarioAssumptions{
			CO2PricePre2027:  55,
			CO2PriceFrom2027: 250,
			ElectricityPrice: 30,
			StartYear:        2025,
			ProjectionYears:  3,
		},
	}
}

func projectionEvent(t *testing.T) coremetrics.ProjectionEvent {
	t.Helper()
	p, err := projection.Run(shortScenario())
	require.NoError(t, err)
	return coremetrics.ProjectionEvent{
		RunID:      "run-1",
		Projection: p,
		Time:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}
