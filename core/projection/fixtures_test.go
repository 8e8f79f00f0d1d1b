package projection

import "github.com/kilianp07/heatcalc/core/model"

func gasScenario() model.Scenario {
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
			SeasonalPerformanceFactor: 4.0,
			SubsidyPercent:            50,
			SubsidyCap:                30000,
		},
		Assumptions: model.ScenarioAssumptions{
			CO2PricePre2027:  model.CO2PricePre2027,
			CO2PriceFrom2027: 250,
			ElectricityPrice: 30.0,
			StartYear:        2025,
			ProjectionYears:  3,
		},
	}
}

func oilScenario() model.Scenario {
	s := gasScenario()
	s.Fossil.Fuel = model.FuelOil
	s.Fossil.CO2Intensity = 2680
	s.Fossil.AnnualConsumption = 3500
	s.Fossil.CurrentFuelPrice = 1.01
	return s
}
