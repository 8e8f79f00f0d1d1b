package projection

import (
	"errors"

	"github.com/kilianp07/heatcalc/core/model"
)

// Validate checks the scenario for values the engine cannot handle.
// All problems are reported at once.
func Validate(s model.Scenario) error {
	var errs []error
	add := func(field, reason string) {
		errs = append(errs, &FieldError{Field: field, Reason: reason})
	}
	f, h, a := s.Fossil, s.HeatPump, s.Assumptions

	if !f.Fuel.Valid() {
		add("fossil.fuel", "unknown fuel type")
	}
	if f.BoilerEfficiency <= 0 {
		add("fossil.boiler_efficiency", "must be positive")
	}
	if f.AnnualConsumption < 0 {
		add("fossil.annual_consumption", "must not be negative")
	}
	if f.CurrentFuelPrice < 0 {
		add("fossil.current_fuel_price", "must not be negative")
	} else if f.Fuel.Valid() && a.CO2PricePre2027 >= 0 &&
		f.PriceCtPerKWh() < CarbonSurcharge(f.IntensityPerKWh(), a.CO2PricePre2027) {
		// the quoted price includes the pre-2027 carbon cost
		add("fossil.current_fuel_price", "below the carbon surcharge it contains")
	}
	if f.CO2Intensity < 0 {
		add("fossil.co2_intensity", "must not be negative")
	}
	if f.ReplacementCost < 0 {
		add("fossil.replacement_cost", "must not be negative")
	}
	if h.SeasonalPerformanceFactor <= 0 {
		add("heat_pump.seasonal_performance_factor", "must be positive")
	}
	if h.UpfrontCost < 0 {
		add("heat_pump.upfront_cost", "must not be negative")
	}
	if h.SubsidyPercent < 0 || h.SubsidyPercent > 100 {
		add("heat_pump.subsidy_percent", "must be within [0,100]")
	}
	if h.SubsidyCap < 0 {
		add("heat_pump.subsidy_cap", "must not be negative")
	}
	if a.ProjectionYears <= 0 {
		add("assumptions.projection_years", "must be positive")
	}
	if a.ElectricityPrice < 0 {
		add("assumptions.electricity_price", "must not be negative")
	}
	if a.CO2PricePre2027 < 0 {
		add("assumptions.co2_price_pre_2027", "must not be negative")
	}
	if a.CO2PriceFrom2027 < 0 {
		add("assumptions.co2_price_from_2027", "must not be negative")
	}
	return errors.Join(errs...)
}
