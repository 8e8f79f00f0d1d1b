package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kilianp07/heatcalc/core/model"
)

// HeatingConfig describes the fossil boiler. Quantities are given in the
// fuel's native units: kWh and ct/kWh for gas, liters and €/l for oil.
type HeatingConfig struct {
	Fuel              string  `json:"fuel"`
	CO2Intensity      float64 `json:"co2_intensity"`
	AnnualConsumption float64 `json:"annual_consumption"`
	CurrentPrice      float64 `json:"current_price"`
	ReplacementCost   float64 `json:"replacement_cost"`
	BoilerEfficiency  float64 `json:"boiler_efficiency"`
}

// HeatPumpConfig describes the heat pump offer. SubsidyPercent, when
// unset, is taken from SubsidyProgramme.
type HeatPumpConfig struct {
	UpfrontCost      float64 `json:"upfront_cost"`
	JAZ              float64 `json:"jaz"`
	SubsidyProgramme string  `json:"subsidy_programme"`
	SubsidyPercent   float64 `json:"subsidy_percent"`
	SubsidyCap       float64 `json:"subsidy_cap"`
}

// AssumptionsConfig holds the market expectations.
type AssumptionsConfig struct {
	CO2PriceFrom2027 float64 `json:"co2_price_from_2027"`
	ElectricityPrice float64 `json:"electricity_price"`
	StartYear        int     `json:"start_year"`
	Years            int     `json:"years"`
}

// ScenarioConfig groups the sections that make up a model.Scenario.
type ScenarioConfig struct {
	Heating     HeatingConfig     `json:"heating"`
	HeatPump    HeatPumpConfig    `json:"heat_pump"`
	Assumptions AssumptionsConfig `json:"assumptions"`
}

// FuelDefaults are the starting values of a fuel's inputs.
type FuelDefaults struct {
	CO2Intensity      float64
	AnnualConsumption float64
	CurrentPrice      float64
}

// DefaultsFor returns the input defaults of fuel.
func DefaultsFor(fuel model.FuelType) FuelDefaults {
	if fuel == model.FuelOil {
		return FuelDefaults{CO2Intensity: fuel.DefaultIntensity(), AnnualConsumption: 3500, CurrentPrice: 1.01}
	}
	return FuelDefaults{CO2Intensity: fuel.DefaultIntensity(), AnnualConsumption: 30000, CurrentPrice: 11.78}
}

// defaultValues lists the koanf keys filled in when absent from every
// source. Fuel dependent values follow the configured fuel.
func defaultValues(fuel model.FuelType, now time.Time) map[string]any {
	fd := DefaultsFor(fuel)
	return map[string]any{
		"heating.fuel":                    fuel.String(),
		"heating.co2_intensity":           fd.CO2Intensity,
		"heating.annual_consumption":      fd.AnnualConsumption,
		"heating.current_price":           fd.CurrentPrice,
		"heating.replacement_cost":        9000.0,
		"heating.boiler_efficiency":       90.0,
		"heat_pump.upfront_cost":          40000.0,
		"heat_pump.jaz":                   4.0,
		"heat_pump.subsidy_programme":     string(model.SubsidyNone),
		"heat_pump.subsidy_cap":           30000.0,
		"assumptions.co2_price_from_2027": 250.0,
		"assumptions.electricity_price":   30.0,
		"assumptions.start_year":          now.Year(),
		"assumptions.years":               20,
		"output.format":                   "table",
	}
}

// Range is an inclusive input range.
type Range struct {
	Field    string
	Min, Max float64
}

// Ranges returns the accepted input ranges for fuel relative to now.
func Ranges(fuel model.FuelType, now time.Time) []Range {
	intensity := Range{Field: "heating.co2_intensity", Min: 200, Max: 400}
	price := Range{Field: "heating.current_price", Min: 0, Max: 30}
	if fuel == model.FuelOil {
		intensity = Range{Field: "heating.co2_intensity", Min: 2000, Max: 4000}
		price = Range{Field: "heating.current_price", Min: 0.5, Max: 2.0}
	}
	y := float64(now.Year())
	return []Range{
		intensity,
		price,
		{Field: "heating.replacement_cost", Min: 0, Max: 20000},
		{Field: "heating.boiler_efficiency", Min: 50, Max: 110},
		{Field: "heat_pump.upfront_cost", Min: 5000, Max: 50000},
		{Field: "heat_pump.jaz", Min: 2.0, Max: 8.0},
		{Field: "heat_pump.subsidy_percent", Min: 0, Max: 100},
		{Field: "heat_pump.subsidy_cap", Min: 0, Max: 100000},
		{Field: "assumptions.co2_price_from_2027", Min: 50, Max: 1000},
		{Field: "assumptions.electricity_price", Min: 20, Max: 60},
		{Field: "assumptions.start_year", Min: y - 10, Max: y + 10},
		{Field: "assumptions.years", Min: 5, Max: 50},
	}
}

// Adjustment records a value moved into its accepted range.
type Adjustment struct {
	Field string
	From  float64
	To    float64
}

func (a Adjustment) String() string {
	return fmt.Sprintf("%s: %g clamped to %g", a.Field, a.From, a.To)
}

// SetDefaults derives the subsidy percentage from the programme when
// none was given explicitly.
func (c *ScenarioConfig) SetDefaults(percentSet bool) {
	if percentSet {
		return
	}
	if p, err := model.ParseSubsidyProgramme(c.HeatPump.SubsidyProgramme); err == nil {
		c.HeatPump.SubsidyPercent = p.Percent()
	}
}

// Validate checks the enumerations. Numeric bounds are enforced by
// Clamp and by the engine.
func (c ScenarioConfig) Validate() error {
	var errs []error
	if _, err := model.ParseFuelType(c.Heating.Fuel); err != nil {
		errs = append(errs, fmt.Errorf("heating.fuel: %w", err))
	}
	if _, err := model.ParseSubsidyProgramme(c.HeatPump.SubsidyProgramme); err != nil {
		errs = append(errs, fmt.Errorf("heat_pump.subsidy_programme: %w", err))
	}
	return errors.Join(errs...)
}

// Clamp moves every ranged input into its accepted interval and reports
// what was changed.
func (c *ScenarioConfig) Clamp(now time.Time) []Adjustment {
	fuel, _ := model.ParseFuelType(c.Heating.Fuel)
	fields := map[string]*float64{
		"heating.co2_intensity":           &c.Heating.CO2Intensity,
		"heating.current_price":           &c.Heating.CurrentPrice,
		"heating.replacement_cost":        &c.Heating.ReplacementCost,
		"heating.boiler_efficiency":       &c.Heating.BoilerEfficiency,
		"heat_pump.upfront_cost":          &c.HeatPump.UpfrontCost,
		"heat_pump.jaz":                   &c.HeatPump.JAZ,
		"heat_pump.subsidy_percent":       &c.HeatPump.SubsidyPercent,
		"heat_pump.subsidy_cap":           &c.HeatPump.SubsidyCap,
		"assumptions.co2_price_from_2027": &c.Assumptions.CO2PriceFrom2027,
		"assumptions.electricity_price":   &c.Assumptions.ElectricityPrice,
	}
	startYear := float64(c.Assumptions.StartYear)
	years := float64(c.Assumptions.Years)
	fields["assumptions.start_year"] = &startYear
	fields["assumptions.years"] = &years

	var adj []Adjustment
	for _, r := range Ranges(fuel, now) {
		v := fields[r.Field]
		clamped := min(max(*v, r.Min), r.Max)
		if clamped != *v {
			adj = append(adj, Adjustment{Field: r.Field, From: *v, To: clamped})
			*v = clamped
		}
	}
	c.Assumptions.StartYear = int(startYear)
	c.Assumptions.Years = int(years)
	return adj
}

// Scenario converts the configuration into an engine snapshot.
func (c ScenarioConfig) Scenario() (model.Scenario, error) {
	fuel, err := model.ParseFuelType(c.Heating.Fuel)
	if err != nil {
		return model.Scenario{}, err
	}
	return model.Scenario{
		Fossil: model.FossilSystemConfig{
			Fuel:              fuel,
			CO2Intensity:      c.Heating.CO2Intensity,
			AnnualConsumption: c.Heating.AnnualConsumption,
			CurrentFuelPrice:  c.Heating.CurrentPrice,
			ReplacementCost:   c.Heating.ReplacementCost,
			BoilerEfficiency:  c.Heating.BoilerEfficiency,
		},
		HeatPump: model.HeatPumpConfig{
			UpfrontCost:               c.HeatPump.UpfrontCost,
			SeasonalPerformanceFactor: c.HeatPump.JAZ,
			SubsidyPercent:            c.HeatPump.SubsidyPercent,
			SubsidyCap:                c.HeatPump.SubsidyCap,
		},
		Assumptions: model.ScenarioAssumptions{
			CO2PricePre2027:  model.CO2PricePre2027,
			CO2PriceFrom2027: c.Assumptions.CO2PriceFrom2027,
			ElectricityPrice: c.Assumptions.ElectricityPrice,
			StartYear:        c.Assumptions.StartYear,
			ProjectionYears:  c.Assumptions.Years,
		},
	}, nil
}
