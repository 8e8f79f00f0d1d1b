package model

// CO2PricePre2027 is the fixed national carbon price in €/t before the
// change year. It is not user editable.
const CO2PricePre2027 = 55.0

// CarbonPriceChangeYear is the first year charged at the user chosen
// carbon price.
const CarbonPriceChangeYear = 2027

// FossilSystemConfig describes the existing (or replacement) boiler.
// Quantities are given in the fuel's native units, see FuelType.
type FossilSystemConfig struct {
	Fuel              FuelType `json:"fuel" yaml:"fuel"`
	CO2Intensity      float64  `json:"co2_intensity" yaml:"co2_intensity"`
	AnnualConsumption float64  `json:"annual_consumption" yaml:"annual_consumption"`
	CurrentFuelPrice  float64  `json:"current_fuel_price" yaml:"current_fuel_price"`
	ReplacementCost   float64  `json:"replacement_cost" yaml:"replacement_cost"`
	// BoilerEfficiency in percent; condensing boilers may exceed 100.
	BoilerEfficiency float64 `json:"boiler_efficiency" yaml:"boiler_efficiency"`
}

// ConsumptionKWh returns the annual consumption in kWh.
func (f FossilSystemConfig) ConsumptionKWh() float64 {
	return f.Fuel.ConsumptionKWh(f.AnnualConsumption)
}

// PriceCtPerKWh returns the current fuel price in ct/kWh.
func (f FossilSystemConfig) PriceCtPerKWh() float64 {
	return f.Fuel.PriceCtPerKWh(f.CurrentFuelPrice)
}

// IntensityPerKWh returns the CO2 intensity in g/kWh.
func (f FossilSystemConfig) IntensityPerKWh() float64 {
	return f.Fuel.IntensityPerKWh(f.CO2Intensity)
}

// EfficiencyFraction returns the boiler efficiency as a fraction.
func (f FossilSystemConfig) EfficiencyFraction() float64 {
	return f.BoilerEfficiency / 100
}

// HeatPumpConfig describes the heat pump offer.
type HeatPumpConfig struct {
	UpfrontCost float64 `json:"upfront_cost" yaml:"upfront_cost"`
	// SeasonalPerformanceFactor is the JAZ: heat delivered per kWh of electricity.
	SeasonalPerformanceFactor float64 `json:"seasonal_performance_factor" yaml:"seasonal_performance_factor"`
	SubsidyPercent            float64 `json:"subsidy_percent" yaml:"subsidy_percent"`
	SubsidyCap                float64 `json:"subsidy_cap" yaml:"subsidy_cap"`
}

// SubsidyAmount returns the subsidy, limited by SubsidyCap.
func (h HeatPumpConfig) SubsidyAmount() float64 {
	sub := h.UpfrontCost * h.SubsidyPercent / 100
	if sub > h.SubsidyCap {
		return h.SubsidyCap
	}
	return sub
}

// NetUpfrontCost returns the purchase price after subsidy.
func (h HeatPumpConfig) NetUpfrontCost() float64 {
	return h.UpfrontCost - h.SubsidyAmount()
}

// ScenarioAssumptions holds the market expectations of a scenario.
type ScenarioAssumptions struct {
	CO2PricePre2027  float64 `json:"co2_price_pre_2027" yaml:"co2_price_pre_2027"`
	CO2PriceFrom2027 float64 `json:"co2_price_from_2027" yaml:"co2_price_from_2027"`
	// ElectricityPrice in ct/kWh, constant over the projection.
	ElectricityPrice float64 `json:"electricity_price" yaml:"electricity_price"`
	StartYear        int     `json:"start_year" yaml:"start_year"`
	ProjectionYears  int     `json:"projection_years" yaml:"projection_years"`
}

// CarbonPrice returns the carbon price in €/t applicable to year.
func (a ScenarioAssumptions) CarbonPrice(year int) float64 {
	if BracketFor(year) == BracketPre2027 {
		return a.CO2PricePre2027
	}
	return a.CO2PriceFrom2027
}

// Scenario is one immutable snapshot of all user inputs.
type Scenario struct {
	Fossil      FossilSystemConfig  `json:"fossil" yaml:"fossil"`
	HeatPump    HeatPumpConfig      `json:"heat_pump" yaml:"heat_pump"`
	Assumptions ScenarioAssumptions `json:"assumptions" yaml:"assumptions"`
}
