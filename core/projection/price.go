package projection

import "github.com/kilianp07/heatcalc/core/model"

// CarbonMarkup is the loading applied on top of the raw carbon cost.
const CarbonMarkup = 1.19

// CarbonSurcharge converts a CO2 intensity in g/kWh and a carbon price in
// €/t into a surcharge in ct/kWh.
func CarbonSurcharge(intensityGPerKWh, pricePerTonne float64) float64 {
	perEUR := CarbonMarkup * intensityGPerKWh / 1_000_000
	return 100 * perEUR * pricePerTonne
}

// CurrentDeliveredPrice returns the price of delivered heat at today's
// fuel price in ct/kWh.
func CurrentDeliveredPrice(f model.FossilSystemConfig) float64 {
	return 100 * f.PriceCtPerKWh() / f.BoilerEfficiency
}

// FossilDeliveredPrice returns the delivered heat price in ct/kWh for
// year. The quoted fuel price already contains the pre-2027 carbon cost,
// which is swapped for the surcharge of the year's bracket.
func FossilDeliveredPrice(f model.FossilSystemConfig, a model.ScenarioAssumptions, year int) float64 {
	intensity := f.IntensityPerKWh()
	base := f.PriceCtPerKWh() - CarbonSurcharge(intensity, a.CO2PricePre2027)
	return (base + CarbonSurcharge(intensity, a.CarbonPrice(year))) / f.EfficiencyFraction()
}

// HeatPumpDeliveredPrice returns the delivered heat price of the heat
// pump in ct/kWh. Electricity carries no carbon surcharge and does not
// escalate.
func HeatPumpDeliveredPrice(h model.HeatPumpConfig, a model.ScenarioAssumptions) float64 {
	return a.ElectricityPrice / h.SeasonalPerformanceFactor
}

// Summarize computes the intermediate prices shown next to the table.
func Summarize(s model.Scenario) model.PriceSummary {
	f, h, a := s.Fossil, s.HeatPump, s.Assumptions
	kwh := f.ConsumptionKWh()
	intensity := f.IntensityPerKWh()
	pre := FossilDeliveredPrice(f, a, model.CarbonPriceChangeYear-1)
	post := FossilDeliveredPrice(f, a, model.CarbonPriceChangeYear)
	hp := HeatPumpDeliveredPrice(h, a)
	return model.PriceSummary{
		CO2PricePre2027:      a.CO2PricePre2027,
		CO2PriceFrom2027:     a.CO2PriceFrom2027,
		SurchargePre2027:     CarbonSurcharge(intensity, a.CO2PricePre2027),
		SurchargeFrom2027:    CarbonSurcharge(intensity, a.CO2PriceFrom2027),
		FossilCurrentPrice:   CurrentDeliveredPrice(f),
		FossilFrom2027Price:  post,
		HeatPumpPrice:        hp,
		FossilAnnualPre2027:  kwh * pre / 100,
		FossilAnnualFrom2027: kwh * post / 100,
		HeatPumpAnnual:       kwh * hp / 100,
		NetUpfrontCost:       h.NetUpfrontCost(),
	}
}
