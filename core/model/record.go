package model

// Bracket identifies the carbon price tier a year falls into.
type Bracket int

const (
	BracketPre2027 Bracket = iota
	BracketFrom2027
)

// BracketFor returns the carbon price bracket of year. The switch is
// discrete: there is no blending around the change year.
func BracketFor(year int) Bracket {
	if year < CarbonPriceChangeYear {
		return BracketPre2027
	}
	return BracketFrom2027
}

func (b Bracket) String() string {
	if b == BracketPre2027 {
		return "pre-2027"
	}
	return "from-2027"
}

// MarshalText implements encoding.TextMarshaler.
func (b Bracket) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// YearlyRecord is one row of the projection. Costs are whole currency
// units.
type YearlyRecord struct {
	Year               int     `json:"year" yaml:"year"`
	Bracket            Bracket `json:"bracket" yaml:"bracket"`
	FossilCost         float64 `json:"fossil_cost" yaml:"fossil_cost"`
	HeatPumpCost       float64 `json:"heatpump_cost" yaml:"heatpump_cost"`
	FossilCumulative   float64 `json:"fossil_cumulative" yaml:"fossil_cumulative"`
	HeatPumpCumulative float64 `json:"heatpump_cumulative" yaml:"heatpump_cumulative"`
	Savings            float64 `json:"savings" yaml:"savings"`
	SavingsCumulative  float64 `json:"savings_cumulative" yaml:"savings_cumulative"`
}

// PriceSummary gathers the intermediate prices of a scenario.
type PriceSummary struct {
	CO2PricePre2027  float64 `json:"co2_price_pre_2027" yaml:"co2_price_pre_2027"`
	CO2PriceFrom2027 float64 `json:"co2_price_from_2027" yaml:"co2_price_from_2027"`
	// Carbon surcharges in ct/kWh.
	SurchargePre2027  float64 `json:"surcharge_pre_2027" yaml:"surcharge_pre_2027"`
	SurchargeFrom2027 float64 `json:"surcharge_from_2027" yaml:"surcharge_from_2027"`
	// Delivered heat prices in ct/kWh.
	FossilCurrentPrice  float64 `json:"fossil_current_price" yaml:"fossil_current_price"`
	FossilFrom2027Price float64 `json:"fossil_from_2027_price" yaml:"fossil_from_2027_price"`
	HeatPumpPrice       float64 `json:"heatpump_price" yaml:"heatpump_price"`
	// Annual running costs in €, unrounded.
	FossilAnnualPre2027  float64 `json:"fossil_annual_pre_2027" yaml:"fossil_annual_pre_2027"`
	FossilAnnualFrom2027 float64 `json:"fossil_annual_from_2027" yaml:"fossil_annual_from_2027"`
	HeatPumpAnnual       float64 `json:"heatpump_annual" yaml:"heatpump_annual"`
	NetUpfrontCost       float64 `json:"net_upfront_cost" yaml:"net_upfront_cost"`
}

// BreakEven reports the first year in which the heat pump is at least
// as cheap as the fossil system in total.
type BreakEven struct {
	Year    int  `json:"year" yaml:"year"`
	Reached bool `json:"reached" yaml:"reached"`
}

// Projection is the complete result of one engine invocation.
type Projection struct {
	Scenario  Scenario       `json:"scenario" yaml:"scenario"`
	Prices    PriceSummary   `json:"prices" yaml:"prices"`
	Records   []YearlyRecord `json:"records" yaml:"records"`
	BreakEven BreakEven      `json:"break_even" yaml:"break_even"`
}

// Final returns the last record, or the zero record if there is none.
func (p Projection) Final() YearlyRecord {
	if len(p.Records) == 0 {
		return YearlyRecord{}
	}
	return p.Records[len(p.Records)-1]
}
