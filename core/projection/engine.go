package projection

import (
	"fmt"
	"math"

	"github.com/kilianp07/heatcalc/core/model"
)

// Project returns one record per projected year in ascending order.
// Per-year costs are rounded to whole currency units before they are
// accumulated, so cumulative columns are exact sums of the rounded rows.
func Project(s model.Scenario) ([]model.YearlyRecord, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	f, h, a := s.Fossil, s.HeatPump, s.Assumptions
	kwh := f.ConsumptionKWh()
	hpRunning := kwh / h.SeasonalPerformanceFactor * (a.ElectricityPrice / 100)
	netUpfront := h.NetUpfrontCost()

	records := make([]model.YearlyRecord, 0, a.ProjectionYears)
	var fossilCum, hpCum float64
	for i := 0; i < a.ProjectionYears; i++ {
		year := a.StartYear + i
		fossil := kwh * FossilDeliveredPrice(f, a, year) / 100
		hp := hpRunning
		if i == 0 {
			fossil += f.ReplacementCost
			hp += netUpfront
		}
		fossil = roundCurrency(fossil)
		hp = roundCurrency(hp)
		fossilCum += fossil
		hpCum += hp
		records = append(records, model.YearlyRecord{
			Year:               year,
			Bracket:            model.BracketFor(year),
			FossilCost:         fossil,
			HeatPumpCost:       hp,
			FossilCumulative:   fossilCum,
			HeatPumpCumulative: hpCum,
			Savings:            fossil - hp,
			SavingsCumulative:  fossilCum - hpCum,
		})
	}
	return records, nil
}

// Run projects the scenario and derives the price summary and the
// break-even year.
func Run(s model.Scenario) (*model.Projection, error) {
	records, err := Project(s)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	return &model.Projection{
		Scenario:  s,
		Prices:    Summarize(s),
		Records:   records,
		BreakEven: FindBreakEven(records),
	}, nil
}

// FindBreakEven returns the first year from which the cumulative savings
// stay non-negative until the end of the projection.
func FindBreakEven(records []model.YearlyRecord) model.BreakEven {
	be := model.BreakEven{}
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].SavingsCumulative < 0 {
			break
		}
		be = model.BreakEven{Year: records[i].Year, Reached: true}
	}
	return be
}

func roundCurrency(v float64) float64 {
	return math.RoundToEven(v)
}
