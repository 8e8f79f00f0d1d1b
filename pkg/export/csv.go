package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/kilianp07/heatcalc/core/model"
	"github.com/kilianp07/heatcalc/core/projection"
)

var csvHeader = []string{
	"year", "bracket",
	"fossil_cost", "heatpump_cost",
	"fossil_cumulative", "heatpump_cumulative",
	"savings", "savings_cumulative",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes the yearly records to w in CSV format.
func WriteCSV(w io.Writer, p *model.Projection) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range p.Records {
		rec := []string{
			strconv.Itoa(r.Year),
			r.Bracket.String(),
			formatFloat(r.FossilCost),
			formatFloat(r.HeatPumpCost),
			formatFloat(r.FossilCumulative),
			formatFloat(r.HeatPumpCumulative),
			formatFloat(r.Savings),
			formatFloat(r.SavingsCumulative),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSweepCSV writes the sweep points to w in CSV format. The break-even
// column is empty when it is not reached.
func WriteSweepCSV(w io.Writer, cfg projection.SweepConfig, points []projection.SweepPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{string(cfg.Parameter), "break_even_year", "final_savings"}); err != nil {
		return err
	}
	for _, pt := range points {
		be := ""
		if pt.BreakEven.Reached {
			be = strconv.Itoa(pt.BreakEven.Year)
		}
		if err := cw.Write([]string{formatFloat(pt.Value), be, formatFloat(pt.FinalSavings)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
