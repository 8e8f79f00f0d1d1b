package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kilianp07/heatcalc/core/model"
	"github.com/kilianp07/heatcalc/core/projection"
)

// Series names of the projection chart.
const (
	SeriesFossil   = "Cumulative fossil"
	SeriesHeatPump = "Cumulative heat pump"
	SeriesSavings  = "Cumulative savings"
)

// WriteChartHTML renders the cumulative costs and savings per year as a
// standalone HTML line chart.
func WriteChartHTML(w io.Writer, p *model.Projection) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "heatcalc"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s vs. heat pump", p.Scenario.Fossil.Fuel.Label()),
			Subtitle: "Break-even: " + breakEvenText(p.BreakEven),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "€"}),
	)

	years := make([]string, 0, len(p.Records))
	fossil := make([]opts.LineData, 0, len(p.Records))
	hp := make([]opts.LineData, 0, len(p.Records))
	savings := make([]opts.LineData, 0, len(p.Records))
	for _, r := range p.Records {
		years = append(years, strconv.Itoa(r.Year))
		fossil = append(fossil, opts.LineData{Value: r.FossilCumulative})
		hp = append(hp, opts.LineData{Value: r.HeatPumpCumulative})
		savings = append(savings, opts.LineData{Value: r.SavingsCumulative})
	}
	line.SetXAxis(years).
		AddSeries(SeriesFossil, fossil).
		AddSeries(SeriesHeatPump, hp).
		AddSeries(SeriesSavings, savings)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// WriteSweepChartHTML renders final savings against the swept parameter.
func WriteSweepChartHTML(w io.Writer, cfg projection.SweepConfig, points []projection.SweepPoint) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "heatcalc sensitivity"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Final savings by %s", cfg.Parameter)}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: string(cfg.Parameter)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "€"}),
	)
	xs := make([]string, 0, len(points))
	ys := make([]opts.LineData, 0, len(points))
	for _, pt := range points {
		xs = append(xs, formatFloat(pt.Value))
		ys = append(ys, opts.LineData{Value: pt.FinalSavings})
	}
	line.SetXAxis(xs).AddSeries("Final savings", ys)
	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
