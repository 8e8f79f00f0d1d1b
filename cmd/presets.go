package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/heatcalc/config"
	"github.com/kilianp07/heatcalc/core/model"
	"github.com/kilianp07/heatcalc/pkg/export"
)

// timeNow is replaced in tests.
var timeNow = time.Now

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List subsidy programmes, fuel defaults and input ranges",
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Subsidy programme\tPercent\tDescription")
	for _, p := range model.SubsidyProgrammes {
		fmt.Fprintf(tw, "%s\t%s %%\t%s\n", p, export.Number(p.Percent()), p.Description())
	}
	fmt.Fprintln(tw)

	now := timeNow()
	for _, fuel := range []model.FuelType{model.FuelGas, model.FuelOil} {
		d := config.DefaultsFor(fuel)
		fmt.Fprintf(tw, "%s\tDefault\tRange\n", fuel.Label())
		fmt.Fprintf(tw, "co2_intensity\t%s %s\t\n", export.Number(d.CO2Intensity), fuel.IntensityUnit())
		fmt.Fprintf(tw, "annual_consumption\t%s %s\t\n", export.Number(d.AnnualConsumption), fuel.ConsumptionUnit())
		fmt.Fprintf(tw, "current_price\t%s %s\t\n", export.Cents(d.CurrentPrice), fuel.PriceUnit())
		for _, r := range config.Ranges(fuel, now) {
			fmt.Fprintf(tw, "%s\t\t%g - %g\n", r.Field, r.Min, r.Max)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
