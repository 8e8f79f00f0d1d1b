package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/heatcalc/pkg/export"
)

// scenarioFlags maps scenario flags to configuration keys.
var scenarioFlags = map[string]string{
	"fuel":              "heating.fuel",
	"co2-price":         "assumptions.co2_price_from_2027",
	"electricity-price": "assumptions.electricity_price",
	"start-year":        "assumptions.start_year",
	"years":             "assumptions.years",
	"subsidy":           "heat_pump.subsidy_programme",
}

var outputFlags = map[string]string{
	"format": "output.format",
	"out":    "output.path",
}

func addScenarioFlags(c *cobra.Command) {
	f := c.Flags()
	f.String("fuel", "gas", "fossil fuel: gas or oil")
	f.Float64("co2-price", 250, "expected carbon price from 2027 in €/t")
	f.Float64("electricity-price", 30, "expected electricity price in ct/kWh")
	f.Int("start-year", 0, "first projected year (default current year)")
	f.Int("years", 20, "number of projected years")
	f.String("subsidy", "none", "subsidy programme: none, beg, beg-fast, beg-max")
}

func addOutputFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringP("format", "f", "table", fmt.Sprintf("output format %v", export.Formats))
	f.StringP("out", "o", "", "write the report to this file instead of stdout")
}

// overrides collects the flags set explicitly on the command line, so
// that unset flags leave config file and environment values alone.
func overrides(c *cobra.Command, bindings ...map[string]string) map[string]any {
	out := map[string]any{}
	for _, b := range bindings {
		for name, key := range b {
			fl := c.Flags().Lookup(name)
			if fl != nil && fl.Changed {
				out[key] = fl.Value.String()
			}
		}
	}
	return out
}

// openOutput returns the report destination. Binary formats are never
// written to stdout.
func openOutput(c *cobra.Command, path string, f export.Format) (io.Writer, func() error, error) {
	if path == "" && f.Binary() {
		path = "heatcalc" + f.Extension()
	}
	if path == "" {
		return c.OutOrStdout(), func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return file, file.Close, nil
}
