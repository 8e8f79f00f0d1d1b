package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/heatcalc/app"
	"github.com/kilianp07/heatcalc/config"
	"github.com/kilianp07/heatcalc/core/model"
	"github.com/kilianp07/heatcalc/core/projection"
	"github.com/kilianp07/heatcalc/infra/logger"
	"github.com/kilianp07/heatcalc/pkg/export"
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Sweep the carbon or electricity price and report break-even per value",
	RunE:  runSensitivity,
}

func init() {
	addScenarioFlags(sensitivityCmd)
	addOutputFlags(sensitivityCmd)
	f := sensitivityCmd.Flags()
	f.String("parameter", string(projection.SweepCO2Price), "swept input: co2_price or electricity_price")
	f.Float64("min", 0, "lowest value (default lower input bound)")
	f.Float64("max", 0, "highest value (default upper input bound)")
	f.Int("steps", 10, "number of grid values, at least 2")
	rootCmd.AddCommand(sensitivityCmd)
}

// sweepBounds returns the accepted range of the swept input.
func sweepBounds(p projection.SweepParameter) (float64, float64) {
	key := "assumptions.co2_price_from_2027"
	if p == projection.SweepElectricityPrice {
		key = "assumptions.electricity_price"
	}
	for _, r := range config.Ranges(model.FuelGas, timeNow()) {
		if r.Field == key {
			return r.Min, r.Max
		}
	}
	return 0, 0
}

func sweepConfig(cmd *cobra.Command) (projection.SweepConfig, error) {
	f := cmd.Flags()
	param, _ := f.GetString("parameter")
	sc := projection.SweepConfig{Parameter: projection.SweepParameter(param)}
	sc.Min, sc.Max = sweepBounds(sc.Parameter)
	if f.Changed("min") {
		sc.Min, _ = f.GetFloat64("min")
	}
	if f.Changed("max") {
		sc.Max, _ = f.GetFloat64("max")
	}
	sc.Steps, _ = f.GetInt("steps")
	if err := sc.Validate(); err != nil {
		return sc, err
	}
	return sc, nil
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	sweep, err := sweepConfig(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.LoadWithOverrides(cfgPath, overrides(cmd, scenarioFlags, outputFlags))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	res, err := svc.Sensitivity(cmd.Context(), cfg.ScenarioConfig, sweep)
	if err != nil {
		return err
	}
	w, closeOut, err := openOutput(cmd, cfg.Output.Path, format)
	if err != nil {
		return err
	}
	if err := export.WriteSweep(w, format, res.Config, res.Points); err != nil {
		_ = closeOut()
		return fmt.Errorf("render %s: %w", format, err)
	}
	return closeOut()
}
