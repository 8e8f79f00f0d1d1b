package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kilianp07/heatcalc/core/monitoring"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "heatcalc",
	Short: "Heat pump vs. fossil boiler break-even calculator",
	Long: `heatcalc projects the yearly and cumulative running costs of a gas or
oil boiler and of a heat pump, including the carbon price change in 2027,
and reports the year from which the heat pump is cheaper overall.`,
	SilenceUsage: true,
	RunE:         runProject,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	addProjectFlags(rootCmd)
}

// Execute runs the CLI. Command failures are reported to the monitor.
func Execute() error {
	defer monitoring.Recover()
	cmd, err := rootCmd.ExecuteContextC(context.Background())
	if err != nil {
		monitoring.CaptureException(err, map[string]string{"command": cmd.Name()})
	}
	return err
}
