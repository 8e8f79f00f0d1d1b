package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/heatcalc/app"
	"github.com/kilianp07/heatcalc/config"
	"github.com/kilianp07/heatcalc/infra/logger"
	"github.com/kilianp07/heatcalc/pkg/export"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project yearly costs and the break-even year (default command)",
	RunE:  runProject,
}

func init() {
	addProjectFlags(projectCmd)
	rootCmd.AddCommand(projectCmd)
}

func addProjectFlags(c *cobra.Command) {
	addScenarioFlags(c)
	addOutputFlags(c)
	c.Flags().Bool("watch", false, "re-run the projection whenever the config file changes")
}

func runProject(cmd *cobra.Command, args []string) error {
	watch, _ := cmd.Flags().GetBool("watch")
	if watch && cfgPath == "" {
		return errors.New("--watch requires --config")
	}
	ov := overrides(cmd, scenarioFlags, outputFlags)
	cfg, err := config.LoadWithOverrides(cfgPath, ov)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
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

	if err := renderProjection(cmd.Context(), cmd, svc, cfg); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return watchProjection(cmd, svc, ov)
}

func renderProjection(ctx context.Context, cmd *cobra.Command, svc *app.Service, cfg *config.Config) error {
	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	res, err := svc.Project(ctx, cfg.ScenarioConfig)
	if err != nil {
		return err
	}
	w, closeOut, err := openOutput(cmd, cfg.Output.Path, format)
	if err != nil {
		return err
	}
	if err := export.Write(w, format, res.Projection); err != nil {
		_ = closeOut()
		return fmt.Errorf("render %s: %w", format, err)
	}
	if err := closeOut(); err != nil {
		return err
	}
	return svc.Flush()
}

// watchProjection re-runs the projection on every config change until
// SIGINT or SIGTERM.
func watchProjection(cmd *cobra.Command, svc *app.Service, ov map[string]any) error {
	log := logger.New("watch")
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reloads := make(chan *config.Config, 1)
	unwatch, err := config.Watch(cfgPath, ov, func(c *config.Config, err error) {
		if err != nil {
			log.Errorf("reload config: %v", err)
			return
		}
		// keep only the latest pending config
		select {
		case <-reloads:
		default:
		}
		reloads <- c
	})
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	defer func() {
		if err := unwatch(); err != nil {
			log.Warnf("unwatch: %v", err)
		}
	}()
	log.Infof("watching %s", cfgPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-reloads:
			if err := renderProjection(ctx, cmd, svc, c); err != nil {
				log.Errorf("projection: %v", err)
			}
		}
	}
}
