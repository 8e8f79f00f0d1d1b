package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/heatcalc/config"
	coremetrics "github.com/kilianp07/heatcalc/core/metrics"
	"github.com/kilianp07/heatcalc/core/model"
	"github.com/kilianp07/heatcalc/core/monitoring"
	"github.com/kilianp07/heatcalc/core/projection"
	"github.com/kilianp07/heatcalc/infra/logger"
	_ "github.com/kilianp07/heatcalc/infra/metrics" // registers projection sinks
	inframon "github.com/kilianp07/heatcalc/infra/monitoring"
)

// Service runs projections for the CLI and reports them to the
// configured sinks. Every call builds its scenario from scratch.
type Service struct {
	log   logger.Logger
	sink  coremetrics.ProjectionSink
	now   func() time.Time
	newID func() string
}

// Result is the outcome of one projection run.
type Result struct {
	RunID       string
	Projection  *model.Projection
	Adjustments []config.Adjustment
}

// SweepResult is the outcome of one sensitivity sweep.
type SweepResult struct {
	RunID       string
	Config      projection.SweepConfig
	Points      []projection.SweepPoint
	Adjustments []config.Adjustment
}

// New configures logging, error monitoring and metrics from cfg.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.Configure(cfg.Logging); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	mon, err := inframon.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	monitoring.Init(mon)
	sink, err := coremetrics.NewProjectionSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return NewWithSink(sink, logger.New("service")), nil
}

// NewWithSink creates a Service reporting to sink. A nil sink or logger
// is replaced by a no-op.
func NewWithSink(sink coremetrics.ProjectionSink, log logger.Logger) *Service {
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Service{log: log, sink: sink, now: time.Now, newID: uuid.NewString}
}

func (s *Service) prepare(sc config.ScenarioConfig, runID string) (model.Scenario, []config.Adjustment, error) {
	adj := sc.Clamp(s.now())
	for _, a := range adj {
		s.log.Warnf("run %s: %s", runID, a)
	}
	scenario, err := sc.Scenario()
	if err != nil {
		return model.Scenario{}, adj, fmt.Errorf("scenario: %w", err)
	}
	return scenario, adj, nil
}

func (s *Service) fail(err error, runID, command string) error {
	monitoring.CaptureException(err, map[string]string{"run_id": runID, "command": command})
	return err
}

// Project clamps the inputs, runs the engine and records the result.
// Sink failures are logged and do not fail the run.
func (s *Service) Project(ctx context.Context, sc config.ScenarioConfig) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	runID := s.newID()
	scenario, adj, err := s.prepare(sc, runID)
	if err != nil {
		return nil, s.fail(err, runID, "project")
	}
	p, err := projection.Run(scenario)
	if err != nil {
		return nil, s.fail(err, runID, "project")
	}

	final := p.Final()
	s.log.Infow("projection complete", map[string]any{
		"run_id":        runID,
		"fuel":          scenario.Fossil.Fuel.String(),
		"years":         len(p.Records),
		"break_even":    p.BreakEven.Year,
		"reached":       p.BreakEven.Reached,
		"final_savings": final.SavingsCumulative,
	})
	ev := coremetrics.ProjectionEvent{RunID: runID, Projection: p, Time: s.now()}
	if err := s.sink.RecordProjection(ev); err != nil {
		s.log.Warnf("run %s: record projection: %v", runID, err)
	}
	return &Result{RunID: runID, Projection: p, Adjustments: adj}, nil
}

// Sensitivity sweeps one parameter over the clamped scenario.
func (s *Service) Sensitivity(ctx context.Context, sc config.ScenarioConfig, sweep projection.SweepConfig) (*SweepResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	runID := s.newID()
	scenario, adj, err := s.prepare(sc, runID)
	if err != nil {
		return nil, s.fail(err, runID, "sensitivity")
	}
	points, err := projection.Sweep(scenario, sweep)
	if err != nil {
		return nil, s.fail(err, runID, "sensitivity")
	}
	reached := 0
	for _, pt := range points {
		if pt.BreakEven.Reached {
			reached++
		}
	}
	s.log.Infow("sweep complete", map[string]any{
		"run_id":    runID,
		"parameter": string(sweep.Parameter),
		"points":    len(points),
		"reached":   reached,
	})
	if rec, ok := s.sink.(coremetrics.SweepRecorder); ok {
		ev := coremetrics.SweepEvent{
			RunID:     runID,
			Parameter: string(sweep.Parameter),
			Points:    len(points),
			Reached:   reached,
			Time:      s.now(),
		}
		if err := rec.RecordSweep(ev); err != nil {
			s.log.Warnf("run %s: record sweep: %v", runID, err)
		}
	}
	return &SweepResult{RunID: runID, Config: sweep, Points: points, Adjustments: adj}, nil
}

// Flush writes buffered metrics, e.g. the Prometheus textfile.
func (s *Service) Flush() error {
	if f, ok := s.sink.(coremetrics.Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes metrics and monitoring and releases sink resources.
func (s *Service) Close() error {
	var errs []error
	if err := s.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("flush metrics: %w", err))
	}
	if c, ok := s.sink.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close metrics: %w", err))
		}
	}
	monitoring.Flush(2 * time.Second)
	if err := logger.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close log file: %w", err))
	}
	return errors.Join(errs...)
}
