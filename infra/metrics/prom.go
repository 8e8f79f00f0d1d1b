package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/heatcalc/core/metrics"
)

// PromSink records projection results in Prometheus metrics. Nothing is
// served over HTTP: when a textfile path is set the gathered metrics are
// written there on Flush, in the format read by node_exporter's textfile
// collector.
type PromSink struct {
	gatherer    prometheus.Gatherer
	textfile    string
	cumulative  *prometheus.GaugeVec
	breakEven   *prometheus.GaugeVec
	savings     *prometheus.GaugeVec
	projections *prometheus.CounterVec
	sweeps      *prometheus.CounterVec
}

// NewPromSink registers projection metrics on a fresh registry.
func NewPromSink(textfile string) (*PromSink, error) {
	reg := prometheus.NewRegistry()
	return NewPromSinkWithRegistry(textfile, reg, reg)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer and a nil
// gatherer to the global gatherer.
func NewPromSinkWithRegistry(textfile string, reg prometheus.Registerer, g prometheus.Gatherer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	cumulative, err := registerGaugeVec(reg, prometheus.GaugeOpts{
		Name: "heatcalc_cost_cumulative_eur",
		Help: "Cumulative heating cost per projected year",
	}, []string{"fuel", "system", "year"})
	if err != nil {
		return nil, err
	}
	breakEven, err := registerGaugeVec(reg, prometheus.GaugeOpts{
		Name: "heatcalc_breakeven_year",
		Help: "First year from which the heat pump stays cheaper in total, 0 if never",
	}, []string{"fuel"})
	if err != nil {
		return nil, err
	}
	savings, err := registerGaugeVec(reg, prometheus.GaugeOpts{
		Name: "heatcalc_final_savings_eur",
		Help: "Cumulative savings at the end of the projection",
	}, []string{"fuel"})
	if err != nil {
		return nil, err
	}
	projections, err := registerCounterVec(reg, prometheus.CounterOpts{
		Name: "heatcalc_projections_total",
		Help: "Total number of projections computed",
	}, []string{"fuel"})
	if err != nil {
		return nil, err
	}
	sweeps, err := registerCounterVec(reg, prometheus.CounterOpts{
		Name: "heatcalc_sweep_points_total",
		Help: "Total number of sensitivity sweep points computed",
	}, []string{"parameter"})
	if err != nil {
		return nil, err
	}
	return &PromSink{
		gatherer:    g,
		textfile:    textfile,
		cumulative:  cumulative,
		breakEven:   breakEven,
		savings:     savings,
		projections: projections,
		sweeps:      sweeps,
	}, nil
}

func registerGaugeVec(reg prometheus.Registerer, opts prometheus.GaugeOpts, labels []string) (*prometheus.GaugeVec, error) {
	g := prometheus.NewGaugeVec(opts, labels)
	if err := reg.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.GaugeVec), nil
		}
		return nil, err
	}
	return g, nil
}

func registerCounterVec(reg prometheus.Registerer, opts prometheus.CounterOpts, labels []string) (*prometheus.CounterVec, error) {
	c := prometheus.NewCounterVec(opts, labels)
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec), nil
		}
		return nil, err
	}
	return c, nil
}

// RecordProjection sets the cumulative cost gauges for every year.
func (s *PromSink) RecordProjection(ev coremetrics.ProjectionEvent) error {
	if ev.Projection == nil {
		return nil
	}
	fuel := ev.Fuel()
	for _, r := range ev.Projection.Records {
		year := strconv.Itoa(r.Year)
		s.cumulative.WithLabelValues(fuel, "fossil", year).Set(r.FossilCumulative)
		s.cumulative.WithLabelValues(fuel, "heatpump", year).Set(r.HeatPumpCumulative)
	}
	be := 0.0
	if ev.Projection.BreakEven.Reached {
		be = float64(ev.Projection.BreakEven.Year)
	}
	s.breakEven.WithLabelValues(fuel).Set(be)
	s.savings.WithLabelValues(fuel).Set(ev.Projection.Final().SavingsCumulative)
	s.projections.WithLabelValues(fuel).Inc()
	return nil
}

// RecordSweep counts the evaluated sweep points.
func (s *PromSink) RecordSweep(ev coremetrics.SweepEvent) error {
	s.sweeps.WithLabelValues(ev.Parameter).Add(float64(ev.Points))
	return nil
}

// Flush writes the gathered metrics to the textfile, if configured.
func (s *PromSink) Flush() error {
	if s.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(s.textfile, s.gatherer)
}
