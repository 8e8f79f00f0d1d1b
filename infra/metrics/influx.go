package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/heatcalc/core/metrics"
	"github.com/kilianp07/heatcalc/infra/logger"
)

// InfluxSink writes projection rows to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.ProjectionSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// yearTime places a projected year on the time axis.
func yearTime(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// projectionPoints converts a projection into line protocol points: two
// heating_cost points per year and one break_even point stamped at ts.
func projectionPoints(ev coremetrics.ProjectionEvent) []*write.Point {
	p := ev.Projection
	fuel := ev.Fuel()
	points := make([]*write.Point, 0, 2*len(p.Records)+1)
	for _, r := range p.Records {
		for _, sys := range []struct {
			name       string
			cost, cumu float64
		}{
			{"fossil", r.FossilCost, r.FossilCumulative},
			{"heatpump", r.HeatPumpCost, r.HeatPumpCumulative},
		} {
			points = append(points, write.NewPointWithMeasurement("heating_cost").
				AddTag("run_id", ev.RunID).
				AddTag("fuel", fuel).
				AddTag("system", sys.name).
				AddTag("bracket", r.Bracket.String()).
				AddField("cost", sys.cost).
				AddField("cumulative", sys.cumu).
				SetTime(yearTime(r.Year)))
		}
	}
	points = append(points, write.NewPointWithMeasurement("break_even").
		AddTag("run_id", ev.RunID).
		AddTag("fuel", fuel).
		AddField("reached", p.BreakEven.Reached).
		AddField("year", int64(p.BreakEven.Year)).
		AddField("final_savings", p.Final().SavingsCumulative).
		SetTime(ev.Time))
	return points
}

// RecordProjection writes every projected year as a point.
func (s *InfluxSink) RecordProjection(ev coremetrics.ProjectionEvent) error {
	if ev.Projection == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.writeAPI.WritePoint(ctx, projectionPoints(ev)...)
}

// RecordSweep writes a sensitivity sweep summary.
func (s *InfluxSink) RecordSweep(ev coremetrics.SweepEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("sensitivity_sweep").
		AddTag("run_id", ev.RunID).
		AddTag("parameter", ev.Parameter).
		AddField("points", int64(ev.Points)).
		AddField("reached", int64(ev.Reached)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() error {
	s.client.Close()
	return nil
}
