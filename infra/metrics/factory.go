package metrics

import (
	"github.com/kilianp07/heatcalc/core/factory"
	coremetrics "github.com/kilianp07/heatcalc/core/metrics"
)

// init registers built-in projection sinks.
func init() {
	_ = coremetrics.RegisterProjectionSink("nop", func(map[string]any) (coremetrics.ProjectionSink, error) {
		return coremetrics.NopSink{}, nil
	})

	_ = coremetrics.RegisterProjectionSink("prometheus", func(conf map[string]any) (coremetrics.ProjectionSink, error) {
		var c struct {
			Textfile string `json:"textfile"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewPromSink(c.Textfile)
	})

	_ = coremetrics.RegisterProjectionSink("influx", func(conf map[string]any) (coremetrics.ProjectionSink, error) {
		var c struct {
			URL    string `json:"url"`
			Token  string `json:"token"`
			Org    string `json:"org"`
			Bucket string `json:"bucket"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket), nil
	})
}
