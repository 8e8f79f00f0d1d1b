package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/heatcalc/core/factory"
	"github.com/kilianp07/heatcalc/core/metrics"
)

func init() {
	_ = metrics.RegisterProjectionSink("test-nop", func(map[string]any) (metrics.ProjectionSink, error) {
		return metrics.NopSink{}, nil
	})
}

func TestNewProjectionSink(t *testing.T) {
	s, err := metrics.NewProjectionSink(nil)
	require.NoError(t, err)
	assert.IsType(t, metrics.NopSink{}, s)

	s, err = metrics.NewProjectionSink([]factory.ModuleConfig{{Type: "test-nop"}})
	require.NoError(t, err)
	assert.IsType(t, metrics.NopSink{}, s)

	s, err = metrics.NewProjectionSink([]factory.ModuleConfig{{Type: "test-nop"}, {Type: "test-nop"}})
	require.NoError(t, err)
	m, ok := s.(*metrics.MultiSink)
	require.True(t, ok)
	assert.Len(t, m.Sinks, 2)

	_, err = metrics.NewProjectionSink([]factory.ModuleConfig{{Type: "test-nop"}, {Type: "missing"}})
	assert.Error(t, err)
	assert.Contains(t, metrics.SinkTypes(), "test-nop")
}
