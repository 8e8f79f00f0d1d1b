package monitoring

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/heatcalc/config"
	coremon "github.com/kilianp07/heatcalc/core/monitoring"
)

type captureTransport struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (t *captureTransport) Configure(sentry.ClientOptions) {}
func (t *captureTransport) Flush(time.Duration) bool       { return true }
func (t *captureTransport) Close()                         {}

func (t *captureTransport) SendEvent(e *sentry.Event) {
	t.mu.Lock()
	t.events = append(t.events, e)
	t.mu.Unlock()
}

func TestNewSentryMonitor_DisabledWithoutDSN(t *testing.T) {
	m, err := NewSentryMonitor(config.SentryConfig{})
	require.NoError(t, err)
	assert.IsType(t, coremon.NopMonitor{}, m)
}

func TestSentryMonitor_CaptureException(t *testing.T) {
	tr := &captureTransport{}
	m, err := newSentryMonitor(config.SentryConfig{
		DSN:         "https://public@example.com/1",
		Environment: "test",
		Tags:        map[string]string{"app": "heatcalc"},
	}, tr)
	require.NoError(t, err)

	m.CaptureException(nil, nil)
	m.CaptureException(errors.New("projection failed"), map[string]string{"command": "project"})
	m.Flush(time.Second)

	tr.mu.Lock()
	defer tr.mu.Unlock()
	require.Len(t, tr.events, 1)
	ev := tr.events[0]
	assert.Equal(t, "test", ev.Environment)
	assert.Equal(t, "heatcalc", ev.Tags["app"])
	assert.Equal(t, "project", ev.Tags["command"])
}
