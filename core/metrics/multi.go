package metrics

import (
	"errors"
	"io"
)

// MultiSink fans out projection events to multiple sinks.
type MultiSink struct {
	Sinks []ProjectionSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...ProjectionSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordProjection forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordProjection(ev ProjectionEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordProjection(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordSweep forwards sweep summaries when supported by the sink.
func (m *MultiSink) RecordSweep(ev SweepEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(SweepRecorder); ok {
			if err := rec.RecordSweep(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush flushes every sink that buffers output. All sinks are flushed
// even if one fails.
func (m *MultiSink) Flush() error {
	var errs []error
	for _, s := range m.Sinks {
		if f, ok := s.(Flusher); ok {
			if err := f.Flush(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink holding resources.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.Sinks {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
