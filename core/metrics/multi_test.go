package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordSink struct {
	count   int
	flushed int
	err     error
}

func (r *recordSink) RecordProjection(ProjectionEvent) error {
	r.count++
	return r.err
}

func (r *recordSink) RecordSweep(SweepEvent) error {
	r.count++
	return nil
}

func (r *recordSink) Flush() error {
	r.flushed++
	return r.err
}

type projectionOnly struct{ count int }

func (p *projectionOnly) RecordProjection(ProjectionEvent) error {
	p.count++
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	s3 := &projectionOnly{}
	m := NewMultiSink(s1, s2, s3)
	assert.NoError(t, m.RecordProjection(ProjectionEvent{}))
	assert.NoError(t, m.RecordSweep(SweepEvent{}))
	assert.NoError(t, m.Flush())
	assert.Equal(t, 2, s1.count)
	assert.Equal(t, 2, s2.count)
	assert.Equal(t, 1, s3.count)
	assert.Equal(t, 1, s1.flushed)
}

func TestMultiSinkErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := &recordSink{err: boom}
	other := &recordSink{}
	m := NewMultiSink(failing, other)
	assert.ErrorIs(t, m.RecordProjection(ProjectionEvent{}), boom)
	assert.Equal(t, 0, other.count)
	assert.ErrorIs(t, m.Flush(), boom)
	assert.Equal(t, 1, other.flushed)
}

func TestProjectionEventFuel(t *testing.T) {
	assert.Equal(t, "unknown", ProjectionEvent{}.Fuel())
}
