package metrics

import "github.com/kilianp07/heatcalc/core/factory"

var sinkRegistry = factory.NewRegistry[ProjectionSink]()

// RegisterProjectionSink adds a sink factory identified by name.
func RegisterProjectionSink(name string, f factory.Factory[ProjectionSink]) error {
	return sinkRegistry.Register(name, f)
}

// SinkTypes lists the registered sink types.
func SinkTypes() []string { return sinkRegistry.Types() }

// NewProjectionSink creates a ProjectionSink from the provided configuration.
func NewProjectionSink(cfgs []factory.ModuleConfig) (ProjectionSink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	if len(cfgs) == 1 {
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]ProjectionSink, len(cfgs))
	for i, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		sinks[i] = s
	}
	return NewMultiSink(sinks...), nil
}
