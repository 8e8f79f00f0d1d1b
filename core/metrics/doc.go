// Package metrics defines the sinks projection results are reported to.
// Sinks like PromSink and InfluxSink live in infra/metrics and register
// themselves by type name; NewProjectionSink builds a MultiSink when
// several sinks are configured.
package metrics
