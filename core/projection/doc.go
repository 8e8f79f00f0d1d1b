// Package projection implements the cost projection engine comparing a
// fossil boiler with a heat pump year by year.
//
// The engine is a pure function of a model.Scenario: it keeps no state
// between calls, so callers re-invoke Run whenever an input changes.
package projection
