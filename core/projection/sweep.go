package projection

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/heatcalc/core/model"
)

// SweepParameter names the scenario input varied by Sweep.
type SweepParameter string

const (
	SweepCO2Price         SweepParameter = "co2_price"
	SweepElectricityPrice SweepParameter = "electricity_price"
)

// SweepConfig defines an evenly spaced grid over one parameter.
type SweepConfig struct {
	Parameter SweepParameter `json:"parameter"`
	Min       float64        `json:"min"`
	Max       float64        `json:"max"`
	Steps     int            `json:"steps"`
}

// Validate checks the grid definition.
func (c SweepConfig) Validate() error {
	switch c.Parameter {
	case SweepCO2Price, SweepElectricityPrice:
	default:
		return fmt.Errorf("unknown sweep parameter %q", c.Parameter)
	}
	if c.Steps < 2 {
		return fmt.Errorf("steps must be at least 2")
	}
	if c.Min > c.Max {
		return fmt.Errorf("min > max")
	}
	if c.Min < 0 {
		return fmt.Errorf("min must not be negative")
	}
	return nil
}

// SweepPoint is the outcome of one grid value.
type SweepPoint struct {
	Value        float64         `json:"value" yaml:"value"`
	BreakEven    model.BreakEven `json:"break_even" yaml:"break_even"`
	FinalSavings float64         `json:"final_savings" yaml:"final_savings"`
}

// Sweep re-runs the projection once per grid value on a copy of s.
func Sweep(s model.Scenario, cfg SweepConfig) ([]SweepPoint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	grid := floats.Span(make([]float64, cfg.Steps), cfg.Min, cfg.Max)
	points := make([]SweepPoint, 0, len(grid))
	for _, v := range grid {
		variant := s
		switch cfg.Parameter {
		case SweepCO2Price:
			variant.Assumptions.CO2PriceFrom2027 = v
		case SweepElectricityPrice:
			variant.Assumptions.ElectricityPrice = v
		}
		p, err := Run(variant)
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%g: %w", cfg.Parameter, v, err)
		}
		points = append(points, SweepPoint{
			Value:        v,
			BreakEven:    p.BreakEven,
			FinalSavings: p.Final().SavingsCumulative,
		})
	}
	return points, nil
}
