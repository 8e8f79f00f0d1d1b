package export

import (
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/heatcalc/core/model"
	"github.com/kilianp07/heatcalc/core/projection"
)

// SweepReport is the serialised form of a sensitivity sweep.
type SweepReport struct {
	Parameter projection.SweepParameter `json:"parameter" yaml:"parameter"`
	Min       float64                   `json:"min" yaml:"min"`
	Max       float64                   `json:"max" yaml:"max"`
	Points    []projection.SweepPoint   `json:"points" yaml:"points"`
}

func newSweepReport(cfg projection.SweepConfig, points []projection.SweepPoint) SweepReport {
	return SweepReport{Parameter: cfg.Parameter, Min: cfg.Min, Max: cfg.Max, Points: points}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteJSON writes the full projection to w in JSON format.
func WriteJSON(w io.Writer, p *model.Projection) error { return writeJSON(w, p) }

// WriteYAML writes the full projection to w in YAML format.
func WriteYAML(w io.Writer, p *model.Projection) error { return writeYAML(w, p) }

// WriteSweepJSON writes the sweep to w in JSON format.
func WriteSweepJSON(w io.Writer, cfg projection.SweepConfig, points []projection.SweepPoint) error {
	return writeJSON(w, newSweepReport(cfg, points))
}

// WriteSweepYAML writes the sweep to w in YAML format.
func WriteSweepYAML(w io.Writer, cfg projection.SweepConfig, points []projection.SweepPoint) error {
	return writeYAML(w, newSweepReport(cfg, points))
}
