// Package export renders projections and sensitivity sweeps as tables,
// CSV, JSON, YAML, HTML charts and PDF reports.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/kilianp07/heatcalc/core/model"
	"github.com/kilianp07/heatcalc/core/projection"
)

// Write renders p in the given format.
func Write(w io.Writer, f Format, p *model.Projection) error {
	switch f {
	case FormatTable:
		return WriteTable(w, p)
	case FormatCSV:
		return WriteCSV(w, p)
	case FormatJSON:
		return WriteJSON(w, p)
	case FormatYAML:
		return WriteYAML(w, p)
	case FormatHTML:
		return WriteChartHTML(w, p)
	case FormatPDF:
		return WritePDF(w, p, time.Now())
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

// WriteSweep renders sweep points in the given format. PDF is not
// available for sweeps.
func WriteSweep(w io.Writer, f Format, cfg projection.SweepConfig, points []projection.SweepPoint) error {
	switch f {
	case FormatTable:
		return WriteSweepTable(w, cfg, points)
	case FormatCSV:
		return WriteSweepCSV(w, cfg, points)
	case FormatJSON:
		return WriteSweepJSON(w, cfg, points)
	case FormatYAML:
		return WriteSweepYAML(w, cfg, points)
	case FormatHTML:
		return WriteSweepChartHTML(w, cfg, points)
	default:
		return fmt.Errorf("unsupported sweep format %q", f)
	}
}
