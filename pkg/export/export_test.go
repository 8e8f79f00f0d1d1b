package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/heatcalc/core/model"
	"github.com/kilianp07/heatcalc/core/projection"
)

func gasProjection(t *testing.T) *model.Projection {
	t.Helper()
	p, err := projection.Run(model.Scenario{
		Fossil: model.FossilSystemConfig{
			Fuel:              model.FuelGas,
			CO2Intensity:      216,
			AnnualConsumption: 30000,
			CurrentFuelPrice:  11.78,
			ReplacementCost:   9000,
			BoilerEfficiency:  90,
		},
		HeatPump: model.HeatPumpConfig{
			UpfrontCost:               40000,
			SeasonalPerformanceFactor: 4,
			SubsidyPercent:            50,
			SubsidyCap:                30000,
		},
		Assumptions: model.ScenarioAssumptions{
			CO2PricePre2027:  model.CO2PricePre2027,
			CO2PriceFrom2027: 250,
			ElectricityPrice: 30,
			StartYear:        2025,
			ProjectionYears:  3,
		},
	})
	require.NoError(t, err)
	return p
}

func sweepFixture() (projection.SweepConfig, []projection.SweepPoint) {
	cfg := projection.SweepConfig{Parameter: projection.SweepCO2Price, Min: 100, Max: 300, Steps: 2}
	return cfg, []projection.SweepPoint{
		{Value: 100, FinalSavings: -1200},
		{Value: 300, BreakEven: model.BreakEven{Year: 2031, Reached: true}, FinalSavings: 4500},
	}
}

func TestCurrencyFormatting(t *testing.T) {
	assert.Equal(t, "12.927 €", Euro(12927))
	assert.Equal(t, "-9.323 €", Euro(-9323))
	assert.Equal(t, "0 €", Euro(0))
	assert.Equal(t, "11,78", Cents(11.78))
	assert.Equal(t, "30.000", Number(30000))
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":      FormatTable,
		"table": FormatTable,
		"CSV":   FormatCSV,
		"json":  FormatJSON,
		"yml":   FormatYAML,
		"chart": FormatHTML,
		"pdf":   FormatPDF,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xlsx")
	assert.Error(t, err)
	assert.True(t, FormatPDF.Binary())
	assert.Equal(t, ".html", FormatHTML.Extension())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, gasProjection(t)))
	want := `year,bracket,fossil_cost,heatpump_cost,fossil_cumulative,heatpump_cumulative,savings,savings_cumulative
2025,pre-2027,12927,22250,12927,22250,-9323,-9323
2026,pre-2027,3927,2250,16854,24500,1677,-7646
2027,from-2027,5597,2250,22451,26750,3347,-4299
`
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, gasProjection(t)))

	var out struct {
		Scenario struct {
			Fossil struct {
				Fuel string `json:"fuel"`
			} `json:"fossil"`
		} `json:"scenario"`
		Records []struct {
			Year    int    `json:"year"`
			Bracket string `json:"bracket"`
		} `json:"records"`
		BreakEven model.BreakEven `json:"break_even"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "gas", out.Scenario.Fossil.Fuel)
	require.Len(t, out.Records, 3)
	assert.Equal(t, "from-2027", out.Records[2].Bracket)
	assert.False(t, out.BreakEven.Reached)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, gasProjection(t)))
	out := buf.String()
	assert.Contains(t, out, "fuel: gas")
	assert.Contains(t, out, "bracket: pre-2027")
	assert.Contains(t, out, "savings_cumulative: -4299")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, gasProjection(t)))
	out := buf.String()
	assert.Contains(t, out, "Natural gas, 30.000 kWh/year, 11,78 ct/kWh")
	assert.Contains(t, out, "not reached")
	assert.Contains(t, out, "12.927 €")
	assert.Contains(t, out, "-4.299 €")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "2027"))
}

func TestWriteTableOilShowsKWhEquivalent(t *testing.T) {
	p := gasProjection(t)
	p.Scenario.Fossil.Fuel = model.FuelOil
	p.Scenario.Fossil.AnnualConsumption = 3500
	p.Scenario.Fossil.CurrentFuelPrice = 1.01
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, p))
	assert.Contains(t, buf.String(), "Heating oil, 3.500 l/year (35.000 kWh/year), 1,01 €/l")
}

func TestWriteChartHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteChartHTML(&buf, gasProjection(t)))
	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, SeriesSavings)
	assert.Contains(t, out, "2027")
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, gasProjection(t), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteAllFormats(t *testing.T) {
	p := gasProjection(t)
	for _, f := range Formats {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, f, p), f)
		assert.NotZero(t, buf.Len(), f)
	}
	assert.Error(t, Write(&bytes.Buffer{}, Format("xlsx"), p))
}

func TestWriteSweep(t *testing.T) {
	cfg, points := sweepFixture()

	var csvBuf bytes.Buffer
	require.NoError(t, WriteSweep(&csvBuf, FormatCSV, cfg, points))
	assert.Equal(t, "co2_price,break_even_year,final_savings\n100,,-1200\n300,2031,4500\n", csvBuf.String())

	var tbl bytes.Buffer
	require.NoError(t, WriteSweep(&tbl, FormatTable, cfg, points))
	assert.Contains(t, tbl.String(), "not reached")
	assert.Contains(t, tbl.String(), "4.500 €")

	var js bytes.Buffer
	require.NoError(t, WriteSweep(&js, FormatJSON, cfg, points))
	var rep SweepReport
	require.NoError(t, json.Unmarshal(js.Bytes(), &rep))
	assert.Equal(t, projection.SweepCO2Price, rep.Parameter)
	assert.Len(t, rep.Points, 2)

	var y bytes.Buffer
	require.NoError(t, WriteSweep(&y, FormatYAML, cfg, points))
	assert.Contains(t, y.String(), "parameter: co2_price")

	var html bytes.Buffer
	require.NoError(t, WriteSweep(&html, FormatHTML, cfg, points))
	assert.Contains(t, html.String(), "Final savings")

	assert.Error(t, WriteSweep(&bytes.Buffer{}, FormatPDF, cfg, points))
}
