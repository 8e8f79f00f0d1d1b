package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/kilianp07/heatcalc/core/model"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// pdfReport renders a projection onto A4 pages with the core fonts.
type pdfReport struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	p   *model.Projection
}

// WritePDF writes a report with the price summary and the yearly table.
func WritePDF(w io.Writer, p *model.Projection, generated time.Time) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginLeft, marginTop, marginRight)
	doc.SetAutoPageBreak(true, marginBottom)
	doc.SetCreationDate(generated)
	doc.SetTitle("heatcalc report", true)
	// Core fonts are cp1252 encoded, which carries the euro sign.
	r := &pdfReport{pdf: doc, tr: doc.UnicodeTranslatorFromDescriptor(""), p: p}

	r.addSummary(generated)
	r.addTable()
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (r *pdfReport) heading(text string) {
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, r.tr(text), "1", 1, "C", true, 0, "")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *pdfReport) row(label, value string) {
	r.pdf.CellFormat(contentWidth/2, 6, r.tr(label), "L", 0, "L", false, 0, "")
	r.pdf.CellFormat(contentWidth/2, 6, r.tr(value), "R", 1, "R", false, 0, "")
}

func (r *pdfReport) addSummary(generated time.Time) {
	p := r.p
	f := p.Scenario.Fossil
	pr := p.Prices

	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, r.tr(f.Fuel.Label()+" vs. heat pump"), "", 1, "C", false, 0, "")
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.CellFormat(contentWidth, 6, "Generated: "+generated.Format("2 January 2006"), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)

	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	r.heading("Inputs")
	r.row("Annual consumption", fmt.Sprintf("%s %s", Number(f.AnnualConsumption), f.Fuel.ConsumptionUnit()))
	r.row("Current fuel price", fmt.Sprintf("%s %s", Cents(f.CurrentFuelPrice), f.Fuel.PriceUnit()))
	r.row("Boiler efficiency", fmt.Sprintf("%s %%", Number(f.BoilerEfficiency)))
	r.row("Boiler replacement", Euro(f.ReplacementCost))
	r.row("Heat pump offer", Euro(p.Scenario.HeatPump.UpfrontCost))
	r.row("Heat pump after subsidy", Euro(pr.NetUpfrontCost))
	r.row("JAZ", Cents(p.Scenario.HeatPump.SeasonalPerformanceFactor))
	r.row("Electricity price", Cents(p.Scenario.Assumptions.ElectricityPrice)+" ct/kWh")
	r.pdf.CellFormat(contentWidth, 1, "", "T", 1, "C", false, 0, "")
	r.pdf.Ln(4)

	r.heading("Costs")
	r.row("CO2 price", fmt.Sprintf("%s -> %s €/t", Number(pr.CO2PricePre2027), Number(pr.CO2PriceFrom2027)))
	r.row("Surcharge", fmt.Sprintf("%s -> %s ct/kWh", Cents(pr.SurchargePre2027), Cents(pr.SurchargeFrom2027)))
	r.row("Heat price fossil", fmt.Sprintf("%s -> %s ct/kWh", Cents(pr.FossilCurrentPrice), Cents(pr.FossilFrom2027Price)))
	r.row("Heat price heat pump", Cents(pr.HeatPumpPrice)+" ct/kWh")
	r.row("Annual cost fossil", fmt.Sprintf("%s -> %s", Euro(pr.FossilAnnualPre2027), Euro(pr.FossilAnnualFrom2027)))
	r.row("Annual cost heat pump", Euro(pr.HeatPumpAnnual))
	r.row("Break-even", breakEvenText(p.BreakEven))
	r.pdf.CellFormat(contentWidth, 1, "", "T", 1, "C", false, 0, "")
	r.pdf.Ln(6)
}

func (r *pdfReport) addTable() {
	cols := []string{"Year", "Fossil", "Heat pump", "Fossil cum.", "Heat pump cum.", "Savings cum."}
	width := contentWidth / float64(len(cols))

	header := func() {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(0, 51, 102)
		r.pdf.SetTextColor(255, 255, 255)
		for _, c := range cols {
			r.pdf.CellFormat(width, 7, c, "1", 0, "C", true, 0, "")
		}
		r.pdf.Ln(-1)
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.SetTextColor(50, 50, 50)
	}
	header()
	_, pageHeight := r.pdf.GetPageSize()
	for i, rec := range r.p.Records {
		if r.pdf.GetY()+6 > pageHeight-marginBottom {
			r.pdf.AddPage()
			header()
		}
		fill := i%2 == 1
		r.pdf.SetFillColor(245, 247, 250)
		if rec.SavingsCumulative >= 0 {
			r.pdf.SetTextColor(0, 110, 50)
		} else {
			r.pdf.SetTextColor(50, 50, 50)
		}
		cells := []string{
			strconv.Itoa(rec.Year),
			Euro(rec.FossilCost),
			Euro(rec.HeatPumpCost),
			Euro(rec.FossilCumulative),
			Euro(rec.HeatPumpCumulative),
			Euro(rec.SavingsCumulative),
		}
		for _, c := range cells {
			r.pdf.CellFormat(width, 6, r.tr(c), "1", 0, "R", fill, 0, "")
		}
		r.pdf.Ln(-1)
	}
}
