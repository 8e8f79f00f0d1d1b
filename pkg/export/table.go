package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kilianp07/heatcalc/core/model"
	"github.com/kilianp07/heatcalc/core/projection"
)

// WriteTable writes a human readable report: the price summary followed
// by one aligned row per year.
func WriteTable(w io.Writer, p *model.Projection) error {
	s := p.Scenario
	f := s.Fossil
	pr := p.Prices
	consumption := fmt.Sprintf("%s %s/year", Number(f.AnnualConsumption), f.Fuel.ConsumptionUnit())
	if f.Fuel == model.FuelOil {
		consumption += fmt.Sprintf(" (%s kWh/year)", Number(f.ConsumptionKWh()))
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	lines := []string{
		fmt.Sprintf("Heating\t%s, %s, %s %s\t", f.Fuel.Label(), consumption, Cents(f.CurrentFuelPrice), f.Fuel.PriceUnit()),
		fmt.Sprintf("CO2 price\t%s €/t until %d, %s €/t from %d\t", Number(pr.CO2PricePre2027), model.CarbonPriceChangeYear-1, Number(pr.CO2PriceFrom2027), model.CarbonPriceChangeYear),
		fmt.Sprintf("Surcharge\t%s ct/kWh -> %s ct/kWh\t", Cents(pr.SurchargePre2027), Cents(pr.SurchargeFrom2027)),
		fmt.Sprintf("Heat price fossil\t%s ct/kWh -> %s ct/kWh\t", Cents(pr.FossilCurrentPrice), Cents(pr.FossilFrom2027Price)),
		fmt.Sprintf("Heat price heat pump\t%s ct/kWh\t", Cents(pr.HeatPumpPrice)),
		fmt.Sprintf("Annual cost fossil\t%s -> %s\t", Euro(pr.FossilAnnualPre2027), Euro(pr.FossilAnnualFrom2027)),
		fmt.Sprintf("Annual cost heat pump\t%s\t", Euro(pr.HeatPumpAnnual)),
		fmt.Sprintf("Heat pump after subsidy\t%s\t", Euro(pr.NetUpfrontCost)),
		fmt.Sprintf("Break-even\t%s\t", breakEvenText(p.BreakEven)),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(tw, l); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintln(tw, "Year\tBracket\tFossil\tHeat pump\tFossil cum.\tHeat pump cum.\tSavings\tSavings cum.\t"); err != nil {
		return err
	}
	for _, r := range p.Records {
		_, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Year, r.Bracket, Euro(r.FossilCost), Euro(r.HeatPumpCost),
			Euro(r.FossilCumulative), Euro(r.HeatPumpCumulative),
			Euro(r.Savings), Euro(r.SavingsCumulative))
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}

func breakEvenText(be model.BreakEven) string {
	if !be.Reached {
		return "not reached"
	}
	return fmt.Sprintf("%d", be.Year)
}

// WriteSweepTable writes one aligned row per sweep point.
func WriteSweepTable(w io.Writer, cfg projection.SweepConfig, points []projection.SweepPoint) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "%s\tBreak-even\tFinal savings\t\n", cfg.Parameter); err != nil {
		return err
	}
	for _, pt := range points {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t\n", Cents(pt.Value), breakEvenText(pt.BreakEven), Euro(pt.FinalSavings)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
