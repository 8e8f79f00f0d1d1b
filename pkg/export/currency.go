package export

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Euro formats whole currency units the German way, e.g. "12.927 €".
func Euro(v float64) string {
	return humanize.FormatInteger("#.###,", int(math.RoundToEven(v))) + " €"
}

// Cents formats a price with two decimals and a comma, e.g. "11,78".
func Cents(v float64) string {
	return humanize.FormatFloat("#.###,##", v)
}

// Number formats a quantity without decimals, e.g. "30.000".
func Number(v float64) string {
	return humanize.FormatInteger("#.###,", int(math.Round(v)))
}
