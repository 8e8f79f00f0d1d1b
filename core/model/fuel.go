package model

import (
	"fmt"
	"strings"
)

// FuelType defines the energy carrier burnt by the existing boiler.
type FuelType int

const (
	FuelGas FuelType = iota
	FuelOil
)

// kWh of heat contained in one liter of heating oil (EL).
const oilKWhPerLiter = 10

// String returns a human-readable representation of the fuel type.
func (f FuelType) String() string {
	switch f {
	case FuelGas:
		return "gas"
	case FuelOil:
		return "oil"
	default:
		return "unknown"
	}
}

// Label returns the display name used in reports.
func (f FuelType) Label() string {
	switch f {
	case FuelGas:
		return "Natural gas"
	case FuelOil:
		return "Heating oil"
	default:
		return "Unknown"
	}
}

// Valid reports whether f is one of the known fuels.
func (f FuelType) Valid() bool { return f == FuelGas || f == FuelOil }

// ParseFuelType maps "gas"/"oil" (case-insensitive) to a FuelType.
func ParseFuelType(s string) (FuelType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gas", "natural_gas", "erdgas":
		return FuelGas, nil
	case "oil", "heating_oil", "heizoel":
		return FuelOil, nil
	default:
		return 0, fmt.Errorf("unknown fuel type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f FuelType) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FuelType) UnmarshalText(b []byte) error {
	v, err := ParseFuelType(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ConsumptionKWh converts an annual consumption given in the fuel's
// native unit (kWh for gas, liters for oil) to kWh.
func (f FuelType) ConsumptionKWh(consumption float64) float64 {
	if f == FuelOil {
		return consumption * oilKWhPerLiter
	}
	return consumption
}

// PriceCtPerKWh converts the quoted fuel price (ct/kWh for gas, €/liter
// for oil) to ct/kWh.
func (f FuelType) PriceCtPerKWh(price float64) float64 {
	if f == FuelOil {
		// €/l -> ct/l is x100, ct/l -> ct/kWh is /10
		return price * 100 / oilKWhPerLiter
	}
	return price
}

// IntensityPerKWh converts a CO2 intensity (g/kWh for gas, g/liter for
// oil) to grams per kWh.
func (f FuelType) IntensityPerKWh(intensity float64) float64 {
	if f == FuelOil {
		return intensity / oilKWhPerLiter
	}
	return intensity
}

// ConsumptionUnit is the unit of the annual consumption input.
func (f FuelType) ConsumptionUnit() string {
	if f == FuelOil {
		return "l"
	}
	return "kWh"
}

// PriceUnit is the unit of the quoted fuel price.
func (f FuelType) PriceUnit() string {
	if f == FuelOil {
		return "€/l"
	}
	return "ct/kWh"
}

// IntensityUnit is the unit of the CO2 intensity input.
func (f FuelType) IntensityUnit() string {
	if f == FuelOil {
		return "gCO2/l"
	}
	return "gCO2/kWh"
}

// DefaultIntensity returns the UBA reference intensity in the fuel's
// native unit: 216 gCO2/kWh for gas, 2680 gCO2/l for oil.
func (f FuelType) DefaultIntensity() float64 {
	if f == FuelOil {
		return 2680
	}
	return 216
}
