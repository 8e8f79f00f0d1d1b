package model

import (
	"fmt"
	"strings"
)

// SubsidyProgramme is a preset that fills in the subsidy percentage.
type SubsidyProgramme string

const (
	SubsidyNone    SubsidyProgramme = "none"
	SubsidyBEG     SubsidyProgramme = "beg"
	SubsidyBEGFast SubsidyProgramme = "beg-fast"
	SubsidyBEGMax  SubsidyProgramme = "beg-max"
)

// SubsidyProgrammes lists the presets in display order.
var SubsidyProgrammes = []SubsidyProgramme{SubsidyNone, SubsidyBEG, SubsidyBEGFast, SubsidyBEGMax}

// Percent returns the subsidy rate granted by the programme.
func (p SubsidyProgramme) Percent() float64 {
	switch p {
	case SubsidyBEG:
		return 50
	case SubsidyBEGFast:
		return 60
	case SubsidyBEGMax:
		return 70
	default:
		return 0
	}
}

// Description is a short human readable label.
func (p SubsidyProgramme) Description() string {
	switch p {
	case SubsidyBEG:
		return "BEG base funding"
	case SubsidyBEGFast:
		return "BEG with speed bonus"
	case SubsidyBEGMax:
		return "BEG maximum funding"
	default:
		return "no funding"
	}
}

// ParseSubsidyProgramme validates s against the known presets.
func ParseSubsidyProgramme(s string) (SubsidyProgramme, error) {
	p := SubsidyProgramme(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return SubsidyNone, nil
	}
	for _, known := range SubsidyProgrammes {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown subsidy programme %q", s)
}
