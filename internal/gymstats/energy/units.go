package energy

import (
	"fmt"
	"strings"
)

// KilogramsPerPound is used to normalize imperial weights.
const KilogramsPerPound = 0.453592

// Gravity in m/s^2.
const Gravity = 9.8

// UnitSystem is the unit a set weight was entered in.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

func (u UnitSystem) String() string {
	return string(u)
}

func (u UnitSystem) IsValid() bool {
	switch u {
	case Metric, Imperial:
		return true
	default:
		return false
	}
}

// ToKilograms converts weight expressed in u to kilograms.
func (u UnitSystem) ToKilograms(weight float64) float64 {
	if u == Imperial {
		return weight * KilogramsPerPound
	}
	return weight
}

// FromKilograms converts kilograms to u.
func (u UnitSystem) FromKilograms(kilos float64) float64 {
	if u == Imperial {
		return kilos / KilogramsPerPound
	}
	return kilos
}

func ParseUnitSystem(s string) (UnitSystem, error) {
	u := UnitSystem(strings.ToLower(strings.TrimSpace(s)))
	if !u.IsValid() {
		return "", fmt.Errorf("unknown unit system: %q", s)
	}
	return u, nil
}

// CalculationMode selects how joules are derived from a set.
//   - standard: weight * g * displacement * reps
//   - pseudo: weight * g * reps (displacement ignored)
type CalculationMode string

const (
	Standard CalculationMode = "standard"
	Pseudo   CalculationMode = "pseudo"
)

func (m CalculationMode) String() string {
	return string(m)
}

func (m CalculationMode) IsValid() bool {
	switch m {
	case Standard, Pseudo:
		return true
	default:
		return false
	}
}

func ParseCalculationMode(s string) (CalculationMode, error) {
	m := CalculationMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("unknown calculation mode: %q", s)
	}
	return m, nil
}
