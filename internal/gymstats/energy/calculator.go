package energy

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidInput = errors.New("invalid energy input")

// MaxReps matches the width of the reps column sets are stored in.
const MaxReps = math.MaxInt32

// Calculate returns the energy, in joules, spent on a single set.
// The weight is normalized to kilograms first, regardless of the unit it was entered in.
// Zero displacement in Standard mode is valid and yields 0 joules (isometric holds).
// The result is rounded half up to the nearest joule and is meant to be snapshotted
// onto the logged set, never recomputed later.
func Calculate(
	reps int,
	weight float64,
	unit UnitSystem,
	displacement float64,
	mode CalculationMode,
) (int64, error) {
	if reps <= 0 {
		return 0, fmt.Errorf("%w: reps must be positive, got %d", ErrInvalidInput, reps)
	}
	if reps > MaxReps {
		return 0, fmt.Errorf("%w: reps must not exceed %d, got %d", ErrInvalidInput, MaxReps, reps)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return 0, fmt.Errorf("%w: weight must be a positive number, got %v", ErrInvalidInput, weight)
	}
	if math.IsNaN(displacement) || math.IsInf(displacement, 0) || displacement < 0 {
		return 0, fmt.Errorf("%w: displacement must be a non-negative number, got %v", ErrInvalidInput, displacement)
	}
	if !unit.IsValid() {
		return 0, fmt.Errorf("%w: unknown unit system %q", ErrInvalidInput, unit)
	}

	kilos := unit.ToKilograms(weight)

	var joules float64
	switch mode {
	case Standard:
		joules = kilos * Gravity * displacement * float64(reps)
	case Pseudo:
		joules = kilos * Gravity * float64(reps)
	default:
		return 0, fmt.Errorf("%w: unknown calculation mode %q", ErrInvalidInput, mode)
	}

	rounded := roundHalfUp(joules)
	// float64(math.MaxInt64) is 2^63, the first value that no longer fits
	if rounded >= float64(math.MaxInt64) {
		return 0, fmt.Errorf("%w: energy of %g J out of range", ErrInvalidInput, joules)
	}

	return int64(rounded), nil
}

// roundHalfUp expects a non-negative v, for which math.Round rounds halves up.
func roundHalfUp(v float64) float64 {
	return math.Round(v)
}
