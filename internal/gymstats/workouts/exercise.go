package workouts

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/gymenergy/internal/gymstats/energy"
)

var ErrInvalidExercise = errors.New("invalid exercise definition")

type Category string

const (
	CategoryChest     Category = "chest"
	CategoryBack      Category = "back"
	CategoryLegs      Category = "legs"
	CategoryShoulders Category = "shoulders"
	CategoryArms      Category = "arms"
	CategoryCore      Category = "core"
	CategoryCardio    Category = "cardio"
	CategoryFullBody  Category = "full_body"
)

// Categories lists every known category, in display order.
func Categories() []Category {
	return []Category{
		CategoryChest,
		CategoryBack,
		CategoryLegs,
		CategoryShoulders,
		CategoryArms,
		CategoryCore,
		CategoryCardio,
		CategoryFullBody,
	}
}

func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

type ExerciseDefinition struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Category           Category `json:"category"`
	Displacement       float64  `json:"displacement"` // meters per rep
	RequiresBodyWeight bool     `json:"requiresBodyWeight"`
	IsCardio           bool     `json:"isCardio"`
	IsIsometric        bool     `json:"isIsometric"`
	Custom             bool     `json:"custom"`
}

func (d ExerciseDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidExercise)
	}
	if d.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidExercise)
	}
	if !d.Category.IsValid() {
		return fmt.Errorf("%w: unknown category [%s]", ErrInvalidExercise, d.Category)
	}
	if math.IsNaN(d.Displacement) || math.IsInf(d.Displacement, 0) || d.Displacement < 0 {
		return fmt.Errorf("%w: displacement must be a finite number >= 0", ErrInvalidExercise)
	}
	return nil
}

// LoggedSet is one performed set. Joules and Unit are snapshotted when the set is logged,
// so later settings changes never alter it.
type LoggedSet struct {
	ID         string            `json:"id"`
	ExerciseID string            `json:"exerciseId"`
	Date       time.Time         `json:"date"`
	Reps       int               `json:"reps"`
	Weight     float64           `json:"weight"`
	Unit       energy.UnitSystem `json:"unit"`
	Joules     int64             `json:"joules"`
}

func (s LoggedSet) GetExerciseID() string { return s.ExerciseID }
func (s LoggedSet) GetDate() time.Time    { return s.Date }
func (s LoggedSet) GetJoules() int64      { return s.Joules }

// WeightIn returns the set weight converted to the given unit system.
func (s LoggedSet) WeightIn(unit energy.UnitSystem) float64 {
	if s.Unit == unit {
		return s.Weight
	}
	return unit.FromKilograms(s.Unit.ToKilograms(s.Weight))
}
