package achievements

import (
	"github.com/2beens/gymenergy/internal/gymstats/energy"
	"github.com/2beens/gymenergy/internal/gymstats/workouts"
)

type ConditionKind string

const (
	KindTotalJoules      ConditionKind = "total_joules"
	KindExerciseCount    ConditionKind = "exercise_count"
	KindExerciseStreak   ConditionKind = "exercise_streak"
	KindSpecificExercise ConditionKind = "specific_exercise"
	KindCategoryComplete ConditionKind = "category_complete"
	KindBeforeHour       ConditionKind = "before_hour"
	KindAfterHour        ConditionKind = "after_hour"
	KindWeekendWarrior   ConditionKind = "weekend_warrior"
	KindHeavyLifter      ConditionKind = "heavy_lifter"
	KindPerfectSet       ConditionKind = "perfect_set"
	KindAllCategories    ConditionKind = "all_categories"
)

// Condition is the closed set of unlock rules. Evaluation dispatches on the concrete type,
// anything it does not know evaluates to false.
type Condition interface {
	Kind() ConditionKind
}

// TotalJoules holds when the aggregate energy reaches Threshold.
type TotalJoules struct {
	Threshold int64
}

// ExerciseCount holds when at least Count distinct exercises have been logged,
// optionally only counting the ones in Category.
type ExerciseCount struct {
	Count    int
	Category workouts.Category
}

// ExerciseStreak holds when the longest run of consecutive workout days reaches Days.
type ExerciseStreak struct {
	Days int
}

// SpecificExercise holds when ExerciseID has at least Count logged sets.
type SpecificExercise struct {
	ExerciseID string
	Count      int
}

// CategoryComplete holds when every exercise in Category has at least one logged set.
type CategoryComplete struct {
	Category workouts.Category
}

// BeforeHour holds when a set was logged before Hour (local time).
type BeforeHour struct {
	Hour int
}

// AfterHour holds when a set was logged at or after Hour (local time).
type AfterHour struct {
	Hour int
}

// WeekendWarrior holds when sets were logged on at least Count distinct weekends.
type WeekendWarrior struct {
	Count int
}

// HeavyLifter holds when a single set weight reaches Weight, compared in Unit.
type HeavyLifter struct {
	Weight float64
	Unit   energy.UnitSystem
}

// PerfectSet holds when a set with exactly Reps repetitions was logged.
type PerfectSet struct {
	Reps int
}

// AllCategories holds when sets were logged in at least Count distinct categories.
type AllCategories struct {
	Count int
}

func (TotalJoules) Kind() ConditionKind      { return KindTotalJoules }
func (ExerciseCount) Kind() ConditionKind    { return KindExerciseCount }
func (ExerciseStreak) Kind() ConditionKind   { return KindExerciseStreak }
func (SpecificExercise) Kind() ConditionKind { return KindSpecificExercise }
func (CategoryComplete) Kind() ConditionKind { return KindCategoryComplete }
func (BeforeHour) Kind() ConditionKind       { return KindBeforeHour }
func (AfterHour) Kind() ConditionKind        { return KindAfterHour }
func (WeekendWarrior) Kind() ConditionKind   { return KindWeekendWarrior }
func (HeavyLifter) Kind() ConditionKind      { return KindHeavyLifter }
func (PerfectSet) Kind() ConditionKind       { return KindPerfectSet }
func (AllCategories) Kind() ConditionKind    { return KindAllCategories }
