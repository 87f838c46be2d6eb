package achievements

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymenergy/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// UnlockedSet maps achievement ids to the time they were unlocked.
type UnlockedSet map[string]time.Time

func (u UnlockedSet) Has(id string) bool {
	_, ok := u[id]
	return ok
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=achievements_test

type unlockStore interface {
	ListUnlocked(ctx context.Context) (UnlockedSet, error)
	Unlock(ctx context.Context, id string, at time.Time) (bool, error)
}

type Evaluator struct {
	definitions []Definition
	loc         *time.Location
	now         func() time.Time
}

// NewEvaluator creates an evaluator over defs. Calendar based conditions use loc.
func NewEvaluator(defs []Definition, loc *time.Location) *Evaluator {
	if loc == nil {
		loc = time.UTC
	}
	return &Evaluator{
		definitions: defs,
		loc:         loc,
		now:         time.Now,
	}
}

func (e *Evaluator) Definitions() []Definition {
	defs := make([]Definition, len(e.definitions))
	copy(defs, e.definitions)
	return defs
}

func (e *Evaluator) Location() *time.Location {
	return e.loc
}

// Evaluate returns the definitions not yet in unlocked whose condition holds for history.
// It has no side effects.
func (e *Evaluator) Evaluate(history History, unlocked UnlockedSet) []Definition {
	stats := NewStats(history, e.loc)

	var newlyUnlocked []Definition
	for _, def := range e.definitions {
		if unlocked.Has(def.ID) {
			continue
		}
		if Holds(def.Condition, stats) {
			newlyUnlocked = append(newlyUnlocked, def)
		}
	}
	return newlyUnlocked
}

// Run evaluates history against the store state and unlocks what qualifies.
// Only achievements the store reports as actually transitioned are returned, so concurrent
// runs never report the same unlock twice.
func (e *Evaluator) Run(ctx context.Context, store unlockStore, history History) (_ []Definition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.achievements.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	unlocked, err := store.ListUnlocked(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unlocked: %w", err)
	}

	candidates := e.Evaluate(history, unlocked)
	if len(candidates) == 0 {
		return nil, nil
	}

	now := e.now()
	var transitioned []Definition
	for _, def := range candidates {
		ok, err := store.Unlock(ctx, def.ID, now)
		if err != nil {
			return transitioned, fmt.Errorf("unlock [%s]: %w", def.ID, err)
		}
		if !ok {
			log.Debugf("achievement [%s] already unlocked elsewhere", def.ID)
			continue
		}
		transitioned = append(transitioned, def)
	}

	span.SetAttributes(attribute.Int("achievements.unlocked", len(transitioned)))
	return transitioned, nil
}

// Points sums the points of all unlocked definitions.
func Points(defs []Definition, unlocked UnlockedSet) int {
	total := 0
	for _, def := range defs {
		if unlocked.Has(def.ID) {
			total += def.Points
		}
	}
	return total
}

// Holds reports whether condition is met. Unknown condition kinds never hold.
func Holds(condition Condition, stats *Stats) bool {
	switch c := condition.(type) {
	case TotalJoules:
		return stats.TotalJoules >= c.Threshold
	case ExerciseCount:
		if c.Category == "" {
			return stats.DistinctExercises() >= c.Count
		}
		return stats.DistinctExercisesIn(c.Category) >= c.Count
	case ExerciseStreak:
		return stats.LongestStreak >= c.Days
	case SpecificExercise:
		sets, ok := stats.SetsFor(c.ExerciseID)
		return ok && sets >= c.Count
	case CategoryComplete:
		return stats.CategoryCompleted(c.Category)
	case BeforeHour:
		return stats.AnySetBefore(c.Hour)
	case AfterHour:
		return stats.AnySetFrom(c.Hour)
	case WeekendWarrior:
		return stats.Weekends >= c.Count
	case HeavyLifter:
		if !c.Unit.IsValid() {
			return false
		}
		return stats.MaxWeightIn(c.Unit) >= c.Weight
	case PerfectSet:
		return stats.HasSetWithReps(c.Reps)
	case AllCategories:
		return stats.DistinctCategories() >= c.Count
	default:
		return false
	}
}
