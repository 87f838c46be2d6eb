package achievements

import (
	"sort"
	"time"

	"github.com/2beens/gymenergy/internal/gymstats/energy"
	"github.com/2beens/gymenergy/internal/gymstats/workouts"
)

// History is a read-only snapshot of the workout log.
type History struct {
	Exercises []workouts.ExerciseDefinition
	Sets      []workouts.LoggedSet
}

// Stats are derived fresh from a History on every evaluation pass.
type Stats struct {
	TotalJoules   int64
	LongestStreak int
	Weekends      int

	exercises         map[string]workouts.ExerciseDefinition
	setsPerExercise   map[string]int
	exercisesPerCat   map[workouts.Category]map[string]bool
	definitionsPerCat map[workouts.Category][]string
	usedCategories    map[workouts.Category]bool
	heaviestPerUnit   map[energy.UnitSystem]workouts.LoggedSet
	repsSeen          map[int]bool
	earliestHour      int
	latestHour        int
	hasSets           bool
}

// NewStats computes all statistics needed by conditions. Calendar values
// (days, weekends, hours) are taken in loc.
func NewStats(history History, loc *time.Location) *Stats {
	if loc == nil {
		loc = time.UTC
	}

	s := &Stats{
		TotalJoules:       energy.TotalJoules(history.Sets),
		exercises:         make(map[string]workouts.ExerciseDefinition, len(history.Exercises)),
		setsPerExercise:   make(map[string]int),
		exercisesPerCat:   make(map[workouts.Category]map[string]bool),
		definitionsPerCat: make(map[workouts.Category][]string),
		usedCategories:    make(map[workouts.Category]bool),
		heaviestPerUnit:   make(map[energy.UnitSystem]workouts.LoggedSet),
		repsSeen:          make(map[int]bool),
	}

	for _, def := range history.Exercises {
		s.exercises[def.ID] = def
		s.definitionsPerCat[def.Category] = append(s.definitionsPerCat[def.Category], def.ID)
	}

	days := make(map[time.Time]bool)
	weekends := make(map[[2]int]bool)
	for _, set := range history.Sets {
		s.setsPerExercise[set.ExerciseID]++
		s.repsSeen[set.Reps] = true
		if heaviest, ok := s.heaviestPerUnit[set.Unit]; !ok || set.Weight > heaviest.Weight {
			s.heaviestPerUnit[set.Unit] = set
		}

		if def, ok := s.exercises[set.ExerciseID]; ok {
			if s.exercisesPerCat[def.Category] == nil {
				s.exercisesPerCat[def.Category] = make(map[string]bool)
			}
			s.exercisesPerCat[def.Category][def.ID] = true
			s.usedCategories[def.Category] = true
		}

		local := set.Date.In(loc)
		hour := local.Hour()
		if !s.hasSets || hour < s.earliestHour {
			s.earliestHour = hour
		}
		if !s.hasSets || hour > s.latestHour {
			s.latestHour = hour
		}
		s.hasSets = true

		days[civilDay(local)] = true

		// saturday and sunday of one weekend share the ISO week
		if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
			year, week := local.ISOWeek()
			weekends[[2]int{year, week}] = true
		}
	}

	s.LongestStreak = longestStreak(days)
	s.Weekends = len(weekends)

	return s
}

// DistinctExercises is the number of distinct exercise ids with at least one logged set.
func (s *Stats) DistinctExercises() int {
	return len(s.setsPerExercise)
}

func (s *Stats) DistinctExercisesIn(category workouts.Category) int {
	return len(s.exercisesPerCat[category])
}

func (s *Stats) DistinctCategories() int {
	return len(s.usedCategories)
}

// SetsFor returns the number of sets logged for exerciseID, and false if the exercise is unknown.
func (s *Stats) SetsFor(exerciseID string) (int, bool) {
	if _, ok := s.exercises[exerciseID]; !ok {
		return 0, false
	}
	return s.setsPerExercise[exerciseID], true
}

// CategoryCompleted is false for categories without any exercise definitions.
func (s *Stats) CategoryCompleted(category workouts.Category) bool {
	ids := s.definitionsPerCat[category]
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if s.setsPerExercise[id] == 0 {
			return false
		}
	}
	return true
}

func (s *Stats) AnySetBefore(hour int) bool {
	return s.hasSets && s.earliestHour < hour
}

func (s *Stats) AnySetFrom(hour int) bool {
	return s.hasSets && s.latestHour >= hour
}

// MaxWeightIn is the heaviest single set converted to unit. Sets are compared in the unit
// they were logged in, so same-unit thresholds never suffer conversion rounding.
func (s *Stats) MaxWeightIn(unit energy.UnitSystem) float64 {
	var heaviest float64
	for _, set := range s.heaviestPerUnit {
		if weight := set.WeightIn(unit); weight > heaviest {
			heaviest = weight
		}
	}
	return heaviest
}

func (s *Stats) HasSetWithReps(reps int) bool {
	return s.repsSeen[reps]
}

func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// longestStreak is the longest run of calendar-consecutive days anywhere in the set.
func longestStreak(days map[time.Time]bool) int {
	if len(days) == 0 {
		return 0
	}

	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	longest, current := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == 24*time.Hour {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}
