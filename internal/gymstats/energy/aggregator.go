package energy

import "time"

// Set is the minimal view of a logged set the aggregator needs.
type Set interface {
	GetExerciseID() string
	GetDate() time.Time
	GetJoules() int64
}

// Filter selects which sets contribute to a total.
type Filter func(s Set) bool

func ForExercise(exerciseID string) Filter {
	return func(s Set) bool {
		return s.GetExerciseID() == exerciseID
	}
}

// Between keeps sets with from <= date < to. A zero bound is open.
func Between(from, to time.Time) Filter {
	return func(s Set) bool {
		d := s.GetDate()
		if !from.IsZero() && d.Before(from) {
			return false
		}
		if !to.IsZero() && !d.Before(to) {
			return false
		}
		return true
	}
}

// TotalJoules sums the joules of all sets that pass every filter.
func TotalJoules[S Set](sets []S, filters ...Filter) int64 {
	var total int64
	for _, s := range sets {
		if !passes(s, filters) {
			continue
		}
		total += s.GetJoules()
	}
	return total
}

// JoulesPerExercise returns the total joules for each exercise id present in sets.
func JoulesPerExercise[S Set](sets []S, filters ...Filter) map[string]int64 {
	totals := make(map[string]int64)
	for _, s := range sets {
		if !passes(s, filters) {
			continue
		}
		totals[s.GetExerciseID()] += s.GetJoules()
	}
	return totals
}

// JoulesPerDay groups totals by calendar day in loc. Keys are midnight in loc.
func JoulesPerDay[S Set](sets []S, loc *time.Location, filters ...Filter) map[time.Time]int64 {
	if loc == nil {
		loc = time.UTC
	}
	totals := make(map[time.Time]int64)
	for _, s := range sets {
		if !passes(s, filters) {
			continue
		}
		y, m, d := s.GetDate().In(loc).Date()
		totals[time.Date(y, m, d, 0, 0, 0, 0, loc)] += s.GetJoules()
	}
	return totals
}

func passes(s Set, filters []Filter) bool {
	for _, f := range filters {
		if !f(s) {
			return false
		}
	}
	return true
}
