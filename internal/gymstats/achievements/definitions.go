package achievements

import (
	"github.com/2beens/gymenergy/internal/gymstats/energy"
	"github.com/2beens/gymenergy/internal/gymstats/workouts"
)

type Category string

const (
	CategoryEnergy      Category = "energy"
	CategoryExploration Category = "exploration"
	CategoryConsistency Category = "consistency"
	CategoryDedication  Category = "dedication"
	CategoryTiming      Category = "timing"
	CategoryStrength    Category = "strength"
)

type Definition struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	Hidden      bool      `json:"hidden"`
	Category    Category  `json:"category"`
	Condition   Condition `json:"-"`
}

var definitions = []Definition{
	{
		ID: "energy_1k", Name: "First Spark", Description: "Generate 1,000 joules in total",
		Points: 10, Category: CategoryEnergy, Condition: TotalJoules{Threshold: 1_000},
	},
	{
		ID: "energy_100k", Name: "Power Plant", Description: "Generate 100,000 joules in total",
		Points: 25, Category: CategoryEnergy, Condition: TotalJoules{Threshold: 100_000},
	},
	{
		ID: "energy_1m", Name: "Megajoule Club", Description: "Generate 1,000,000 joules in total",
		Points: 50, Category: CategoryEnergy, Condition: TotalJoules{Threshold: 1_000_000},
	},
	{
		ID: "energy_10m", Name: "Human Reactor", Description: "Generate 10,000,000 joules in total",
		Points: 100, Hidden: true, Category: CategoryEnergy, Condition: TotalJoules{Threshold: 10_000_000},
	},
	{
		ID: "explorer_5", Name: "Explorer", Description: "Log 5 different exercises",
		Points: 10, Category: CategoryExploration, Condition: ExerciseCount{Count: 5},
	},
	{
		ID: "explorer_15", Name: "Globetrotter", Description: "Log 15 different exercises",
		Points: 25, Category: CategoryExploration, Condition: ExerciseCount{Count: 15},
	},
	{
		ID: "cardio_variety", Name: "Cardio Sampler", Description: "Log 3 different cardio exercises",
		Points: 15, Category: CategoryExploration, Condition: ExerciseCount{Count: 3, Category: workouts.CategoryCardio},
	},
	{
		ID: "all_rounder", Name: "All-Rounder", Description: "Train 6 different categories",
		Points: 20, Category: CategoryExploration, Condition: AllCategories{Count: 6},
	},
	{
		ID: "streak_3", Name: "Warming Up", Description: "Work out 3 days in a row",
		Points: 10, Category: CategoryConsistency, Condition: ExerciseStreak{Days: 3},
	},
	{
		ID: "streak_7", Name: "Week Strong", Description: "Work out 7 days in a row",
		Points: 25, Category: CategoryConsistency, Condition: ExerciseStreak{Days: 7},
	},
	{
		ID: "streak_30", Name: "Unbreakable", Description: "Work out 30 days in a row",
		Points: 100, Hidden: true, Category: CategoryConsistency, Condition: ExerciseStreak{Days: 30},
	},
	{
		ID: "weekend_warrior", Name: "Weekend Warrior", Description: "Work out on 5 different weekends",
		Points: 15, Category: CategoryConsistency, Condition: WeekendWarrior{Count: 5},
	},
	{
		ID: "bench_regular", Name: "Bench Regular", Description: "Log 50 sets of bench press",
		Points: 20, Category: CategoryDedication, Condition: SpecificExercise{ExerciseID: "bench_press", Count: 50},
	},
	{
		ID: "squat_devotee", Name: "Squat Devotee", Description: "Log 50 sets of squats",
		Points: 20, Category: CategoryDedication, Condition: SpecificExercise{ExerciseID: "squat", Count: 50},
	},
	{
		ID: "legs_complete", Name: "Never Skip Leg Day", Description: "Log every leg exercise at least once",
		Points: 20, Category: CategoryDedication, Condition: CategoryComplete{Category: workouts.CategoryLegs},
	},
	{
		ID: "core_complete", Name: "Rock Solid", Description: "Log every core exercise at least once",
		Points: 20, Category: CategoryDedication, Condition: CategoryComplete{Category: workouts.CategoryCore},
	},
	{
		ID: "early_bird", Name: "Early Bird", Description: "Log a set before 6 AM",
		Points: 15, Category: CategoryTiming, Condition: BeforeHour{Hour: 6},
	},
	{
		ID: "night_owl", Name: "Night Owl", Description: "Log a set after 10 PM",
		Points: 15, Category: CategoryTiming, Condition: AfterHour{Hour: 22},
	},
	{
		ID: "heavy_lifter_100kg", Name: "Heavy Lifter", Description: "Lift 100 kg in a single set",
		Points: 25, Category: CategoryStrength, Condition: HeavyLifter{Weight: 100, Unit: energy.Metric},
	},
	{
		ID: "heavy_lifter_225lb", Name: "Two Plates", Description: "Lift 225 lb in a single set",
		Points: 25, Hidden: true, Category: CategoryStrength, Condition: HeavyLifter{Weight: 225, Unit: energy.Imperial},
	},
	{
		ID: "perfect_ten", Name: "Perfect Ten", Description: "Log a set of exactly 10 reps",
		Points: 5, Category: CategoryStrength, Condition: PerfectSet{Reps: 10},
	},
	{
		ID: "century_set", Name: "Century", Description: "Log a set of exactly 100 reps",
		Points: 50, Hidden: true, Category: CategoryStrength, Condition: PerfectSet{Reps: 100},
	},
}

// Definitions returns a copy of the built-in achievement list.
func Definitions() []Definition {
	defs := make([]Definition, len(definitions))
	copy(defs, definitions)
	return defs
}
