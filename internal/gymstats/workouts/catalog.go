package workouts

// BuiltinCatalog holds the exercises every installation starts with.
// Displacements are typical bar/body travel per rep, in meters.
var BuiltinCatalog = []ExerciseDefinition{
	// chest
	{ID: "bench_press", Name: "Bench Press", Category: CategoryChest, Displacement: 0.40},
	{ID: "incline_bench_press", Name: "Incline Bench Press", Category: CategoryChest, Displacement: 0.40},
	{ID: "dumbbell_fly", Name: "Dumbbell Fly", Category: CategoryChest, Displacement: 0.35},
	{ID: "push_up", Name: "Push Up", Category: CategoryChest, Displacement: 0.30, RequiresBodyWeight: true},

	// back
	{ID: "deadlift", Name: "Deadlift", Category: CategoryBack, Displacement: 0.60},
	{ID: "barbell_row", Name: "Barbell Row", Category: CategoryBack, Displacement: 0.45},
	{ID: "lat_pulldown", Name: "Lat Pulldown", Category: CategoryBack, Displacement: 0.50},
	{ID: "pull_up", Name: "Pull Up", Category: CategoryBack, Displacement: 0.50, RequiresBodyWeight: true},

	// legs
	{ID: "squat", Name: "Squat", Category: CategoryLegs, Displacement: 0.50},
	{ID: "leg_press", Name: "Leg Press", Category: CategoryLegs, Displacement: 0.45},
	{ID: "lunge", Name: "Lunge", Category: CategoryLegs, Displacement: 0.40},
	{ID: "calf_raise", Name: "Calf Raise", Category: CategoryLegs, Displacement: 0.10},

	// shoulders
	{ID: "overhead_press", Name: "Overhead Press", Category: CategoryShoulders, Displacement: 0.55},
	{ID: "lateral_raise", Name: "Lateral Raise", Category: CategoryShoulders, Displacement: 0.45},
	{ID: "face_pull", Name: "Face Pull", Category: CategoryShoulders, Displacement: 0.35},

	// arms
	{ID: "biceps_curl", Name: "Biceps Curl", Category: CategoryArms, Displacement: 0.45},
	{ID: "triceps_extension", Name: "Triceps Extension", Category: CategoryArms, Displacement: 0.40},
	{ID: "dip", Name: "Dip", Category: CategoryArms, Displacement: 0.35, RequiresBodyWeight: true},

	// core
	{ID: "crunch", Name: "Crunch", Category: CategoryCore, Displacement: 0.25, RequiresBodyWeight: true},
	{ID: "hanging_leg_raise", Name: "Hanging Leg Raise", Category: CategoryCore, Displacement: 0.50, RequiresBodyWeight: true},
	{ID: "plank", Name: "Plank", Category: CategoryCore, Displacement: 0, RequiresBodyWeight: true, IsIsometric: true},

	// cardio
	{ID: "rowing", Name: "Rowing Machine", Category: CategoryCardio, Displacement: 0.80, IsCardio: true},
	{ID: "cycling", Name: "Stationary Bike", Category: CategoryCardio, Displacement: 0.35, IsCardio: true},
	{ID: "jump_rope", Name: "Jump Rope", Category: CategoryCardio, Displacement: 0.05, RequiresBodyWeight: true, IsCardio: true},

	// full body
	{ID: "clean_and_press", Name: "Clean and Press", Category: CategoryFullBody, Displacement: 1.60},
	{ID: "kettlebell_swing", Name: "Kettlebell Swing", Category: CategoryFullBody, Displacement: 0.70},
	{ID: "burpee", Name: "Burpee", Category: CategoryFullBody, Displacement: 0.60, RequiresBodyWeight: true, IsCardio: true},
}

// Catalog returns a copy of the built-in exercises.
func Catalog() []ExerciseDefinition {
	catalog := make([]ExerciseDefinition, len(BuiltinCatalog))
	copy(catalog, BuiltinCatalog)
	return catalog
}
