package tracker

import (
	"time"

	"github.com/2beens/gymenergy/internal/gymstats/achievements"
	"github.com/2beens/gymenergy/internal/gymstats/progression"
	"github.com/2beens/gymenergy/internal/gymstats/workouts"
)

const maskedText = "???"

type LogSetParams struct {
	ExerciseID string    `json:"exerciseId"`
	Date       time.Time `json:"date"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
}

// MutationResult is what a mutation reports back to the user: the new state of the totals,
// a milestone crossed by this very mutation and the achievements it unlocked.
type MutationResult struct {
	Set                  *workouts.LoggedSet          `json:"set,omitempty"`
	Exercise             *workouts.ExerciseDefinition `json:"exercise,omitempty"`
	RemovedSets          int64                        `json:"removedSets,omitempty"`
	PreviousTotal        int64                        `json:"previousTotal"`
	TotalJoules          int64                        `json:"totalJoules"`
	CrossedMilestone     *progression.Milestone       `json:"crossedMilestone,omitempty"`
	UnlockedAchievements []AchievementView            `json:"unlockedAchievements"`
}

type Summary struct {
	TotalJoules       int64                     `json:"totalJoules"`
	TotalSets         int                       `json:"totalSets"`
	JoulesPerExercise map[string]int64          `json:"joulesPerExercise"`
	JoulesPerDay      map[string]int64          `json:"joulesPerDay"`
	Milestone         progression.MilestoneView `json:"milestone"`
	PowerTier         progression.TierView      `json:"powerTier"`
	Points            int                       `json:"points"`
	UnlockedCount     int                       `json:"unlockedCount"`
	AchievementsCount int                       `json:"achievementsCount"`
	GeneratedAt       time.Time                 `json:"generatedAt"`
}

type AchievementView struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Points      int                   `json:"points"`
	Hidden      bool                  `json:"hidden"`
	Category    achievements.Category `json:"category"`
	Unlocked    bool                  `json:"unlocked"`
	UnlockedAt  *time.Time            `json:"unlockedAt,omitempty"`
}

// newAchievementView masks the name and description of hidden achievements until they are unlocked.
func newAchievementView(def achievements.Definition, unlocked achievements.UnlockedSet) AchievementView {
	view := AchievementView{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		Points:      def.Points,
		Hidden:      def.Hidden,
		Category:    def.Category,
	}
	if at, ok := unlocked[def.ID]; ok {
		view.Unlocked = true
		view.UnlockedAt = &at
	} else if def.Hidden {
		view.Name = maskedText
		view.Description = maskedText
	}
	return view
}

type MilestonesOverview struct {
	Milestones []progression.Milestone   `json:"milestones"`
	PowerTiers []progression.PowerTier   `json:"powerTiers"`
	Current    progression.MilestoneView `json:"current"`
}
