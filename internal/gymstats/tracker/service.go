package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/gymenergy/internal/gymstats/achievements"
	"github.com/2beens/gymenergy/internal/gymstats/energy"
	"github.com/2beens/gymenergy/internal/gymstats/progression"
	"github.com/2beens/gymenergy/internal/gymstats/settings"
	"github.com/2beens/gymenergy/internal/gymstats/workouts"
	"github.com/2beens/gymenergy/internal/telemetry/metrics"
	"github.com/2beens/gymenergy/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultCacheSize = 1024 * 1024 // 1 MB, freecache minimum is 512 KB

	summaryCacheKey   = "summary"
	customExercisePfx = "custom-"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=tracker_test

type workoutsRepo interface {
	ListExercises(ctx context.Context, params workouts.ListExercisesParams) ([]workouts.ExerciseDefinition, error)
	GetExercise(ctx context.Context, id string) (workouts.ExerciseDefinition, error)
	AddExercise(ctx context.Context, def workouts.ExerciseDefinition) error
	UpdateExercise(ctx context.Context, def workouts.ExerciseDefinition) error
	RemoveExercise(ctx context.Context, id string) (int64, error)
	ListSets(ctx context.Context, params workouts.ListSetsParams) ([]workouts.LoggedSet, error)
	AddSet(ctx context.Context, set workouts.LoggedSet) error
	RemoveSet(ctx context.Context, id string) error
}

type achievementStore interface {
	ListUnlocked(ctx context.Context) (achievements.UnlockedSet, error)
	Unlock(ctx context.Context, id string, at time.Time) (bool, error)
	ResetAll(ctx context.Context) error
}

type settingsProvider interface {
	Get(ctx context.Context) (settings.Settings, error)
	Set(ctx context.Context, s settings.Settings) error
}

type NewServiceParams struct {
	Repo             workoutsRepo
	AchievementStore achievementStore
	Settings         settingsProvider
	Evaluator        *achievements.Evaluator
	Metrics          *metrics.Manager
	CacheSizeBytes   int
	SummaryCacheTTL  time.Duration
}

// Service orchestrates the workout history, energy calculation, progression ladders and achievements.
// Mutations are serialized, so every evaluation pass sees the history the mutation produced.
type Service struct {
	mu sync.Mutex

	repo             workoutsRepo
	achievementStore achievementStore
	settings         settingsProvider
	evaluator        *achievements.Evaluator
	milestones       *progression.MilestoneLadder
	tiers            *progression.TierLadder
	metrics          *metrics.Manager

	summaryCache    *freecache.Cache
	summaryCacheTTL time.Duration

	now   func() time.Time
	newID func() string
}

func NewService(params NewServiceParams) *Service {
	cacheSize := params.CacheSizeBytes
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	evaluator := params.Evaluator
	if evaluator == nil {
		evaluator = achievements.NewEvaluator(achievements.Definitions(), time.UTC)
	}

	return &Service{
		repo:             params.Repo,
		achievementStore: params.AchievementStore,
		settings:         params.Settings,
		evaluator:        evaluator,
		milestones:       progression.NewMilestoneLadder(),
		tiers:            progression.NewTierLadder(progression.PowerTiers()),
		metrics:          params.Metrics,
		summaryCache:     freecache.NewCache(cacheSize),
		summaryCacheTTL:  params.SummaryCacheTTL,
		now:              time.Now,
		newID:            uuid.NewString,
	}
}

func (s *Service) LogSet(ctx context.Context, params LogSetParams) (_ *MutationResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.log_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", params.ExerciseID))

	if params.ExerciseID == "" {
		return nil, fmt.Errorf("%w: exercise id missing", energy.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exercise, err := s.repo.GetExercise(ctx, params.ExerciseID)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	currentSettings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	joules, err := energy.Calculate(
		params.Reps,
		params.Weight,
		currentSettings.UnitSystem,
		exercise.Displacement,
		currentSettings.CalculationMode,
	)
	if err != nil {
		return nil, fmt.Errorf("calculate joules: %w", err)
	}

	history, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	previousTotal := energy.TotalJoules(history.Sets)

	date := params.Date
	if date.IsZero() {
		date = s.now()
	}
	set := workouts.LoggedSet{
		ID:         s.newID(),
		ExerciseID: exercise.ID,
		Date:       date,
		Reps:       params.Reps,
		Weight:     params.Weight,
		Unit:       currentSettings.UnitSystem,
		Joules:     joules,
	}
	if err := s.repo.AddSet(ctx, set); err != nil {
		return nil, fmt.Errorf("add set: %w", err)
	}
	s.invalidateSummary()

	s.metrics.CounterSetsLogged.Inc()
	s.metrics.CounterJoulesLogged.Add(float64(joules))

	history.Sets = append(history.Sets, set)
	result := &MutationResult{
		Set:           &set,
		PreviousTotal: previousTotal,
		TotalJoules:   previousTotal + joules,
	}
	if crossed, ok := s.milestones.Crossed(result.PreviousTotal, result.TotalJoules); ok {
		result.CrossedMilestone = &crossed
		s.metrics.CounterMilestonesCrossed.Inc()
		log.Infof("milestone crossed: %s (%d J)", crossed.Name(), crossed.Threshold)
	}
	result.UnlockedAchievements = s.runEvaluation(ctx, history)
	s.metrics.GaugeTotalJoules.Set(float64(result.TotalJoules))

	span.SetAttributes(attribute.Int64("set.joules", joules))
	return result, nil
}

func (s *Service) RemoveSet(ctx context.Context, id string) (_ *MutationResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.remove_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("set.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	previousTotal := energy.TotalJoules(history.Sets)

	if err := s.repo.RemoveSet(ctx, id); err != nil {
		return nil, fmt.Errorf("remove set: %w", err)
	}
	s.invalidateSummary()
	s.metrics.CounterSetsRemoved.Inc()

	history.Sets = withoutSet(history.Sets, id)
	return s.afterMutation(ctx, history, &MutationResult{PreviousTotal: previousTotal}), nil
}

func (s *Service) ListExercises(ctx context.Context, params workouts.ListExercisesParams) (_ []workouts.ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.list_exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercises, err := s.repo.ListExercises(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// AddExercise stores a new custom exercise. A missing id gets generated.
func (s *Service) AddExercise(ctx context.Context, def workouts.ExerciseDefinition) (_ *MutationResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.add_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if def.ID == "" {
		def.ID = customExercisePfx + s.newID()
	}
	def.Custom = true
	if err := def.Validate(); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("exercise.id", def.ID))

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.AddExercise(ctx, def); err != nil {
		return nil, fmt.Errorf("add exercise: %w", err)
	}
	s.invalidateSummary()

	history, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	result := s.afterMutation(ctx, history, &MutationResult{Exercise: &def})
	result.PreviousTotal = result.TotalJoules
	return result, nil
}

// UpdateExercise rewrites a custom exercise. Logged sets keep their snapshotted joules.
func (s *Service) UpdateExercise(ctx context.Context, def workouts.ExerciseDefinition) (_ *MutationResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.update_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", def.ID))

	def.Custom = true
	if err := def.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetExercise(ctx, def.ID)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	if !existing.Custom {
		return nil, workouts.ErrBuiltinExercise
	}

	if err := s.repo.UpdateExercise(ctx, def); err != nil {
		return nil, fmt.Errorf("update exercise: %w", err)
	}
	s.invalidateSummary()

	history, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	result := s.afterMutation(ctx, history, &MutationResult{Exercise: &def})
	result.PreviousTotal = result.TotalJoules
	return result, nil
}

// RemoveExercise deletes a custom exercise and all of its sets.
func (s *Service) RemoveExercise(ctx context.Context, id string) (_ *MutationResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.remove_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	previousTotal := energy.TotalJoules(history.Sets)

	removedSets, err := s.repo.RemoveExercise(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("remove exercise: %w", err)
	}
	s.invalidateSummary()
	s.metrics.CounterSetsRemoved.Add(float64(removedSets))

	history.Exercises = withoutExercise(history.Exercises, id)
	history.Sets = withoutExerciseSets(history.Sets, id)
	return s.afterMutation(ctx, history, &MutationResult{
		PreviousTotal: previousTotal,
		RemovedSets:   removedSets,
	}), nil
}

func (s *Service) ListSets(ctx context.Context, params workouts.ListSetsParams) (_ []workouts.LoggedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.list_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sets, err := s.repo.ListSets(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	return sets, nil
}

// Summary is served from cache until the next mutation.
func (s *Service) Summary(ctx context.Context) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if summary, ok := s.cachedSummary(); ok {
		s.metrics.CounterSummaryCacheHits.Inc()
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return summary, nil
	}
	s.metrics.CounterSummaryCacheMisses.Inc()
	span.SetAttributes(attribute.Bool("cache.hit", false))

	// computed under the mutation lock, so an invalidation cannot race with caching a stale summary
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		history  achievements.History
		unlocked achievements.UnlockedSet
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		history, err = s.snapshot(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		unlocked, err = s.achievementStore.ListUnlocked(gCtx)
		if err != nil {
			return fmt.Errorf("list unlocked: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	loc := s.evaluator.Location()
	total := energy.TotalJoules(history.Sets)
	perDay := make(map[string]int64)
	for day, joules := range energy.JoulesPerDay(history.Sets, loc) {
		perDay[day.Format(time.DateOnly)] = joules
	}

	defs := s.evaluator.Definitions()
	unlockedCount := 0
	for _, def := range defs {
		if unlocked.Has(def.ID) {
			unlockedCount++
		}
	}

	summary := &Summary{
		TotalJoules:       total,
		TotalSets:         len(history.Sets),
		JoulesPerExercise: energy.JoulesPerExercise(history.Sets),
		JoulesPerDay:      perDay,
		Milestone:         s.milestones.View(total),
		PowerTier:         s.tiers.View(total),
		Points:            achievements.Points(defs, unlocked),
		UnlockedCount:     unlockedCount,
		AchievementsCount: len(defs),
		GeneratedAt:       s.now(),
	}

	if summaryJson, err := json.Marshal(summary); err != nil {
		log.Errorf("marshal summary for cache: %s", err)
	} else if err := s.summaryCache.Set([]byte(summaryCacheKey), summaryJson, int(s.summaryCacheTTL.Seconds())); err != nil {
		log.Warnf("cache summary: %s", err)
	}

	return summary, nil
}

func (s *Service) Milestones(ctx context.Context) (_ *MilestonesOverview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.milestones")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sets, err := s.repo.ListSets(ctx, workouts.ListSetsParams{})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	return &MilestonesOverview{
		Milestones: s.milestones.All(),
		PowerTiers: s.tiers.Tiers(),
		Current:    s.milestones.View(energy.TotalJoules(sets)),
	}, nil
}

// Achievements lists every achievement with its state. Hidden locked ones are masked.
func (s *Service) Achievements(ctx context.Context) (_ []AchievementView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.achievements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	unlocked, err := s.achievementStore.ListUnlocked(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unlocked: %w", err)
	}

	defs := s.evaluator.Definitions()
	views := make([]AchievementView, 0, len(defs))
	for _, def := range defs {
		views = append(views, newAchievementView(def, unlocked))
	}
	return views, nil
}

// Evaluate runs an explicit evaluation pass and returns what got unlocked by it.
func (s *Service) Evaluate(ctx context.Context) (_ []AchievementView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.evaluate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	unlocked, err := s.evaluate(ctx, history)
	if err != nil {
		return nil, err
	}
	return unlocked, nil
}

// ResetAchievements locks every achievement again.
func (s *Service) ResetAchievements(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.reset_achievements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.achievementStore.ResetAll(ctx); err != nil {
		return fmt.Errorf("reset achievements: %w", err)
	}
	s.invalidateSummary()
	log.Warnln("all achievements have been reset")
	return nil
}

func (s *Service) GetSettings(ctx context.Context) (_ settings.Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.get_settings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	current, err := s.settings.Get(ctx)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return current, nil
}

// UpdateSettings affects sets logged from now on only.
func (s *Service) UpdateSettings(ctx context.Context, newSettings settings.Settings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.tracker.update_settings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := newSettings.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settings.Set(ctx, newSettings); err != nil {
		return fmt.Errorf("set settings: %w", err)
	}
	return nil
}

// snapshot reads exercises and sets concurrently.
func (s *Service) snapshot(ctx context.Context) (achievements.History, error) {
	var history achievements.History

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		exercises, err := s.repo.ListExercises(gCtx, workouts.ListExercisesParams{})
		if err != nil {
			return fmt.Errorf("list exercises: %w", err)
		}
		history.Exercises = exercises
		return nil
	})
	g.Go(func() error {
		sets, err := s.repo.ListSets(gCtx, workouts.ListSetsParams{})
		if err != nil {
			return fmt.Errorf("list sets: %w", err)
		}
		history.Sets = sets
		return nil
	})
	if err := g.Wait(); err != nil {
		return achievements.History{}, err
	}

	return history, nil
}

// afterMutation fills the totals and achievements of a mutation result. Removals never cross milestones.
func (s *Service) afterMutation(ctx context.Context, history achievements.History, result *MutationResult) *MutationResult {
	result.TotalJoules = energy.TotalJoules(history.Sets)
	result.UnlockedAchievements = s.runEvaluation(ctx, history)
	s.metrics.GaugeTotalJoules.Set(float64(result.TotalJoules))
	return result
}

// runEvaluation is used after mutations: the mutation itself is already committed, so a failing
// evaluation is only logged. The next pass picks up whatever was missed.
func (s *Service) runEvaluation(ctx context.Context, history achievements.History) []AchievementView {
	unlocked, err := s.evaluate(ctx, history)
	if err != nil {
		log.Errorf("evaluate achievements: %s", err)
	}
	if unlocked == nil {
		unlocked = []AchievementView{}
	}
	return unlocked
}

func (s *Service) evaluate(ctx context.Context, history achievements.History) ([]AchievementView, error) {
	start := time.Now()
	defs, err := s.evaluator.Run(ctx, s.achievementStore, history)
	s.metrics.HistogramEvaluationDuration.Observe(time.Since(start).Seconds())

	var views []AchievementView
	if len(defs) > 0 {
		s.invalidateSummary()
		now := s.now()
		unlocked := make(achievements.UnlockedSet, len(defs))
		for _, def := range defs {
			unlocked[def.ID] = now
		}
		for _, def := range defs {
			s.metrics.CounterAchievementsUnlocked.WithLabelValues(string(def.Category)).Inc()
			views = append(views, newAchievementView(def, unlocked))
			log.Infof("achievement unlocked: %s", def.ID)
		}
	}
	if err != nil {
		return views, fmt.Errorf("run evaluator: %w", err)
	}
	return views, nil
}

func (s *Service) cachedSummary() (*Summary, bool) {
	cached, err := s.summaryCache.Get([]byte(summaryCacheKey))
	if err != nil {
		return nil, false
	}
	var summary Summary
	if err := json.Unmarshal(cached, &summary); err != nil {
		log.Warnf("cached summary broken, recomputing: %s", err)
		return nil, false
	}
	return &summary, true
}

func (s *Service) invalidateSummary() {
	s.summaryCache.Del([]byte(summaryCacheKey))
}

func withoutSet(sets []workouts.LoggedSet, id string) []workouts.LoggedSet {
	out := make([]workouts.LoggedSet, 0, len(sets))
	for _, set := range sets {
		if set.ID != id {
			out = append(out, set)
		}
	}
	return out
}

func withoutExercise(exercises []workouts.ExerciseDefinition, id string) []workouts.ExerciseDefinition {
	out := make([]workouts.ExerciseDefinition, 0, len(exercises))
	for _, def := range exercises {
		if def.ID != id {
			out = append(out, def)
		}
	}
	return out
}

func withoutExerciseSets(sets []workouts.LoggedSet, exerciseID string) []workouts.LoggedSet {
	out := make([]workouts.LoggedSet, 0, len(sets))
	for _, set := range sets {
		if set.ExerciseID != exerciseID {
			out = append(out, set)
		}
	}
	return out
}

// IsValidationErr reports errors caused by bad user input.
func IsValidationErr(err error) bool {
	return errors.Is(err, energy.ErrInvalidInput) ||
		errors.Is(err, workouts.ErrInvalidExercise) ||
		errors.Is(err, settings.ErrInvalidSettings)
}
