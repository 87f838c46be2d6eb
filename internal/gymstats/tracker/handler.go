package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymenergy/internal/gymstats/settings"
	"github.com/2beens/gymenergy/internal/gymstats/workouts"
	"github.com/2beens/gymenergy/internal/telemetry/tracing"
	"github.com/2beens/gymenergy/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=tracker_test

type trackerService interface {
	LogSet(ctx context.Context, params LogSetParams) (*MutationResult, error)
	RemoveSet(ctx context.Context, id string) (*MutationResult, error)
	ListSets(ctx context.Context, params workouts.ListSetsParams) ([]workouts.LoggedSet, error)
	ListExercises(ctx context.Context, params workouts.ListExercisesParams) ([]workouts.ExerciseDefinition, error)
	AddExercise(ctx context.Context, def workouts.ExerciseDefinition) (*MutationResult, error)
	UpdateExercise(ctx context.Context, def workouts.ExerciseDefinition) (*MutationResult, error)
	RemoveExercise(ctx context.Context, id string) (*MutationResult, error)
	Summary(ctx context.Context) (*Summary, error)
	Milestones(ctx context.Context) (*MilestonesOverview, error)
	Achievements(ctx context.Context) ([]AchievementView, error)
	Evaluate(ctx context.Context) ([]AchievementView, error)
	ResetAchievements(ctx context.Context) error
	GetSettings(ctx context.Context) (settings.Settings, error)
	UpdateSettings(ctx context.Context, newSettings settings.Settings) error
}

type ListSetsResponse struct {
	Sets  []workouts.LoggedSet `json:"sets"`
	Total int                  `json:"total"`
}

type ListExercisesResponse struct {
	Exercises []workouts.ExerciseDefinition `json:"exercises"`
	Total     int                           `json:"total"`
}

type EvaluateResponse struct {
	Unlocked []AchievementView `json:"unlocked"`
}

type Handler struct {
	service trackerService
}

func NewHandler(service trackerService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the /gymstats routes. Mutating routes are wrapped with rateLimit,
// the achievements reset with adminOnly.
func (handler *Handler) SetupRoutes(router *mux.Router, rateLimit, adminOnly mux.MiddlewareFunc) {
	r := router.PathPrefix("/gymstats").Subrouter()

	r.Handle("/sets", rateLimit(http.HandlerFunc(handler.HandleLogSet))).Methods("POST", "OPTIONS").Name("log-set")
	r.HandleFunc("/sets", handler.HandleListSets).Methods("GET", "OPTIONS").Name("list-sets")
	r.Handle("/sets/{id}", rateLimit(http.HandlerFunc(handler.HandleRemoveSet))).Methods("DELETE", "OPTIONS").Name("remove-set")

	r.HandleFunc("/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.Handle("/exercises", rateLimit(http.HandlerFunc(handler.HandleAddExercise))).Methods("POST", "OPTIONS").Name("add-exercise")
	r.Handle("/exercises", rateLimit(http.HandlerFunc(handler.HandleUpdateExercise))).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.Handle("/exercises/{id}", rateLimit(http.HandlerFunc(handler.HandleRemoveExercise))).Methods("DELETE", "OPTIONS").Name("remove-exercise")

	r.HandleFunc("/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("summary")
	r.HandleFunc("/milestones", handler.HandleMilestones).Methods("GET", "OPTIONS").Name("milestones")

	r.HandleFunc("/achievements", handler.HandleAchievements).Methods("GET", "OPTIONS").Name("achievements")
	r.Handle("/achievements/evaluate", rateLimit(http.HandlerFunc(handler.HandleEvaluate))).Methods("POST", "OPTIONS").Name("evaluate-achievements")
	r.Handle("/achievements", adminOnly(http.HandlerFunc(handler.HandleResetAchievements))).Methods("DELETE", "OPTIONS").Name("reset-achievements")

	r.HandleFunc("/settings", handler.HandleGetSettings).Methods("GET", "OPTIONS").Name("get-settings")
	r.Handle("/settings", rateLimit(http.HandlerFunc(handler.HandleUpdateSettings))).Methods("PUT", "OPTIONS").Name("update-settings")
}

func (handler *Handler) HandleLogSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.log_set")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var params LogSetParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("log set, unmarshal json params: %s", err)
		http.Error(w, "log set failed", http.StatusBadRequest)
		return
	}

	result, err := handler.service.LogSet(ctx, params)
	if err != nil {
		log.Errorf("failed to log set for exercise [%s]: %s", params.ExerciseID, err)
		http.Error(w, "error, failed to log set", errStatus(err))
		return
	}

	log.Debugf("set logged: [%s] %d J, total %d J", result.Set.ExerciseID, result.Set.Joules, result.TotalJoules)
	pkg.WriteJSON(w, result, http.StatusCreated)
}

func (handler *Handler) HandleRemoveSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.remove_set")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	result, err := handler.service.RemoveSet(ctx, id)
	if err != nil {
		log.Errorf("failed to remove set %s: %s", id, err)
		http.Error(w, "set not removed", errStatus(err))
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

// HandleListSets accepts optional exercise_id, from and to query params. Dates are RFC3339 or YYYY-MM-DD.
func (handler *Handler) HandleListSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.list_sets")
	defer span.End()

	query := r.URL.Query()
	params := workouts.ListSetsParams{
		ExerciseID: query.Get("exercise_id"),
	}

	var err error
	if params.From, err = parseTimeParam(query.Get("from")); err != nil {
		http.Error(w, "parse form error, parameter <from>", http.StatusBadRequest)
		return
	}
	if params.To, err = parseTimeParam(query.Get("to")); err != nil {
		http.Error(w, "parse form error, parameter <to>", http.StatusBadRequest)
		return
	}

	sets, err := handler.service.ListSets(ctx, params)
	if err != nil {
		log.Errorf("list sets error: %s", err)
		http.Error(w, "failed to get sets", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListSetsResponse{
		Sets:  sets,
		Total: len(sets),
	}, http.StatusOK)
}

// HandleListExercises accepts optional category and custom query params.
func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.list_exercises")
	defer span.End()

	query := r.URL.Query()
	params := workouts.ListExercisesParams{
		Category: workouts.Category(query.Get("category")),
	}
	if params.Category != "" && !params.Category.IsValid() {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}
	if customStr := query.Get("custom"); customStr != "" {
		onlyCustom, err := strconv.ParseBool(customStr)
		if err != nil {
			http.Error(w, "parse form error, parameter <custom>", http.StatusBadRequest)
			return
		}
		params.OnlyCustom = onlyCustom
	}

	exercises, err := handler.service.ListExercises(ctx, params)
	if err != nil {
		log.Errorf("list exercises error: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListExercisesResponse{
		Exercises: exercises,
		Total:     len(exercises),
	}, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.add_exercise")
	defer span.End()

	def, ok := decodeExercise(w, r)
	if !ok {
		return
	}

	result, err := handler.service.AddExercise(ctx, def)
	if err != nil {
		log.Errorf("failed to add exercise [%s]: %s", def.Name, err)
		http.Error(w, "error, failed to add exercise", errStatus(err))
		return
	}

	log.Debugf("custom exercise added: [%s] %s", result.Exercise.ID, result.Exercise.Name)
	pkg.WriteJSON(w, result, http.StatusCreated)
}

func (handler *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.update_exercise")
	defer span.End()

	def, ok := decodeExercise(w, r)
	if !ok {
		return
	}
	if def.ID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	result, err := handler.service.UpdateExercise(ctx, def)
	if err != nil {
		log.Errorf("failed to update exercise [%s]: %s", def.ID, err)
		http.Error(w, "error, failed to update exercise", errStatus(err))
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.remove_exercise")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	result, err := handler.service.RemoveExercise(ctx, id)
	if err != nil {
		log.Errorf("failed to remove exercise %s: %s", id, err)
		http.Error(w, "exercise not removed", errStatus(err))
		return
	}

	log.Debugf("exercise %s removed with %d sets", id, result.RemovedSets)
	pkg.WriteJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.summary")
	defer span.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		log.Errorf("get summary: %s", err)
		http.Error(w, "failed to get summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleMilestones(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.milestones")
	defer span.End()

	overview, err := handler.service.Milestones(ctx)
	if err != nil {
		log.Errorf("get milestones: %s", err)
		http.Error(w, "failed to get milestones", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, overview, http.StatusOK)
}

func (handler *Handler) HandleAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.achievements")
	defer span.End()

	views, err := handler.service.Achievements(ctx)
	if err != nil {
		log.Errorf("get achievements: %s", err)
		http.Error(w, "failed to get achievements", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, views, http.StatusOK)
}

func (handler *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.evaluate")
	defer span.End()

	unlocked, err := handler.service.Evaluate(ctx)
	if err != nil {
		log.Errorf("evaluate achievements: %s", err)
		http.Error(w, "failed to evaluate achievements", http.StatusInternalServerError)
		return
	}
	if unlocked == nil {
		unlocked = []AchievementView{}
	}

	pkg.WriteJSON(w, EvaluateResponse{Unlocked: unlocked}, http.StatusOK)
}

func (handler *Handler) HandleResetAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.reset_achievements")
	defer span.End()

	if err := handler.service.ResetAchievements(ctx); err != nil {
		log.Errorf("reset achievements: %s", err)
		http.Error(w, "failed to reset achievements", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.get_settings")
	defer span.End()

	current, err := handler.service.GetSettings(ctx)
	if err != nil {
		log.Errorf("get settings: %s", err)
		http.Error(w, "failed to get settings", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, current, http.StatusOK)
}

func (handler *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.tracker.update_settings")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var newSettings settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&newSettings); err != nil {
		log.Errorf("update settings, unmarshal json params: %s", err)
		http.Error(w, "update settings failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.UpdateSettings(ctx, newSettings); err != nil {
		log.Errorf("update settings: %s", err)
		http.Error(w, "error, failed to update settings", errStatus(err))
		return
	}

	pkg.WriteJSON(w, newSettings, http.StatusOK)
}

func decodeExercise(w http.ResponseWriter, r *http.Request) (workouts.ExerciseDefinition, bool) {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return workouts.ExerciseDefinition{}, false
	}

	var def workouts.ExerciseDefinition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		log.Errorf("exercise, unmarshal json params: %s", err)
		http.Error(w, "invalid exercise", http.StatusBadRequest)
		return workouts.ExerciseDefinition{}, false
	}
	return def, true
}

func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func errStatus(err error) int {
	switch {
	case IsValidationErr(err), errors.Is(err, workouts.ErrBuiltinExercise):
		return http.StatusBadRequest
	case errors.Is(err, workouts.ErrExerciseNotFound), errors.Is(err, workouts.ErrSetNotFound):
		return http.StatusNotFound
	case errors.Is(err, workouts.ErrExerciseExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
