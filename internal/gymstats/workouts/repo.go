package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymenergy/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrExerciseExists   = errors.New("exercise already exists")
	ErrBuiltinExercise  = errors.New("built-in exercise cannot be modified")
	ErrSetNotFound      = errors.New("set not found")
)

const pgUniqueViolation = "23505"

type ListExercisesParams struct {
	Category   Category
	OnlyCustom bool
}

type ListSetsParams struct {
	ExerciseID string
	From       *time.Time
	To         *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) EnsureSchema(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.ensure_schema")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err = r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SeedCatalog upserts the given built-in definitions, so running it on every startup is safe.
// Custom definitions are never touched.
func (r *Repo) SeedCatalog(ctx context.Context, catalog []ExerciseDefinition) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.seed_catalog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("catalog.size", len(catalog)))

	batch := &pgx.Batch{}
	for _, def := range catalog {
		batch.Queue(
			`
				INSERT INTO exercise_definition
				    (id, name, category, displacement, requires_body_weight, is_cardio, is_isometric, custom)
				VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
				ON CONFLICT (id) DO UPDATE
				SET name = EXCLUDED.name,
				    category = EXCLUDED.category,
				    displacement = EXCLUDED.displacement,
				    requires_body_weight = EXCLUDED.requires_body_weight,
				    is_cardio = EXCLUDED.is_cardio,
				    is_isometric = EXCLUDED.is_isometric
				WHERE exercise_definition.custom = FALSE
			`,
			def.ID, def.Name, string(def.Category), def.Displacement,
			def.RequiresBodyWeight, def.IsCardio, def.IsIsometric,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close seed batch: %w", closeErr)
		}
	}()

	for _, def := range catalog {
		if _, err = results.Exec(); err != nil {
			return fmt.Errorf("seed exercise [%s]: %w", def.ID, err)
		}
	}

	return nil
}

func (r *Repo) ListExercises(ctx context.Context, params ListExercisesParams) (_ []ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.list_exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.Category != "" {
		span.SetAttributes(attribute.String("params.category", string(params.Category)))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, name, category, displacement, requires_body_weight, is_cardio, is_isometric, custom
			FROM exercise_definition
			WHERE ($1::text = '' OR category = $1) AND ($2::bool = FALSE OR custom = TRUE)
			ORDER BY custom, category, name
		`,
		string(params.Category),
		params.OnlyCustom,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	var exercises []ExerciseDefinition
	for rows.Next() {
		def, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}

	return exercises, nil
}

func (r *Repo) GetExercise(ctx context.Context, id string) (_ ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.get_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	row := r.db.QueryRow(
		ctx,
		`
			SELECT
			    id, name, category, displacement, requires_body_weight, is_cardio, is_isometric, custom
			FROM exercise_definition
			WHERE id = $1
		`,
		id,
	)
	def, err := scanExercise(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return ExerciseDefinition{}, ErrExerciseNotFound
	}
	if err != nil {
		return ExerciseDefinition{}, fmt.Errorf("exercise [query row]: %w", err)
	}

	return def, nil
}

func (r *Repo) AddExercise(ctx context.Context, def ExerciseDefinition) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.add_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", def.ID))

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO exercise_definition
			    (id, name, category, displacement, requires_body_weight, is_cardio, is_isometric, custom)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
		def.ID, def.Name, string(def.Category), def.Displacement,
		def.RequiresBodyWeight, def.IsCardio, def.IsIsometric, def.Custom,
	)
	if isUniqueViolation(err) {
		return ErrExerciseExists
	}
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}

	return nil
}

// UpdateExercise rewrites a definition in place. Already logged sets keep their snapshotted joules.
func (r *Repo) UpdateExercise(ctx context.Context, def ExerciseDefinition) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.update_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", def.ID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE exercise_definition
			SET name = $2, category = $3, displacement = $4,
			    requires_body_weight = $5, is_cardio = $6, is_isometric = $7
			WHERE id = $1
		`,
		def.ID, def.Name, string(def.Category), def.Displacement,
		def.RequiresBodyWeight, def.IsCardio, def.IsIsometric,
	)
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

// RemoveExercise deletes a custom exercise together with all of its logged sets.
// It returns the number of removed sets.
func (r *Repo) RemoveExercise(ctx context.Context, id string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.remove_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback(ctx)
	}()

	var custom bool
	err = tx.QueryRow(
		ctx,
		`SELECT custom FROM exercise_definition WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&custom)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrExerciseNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lock exercise: %w", err)
	}
	if !custom {
		return 0, ErrBuiltinExercise
	}

	setsTag, err := tx.Exec(ctx, `DELETE FROM logged_set WHERE exercise_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete exercise sets: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM exercise_definition WHERE id = $1`, id); err != nil {
		return 0, fmt.Errorf("delete exercise: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.Int64("removed.sets", setsTag.RowsAffected()))
	return setsTag.RowsAffected(), nil
}

func (r *Repo) ListSets(ctx context.Context, params ListSetsParams) (_ []LoggedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.list_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.ExerciseID != "" {
		span.SetAttributes(attribute.String("params.exerciseId", params.ExerciseID))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id::text, exercise_id, performed_at, reps, weight, unit, joules
			FROM logged_set
			WHERE ($1::text = '' OR exercise_id = $1)
			  AND ($2::timestamptz IS NULL OR performed_at >= $2)
			  AND ($3::timestamptz IS NULL OR performed_at < $3)
			ORDER BY performed_at, id
		`,
		params.ExerciseID,
		params.From,
		params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("sets [query]: %w", err)
	}
	defer rows.Close()

	var sets []LoggedSet
	for rows.Next() {
		var set LoggedSet
		if err := rows.Scan(
			&set.ID,
			&set.ExerciseID,
			&set.Date,
			&set.Reps,
			&set.Weight,
			&set.Unit,
			&set.Joules,
		); err != nil {
			return nil, fmt.Errorf("sets [rows scan]: %w", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sets [rows error]: %w", err)
	}

	span.SetAttributes(attribute.Int("sets.count", len(sets)))
	return sets, nil
}

func (r *Repo) AddSet(ctx context.Context, set LoggedSet) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.add_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("set.id", set.ID),
		attribute.String("set.exerciseId", set.ExerciseID),
		attribute.Int64("set.joules", set.Joules),
	)

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO logged_set
			    (id, exercise_id, performed_at, reps, weight, unit, joules)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
		set.ID, set.ExerciseID, set.Date, set.Reps, set.Weight, string(set.Unit), set.Joules,
	)
	if err != nil {
		return fmt.Errorf("insert set: %w", err)
	}

	return nil
}

func (r *Repo) RemoveSet(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.remove_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("set.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM logged_set WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}

	return nil
}

func scanExercise(row pgx.Row) (ExerciseDefinition, error) {
	var def ExerciseDefinition
	err := row.Scan(
		&def.ID,
		&def.Name,
		&def.Category,
		&def.Displacement,
		&def.RequiresBodyWeight,
		&def.IsCardio,
		&def.IsIsometric,
		&def.Custom,
	)
	return def, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
