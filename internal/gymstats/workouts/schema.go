package workouts

// Schema creates the workout history tables when they are missing.
const Schema = `
CREATE TABLE IF NOT EXISTS exercise_definition
(
    id                   VARCHAR PRIMARY KEY,
    name                 VARCHAR          NOT NULL,
    category             VARCHAR          NOT NULL,
    displacement         DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (displacement >= 0),
    requires_body_weight BOOLEAN          NOT NULL DEFAULT FALSE,
    is_cardio            BOOLEAN          NOT NULL DEFAULT FALSE,
    is_isometric         BOOLEAN          NOT NULL DEFAULT FALSE,
    custom               BOOLEAN          NOT NULL DEFAULT FALSE,
    created_at           TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS logged_set
(
    id           UUID PRIMARY KEY,
    exercise_id  VARCHAR          NOT NULL REFERENCES exercise_definition (id) ON DELETE CASCADE,
    performed_at TIMESTAMP WITH TIME ZONE NOT NULL,
    reps         INTEGER          NOT NULL CHECK (reps > 0),
    weight       DOUBLE PRECISION NOT NULL CHECK (weight > 0),
    unit         VARCHAR          NOT NULL,
    joules       BIGINT           NOT NULL CHECK (joules >= 0)
);

CREATE INDEX IF NOT EXISTS ix_logged_set_performed_at ON logged_set USING btree (performed_at);
CREATE INDEX IF NOT EXISTS ix_logged_set_exercise_id ON logged_set USING btree (exercise_id);
`
