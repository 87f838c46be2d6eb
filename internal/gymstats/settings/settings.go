package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymenergy/internal/gymstats/energy"
	"github.com/2beens/gymenergy/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultKey = "gymenergy:settings"

	fieldUnitSystem      = "unit_system"
	fieldCalculationMode = "calculation_mode"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings are consulted when a set is logged only. Logged sets keep the values they were created with.
type Settings struct {
	UnitSystem      energy.UnitSystem      `json:"unitSystem"`
	CalculationMode energy.CalculationMode `json:"calculationMode"`
}

func (s Settings) Validate() error {
	if !s.UnitSystem.IsValid() {
		return fmt.Errorf("%w: unit system [%s]", ErrInvalidSettings, s.UnitSystem)
	}
	if !s.CalculationMode.IsValid() {
		return fmt.Errorf("%w: calculation mode [%s]", ErrInvalidSettings, s.CalculationMode)
	}
	return nil
}

// RedisProvider keeps settings in a redis hash, falling back to defaults for missing or broken fields.
type RedisProvider struct {
	redisClient *redis.Client
	key         string
	defaults    Settings
}

func NewRedisProvider(redisClient *redis.Client, key string, defaults Settings) *RedisProvider {
	if key == "" {
		key = DefaultKey
	}
	return &RedisProvider{
		redisClient: redisClient,
		key:         key,
		defaults:    defaults,
	}
}

func (p *RedisProvider) Defaults() Settings {
	return p.defaults
}

func (p *RedisProvider) Get(ctx context.Context) (_ Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.gymstats.settings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	values, err := p.redisClient.HGetAll(ctx, p.key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Settings{}, fmt.Errorf("hgetall: %w", err)
	}

	settings := p.defaults
	if raw, ok := values[fieldUnitSystem]; ok {
		if unit, err := energy.ParseUnitSystem(raw); err != nil {
			log.Warnf("stored unit system invalid, using default [%s]: %s", p.defaults.UnitSystem, err)
		} else {
			settings.UnitSystem = unit
		}
	}
	if raw, ok := values[fieldCalculationMode]; ok {
		if mode, err := energy.ParseCalculationMode(raw); err != nil {
			log.Warnf("stored calculation mode invalid, using default [%s]: %s", p.defaults.CalculationMode, err)
		} else {
			settings.CalculationMode = mode
		}
	}

	return settings, nil
}

func (p *RedisProvider) Set(ctx context.Context, settings Settings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.gymstats.settings.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := settings.Validate(); err != nil {
		return err
	}

	if err := p.redisClient.HSet(
		ctx,
		p.key,
		fieldUnitSystem, settings.UnitSystem.String(),
		fieldCalculationMode, settings.CalculationMode.String(),
	).Err(); err != nil {
		return fmt.Errorf("hset: %w", err)
	}

	return nil
}
