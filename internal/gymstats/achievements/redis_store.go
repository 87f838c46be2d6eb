package achievements

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/gymenergy/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultUnlockedKey is the redis hash holding achievement id -> unlocked at (unix seconds).
const DefaultUnlockedKey = "gymenergy:achievements:unlocked"

type RedisStore struct {
	redisClient *redis.Client
	key         string
}

func NewRedisStore(redisClient *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultUnlockedKey
	}
	return &RedisStore{
		redisClient: redisClient,
		key:         key,
	}
}

func (s *RedisStore) IsUnlocked(ctx context.Context, id string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.gymstats.achievements.is_unlocked")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("achievement.id", id))

	unlocked, err := s.redisClient.HExists(ctx, s.key, id).Result()
	if err != nil {
		return false, fmt.Errorf("hexists: %w", err)
	}
	return unlocked, nil
}

// Unlock marks id as unlocked at the given time. It is idempotent: the first unlock time is kept,
// and the returned bool is true only when this call performed the transition.
func (s *RedisStore) Unlock(ctx context.Context, id string, at time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.gymstats.achievements.unlock")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("achievement.id", id))

	transitioned, err := s.redisClient.HSetNX(ctx, s.key, id, at.Unix()).Result()
	if err != nil {
		return false, fmt.Errorf("hsetnx: %w", err)
	}
	return transitioned, nil
}

func (s *RedisStore) ListUnlocked(ctx context.Context) (_ UnlockedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.gymstats.achievements.list_unlocked")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	values, err := s.redisClient.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall: %w", err)
	}

	unlocked := make(UnlockedSet, len(values))
	for id, unlockedAtStr := range values {
		unlockedAtUnix, err := strconv.ParseInt(unlockedAtStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse unlocked at for [%s]: %w", id, err)
		}
		unlocked[id] = time.Unix(unlockedAtUnix, 0)
	}

	span.SetAttributes(attribute.Int("achievements.unlocked", len(unlocked)))
	return unlocked, nil
}

// ResetAll locks every achievement again.
func (s *RedisStore) ResetAll(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.gymstats.achievements.reset_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.redisClient.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("del: %w", err)
	}
	return nil
}
