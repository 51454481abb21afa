// Package redis provides the Redis-backed daily score repository.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sunova/game_economy/internal/modules/wallet/domain"
)

// DailyScoreRepository implements domain.DailyScoreRepository using a Redis
// sorted set per day. Scores are leaderboard-only, so the weaker consistency
// of a separate store is acceptable.
type DailyScoreRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewDailyScoreRepository creates a new Redis daily score repository
func NewDailyScoreRepository(rdb *redis.Client) *DailyScoreRepository {
	return &DailyScoreRepository{
		rdb: rdb,
		ttl: 48 * time.Hour, // keys self-expire a day after the reset would drop them
	}
}

func dayKey(day string) string {
	return fmt.Sprintf("daily_score:%s", day)
}

func (r *DailyScoreRepository) Increment(ctx context.Context, day, userID string, delta int64) error {
	key := dayKey(day)

	pipe := r.rdb.Pipeline()
	pipe.ZIncrBy(ctx, key, float64(delta), userID)
	pipe.Expire(ctx, key, r.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *DailyScoreRepository) Score(ctx context.Context, day, userID string) (int64, error) {
	score, err := r.rdb.ZScore(ctx, dayKey(day), userID).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int64(score), nil
}

func (r *DailyScoreRepository) Top(ctx context.Context, day string, limit int) ([]domain.DailyEntry, error) {
	members, err := r.rdb.ZRevRangeWithScores(ctx, dayKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.DailyEntry, 0, len(members))
	for _, m := range members {
		userID, ok := m.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, domain.DailyEntry{UserID: userID, Score: int64(m.Score)})
	}
	return entries, nil
}

func (r *DailyScoreRepository) ResetExcept(ctx context.Context, day string) error {
	keep := dayKey(day)

	iter := r.rdb.Scan(ctx, 0, "daily_score:*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == keep {
			continue
		}
		if err := r.rdb.Del(ctx, key).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
