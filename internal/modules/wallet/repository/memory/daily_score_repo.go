package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sunova/game_economy/internal/modules/wallet/domain"
)

// DailyScoreRepository implements domain.DailyScoreRepository using memory
type DailyScoreRepository struct {
	scores map[string]map[string]int64 // day -> userID -> score
	mu     sync.RWMutex
}

// NewDailyScoreRepository creates a new memory daily score repository
func NewDailyScoreRepository() *DailyScoreRepository {
	return &DailyScoreRepository{
		scores: make(map[string]map[string]int64),
	}
}

func (r *DailyScoreRepository) Increment(ctx context.Context, day, userID string, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.scores[day] == nil {
		r.scores[day] = make(map[string]int64)
	}
	r.scores[day][userID] += delta
	return nil
}

func (r *DailyScoreRepository) Score(ctx context.Context, day, userID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.scores[day][userID], nil
}

func (r *DailyScoreRepository) Top(ctx context.Context, day string, limit int) ([]domain.DailyEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]domain.DailyEntry, 0, len(r.scores[day]))
	for userID, score := range r.scores[day] {
		entries = append(entries, domain.DailyEntry{UserID: userID, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score == entries[j].Score {
			return entries[i].UserID < entries[j].UserID
		}
		return entries[i].Score > entries[j].Score
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (r *DailyScoreRepository) ResetExcept(ctx context.Context, day string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for d := range r.scores {
		if d != day {
			delete(r.scores, d)
		}
	}
	return nil
}
