// Package memory provides the memory-based winner repository.
package memory

import (
	"context"
	"sync"

	"github.com/sunova/game_economy/internal/modules/leaderboard/domain"
)

// WinnerRepository implements domain.WinnerRepository using memory
type WinnerRepository struct {
	winners []*domain.Winner // append order, newest last
	mu      sync.RWMutex
}

// NewWinnerRepository creates a new memory winner repository
func NewWinnerRepository() *WinnerRepository {
	return &WinnerRepository{}
}

func (r *WinnerRepository) Save(ctx context.Context, w *domain.Winner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.winners = append(r.winners, w)
	return nil
}

func (r *WinnerRepository) Recent(ctx context.Context, limit int) ([]*domain.Winner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Winner, 0, limit)
	for i := len(r.winners) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.winners[i])
	}
	return out, nil
}

func (r *WinnerRepository) ByRound(ctx context.Context, roundID string, limit int) ([]*domain.Winner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Winner, 0, limit)
	for i := len(r.winners) - 1; i >= 0 && len(out) < limit; i-- {
		if r.winners[i].RoundID == roundID {
			out = append(out, r.winners[i])
		}
	}
	return out, nil
}
