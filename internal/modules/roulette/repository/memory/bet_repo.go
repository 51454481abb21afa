// Package memory provides the memory-based roulette bet repository.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sunova/game_economy/internal/modules/roulette/domain"
)

// BetRepository implements domain.BetRepository using memory
type BetRepository struct {
	bets    map[string][]*domain.Bet // roundID -> bets
	settled map[string]time.Time     // roundID -> settled at
	mu      sync.RWMutex
}

// NewBetRepository creates a new memory bet repository
func NewBetRepository() *BetRepository {
	return &BetRepository{
		bets:    make(map[string][]*domain.Bet),
		settled: make(map[string]time.Time),
	}
}

func (r *BetRepository) SaveBet(ctx context.Context, bet *domain.Bet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bets[bet.RoundID] = append(r.bets[bet.RoundID], bet)
	return nil
}

func (r *BetRepository) GetBets(ctx context.Context, roundID string) ([]*domain.Bet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bets := r.bets[roundID]
	out := make([]*domain.Bet, len(bets))
	copy(out, bets)
	return out, nil
}

func (r *BetRepository) ClaimSettlement(ctx context.Context, roundID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.settled[roundID]; ok {
		return domain.ErrRoundSettled
	}
	r.settled[roundID] = time.Now()
	return nil
}
