// Package usecase implements the leaderboard module's logic.
package usecase

import (
	"context"
	"time"

	"github.com/sunova/game_economy/internal/modules/leaderboard/domain"
)

// LeaderboardUseCase records payout events and serves winner queries. It
// implements the service.WinnerRecorder contract for the game modules.
type LeaderboardUseCase struct {
	winners domain.WinnerRepository
	now     func() time.Time
}

// NewLeaderboardUseCase creates a new leaderboard use case
func NewLeaderboardUseCase(winners domain.WinnerRepository) *LeaderboardUseCase {
	return &LeaderboardUseCase{
		winners: winners,
		now:     time.Now,
	}
}

// SetClock overrides the clock (for tests)
func (uc *LeaderboardUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// RecordWinner appends a winner record for a payout event.
func (uc *LeaderboardUseCase) RecordWinner(ctx context.Context, roundID, userID string, prize int64, label, game string) error {
	return uc.winners.Save(ctx, &domain.Winner{
		RoundID: roundID,
		UserID:  userID,
		Name:    userID,
		Prize:   prize,
		Label:   label,
		Game:    game,
		Date:    uc.now(),
	})
}

// TopWinners returns the most recent winners across all games
func (uc *LeaderboardUseCase) TopWinners(ctx context.Context, limit int) ([]*domain.Winner, error) {
	return uc.winners.Recent(ctx, limit)
}

// WinnersByRound returns the winners of a specific round
func (uc *LeaderboardUseCase) WinnersByRound(ctx context.Context, roundID string) ([]*domain.Winner, error) {
	return uc.winners.ByRound(ctx, roundID, 50)
}
