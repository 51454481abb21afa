package domain

import "context"

// BetRepository defines the interface for roulette bet storage
type BetRepository interface {
	// SaveBet saves a bet
	SaveBet(ctx context.Context, bet *Bet) error

	// GetBets retrieves all bets for a round
	GetBets(ctx context.Context, roundID string) ([]*Bet, error)

	// ClaimSettlement atomically marks the round settled. Returns
	// ErrRoundSettled if another settlement already claimed it; the claim
	// and the check are one unit so two callers can never both win.
	ClaimSettlement(ctx context.Context, roundID string) error
}
