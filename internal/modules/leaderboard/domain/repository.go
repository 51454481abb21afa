package domain

import "context"

// WinnerRepository defines the interface for winner persistence
type WinnerRepository interface {
	// Save appends a winner record
	Save(ctx context.Context, w *Winner) error

	// Recent returns the most recent winners across all games, newest first
	Recent(ctx context.Context, limit int) ([]*Winner, error)

	// ByRound returns the winners of one round, newest first
	ByRound(ctx context.Context, roundID string, limit int) ([]*Winner, error)
}
