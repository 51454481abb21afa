package service

import "context"

// WalletService defines the wallet operations exposed to the game modules.
// Every stake and payout moves through here so the ledger invariants live in
// one place.
type WalletService interface {
	// GetBalance returns the spendable balance for a user
	GetBalance(ctx context.Context, userID string) (int64, error)

	// GetBalances returns the spendable balance and the diamond balance
	GetBalances(ctx context.Context, userID string) (balance, diamonds int64, err error)

	// StakeToHouse moves a stake from the player to the house account:
	// a bet debit on the player and a house_credit on the house, each with
	// its own transaction record. Fails with ErrInsufficientFunds before
	// any mutation if the player cannot cover the stake.
	StakeToHouse(ctx context.Context, userID string, amount int64, game string, meta map[string]interface{}) (int64, error)

	// Payout credits winnings to the player as a win transaction and bumps
	// the daily score. Returns the new balance.
	Payout(ctx context.Context, userID string, amount int64, game string, meta map[string]interface{}) (int64, error)

	// RecordLoss appends a loss transaction. The stake already moved to the
	// house at placement, so no balance changes here.
	RecordLoss(ctx context.Context, userID string, amount int64, game string) error

	// Refund returns a stake to the player as a compensating adjust credit,
	// used when a game rejects a bet after the stake already moved.
	Refund(ctx context.Context, userID string, amount int64, game string, reason string) error
}
