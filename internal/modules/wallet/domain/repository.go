package domain

import "context"

// LedgerRepository owns accounts and the append-only transaction log.
//
// ApplyBalanceDelta and ApplyDiamondDelta must commit the balance mutation and
// the transaction append as a single atomic unit: both apply or neither does.
// Concurrent deltas against the same account must serialize so two debits can
// never both pass the floor check and both apply.
type LedgerRepository interface {
	// GetOrCreate resolves an account, creating it with zero balances on
	// first reference. The second return reports whether it was created.
	// Concurrent calls for the same new identifier must not create
	// duplicates.
	GetOrCreate(ctx context.Context, userID string) (*Account, bool, error)

	// ApplyBalanceDelta adjusts the spendable balance by delta and appends
	// tx in the same atomic unit, returning the new balance. When
	// enforceFloor is set, a delta that would take the balance negative
	// fails with ErrInsufficientFunds and nothing is applied.
	ApplyBalanceDelta(ctx context.Context, userID string, delta int64, enforceFloor bool, tx *Transaction) (int64, error)

	// ApplyDiamondDelta adjusts the diamond balance by delta and appends tx
	// in the same atomic unit, returning the new diamond count.
	ApplyDiamondDelta(ctx context.Context, userID string, delta int64, tx *Transaction) (int64, error)

	// AppendTransaction records an event that moves no balance (a loss).
	AppendTransaction(ctx context.Context, tx *Transaction) error

	// Transactions returns the user's most recent transactions, newest first.
	Transactions(ctx context.Context, userID string, limit int) ([]*Transaction, error)
}

// DailyScoreRepository owns the per-day net-flow counters. Increments are
// best-effort and may be eventually consistent; they are leaderboard-only and
// never money-bearing.
type DailyScoreRepository interface {
	Increment(ctx context.Context, day, userID string, delta int64) error
	Score(ctx context.Context, day, userID string) (int64, error)
	Top(ctx context.Context, day string, limit int) ([]DailyEntry, error)

	// ResetExcept drops every day's scores other than the given day.
	ResetExcept(ctx context.Context, day string) error
}
