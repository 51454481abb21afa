// Package usecase implements the business logic for the wallet module:
// account resolution, balance mutation, gifting, and daily score recording.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sunova/game_economy/internal/modules/wallet/domain"
	"github.com/sunova/game_economy/pkg/logger"
)

// WalletUseCase coordinates the ledger and daily score stores. It is the only
// writer of account balances; game modules reach it through the
// service.WalletService contract.
type WalletUseCase struct {
	ledger  domain.LedgerRepository
	daily   domain.DailyScoreRepository
	ownerID string
	minGift int64

	now func() time.Time // injected clock, UTC day partitioning
}

// NewWalletUseCase creates a new wallet use case
func NewWalletUseCase(ledger domain.LedgerRepository, daily domain.DailyScoreRepository, ownerID string, minGift int64) *WalletUseCase {
	return &WalletUseCase{
		ledger:  ledger,
		daily:   daily,
		ownerID: ownerID,
		minGift: minGift,
		now:     time.Now,
	}
}

// SetClock overrides the clock (for tests)
func (uc *WalletUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// OwnerID returns the reserved house account identifier
func (uc *WalletUseCase) OwnerID() string {
	return uc.ownerID
}

// Resolve returns the user's account, creating it on first reference.
func (uc *WalletUseCase) Resolve(ctx context.Context, userID string) (*domain.Account, bool, error) {
	acc, created, err := uc.ledger.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve account: %w", err)
	}
	if created {
		logger.Info(ctx).Str("user_id", userID).Msg("Account created")
	}
	return acc, created, nil
}

// House resolves the reserved house account
func (uc *WalletUseCase) House(ctx context.Context) (*domain.Account, error) {
	acc, _, err := uc.Resolve(ctx, uc.ownerID)
	return acc, err
}

// Refresh returns the account together with today's daily score.
func (uc *WalletUseCase) Refresh(ctx context.Context, userID string) (*domain.Account, string, int64, error) {
	acc, _, err := uc.Resolve(ctx, userID)
	if err != nil {
		return nil, "", 0, err
	}

	day := domain.DayKey(uc.now())
	score, err := uc.daily.Score(ctx, day, userID)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("user_id", userID).Msg("Failed to read daily score")
		score = 0
	}
	return acc, day, score, nil
}

// credit applies a positive balance delta with its transaction record.
func (uc *WalletUseCase) credit(ctx context.Context, userID string, amount int64, kind domain.TxKind, game string, meta domain.Meta) (int64, error) {
	tx := domain.NewTransaction(userID, kind, amount, game, meta, uc.now())
	return uc.ledger.ApplyBalanceDelta(ctx, userID, amount, false, tx)
}

// debit applies a negative balance delta with its transaction record. The
// floor is enforced for everyone but the house, which is the reserve of last
// resort.
func (uc *WalletUseCase) debit(ctx context.Context, userID string, amount int64, kind domain.TxKind, txAmount int64, game string, meta domain.Meta) (int64, error) {
	enforceFloor := userID != uc.ownerID
	tx := domain.NewTransaction(userID, kind, txAmount, game, meta, uc.now())
	return uc.ledger.ApplyBalanceDelta(ctx, userID, -amount, enforceFloor, tx)
}

// recordDaily increments today's score after a money movement committed.
// Best-effort: a failure is logged, never surfaced, since the leaderboard is
// not money-bearing.
func (uc *WalletUseCase) recordDaily(ctx context.Context, userID string, delta int64) {
	day := domain.DayKey(uc.now())
	if err := uc.daily.Increment(ctx, day, userID, delta); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("user_id", userID).
			Int64("delta", delta).
			Msg("Failed to record daily score")
	}
}

// Topup credits externally purchased coins to the user.
func (uc *WalletUseCase) Topup(ctx context.Context, userID string, amount int64, ref string) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	if _, _, err := uc.Resolve(ctx, userID); err != nil {
		return 0, err
	}

	balance, err := uc.credit(ctx, userID, amount, domain.TxTopup, "wallet", domain.Meta{"ref": ref})
	if err != nil {
		return 0, err
	}
	uc.recordDaily(ctx, userID, amount)

	logger.Info(ctx).Str("user_id", userID).Int64("amount", amount).Msg("Topup applied")
	return balance, nil
}

// Adjust applies an external signed balance update (delta may be negative).
// The balance floor holds: an adjustment that would go negative is rejected
// before any mutation.
func (uc *WalletUseCase) Adjust(ctx context.Context, userID string, delta int64, reason string) (int64, error) {
	if _, _, err := uc.Resolve(ctx, userID); err != nil {
		return 0, err
	}
	if reason == "" {
		reason = "external_update"
	}

	tx := domain.NewTransaction(userID, domain.TxAdjust, delta, "wallet", domain.Meta{"reason": reason}, uc.now())
	balance, err := uc.ledger.ApplyBalanceDelta(ctx, userID, delta, userID != uc.ownerID, tx)
	if err != nil {
		return 0, err
	}
	uc.recordDaily(ctx, userID, delta)
	return balance, nil
}

// Gift converts amount from the sender's spendable balance into the
// receiver's diamonds. A currency-kind conversion, not a transfer: the
// receiver's spendable balance is untouched and no house commission is taken.
func (uc *WalletUseCase) Gift(ctx context.Context, senderID, receiverID string, amount int64) (senderBalance, receiverDiamonds int64, err error) {
	if senderID == receiverID {
		return 0, 0, domain.ErrSelfGift
	}
	if amount < uc.minGift {
		return 0, 0, fmt.Errorf("%w: gift minimum is %d", domain.ErrInvalidAmount, uc.minGift)
	}

	if _, _, err = uc.Resolve(ctx, senderID); err != nil {
		return 0, 0, err
	}
	if _, _, err = uc.Resolve(ctx, receiverID); err != nil {
		return 0, 0, err
	}

	// Debit first. A crash between the two legs leaves money in flight,
	// recoverable from the gift_sent transaction.
	senderBalance, err = uc.debit(ctx, senderID, amount, domain.TxGiftSent, -amount, "wallet", domain.Meta{"to": receiverID})
	if err != nil {
		return 0, 0, err
	}
	uc.recordDaily(ctx, senderID, -amount)

	recvTx := domain.NewTransaction(receiverID, domain.TxGiftReceived, amount, "wallet", domain.Meta{"from": senderID}, uc.now())
	receiverDiamonds, err = uc.ledger.ApplyDiamondDelta(ctx, receiverID, amount, recvTx)
	if err != nil {
		logger.Error(ctx).
			Err(err).
			Str("sender_id", senderID).
			Str("receiver_id", receiverID).
			Int64("amount", amount).
			Msg("Gift credit failed after debit - needs reconciliation")
		return 0, 0, fmt.Errorf("gift credit failed after debit: %w", err)
	}

	logger.Info(ctx).
		Str("sender_id", senderID).
		Str("receiver_id", receiverID).
		Int64("amount", amount).
		Msg("Gift completed")
	return senderBalance, receiverDiamonds, nil
}

// Transactions returns the user's recent transaction history, newest first.
func (uc *WalletUseCase) Transactions(ctx context.Context, userID string, limit int) ([]*domain.Transaction, error) {
	if limit <= 0 {
		limit = 200
	}
	return uc.ledger.Transactions(ctx, userID, limit)
}

// DailyTop returns today's leaderboard
func (uc *WalletUseCase) DailyTop(ctx context.Context, limit int) ([]domain.DailyEntry, error) {
	return uc.daily.Top(ctx, domain.DayKey(uc.now()), limit)
}

// DailyReset drops all daily scores except today's.
func (uc *WalletUseCase) DailyReset(ctx context.Context) error {
	return uc.daily.ResetExcept(ctx, domain.DayKey(uc.now()))
}
