package usecase

import (
	"context"
	"fmt"

	"github.com/sunova/game_economy/internal/modules/wallet/domain"
	"github.com/sunova/game_economy/pkg/logger"
)

// This file implements the service.WalletService contract consumed by the
// game modules (roulette, instant, rocket).

// GetBalance returns the user's spendable balance
func (uc *WalletUseCase) GetBalance(ctx context.Context, userID string) (int64, error) {
	acc, _, err := uc.Resolve(ctx, userID)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// GetBalances returns the user's spendable balance and diamond balance
func (uc *WalletUseCase) GetBalances(ctx context.Context, userID string) (int64, int64, error) {
	acc, _, err := uc.Resolve(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return acc.Balance, acc.Diamonds, nil
}

// StakeToHouse moves a stake from the player to the house: a bet debit on the
// player and a house_credit on the house. The stake is transferred at
// placement, not held in escrow; the house is the counterparty for every bet.
func (uc *WalletUseCase) StakeToHouse(ctx context.Context, userID string, amount int64, game string, meta map[string]interface{}) (int64, error) {
	if _, _, err := uc.Resolve(ctx, userID); err != nil {
		return 0, err
	}
	if _, err := uc.House(ctx); err != nil {
		return 0, err
	}

	balance, err := uc.debit(ctx, userID, amount, domain.TxBet, amount, game, domain.Meta(meta))
	if err != nil {
		return 0, err
	}
	uc.recordDaily(ctx, userID, -amount)

	houseMeta := domain.Meta{"from": userID}
	for k, v := range meta {
		houseMeta[k] = v
	}
	if _, err := uc.credit(ctx, uc.ownerID, amount, domain.TxHouseCredit, game, houseMeta); err != nil {
		// Debit committed, house credit did not: money in flight. Surface
		// the error; the reconciliation pass over Transactions recovers it.
		logger.Error(ctx).
			Err(err).
			Str("user_id", userID).
			Int64("amount", amount).
			Str("game", game).
			Msg("House credit failed after stake debit - needs reconciliation")
		return 0, fmt.Errorf("house credit failed after stake debit: %w", err)
	}

	return balance, nil
}

// Payout credits winnings as a win transaction and bumps the daily score.
func (uc *WalletUseCase) Payout(ctx context.Context, userID string, amount int64, game string, meta map[string]interface{}) (int64, error) {
	if _, _, err := uc.Resolve(ctx, userID); err != nil {
		return 0, err
	}
	balance, err := uc.credit(ctx, userID, amount, domain.TxWin, game, domain.Meta(meta))
	if err != nil {
		return 0, err
	}
	uc.recordDaily(ctx, userID, amount)
	return balance, nil
}

// RecordLoss appends a loss transaction; no balance moves.
func (uc *WalletUseCase) RecordLoss(ctx context.Context, userID string, amount int64, game string) error {
	tx := domain.NewTransaction(userID, domain.TxLoss, amount, game, nil, uc.now())
	return uc.ledger.AppendTransaction(ctx, tx)
}

// Refund returns a stake as a compensating adjust credit.
func (uc *WalletUseCase) Refund(ctx context.Context, userID string, amount int64, game string, reason string) error {
	if _, _, err := uc.Resolve(ctx, userID); err != nil {
		return err
	}
	_, err := uc.credit(ctx, userID, amount, domain.TxAdjust, game, domain.Meta{"reason": reason})
	if err != nil {
		return err
	}
	uc.recordDaily(ctx, userID, amount)
	return nil
}
