// Package usecase implements the business logic for the roulette module:
// bet placement and round settlement.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sunova/game_economy/internal/modules/roulette/domain"
	"github.com/sunova/game_economy/pkg/logger"
	"github.com/sunova/game_economy/pkg/service"
)

// RouletteUseCase handles round-based betting and settlement
type RouletteUseCase struct {
	betRepo   domain.BetRepository
	walletSvc service.WalletService
	winners   service.WinnerRecorder
	minBet    int64
}

// NewRouletteUseCase creates a new roulette use case
func NewRouletteUseCase(betRepo domain.BetRepository, walletSvc service.WalletService, winners service.WinnerRecorder, minBet int64) *RouletteUseCase {
	return &RouletteUseCase{
		betRepo:   betRepo,
		walletSvc: walletSvc,
		winners:   winners,
		minBet:    minBet,
	}
}

// PlaceBet validates and executes a wager: the stake moves to the house at
// placement, not into escrow, and the bet is recorded for settlement.
func (uc *RouletteUseCase) PlaceBet(ctx context.Context, userID, roundID, optionID string, amount int64) (*domain.Bet, int64, error) {
	ctx = logger.WithFields(ctx, map[string]interface{}{
		"user_id":  userID,
		"round_id": roundID,
	})

	if amount < uc.minBet {
		return nil, 0, fmt.Errorf("%w: minimum bet is %d", domain.ErrInvalidBet, uc.minBet)
	}
	if !domain.ValidOption(optionID) {
		return nil, 0, fmt.Errorf("%w: unknown option %q", domain.ErrInvalidBet, optionID)
	}

	balance, err := uc.walletSvc.StakeToHouse(ctx, userID, amount, domain.GameCode, map[string]interface{}{
		"roundId":  roundID,
		"optionId": optionID,
	})
	if err != nil {
		return nil, 0, err
	}

	bet := domain.NewBet(roundID, userID, optionID, amount)
	if err := uc.betRepo.SaveBet(ctx, bet); err != nil {
		logger.Error(ctx).Err(err).Str("bet_id", bet.BetID).Msg("Failed to save bet after stake moved")
		return nil, 0, fmt.Errorf("failed to save bet: %w", err)
	}

	logger.Info(ctx).
		Str("option_id", optionID).
		Int64("amount", amount).
		Str("bet_id", bet.BetID).
		Msg("Bet placed")

	return bet, balance, nil
}

// SettleResult summarizes one round settlement
type SettleResult struct {
	RoundID      string `json:"roundId"`
	Result       int    `json:"result"`
	TotalPayouts int64  `json:"totalPayouts"`
	WinCount     int    `json:"winCount"`
	LoseCount    int    `json:"loseCount"`
}

// SettleRound distributes payouts for a drawn result. The round is claimed
// settled before any payout so a second call cannot double-pay. Losing bets
// get nothing further; their stake moved to the house at placement.
func (uc *RouletteUseCase) SettleRound(ctx context.Context, roundID string, result int) (*SettleResult, error) {
	startTime := time.Now()
	ctx = logger.WithFields(ctx, map[string]interface{}{"round_id": roundID})

	if result < 0 || result > domain.MaxResult {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidResult, result)
	}

	bets, err := uc.betRepo.GetBets(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets for settlement: %w", err)
	}
	if len(bets) == 0 {
		return nil, domain.ErrRoundNotFound
	}

	if err := uc.betRepo.ClaimSettlement(ctx, roundID); err != nil {
		return nil, err
	}

	// A bet saved between the first read and the claim still belongs to
	// this round. Re-read now that the claim holds so it gets evaluated.
	bets, err = uc.betRepo.GetBets(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets for settlement: %w", err)
	}

	res := &SettleResult{RoundID: roundID, Result: result}
	for _, bet := range bets {
		if !domain.Wins(bet.OptionID, result) {
			res.LoseCount++
			continue
		}

		prize := domain.Payout(bet.Amount, bet.OptionID)
		res.WinCount++
		res.TotalPayouts += prize

		if _, err := uc.walletSvc.Payout(ctx, bet.UserID, prize, domain.GameCode, map[string]interface{}{
			"roundId": roundID,
			"result":  result,
		}); err != nil {
			logger.Error(ctx).
				Err(err).
				Str("user_id", bet.UserID).
				Int64("prize", prize).
				Str("bet_id", bet.BetID).
				Msg("Failed to credit winnings")
			return nil, fmt.Errorf("failed to credit winnings for bet %s: %w", bet.BetID, err)
		}

		if err := uc.winners.RecordWinner(ctx, roundID, bet.UserID, prize, fmt.Sprintf("Roulette %d", result), domain.GameCode); err != nil {
			logger.Warn(ctx).Err(err).Str("user_id", bet.UserID).Msg("Failed to record winner")
		}
	}

	logger.Info(ctx).
		Int("result", result).
		Int("total_bets", len(bets)).
		Int("win_count", res.WinCount).
		Int("lose_count", res.LoseCount).
		Int64("total_payouts", res.TotalPayouts).
		Dur("duration_ms", time.Since(startTime)).
		Msg("Settlement completed")

	return res, nil
}
