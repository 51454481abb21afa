// Package usecase coordinates the rocket round between the in-memory state
// machine and the wallet ledger.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sunova/game_economy/internal/modules/rocket/domain"
	"github.com/sunova/game_economy/internal/modules/rocket/machine"
	"github.com/sunova/game_economy/pkg/logger"
	"github.com/sunova/game_economy/pkg/service"
)

// RocketUseCase implements the rocket round operations
type RocketUseCase struct {
	machine   *machine.StateMachine
	walletSvc service.WalletService
	winners   service.WinnerRecorder
	minBet    int64
}

// NewRocketUseCase creates a new rocket use case
func NewRocketUseCase(m *machine.StateMachine, walletSvc service.WalletService, winners service.WinnerRecorder, minBet int64) *RocketUseCase {
	return &RocketUseCase{
		machine:   m,
		walletSvc: walletSvc,
		minBet:    minBet,
		winners:   winners,
	}
}

// Machine exposes the state machine for event handler registration
func (uc *RocketUseCase) Machine() *machine.StateMachine {
	return uc.machine
}

// State returns a snapshot of the current round
func (uc *RocketUseCase) State() domain.RoundView {
	return uc.machine.Snapshot()
}

// Join stakes the bet and enters the player into the pending round. A running
// round is rejected before the stake is touched; the stake is then taken
// before the seat, and if the round lifts off between the two steps the
// stake is refunded.
func (uc *RocketUseCase) Join(ctx context.Context, userID string, bet int64) (int64, error) {
	ctx = logger.WithFields(ctx, map[string]interface{}{
		"user_id": userID,
		"game":    domain.GameCode,
	})

	if bet < uc.minBet {
		return 0, fmt.Errorf("%w: minimum bet is %d", domain.ErrInvalidBet, uc.minBet)
	}
	if uc.machine.Running() {
		return 0, domain.ErrRoundInProgress
	}

	balance, err := uc.walletSvc.StakeToHouse(ctx, userID, bet, domain.GameCode, nil)
	if err != nil {
		return 0, err
	}

	if err := uc.machine.Join(userID, bet); err != nil {
		if refundErr := uc.walletSvc.Refund(ctx, userID, bet, domain.GameCode, "join rejected"); refundErr != nil {
			logger.Error(ctx).
				Err(refundErr).
				Int64("bet", bet).
				Msg("Failed to refund rejected rocket join, stake lost")
		}
		return 0, err
	}

	logger.Info(ctx).Int64("bet", bet).Int64("balance", balance).Msg("Player joined rocket round")
	return balance, nil
}

// CashOut locks the player's winnings at the current multiplier and credits
// them. The machine entry is marked before the credit; if the credit fails
// the mark is rolled back so the player can retry.
func (uc *RocketUseCase) CashOut(ctx context.Context, userID string) (winnings int64, multiplier float64, balance int64, err error) {
	ctx = logger.WithFields(ctx, map[string]interface{}{
		"user_id": userID,
		"game":    domain.GameCode,
	})

	winnings, multiplier, err = uc.machine.CashOut(userID)
	if err != nil {
		return 0, 0, 0, err
	}

	balance, err = uc.walletSvc.Payout(ctx, userID, winnings, domain.GameCode, map[string]interface{}{"mult": multiplier})
	if err != nil {
		uc.machine.RollbackCashOut(userID)
		return 0, 0, 0, err
	}

	roundID := fmt.Sprintf("rocket-%d", time.Now().UnixMilli())
	label := fmt.Sprintf("Rocket x%v", multiplier)
	if recErr := uc.winners.RecordWinner(ctx, roundID, userID, winnings, label, domain.GameCode); recErr != nil {
		logger.Warn(ctx).Err(recErr).Msg("Failed to record rocket winner")
	}

	logger.Info(ctx).
		Float64("mult", multiplier).
		Int64("winnings", winnings).
		Msg("Player cashed out of rocket round")

	return winnings, multiplier, balance, nil
}

// UpdateMultiplier records the multiplier pushed by the round driver
func (uc *RocketUseCase) UpdateMultiplier(ctx context.Context, multiplier float64) error {
	return uc.machine.SetMultiplier(multiplier)
}

// Settle ends the round, records losses for players who never cashed out
// and resets the machine for the next round. Stakes already moved to the
// house at join time, so settlement only appends the loss entries.
func (uc *RocketUseCase) Settle(ctx context.Context) (crashed int, cashedOut int, err error) {
	final := uc.machine.Settle()

	for i := range final {
		p := final[i]
		if p.CashedOut {
			cashedOut++
			continue
		}
		crashed++
		if lossErr := uc.walletSvc.RecordLoss(ctx, p.UserID, p.Bet, domain.GameCode); lossErr != nil {
			logger.Warn(ctx).
				Err(lossErr).
				Str("user_id", p.UserID).
				Msg("Failed to record rocket loss transaction")
		}
	}

	logger.Info(ctx).
		Str("game", domain.GameCode).
		Int("crashed", crashed).
		Int("cashed_out", cashedOut).
		Msg("Rocket round settled")

	return crashed, cashedOut, nil
}
