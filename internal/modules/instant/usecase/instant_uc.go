// Package usecase implements the shared play-once game template: stake to
// house, a win/loss draw, and an optional multiplier payout.
package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/sunova/game_economy/internal/modules/instant/domain"
	"github.com/sunova/game_economy/pkg/logger"
	"github.com/sunova/game_economy/pkg/service"
)

// InstantUseCase runs the play-once games. The random source is injected so
// outcomes are reproducible under test with a seeded substitute.
type InstantUseCase struct {
	games     map[string]domain.Game
	walletSvc service.WalletService
	winners   service.WinnerRecorder
	minBet    int64

	rnd *rand.Rand
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
}

// NewInstantUseCase creates a new instant-game use case
func NewInstantUseCase(games []domain.Game, walletSvc service.WalletService, winners service.WinnerRecorder, minBet int64, rnd *rand.Rand) *InstantUseCase {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	index := make(map[string]domain.Game, len(games))
	for _, g := range games {
		index[g.Code] = g
	}

	return &InstantUseCase{
		games:     index,
		walletSvc: walletSvc,
		winners:   winners,
		minBet:    minBet,
		rnd:       rnd,
	}
}

// Games returns the registered game list
func (uc *InstantUseCase) Games() []domain.Game {
	out := make([]domain.Game, 0, len(uc.games))
	for _, g := range uc.games {
		out = append(out, g)
	}
	return out
}

// draw decides win/loss and the multiplier under one lock acquisition so
// concurrent plays each get an independent pair.
func (uc *InstantUseCase) draw(g domain.Game) (win bool, mult float64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	win = uc.rnd.Float64() < g.WinChance
	if win {
		mult = g.MinMult + uc.rnd.Float64()*(g.MaxMult-g.MinMult)
		mult = math.Round(mult*100) / 100
	}
	return win, mult
}

// Play runs one self-contained round of the given game.
func (uc *InstantUseCase) Play(ctx context.Context, userID, gameCode string, stake int64) (*domain.Outcome, error) {
	ctx = logger.WithFields(ctx, map[string]interface{}{
		"user_id": userID,
		"game":    gameCode,
	})

	g, ok := uc.games[gameCode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGame, gameCode)
	}
	if stake < uc.minBet {
		return nil, fmt.Errorf("%w: minimum bet is %d", domain.ErrInvalidBet, uc.minBet)
	}

	if _, err := uc.walletSvc.StakeToHouse(ctx, userID, stake, g.Code, nil); err != nil {
		return nil, err
	}

	win, mult := uc.draw(g)
	if !win {
		if err := uc.walletSvc.RecordLoss(ctx, userID, stake, g.Code); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to record loss transaction")
		}

		balance, diamonds, err := uc.walletSvc.GetBalances(ctx, userID)
		if err != nil {
			return nil, err
		}

		logger.Info(ctx).Int64("stake", stake).Msg("Instant play lost")
		return &domain.Outcome{
			Status:   "loss",
			Lost:     stake,
			Balance:  balance,
			Diamonds: diamonds,
		}, nil
	}

	prize := int64(math.Floor(float64(stake) * mult))
	balance, err := uc.walletSvc.Payout(ctx, userID, prize, g.Code, map[string]interface{}{"mult": mult})
	if err != nil {
		return nil, err
	}

	roundID := fmt.Sprintf("%s-%d", g.Code, time.Now().UnixMilli())
	label := fmt.Sprintf("%s x%v (+%d)", g.Label, mult, prize)
	if err := uc.winners.RecordWinner(ctx, roundID, userID, prize, label, g.Code); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to record winner")
	}

	_, diamonds, err := uc.walletSvc.GetBalances(ctx, userID)
	if err != nil {
		diamonds = 0
	}

	logger.Info(ctx).
		Int64("stake", stake).
		Float64("mult", mult).
		Int64("prize", prize).
		Msg("Instant play won")

	return &domain.Outcome{
		Status:     "win",
		Multiplier: mult,
		Winnings:   prize,
		Balance:    balance,
		Diamonds:   diamonds,
	}, nil
}
