package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	leaderboardMemory "github.com/sunova/game_economy/internal/modules/leaderboard/repository/memory"
	leaderboardUseCase "github.com/sunova/game_economy/internal/modules/leaderboard/usecase"
	"github.com/sunova/game_economy/internal/modules/rocket/domain"
	"github.com/sunova/game_economy/internal/modules/rocket/machine"
	walletdomain "github.com/sunova/game_economy/internal/modules/wallet/domain"
	walletMemory "github.com/sunova/game_economy/internal/modules/wallet/repository/memory"
	walletUseCase "github.com/sunova/game_economy/internal/modules/wallet/usecase"
)

func newRocketFixture() (*RocketUseCase, *walletUseCase.WalletUseCase, *leaderboardUseCase.LeaderboardUseCase) {
	wallet := walletUseCase.NewWalletUseCase(
		walletMemory.NewLedgerRepository(), walletMemory.NewDailyScoreRepository(), "owner_temp", 10)
	leaderboard := leaderboardUseCase.NewLeaderboardUseCase(leaderboardMemory.NewWinnerRepository())
	uc := NewRocketUseCase(machine.NewStateMachine(), wallet, leaderboard, 10)
	return uc, wallet, leaderboard
}

func TestJoinStakesToHouse(t *testing.T) {
	uc, wallet, _ := newRocketFixture()
	ctx := context.Background()
	_, err := wallet.Topup(ctx, "u1", 1000, "")
	require.NoError(t, err)

	balance, err := uc.Join(ctx, "u1", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(900), balance)

	house, err := wallet.House(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(100), house.Balance)

	view := uc.State()
	require.Len(t, view.Players, 1)
	assert.Equal(t, int64(100), view.Players[0].Bet)
}

func TestJoinRejectsBelowMinimum(t *testing.T) {
	uc, _, _ := newRocketFixture()

	_, err := uc.Join(context.Background(), "u1", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidBet)
}

func TestJoinRejectsInsufficientFunds(t *testing.T) {
	uc, wallet, _ := newRocketFixture()
	ctx := context.Background()
	_, err := wallet.Topup(ctx, "u1", 50, "")
	require.NoError(t, err)

	_, err = uc.Join(ctx, "u1", 100)
	assert.ErrorIs(t, err, walletdomain.ErrInsufficientFunds)
	assert.Empty(t, uc.State().Players)
}

func TestJoinRejectedWhileRunningTouchesNoLedger(t *testing.T) {
	uc, wallet, _ := newRocketFixture()
	ctx := context.Background()
	_, err := wallet.Topup(ctx, "u1", 1000, "")
	require.NoError(t, err)
	_, err = wallet.Topup(ctx, "u2", 1000, "")
	require.NoError(t, err)

	_, err = uc.Join(ctx, "u1", 100)
	require.NoError(t, err)
	require.NoError(t, uc.UpdateMultiplier(ctx, 1.2))

	_, err = uc.Join(ctx, "u2", 50)
	assert.ErrorIs(t, err, domain.ErrRoundInProgress)

	// Rejection happens before the stake moves: no bet, no refund
	balance, err := wallet.GetBalance(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)
	txs, err := wallet.Transactions(ctx, "u2", 10)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, walletdomain.TxTopup, txs[0].Kind)
}

func TestCashOutCreditsWinnings(t *testing.T) {
	uc, wallet, leaderboard := newRocketFixture()
	ctx := context.Background()
	_, err := wallet.Topup(ctx, "u1", 1000, "")
	require.NoError(t, err)

	_, err = uc.Join(ctx, "u1", 100)
	require.NoError(t, err)
	require.NoError(t, uc.UpdateMultiplier(ctx, 2.5))

	winnings, mult, balance, err := uc.CashOut(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(250), winnings)
	assert.Equal(t, 2.5, mult)
	assert.Equal(t, int64(1150), balance)

	// Second cash-out fails and leaves the balance unchanged
	_, _, _, err = uc.CashOut(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrAlreadyCashedOut)
	after, err := wallet.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1150), after)

	winners, err := leaderboard.TopWinners(ctx, 10)
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, int64(250), winners[0].Prize)
}

func TestSettleRecordsLossesAndResets(t *testing.T) {
	uc, wallet, _ := newRocketFixture()
	ctx := context.Background()
	_, err := wallet.Topup(ctx, "u1", 1000, "")
	require.NoError(t, err)
	_, err = wallet.Topup(ctx, "u2", 1000, "")
	require.NoError(t, err)

	_, err = uc.Join(ctx, "u1", 100)
	require.NoError(t, err)
	_, err = uc.Join(ctx, "u2", 50)
	require.NoError(t, err)
	require.NoError(t, uc.UpdateMultiplier(ctx, 3.0))

	_, _, _, err = uc.CashOut(ctx, "u1")
	require.NoError(t, err)

	crashed, cashedOut, err := uc.Settle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, crashed)
	assert.Equal(t, 1, cashedOut)

	// u2's stake stays with the house, recorded as a loss
	txs, err := wallet.Transactions(ctx, "u2", 10)
	require.NoError(t, err)
	assert.Equal(t, walletdomain.TxLoss, txs[0].Kind)

	view := uc.State()
	assert.False(t, view.Running)
	assert.Equal(t, 1.0, view.Multiplier)
	assert.Empty(t, view.Players)
}
