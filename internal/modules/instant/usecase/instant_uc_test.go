package usecase

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunova/game_economy/internal/modules/instant/domain"
	leaderboardMemory "github.com/sunova/game_economy/internal/modules/leaderboard/repository/memory"
	leaderboardUseCase "github.com/sunova/game_economy/internal/modules/leaderboard/usecase"
	walletdomain "github.com/sunova/game_economy/internal/modules/wallet/domain"
	walletMemory "github.com/sunova/game_economy/internal/modules/wallet/repository/memory"
	walletUseCase "github.com/sunova/game_economy/internal/modules/wallet/usecase"
)

func newInstantFixture(games []domain.Game) (*InstantUseCase, *walletUseCase.WalletUseCase, *leaderboardUseCase.LeaderboardUseCase) {
	wallet := walletUseCase.NewWalletUseCase(
		walletMemory.NewLedgerRepository(), walletMemory.NewDailyScoreRepository(), "owner_temp", 10)
	leaderboard := leaderboardUseCase.NewLeaderboardUseCase(leaderboardMemory.NewWinnerRepository())
	uc := NewInstantUseCase(games, wallet, leaderboard, 10, rand.New(rand.NewSource(42)))
	return uc, wallet, leaderboard
}

func TestPlayUnknownGame(t *testing.T) {
	uc, _, _ := newInstantFixture(nil)

	_, err := uc.Play(context.Background(), "alice", "slots", 100)
	assert.ErrorIs(t, err, domain.ErrUnknownGame)
}

func TestPlayRejectsBelowMinimum(t *testing.T) {
	uc, _, _ := newInstantFixture([]domain.Game{
		{Code: "fish", Label: "Fish", WinChance: 0.5, MinMult: 1.3, MaxMult: 4.2},
	})

	_, err := uc.Play(context.Background(), "alice", "fish", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidBet)
}

func TestPlayRejectsInsufficientFunds(t *testing.T) {
	uc, wallet, _ := newInstantFixture([]domain.Game{
		{Code: "fish", Label: "Fish", WinChance: 0.5, MinMult: 1.3, MaxMult: 4.2},
	})
	ctx := context.Background()
	_, err := wallet.Topup(ctx, "alice", 50, "")
	require.NoError(t, err)

	_, err = uc.Play(ctx, "alice", "fish", 100)
	assert.ErrorIs(t, err, walletdomain.ErrInsufficientFunds)
}

func TestPlayNeverWinsAtZeroChance(t *testing.T) {
	uc, wallet, _ := newInstantFixture([]domain.Game{
		{Code: "fish", Label: "Fish", WinChance: 0, MinMult: 1.3, MaxMult: 4.2},
	})
	ctx := context.Background()
	_, err := wallet.Topup(ctx, "alice", 10000, "")
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		outcome, err := uc.Play(ctx, "alice", "fish", 10)
		require.NoError(t, err)
		assert.Equal(t, "loss", outcome.Status)
		assert.Equal(t, int64(10), outcome.Lost)
	}

	balance, err := wallet.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(9000), balance)
}

func TestPlayAlwaysWinsAtFullChance(t *testing.T) {
	uc, wallet, leaderboard := newInstantFixture([]domain.Game{
		{Code: "jackpot", Label: "Jackpot", WinChance: 1, MinMult: 3, MaxMult: 15},
	})
	ctx := context.Background()
	_, err := wallet.Topup(ctx, "alice", 10000, "")
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		outcome, err := uc.Play(ctx, "alice", "jackpot", 100)
		require.NoError(t, err)
		assert.Equal(t, "win", outcome.Status)
		assert.GreaterOrEqual(t, outcome.Multiplier, 3.0)
		assert.LessOrEqual(t, outcome.Multiplier, 15.0)
		assert.Equal(t, int64(float64(100)*outcome.Multiplier), outcome.Winnings)
	}

	winners, err := leaderboard.TopWinners(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, winners, 50)
}

func TestPlayReturnsBothBalances(t *testing.T) {
	uc, wallet, _ := newInstantFixture([]domain.Game{
		{Code: "fish", Label: "Fish", WinChance: 0, MinMult: 1.3, MaxMult: 4.2},
	})
	ctx := context.Background()
	_, err := wallet.Topup(ctx, "alice", 1000, "")
	require.NoError(t, err)
	_, err = wallet.Topup(ctx, "bob", 500, "")
	require.NoError(t, err)
	_, _, err = wallet.Gift(ctx, "bob", "alice", 200)
	require.NoError(t, err)

	outcome, err := uc.Play(ctx, "alice", "fish", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(900), outcome.Balance)
	assert.Equal(t, int64(200), outcome.Diamonds)
}

func TestPlayRecordsLossTransaction(t *testing.T) {
	uc, wallet, _ := newInstantFixture([]domain.Game{
		{Code: "fish", Label: "Fish", WinChance: 0, MinMult: 1.3, MaxMult: 4.2},
	})
	ctx := context.Background()
	_, err := wallet.Topup(ctx, "alice", 1000, "")
	require.NoError(t, err)

	_, err = uc.Play(ctx, "alice", "fish", 100)
	require.NoError(t, err)

	txs, err := wallet.Transactions(ctx, "alice", 10)
	require.NoError(t, err)
	// Newest first: loss, bet, topup
	require.Len(t, txs, 3)
	assert.Equal(t, walletdomain.TxLoss, txs[0].Kind)
	assert.Equal(t, walletdomain.TxBet, txs[1].Kind)
}
