package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunova/game_economy/internal/modules/wallet/domain"
	"github.com/sunova/game_economy/internal/modules/wallet/repository/memory"
)

const testOwnerID = "owner_temp"

func newTestWallet() *WalletUseCase {
	return NewWalletUseCase(memory.NewLedgerRepository(), memory.NewDailyScoreRepository(), testOwnerID, 10)
}

func TestResolveCreatesAccount(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	acc, created, err := uc.Resolve(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(0), acc.Balance)
	assert.Equal(t, int64(0), acc.Diamonds)

	_, created, err = uc.Resolve(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestTopupCreditsBalance(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	balance, err := uc.Topup(ctx, "alice", 500, "promo")
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)

	txs, err := uc.Transactions(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.TxTopup, txs[0].Kind)
	assert.Equal(t, int64(500), txs[0].Amount)
}

func TestTopupRejectsNonPositive(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	_, err := uc.Topup(ctx, "alice", 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.Topup(ctx, "alice", -5, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestStakeMovesMoneyToHouse(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	_, err := uc.Topup(ctx, "alice", 1000, "")
	require.NoError(t, err)

	balance, err := uc.StakeToHouse(ctx, "alice", 300, "roulette", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(700), balance)

	house, err := uc.House(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(300), house.Balance)

	// Player gets a bet entry, house gets a house_credit entry
	txs, err := uc.Transactions(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, domain.TxBet, txs[0].Kind)
	assert.Equal(t, int64(-300), txs[0].Amount)

	houseTxs, err := uc.Transactions(ctx, testOwnerID, 10)
	require.NoError(t, err)
	require.Len(t, houseTxs, 1)
	assert.Equal(t, domain.TxHouseCredit, houseTxs[0].Kind)
	assert.Equal(t, int64(300), houseTxs[0].Amount)
}

func TestStakeRejectsOverdraft(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	_, err := uc.Topup(ctx, "alice", 100, "")
	require.NoError(t, err)

	_, err = uc.StakeToHouse(ctx, "alice", 101, "roulette", nil)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// Nothing moved
	balance, err := uc.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	house, err := uc.House(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), house.Balance)
}

func TestHouseMayGoNegative(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	// A payout larger than the house balance drives the house negative
	_, err := uc.Payout(ctx, "alice", 1000, "roulette", nil)
	require.NoError(t, err)

	balance, err := uc.Adjust(ctx, testOwnerID, -1000, "payout funding")
	require.NoError(t, err)
	assert.Equal(t, int64(-1000), balance)
}

func TestPayoutRecordsDailyScore(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	_, err := uc.Payout(ctx, "alice", 250, "fish", nil)
	require.NoError(t, err)

	top, err := uc.DailyTop(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "alice", top[0].UserID)
	assert.Equal(t, int64(250), top[0].Score)
}

func TestGiftConvertsBalanceToDiamonds(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	_, err := uc.Topup(ctx, "alice", 500, "")
	require.NoError(t, err)

	senderBalance, receiverDiamonds, err := uc.Gift(ctx, "alice", "bob", 200)
	require.NoError(t, err)
	assert.Equal(t, int64(300), senderBalance)
	assert.Equal(t, int64(200), receiverDiamonds)

	// Receiver's spendable balance is untouched
	bobBalance, bobDiamonds, err := uc.GetBalances(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(0), bobBalance)
	assert.Equal(t, int64(200), bobDiamonds)

	// Ledger shows gift_sent on the sender and gift_received on the receiver
	sent, err := uc.Transactions(ctx, "alice", 10)
	require.NoError(t, err)
	assert.Equal(t, domain.TxGiftSent, sent[0].Kind)
	assert.Equal(t, int64(-200), sent[0].Amount)

	received, err := uc.Transactions(ctx, "bob", 10)
	require.NoError(t, err)
	assert.Equal(t, domain.TxGiftReceived, received[0].Kind)
	assert.Equal(t, int64(200), received[0].Amount)
}

func TestGiftRejectsSelf(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	_, err := uc.Topup(ctx, "alice", 500, "")
	require.NoError(t, err)

	_, _, err = uc.Gift(ctx, "alice", "alice", 100)
	assert.ErrorIs(t, err, domain.ErrSelfGift)
}

func TestGiftRejectsBelowMinimum(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	_, err := uc.Topup(ctx, "alice", 500, "")
	require.NoError(t, err)

	_, _, err = uc.Gift(ctx, "alice", "bob", 9)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestGiftRejectsInsufficientFunds(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	_, err := uc.Topup(ctx, "alice", 50, "")
	require.NoError(t, err)

	_, _, err = uc.Gift(ctx, "alice", "bob", 100)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// Receiver got nothing
	_, diamonds, err := uc.GetBalances(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(0), diamonds)
}

func TestConcurrentStakesNeverOverdraw(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	_, err := uc.Topup(ctx, "alice", 1000, "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uc.StakeToHouse(ctx, "alice", 100, "roulette", nil)
		}()
	}
	wg.Wait()

	balance, err := uc.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, balance, int64(0))

	// Exactly ten of the fifty stakes can succeed
	house, err := uc.House(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), house.Balance)
	assert.Equal(t, int64(0), balance)
}

func TestDailyResetClearsScores(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.SetClock(func() time.Time { return base })

	_, err := uc.Payout(ctx, "alice", 100, "fish", nil)
	require.NoError(t, err)

	// Next day, yesterday's scores are dropped
	uc.SetClock(func() time.Time { return base.Add(24 * time.Hour) })
	require.NoError(t, uc.DailyReset(ctx))

	top, err := uc.DailyTop(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestRefundCreditsBack(t *testing.T) {
	uc := newTestWallet()
	ctx := context.Background()

	_, err := uc.Topup(ctx, "alice", 100, "")
	require.NoError(t, err)
	_, err = uc.StakeToHouse(ctx, "alice", 100, "rocket", nil)
	require.NoError(t, err)

	require.NoError(t, uc.Refund(ctx, "alice", 100, "rocket", "join rejected"))

	balance, err := uc.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
}
