package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sunova/game_economy/internal/modules/roulette/domain"
)

func newTestRepo(t *testing.T) *BetRepository {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	repo := NewBetRepository(gdb)
	require.NoError(t, repo.Migrate())
	return repo
}

func TestSaveAndGetBets(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveBet(ctx, domain.NewBet("round-1", "u1", domain.OptionRed, 100)))
	require.NoError(t, repo.SaveBet(ctx, domain.NewBet("round-1", "u2", domain.OptionZero, 50)))
	require.NoError(t, repo.SaveBet(ctx, domain.NewBet("round-2", "u1", domain.OptionEven, 30)))

	bets, err := repo.GetBets(ctx, "round-1")
	require.NoError(t, err)
	assert.Len(t, bets, 2)

	bets, err = repo.GetBets(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, bets)
}

func TestClaimSettlementOnce(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ClaimSettlement(ctx, "round-1"))

	err := repo.ClaimSettlement(ctx, "round-1")
	assert.ErrorIs(t, err, domain.ErrRoundSettled)

	// Other rounds are unaffected
	assert.NoError(t, repo.ClaimSettlement(ctx, "round-2"))
}
