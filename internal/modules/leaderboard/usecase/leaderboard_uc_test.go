package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunova/game_economy/internal/modules/leaderboard/repository/memory"
)

func TestRecordAndQueryWinners(t *testing.T) {
	uc := NewLeaderboardUseCase(memory.NewWinnerRepository())
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	uc.SetClock(func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	})

	require.NoError(t, uc.RecordWinner(ctx, "round-1", "u1", 200, "Roulette 7", "roulette"))
	require.NoError(t, uc.RecordWinner(ctx, "round-1", "u2", 1750, "Roulette 7", "roulette"))
	require.NoError(t, uc.RecordWinner(ctx, "fish-123", "u3", 420, "Fish x4.2 (+420)", "fish"))

	top, err := uc.TopWinners(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	// Most recent first
	assert.Equal(t, "u3", top[0].UserID)
	assert.Equal(t, "u2", top[1].UserID)

	byRound, err := uc.WinnersByRound(ctx, "round-1")
	require.NoError(t, err)
	assert.Len(t, byRound, 2)

	byRound, err = uc.WinnersByRound(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, byRound)
}
