package machine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunova/game_economy/internal/modules/rocket/domain"
)

func TestJoinBeforeLiftoff(t *testing.T) {
	sm := NewStateMachine()

	require.NoError(t, sm.Join("u1", 100))

	view := sm.Snapshot()
	assert.False(t, view.Running)
	assert.Equal(t, 1.0, view.Multiplier)
	require.Len(t, view.Players, 1)
	assert.Equal(t, int64(100), view.Players[0].Bet)
}

func TestRejoinOverwritesEntry(t *testing.T) {
	sm := NewStateMachine()

	require.NoError(t, sm.Join("u1", 100))
	require.NoError(t, sm.Join("u1", 250))

	view := sm.Snapshot()
	require.Len(t, view.Players, 1)
	assert.Equal(t, int64(250), view.Players[0].Bet)
}

func TestJoinRejectedWhileRunning(t *testing.T) {
	sm := NewStateMachine()

	require.NoError(t, sm.Join("u1", 100))
	require.NoError(t, sm.SetMultiplier(1.5))

	err := sm.Join("u2", 50)
	assert.ErrorIs(t, err, domain.ErrRoundInProgress)
}

func TestSetMultiplierValidation(t *testing.T) {
	sm := NewStateMachine()

	assert.ErrorIs(t, sm.SetMultiplier(0.5), domain.ErrInvalidMultiplier)
	assert.NoError(t, sm.SetMultiplier(1.0))
	assert.NoError(t, sm.SetMultiplier(3.7))
	assert.Equal(t, 3.7, sm.Snapshot().Multiplier)
}

func TestCashOutAtCurrentMultiplier(t *testing.T) {
	sm := NewStateMachine()

	require.NoError(t, sm.Join("u1", 100))
	require.NoError(t, sm.SetMultiplier(2.5))

	winnings, mult, err := sm.CashOut("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(250), winnings)
	assert.Equal(t, 2.5, mult)

	_, _, err = sm.CashOut("u1")
	assert.ErrorIs(t, err, domain.ErrAlreadyCashedOut)
}

func TestCashOutWithoutEntry(t *testing.T) {
	sm := NewStateMachine()
	require.NoError(t, sm.SetMultiplier(2.0))

	_, _, err := sm.CashOut("ghost")
	assert.ErrorIs(t, err, domain.ErrNotJoined)
}

func TestRollbackCashOutReopensEntry(t *testing.T) {
	sm := NewStateMachine()

	require.NoError(t, sm.Join("u1", 100))
	require.NoError(t, sm.SetMultiplier(2.0))

	_, _, err := sm.CashOut("u1")
	require.NoError(t, err)

	sm.RollbackCashOut("u1")

	winnings, _, err := sm.CashOut("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(200), winnings)
}

func TestSettleResetsRound(t *testing.T) {
	sm := NewStateMachine()

	require.NoError(t, sm.Join("u1", 100))
	require.NoError(t, sm.Join("u2", 50))
	require.NoError(t, sm.SetMultiplier(4.0))
	_, _, err := sm.CashOut("u1")
	require.NoError(t, err)

	final := sm.Settle()
	require.Len(t, final, 2)

	view := sm.Snapshot()
	assert.False(t, view.Running)
	assert.Equal(t, 1.0, view.Multiplier)
	assert.Empty(t, view.Players)

	// Next round starts clean
	require.NoError(t, sm.Join("u3", 30))
}

func TestConcurrentCashOutsPayOnce(t *testing.T) {
	sm := NewStateMachine()
	require.NoError(t, sm.Join("u1", 100))
	require.NoError(t, sm.SetMultiplier(3.0))

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := sm.CashOut("u1"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}
