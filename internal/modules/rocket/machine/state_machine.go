// Package machine holds the in-memory singleton state of the rocket round.
// All reads and writes of round state go through one mutex: a cash-out
// computes its winnings from the multiplier under the same lock that marks
// the player as cashed out, so no update can slip between the two.
package machine

import (
	"math"
	"sync"

	"github.com/sunova/game_economy/internal/modules/rocket/domain"
)

// EventType identifies a rocket round event
type EventType string

const (
	EventJoined     EventType = "rocket_joined"
	EventMultiplier EventType = "rocket_multiplier"
	EventCashedOut  EventType = "rocket_cashed_out"
	EventSettled    EventType = "rocket_settled"
)

// GameEvent represents a rocket round event
type GameEvent struct {
	Type       EventType       `json:"type"`
	UserID     string          `json:"userId,omitempty"`
	Multiplier float64         `json:"multiplier,omitempty"`
	Winnings   int64           `json:"winnings,omitempty"`
	Players    []domain.Player `json:"players,omitempty"`
}

// EventHandler handles rocket round events
type EventHandler func(event GameEvent)

// StateMachine manages the singleton rocket round. There is exactly one
// round at a time; the outer driver advances it through SetMultiplier and
// ends it with Settle.
type StateMachine struct {
	mu         sync.RWMutex
	running    bool
	multiplier float64
	players    map[string]*domain.Player

	eventHandlers []EventHandler
}

// NewStateMachine creates a new rocket state machine
func NewStateMachine() *StateMachine {
	return &StateMachine{
		multiplier: 1.0,
		players:    make(map[string]*domain.Player),
	}
}

// RegisterEventHandler registers an event handler
func (sm *StateMachine) RegisterEventHandler(handler EventHandler) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.eventHandlers = append(sm.eventHandlers, handler)
}

// emitEvent emits an event to all handlers
func (sm *StateMachine) emitEvent(event GameEvent) {
	sm.mu.RLock()
	handlers := make([]EventHandler, len(sm.eventHandlers))
	copy(handlers, sm.eventHandlers)
	sm.mu.RUnlock()

	for _, handler := range handlers {
		go handler(event)
	}
}

// Join adds a player to the pending round. Joining is only possible before
// liftoff: once the multiplier starts climbing the entry list is frozen.
// Rejoining overwrites the prior entry, an idempotent re-entry rather than a
// second seat.
func (sm *StateMachine) Join(userID string, bet int64) error {
	sm.mu.Lock()
	if sm.running {
		sm.mu.Unlock()
		return domain.ErrRoundInProgress
	}
	sm.players[userID] = &domain.Player{UserID: userID, Bet: bet}
	sm.mu.Unlock()

	sm.emitEvent(GameEvent{Type: EventJoined, UserID: userID})
	return nil
}

// Leave removes a player who has not cashed out. Used to unwind a join whose
// stake could not be taken.
func (sm *StateMachine) Leave(userID string) {
	sm.mu.Lock()
	delete(sm.players, userID)
	sm.mu.Unlock()
}

// SetMultiplier records the current multiplier pushed by the round driver.
// The first update marks the round as running.
func (sm *StateMachine) SetMultiplier(multiplier float64) error {
	if multiplier < 1.0 {
		return domain.ErrInvalidMultiplier
	}

	sm.mu.Lock()
	sm.running = true
	sm.multiplier = multiplier
	sm.mu.Unlock()

	sm.emitEvent(GameEvent{Type: EventMultiplier, Multiplier: multiplier})
	return nil
}

// CashOut locks in the player's winnings at the current multiplier and marks
// the entry so it cannot cash out again. The ledger credit happens outside
// the machine; RollbackCashOut undoes the mark if that credit fails.
func (sm *StateMachine) CashOut(userID string) (winnings int64, multiplier float64, err error) {
	sm.mu.Lock()
	p, ok := sm.players[userID]
	if !ok {
		sm.mu.Unlock()
		return 0, 0, domain.ErrNotJoined
	}
	if p.CashedOut {
		sm.mu.Unlock()
		return 0, 0, domain.ErrAlreadyCashedOut
	}

	multiplier = sm.multiplier
	winnings = int64(math.Floor(float64(p.Bet) * multiplier))
	p.CashedOut = true
	p.Winnings = winnings
	sm.mu.Unlock()

	sm.emitEvent(GameEvent{Type: EventCashedOut, UserID: userID, Multiplier: multiplier, Winnings: winnings})
	return winnings, multiplier, nil
}

// RollbackCashOut reopens a cashed-out entry after a failed credit
func (sm *StateMachine) RollbackCashOut(userID string) {
	sm.mu.Lock()
	if p, ok := sm.players[userID]; ok {
		p.CashedOut = false
		p.Winnings = 0
	}
	sm.mu.Unlock()
}

// Settle ends the round and resets the machine for the next one. It returns
// the final player list so losses can be recorded.
func (sm *StateMachine) Settle() []domain.Player {
	sm.mu.Lock()
	final := make([]domain.Player, 0, len(sm.players))
	for _, p := range sm.players {
		final = append(final, *p)
	}
	multiplier := sm.multiplier

	sm.running = false
	sm.multiplier = 1.0
	sm.players = make(map[string]*domain.Player)
	sm.mu.Unlock()

	sm.emitEvent(GameEvent{Type: EventSettled, Multiplier: multiplier, Players: final})
	return final
}

// Running reports whether the round has lifted off
func (sm *StateMachine) Running() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.running
}

// Snapshot returns a read-only view of the current round (thread-safe)
func (sm *StateMachine) Snapshot() domain.RoundView {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	players := make([]domain.Player, 0, len(sm.players))
	for _, p := range sm.players {
		players = append(players, *p)
	}

	return domain.RoundView{
		Running:    sm.running,
		Multiplier: sm.multiplier,
		Players:    players,
	}
}
