// Package domain defines the instant play-once game types.
package domain

import "errors"

// Game parameterizes one play-once game. Each call is a self-contained
// one-shot round: no round identifier exists, the draws are independent per
// call.
type Game struct {
	Code      string  // transaction/winner game tag, e.g. "greedy_cat"
	Route     string  // HTTP route segment, e.g. "greedy-cat"
	Label     string  // human-readable prefix for Winner records
	WinChance float64 // probability of a win in [0,1]
	MinMult   float64 // inclusive multiplier range on win
	MaxMult   float64
}

// Outcome is the result of one play
type Outcome struct {
	Status     string  `json:"status"` // "win" or "loss"
	Multiplier float64 `json:"multiplier,omitempty"`
	Winnings   int64   `json:"winnings,omitempty"`
	Lost       int64   `json:"lost,omitempty"`
	Balance    int64   `json:"balance"`
	Diamonds   int64   `json:"diamonds"`
}

var (
	// ErrUnknownGame is returned when the game code is not registered
	ErrUnknownGame = errors.New("unknown game")

	// ErrInvalidBet is returned for stakes below the minimum
	ErrInvalidBet = errors.New("invalid bet")
)
