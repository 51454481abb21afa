// Package domain defines the rocket crash-round types.
package domain

import "errors"

// GameCode tags rocket transactions and winner records
const GameCode = "rocket"

// Player is one participant in the current rocket round
type Player struct {
	UserID    string `json:"userId"`
	Bet       int64  `json:"bet"`
	CashedOut bool   `json:"cashedOut"`
	Winnings  int64  `json:"winnings"`
}

// RoundView is a read-only snapshot of the singleton round
type RoundView struct {
	Running    bool     `json:"running"`
	Multiplier float64  `json:"multiplier"`
	Players    []Player `json:"players"`
}

var (
	// ErrRoundInProgress is returned when joining after liftoff
	ErrRoundInProgress = errors.New("round already in progress")

	// ErrNotJoined is returned when cashing out without a bet in the round
	ErrNotJoined = errors.New("not joined this round")

	// ErrAlreadyCashedOut is returned on a second cash-out attempt
	ErrAlreadyCashedOut = errors.New("already cashed out")

	// ErrInvalidMultiplier is returned for multiplier updates below 1.0
	ErrInvalidMultiplier = errors.New("multiplier must be at least 1.0")

	// ErrInvalidBet is returned for stakes below the minimum
	ErrInvalidBet = errors.New("invalid bet")
)
