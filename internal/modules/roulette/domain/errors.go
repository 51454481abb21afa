package domain

import "errors"

var (
	// ErrInvalidBet is returned for stakes below the minimum or unknown options
	ErrInvalidBet = errors.New("invalid bet")

	// ErrInvalidResult is returned when the drawn result is outside 0..36
	ErrInvalidResult = errors.New("result out of range")

	// ErrRoundNotFound is returned when settlement finds no bets for the round
	ErrRoundNotFound = errors.New("no bets found for round")

	// ErrRoundSettled is returned when a round's payouts were already
	// distributed; a second settlement would double-pay.
	ErrRoundSettled = errors.New("round already settled")
)
