package domain

import "errors"

var (
	// ErrInsufficientFunds is returned when a debit would take a non-house
	// balance below zero. Nothing is mutated.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned for zero, negative, or below-minimum amounts
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrSelfGift is returned when sender and receiver are the same user
	ErrSelfGift = errors.New("cannot gift yourself")

	// ErrAccountNotFound is returned by repositories when a balance mutation
	// targets an account that was never resolved.
	ErrAccountNotFound = errors.New("account not found")
)
