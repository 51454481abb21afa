package domain

// Betting options for the 37-slot wheel (0..36)
const (
	OptionZero        = "0"
	OptionFirstThird  = "1_12"
	OptionSecondThird = "13_25"
	OptionLastThird   = "26_36"
	OptionEven        = "even"
	OptionOdd         = "odd"
	OptionRed         = "red"
	OptionBlack       = "black"
)

// MaxResult is the highest drawable number
const MaxResult = 36

// payouts maps option to its fixed multiplier
var payouts = map[string]int64{
	OptionZero:        35,
	OptionFirstThird:  3,
	OptionSecondThird: 3,
	OptionLastThird:   3,
	OptionEven:        2,
	OptionOdd:         2,
	OptionRed:         2,
	OptionBlack:       2,
}

var redNumbers = map[int]struct{}{
	1: {}, 3: {}, 5: {}, 7: {}, 9: {}, 12: {}, 14: {}, 16: {}, 18: {},
	19: {}, 21: {}, 23: {}, 25: {}, 27: {}, 30: {}, 32: {}, 34: {}, 36: {},
}

var blackNumbers = map[int]struct{}{
	2: {}, 4: {}, 6: {}, 8: {}, 10: {}, 11: {}, 13: {}, 15: {}, 17: {},
	20: {}, 22: {}, 24: {}, 26: {}, 28: {}, 29: {}, 31: {}, 33: {}, 35: {},
}

// ValidOption reports whether optionID is a known betting option
func ValidOption(optionID string) bool {
	_, ok := payouts[optionID]
	return ok
}

// Multiplier returns the fixed payout multiplier for an option
func Multiplier(optionID string) int64 {
	return payouts[optionID]
}

// Wins reports whether a bet on optionID pays for the drawn result.
// Zero is neither even nor odd and belongs to no color.
func Wins(optionID string, result int) bool {
	switch optionID {
	case OptionZero:
		return result == 0
	case OptionFirstThird:
		return result >= 1 && result <= 12
	case OptionSecondThird:
		return result >= 13 && result <= 25
	case OptionLastThird:
		return result >= 26 && result <= 36
	case OptionEven:
		return result > 0 && result%2 == 0
	case OptionOdd:
		return result > 0 && result%2 != 0
	case OptionRed:
		_, ok := redNumbers[result]
		return ok
	case OptionBlack:
		_, ok := blackNumbers[result]
		return ok
	default:
		return false
	}
}

// Payout computes the prize for a winning bet: floor(stake * multiplier).
// Integer stakes and integer multipliers make the floor implicit.
func Payout(stake int64, optionID string) int64 {
	return stake * Multiplier(optionID)
}
