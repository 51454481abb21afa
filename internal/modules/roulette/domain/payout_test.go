package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplierTable(t *testing.T) {
	assert.Equal(t, int64(35), Multiplier(OptionZero))
	assert.Equal(t, int64(3), Multiplier(OptionFirstThird))
	assert.Equal(t, int64(3), Multiplier(OptionSecondThird))
	assert.Equal(t, int64(3), Multiplier(OptionLastThird))
	assert.Equal(t, int64(2), Multiplier(OptionEven))
	assert.Equal(t, int64(2), Multiplier(OptionOdd))
	assert.Equal(t, int64(2), Multiplier(OptionRed))
	assert.Equal(t, int64(2), Multiplier(OptionBlack))
}

func TestValidOption(t *testing.T) {
	assert.True(t, ValidOption("red"))
	assert.True(t, ValidOption("0"))
	assert.False(t, ValidOption("green"))
	assert.False(t, ValidOption(""))
}

func TestZeroIsNeitherEvenNorColored(t *testing.T) {
	assert.True(t, Wins(OptionZero, 0))
	assert.False(t, Wins(OptionEven, 0))
	assert.False(t, Wins(OptionOdd, 0))
	assert.False(t, Wins(OptionRed, 0))
	assert.False(t, Wins(OptionBlack, 0))
	assert.False(t, Wins(OptionFirstThird, 0))
}

func TestThirdBoundaries(t *testing.T) {
	assert.True(t, Wins(OptionFirstThird, 1))
	assert.True(t, Wins(OptionFirstThird, 12))
	assert.False(t, Wins(OptionFirstThird, 13))

	assert.True(t, Wins(OptionSecondThird, 13))
	assert.True(t, Wins(OptionSecondThird, 25))
	assert.False(t, Wins(OptionSecondThird, 26))

	assert.True(t, Wins(OptionLastThird, 26))
	assert.True(t, Wins(OptionLastThird, 36))
}

func TestColorSetsPartitionNonZeroNumbers(t *testing.T) {
	reds, blacks := 0, 0
	for n := 1; n <= MaxResult; n++ {
		red := Wins(OptionRed, n)
		black := Wins(OptionBlack, n)
		assert.False(t, red && black, "number %d cannot be both colors", n)
		assert.True(t, red || black, "number %d must have a color", n)
		if red {
			reds++
		} else {
			blacks++
		}
	}
	assert.Equal(t, 18, reds)
	assert.Equal(t, 18, blacks)
}

func TestParity(t *testing.T) {
	assert.True(t, Wins(OptionEven, 2))
	assert.True(t, Wins(OptionEven, 36))
	assert.False(t, Wins(OptionEven, 17))
	assert.True(t, Wins(OptionOdd, 17))
	assert.False(t, Wins(OptionOdd, 4))
}

func TestPayoutAmounts(t *testing.T) {
	assert.Equal(t, int64(1750), Payout(50, OptionZero))
	assert.Equal(t, int64(200), Payout(100, OptionRed))
	assert.Equal(t, int64(300), Payout(100, OptionFirstThird))
}
