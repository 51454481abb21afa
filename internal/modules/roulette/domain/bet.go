// Package domain defines the roulette module's types and payout rules.
package domain

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

// GameCode tags roulette bets and transactions
const GameCode = "roulette"

// Bet is a placed wager for one round. Created at placement, read (never
// mutated) at settlement, retained for audit.
type Bet struct {
	BetID    string    `gorm:"primaryKey;type:varchar(64)" json:"bet_id"`
	RoundID  string    `gorm:"type:varchar(64);not null;index:idx_roulette_bets_round_id" json:"round_id"`
	UserID   string    `gorm:"type:varchar(64);not null" json:"user_id"`
	OptionID string    `gorm:"type:varchar(16);not null" json:"option_id"`
	Amount   int64     `gorm:"not null" json:"amount"`
	Game     string    `gorm:"type:varchar(32);not null;default:roulette" json:"game"`
	Date     time.Time `gorm:"not null" json:"date"`
}

// TableName overrides the table name
func (Bet) TableName() string {
	return "roulette_bets"
}

// SettledRound marks a round whose payouts were distributed. The primary key
// makes a second settlement claim fail at the store.
type SettledRound struct {
	RoundID   string    `gorm:"primaryKey;type:varchar(64)" json:"round_id"`
	SettledAt time.Time `gorm:"not null" json:"settled_at"`
}

// TableName overrides the table name
func (SettledRound) TableName() string {
	return "roulette_settled_rounds"
}

var (
	node *snowflake.Node
	once sync.Once
)

func initSnowflake() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// NewBet creates a new bet
func NewBet(roundID, userID, optionID string, amount int64) *Bet {
	once.Do(initSnowflake)
	return &Bet{
		BetID:    node.Generate().String(),
		RoundID:  roundID,
		UserID:   userID,
		OptionID: optionID,
		Amount:   amount,
		Game:     GameCode,
		Date:     time.Now(),
	}
}
