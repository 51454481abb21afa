// Package domain defines the leaderboard module's types.
package domain

import "time"

// Winner is a payout event surfaced to leaderboards: one per paying roulette
// bet at settlement, per instant-game win, per rocket cash-out.
type Winner struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	RoundID string    `gorm:"type:varchar(64);not null;index:idx_winners_round_id" json:"roundId"`
	UserID  string    `gorm:"type:varchar(64);not null" json:"userId"`
	Name    string    `gorm:"type:varchar(64);not null" json:"name"`
	Prize   int64     `gorm:"not null" json:"prize"`
	Label   string    `gorm:"type:varchar(128)" json:"label"`
	Game    string    `gorm:"type:varchar(32);index:idx_winners_game" json:"game"`
	Date    time.Time `gorm:"not null;index:idx_winners_date" json:"date"`
}

// TableName overrides the table name
func (Winner) TableName() string {
	return "winners"
}
