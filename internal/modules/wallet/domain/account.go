// Package domain defines the wallet module's core types: accounts, the
// transaction ledger, and daily scores.
package domain

import "time"

// Account holds a user's spendable balance and gift-only diamonds.
// Accounts are created lazily on first reference and never deleted. The
// reserved house account is an Account like any other, except that debits
// against it skip the balance floor (it is the pooled system reserve).
type Account struct {
	UserID    string    `gorm:"primaryKey;type:varchar(64)" json:"user_id"`
	Balance   int64     `gorm:"not null;default:0" json:"balance"`
	Diamonds  int64     `gorm:"not null;default:0" json:"diamonds"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Account) TableName() string {
	return "accounts"
}
