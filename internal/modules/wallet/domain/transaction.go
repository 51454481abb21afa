package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

// TxKind classifies a balance-affecting event
type TxKind string

const (
	TxBet          TxKind = "bet"
	TxWin          TxKind = "win"
	TxLoss         TxKind = "loss"
	TxTopup        TxKind = "topup"
	TxAdjust       TxKind = "adjust"
	TxGiftSent     TxKind = "gift_sent"
	TxGiftReceived TxKind = "gift_received"
	TxHouseCredit  TxKind = "house_credit"
)

// Meta is free-form transaction metadata, stored as JSON.
type Meta map[string]interface{}

// Value implements driver.Valuer
func (m Meta) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *Meta) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported meta type %T", value)
	}
}

// Transaction is an immutable record of a balance-affecting event.
// Append-only: every balance mutation produces exactly one Transaction in the
// same logical operation, and no Transaction is ever mutated or deleted.
type Transaction struct {
	TxID   string    `gorm:"primaryKey;type:varchar(64)" json:"tx_id"`
	UserID string    `gorm:"type:varchar(64);not null;index:idx_transactions_user_id" json:"user_id"`
	Kind   TxKind    `gorm:"type:varchar(16);not null" json:"kind"`
	Amount int64     `gorm:"not null" json:"amount"`
	Game   string    `gorm:"type:varchar(32)" json:"game"`
	Meta   Meta      `gorm:"type:text" json:"meta,omitempty"`
	Date   time.Time `gorm:"not null;index:idx_transactions_date" json:"date"`
}

// TableName overrides the table name
func (Transaction) TableName() string {
	return "transactions"
}

var (
	node *snowflake.Node
	once sync.Once
)

func initSnowflake() {
	var err error
	// TODO: Get NodeID from config; each instance needs a unique NodeID
	// once the service runs more than one replica.
	node, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// NewTransaction creates a transaction record with a generated ID and the
// given timestamp.
func NewTransaction(userID string, kind TxKind, amount int64, game string, meta Meta, at time.Time) *Transaction {
	return &Transaction{
		TxID:   generateTxID(),
		UserID: userID,
		Kind:   kind,
		Amount: amount,
		Game:   game,
		Meta:   meta,
		Date:   at,
	}
}

func generateTxID() string {
	once.Do(initSnowflake)
	return node.Generate().String()
}
