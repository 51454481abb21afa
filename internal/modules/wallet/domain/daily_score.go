package domain

import "time"

// DailyScore is the per-user, per-UTC-day net currency flow used by the daily
// leaderboard. Upserted by incrementing; reset externally at the day boundary.
type DailyScore struct {
	Day       string    `gorm:"primaryKey;type:varchar(10)" json:"day"`
	UserID    string    `gorm:"primaryKey;type:varchar(64)" json:"user_id"`
	Score     int64     `gorm:"not null;default:0" json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (DailyScore) TableName() string {
	return "daily_scores"
}

// DailyEntry is a leaderboard row
type DailyEntry struct {
	UserID string `json:"name"`
	Score  int64  `json:"score"`
}

// DayKey returns the UTC day partition key for t, e.g. "2026-08-30".
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
