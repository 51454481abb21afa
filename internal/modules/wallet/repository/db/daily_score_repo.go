package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sunova/game_economy/internal/modules/wallet/domain"
)

// DailyScoreRepository implements domain.DailyScoreRepository on SQL, for
// deployments that run without Redis.
type DailyScoreRepository struct {
	db *gorm.DB
}

// NewDailyScoreRepository creates a new SQL daily score repository
func NewDailyScoreRepository(db *gorm.DB) *DailyScoreRepository {
	return &DailyScoreRepository{db: db}
}

func (r *DailyScoreRepository) Increment(ctx context.Context, day, userID string, delta int64) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"score": gorm.Expr("daily_scores.score + ?", delta)}),
		}).
		Create(&domain.DailyScore{Day: day, UserID: userID, Score: delta}).Error
	if err != nil {
		return fmt.Errorf("failed to increment daily score: %w", err)
	}
	return nil
}

func (r *DailyScoreRepository) Score(ctx context.Context, day, userID string) (int64, error) {
	var ds domain.DailyScore
	err := r.db.WithContext(ctx).
		Where("day = ? AND user_id = ?", day, userID).
		First(&ds).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get daily score: %w", err)
	}
	return ds.Score, nil
}

func (r *DailyScoreRepository) Top(ctx context.Context, day string, limit int) ([]domain.DailyEntry, error) {
	var list []domain.DailyScore
	err := r.db.WithContext(ctx).
		Where("day = ?", day).
		Order("score DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list daily top: %w", err)
	}

	entries := make([]domain.DailyEntry, 0, len(list))
	for _, ds := range list {
		entries = append(entries, domain.DailyEntry{UserID: ds.UserID, Score: ds.Score})
	}
	return entries, nil
}

func (r *DailyScoreRepository) ResetExcept(ctx context.Context, day string) error {
	err := r.db.WithContext(ctx).
		Where("day <> ?", day).
		Delete(&domain.DailyScore{}).Error
	if err != nil {
		return fmt.Errorf("failed to reset daily scores: %w", err)
	}
	return nil
}
