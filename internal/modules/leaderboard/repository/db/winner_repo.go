// Package db provides the gorm-backed winner repository.
package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sunova/game_economy/internal/modules/leaderboard/domain"
)

// WinnerRepository implements domain.WinnerRepository on SQL
type WinnerRepository struct {
	db *gorm.DB
}

// NewWinnerRepository creates a new SQL winner repository
func NewWinnerRepository(db *gorm.DB) *WinnerRepository {
	return &WinnerRepository{db: db}
}

// Migrate creates the winners table
func (r *WinnerRepository) Migrate() error {
	return r.db.AutoMigrate(&domain.Winner{})
}

func (r *WinnerRepository) Save(ctx context.Context, w *domain.Winner) error {
	if err := r.db.WithContext(ctx).Create(w).Error; err != nil {
		return fmt.Errorf("failed to save winner: %w", err)
	}
	return nil
}

func (r *WinnerRepository) Recent(ctx context.Context, limit int) ([]*domain.Winner, error) {
	var list []*domain.Winner
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list winners: %w", err)
	}
	return list, nil
}

func (r *WinnerRepository) ByRound(ctx context.Context, roundID string, limit int) ([]*domain.Winner, error) {
	var list []*domain.Winner
	err := r.db.WithContext(ctx).
		Where("round_id = ?", roundID).
		Order("date DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list round winners: %w", err)
	}
	return list, nil
}
