// Package db provides the gorm-backed roulette bet repository.
package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sunova/game_economy/internal/modules/roulette/domain"
)

// BetRepository implements domain.BetRepository on SQL
type BetRepository struct {
	db *gorm.DB
}

// NewBetRepository creates a new SQL bet repository
func NewBetRepository(db *gorm.DB) *BetRepository {
	return &BetRepository{db: db}
}

// Migrate creates the roulette tables
func (r *BetRepository) Migrate() error {
	return r.db.AutoMigrate(&domain.Bet{}, &domain.SettledRound{})
}

func (r *BetRepository) SaveBet(ctx context.Context, bet *domain.Bet) error {
	if err := r.db.WithContext(ctx).Create(bet).Error; err != nil {
		return fmt.Errorf("failed to save bet: %w", err)
	}
	return nil
}

func (r *BetRepository) GetBets(ctx context.Context, roundID string) ([]*domain.Bet, error) {
	var bets []*domain.Bet
	err := r.db.WithContext(ctx).
		Where("round_id = ? AND game = ?", roundID, domain.GameCode).
		Find(&bets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get bets: %w", err)
	}
	return bets, nil
}

func (r *BetRepository) ClaimSettlement(ctx context.Context, roundID string) error {
	// The primary key on round_id arbitrates: exactly one insert wins.
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.SettledRound{RoundID: roundID, SettledAt: time.Now()})
	if res.Error != nil {
		return fmt.Errorf("failed to claim settlement: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRoundSettled
	}
	return nil
}
