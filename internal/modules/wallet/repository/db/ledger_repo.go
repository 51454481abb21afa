// Package db provides the gorm-backed wallet repositories.
package db

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sunova/game_economy/internal/modules/wallet/domain"
)

// LedgerRepository implements domain.LedgerRepository on a SQL database.
//
// Balance mutations use a conditional UPDATE (balance + delta >= 0) so the
// floor check and the adjustment are one statement; the transaction append
// rides in the same database transaction. Two concurrent debits against the
// same account therefore serialize at the row and can never both pass the
// check.
type LedgerRepository struct {
	db      *gorm.DB
	creates singleflight.Group
}

// NewLedgerRepository creates a new SQL ledger repository
func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Migrate creates the wallet tables
func (r *LedgerRepository) Migrate() error {
	return r.db.AutoMigrate(&domain.Account{}, &domain.Transaction{}, &domain.DailyScore{})
}

func (r *LedgerRepository) GetOrCreate(ctx context.Context, userID string) (*domain.Account, bool, error) {
	var acc domain.Account
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&acc).Error
	if err == nil {
		return &acc, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to get account: %w", err)
	}

	// Collapse concurrent creates for the same new identifier into one
	// insert; the unique key is the real guarantee, singleflight just keeps
	// the conflict path off the database.
	created := false
	_, err, _ = r.creates.Do(userID, func() (interface{}, error) {
		res := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&domain.Account{UserID: userID})
		if res.Error != nil {
			return nil, res.Error
		}
		created = res.RowsAffected > 0
		return nil, nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create account: %w", err)
	}

	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&acc).Error; err != nil {
		return nil, false, fmt.Errorf("failed to reload account: %w", err)
	}
	return &acc, created, nil
}

func (r *LedgerRepository) ApplyBalanceDelta(ctx context.Context, userID string, delta int64, enforceFloor bool, txRecord *domain.Transaction) (int64, error) {
	return r.applyDelta(ctx, userID, "balance", delta, enforceFloor, txRecord)
}

func (r *LedgerRepository) ApplyDiamondDelta(ctx context.Context, userID string, delta int64, txRecord *domain.Transaction) (int64, error) {
	return r.applyDelta(ctx, userID, "diamonds", delta, false, txRecord)
}

func (r *LedgerRepository) applyDelta(ctx context.Context, userID, column string, delta int64, enforceFloor bool, txRecord *domain.Transaction) (int64, error) {
	var newValue int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&domain.Account{}).Where("user_id = ?", userID)
		if enforceFloor && delta < 0 {
			q = q.Where(column+" + ? >= 0", delta)
		}
		res := q.UpdateColumn(column, gorm.Expr(column+" + ?", delta))
		if res.Error != nil {
			return fmt.Errorf("failed to adjust %s: %w", column, res.Error)
		}

		if res.RowsAffected == 0 {
			// Either the account is missing or the floor condition held
			// the update back; tell them apart for the caller.
			var count int64
			if err := tx.Model(&domain.Account{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check account: %w", err)
			}
			if count == 0 {
				return domain.ErrAccountNotFound
			}
			return domain.ErrInsufficientFunds
		}

		if err := tx.Create(txRecord).Error; err != nil {
			return fmt.Errorf("failed to append transaction: %w", err)
		}

		var acc domain.Account
		if err := tx.Select(column).Where("user_id = ?", userID).First(&acc).Error; err != nil {
			return fmt.Errorf("failed to read back account: %w", err)
		}
		if column == "diamonds" {
			newValue = acc.Diamonds
		} else {
			newValue = acc.Balance
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newValue, nil
}

func (r *LedgerRepository) AppendTransaction(ctx context.Context, txRecord *domain.Transaction) error {
	if err := r.db.WithContext(ctx).Create(txRecord).Error; err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

func (r *LedgerRepository) Transactions(ctx context.Context, userID string, limit int) ([]*domain.Transaction, error) {
	var list []*domain.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return list, nil
}
