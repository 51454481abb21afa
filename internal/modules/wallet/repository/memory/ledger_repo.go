// Package memory provides memory-based repositories for the wallet module.
package memory

import (
	"context"
	"sync"

	"github.com/sunova/game_economy/internal/modules/wallet/domain"
)

// LedgerRepository implements domain.LedgerRepository using memory.
// A single mutex serializes all mutations, which trivially satisfies the
// per-account atomicity contract.
type LedgerRepository struct {
	accounts     map[string]*domain.Account
	transactions map[string][]*domain.Transaction // userID -> newest last
	mu           sync.RWMutex
}

// NewLedgerRepository creates a new memory ledger repository
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		accounts:     make(map[string]*domain.Account),
		transactions: make(map[string][]*domain.Transaction),
	}
}

func (r *LedgerRepository) GetOrCreate(ctx context.Context, userID string) (*domain.Account, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if acc, ok := r.accounts[userID]; ok {
		return snapshot(acc), false, nil
	}

	acc := &domain.Account{UserID: userID}
	r.accounts[userID] = acc
	return snapshot(acc), true, nil
}

func (r *LedgerRepository) ApplyBalanceDelta(ctx context.Context, userID string, delta int64, enforceFloor bool, tx *domain.Transaction) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[userID]
	if !ok {
		return 0, domain.ErrAccountNotFound
	}

	newBalance := acc.Balance + delta
	if enforceFloor && newBalance < 0 {
		return 0, domain.ErrInsufficientFunds
	}

	acc.Balance = newBalance
	r.transactions[tx.UserID] = append(r.transactions[tx.UserID], tx)
	return newBalance, nil
}

func (r *LedgerRepository) ApplyDiamondDelta(ctx context.Context, userID string, delta int64, tx *domain.Transaction) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[userID]
	if !ok {
		return 0, domain.ErrAccountNotFound
	}

	acc.Diamonds += delta
	r.transactions[tx.UserID] = append(r.transactions[tx.UserID], tx)
	return acc.Diamonds, nil
}

func (r *LedgerRepository) AppendTransaction(ctx context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions[tx.UserID] = append(r.transactions[tx.UserID], tx)
	return nil
}

func (r *LedgerRepository) Transactions(ctx context.Context, userID string, limit int) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.transactions[userID]
	out := make([]*domain.Transaction, 0, limit)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

// snapshot copies the account so callers never hold a reference into the map
func snapshot(acc *domain.Account) *domain.Account {
	cp := *acc
	return &cp
}
