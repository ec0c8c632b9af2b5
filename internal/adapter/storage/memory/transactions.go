package memory

import (
	"context"
	"sort"
	"time"

	"solwallet-api/internal/core/domain"
)

// TransactionRepo implements ports.TransactionRepository on the shared
// Store.
type TransactionRepo struct {
	store *Store
}

// NewTransactionRepo creates a transaction repository over the store.
func NewTransactionRepo(store *Store) *TransactionRepo {
	return &TransactionRepo{store: store}
}

// Create assigns the next sequential id and the current timestamp.
// Status defaults to confirmed — there is no asynchronous settlement.
func (r *TransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = s.nextTransactionID
	s.nextTransactionID++
	tx.Timestamp = time.Now()
	if tx.Status == "" {
		tx.Status = domain.TransactionStatusConfirmed
	}

	cp := *tx
	s.transactions[cp.ID] = &cp
	return nil
}

// GetByHash returns the transaction with the given hash, or (nil, nil).
func (r *TransactionRepo) GetByHash(ctx context.Context, txHash string) (*domain.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tx := range s.transactions {
		if tx.TxHash == txHash {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByWalletID returns the wallet's transactions newest-first.
// An empty slice, never an error, when nothing matches.
func (r *TransactionRepo) ListByWalletID(ctx context.Context, walletID int) ([]domain.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.WalletID != nil && *tx.WalletID == walletID {
			result = append(result, *tx)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].ID > result[j].ID
		}
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	return result, nil
}
