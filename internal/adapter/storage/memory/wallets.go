package memory

import (
	"context"
	"time"

	"solwallet-api/internal/core/domain"
	"solwallet-api/pkg/apperror"
)

// WalletRepo implements ports.WalletRepository on the shared Store.
type WalletRepo struct {
	store *Store
}

// NewWalletRepo creates a wallet repository over the store.
func NewWalletRepo(store *Store) *WalletRepo {
	return &WalletRepo{store: store}
}

// Create assigns the next sequential wallet id and the creation
// timestamp. The duplicate-address check runs under the write lock, so
// two concurrent creates for the same address cannot both succeed.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.wallets {
		if existing.Address == w.Address {
			return apperror.ErrAddressTaken()
		}
	}

	w.ID = s.nextWalletID
	s.nextWalletID++
	w.CreatedAt = time.Now()

	cp := *w
	s.wallets[cp.ID] = &cp
	return nil
}

// GetByID returns the wallet with the given id, or (nil, nil).
func (r *WalletRepo) GetByID(ctx context.Context, id int) (*domain.Wallet, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

// GetByAddress returns the wallet whose address exactly matches, or
// (nil, nil).
func (r *WalletRepo) GetByAddress(ctx context.Context, address string) (*domain.Wallet, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.wallets {
		if w.Address == address {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}
