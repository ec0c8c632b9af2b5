package ports

import (
	"context"

	"solwallet-api/internal/core/domain"
)

// WalletRepository defines storage operations for wallets.
// Lookups return (nil, nil) when no record matches.
type WalletRepository interface {
	// Create assigns the next sequential id and the creation timestamp.
	// The address-uniqueness check happens atomically inside the call;
	// a duplicate address is rejected with apperror.ErrAddressTaken.
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id int) (*domain.Wallet, error)
	GetByAddress(ctx context.Context, address string) (*domain.Wallet, error)
}

// TransactionRepository defines storage operations for ledger entries.
type TransactionRepository interface {
	// Create assigns the next sequential id and the current timestamp,
	// defaulting status to confirmed when unset.
	Create(ctx context.Context, transaction *domain.Transaction) error
	GetByHash(ctx context.Context, txHash string) (*domain.Transaction, error)
	// ListByWalletID returns matching transactions newest-first.
	ListByWalletID(ctx context.Context, walletID int) ([]domain.Transaction, error)
}

// ConversationRepository defines storage operations for assistant logs.
type ConversationRepository interface {
	Create(ctx context.Context, conversation *domain.Conversation) error
	// ListByWalletID returns matching conversations oldest-first. The
	// ordering is deliberately the opposite of transaction listings,
	// matching the behavior the browser client was built against.
	ListByWalletID(ctx context.Context, walletID int) ([]domain.Conversation, error)
}
