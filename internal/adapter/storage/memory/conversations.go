package memory

import (
	"context"
	"sort"
	"time"

	"solwallet-api/internal/core/domain"
)

// ConversationRepo implements ports.ConversationRepository on the
// shared Store.
type ConversationRepo struct {
	store *Store
}

// NewConversationRepo creates a conversation repository over the store.
func NewConversationRepo(store *Store) *ConversationRepo {
	return &ConversationRepo{store: store}
}

// Create assigns the next sequential id and the current timestamp.
func (r *ConversationRepo) Create(ctx context.Context, conv *domain.Conversation) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	conv.ID = s.nextConversationID
	s.nextConversationID++
	conv.Timestamp = time.Now()

	cp := *conv
	s.conversations[cp.ID] = &cp
	return nil
}

// ListByWalletID returns the wallet's conversations oldest-first. The
// chat panel renders them top-down, opposite to the transaction feed.
func (r *ConversationRepo) ListByWalletID(ctx context.Context, walletID int) ([]domain.Conversation, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Conversation, 0)
	for _, conv := range s.conversations {
		if conv.WalletID != nil && *conv.WalletID == walletID {
			result = append(result, *conv)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].ID < result[j].ID
		}
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}
