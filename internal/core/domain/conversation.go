package domain

import "time"

// Conversation logs one exchange with the AI assistant. Records are
// append-only; nothing mutates or deletes them.
type Conversation struct {
	ID        int       `json:"id"`
	WalletID  *int      `json:"walletId"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
