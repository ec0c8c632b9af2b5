package domain

import "time"

// TransactionType represents the direction of a transfer.
type TransactionType string

const (
	TransactionTypeSend    TransactionType = "send"
	TransactionTypeReceive TransactionType = "receive"
)

// TransactionStatus represents the settlement state of a transaction.
// Creation always assigns Confirmed synchronously; there is no pending
// -> confirmed transition anywhere in the system.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Token enumerates the supported mock tokens.
type Token string

const (
	TokenSOL  Token = "SOL"
	TokenUSDC Token = "USDC"
)

// Transaction is an immutable ledger entry for a simulated transfer.
// Amount and Fee are decimal strings so arbitrary precision survives
// serialization untouched.
type Transaction struct {
	ID          int               `json:"id"`
	WalletID    *int              `json:"walletId"`
	TxHash      string            `json:"txHash"`
	Type        TransactionType   `json:"type"`
	Token       Token             `json:"token"`
	Amount      string            `json:"amount"`
	FromAddress string            `json:"fromAddress"`
	ToAddress   string            `json:"toAddress"`
	Status      TransactionStatus `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Fee         *string           `json:"fee"`
}

// IsOutgoing returns true for transfers sent from the owning wallet.
func (t *Transaction) IsOutgoing() bool {
	return t.Type == TransactionTypeSend
}

// ValidToken reports whether the given token is supported.
func ValidToken(tok Token) bool {
	return tok == TokenSOL || tok == TokenUSDC
}
