package ports

import (
	"context"

	"solwallet-api/internal/core/domain"
)

// KeypairService derives mock wallet credentials. None of this is real
// cryptography: the address is a prefixed SHA-256 digest and the public
// key is a suffix of the private key, kept for parity with the client.
type KeypairService interface {
	GeneratePrivateKey() (string, error)
	DeriveAddress(seed string) string
	DerivePublicKey(privateKey string) string
}

// Balances is the mock balance presentation attached to wallet reads.
// Figures are fixed constants selected by the wallet's demo flag, not
// computed from the ledger.
type Balances struct {
	SOL        float64 `json:"SOL"`
	USDC       float64 `json:"USDC"`
	TotalValue float64 `json:"totalValue"`
}

// WalletOverview bundles a wallet with its presentation state.
type WalletOverview struct {
	Wallet       *domain.Wallet       `json:"wallet"`
	Balances     Balances             `json:"balances"`
	Transactions []domain.Transaction `json:"transactions"`
}

// NewAccount holds freshly generated wallet credentials, shown once.
type NewAccount struct {
	PrivateKey string `json:"privateKey"`
	Address    string `json:"address"`
	PublicKey  string `json:"publicKey"`
	Message    string `json:"message"`
}

// WalletService defines account creation and wallet read logic.
type WalletService interface {
	CreateAccount(ctx context.Context) (*NewAccount, error)
	// Login resolves the demo wallet or derives/creates a wallet from
	// the presented private key. Only the most recent transactions are
	// included (the dashboard shows a short list on login).
	Login(ctx context.Context, privateKey string, isDemo bool) (*WalletOverview, error)
	// GetWallet returns the wallet with its full transaction history.
	GetWallet(ctx context.Context, id int) (*WalletOverview, error)
}

// SendRequest holds validated input for sending a transaction.
type SendRequest struct {
	WalletID         int
	RecipientAddress string
	Amount           string
	Token            domain.Token
}

// TransactionService defines ledger record construction and listing.
type TransactionService interface {
	Send(ctx context.Context, req SendRequest) (*domain.Transaction, error)
	History(ctx context.Context, walletID int) ([]domain.Transaction, error)
}

// AssistantService forwards user questions to the language-model
// provider, substituting canned responses when the provider fails.
type AssistantService interface {
	// Query returns the assistant's answer. When walletID is non-nil
	// the exchange is recorded; recording failures are logged, never
	// surfaced.
	Query(ctx context.Context, message string, walletID *int) (string, error)
	Conversations(ctx context.Context, walletID int) ([]domain.Conversation, error)
}
