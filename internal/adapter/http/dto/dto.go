package dto

// CreateAccountRequest is the (empty) request body for account creation.
// Kept as a named type so the route stays self-documenting.
type CreateAccountRequest struct{}

// LoginRequest is the request body for wallet login. The private key is
// required unless the demo wallet is requested.
type LoginRequest struct {
	PrivateKey string `json:"privateKey" binding:"required_if=IsDemo false"`
	IsDemo     bool   `json:"isDemo"`
}

// SendTransactionRequest is the request body for sending a transaction.
type SendTransactionRequest struct {
	WalletID         int    `json:"walletId" binding:"required,gt=0"`
	RecipientAddress string `json:"recipientAddress" binding:"required,min=1,max=100"`
	Amount           string `json:"amount" binding:"required,positive_amount"`
	Token            string `json:"token" binding:"required,oneof=SOL USDC"`
}

// AIQueryRequest is the request body for an assistant question. The
// wallet id is optional; anonymous questions are answered but not
// recorded.
type AIQueryRequest struct {
	Message  string `json:"message" binding:"required,max=2000"`
	WalletID *int   `json:"walletId,omitempty"`
}

// AIQueryResponse is the response body for an assistant answer.
type AIQueryResponse struct {
	Response string `json:"response"`
}
