package memory

import (
	"sync"
	"time"

	"solwallet-api/internal/core/domain"
)

// Store is the sole owner of all wallet, transaction, and conversation
// state. Everything lives in process memory and is lost on restart —
// intentionally, this is a demo backend. A single RWMutex serializes
// access; the original ran on a single-threaded runtime and never had
// to think about this.
type Store struct {
	mu sync.RWMutex

	wallets       map[int]*domain.Wallet
	transactions  map[int]*domain.Transaction
	conversations map[int]*domain.Conversation

	nextWalletID       int
	nextTransactionID  int
	nextConversationID int
}

// Demo wallet credentials, pinned so the no-login demo path is stable
// across restarts and tests.
const (
	DemoWalletID       = 1
	DemoAddress        = "DEMO7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"
	demoPublicKey      = "DEMO_PUBLIC_KEY"
	demoPrivateKey     = "DEMO_PRIVATE_KEY_DO_NOT_USE_IN_PRODUCTION"
	demoTransactionFee = "0.000005"
)

// NewStore creates a Store pre-seeded with the demo wallet and its
// three demo transactions.
func NewStore() *Store {
	s := &Store{
		wallets:            make(map[int]*domain.Wallet),
		transactions:       make(map[int]*domain.Transaction),
		conversations:      make(map[int]*domain.Conversation),
		nextWalletID:       1,
		nextTransactionID:  1,
		nextConversationID: 1,
	}
	s.seedDemoData()
	return s
}

func (s *Store) seedDemoData() {
	now := time.Now()

	demoWallet := &domain.Wallet{
		ID:         DemoWalletID,
		Address:    DemoAddress,
		PublicKey:  demoPublicKey,
		PrivateKey: demoPrivateKey,
		IsDemo:     true,
		CreatedAt:  now,
	}
	s.wallets[demoWallet.ID] = demoWallet
	s.nextWalletID = 2

	walletID := DemoWalletID
	fee := demoTransactionFee
	demoTransactions := []*domain.Transaction{
		{
			ID:          1,
			WalletID:    &walletID,
			TxHash:      "4xH8k9mL2nP5qR7sDemoTx1",
			Type:        domain.TransactionTypeReceive,
			Token:       domain.TokenSOL,
			Amount:      "2.5",
			FromAddress: "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
			ToAddress:   demoWallet.Address,
			Status:      domain.TransactionStatusConfirmed,
			Timestamp:   now.Add(-2 * time.Hour),
			Fee:         &fee,
		},
		{
			ID:          2,
			WalletID:    &walletID,
			TxHash:      "9fQ2mN8kDemoTx2",
			Type:        domain.TransactionTypeSend,
			Token:       domain.TokenUSDC,
			Amount:      "100",
			FromAddress: demoWallet.Address,
			ToAddress:   "9fQ2mN8kL7wX3eR5tY6uP2sDemoAddress",
			Status:      domain.TransactionStatusConfirmed,
			Timestamp:   now.Add(-24 * time.Hour),
			Fee:         &fee,
		},
		{
			ID:          3,
			WalletID:    &walletID,
			TxHash:      "4mR7kL9sDemoTx3",
			Type:        domain.TransactionTypeReceive,
			Token:       domain.TokenUSDC,
			Amount:      "500",
			FromAddress: "4mR7kL9sP3nQ5xT8wV2yDemoAddress",
			ToAddress:   demoWallet.Address,
			Status:      domain.TransactionStatusConfirmed,
			Timestamp:   now.Add(-48 * time.Hour),
			Fee:         &fee,
		},
	}
	for _, tx := range demoTransactions {
		s.transactions[tx.ID] = tx
	}
	s.nextTransactionID = 4
}
