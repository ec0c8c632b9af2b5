package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"solwallet-api/internal/core/domain"
	"solwallet-api/internal/core/ports/mocks"
	"solwallet-api/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestWalletService_CreateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)
	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockKeypair := mocks.NewMockKeypairService(ctrl)

	svc := NewWalletService(mockWalletRepo, mockTxRepo, mockKeypair, newTestLogger())

	mockKeypair.EXPECT().GeneratePrivateKey().Return("deadbeefcafe", nil)
	mockKeypair.EXPECT().DeriveAddress("deadbeefcafe").Return("SOLabc123")
	mockKeypair.EXPECT().DerivePublicKey("deadbeefcafe").Return("PUBeefcafe")

	account, err := svc.CreateAccount(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "deadbeefcafe", account.PrivateKey)
	assert.Equal(t, "SOLabc123", account.Address)
	assert.Equal(t, "PUBeefcafe", account.PublicKey)
	assert.Equal(t, "New wallet created successfully! Please save your private key securely.", account.Message)
}

func TestWalletService_CreateAccount_KeygenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)
	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockKeypair := mocks.NewMockKeypairService(ctrl)

	svc := NewWalletService(mockWalletRepo, mockTxRepo, mockKeypair, newTestLogger())

	mockKeypair.EXPECT().GeneratePrivateKey().Return("", errors.New("entropy exhausted"))

	_, err := svc.CreateAccount(context.Background())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestWalletService_Login_Demo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)
	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockKeypair := mocks.NewMockKeypairService(ctrl)

	svc := NewWalletService(mockWalletRepo, mockTxRepo, mockKeypair, newTestLogger())

	demoWallet := &domain.Wallet{
		ID:      1,
		Address: "DEMO7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
		IsDemo:  true,
	}
	demoTxs := []domain.Transaction{
		{ID: 3, TxHash: "TX4mR7kL9sDemoTx3"},
		{ID: 2, TxHash: "TX9fQ2mN8kDemoTx2"},
		{ID: 1, TxHash: "TX4xH8k9mL2nP5qR7sDemoTx1"},
	}

	mockWalletRepo.EXPECT().GetByID(gomock.Any(), 1).Return(demoWallet, nil)
	mockTxRepo.EXPECT().ListByWalletID(gomock.Any(), 1).Return(demoTxs, nil)

	overview, err := svc.Login(context.Background(), "", true)
	require.NoError(t, err)

	assert.Equal(t, demoWallet, overview.Wallet)
	assert.Equal(t, 25.75, overview.Balances.SOL)
	assert.Equal(t, 1000.00, overview.Balances.USDC)
	assert.Equal(t, 3575.00, overview.Balances.TotalValue)
	assert.Len(t, overview.Transactions, 3)
}

func TestWalletService_Login_DemoWalletMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)
	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockKeypair := mocks.NewMockKeypairService(ctrl)

	svc := NewWalletService(mockWalletRepo, mockTxRepo, mockKeypair, newTestLogger())

	mockWalletRepo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, nil)

	_, err := svc.Login(context.Background(), "", true)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_001", appErr.Code)
}

func TestWalletService_Login_ExistingWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)
	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockKeypair := mocks.NewMockKeypairService(ctrl)

	svc := NewWalletService(mockWalletRepo, mockTxRepo, mockKeypair, newTestLogger())

	wallet := &domain.Wallet{ID: 7, Address: "SOLexisting", IsDemo: false}

	mockKeypair.EXPECT().DeriveAddress("my-key").Return("SOLexisting")
	mockWalletRepo.EXPECT().GetByAddress(gomock.Any(), "SOLexisting").Return(wallet, nil)
	mockTxRepo.EXPECT().ListByWalletID(gomock.Any(), 7).Return([]domain.Transaction{}, nil)

	overview, err := svc.Login(context.Background(), "my-key", false)
	require.NoError(t, err)

	assert.Equal(t, 7, overview.Wallet.ID)
	assert.Equal(t, 12.45, overview.Balances.SOL)
	assert.Equal(t, 500.00, overview.Balances.USDC)
	assert.Equal(t, 1745.00, overview.Balances.TotalValue)
	assert.Empty(t, overview.Transactions)
}

func TestWalletService_Login_CreatesWalletOnFirstLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)
	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockKeypair := mocks.NewMockKeypairService(ctrl)

	svc := NewWalletService(mockWalletRepo, mockTxRepo, mockKeypair, newTestLogger())

	mockKeypair.EXPECT().DeriveAddress("fresh-key").Return("SOLfresh")
	mockKeypair.EXPECT().DerivePublicKey("fresh-key").Return("PUBfresh-key")
	mockWalletRepo.EXPECT().GetByAddress(gomock.Any(), "SOLfresh").Return(nil, nil)
	mockWalletRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) error {
			assert.Equal(t, "SOLfresh", w.Address)
			assert.Equal(t, "PUBfresh-key", w.PublicKey)
			assert.Equal(t, "fresh-key", w.PrivateKey)
			assert.False(t, w.IsDemo)
			w.ID = 2
			w.CreatedAt = time.Now()
			return nil
		})
	mockTxRepo.EXPECT().ListByWalletID(gomock.Any(), 2).Return([]domain.Transaction{}, nil)

	overview, err := svc.Login(context.Background(), "fresh-key", false)
	require.NoError(t, err)
	assert.Equal(t, 2, overview.Wallet.ID)
}

func TestWalletService_Login_CreateRaceFallsBackToRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)
	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockKeypair := mocks.NewMockKeypairService(ctrl)

	svc := NewWalletService(mockWalletRepo, mockTxRepo, mockKeypair, newTestLogger())

	winner := &domain.Wallet{ID: 9, Address: "SOLraced"}

	mockKeypair.EXPECT().DeriveAddress("raced-key").Return("SOLraced")
	mockKeypair.EXPECT().DerivePublicKey("raced-key").Return("PUBraced-key")
	mockWalletRepo.EXPECT().GetByAddress(gomock.Any(), "SOLraced").Return(nil, nil)
	mockWalletRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperror.ErrAddressTaken())
	mockWalletRepo.EXPECT().GetByAddress(gomock.Any(), "SOLraced").Return(winner, nil)
	mockTxRepo.EXPECT().ListByWalletID(gomock.Any(), 9).Return([]domain.Transaction{}, nil)

	overview, err := svc.Login(context.Background(), "raced-key", false)
	require.NoError(t, err)
	assert.Equal(t, 9, overview.Wallet.ID)
}

func TestWalletService_Login_LimitsRecentTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)
	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockKeypair := mocks.NewMockKeypairService(ctrl)

	svc := NewWalletService(mockWalletRepo, mockTxRepo, mockKeypair, newTestLogger())

	wallet := &domain.Wallet{ID: 3, Address: "SOLbusy"}
	txs := make([]domain.Transaction, 8)
	for i := range txs {
		txs[i].ID = 8 - i // newest first
	}

	mockKeypair.EXPECT().DeriveAddress("busy-key").Return("SOLbusy")
	mockWalletRepo.EXPECT().GetByAddress(gomock.Any(), "SOLbusy").Return(wallet, nil)
	mockTxRepo.EXPECT().ListByWalletID(gomock.Any(), 3).Return(txs, nil)

	overview, err := svc.Login(context.Background(), "busy-key", false)
	require.NoError(t, err)

	require.Len(t, overview.Transactions, 5)
	assert.Equal(t, 8, overview.Transactions[0].ID)
	assert.Equal(t, 4, overview.Transactions[4].ID)
}

func TestWalletService_GetWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)
	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockKeypair := mocks.NewMockKeypairService(ctrl)

	svc := NewWalletService(mockWalletRepo, mockTxRepo, mockKeypair, newTestLogger())

	wallet := &domain.Wallet{ID: 4, Address: "SOLwallet4"}
	txs := make([]domain.Transaction, 8)

	mockWalletRepo.EXPECT().GetByID(gomock.Any(), 4).Return(wallet, nil)
	mockTxRepo.EXPECT().ListByWalletID(gomock.Any(), 4).Return(txs, nil)

	overview, err := svc.GetWallet(context.Background(), 4)
	require.NoError(t, err)

	// Full history, no recency cap
	assert.Len(t, overview.Transactions, 8)
}

func TestWalletService_GetWallet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)
	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockKeypair := mocks.NewMockKeypairService(ctrl)

	svc := NewWalletService(mockWalletRepo, mockTxRepo, mockKeypair, newTestLogger())

	mockWalletRepo.EXPECT().GetByID(gomock.Any(), 42).Return(nil, nil)

	_, err := svc.GetWallet(context.Background(), 42)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_001", appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
}
