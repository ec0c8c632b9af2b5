package service

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"solwallet-api/internal/core/domain"
	"solwallet-api/internal/core/ports"
	"solwallet-api/internal/core/ports/mocks"
	"solwallet-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTransactionService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)

	svc := NewTransactionService(mockTxRepo, mockWalletRepo, newTestLogger())

	wallet := &domain.Wallet{ID: 5, Address: "SOLsender"}
	mockWalletRepo.EXPECT().GetByID(gomock.Any(), 5).Return(wallet, nil)
	mockTxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *domain.Transaction) error {
			tx.ID = 10
			tx.Timestamp = time.Now()
			return nil
		})

	tx, err := svc.Send(context.Background(), ports.SendRequest{
		WalletID:         5,
		RecipientAddress: "SOLreceiver",
		Amount:           "1.5",
		Token:            domain.TokenSOL,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, *tx.WalletID)
	assert.Equal(t, domain.TransactionTypeSend, tx.Type)
	assert.Equal(t, domain.TokenSOL, tx.Token)
	assert.Equal(t, "1.5", tx.Amount)
	assert.Equal(t, "SOLsender", tx.FromAddress)
	assert.Equal(t, "SOLreceiver", tx.ToAddress)
	assert.Equal(t, domain.TransactionStatusConfirmed, tx.Status)
	require.NotNil(t, tx.Fee)
	assert.Equal(t, "0.000005", *tx.Fee)
}

func TestTransactionService_Send_WalletNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)

	svc := NewTransactionService(mockTxRepo, mockWalletRepo, newTestLogger())

	mockWalletRepo.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

	_, err := svc.Send(context.Background(), ports.SendRequest{
		WalletID:         99,
		RecipientAddress: "SOLreceiver",
		Amount:           "1",
		Token:            domain.TokenUSDC,
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_001", appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestTransactionService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)

	svc := NewTransactionService(mockTxRepo, mockWalletRepo, newTestLogger())

	txs := []domain.Transaction{{ID: 2}, {ID: 1}}
	mockTxRepo.EXPECT().ListByWalletID(gomock.Any(), 1).Return(txs, nil)

	got, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, txs, got)
}

func TestGenerateTxHash(t *testing.T) {
	before := time.Now().UnixMilli()
	hash := generateTxHash()
	after := time.Now().UnixMilli()

	require.True(t, strings.HasPrefix(hash, "TX"))

	// "TX" + 13-digit millis + 9-char suffix
	require.Len(t, hash, 2+13+9)

	millis, err := strconv.ParseInt(hash[2:15], 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, millis, before)
	assert.LessOrEqual(t, millis, after)

	suffix := hash[15:]
	for _, c := range suffix {
		assert.True(t, (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z'), "suffix char %q out of base36 range", c)
	}

	assert.NotEqual(t, hash, generateTxHash())
}
