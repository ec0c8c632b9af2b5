package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"solwallet-api/internal/core/domain"
	"solwallet-api/internal/core/ports"
	"solwallet-api/pkg/apperror"

	"github.com/rs/zerolog"
)

// Every simulated transfer carries this flat network fee.
const networkFee = "0.000005"

const txHashSuffixLen = 9

// TransactionServiceImpl implements ports.TransactionService.
type TransactionServiceImpl struct {
	txRepo     ports.TransactionRepository
	walletRepo ports.WalletRepository
	log        zerolog.Logger
}

// NewTransactionService creates a new TransactionServiceImpl.
func NewTransactionService(
	txRepo ports.TransactionRepository,
	walletRepo ports.WalletRepository,
	log zerolog.Logger,
) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		txRepo:     txRepo,
		walletRepo: walletRepo,
		log:        log,
	}
}

// Send records an outgoing transfer. Confirmation is immediate and
// unconditional: no balance check, no settlement, no rollback path.
func (s *TransactionServiceImpl) Send(ctx context.Context, req ports.SendRequest) (*domain.Transaction, error) {
	wallet, err := s.walletRepo.GetByID(ctx, req.WalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetch wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Wallet")
	}

	walletID := wallet.ID
	fee := networkFee
	tx := &domain.Transaction{
		WalletID:    &walletID,
		TxHash:      generateTxHash(),
		Type:        domain.TransactionTypeSend,
		Token:       req.Token,
		Amount:      req.Amount,
		FromAddress: wallet.Address,
		ToAddress:   req.RecipientAddress,
		Status:      domain.TransactionStatusConfirmed,
		Fee:         &fee,
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	s.log.Info().
		Int("wallet_id", wallet.ID).
		Str("tx_hash", tx.TxHash).
		Str("token", string(tx.Token)).
		Str("amount", tx.Amount).
		Msg("transaction sent")

	return tx, nil
}

// History returns the wallet's transactions, newest first.
func (s *TransactionServiceImpl) History(ctx context.Context, walletID int) ([]domain.Transaction, error) {
	transactions, err := s.txRepo.ListByWalletID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return transactions, nil
}

// generateTxHash builds a mock hash: "TX" + unix milliseconds + a
// short random base-36 suffix. Unique in practice, not by guarantee.
func generateTxHash() string {
	var suffix strings.Builder
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	for i := 0; i < txHashSuffixLen; i++ {
		suffix.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return "TX" + strconv.FormatInt(time.Now().UnixMilli(), 10) + suffix.String()
}
