package service

import (
	"context"
	"errors"
	"fmt"

	"solwallet-api/internal/core/domain"
	"solwallet-api/internal/core/ports"
	"solwallet-api/pkg/apperror"

	"github.com/rs/zerolog"
)

// Login returns at most this many recent transactions; the dashboard
// shows a short feed and fetches full history separately.
const recentTransactionLimit = 5

const createAccountMessage = "New wallet created successfully! Please save your private key securely."

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	keypairSvc ports.KeypairService
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	keypairSvc ports.KeypairService,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		keypairSvc: keypairSvc,
		log:        log,
	}
}

// CreateAccount generates fresh wallet credentials. Nothing is stored
// yet; the wallet record appears on first login with the key.
func (s *WalletServiceImpl) CreateAccount(ctx context.Context) (*ports.NewAccount, error) {
	privateKey, err := s.keypairSvc.GeneratePrivateKey()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate private key: %w", err))
	}

	return &ports.NewAccount{
		PrivateKey: privateKey,
		Address:    s.keypairSvc.DeriveAddress(privateKey),
		PublicKey:  s.keypairSvc.DerivePublicKey(privateKey),
		Message:    createAccountMessage,
	}, nil
}

// Login resolves a wallet for the presented credentials. The demo path
// returns the seeded demo wallet; otherwise the address is derived from
// the private key and the wallet is fetched or lazily created.
func (s *WalletServiceImpl) Login(ctx context.Context, privateKey string, isDemo bool) (*ports.WalletOverview, error) {
	if isDemo {
		return s.demoLogin(ctx)
	}

	address := s.keypairSvc.DeriveAddress(privateKey)

	wallet, err := s.walletRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup wallet: %w", err))
	}

	if wallet == nil {
		wallet = &domain.Wallet{
			Address:    address,
			PublicKey:  s.keypairSvc.DerivePublicKey(privateKey),
			PrivateKey: privateKey,
			IsDemo:     false,
		}
		if err := s.walletRepo.Create(ctx, wallet); err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code == apperror.ErrAddressTaken().Code {
				// Lost a create race; the winner holds our record.
				wallet, err = s.walletRepo.GetByAddress(ctx, address)
				if err != nil || wallet == nil {
					return nil, apperror.InternalError(fmt.Errorf("refetch wallet after create race: %w", err))
				}
			} else {
				return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
			}
		} else {
			s.log.Info().Int("wallet_id", wallet.ID).Str("address", address).Msg("wallet created on first login")
		}
	}

	transactions, err := s.txRepo.ListByWalletID(ctx, wallet.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}

	return &ports.WalletOverview{
		Wallet:       wallet,
		Balances:     balancesFor(wallet.IsDemo),
		Transactions: recent(transactions),
	}, nil
}

func (s *WalletServiceImpl) demoLogin(ctx context.Context) (*ports.WalletOverview, error) {
	wallet, err := s.walletRepo.GetByID(ctx, 1)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetch demo wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Demo wallet")
	}

	transactions, err := s.txRepo.ListByWalletID(ctx, wallet.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list demo transactions: %w", err))
	}

	return &ports.WalletOverview{
		Wallet:       wallet,
		Balances:     balancesFor(true),
		Transactions: recent(transactions),
	}, nil
}

// GetWallet returns the wallet with its full transaction history.
func (s *WalletServiceImpl) GetWallet(ctx context.Context, id int) (*ports.WalletOverview, error) {
	wallet, err := s.walletRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetch wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Wallet")
	}

	transactions, err := s.txRepo.ListByWalletID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}

	return &ports.WalletOverview{
		Wallet:       wallet,
		Balances:     balancesFor(wallet.IsDemo),
		Transactions: transactions,
	}, nil
}

func recent(transactions []domain.Transaction) []domain.Transaction {
	if len(transactions) > recentTransactionLimit {
		return transactions[:recentTransactionLimit]
	}
	return transactions
}
