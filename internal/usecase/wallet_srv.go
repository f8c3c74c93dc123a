package usecase

import (
	"context"
	"fmt"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/internal/dto/request"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
)

type WalletService interface {
	Summary(ctx context.Context) (*entity.WalletSummary, error)
	Balance(ctx context.Context) (*entity.WalletBalance, error)
	Topup(ctx context.Context, req *request.TopupRequest) (string, error)
	ConfirmTopup(ctx context.Context, req *request.ConfirmTopupRequest) (*entity.WalletBalance, error)
}

type walletService struct {
	wallet remote.WalletAPI
	log    *zap.Logger
}

func NewWalletService(wallet remote.WalletAPI, log *zap.Logger) WalletService {
	return &walletService{
		wallet: wallet,
		log:    log.With(zap.String("service", "wallet")),
	}
}

func (s *walletService) Summary(ctx context.Context) (*entity.WalletSummary, error) {
	return s.wallet.Summary(ctx)
}

func (s *walletService) Balance(ctx context.Context) (*entity.WalletBalance, error) {
	return s.wallet.Balance(ctx)
}

func (s *walletService) Topup(ctx context.Context, req *request.TopupRequest) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Topup validation failed", zap.Any("errors", errs))
		return "", fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	clientSecret, err := s.wallet.Topup(ctx, req)
	if err != nil {
		return "", err
	}

	s.log.Info("Wallet topup intent created", zap.Float64("amount", req.Amount))
	return clientSecret, nil
}

func (s *walletService) ConfirmTopup(ctx context.Context, req *request.ConfirmTopupRequest) (*entity.WalletBalance, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	balance, err := s.wallet.ConfirmTopup(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.Info("Wallet topup confirmed", zap.Float64("balance", balance.Balance))
	return balance, nil
}
