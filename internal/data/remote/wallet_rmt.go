package remote

import (
	"context"
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"

	"go.uber.org/zap"
)

type WalletAPI interface {
	Summary(ctx context.Context) (*entity.WalletSummary, error)
	Balance(ctx context.Context) (*entity.WalletBalance, error)
	// Topup returns the payment provider client secret; the embedded
	// payment element on the browser side confirms the intent.
	Topup(ctx context.Context, payload any) (string, error)
	ConfirmTopup(ctx context.Context, payload any) (*entity.WalletBalance, error)
}

type walletAPI struct {
	client *Client
	log    *zap.Logger
}

func NewWalletAPI(client *Client, log *zap.Logger) WalletAPI {
	return &walletAPI{client: client, log: log.With(zap.String("api", "wallet"))}
}

func (a *walletAPI) Summary(ctx context.Context) (*entity.WalletSummary, error) {
	var summary entity.WalletSummary
	if err := a.client.do(ctx, http.MethodGet, "/api/wallet/summary", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (a *walletAPI) Balance(ctx context.Context) (*entity.WalletBalance, error) {
	var balance entity.WalletBalance
	if err := a.client.do(ctx, http.MethodGet, "/api/wallet/my-balance", nil, nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (a *walletAPI) Topup(ctx context.Context, payload any) (string, error) {
	var out struct {
		ClientSecret string `json:"clientSecret"`
	}
	if err := a.client.do(ctx, http.MethodPost, "/api/wallet/topup", nil, payload, &out); err != nil {
		return "", err
	}
	return out.ClientSecret, nil
}

func (a *walletAPI) ConfirmTopup(ctx context.Context, payload any) (*entity.WalletBalance, error) {
	var balance entity.WalletBalance
	if err := a.client.do(ctx, http.MethodPost, "/api/wallet/confirm-topup", nil, payload, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}
