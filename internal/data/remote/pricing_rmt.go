package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"

	"go.uber.org/zap"
)

type PricingAPI interface {
	List(ctx context.Context, venueID int64) ([]entity.PricingRule, error)
	Create(ctx context.Context, venueID int64, payload any) (*entity.PricingRule, error)
	Delete(ctx context.Context, venueID, ruleID int64) error
}

type pricingAPI struct {
	client *Client
	log    *zap.Logger
}

func NewPricingAPI(client *Client, log *zap.Logger) PricingAPI {
	return &pricingAPI{client: client, log: log.With(zap.String("api", "pricing"))}
}

func (a *pricingAPI) List(ctx context.Context, venueID int64) ([]entity.PricingRule, error) {
	var rules []entity.PricingRule
	path := fmt.Sprintf("/api/venues/%d/pricing-rules", venueID)
	if err := a.client.do(ctx, http.MethodGet, path, nil, nil, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (a *pricingAPI) Create(ctx context.Context, venueID int64, payload any) (*entity.PricingRule, error) {
	var rule entity.PricingRule
	path := fmt.Sprintf("/api/venues/%d/pricing-rules", venueID)
	if err := a.client.do(ctx, http.MethodPost, path, nil, payload, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (a *pricingAPI) Delete(ctx context.Context, venueID, ruleID int64) error {
	path := fmt.Sprintf("/api/venues/%d/pricing-rules/%d", venueID, ruleID)
	return a.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
