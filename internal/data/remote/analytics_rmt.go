package remote

import (
	"context"
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"

	"go.uber.org/zap"
)

type AnalyticsAPI interface {
	OwnerSummary(ctx context.Context) (*entity.OwnerSummary, error)
	OwnerDetailed(ctx context.Context) (*entity.OwnerDetailed, error)
	// OwnerReport returns the raw report document; the console relays it
	// without interpreting the shape.
	OwnerReport(ctx context.Context) (map[string]any, error)
}

type analyticsAPI struct {
	client *Client
	log    *zap.Logger
}

func NewAnalyticsAPI(client *Client, log *zap.Logger) AnalyticsAPI {
	return &analyticsAPI{client: client, log: log.With(zap.String("api", "analytics"))}
}

func (a *analyticsAPI) OwnerSummary(ctx context.Context) (*entity.OwnerSummary, error) {
	var summary entity.OwnerSummary
	if err := a.client.do(ctx, http.MethodGet, "/api/analytics/owner/summary", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (a *analyticsAPI) OwnerDetailed(ctx context.Context) (*entity.OwnerDetailed, error) {
	var detailed entity.OwnerDetailed
	if err := a.client.do(ctx, http.MethodGet, "/api/analytics/owner/detailed", nil, nil, &detailed); err != nil {
		return nil, err
	}
	return &detailed, nil
}

func (a *analyticsAPI) OwnerReport(ctx context.Context) (map[string]any, error) {
	var report map[string]any
	if err := a.client.do(ctx, http.MethodGet, "/api/analytics/owner/report", nil, nil, &report); err != nil {
		return nil, err
	}
	return report, nil
}
