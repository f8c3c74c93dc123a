package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"

	"go.uber.org/zap"
)

type ReviewAPI interface {
	List(ctx context.Context, venueID int64) ([]entity.Review, error)
	Create(ctx context.Context, venueID int64, payload any) (*entity.Review, error)
	Reply(ctx context.Context, venueID, reviewID int64, payload any) (*entity.Review, error)
}

type reviewAPI struct {
	client *Client
	log    *zap.Logger
}

func NewReviewAPI(client *Client, log *zap.Logger) ReviewAPI {
	return &reviewAPI{client: client, log: log.With(zap.String("api", "review"))}
}

func (a *reviewAPI) List(ctx context.Context, venueID int64) ([]entity.Review, error) {
	var reviews []entity.Review
	path := fmt.Sprintf("/api/venues/%d/reviews", venueID)
	if err := a.client.do(ctx, http.MethodGet, path, nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (a *reviewAPI) Create(ctx context.Context, venueID int64, payload any) (*entity.Review, error) {
	var review entity.Review
	path := fmt.Sprintf("/api/venues/%d/reviews", venueID)
	if err := a.client.do(ctx, http.MethodPost, path, nil, payload, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (a *reviewAPI) Reply(ctx context.Context, venueID, reviewID int64, payload any) (*entity.Review, error) {
	var review entity.Review
	path := fmt.Sprintf("/api/venues/%d/reviews/%d/reply", venueID, reviewID)
	if err := a.client.do(ctx, http.MethodPost, path, nil, payload, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
