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

type ReviewService interface {
	List(ctx context.Context, venueID int64) ([]entity.Review, error)
	Create(ctx context.Context, venueID int64, req *request.CreateReviewRequest) (*entity.Review, error)
	Reply(ctx context.Context, venueID, reviewID int64, req *request.ReplyReviewRequest) (*entity.Review, error)
}

type reviewService struct {
	reviews remote.ReviewAPI
	log     *zap.Logger
}

func NewReviewService(reviews remote.ReviewAPI, log *zap.Logger) ReviewService {
	return &reviewService{
		reviews: reviews,
		log:     log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) List(ctx context.Context, venueID int64) ([]entity.Review, error) {
	return s.reviews.List(ctx, venueID)
}

func (s *reviewService) Create(ctx context.Context, venueID int64, req *request.CreateReviewRequest) (*entity.Review, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	return s.reviews.Create(ctx, venueID, req)
}

func (s *reviewService) Reply(ctx context.Context, venueID, reviewID int64, req *request.ReplyReviewRequest) (*entity.Review, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	return s.reviews.Reply(ctx, venueID, reviewID, req)
}
