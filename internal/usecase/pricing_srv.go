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

type PricingService interface {
	List(ctx context.Context, venueID int64) ([]entity.PricingRule, error)
	Create(ctx context.Context, venueID int64, req *request.CreatePricingRuleRequest) (*entity.PricingRule, error)
	Delete(ctx context.Context, venueID, ruleID int64) error
}

type pricingService struct {
	pricing remote.PricingAPI
	log     *zap.Logger
}

func NewPricingService(pricing remote.PricingAPI, log *zap.Logger) PricingService {
	return &pricingService{
		pricing: pricing,
		log:     log.With(zap.String("service", "pricing")),
	}
}

func (s *pricingService) List(ctx context.Context, venueID int64) ([]entity.PricingRule, error) {
	return s.pricing.List(ctx, venueID)
}

func (s *pricingService) Create(ctx context.Context, venueID int64, req *request.CreatePricingRuleRequest) (*entity.PricingRule, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Pricing rule validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rule, err := s.pricing.Create(ctx, venueID, req)
	if err != nil {
		return nil, err
	}

	s.log.Info("Pricing rule created",
		zap.Int64("venue_id", venueID),
		zap.Int64("rule_id", rule.ID),
		zap.Float64("multiplier", rule.Multiplier),
	)

	return rule, nil
}

func (s *pricingService) Delete(ctx context.Context, venueID, ruleID int64) error {
	if err := s.pricing.Delete(ctx, venueID, ruleID); err != nil {
		return err
	}

	s.log.Info("Pricing rule deleted",
		zap.Int64("venue_id", venueID),
		zap.Int64("rule_id", ruleID),
	)
	return nil
}
