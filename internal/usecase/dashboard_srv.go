package usecase

import (
	"context"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"

	"go.uber.org/zap"
)

// DashboardService groups the owner analytics and notification feeds,
// both straight relays of upstream data.
type DashboardService interface {
	OwnerSummary(ctx context.Context) (*entity.OwnerSummary, error)
	OwnerDetailed(ctx context.Context) (*entity.OwnerDetailed, error)
	OwnerReport(ctx context.Context) (map[string]any, error)
	Notifications(ctx context.Context) ([]entity.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID int64) error
	MarkAllNotificationsRead(ctx context.Context) error
}

type dashboardService struct {
	analytics     remote.AnalyticsAPI
	notifications remote.NotificationAPI
	log           *zap.Logger
}

func NewDashboardService(analytics remote.AnalyticsAPI, notifications remote.NotificationAPI, log *zap.Logger) DashboardService {
	return &dashboardService{
		analytics:     analytics,
		notifications: notifications,
		log:           log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) OwnerSummary(ctx context.Context) (*entity.OwnerSummary, error) {
	return s.analytics.OwnerSummary(ctx)
}

func (s *dashboardService) OwnerDetailed(ctx context.Context) (*entity.OwnerDetailed, error) {
	return s.analytics.OwnerDetailed(ctx)
}

func (s *dashboardService) OwnerReport(ctx context.Context) (map[string]any, error) {
	return s.analytics.OwnerReport(ctx)
}

func (s *dashboardService) Notifications(ctx context.Context) ([]entity.Notification, error) {
	return s.notifications.List(ctx)
}

func (s *dashboardService) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	return s.notifications.MarkRead(ctx, notificationID)
}

func (s *dashboardService) MarkAllNotificationsRead(ctx context.Context) error {
	return s.notifications.MarkAllRead(ctx)
}
