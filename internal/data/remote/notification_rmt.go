package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"

	"go.uber.org/zap"
)

type NotificationAPI interface {
	List(ctx context.Context) ([]entity.Notification, error)
	MarkRead(ctx context.Context, notificationID int64) error
	MarkAllRead(ctx context.Context) error
}

type notificationAPI struct {
	client *Client
	log    *zap.Logger
}

func NewNotificationAPI(client *Client, log *zap.Logger) NotificationAPI {
	return &notificationAPI{client: client, log: log.With(zap.String("api", "notification"))}
}

func (a *notificationAPI) List(ctx context.Context) ([]entity.Notification, error) {
	var notifications []entity.Notification
	if err := a.client.do(ctx, http.MethodGet, "/api/notifications", nil, nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (a *notificationAPI) MarkRead(ctx context.Context, notificationID int64) error {
	path := fmt.Sprintf("/api/notifications/%d/read", notificationID)
	return a.client.do(ctx, http.MethodPut, path, nil, nil, nil)
}

func (a *notificationAPI) MarkAllRead(ctx context.Context) error {
	return a.client.do(ctx, http.MethodPut, "/api/notifications/all-read", nil, nil, nil)
}
