package adaptor

import (
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/usecase"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// OwnerSummary handles GET /console/analytics/summary
func (h *DashboardHandler) OwnerSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.OwnerSummary(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get analytics summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// OwnerDetailed handles GET /console/analytics/detailed
func (h *DashboardHandler) OwnerDetailed(w http.ResponseWriter, r *http.Request) {
	detailed, err := h.service.OwnerDetailed(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get analytics detail")
		return
	}

	utils.ResponseSuccess(w, "success", detailed)
}

// OwnerReport handles GET /console/analytics/report
func (h *DashboardHandler) OwnerReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.OwnerReport(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get analytics report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}

// Notifications handles GET /console/notifications
func (h *DashboardHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.service.Notifications(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list notifications")
		return
	}

	utils.ResponseSuccess(w, "success", notifications)
}

// MarkRead handles PUT /console/notifications/{id}/read
func (h *DashboardHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID := utils.ParseInt64(chi.URLParam(r, "id"))
	if notificationID == 0 {
		utils.ResponseBadRequest(w, "Notification ID is required", nil)
		return
	}

	if err := h.service.MarkNotificationRead(r.Context(), notificationID); err != nil {
		handleServiceError(w, h.log, err, "mark notification read")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// MarkAllRead handles PUT /console/notifications/all-read
func (h *DashboardHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAllNotificationsRead(r.Context()); err != nil {
		handleServiceError(w, h.log, err, "mark all notifications read")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
