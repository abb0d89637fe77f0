package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/utilibill/backend/internal/domain/notification"
	"github.com/utilibill/backend/internal/interfaces/http/dto"
	"github.com/utilibill/backend/internal/interfaces/http/middleware"
)

const defaultNotificationLimit = 50

// ReminderService is the application surface the notification handler needs
type ReminderService interface {
	BuildReminder(ctx context.Context, billID uuid.UUID, overrideMessage string) (*notification.Notification, error)
	MarkRead(ctx context.Context, notificationID, customerID uuid.UUID) error
	ListForCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*notification.Notification, error)
}

// NotificationHandler serves reminder and notification endpoints
type NotificationHandler struct {
	BaseHandler
	service ReminderService
	logger  *zap.Logger
}

// NewNotificationHandler creates a notification handler
func NewNotificationHandler(service ReminderService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{service: service, logger: logger}
}

// RegisterRoutes registers notification routes on the API group
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bills/:id/reminders", h.BuildReminder)
	rg.GET("/customers/:id/notifications", h.ListForCustomer)
	rg.PATCH("/notifications/:id/read", h.MarkRead)
}

// BuildReminder handles POST /bills/:id/reminders
func (h *NotificationHandler) BuildReminder(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "id is not a valid UUID")
		return
	}

	// Body is optional; absent body means the default message.
	var body dto.BuildReminderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			h.Error(c, 400, dto.ErrCodeValidation, middleware.BindingErrorMessage(err))
			return
		}
	}

	n, err := h.service.BuildReminder(c.Request.Context(), uuid.MustParse(req.ID), body.Message)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.NewNotificationResponse(n))
}

// ListForCustomer handles GET /customers/:id/notifications
func (h *NotificationHandler) ListForCustomer(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "id is not a valid UUID")
		return
	}

	limit := defaultNotificationLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	notifications, err := h.service.ListForCustomer(c.Request.Context(), uuid.MustParse(req.ID), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = dto.NewNotificationResponse(n)
	}
	h.SuccessWithMeta(c, responses, len(responses), limit)
}

// MarkRead handles PATCH /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "id is not a valid UUID")
		return
	}

	var body dto.MarkReadRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Error(c, 400, dto.ErrCodeValidation, middleware.BindingErrorMessage(err))
		return
	}

	customerID, err := uuid.Parse(body.CustomerID)
	if err != nil {
		h.BadRequest(c, "customer_id is not a valid UUID")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), uuid.MustParse(req.ID), customerID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
