package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appbilling "github.com/utilibill/backend/internal/application/billing"
	"github.com/utilibill/backend/internal/domain/metering"
	"github.com/utilibill/backend/internal/domain/tariff"
	"github.com/utilibill/backend/internal/interfaces/http/dto"
	"github.com/utilibill/backend/internal/interfaces/http/middleware"
)

// ReadingService is the application surface the reading handler needs
type ReadingService interface {
	RecordReading(ctx context.Context, input appbilling.RecordReadingInput) (*metering.Reading, error)
	GetReading(ctx context.Context, id uuid.UUID) (*metering.Reading, error)
}

// ReadingHandler serves meter reading endpoints
type ReadingHandler struct {
	BaseHandler
	service ReadingService
	logger  *zap.Logger
}

// NewReadingHandler creates a reading handler
func NewReadingHandler(service ReadingService, logger *zap.Logger) *ReadingHandler {
	return &ReadingHandler{service: service, logger: logger}
}

// RegisterRoutes registers reading routes on the API group
func (h *ReadingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/readings", h.Record)
	rg.GET("/readings/:id", h.Get)
}

// Record handles POST /readings
func (h *ReadingHandler) Record(c *gin.Context) {
	var req dto.RecordReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, 400, dto.ErrCodeValidation, middleware.BindingErrorMessage(err))
		return
	}

	meterID, err := uuid.Parse(req.MeterID)
	if err != nil {
		h.BadRequest(c, "meter_id is not a valid UUID")
		return
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		h.BadRequest(c, "customer_id is not a valid UUID")
		return
	}

	reading, err := h.service.RecordReading(c.Request.Context(), appbilling.RecordReadingInput{
		MeterID:       meterID,
		CustomerID:    customerID,
		Month:         req.Month,
		UnitsConsumed: req.UnitsConsumed,
		Class:         tariff.ConnectionClass(req.Class),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.NewReadingResponse(reading))
}

// Get handles GET /readings/:id
func (h *ReadingHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "id is not a valid UUID")
		return
	}

	reading, err := h.service.GetReading(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewReadingResponse(reading))
}
