package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/utilibill/backend/internal/domain/billing"
	"github.com/utilibill/backend/internal/domain/shared/valueobject"
	"github.com/utilibill/backend/internal/interfaces/http/dto"
	"github.com/utilibill/backend/internal/interfaces/http/middleware"
)

// BillService is the application surface the bill handler needs
type BillService interface {
	GenerateBill(ctx context.Context, readingID uuid.UUID) (*billing.Bill, error)
	GetBill(ctx context.Context, billID uuid.UUID) (*billing.Bill, error)
	ListUnpaid(ctx context.Context, customerID uuid.UUID) ([]billing.Bill, error)
}

// PaymentService is the application surface the bill handler needs for payments
type PaymentService interface {
	ApplyPayment(ctx context.Context, billID uuid.UUID, amount valueobject.Money) (*billing.Payment, error)
	ListPayments(ctx context.Context, billID uuid.UUID) ([]billing.Payment, error)
}

// BillHandler serves billing and payment endpoints
type BillHandler struct {
	BaseHandler
	bills    BillService
	payments PaymentService
	logger   *zap.Logger
}

// NewBillHandler creates a bill handler
func NewBillHandler(bills BillService, payments PaymentService, logger *zap.Logger) *BillHandler {
	return &BillHandler{bills: bills, payments: payments, logger: logger}
}

// RegisterRoutes registers billing routes on the API group
func (h *BillHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/readings/:id/bill", h.Generate)
	rg.GET("/bills/:id", h.Get)
	rg.POST("/bills/:id/payments", h.Pay)
	rg.GET("/bills/:id/payments", h.ListPayments)
	rg.GET("/customers/:id/bills", h.ListUnpaid)
}

// Generate handles POST /readings/:id/bill
func (h *BillHandler) Generate(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "id is not a valid UUID")
		return
	}

	bill, err := h.bills.GenerateBill(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.NewBillResponse(bill))
}

// Get handles GET /bills/:id
func (h *BillHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "id is not a valid UUID")
		return
	}

	bill, err := h.bills.GetBill(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewBillResponse(bill))
}

// Pay handles POST /bills/:id/payments
func (h *BillHandler) Pay(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "id is not a valid UUID")
		return
	}

	var body dto.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Error(c, 400, dto.ErrCodeValidation, middleware.BindingErrorMessage(err))
		return
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		h.BadRequest(c, "amount is not a valid decimal")
		return
	}

	payment, err := h.payments.ApplyPayment(c.Request.Context(), uuid.MustParse(req.ID), valueobject.NewMoneyBDT(amount))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.NewPaymentResponse(payment))
}

// ListPayments handles GET /bills/:id/payments
func (h *BillHandler) ListPayments(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "id is not a valid UUID")
		return
	}

	payments, err := h.payments.ListPayments(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = dto.NewPaymentResponse(&payments[i])
	}
	h.SuccessWithMeta(c, responses, len(responses), 0)
}

// ListUnpaid handles GET /customers/:id/bills
func (h *BillHandler) ListUnpaid(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "id is not a valid UUID")
		return
	}

	bills, err := h.bills.ListUnpaid(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]dto.BillResponse, len(bills))
	for i := range bills {
		responses[i] = dto.NewBillResponse(&bills[i])
	}
	h.SuccessWithMeta(c, responses, len(responses), 0)
}
