package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shop/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles payment API endpoints
type PaymentHandler struct {
	BaseHandler
	repo trade.PaymentRepository
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(repo trade.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{repo: repo}
}

// CreatePaymentRequest represents a request to create a new payment
type CreatePaymentRequest struct {
	OrderID       *uint            `json:"order_id"`
	PaymentMethod string           `json:"payment_method" binding:"required"`
	PaymentDate   *time.Time       `json:"payment_date" binding:"required"`
	AmountPaid    *decimal.Decimal `json:"amount_paid" binding:"required"`
}

// UpdatePaymentRequest represents a request to update a payment
type UpdatePaymentRequest struct {
	OrderID       *uint            `json:"order_id"`
	PaymentMethod *string          `json:"payment_method"`
	PaymentDate   *time.Time       `json:"payment_date"`
	AmountPaid    *decimal.Decimal `json:"amount_paid"`
}

func (r UpdatePaymentRequest) fields() map[string]any {
	fields := make(map[string]any)
	if r.OrderID != nil {
		fields["order_id"] = *r.OrderID
	}
	if r.PaymentMethod != nil {
		fields["payment_method"] = trade.PaymentMethod(*r.PaymentMethod)
	}
	if r.PaymentDate != nil {
		fields["payment_date"] = *r.PaymentDate
	}
	if r.AmountPaid != nil {
		fields["amount_paid"] = *r.AmountPaid
	}
	return fields
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("", h.Create)
		payments.GET("", h.List)
		payments.GET("/:id", h.GetByID)
		payments.PUT("/:id", h.Update)
		payments.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	payment, err := trade.NewPayment(req.OrderID, trade.PaymentMethod(req.PaymentMethod), *req.PaymentDate, *req.AmountPaid)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), payment); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, payment)
}

// List handles GET /payments
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.InternalError(c, err)
		return
	}
	h.Success(c, payments)
}

// GetByID handles GET /payments/:id
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	payment, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, payment)
}

// Update handles PUT /payments/:id
func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if req.PaymentMethod != nil {
		if err := trade.ValidatePaymentMethod(trade.PaymentMethod(*req.PaymentMethod)); err != nil {
			h.HandleDomainError(c, err)
			return
		}
	}

	payment, err := h.repo.Update(c.Request.Context(), id, req.fields())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, payment)
}

// Delete handles DELETE /payments/:id
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
