package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shop/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderHandler handles order API endpoints
type OrderHandler struct {
	BaseHandler
	repo trade.OrderRepository
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(repo trade.OrderRepository) *OrderHandler {
	return &OrderHandler{repo: repo}
}

// CreateOrderRequest represents a request to create a new order
type CreateOrderRequest struct {
	CustomerID  *uint            `json:"customer_id"`
	OrderDate   *time.Time       `json:"order_date" binding:"required"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	Status      *string          `json:"status"`
}

// UpdateOrderRequest represents a request to update an order
type UpdateOrderRequest struct {
	CustomerID  *uint            `json:"customer_id"`
	OrderDate   *time.Time       `json:"order_date"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	Status      *string          `json:"status"`
}

func (r UpdateOrderRequest) fields() map[string]any {
	fields := make(map[string]any)
	if r.CustomerID != nil {
		fields["customer_id"] = *r.CustomerID
	}
	if r.OrderDate != nil {
		fields["order_date"] = *r.OrderDate
	}
	if r.TotalAmount != nil {
		fields["total_amount"] = *r.TotalAmount
	}
	if r.Status != nil {
		fields["status"] = trade.OrderStatus(*r.Status)
	}
	return fields
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	var totalAmount decimal.Decimal
	if req.TotalAmount != nil {
		totalAmount = *req.TotalAmount
	}
	var status trade.OrderStatus
	if req.Status != nil {
		status = trade.OrderStatus(*req.Status)
	}

	order, err := trade.NewOrder(req.CustomerID, *req.OrderDate, totalAmount, status)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), order); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, order)
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.InternalError(c, err)
		return
	}
	h.Success(c, orders)
}

// GetByID handles GET /orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	order, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// Update handles PUT /orders/:id. Status changes are checked for enum
// membership only; any listed value may replace any other.
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if req.Status != nil {
		if err := trade.ValidateOrderStatus(trade.OrderStatus(*req.Status)); err != nil {
			h.HandleDomainError(c, err)
			return
		}
	}

	order, err := h.repo.Update(c.Request.Context(), id, req.fields())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// Delete handles DELETE /orders/:id. Removing an order also removes its
// items, payments and shipments.
func (h *OrderHandler) Delete(c *gin.Context) {
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
