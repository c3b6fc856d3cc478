package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shop/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderItemHandler handles order item API endpoints
type OrderItemHandler struct {
	BaseHandler
	repo trade.OrderItemRepository
}

// NewOrderItemHandler creates a new OrderItemHandler
func NewOrderItemHandler(repo trade.OrderItemRepository) *OrderItemHandler {
	return &OrderItemHandler{repo: repo}
}

// CreateOrderItemRequest represents a request to create a new order item
type CreateOrderItemRequest struct {
	OrderID   *uint            `json:"order_id"`
	ProductID *uint            `json:"product_id"`
	Quantity  *int             `json:"quantity" binding:"required,gt=0"`
	ItemPrice *decimal.Decimal `json:"item_price" binding:"required"`
	Status    string           `json:"status"`
}

// UpdateOrderItemRequest represents a request to update an order item
type UpdateOrderItemRequest struct {
	OrderID   *uint            `json:"order_id"`
	ProductID *uint            `json:"product_id"`
	Quantity  *int             `json:"quantity" binding:"omitempty,gt=0"`
	ItemPrice *decimal.Decimal `json:"item_price"`
	Status    *string          `json:"status"`
}

func (r UpdateOrderItemRequest) fields() map[string]any {
	fields := make(map[string]any)
	if r.OrderID != nil {
		fields["order_id"] = *r.OrderID
	}
	if r.ProductID != nil {
		fields["product_id"] = *r.ProductID
	}
	if r.Quantity != nil {
		fields["quantity"] = *r.Quantity
	}
	if r.ItemPrice != nil {
		fields["item_price"] = *r.ItemPrice
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	return fields
}

// RegisterRoutes registers order item routes
func (h *OrderItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/order-items")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.GetByID)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /order-items
func (h *OrderItemHandler) Create(c *gin.Context) {
	var req CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := trade.NewOrderItem(req.OrderID, req.ProductID, *req.Quantity, *req.ItemPrice, req.Status)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, item)
}

// List handles GET /order-items
func (h *OrderItemHandler) List(c *gin.Context) {
	items, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.InternalError(c, err)
		return
	}
	h.Success(c, items)
}

// GetByID handles GET /order-items/:id
func (h *OrderItemHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	item, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// Update handles PUT /order-items/:id
func (h *OrderItemHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	var req UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.repo.Update(c.Request.Context(), id, req.fields())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete handles DELETE /order-items/:id
func (h *OrderItemHandler) Delete(c *gin.Context) {
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
