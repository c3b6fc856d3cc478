package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shop/backend/internal/domain/inventory"
)

// InventoryTransactionHandler handles inventory transaction API endpoints
type InventoryTransactionHandler struct {
	BaseHandler
	repo inventory.TransactionRepository
}

// NewInventoryTransactionHandler creates a new InventoryTransactionHandler
func NewInventoryTransactionHandler(repo inventory.TransactionRepository) *InventoryTransactionHandler {
	return &InventoryTransactionHandler{repo: repo}
}

// CreateInventoryTransactionRequest represents a request to record a stock movement
type CreateInventoryTransactionRequest struct {
	ProductID       *uint      `json:"product_id"`
	SupplierID      *uint      `json:"supplier_id"`
	TransactionType string     `json:"transaction_type" binding:"required"`
	Quantity        *int       `json:"quantity" binding:"required"`
	TransactionDate *time.Time `json:"transaction_date" binding:"required"`
}

// UpdateInventoryTransactionRequest represents a request to update a stock movement
type UpdateInventoryTransactionRequest struct {
	ProductID       *uint      `json:"product_id"`
	SupplierID      *uint      `json:"supplier_id"`
	TransactionType *string    `json:"transaction_type"`
	Quantity        *int       `json:"quantity"`
	TransactionDate *time.Time `json:"transaction_date"`
}

func (r UpdateInventoryTransactionRequest) fields() map[string]any {
	fields := make(map[string]any)
	if r.ProductID != nil {
		fields["product_id"] = *r.ProductID
	}
	if r.SupplierID != nil {
		fields["supplier_id"] = *r.SupplierID
	}
	if r.TransactionType != nil {
		fields["transaction_type"] = inventory.TransactionType(*r.TransactionType)
	}
	if r.Quantity != nil {
		fields["quantity"] = *r.Quantity
	}
	if r.TransactionDate != nil {
		fields["transaction_date"] = *r.TransactionDate
	}
	return fields
}

// RegisterRoutes registers inventory transaction routes
func (h *InventoryTransactionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	transactions := rg.Group("/inventory-transactions")
	{
		transactions.POST("", h.Create)
		transactions.GET("", h.List)
		transactions.GET("/:id", h.GetByID)
		transactions.PUT("/:id", h.Update)
		transactions.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /inventory-transactions
func (h *InventoryTransactionHandler) Create(c *gin.Context) {
	var req CreateInventoryTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	transaction, err := inventory.NewTransaction(
		req.ProductID,
		req.SupplierID,
		inventory.TransactionType(req.TransactionType),
		*req.Quantity,
		*req.TransactionDate,
	)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), transaction); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, transaction)
}

// List handles GET /inventory-transactions
func (h *InventoryTransactionHandler) List(c *gin.Context) {
	transactions, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.InternalError(c, err)
		return
	}
	h.Success(c, transactions)
}

// GetByID handles GET /inventory-transactions/:id
func (h *InventoryTransactionHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	transaction, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, transaction)
}

// Update handles PUT /inventory-transactions/:id
func (h *InventoryTransactionHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	var req UpdateInventoryTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if req.TransactionType != nil {
		if err := inventory.ValidateTransactionType(inventory.TransactionType(*req.TransactionType)); err != nil {
			h.HandleDomainError(c, err)
			return
		}
	}

	transaction, err := h.repo.Update(c.Request.Context(), id, req.fields())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, transaction)
}

// Delete handles DELETE /inventory-transactions/:id
func (h *InventoryTransactionHandler) Delete(c *gin.Context) {
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
