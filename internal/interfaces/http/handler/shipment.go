package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shop/backend/internal/domain/trade"
)

// ShipmentHandler handles shipment API endpoints
type ShipmentHandler struct {
	BaseHandler
	repo trade.ShipmentRepository
}

// NewShipmentHandler creates a new ShipmentHandler
func NewShipmentHandler(repo trade.ShipmentRepository) *ShipmentHandler {
	return &ShipmentHandler{repo: repo}
}

// CreateShipmentRequest represents a request to create a new shipment
type CreateShipmentRequest struct {
	OrderID        *uint      `json:"order_id"`
	ShipmentDate   *time.Time `json:"shipment_date" binding:"required"`
	Carrier        string     `json:"carrier" binding:"required,min=1,max=100"`
	TrackingNumber string     `json:"tracking_number" binding:"required,min=1,max=100"`
}

// UpdateShipmentRequest represents a request to update a shipment
type UpdateShipmentRequest struct {
	OrderID        *uint      `json:"order_id"`
	ShipmentDate   *time.Time `json:"shipment_date"`
	Carrier        *string    `json:"carrier" binding:"omitempty,min=1,max=100"`
	TrackingNumber *string    `json:"tracking_number" binding:"omitempty,min=1,max=100"`
}

func (r UpdateShipmentRequest) fields() map[string]any {
	fields := make(map[string]any)
	if r.OrderID != nil {
		fields["order_id"] = *r.OrderID
	}
	if r.ShipmentDate != nil {
		fields["shipment_date"] = *r.ShipmentDate
	}
	if r.Carrier != nil {
		fields["carrier"] = *r.Carrier
	}
	if r.TrackingNumber != nil {
		fields["tracking_number"] = *r.TrackingNumber
	}
	return fields
}

// RegisterRoutes registers shipment routes
func (h *ShipmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shipments := rg.Group("/shipments")
	{
		shipments.POST("", h.Create)
		shipments.GET("", h.List)
		shipments.GET("/:id", h.GetByID)
		shipments.PUT("/:id", h.Update)
		shipments.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /shipments
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	shipment, err := trade.NewShipment(req.OrderID, *req.ShipmentDate, req.Carrier, req.TrackingNumber)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), shipment); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, shipment)
}

// List handles GET /shipments
func (h *ShipmentHandler) List(c *gin.Context) {
	shipments, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.InternalError(c, err)
		return
	}
	h.Success(c, shipments)
}

// GetByID handles GET /shipments/:id
func (h *ShipmentHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	shipment, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, shipment)
}

// Update handles PUT /shipments/:id
func (h *ShipmentHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	var req UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	shipment, err := h.repo.Update(c.Request.Context(), id, req.fields())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, shipment)
}

// Delete handles DELETE /shipments/:id
func (h *ShipmentHandler) Delete(c *gin.Context) {
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
