package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shop/backend/internal/domain/catalog"
)

// ReviewHandler handles review API endpoints
type ReviewHandler struct {
	BaseHandler
	repo catalog.ReviewRepository
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(repo catalog.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{repo: repo}
}

// CreateReviewRequest represents a request to create a new review
type CreateReviewRequest struct {
	CustomerID *uint      `json:"customer_id"`
	ProductID  *uint      `json:"product_id"`
	Rating     *int       `json:"rating" binding:"required"`
	ReviewText string     `json:"review_text"`
	ReviewDate *time.Time `json:"review_date" binding:"required"`
}

// UpdateReviewRequest represents a request to update a review
type UpdateReviewRequest struct {
	CustomerID *uint      `json:"customer_id"`
	ProductID  *uint      `json:"product_id"`
	Rating     *int       `json:"rating"`
	ReviewText *string    `json:"review_text"`
	ReviewDate *time.Time `json:"review_date"`
}

func (r UpdateReviewRequest) fields() map[string]any {
	fields := make(map[string]any)
	if r.CustomerID != nil {
		fields["customer_id"] = *r.CustomerID
	}
	if r.ProductID != nil {
		fields["product_id"] = *r.ProductID
	}
	if r.Rating != nil {
		fields["rating"] = *r.Rating
	}
	if r.ReviewText != nil {
		fields["review_text"] = *r.ReviewText
	}
	if r.ReviewDate != nil {
		fields["review_date"] = *r.ReviewDate
	}
	return fields
}

// RegisterRoutes registers review routes
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews")
	{
		reviews.POST("", h.Create)
		reviews.GET("", h.List)
		reviews.GET("/:id", h.GetByID)
		reviews.PUT("/:id", h.Update)
		reviews.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	review, err := catalog.NewReview(req.CustomerID, req.ProductID, *req.Rating, req.ReviewText, *req.ReviewDate)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), review); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, review)
}

// List handles GET /reviews
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.InternalError(c, err)
		return
	}
	h.Success(c, reviews)
}

// GetByID handles GET /reviews/:id
func (h *ReviewHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	review, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, review)
}

// Update handles PUT /reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if req.Rating != nil {
		if err := catalog.ValidateRating(*req.Rating); err != nil {
			h.HandleDomainError(c, err)
			return
		}
	}

	review, err := h.repo.Update(c.Request.Context(), id, req.fields())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, review)
}

// Delete handles DELETE /reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
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
