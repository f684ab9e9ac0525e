package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohammadsaqib2064/onyx-aura/internal/app/service"
	"github.com/mohammadsaqib2064/onyx-aura/internal/errors"
	"github.com/mohammadsaqib2064/onyx-aura/internal/middleware"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

type CreateReviewRequest struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// GetReviewsByProduct returns a product's reviews, newest first.
// GET /api/reviews/product/:productId
func (ctrl *ReviewController) GetReviewsByProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	productID := c.Param("productId")

	reviews, err := ctrl.reviewService.GetReviewsByProduct(productID)
	if err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found for reviews", map[string]interface{}{
				"product_id": productID,
			})
			errors.NotFound(c, "Product not found")
			return
		}
		log.Error("Failed to fetch reviews", err, map[string]interface{}{
			"product_id": productID,
		})
		errors.InternalError(c, "Failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(reviews),
		"data":    reviews,
	})
}

// CreateReview submits a review. No authentication required.
// POST /api/reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid review request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, "Invalid request data")
		return
	}

	review, err := ctrl.reviewService.CreateReview(service.ReviewInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		Email:     req.Email,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrReviewMissingFields),
			stderrors.Is(err, service.ErrInvalidRating),
			stderrors.Is(err, service.ErrInvalidEmail):
			log.Warn("Review validation failed", map[string]interface{}{
				"product_id": req.ProductID,
				"error":      err.Error(),
			})
			errors.BadRequest(c, err.Error())
		case stderrors.Is(err, service.ErrProductNotFound):
			errors.NotFound(c, "Product not found")
		default:
			log.Error("Failed to create review", err, map[string]interface{}{
				"product_id": req.ProductID,
			})
			errors.InternalError(c, "Failed to create review")
		}
		return
	}

	log.Info("Review created successfully", map[string]interface{}{
		"review_id":  review.ID,
		"product_id": review.ProductID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    review,
	})
}
