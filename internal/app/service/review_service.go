package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/mohammadsaqib2064/onyx-aura/internal/app/model"
	"github.com/mohammadsaqib2064/onyx-aura/internal/app/repository"
	"github.com/mohammadsaqib2064/onyx-aura/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrReviewMissingFields = errors.New("please provide all required fields: productId, name, email, rating, comment")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrInvalidEmail        = errors.New("please provide a valid email address")
)

var reviewEmailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type ReviewService interface {
	GetReviewsByProduct(productID string) ([]model.Review, error)
	CreateReview(input ReviewInput) (*model.Review, error)
}

type ReviewInput struct {
	ProductID string
	Name      string
	Email     string
	Rating    int
	Comment   string
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// GetReviewsByProduct returns the reviews for one product, newest first.
// An unknown product is an error rather than an empty list, so the API can
// distinguish "no reviews yet" from "no such product".
func (s *reviewService) GetReviewsByProduct(productID string) ([]model.Review, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByProductID(productID)
	if err != nil {
		logger.Error("Failed to fetch reviews", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	return reviews, nil
}

func (s *reviewService) CreateReview(input ReviewInput) (*model.Review, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Comment = strings.TrimSpace(input.Comment)

	if input.ProductID == "" || input.Name == "" || input.Email == "" || input.Rating == 0 || input.Comment == "" {
		return nil, ErrReviewMissingFields
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if !reviewEmailShape.MatchString(input.Email) {
		return nil, ErrInvalidEmail
	}

	if _, err := s.productRepo.FindByID(input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	review := &model.Review{
		ProductID: input.ProductID,
		Name:      input.Name,
		Email:     input.Email,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		logger.Error("Failed to create review", err, map[string]interface{}{
			"product_id": input.ProductID,
		})
		return nil, err
	}

	logger.Info("Review created", map[string]interface{}{
		"review_id":  review.ID,
		"product_id": review.ProductID,
		"rating":     review.Rating,
	})
	return review, nil
}
