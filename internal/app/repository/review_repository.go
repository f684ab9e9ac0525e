package repository

import (
	"github.com/mohammadsaqib2064/onyx-aura/internal/app/model"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByProductID(productID string) ([]model.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

// FindByProductID returns the reviews for one product, newest first.
func (r *reviewRepository) FindByProductID(productID string) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
