package repositories

import (
	"gorm.io/gorm"

	"github.com/firelovers/storefront/app/models"
)

// ReviewRepository handles relational-database operations for Review.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create persists a new review record.
func (r *ReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// ByProduct returns every review for a product, newest first.
func (r *ReviewRepository) ByProduct(productID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("product_id = ?", productID).Order("id desc").Find(&reviews).Error
	return reviews, err
}

// AverageScore computes the mean score across all reviews of a product.
// count is 0 when the product has no reviews yet.
func (r *ReviewRepository) AverageScore(productID string) (avg float64, count int64, err error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err = r.db.Model(&models.Review{}).
		Select("coalesce(avg(score), 0) as avg, count(*) as count").
		Where("product_id = ?", productID).
		Scan(&row).Error
	return row.Avg, row.Count, err
}
