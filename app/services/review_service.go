package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/internal/store"
)

// ReviewRepo is the slice of the review repository the service depends on.
type ReviewRepo interface {
	Create(review *models.Review) error
	ByProduct(productID string) ([]models.Review, error)
	AverageScore(productID string) (avg float64, count int64, err error)
}

// ProductScorer is the slice of the catalog repository needed to keep the
// derived average score current.
type ProductScorer interface {
	FindProduct(ctx context.Context, id string) (models.Product, error)
	SetAverageScore(ctx context.Context, id string, avg float64) (int64, error)
}

// ReviewService persists reviews and recomputes the reviewed product's
// average score after each write. The review and the derived score live in
// different stores, so the recompute can fail independently: the review
// still stands and the failure is reported as ErrPartialFailure.
type ReviewService struct {
	reviews  ReviewRepo
	products ProductScorer
	users    UserFinder
}

func NewReviewService(reviews ReviewRepo, products ProductScorer, users UserFinder) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, users: users}
}

// Create validates both references, persists the review, then recomputes the
// product's average score from all of its reviews.
func (s *ReviewService) Create(ctx context.Context, in models.CreateReviewInput) (models.Review, error) {
	if _, err := s.users.FindByID(in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Review{}, ErrInvalidReference
		}
		return models.Review{}, err
	}
	if _, err := s.products.FindProduct(ctx, in.ProductID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Review{}, ErrInvalidReference
		}
		return models.Review{}, err
	}

	review := models.Review{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Score:     in.Score,
		Content:   in.Content,
	}
	if err := s.reviews.Create(&review); err != nil {
		return models.Review{}, err
	}

	if err := s.recompute(ctx, in.ProductID); err != nil {
		return review, fmt.Errorf("%w: %v", ErrPartialFailure, err)
	}
	return review, nil
}

// ByProduct lists the reviews of a product, newest first.
func (s *ReviewService) ByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	if _, err := s.products.FindProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.reviews.ByProduct(productID)
}

// recompute reads the full review set back and writes the mean score,
// rounded to two decimals, onto the product.
func (s *ReviewService) recompute(ctx context.Context, productID string) error {
	avg, count, err := s.reviews.AverageScore(productID)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	rounded := math.Round(avg*100) / 100
	matched, err := s.products.SetAverageScore(ctx, productID, rounded)
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("product %s vanished before score update", productID)
	}
	return nil
}
