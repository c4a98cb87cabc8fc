package controllers

import (
	"errors"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/app/services"
	"github.com/firelovers/storefront/pkg/ctx"
	"github.com/firelovers/storefront/pkg/logger"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// Store creates a review. If the derived score update fails the review is
// still created: the failure is logged and the client sees a 201.
func (ctl *ReviewController) Store(c *ctx.Context) {
	var in models.CreateReviewInput
	if !c.BindJSON(&in) {
		return
	}
	review, err := ctl.reviews.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, services.ErrPartialFailure) {
			logger.WithCtx(c.Context()).Warn("average score update failed",
				"productId", in.ProductID, "error", err)
			c.Created(review)
			return
		}
		fail(c, err)
		return
	}
	c.Created(review)
}

// ByProduct lists all reviews of one product, newest first.
func (ctl *ReviewController) ByProduct(c *ctx.Context) {
	reviews, err := ctl.reviews.ByProduct(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(reviews)
}
