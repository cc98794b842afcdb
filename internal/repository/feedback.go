package repository

import (
	"context"
	"fmt"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/api"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

type FeedbackRepo struct {
	gw *api.Gateway
}

func NewFeedbackRepo(gw *api.Gateway) *FeedbackRepo {
	return &FeedbackRepo{gw: gw}
}

// ByProduct lists feedback left on a product, paged.
func (r *FeedbackRepo) ByProduct(ctx context.Context, productID, pageNumber int) ([]models.Feedback, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	var feedbacks []models.Feedback
	path := fmt.Sprintf("/feedback/product/%d?PageSize=%d&PageNumber=%d",
		productID, DefaultPageSize, pageNumber)
	if err := r.gw.Get(ctx, path, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// Create submits feedback for a purchased order item.
func (r *FeedbackRepo) Create(ctx context.Context, input models.FeedbackInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return r.gw.PostAuth(ctx, "/feedback", input, nil)
}
