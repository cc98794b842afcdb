package repository

import (
	"context"
	"fmt"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/api"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

type SellerRepo struct {
	gw *api.Gateway
}

func NewSellerRepo(gw *api.Gateway) *SellerRepo {
	return &SellerRepo{gw: gw}
}

func (r *SellerRepo) Detail(ctx context.Context, sellerID int) (models.Seller, error) {
	var seller models.Seller
	if err := r.gw.Get(ctx, fmt.Sprintf("/seller/%d", sellerID), &seller); err != nil {
		return models.Seller{}, err
	}
	return seller, nil
}
