package repository

import (
	"context"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/api"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

// TaxonomyRepo serves the category and material filter lists.
type TaxonomyRepo struct {
	gw *api.Gateway
}

func NewTaxonomyRepo(gw *api.Gateway) *TaxonomyRepo {
	return &TaxonomyRepo{gw: gw}
}

func (r *TaxonomyRepo) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.gw.Get(ctx, "/category", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *TaxonomyRepo) Materials(ctx context.Context) ([]models.Material, error) {
	var materials []models.Material
	if err := r.gw.Get(ctx, "/material", &materials); err != nil {
		return nil, err
	}
	return materials, nil
}
