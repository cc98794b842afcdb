package repository

import (
	"context"
	"fmt"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/api"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

// ProductQuery is the filter set of the product listing screen.
type ProductQuery struct {
	MaterialID int
	CategoryID int
	OrderBy    int
	PageNumber int
}

// ProductPage is a listing page plus the backend's total count.
type ProductPage struct {
	Products []models.Product `json:"productList"`
	Count    int              `json:"count"`
}

type ProductRepo struct {
	gw *api.Gateway
}

func NewProductRepo(gw *api.Gateway) *ProductRepo {
	return &ProductRepo{gw: gw}
}

func (r *ProductRepo) List(ctx context.Context, q ProductQuery) (ProductPage, error) {
	if q.PageNumber < 1 {
		q.PageNumber = 1
	}
	var page ProductPage
	path := fmt.Sprintf("/product?materialId=%d&categoryId=%d&orderBy=%d&PageSize=%d&PageNumber=%d",
		q.MaterialID, q.CategoryID, q.OrderBy, DefaultPageSize, q.PageNumber)
	if err := r.gw.Get(ctx, path, &page); err != nil {
		return ProductPage{}, err
	}
	return page, nil
}

func (r *ProductRepo) Detail(ctx context.Context, productID int) (models.Product, error) {
	var product models.Product
	if err := r.gw.Get(ctx, fmt.Sprintf("/product/%d", productID), &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// BySeller lists a seller's products, paged.
func (r *ProductRepo) BySeller(ctx context.Context, sellerID, pageNumber int) ([]models.Product, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	var products []models.Product
	path := fmt.Sprintf("/product/seller/%d?PageSize=%d&PageNumber=%d",
		sellerID, DefaultPageSize, pageNumber)
	if err := r.gw.Get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}
