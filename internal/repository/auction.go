package repository

import (
	"context"
	"fmt"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/api"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

// AuctionQuery is the filter set of the auction listing screen.
type AuctionQuery struct {
	MaterialID int
	CategoryID int
	OrderBy    int
	PageNumber int
}

// AuctionPage is a listing page plus the backend's total count.
type AuctionPage struct {
	Auctions []models.Auction `json:"auctionList"`
	Count    int              `json:"count"`
}

type AuctionRepo struct {
	gw *api.Gateway
}

func NewAuctionRepo(gw *api.Gateway) *AuctionRepo {
	return &AuctionRepo{gw: gw}
}

// Home returns the opened-auction highlights for the home screen.
func (r *AuctionRepo) Home(ctx context.Context) (AuctionPage, error) {
	var page AuctionPage
	path := fmt.Sprintf("/auction?status=%d&PageSize=%d&PageNumber=1",
		models.AuctionStatusOpened, HomePageSize)
	if err := r.gw.Get(ctx, path, &page); err != nil {
		return AuctionPage{}, err
	}
	return page, nil
}

// List returns one page of opened auctions matching the filter.
func (r *AuctionRepo) List(ctx context.Context, q AuctionQuery) (AuctionPage, error) {
	if q.PageNumber < 1 {
		q.PageNumber = 1
	}
	var page AuctionPage
	path := fmt.Sprintf("/auction?materialId=%d&categoryId=%d&orderBy=%d&status=%d&PageSize=%d&PageNumber=%d",
		q.MaterialID, q.CategoryID, q.OrderBy, models.AuctionStatusOpened, DefaultPageSize, q.PageNumber)
	if err := r.gw.Get(ctx, path, &page); err != nil {
		return AuctionPage{}, err
	}
	return page, nil
}

func (r *AuctionRepo) Detail(ctx context.Context, auctionID int) (models.Auction, error) {
	var auction models.Auction
	if err := r.gw.Get(ctx, fmt.Sprintf("/auction/%d", auctionID), &auction); err != nil {
		return models.Auction{}, err
	}
	return auction, nil
}

// ByBidder lists the current bidder's auctions in the given status.
func (r *AuctionRepo) ByBidder(ctx context.Context, status, pageNumber int) ([]models.AuctionSummary, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	var auctions []models.AuctionSummary
	path := fmt.Sprintf("/auction/bidder?status=%d&PageSize=%d&PageNumber=%d",
		status, DefaultPageSize, pageNumber)
	if err := r.gw.GetAuth(ctx, path, &auctions); err != nil {
		return nil, err
	}
	return auctions, nil
}

// BySeller lists a seller's auctions in the given status.
func (r *AuctionRepo) BySeller(ctx context.Context, sellerID, status, pageNumber int) ([]models.AuctionSummary, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	var auctions []models.AuctionSummary
	path := fmt.Sprintf("/auction/seller/%d?status=%d&PageSize=%d&PageNumber=%d",
		sellerID, status, DefaultPageSize, pageNumber)
	if err := r.gw.GetAuth(ctx, path, &auctions); err != nil {
		return nil, err
	}
	return auctions, nil
}

// CheckRegistration reports whether the current user has registered to bid.
func (r *AuctionRepo) CheckRegistration(ctx context.Context, auctionID int) (bool, error) {
	var registered bool
	path := fmt.Sprintf("/auction/register/check/%d", auctionID)
	if err := r.gw.GetAuth(ctx, path, &registered); err != nil {
		return false, err
	}
	return registered, nil
}

// CheckWinner reports whether the current user won the auction.
func (r *AuctionRepo) CheckWinner(ctx context.Context, auctionID int) (bool, error) {
	var won bool
	path := fmt.Sprintf("/auction/win/check/current/%d", auctionID)
	if err := r.gw.GetAuth(ctx, path, &won); err != nil {
		return false, err
	}
	return won, nil
}

// AuctionOrderInput creates the order for an auction the user won.
type AuctionOrderInput struct {
	AuctionID   int `json:"auctionId"`
	AddressID   int `json:"addressId"`
	PaymentType int `json:"paymentType"`
}

func (r *AuctionRepo) CreateOrder(ctx context.Context, input AuctionOrderInput) (models.Order, error) {
	var order models.Order
	if err := r.gw.PostAuth(ctx, "/auction/order/create", input, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}
