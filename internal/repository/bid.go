package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/api"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

type BidRepo struct {
	gw *api.Gateway
}

func NewBidRepo(gw *api.Gateway) *BidRepo {
	return &BidRepo{gw: gw}
}

// ByAuction lists bids on an auction, newest first, paged.
func (r *BidRepo) ByAuction(ctx context.Context, auctionID, pageNumber int) ([]models.Bid, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	var bids []models.Bid
	path := fmt.Sprintf("/bid/auction/%d?PageSize=%d&PageNumber=%d",
		auctionID, DefaultPageSize, pageNumber)
	if err := r.gw.Get(ctx, path, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

// History lists the current user's own bids across auctions, paged.
func (r *BidRepo) History(ctx context.Context, pageNumber int) ([]models.Bid, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	var bids []models.Bid
	path := fmt.Sprintf("/bid/user/current?PageSize=%d&PageNumber=%d",
		DefaultPageSize, pageNumber)
	if err := r.gw.GetAuth(ctx, path, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

// Place submits a bid. The backend enforces the bid step and the auction
// timing window.
func (r *BidRepo) Place(ctx context.Context, auctionID int, amount decimal.Decimal) error {
	body := map[string]interface{}{
		"auctionId": auctionID,
		"bidAmount": amount,
	}
	return r.gw.PostAuth(ctx, "/bid", body, nil)
}

// Register pays the entry fee and registers the current user as a bidder.
func (r *BidRepo) Register(ctx context.Context, auctionID int) error {
	return r.gw.PostAuth(ctx, fmt.Sprintf("/auction/register/%d", auctionID), nil, nil)
}
