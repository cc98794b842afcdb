package models

import "github.com/shopspring/decimal"

type Bid struct {
	ID         int             `json:"id"`
	AuctionID  int             `json:"auctionId"`
	BidderID   int             `json:"bidderId"`
	BidderName string          `json:"bidderName"`
	Amount     decimal.Decimal `json:"bidAmount"`
	Date       string          `json:"bidDate"`
}
