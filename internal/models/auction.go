package models

import "github.com/shopspring/decimal"

// Auction status codes, as dictated by the backend. Listings only ever
// query status 4 (opened).
const (
	AuctionStatusUnassigned         = 1
	AuctionStatusPending            = 2
	AuctionStatusRegistrationOpened = 3
	AuctionStatusOpened             = 4
	AuctionStatusEnded              = 5
	AuctionStatusRejected           = 6
)

// Auction is the full detail record from GET /auction/{id}.
type Auction struct {
	ID                int             `json:"id"`
	ProductID         int             `json:"productId"`
	StaffName         string          `json:"staffName"`
	Title             string          `json:"title"`
	EntryFee          decimal.Decimal `json:"entryFee"`
	StartingPrice     decimal.Decimal `json:"startingPrice"`
	CurrentPrice      decimal.Decimal `json:"currentPrice"`
	Step              decimal.Decimal `json:"step"`
	StartedAt         string          `json:"startedAt"`
	EndedAt           string          `json:"endedAt"`
	RegistrationStart string          `json:"registrationStart"`
	RegistrationEnd   string          `json:"registrationEnd"`
	Status            int             `json:"status"`
	Product           Product         `json:"product"`
	ImageURLs         []string        `json:"imageUrls"`
	Seller            Seller          `json:"seller"`
	NumberOfBids      int             `json:"numberOfBids"`
	NumberOfBidders   int             `json:"numberOfBidders"`
	Winner            User            `json:"winner"`
}

// AuctionSummary is the slimmer shape returned by the bidder and seller
// history listings.
type AuctionSummary struct {
	ID                int             `json:"id"`
	ProductID         int             `json:"productId"`
	Title             string          `json:"title"`
	EntryFee          decimal.Decimal `json:"entryFee"`
	Status            int             `json:"status"`
	StartingPrice     decimal.Decimal `json:"startingPrice"`
	CurrentPrice      decimal.Decimal `json:"currentPrice"`
	StartedAt         string          `json:"startedAt"`
	EndedAt           string          `json:"endedAt"`
	RegistrationStart string          `json:"registrationStart"`
	RegistrationEnd   string          `json:"registrationEnd"`
	ImageURL          string          `json:"imageUrl"`
	IsWon             bool            `json:"isWon"`
}
