package models

import "github.com/shopspring/decimal"

// Product types, as dictated by the backend.
const (
	ProductTypeRegular    = 1
	ProductTypeAuctionWon = 2
)

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int             `json:"categoryId"`
	MaterialID  int             `json:"materialId"`
	// Weight in grams, used as the chargeable weight for shipping quotes.
	Weight    int      `json:"weight"`
	Dimension string   `json:"dimension"`
	Origin    string   `json:"origin"`
	Type      int      `json:"type"`
	Ratings   float64  `json:"ratings"`
	ImageURLs []string `json:"imageUrls"`
	Seller    Seller   `json:"seller"`
}
