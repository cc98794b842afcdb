package models

import "github.com/shopspring/decimal"

type Wallet struct {
	ID               int             `json:"id"`
	UserID           int             `json:"userId"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	LockedBalance    decimal.Decimal `json:"lockedBalance"`
}

// Transaction is one wallet ledger entry.
type Transaction struct {
	ID            int             `json:"id"`
	WalletID      int             `json:"walletId"`
	PaymentMethod int             `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
	Type          int             `json:"type"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Status        int             `json:"status"`
}
