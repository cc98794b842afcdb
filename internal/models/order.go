package models

import "github.com/shopspring/decimal"

// OrderStatus is the enumerated order lifecycle code. The set is dictated
// by the backend; the client never computes a transition itself.
type OrderStatus int

const (
	OrderWaitingSellerConfirm  OrderStatus = 1
	OrderReadyForPickup        OrderStatus = 2
	OrderDelivering            OrderStatus = 3
	OrderDelivered             OrderStatus = 4
	OrderDone                  OrderStatus = 5
	OrderCancelApprovalPending OrderStatus = 6
	OrderCancelledByBuyer      OrderStatus = 7
	OrderCancelledBySeller     OrderStatus = 8
)

// Terminal reports whether the order permits no further actions.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderDone, OrderCancelledByBuyer, OrderCancelledBySeller:
		return true
	}
	return false
}

type OrderItem struct {
	ID          int             `json:"id"`
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	ImageURL    string          `json:"imageUrl"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	ProductType int             `json:"productType"`
}

type OrderCancellation struct {
	ID     int    `json:"id"`
	Reason string `json:"reason"`
}

type Order struct {
	ID                int                `json:"id"`
	BuyerID           int                `json:"buyerId"`
	SellerID          int                `json:"sellerId"`
	RecipientName     string             `json:"recipientName"`
	RecipientPhone    string             `json:"recipientPhone"`
	RecipientAddress  string             `json:"recipientAddress"`
	OrderDate         string             `json:"orderDate"`
	TotalAmount       decimal.Decimal    `json:"totalAmount"`
	ShippingCost      decimal.Decimal    `json:"shippingCost"`
	Status            OrderStatus        `json:"status"`
	Seller            Seller             `json:"seller"`
	OrderItems        []OrderItem        `json:"orderItems"`
	OrderShippingCode string             `json:"orderShippingCode"`
	OrderCancellation *OrderCancellation `json:"orderCancellation"`
}
