package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/api"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

type OrderRepo struct {
	gw *api.Gateway
}

func NewOrderRepo(gw *api.Gateway) *OrderRepo {
	return &OrderRepo{gw: gw}
}

// statusQuery repeats the Status key once per requested status, the way the
// backend expects multi-status filters.
func statusQuery(statuses []models.OrderStatus, pageNumber int) string {
	q := url.Values{}
	for _, s := range statuses {
		q.Add("Status", strconv.Itoa(int(s)))
	}
	q.Set("PageSize", strconv.Itoa(DefaultPageSize))
	q.Set("PageNumber", strconv.Itoa(pageNumber))
	return q.Encode()
}

// BuyerOrders lists the current buyer's orders in the given statuses.
func (r *OrderRepo) BuyerOrders(ctx context.Context, statuses []models.OrderStatus, pageNumber int) ([]models.Order, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	var orders []models.Order
	if err := r.gw.GetAuth(ctx, "/buyer/order?"+statusQuery(statuses, pageNumber), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SellerOrders lists the current seller's orders in the given statuses.
func (r *OrderRepo) SellerOrders(ctx context.Context, statuses []models.OrderStatus, pageNumber int) ([]models.Order, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	var orders []models.Order
	if err := r.gw.GetAuth(ctx, "/seller/order?"+statusQuery(statuses, pageNumber), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) Detail(ctx context.Context, orderID int) (models.Order, error) {
	var order models.Order
	if err := r.gw.GetAuth(ctx, fmt.Sprintf("/order/%d", orderID), &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// CheckoutItem is one cart line inside a checkout group.
type CheckoutItem struct {
	ProductID int             `json:"productId"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"amount"`
}

// CheckoutGroup is one per-seller partition of the cart with its computed
// shipping figures.
type CheckoutGroup struct {
	SellerID     int             `json:"sellerId"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	// ShippingDate is the provider lead time as a unix timestamp, zero when
	// shipping could not be quoted.
	ShippingDate int64           `json:"shippingDate"`
	Total        decimal.Decimal `json:"total"`
	Products     []CheckoutItem  `json:"products"`
}

// CheckoutInput is the POST /buyer/checkout payload.
type CheckoutInput struct {
	Order       []CheckoutGroup `json:"order"`
	Total       decimal.Decimal `json:"total"`
	PaymentType int             `json:"paymentType"`
	AddressID   int             `json:"addressId"`
}

// Checkout submits the grouped cart. The backend splits it into one order
// per seller.
func (r *OrderRepo) Checkout(ctx context.Context, input CheckoutInput) error {
	return r.gw.PostAuth(ctx, "/buyer/checkout", input, nil)
}

// ConfirmInput is the seller's status decision on a pending order.
type ConfirmInput struct {
	Status  models.OrderStatus `json:"status"`
	Message string             `json:"message"`
}

// SellerConfirm accepts or rejects a pending order. Rejection carries the
// cancellation reason in Message.
func (r *OrderRepo) SellerConfirm(ctx context.Context, orderID int, input ConfirmInput) error {
	return r.gw.PostAuth(ctx, fmt.Sprintf("/seller/order/%d", orderID), input, nil)
}

// Deliver hands the order to the default shipping provider.
func (r *OrderRepo) Deliver(ctx context.Context, orderID int) error {
	return r.gw.PostAuth(ctx, fmt.Sprintf("/seller/order/deliver/%d", orderID), nil, nil)
}

// Complete is the buyer confirming receipt of a delivered order.
func (r *OrderRepo) Complete(ctx context.Context, orderID int) error {
	return r.gw.PostAuth(ctx, fmt.Sprintf("/buyer/order/done/%d", orderID), nil, nil)
}

// CancelRequest is the buyer asking the seller to cancel.
func (r *OrderRepo) CancelRequest(ctx context.Context, orderID int) error {
	return r.gw.PostAuth(ctx, fmt.Sprintf("/buyer/order/cancelrequest/%d", orderID), nil, nil)
}

// ApproveCancelRequest is the seller approving a pending cancellation.
func (r *OrderRepo) ApproveCancelRequest(ctx context.Context, orderID int) error {
	return r.gw.PostAuth(ctx, fmt.Sprintf("/seller/order/cancelrequest/%d", orderID), nil, nil)
}
