package orderstate

import (
	"context"
	"errors"
	"sync"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/repository"
)

// ErrActionNotAllowed is returned when the order's status does not permit
// the requested action for that role.
var ErrActionNotAllowed = errors.New("orderstate: action not allowed in current status")

// OrderAPI is the slice of the order repository the flow needs.
type OrderAPI interface {
	Detail(ctx context.Context, orderID int) (models.Order, error)
	SellerConfirm(ctx context.Context, orderID int, input repository.ConfirmInput) error
	Deliver(ctx context.Context, orderID int) error
	Complete(ctx context.Context, orderID int) error
	CancelRequest(ctx context.Context, orderID int) error
	ApproveCancelRequest(ctx context.Context, orderID int) error
}

// Flow executes order mutations, tracks the in-flight flag per order and
// re-fetches after every accepted mutation so the caller always ends up
// with the backend's authoritative state.
type Flow struct {
	orders OrderAPI

	mu   sync.Mutex
	busy map[int]bool
}

func NewFlow(orders OrderAPI) *Flow {
	return &Flow{orders: orders, busy: make(map[int]bool)}
}

// Busy reports whether a mutation on the order is in flight.
func (f *Flow) Busy(orderID int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy[orderID]
}

// View fetches the order and builds its view for the role.
func (f *Flow) View(ctx context.Context, orderID int, role Role) (models.Order, View, error) {
	order, err := f.orders.Detail(ctx, orderID)
	if err != nil {
		return models.Order{}, View{}, err
	}
	return order, For(order, role, f.Busy(orderID)), nil
}

// BuyerConfirmReceipt completes a delivered order.
func (f *Flow) BuyerConfirmReceipt(ctx context.Context, order models.Order) (models.Order, error) {
	return f.run(ctx, order, RoleBuyer, ActionBuyerConfirmReceipt, func() error {
		return f.orders.Complete(ctx, order.ID)
	})
}

// BuyerRequestCancel asks the seller to cancel a pending order.
func (f *Flow) BuyerRequestCancel(ctx context.Context, order models.Order) (models.Order, error) {
	return f.run(ctx, order, RoleBuyer, ActionBuyerRequestCancel, func() error {
		return f.orders.CancelRequest(ctx, order.ID)
	})
}

// SellerConfirm accepts a pending order for preparation.
func (f *Flow) SellerConfirm(ctx context.Context, order models.Order) (models.Order, error) {
	return f.run(ctx, order, RoleSeller, ActionSellerConfirm, func() error {
		return f.orders.SellerConfirm(ctx, order.ID, repository.ConfirmInput{
			Status: models.OrderReadyForPickup,
		})
	})
}

// SellerReject cancels a pending order with a reason from CancelReasons.
func (f *Flow) SellerReject(ctx context.Context, order models.Order, reason string) (models.Order, error) {
	return f.run(ctx, order, RoleSeller, ActionSellerReject, func() error {
		return f.orders.SellerConfirm(ctx, order.ID, repository.ConfirmInput{
			Status:  models.OrderCancelledBySeller,
			Message: reason,
		})
	})
}

// SellerDeliver hands the order to the shipping provider.
func (f *Flow) SellerDeliver(ctx context.Context, order models.Order) (models.Order, error) {
	return f.run(ctx, order, RoleSeller, ActionSellerDeliver, func() error {
		return f.orders.Deliver(ctx, order.ID)
	})
}

// SellerApproveCancel approves the buyer's pending cancellation request.
func (f *Flow) SellerApproveCancel(ctx context.Context, order models.Order) (models.Order, error) {
	return f.run(ctx, order, RoleSeller, ActionSellerApproveCancel, func() error {
		return f.orders.ApproveCancelRequest(ctx, order.ID)
	})
}

// SellerRejectCancel refuses the cancellation and returns the order to
// preparation.
func (f *Flow) SellerRejectCancel(ctx context.Context, order models.Order) (models.Order, error) {
	return f.run(ctx, order, RoleSeller, ActionSellerRejectCancel, func() error {
		return f.orders.SellerConfirm(ctx, order.ID, repository.ConfirmInput{
			Status: models.OrderReadyForPickup,
		})
	})
}

func (f *Flow) run(ctx context.Context, order models.Order, role Role, action Action, mutate func() error) (models.Order, error) {
	if !Allowed(order, role, action) {
		return models.Order{}, ErrActionNotAllowed
	}

	f.mu.Lock()
	if f.busy[order.ID] {
		f.mu.Unlock()
		return models.Order{}, ErrActionNotAllowed
	}
	f.busy[order.ID] = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		delete(f.busy, order.ID)
		f.mu.Unlock()
	}()

	if err := mutate(); err != nil {
		return models.Order{}, err
	}
	return f.orders.Detail(ctx, order.ID)
}
