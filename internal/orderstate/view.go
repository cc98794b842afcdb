// Package orderstate maps an order's status code to what each role may see
// and do. Transitions happen only on the backend; after every accepted
// mutation the order is re-fetched for authoritative state.
package orderstate

import "github.com/huynhtuanvt18/pah-mobile-client/internal/models"

type Role int

const (
	RoleBuyer Role = iota + 1
	RoleSeller
)

// Action is one mutating operation a role may trigger on an order.
type Action int

const (
	ActionBuyerConfirmReceipt Action = iota + 1
	ActionBuyerRequestCancel
	ActionSellerConfirm
	ActionSellerReject
	ActionSellerDeliver
	ActionSellerApproveCancel
	ActionSellerRejectCancel
)

// CancelReasons is the fixed list a seller must pick from when rejecting
// or cancelling an order.
var CancelReasons = []string{
	"Not enough stock",
	"Items damaged during preparation",
	"Cannot deliver on time",
	"Product does not match description",
	"Technical issue",
}

// View is what a screen renders for one order and role.
type View struct {
	Label   string
	Note    string
	Actions []Action
	// Busy disables the action area while a mutation is in flight.
	Busy bool
}

// For builds the view for an order. Terminal statuses never expose actions.
func For(order models.Order, role Role, busy bool) View {
	v := View{Busy: busy}

	switch order.Status {
	case models.OrderWaitingSellerConfirm:
		v.Label = "Waiting for confirmation"
		if role == RoleBuyer {
			v.Note = "The seller has not confirmed your order yet."
			v.Actions = []Action{ActionBuyerRequestCancel}
		} else {
			v.Note = "Confirm the order to start preparing it, or reject it with a reason."
			v.Actions = []Action{ActionSellerConfirm, ActionSellerReject}
		}
	case models.OrderReadyForPickup:
		v.Label = "Waiting for pickup"
		if role == RoleBuyer {
			v.Note = "The seller is preparing your order for the carrier."
		} else {
			v.Note = "Hand the package to the carrier to start delivery."
			v.Actions = []Action{ActionSellerDeliver}
		}
	case models.OrderDelivering:
		v.Label = "In transit"
		v.Note = "The carrier is delivering the order."
	case models.OrderDelivered:
		v.Label = "Delivered"
		if role == RoleBuyer {
			v.Note = "Confirm that you received the order as described."
			v.Actions = []Action{ActionBuyerConfirmReceipt}
		} else {
			v.Note = "Waiting for the buyer to confirm receipt."
		}
	case models.OrderDone:
		v.Label = "Completed"
		v.Note = "The order is complete."
	case models.OrderCancelApprovalPending:
		if role == RoleBuyer {
			v.Label = "Waiting for the seller to cancel"
			v.Note = "Your cancellation request is awaiting the seller's approval."
		} else {
			v.Label = "Cancellation requested"
			v.Note = "The buyer asked to cancel this order."
			v.Actions = []Action{ActionSellerApproveCancel, ActionSellerRejectCancel}
		}
	case models.OrderCancelledByBuyer:
		v.Label = "Cancelled by buyer"
		if order.OrderCancellation != nil {
			v.Note = order.OrderCancellation.Reason
		}
	case models.OrderCancelledBySeller:
		v.Label = "Cancelled by seller"
		if order.OrderCancellation != nil {
			v.Note = order.OrderCancellation.Reason
		}
	default:
		v.Label = "Unknown status"
	}

	// Never expose actions while a request is outstanding.
	if busy {
		v.Actions = nil
	}
	return v
}

// Allowed reports whether the role may trigger the action in the order's
// current status.
func Allowed(order models.Order, role Role, action Action) bool {
	for _, a := range For(order, role, false).Actions {
		if a == action {
			return true
		}
	}
	return false
}
