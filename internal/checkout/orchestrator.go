// Package checkout orchestrates one checkout attempt: address resolution,
// per-seller shipping quotes, the payment gate and order creation.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/cart"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/metrics"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/patterns"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/payment"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/repository"
)

// Payment methods offered at checkout.
const (
	MethodNone    = 0
	MethodWallet  = 1
	MethodZaloPay = 2
)

// Completion codes handed to the completion screen. Gateway failure and
// cancellation pass the bridge's own codes through.
const (
	CompletionSuccess = 1
	CompletionFailed  = 2
)

var (
	ErrEmptyCart           = errors.New("checkout: cart is empty")
	ErrNoAddress           = errors.New("checkout: no shipping address")
	ErrNoPaymentMethod     = errors.New("checkout: no payment method selected")
	ErrInsufficientBalance = errors.New("checkout: wallet balance is insufficient")
	ErrShippingUnavailable = errors.New("checkout: shipping is unavailable for part of the cart")
	ErrCheckoutNotPrepared = errors.New("checkout: prepare has not run")
)

// GroupQuote is one seller group with its shipping figures. A failed quote
// marks the group unavailable instead of pretending the cost is zero.
type GroupQuote struct {
	Group        cart.SellerGroup
	ShippingCost decimal.Decimal
	LeadTime     int64
	Unavailable  bool
}

// Summary is the state shown before confirming: the grouped cart, the
// resolved address and the running totals.
type Summary struct {
	Quotes        []GroupQuote
	Addresses     []models.Address
	Address       models.Address
	HasAddress    bool
	Subtotal      decimal.Decimal
	TotalShipping decimal.Decimal
}

// GrandTotal is subtotal plus shipping, the amount the buyer pays.
func (s Summary) GrandTotal() decimal.Decimal {
	return s.Subtotal.Add(s.TotalShipping)
}

// Result is the outcome of one checkout attempt.
type Result struct {
	Code         int
	OrderCreated bool
}

// Dependencies, satisfied by the repository and payment packages.
type (
	AddressLister interface {
		ListCurrentUser(ctx context.Context) ([]models.Address, error)
	}
	ShippingQuoter interface {
		Cost(ctx context.Context, req repository.CostRequest) (decimal.Decimal, error)
		LeadTime(ctx context.Context, req repository.LeadTimeRequest) (int64, error)
	}
	WalletFetcher interface {
		CurrentUser(ctx context.Context) (models.Wallet, error)
	}
	OrderPlacer interface {
		Checkout(ctx context.Context, input repository.CheckoutInput) error
	}
	TransactionCreator interface {
		CreateTransaction(ctx context.Context, amount int64) (payment.Session, error)
	}
)

// Orchestrator drives one checkout attempt over the session cart. Nothing
// is committed client-side until order creation succeeds, so a failed
// attempt is always safe to retry.
type Orchestrator struct {
	cart      *cart.Store
	addresses AddressLister
	shipping  ShippingQuoter
	wallet    WalletFetcher
	orders    OrderPlacer
	gateway   TransactionCreator
	bridge    payment.Bridge
	bulkhead  *patterns.Bulkhead

	mu      sync.Mutex
	summary Summary
	method  int
}

func NewOrchestrator(
	store *cart.Store,
	addresses AddressLister,
	shipping ShippingQuoter,
	wallet WalletFetcher,
	orders OrderPlacer,
	gateway TransactionCreator,
	bridge payment.Bridge,
) *Orchestrator {
	return &Orchestrator{
		cart:      store,
		addresses: addresses,
		shipping:  shipping,
		wallet:    wallet,
		orders:    orders,
		gateway:   gateway,
		bridge:    bridge,
		bulkhead:  patterns.NewBulkhead(5, "shipping-quotes"),
	}
}

// Prepare resolves the shipping address and quotes shipping for every
// seller group. Rerunning it with the same address list always selects the
// same address: the default-flagged one, else the first returned.
func (o *Orchestrator) Prepare(ctx context.Context) (Summary, error) {
	items := o.cart.Items()
	if len(items) == 0 {
		return Summary{}, ErrEmptyCart
	}
	groups := cart.GroupBySeller(items)

	addresses, err := o.addresses.ListCurrentUser(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("address resolution failed: %w", err)
	}

	summary := Summary{Addresses: addresses}
	for _, item := range items {
		summary.Subtotal = summary.Subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if len(addresses) == 0 {
		// Degraded mode: no address means no shipping can be quoted. The
		// attempt cannot be confirmed until an address exists.
		for _, g := range groups {
			summary.Quotes = append(summary.Quotes, GroupQuote{Group: g})
		}
		o.setSummary(summary)
		return summary, nil
	}

	selected := addresses[0]
	for _, a := range addresses {
		if a.IsDefault {
			selected = a
			break
		}
	}
	summary.Address = selected
	summary.HasAddress = true

	summary.Quotes, summary.TotalShipping = o.quoteGroups(ctx, groups, selected)
	o.setSummary(summary)
	return summary, nil
}

// SelectAddress switches the destination and re-quotes every group.
func (o *Orchestrator) SelectAddress(ctx context.Context, addressID int) (Summary, error) {
	o.mu.Lock()
	summary := o.summary
	o.mu.Unlock()

	var selected models.Address
	found := false
	for _, a := range summary.Addresses {
		if a.ID == addressID {
			selected = a
			found = true
			break
		}
	}
	if !found {
		return Summary{}, fmt.Errorf("checkout: unknown address %d", addressID)
	}

	groups := cart.GroupBySeller(o.cart.Items())
	summary.Address = selected
	summary.HasAddress = true
	summary.Quotes, summary.TotalShipping = o.quoteGroups(ctx, groups, selected)
	o.setSummary(summary)
	return summary, nil
}

// SelectPaymentMethod records the chosen method.
func (o *Orchestrator) SelectPaymentMethod(method int) error {
	if method != MethodWallet && method != MethodZaloPay {
		return ErrNoPaymentMethod
	}
	o.mu.Lock()
	o.method = method
	o.mu.Unlock()
	return nil
}

// CanCheckout is the confirm-button gate: an address exists and a payment
// method is selected.
func (o *Orchestrator) CanCheckout() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.method != MethodNone && len(o.summary.Addresses) > 0
}

// quoteGroups fans out one cost and one lead-time request per seller group
// and joins. A failed branch marks only its own group unavailable; the
// other groups' figures are unaffected.
func (o *Orchestrator) quoteGroups(ctx context.Context, groups []cart.SellerGroup, dest models.Address) ([]GroupQuote, decimal.Decimal) {
	quotes := make([]GroupQuote, len(groups))

	var wg sync.WaitGroup
	for i, g := range groups {
		wg.Add(1)
		go func(i int, g cart.SellerGroup) {
			defer wg.Done()
			quotes[i] = GroupQuote{Group: g}

			err := o.bulkhead.Execute(func() error {
				cost, err := o.shipping.Cost(ctx, repository.CostRequest{
					ServiceTypeID:  repository.StandardServiceType,
					FromDistrictID: g.Seller.DistrictID,
					FromWardCode:   g.Seller.WardCode,
					ToDistrictID:   dest.DistrictID,
					ToWardCode:     dest.WardCode,
					Weight:         g.Weight(),
				})
				if err != nil {
					return err
				}

				leadTime, err := o.shipping.LeadTime(ctx, repository.LeadTimeRequest{
					ServiceID:      repository.StandardServiceID,
					FromDistrictID: g.Seller.DistrictID,
					FromWardCode:   g.Seller.WardCode,
					ToDistrictID:   dest.DistrictID,
					ToWardCode:     dest.WardCode,
				})
				if err != nil {
					return err
				}

				quotes[i].ShippingCost = cost
				quotes[i].LeadTime = leadTime
				return nil
			})
			if err != nil {
				quotes[i].Unavailable = true
				metrics.ShippingQuotesTotal.WithLabelValues("failed").Inc()
				log.WithFields(log.Fields{
					"seller_id": g.Seller.ID,
					"error":     err.Error(),
				}).Warn("Shipping quote failed for seller group")
				return
			}
			metrics.ShippingQuotesTotal.WithLabelValues("success").Inc()
		}(i, g)
	}
	wg.Wait()

	total := decimal.Zero
	for _, q := range quotes {
		if !q.Unavailable {
			total = total.Add(q.ShippingCost)
		}
	}
	return quotes, total
}

// Checkout runs the payment gate and creates the order. The cart is emptied
// only after the backend accepts the order; every failure before that
// leaves the cart intact and the attempt retryable.
func (o *Orchestrator) Checkout(ctx context.Context) (Result, error) {
	o.mu.Lock()
	summary := o.summary
	method := o.method
	o.mu.Unlock()

	if len(summary.Quotes) == 0 {
		return Result{}, ErrCheckoutNotPrepared
	}
	if !summary.HasAddress {
		return Result{}, ErrNoAddress
	}
	if method == MethodNone {
		return Result{}, ErrNoPaymentMethod
	}
	for _, q := range summary.Quotes {
		if q.Unavailable {
			return Result{}, fmt.Errorf("%w: seller %d", ErrShippingUnavailable, q.Group.Seller.ID)
		}
	}

	switch method {
	case MethodWallet:
		return o.walletCheckout(ctx, summary)
	case MethodZaloPay:
		return o.gatewayCheckout(ctx, summary)
	}
	return Result{}, ErrNoPaymentMethod
}

// walletCheckout gates on the available balance: the grand total must be
// strictly below it, an exactly-equal balance is rejected.
func (o *Orchestrator) walletCheckout(ctx context.Context, summary Summary) (Result, error) {
	wallet, err := o.wallet.CurrentUser(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("wallet fetch failed: %w", err)
	}

	if !summary.GrandTotal().LessThan(wallet.AvailableBalance) {
		metrics.CheckoutsTotal.WithLabelValues("insufficient_balance").Inc()
		return Result{}, ErrInsufficientBalance
	}

	return o.placeOrder(ctx, summary, MethodWallet)
}

// gatewayCheckout runs the external payment handshake. The gateway settles
// its own funds check, so no balance gate applies here. Only a success
// return code creates the order.
func (o *Orchestrator) gatewayCheckout(ctx context.Context, summary Summary) (Result, error) {
	session, err := o.gateway.CreateTransaction(ctx, summary.GrandTotal().IntPart())
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues("gateway_error").Inc()
		return Result{}, fmt.Errorf("gateway transaction failed: %w", err)
	}

	event, err := o.bridge.Pay(ctx, session.Token)
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues("gateway_error").Inc()
		return Result{}, fmt.Errorf("payment bridge failed: %w", err)
	}

	if event.ReturnCode != payment.ReturnCodeSuccess {
		outcome := "failed"
		if event.ReturnCode == payment.ReturnCodeCancelled {
			outcome = "cancelled"
		}
		metrics.CheckoutsTotal.WithLabelValues(outcome).Inc()
		log.WithFields(log.Fields{
			"session_id":  session.ID.String(),
			"return_code": event.ReturnCode,
		}).Warn("Gateway payment did not complete")
		return Result{Code: event.ReturnCode}, nil
	}

	return o.placeOrder(ctx, summary, MethodZaloPay)
}

func (o *Orchestrator) placeOrder(ctx context.Context, summary Summary, method int) (Result, error) {
	input := repository.CheckoutInput{
		Total:       summary.Subtotal,
		PaymentType: method,
		AddressID:   summary.Address.ID,
	}
	for _, q := range summary.Quotes {
		group := repository.CheckoutGroup{
			SellerID:     q.Group.Seller.ID,
			ShippingCost: q.ShippingCost,
			ShippingDate: q.LeadTime,
			Total:        q.Group.Subtotal(),
		}
		for _, item := range q.Group.Products {
			group.Products = append(group.Products, repository.CheckoutItem{
				ProductID: item.ProductID,
				Price:     item.Price,
				Quantity:  item.Quantity,
			})
		}
		input.Order = append(input.Order, group)
	}

	if err := o.orders.Checkout(ctx, input); err != nil {
		metrics.CheckoutsTotal.WithLabelValues("order_failed").Inc()
		return Result{Code: CompletionFailed}, fmt.Errorf("order creation failed: %w", err)
	}

	o.cart.Empty()
	metrics.CheckoutsTotal.WithLabelValues("success").Inc()
	log.WithFields(log.Fields{
		"groups": len(input.Order),
		"total":  summary.GrandTotal().String(),
		"method": method,
	}).Info("Checkout completed")

	return Result{Code: CompletionSuccess, OrderCreated: true}, nil
}

func (o *Orchestrator) setSummary(s Summary) {
	o.mu.Lock()
	o.summary = s
	o.mu.Unlock()
}
