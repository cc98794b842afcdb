package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/cart"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/payment"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/repository"
)

//
// ---------- STUBS ----------
//

type stubAddresses struct {
	addresses []models.Address
	err       error
}

func (s *stubAddresses) ListCurrentUser(ctx context.Context) ([]models.Address, error) {
	return s.addresses, s.err
}

type stubShipping struct {
	cost     decimal.Decimal
	leadTime int64
	// failFrom lists origin district ids whose quotes fail.
	failFrom map[int]bool
}

func (s *stubShipping) Cost(ctx context.Context, req repository.CostRequest) (decimal.Decimal, error) {
	if s.failFrom[req.FromDistrictID] {
		return decimal.Zero, errors.New("provider unavailable")
	}
	return s.cost, nil
}

func (s *stubShipping) LeadTime(ctx context.Context, req repository.LeadTimeRequest) (int64, error) {
	if s.failFrom[req.FromDistrictID] {
		return 0, errors.New("provider unavailable")
	}
	return s.leadTime, nil
}

type stubWallet struct {
	balance decimal.Decimal
	err     error
}

func (s *stubWallet) CurrentUser(ctx context.Context) (models.Wallet, error) {
	return models.Wallet{AvailableBalance: s.balance}, s.err
}

type stubOrders struct {
	calls []repository.CheckoutInput
	err   error
}

func (s *stubOrders) Checkout(ctx context.Context, input repository.CheckoutInput) error {
	s.calls = append(s.calls, input)
	return s.err
}

type stubGateway struct {
	amounts []int64
	err     error
}

func (s *stubGateway) CreateTransaction(ctx context.Context, amount int64) (payment.Session, error) {
	s.amounts = append(s.amounts, amount)
	return payment.Session{Token: "zp-token"}, s.err
}

type stubBridge struct {
	code int
}

func (s *stubBridge) Pay(ctx context.Context, token string) (payment.Event, error) {
	return payment.Event{ReturnCode: s.code}, nil
}

//
// ---------- FIXTURES ----------
//

var (
	sellerA = models.Seller{ID: 1, Name: "A", DistrictID: 1442, WardCode: "21211"}
	sellerB = models.Seller{ID: 2, Name: "B", DistrictID: 1820, WardCode: "030712"}

	defaultAddress = models.Address{ID: 7, RecipientName: "Anh", DistrictID: 1542, WardCode: "1B1507", IsDefault: true}
	otherAddress   = models.Address{ID: 8, RecipientName: "Binh", DistrictID: 1443, WardCode: "20308"}
)

func newCart(t *testing.T) *cart.Store {
	t.Helper()
	store := cart.NewStore()
	require.NoError(t, store.Add(cart.Item{
		ProductID: 10, Price: decimal.NewFromInt(100000), Weight: 500, Quantity: 2, Seller: sellerA,
	}))
	require.NoError(t, store.Add(cart.Item{
		ProductID: 11, Price: decimal.NewFromInt(50000), Weight: 300, Quantity: 1, Seller: sellerB,
	}))
	return store
}

type fixture struct {
	store     *cart.Store
	addresses *stubAddresses
	shipping  *stubShipping
	wallet    *stubWallet
	orders    *stubOrders
	gateway   *stubGateway
	bridge    *stubBridge
	orch      *Orchestrator
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		store:     newCart(t),
		addresses: &stubAddresses{addresses: []models.Address{otherAddress, defaultAddress}},
		shipping:  &stubShipping{cost: decimal.NewFromInt(20000), leadTime: 1700000000},
		wallet:    &stubWallet{balance: decimal.NewFromInt(1000000)},
		orders:    &stubOrders{},
		gateway:   &stubGateway{},
		bridge:    &stubBridge{code: payment.ReturnCodeSuccess},
	}
	f.orch = NewOrchestrator(f.store, f.addresses, f.shipping, f.wallet, f.orders, f.gateway, f.bridge)
	return f
}

//
// ---------- TESTS ----------
//

func TestPrepareSelectsDefaultAddress(t *testing.T) {
	f := newFixture(t)

	summary, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaultAddress.ID, summary.Address.ID)

	// Re-running with the same list selects the same address.
	again, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)
	assert.Equal(t, summary.Address.ID, again.Address.ID)
}

func TestPrepareFallsBackToFirstAddress(t *testing.T) {
	f := newFixture(t)
	f.addresses.addresses = []models.Address{otherAddress, {ID: 9}}

	summary, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)
	assert.Equal(t, otherAddress.ID, summary.Address.ID)
}

func TestPrepareDegradedModeWithoutAddresses(t *testing.T) {
	f := newFixture(t)
	f.addresses.addresses = nil

	summary, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)
	assert.False(t, summary.HasAddress)
	assert.True(t, summary.TotalShipping.IsZero())
	require.Len(t, summary.Quotes, 2)

	// The confirm gate stays closed without an address.
	require.NoError(t, f.orch.SelectPaymentMethod(MethodWallet))
	assert.False(t, f.orch.CanCheckout())

	_, err = f.orch.Checkout(context.Background())
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestPrepareComputesTotals(t *testing.T) {
	f := newFixture(t)

	summary, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.Subtotal.Equal(decimal.NewFromInt(250000)))
	// Two groups at 20000 each.
	assert.True(t, summary.TotalShipping.Equal(decimal.NewFromInt(40000)))
	assert.True(t, summary.GrandTotal().Equal(decimal.NewFromInt(290000)))
}

func TestPartialShippingFailureMarksOnlyThatGroup(t *testing.T) {
	f := newFixture(t)
	f.shipping.failFrom = map[int]bool{sellerB.DistrictID: true}

	summary, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Quotes, 2)

	assert.False(t, summary.Quotes[0].Unavailable)
	assert.True(t, summary.Quotes[0].ShippingCost.Equal(decimal.NewFromInt(20000)))
	assert.True(t, summary.Quotes[1].Unavailable)

	// The failed group contributes nothing instead of a fake zero total
	// being silently folded in: it is excluded and flagged.
	assert.True(t, summary.TotalShipping.Equal(decimal.NewFromInt(20000)))

	// Checkout refuses to proceed while a group cannot be shipped.
	require.NoError(t, f.orch.SelectPaymentMethod(MethodWallet))
	_, err = f.orch.Checkout(context.Background())
	assert.ErrorIs(t, err, ErrShippingUnavailable)
	assert.Empty(t, f.orders.calls)
}

func TestWalletCheckoutSuccess(t *testing.T) {
	f := newFixture(t)
	_, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)
	require.NoError(t, f.orch.SelectPaymentMethod(MethodWallet))

	result, err := f.orch.Checkout(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OrderCreated)
	assert.Equal(t, CompletionSuccess, result.Code)

	require.Len(t, f.orders.calls, 1)
	input := f.orders.calls[0]
	assert.Equal(t, MethodWallet, input.PaymentType)
	assert.Equal(t, defaultAddress.ID, input.AddressID)
	require.Len(t, input.Order, 2)
	assert.Equal(t, sellerA.ID, input.Order[0].SellerID)
	assert.True(t, input.Order[0].Total.Equal(decimal.NewFromInt(200000)))

	// Success empties the cart so the attempt cannot repeat.
	assert.Empty(t, f.store.Items())
}

func TestWalletCheckoutRejectsEqualBalance(t *testing.T) {
	f := newFixture(t)
	// Grand total is 290000; an exactly equal balance must be rejected.
	f.wallet.balance = decimal.NewFromInt(290000)

	_, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)
	require.NoError(t, f.orch.SelectPaymentMethod(MethodWallet))

	_, err = f.orch.Checkout(context.Background())
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Empty(t, f.orders.calls)
	assert.Len(t, f.store.Items(), 2)
}

func TestWalletCheckoutAllowsStrictlyGreaterBalance(t *testing.T) {
	f := newFixture(t)
	f.wallet.balance = decimal.NewFromInt(290001)

	_, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)
	require.NoError(t, f.orch.SelectPaymentMethod(MethodWallet))

	result, err := f.orch.Checkout(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OrderCreated)
}

func TestGatewaySuccessCreatesOrderOnce(t *testing.T) {
	f := newFixture(t)
	_, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)
	require.NoError(t, f.orch.SelectPaymentMethod(MethodZaloPay))

	result, err := f.orch.Checkout(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OrderCreated)

	require.Len(t, f.gateway.amounts, 1)
	assert.Equal(t, int64(290000), f.gateway.amounts[0])
	assert.Len(t, f.orders.calls, 1)
	assert.Empty(t, f.store.Items())
}

func TestGatewaySkipsBalanceGate(t *testing.T) {
	f := newFixture(t)
	// An empty wallet must not block the gateway path.
	f.wallet.balance = decimal.Zero

	_, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)
	require.NoError(t, f.orch.SelectPaymentMethod(MethodZaloPay))

	result, err := f.orch.Checkout(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OrderCreated)
}

func TestGatewayFailureDoesNotCreateOrder(t *testing.T) {
	for _, code := range []int{payment.ReturnCodeFailed, payment.ReturnCodeCancelled} {
		f := newFixture(t)
		f.bridge.code = code

		_, err := f.orch.Prepare(context.Background())
		require.NoError(t, err)
		require.NoError(t, f.orch.SelectPaymentMethod(MethodZaloPay))

		result, err := f.orch.Checkout(context.Background())
		require.NoError(t, err)
		assert.False(t, result.OrderCreated)
		assert.Equal(t, code, result.Code)
		assert.Empty(t, f.orders.calls, "return code %d must not create an order", code)
		assert.Len(t, f.store.Items(), 2, "cart must stay intact on code %d", code)
	}
}

func TestOrderFailureKeepsCart(t *testing.T) {
	f := newFixture(t)
	f.orders.err = errors.New("backend rejected checkout")

	_, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)
	require.NoError(t, f.orch.SelectPaymentMethod(MethodWallet))

	result, err := f.orch.Checkout(context.Background())
	require.Error(t, err)
	assert.Equal(t, CompletionFailed, result.Code)
	assert.False(t, result.OrderCreated)
	assert.Len(t, f.store.Items(), 2)

	// The attempt stays retryable: fixing the backend lets it through.
	f.orders.err = nil
	result, err = f.orch.Checkout(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OrderCreated)
	assert.Empty(t, f.store.Items())
}

func TestSelectAddressRequotes(t *testing.T) {
	f := newFixture(t)
	_, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)

	f.shipping.cost = decimal.NewFromInt(35000)
	summary, err := f.orch.SelectAddress(context.Background(), otherAddress.ID)
	require.NoError(t, err)
	assert.Equal(t, otherAddress.ID, summary.Address.ID)
	assert.True(t, summary.TotalShipping.Equal(decimal.NewFromInt(70000)))

	_, err = f.orch.SelectAddress(context.Background(), 999)
	assert.Error(t, err)
}

func TestCheckoutGateRequiresMethodAndAddress(t *testing.T) {
	f := newFixture(t)
	_, err := f.orch.Prepare(context.Background())
	require.NoError(t, err)

	assert.False(t, f.orch.CanCheckout())
	_, err = f.orch.Checkout(context.Background())
	assert.ErrorIs(t, err, ErrNoPaymentMethod)

	assert.Error(t, f.orch.SelectPaymentMethod(0))
	require.NoError(t, f.orch.SelectPaymentMethod(MethodWallet))
	assert.True(t, f.orch.CanCheckout())
}

func TestCheckoutWithEmptyCart(t *testing.T) {
	f := newFixture(t)
	f.store.Empty()

	_, err := f.orch.Prepare(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCart)
}
