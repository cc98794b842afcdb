package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/api"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/auth"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/cart"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/checkout"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/config"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/listing"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/orderstate"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/payment"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/repository"
)

// app bundles the wired client for the subcommands.
type app struct {
	cfg     config.Config
	session *auth.Session
	gw      *api.Gateway
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg := config.Load()
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	session := auth.NewSession()
	if token := os.Getenv("PAH_TOKEN"); token != "" {
		session.SetToken(token)
	}

	a := &app{
		cfg:     cfg,
		session: session,
		gw:      api.NewGateway(cfg.APIBaseURL, session),
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	var err error
	switch os.Args[1] {
	case "browse":
		err = a.browse(ctx, os.Args[2:])
	case "order":
		err = a.order(ctx, os.Args[2:])
	case "checkout":
		err = a.checkout(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pah <browse|order|checkout> [flags]")
}

// browse loads the filter lists and the first auction page, then follows
// the scroll-end loop until the listing runs out.
func (a *app) browse(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("browse", flag.ExitOnError)
	categoryID := fs.Int("category", 0, "filter by category id")
	materialID := fs.Int("material", 0, "filter by material id")
	orderBy := fs.Int("sort", 0, "sort order")
	pages := fs.Int("pages", 1, "number of pages to fetch")
	if err := fs.Parse(args); err != nil {
		return err
	}

	auctions := repository.NewAuctionRepo(a.gw)
	taxonomy := repository.NewTaxonomyRepo(a.gw)

	query := repository.AuctionQuery{
		CategoryID: *categoryID,
		MaterialID: *materialID,
		OrderBy:    *orderBy,
		PageNumber: 1,
	}

	data, err := listing.LoadBrowseData(ctx, taxonomy, auctions, query)
	if err != nil {
		return fmt.Errorf("browse bootstrap failed: %w", err)
	}

	fmt.Printf("%d categories, %d materials, %d auctions total\n",
		len(data.Categories), len(data.Materials), data.Auctions.Count)

	pager := listing.NewPager(repository.DefaultPageSize)
	pager.Observe(len(data.Auctions.Auctions))
	printAuctions(data.Auctions.Auctions)

	for pager.Page() < *pages {
		page, ok := pager.Next()
		if !ok {
			break
		}
		query.PageNumber = page
		result, err := auctions.List(ctx, query)
		if err != nil {
			return err
		}
		pager.Observe(len(result.Auctions))
		printAuctions(result.Auctions)
	}
	return nil
}

func printAuctions(auctions []models.Auction) {
	for _, a := range auctions {
		fmt.Printf("  #%d  %s  current %s VND  ends %s\n",
			a.ID, a.Title, a.CurrentPrice.String(), a.EndedAt)
	}
}

// order shows one order with the actions the given role may take.
func (a *app) order(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order", flag.ExitOnError)
	roleName := fs.String("role", "buyer", "buyer or seller")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("order: order id required")
	}
	orderID, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("order: invalid order id %q", fs.Arg(0))
	}

	role := orderstate.RoleBuyer
	if *roleName == "seller" {
		role = orderstate.RoleSeller
	}

	flow := orderstate.NewFlow(repository.NewOrderRepo(a.gw))
	order, view, err := flow.View(ctx, orderID, role)
	if err != nil {
		return err
	}

	fmt.Printf("Order #%d  %s\n", order.ID, view.Label)
	if view.Note != "" {
		fmt.Printf("  %s\n", view.Note)
	}
	fmt.Printf("  recipient: %s, %s\n", order.RecipientName, order.RecipientAddress)
	if order.OrderShippingCode != "" {
		// Stand-in for the mobile app's copy-to-clipboard on the tracking code.
		fmt.Printf("  tracking: %s\n", order.OrderShippingCode)
	}
	for _, item := range order.OrderItems {
		fmt.Printf("  %dx %s  %s VND\n", item.Quantity, item.ProductName, item.Price.String())
	}
	if len(view.Actions) > 0 {
		fmt.Printf("  available actions: %v\n", view.Actions)
	}
	return nil
}

// checkout builds a cart from product ids, quotes shipping and pays.
func (a *app) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	method := fs.Int("method", checkout.MethodWallet, "payment method: 1 wallet, 2 gateway")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("checkout: at least one product id required")
	}

	products := repository.NewProductRepo(a.gw)
	store := cart.NewStore()
	for _, arg := range fs.Args() {
		productID, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("checkout: invalid product id %q", arg)
		}
		p, err := products.Detail(ctx, productID)
		if err != nil {
			return err
		}
		item := cart.Item{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Weight:    p.Weight,
			Quantity:  1,
			Type:      p.Type,
			Seller:    p.Seller,
		}
		if len(p.ImageURLs) > 0 {
			item.ImageURL = p.ImageURLs[0]
		}
		if err := store.Add(item); err != nil {
			return err
		}
	}

	bridge := payment.NewCallbackBridge(a.cfg.BridgeAddr)
	go func() {
		if err := bridge.Start(); err != nil {
			log.WithField("error", err.Error()).Error("Payment bridge stopped")
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = bridge.Stop(shutdownCtx)
	}()

	orch := checkout.NewOrchestrator(
		store,
		repository.NewAddressRepo(a.gw),
		repository.NewShippingRepo(a.cfg.ShippingURL, a.cfg.ShippingToken, a.cfg.ShippingShopID),
		repository.NewWalletRepo(a.gw),
		repository.NewOrderRepo(a.gw),
		payment.NewGatewayClient(a.cfg.GatewayURL, a.cfg.GatewayAppID, a.cfg.GatewayAppUser, a.cfg.GatewayKey),
		bridge,
	)

	summary, err := orch.Prepare(ctx)
	if err != nil {
		return err
	}
	if !summary.HasAddress {
		return checkout.ErrNoAddress
	}

	fmt.Printf("Shipping to %s, %s\n", summary.Address.RecipientName, summary.Address.Street)
	for _, q := range summary.Quotes {
		if q.Unavailable {
			fmt.Printf("  seller %s: shipping unavailable\n", q.Group.Seller.Name)
			continue
		}
		fmt.Printf("  seller %s: %s VND shipping, delivery around %s\n",
			q.Group.Seller.Name, q.ShippingCost.String(),
			time.Unix(q.LeadTime, 0).Format("02/01/2006"))
	}
	fmt.Printf("Subtotal %s + shipping %s = %s VND\n",
		summary.Subtotal.String(), summary.TotalShipping.String(), summary.GrandTotal().String())

	if err := orch.SelectPaymentMethod(*method); err != nil {
		return err
	}
	if !orch.CanCheckout() {
		return checkout.ErrNoPaymentMethod
	}

	result, err := orch.Checkout(ctx)
	if err != nil {
		return err
	}
	if result.OrderCreated {
		fmt.Println("Checkout complete, order created")
	} else {
		fmt.Printf("Checkout did not complete (code %d)\n", result.Code)
	}
	return nil
}
