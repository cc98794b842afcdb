package cart

import (
	"github.com/shopspring/decimal"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

// SellerGroup is the per-seller partition of the cart used by checkout to
// quote shipping and build the order payload. Derived, never persisted.
type SellerGroup struct {
	Seller   models.Seller
	Products []Item
}

// Subtotal returns sum(price * quantity) over the group's lines.
func (g SellerGroup) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range g.Products {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Weight returns the chargeable weight in grams, sum(weight * quantity).
func (g SellerGroup) Weight() int {
	weight := 0
	for _, item := range g.Products {
		weight += item.Weight * item.Quantity
	}
	return weight
}

// GroupBySeller partitions the cart by seller id. Groups appear in
// first-seen seller order and each group's lines keep the cart order, so
// grouping the same cart twice yields the same result. Flattening the
// groups restores the cart exactly.
func GroupBySeller(items []Item) []SellerGroup {
	var groups []SellerGroup
	index := make(map[int]int)

	for _, item := range items {
		i, ok := index[item.Seller.ID]
		if !ok {
			i = len(groups)
			index[item.Seller.ID] = i
			groups = append(groups, SellerGroup{Seller: item.Seller})
		}
		groups[i].Products = append(groups[i].Products, item)
	}

	return groups
}
