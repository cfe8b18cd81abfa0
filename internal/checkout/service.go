package checkout

import (
	"errors"
	"fmt"

	"github.com/windsor-dist/storefront-api/internal/cart"
	"github.com/windsor-dist/storefront-api/internal/discount"
	"github.com/windsor-dist/storefront-api/internal/order"
)

// ErrEmptyCart rejects checkout of a cart with no line items.
var ErrEmptyCart = errors.New("cart is empty")

// Service turns a cart into a committed order.
type Service struct {
	Carts  *cart.Service
	Orders *order.Store
	Rules  *discount.Registry
}

// PlaceOrder converts the cart into an order with an authoritative, freshly
// recomputed pricing summary. The cart is cleared on success. An applied
// discount that no longer resolves fails the checkout instead of silently
// dropping the code the buyer saw.
func (s *Service) PlaceOrder(cartID, notes string) (order.Order, error) {
	if s == nil || s.Carts == nil || s.Orders == nil {
		return order.Order{}, errors.New("checkout service not configured")
	}
	c, summary, err := s.Carts.Get(cartID)
	if err != nil {
		return order.Order{}, err
	}
	if len(c.Items) == 0 {
		return order.Order{}, ErrEmptyCart
	}
	if c.DiscountCode != "" && s.Rules != nil {
		if _, err := s.Rules.Resolve(c.DiscountCode); err != nil {
			return order.Order{}, fmt.Errorf("discount %s: %w", c.DiscountCode, err)
		}
	}

	items := make([]order.Item, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, order.Item{
			ID:        it.ID,
			ProductID: it.ProductID,
			Snapshot: order.ItemSnapshot{
				Name:         it.Snapshot.Name,
				NameTh:       it.Snapshot.NameTh,
				SKU:          it.Snapshot.SKU,
				ThumbnailURL: it.Snapshot.ThumbnailURL,
				PriceAtOrder: it.UnitPrice,
			},
			Configuration: it.Configuration,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			TotalPrice:    it.TotalPrice,
		})
	}

	o := s.Orders.Create(items, summary, notes)

	if summary.DiscountCode != "" && s.Rules != nil {
		s.Rules.MarkUsed(summary.DiscountCode)
	}
	if err := s.Carts.Clear(cartID); err != nil {
		return order.Order{}, err
	}
	return o, nil
}
