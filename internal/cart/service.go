package cart

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/windsor-dist/storefront-api/internal/catalog"
	"github.com/windsor-dist/storefront-api/internal/discount"
	"github.com/windsor-dist/storefront-api/internal/pricing"
)

// ErrNotFound indicates the requested cart or line item could not be located.
var ErrNotFound = errors.New("cart not found")

// ErrItemNotFound indicates the line item does not exist in the cart.
var ErrItemNotFound = errors.New("cart item not found")

// ErrInvalidInput is returned when the provided payload is invalid.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError carries the validator verdict for a rejected configuration.
type ValidationError struct {
	Verdict pricing.Verdict
}

func (e *ValidationError) Error() string {
	return "configuration invalid: " + strings.Join(e.Verdict.Reasons, ", ")
}

// ProductSource resolves catalog records for pricing and snapshots.
type ProductSource interface {
	Product(id string) (catalog.Product, bool)
}

// Service encapsulates cart domain operations. Totals are derived values:
// every mutation triggers a full recomputation, nothing is stored.
type Service struct {
	Store    *MemoryStore
	Catalog  ProductSource
	Rules    *discount.Registry
	VATRate  float64
	Shipping pricing.Money
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// AddItemInput is the payload for adding a configured product.
type AddItemInput struct {
	ProductID     string
	Configuration pricing.Configuration
	Quantity      int
}

// CreateCart allocates a new empty cart.
func (s *Service) CreateCart() (Cart, error) {
	if s == nil || s.Store == nil {
		return Cart{}, errors.New("cart service not configured")
	}
	return s.Store.Create(), nil
}

// Get returns a cart and its freshly computed totals.
func (s *Service) Get(cartID string) (Cart, pricing.Summary, error) {
	if s == nil || s.Store == nil {
		return Cart{}, pricing.Summary{}, errors.New("cart service not configured")
	}
	c, ok := s.Store.Get(cartID)
	if !ok {
		return Cart{}, pricing.Summary{}, ErrNotFound
	}
	return c, s.summarize(c), nil
}

// AddItem validates and prices a configuration, then appends it as a line
// item. Adding the same product with an identical configuration merges into
// the existing line, keeping its frozen unit price.
func (s *Service) AddItem(cartID string, in AddItemInput) (Cart, pricing.Summary, error) {
	if s == nil || s.Store == nil || s.Catalog == nil {
		return Cart{}, pricing.Summary{}, errors.New("cart service not configured")
	}
	product, ok := s.Catalog.Product(in.ProductID)
	if !ok {
		return Cart{}, pricing.Summary{}, fmt.Errorf("product %s: %w", in.ProductID, catalog.ErrNotFound)
	}
	if verdict := pricing.Validate(product.Constraints, in.Configuration); !verdict.Valid {
		return Cart{}, pricing.Summary{}, &ValidationError{Verdict: verdict}
	}
	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}
	unitPrice := pricing.UnitPrice(product.BasePrice, product.Constraints, in.Configuration)

	updated, err := s.Store.Update(cartID, func(c *Cart) error {
		now := s.now()
		for i := range c.Items {
			it := &c.Items[i]
			if it.ProductID == in.ProductID && it.Configuration == in.Configuration {
				it.Quantity += qty
				it.TotalPrice = it.UnitPrice * pricing.Money(it.Quantity)
				it.UpdatedAt = now
				return nil
			}
		}
		c.Items = append(c.Items, LineItem{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Snapshot: Snapshot{
				Name:         product.Name,
				NameTh:       product.NameTh,
				SKU:          product.SKU,
				ThumbnailURL: product.ThumbnailURL,
				BasePrice:    product.BasePrice,
			},
			Configuration: in.Configuration,
			Quantity:      qty,
			UnitPrice:     unitPrice,
			TotalPrice:    unitPrice * pricing.Money(qty),
			AddedAt:       now,
			UpdatedAt:     now,
		})
		return nil
	})
	if err != nil {
		return Cart{}, pricing.Summary{}, err
	}
	return updated, s.summarize(updated), nil
}

// UpdateQuantity re-derives the line total from the frozen unit price.
// Quantity is clamped to a minimum of 1; decrementing below 1 is a no-op.
func (s *Service) UpdateQuantity(cartID, itemID string, quantity int) (Cart, pricing.Summary, error) {
	if s == nil || s.Store == nil {
		return Cart{}, pricing.Summary{}, errors.New("cart service not configured")
	}
	if quantity < 1 {
		quantity = 1
	}
	updated, err := s.Store.Update(cartID, func(c *Cart) error {
		for i := range c.Items {
			if c.Items[i].ID != itemID {
				continue
			}
			c.Items[i].Quantity = quantity
			c.Items[i].TotalPrice = c.Items[i].UnitPrice * pricing.Money(quantity)
			c.Items[i].UpdatedAt = s.now()
			return nil
		}
		return ErrItemNotFound
	})
	if err != nil {
		return Cart{}, pricing.Summary{}, err
	}
	return updated, s.summarize(updated), nil
}

// RemoveItem deletes a line item from its owning cart. No soft-delete.
func (s *Service) RemoveItem(cartID, itemID string) (Cart, pricing.Summary, error) {
	if s == nil || s.Store == nil {
		return Cart{}, pricing.Summary{}, errors.New("cart service not configured")
	}
	updated, err := s.Store.Update(cartID, func(c *Cart) error {
		for i := range c.Items {
			if c.Items[i].ID == itemID {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
				return nil
			}
		}
		return ErrItemNotFound
	})
	if err != nil {
		return Cart{}, pricing.Summary{}, err
	}
	return updated, s.summarize(updated), nil
}

// ApplyDiscount resolves and attaches a discount code to the cart.
func (s *Service) ApplyDiscount(cartID, code string) (Cart, pricing.Summary, error) {
	if s == nil || s.Store == nil || s.Rules == nil {
		return Cart{}, pricing.Summary{}, errors.New("cart service not configured")
	}
	if strings.TrimSpace(code) == "" {
		return Cart{}, pricing.Summary{}, fmt.Errorf("discount code required: %w", ErrInvalidInput)
	}
	rule, err := s.Rules.Resolve(code)
	if err != nil {
		return Cart{}, pricing.Summary{}, err
	}
	updated, err := s.Store.Update(cartID, func(c *Cart) error {
		c.DiscountCode = rule.Code
		return nil
	})
	if err != nil {
		return Cart{}, pricing.Summary{}, err
	}
	return updated, s.summarize(updated), nil
}

// RemoveDiscount clears an applied discount code.
func (s *Service) RemoveDiscount(cartID string) (Cart, pricing.Summary, error) {
	if s == nil || s.Store == nil {
		return Cart{}, pricing.Summary{}, errors.New("cart service not configured")
	}
	updated, err := s.Store.Update(cartID, func(c *Cart) error {
		c.DiscountCode = ""
		return nil
	})
	if err != nil {
		return Cart{}, pricing.Summary{}, err
	}
	return updated, s.summarize(updated), nil
}

// Clear removes every line item but keeps the cart.
func (s *Service) Clear(cartID string) error {
	if s == nil || s.Store == nil {
		return errors.New("cart service not configured")
	}
	_, err := s.Store.Update(cartID, func(c *Cart) error {
		c.Items = nil
		c.DiscountCode = ""
		return nil
	})
	return err
}

// summarize recomputes order totals from scratch. A code that no longer
// resolves degrades to "no discount applied" rather than failing the read.
func (s *Service) summarize(c Cart) pricing.Summary {
	items := make([]pricing.Item, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, pricing.Item{Qty: it.Quantity, UnitPrice: it.UnitPrice, Total: it.TotalPrice})
	}
	var rule *discount.Rule
	if c.DiscountCode != "" && s.Rules != nil {
		if r, err := s.Rules.Resolve(c.DiscountCode); err == nil {
			rule = &r
		}
	}
	return pricing.Compute(items, rule, s.VATRate, s.Shipping)
}
