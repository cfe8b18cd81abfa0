package pricing

import (
	"math"

	"github.com/windsor-dist/storefront-api/internal/discount"
)

// DefaultVATRate is the Thai value-added tax rate.
const DefaultVATRate = 0.07

// Item describes a line item used for totals calculation.
type Item struct {
	Qty       int
	UnitPrice Money
	Total     Money
}

// Summary aggregates computed order totals. It is always derived in full from
// its inputs, never updated incrementally.
type Summary struct {
	Subtotal      Money  `json:"subtotal"`
	Discount      Money  `json:"discount"`
	DiscountCode  string `json:"discountCode,omitempty"`
	VAT           Money  `json:"vat"`
	Shipping      Money  `json:"shipping"`
	Total         Money  `json:"total"`
	ItemCount     int    `json:"itemCount"`
	TotalQuantity int    `json:"totalQuantity"`
}

// Compute folds line items, an optional discount rule, a VAT rate, and a
// shipping cost into order totals. VAT is rounded once at the subtotal level
// so per-line rounding drift cannot accumulate. The grand total is clamped at
// zero and the discount never exceeds the subtotal.
func Compute(items []Item, rule *discount.Rule, vatRate float64, shipping Money) Summary {
	s := Summary{ItemCount: len(items)}
	for _, it := range items {
		total := it.Total
		if total == 0 && it.Qty > 0 {
			total = Money(it.Qty) * it.UnitPrice
		}
		if total < 0 {
			continue
		}
		s.Subtotal += total
		s.TotalQuantity += it.Qty
	}

	if rule != nil {
		s.Discount = discount.Compute(*rule, s.Subtotal)
		if s.Discount > 0 {
			s.DiscountCode = rule.Code
		}
	}
	if s.Discount > s.Subtotal {
		s.Discount = s.Subtotal
	}

	if vatRate <= 0 {
		vatRate = DefaultVATRate
	}
	s.VAT = Money(math.Round(float64(s.Subtotal) * vatRate))

	if shipping > 0 {
		s.Shipping = shipping
	}
	s.Total = s.Subtotal - s.Discount + s.VAT + s.Shipping
	if s.Total < 0 {
		s.Total = 0
	}
	return s
}
