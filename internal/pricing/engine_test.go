package pricing

import (
	"testing"

	"github.com/windsor-dist/storefront-api/internal/discount"
)

func TestComputeEmptyCart(t *testing.T) {
	s := Compute(nil, nil, DefaultVATRate, 0)
	if s.Subtotal != 0 || s.VAT != 0 || s.Total != 0 {
		t.Fatalf("empty cart must total zero, got %+v", s)
	}
}

func TestComputeSubtotalAndVATRounding(t *testing.T) {
	items := []Item{
		{Qty: 1, UnitPrice: 12500, Total: 12500},
		{Qty: 2, UnitPrice: 4750, Total: 9500},
	}
	s := Compute(items, nil, DefaultVATRate, 0)
	if s.Subtotal != 22000 {
		t.Fatalf("expected subtotal 22000, got %d", s.Subtotal)
	}
	if s.VAT != 1540 {
		t.Fatalf("expected vat 1540, got %d", s.VAT)
	}
	if s.Total != 23540 {
		t.Fatalf("expected total 23540, got %d", s.Total)
	}
	if s.ItemCount != 2 || s.TotalQuantity != 3 {
		t.Fatalf("unexpected counts: %+v", s)
	}
}

func TestComputePercentageDiscountCapped(t *testing.T) {
	cap := int64(3000)
	rule := &discount.Rule{Code: "SUMMER15", Kind: discount.KindPercentage, Value: 15, MinOrderAmount: 5000, MaxDiscount: &cap, Active: true}

	items := []Item{{Qty: 1, UnitPrice: 22000, Total: 22000}}
	s := Compute(items, rule, DefaultVATRate, 0)
	if s.Discount != 3000 {
		t.Fatalf("expected capped discount 3000, got %d", s.Discount)
	}
	if s.Total != 22000-3000+1540 {
		t.Fatalf("expected total 20540, got %d", s.Total)
	}
	if s.DiscountCode != "SUMMER15" {
		t.Fatalf("expected discount code on summary, got %q", s.DiscountCode)
	}

	// Large subtotal hits the cap, not the raw percentage.
	s = Compute([]Item{{Qty: 1, UnitPrice: 50000, Total: 50000}}, rule, DefaultVATRate, 0)
	if s.Discount != 3000 {
		t.Fatalf("expected capped discount 3000 on 50000, got %d", s.Discount)
	}
}

func TestComputeDiscountIdempotent(t *testing.T) {
	cap := int64(3000)
	rule := &discount.Rule{Code: "SUMMER15", Kind: discount.KindPercentage, Value: 15, MinOrderAmount: 5000, MaxDiscount: &cap, Active: true}
	items := []Item{{Qty: 1, UnitPrice: 22000, Total: 22000}}

	first := Compute(items, rule, DefaultVATRate, 0)
	second := Compute(items, rule, DefaultVATRate, 0)
	if first.Discount != second.Discount {
		t.Fatalf("discount must not stack: %d vs %d", first.Discount, second.Discount)
	}
}

func TestComputeBelowMinimumOrderYieldsZeroDiscount(t *testing.T) {
	rule := &discount.Rule{Code: "SUMMER15", Kind: discount.KindPercentage, Value: 15, MinOrderAmount: 5000, Active: true}
	s := Compute([]Item{{Qty: 1, UnitPrice: 4999, Total: 4999}}, rule, DefaultVATRate, 0)
	if s.Discount != 0 {
		t.Fatalf("expected no discount below minimum order, got %d", s.Discount)
	}
	if s.DiscountCode != "" {
		t.Fatalf("inapplicable rule must not report a code, got %q", s.DiscountCode)
	}
}

func TestComputeFixedDiscountNeverExceedsSubtotal(t *testing.T) {
	rule := &discount.Rule{Code: "WELCOME500", Kind: discount.KindFixed, Value: 500, MinOrderAmount: 0, Active: true}
	s := Compute([]Item{{Qty: 1, UnitPrice: 300, Total: 300}}, rule, DefaultVATRate, 0)
	if s.Discount != 300 {
		t.Fatalf("expected discount clamped to subtotal 300, got %d", s.Discount)
	}
	if s.Total < 0 {
		t.Fatalf("total must never be negative, got %d", s.Total)
	}
}

func TestComputeShippingAdded(t *testing.T) {
	s := Compute([]Item{{Qty: 1, UnitPrice: 10000, Total: 10000}}, nil, DefaultVATRate, 250)
	if s.Shipping != 250 {
		t.Fatalf("expected shipping 250, got %d", s.Shipping)
	}
	if s.Total != 10000+700+250 {
		t.Fatalf("expected total 10950, got %d", s.Total)
	}
}

func TestComputeDerivesLineTotalFromQty(t *testing.T) {
	s := Compute([]Item{{Qty: 3, UnitPrice: 1000}}, nil, DefaultVATRate, 0)
	if s.Subtotal != 3000 {
		t.Fatalf("expected derived subtotal 3000, got %d", s.Subtotal)
	}
}
