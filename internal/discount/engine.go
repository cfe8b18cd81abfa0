package discount

import (
	"errors"
	"time"
)

// Rule kinds.
const (
	KindPercentage = "percentage"
	KindFixed      = "fixed"
)

var (
	// ErrNotFound is returned when no rule exists for a code.
	ErrNotFound = errors.New("discount code not found")
	// ErrInactive is returned when the rule is disabled or not yet valid.
	ErrInactive = errors.New("discount code not active")
	// ErrExpired is returned when the rule's validity window has passed.
	ErrExpired = errors.New("discount code expired")
	// ErrUsageLimitReached indicates the code has exhausted its usage quota.
	ErrUsageLimitReached = errors.New("discount code usage limit reached")
)

// Rule captures the runtime constraints of a discount code.
type Rule struct {
	Code           string
	Kind           string
	Value          int64
	MinOrderAmount int64
	MaxDiscount    *int64
	ValidFrom      *time.Time
	ValidTo        *time.Time
	UsageLimit     *int32
	UsedCount      int32
	Active         bool
}

// Resolvable reports whether the rule may be handed to a caller at the given
// instant. Minimum spend is not checked here: an order below MinOrderAmount
// silently yields a zero discount instead of failing resolution.
func (r Rule) Resolvable(now time.Time) error {
	if !r.Active {
		return ErrInactive
	}
	if r.ValidFrom != nil && now.Before(*r.ValidFrom) {
		return ErrInactive
	}
	if r.ValidTo != nil && now.After(*r.ValidTo) {
		return ErrExpired
	}
	if r.UsageLimit != nil && *r.UsageLimit >= 0 && r.UsedCount >= *r.UsageLimit {
		return ErrUsageLimitReached
	}
	return nil
}

// Compute determines the discount amount for a subtotal. The result is total
// and idempotent: below the minimum order amount it is zero, a percentage
// rule is capped by MaxDiscount, and the amount never exceeds the subtotal.
func Compute(r Rule, subtotal int64) int64 {
	if subtotal <= 0 || subtotal < r.MinOrderAmount {
		return 0
	}
	var amount int64
	switch r.Kind {
	case KindPercentage:
		if r.Value <= 0 {
			return 0
		}
		amount = subtotal * r.Value / 100
		if r.MaxDiscount != nil && amount > *r.MaxDiscount {
			amount = *r.MaxDiscount
		}
	case KindFixed:
		amount = r.Value
	default:
		return 0
	}
	if amount > subtotal {
		amount = subtotal
	}
	if amount < 0 {
		return 0
	}
	return amount
}
