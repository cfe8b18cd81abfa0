package discount

import (
	"strings"
	"sync"
	"time"
)

// Registry is an in-memory discount code lookup. Codes are matched
// case-insensitively. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
	now   func() time.Time
}

// NewRegistry constructs a registry holding the provided rules.
func NewRegistry(rules ...Rule) *Registry {
	reg := &Registry{rules: make(map[string]Rule, len(rules)), now: time.Now}
	for _, r := range rules {
		reg.rules[normalize(r.Code)] = r
	}
	return reg
}

// WithNow overrides the clock, for tests.
func (g *Registry) WithNow(now func() time.Time) *Registry {
	if now != nil {
		g.now = now
	}
	return g
}

// Resolve looks up a code and checks that it can currently be applied.
func (g *Registry) Resolve(code string) (Rule, error) {
	g.mu.RLock()
	rule, ok := g.rules[normalize(code)]
	g.mu.RUnlock()
	if !ok {
		return Rule{}, ErrNotFound
	}
	if err := rule.Resolvable(g.now()); err != nil {
		return Rule{}, err
	}
	return rule, nil
}

// MarkUsed increments the usage counter of a code. Unknown codes are ignored.
func (g *Registry) MarkUsed(code string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := normalize(code)
	rule, ok := g.rules[key]
	if !ok {
		return
	}
	rule.UsedCount++
	g.rules[key] = rule
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// SeedRules returns the built-in promotional codes. They mirror the launch
// campaign set and keep the service usable without an external rule source.
func SeedRules() []Rule {
	summerFrom := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	summerTo := time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)
	welcomeTo := time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)
	summerCap := int64(3000)
	summerLimit := int32(100)
	return []Rule{
		{
			Code:           "SUMMER15",
			Kind:           KindPercentage,
			Value:          15,
			MinOrderAmount: 5000,
			MaxDiscount:    &summerCap,
			ValidFrom:      &summerFrom,
			ValidTo:        &summerTo,
			UsageLimit:     &summerLimit,
			UsedCount:      45,
			Active:         true,
		},
		{
			Code:           "WELCOME500",
			Kind:           KindFixed,
			Value:          500,
			MinOrderAmount: 2000,
			ValidTo:        &welcomeTo,
			Active:         true,
		},
	}
}
