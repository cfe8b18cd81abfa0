package order

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/windsor-dist/storefront-api/internal/pricing"
)

// ErrNotFound indicates the requested order does not exist.
var ErrNotFound = errors.New("order not found")

// Store keeps orders in process memory for the session.
type Store struct {
	mu     sync.Mutex
	orders map[string]Order
	seq    int
	now    func() time.Time
}

// NewStore constructs an empty order store.
func NewStore() *Store {
	return &Store{orders: make(map[string]Order), now: time.Now}
}

// WithNow overrides the clock, for tests.
func (st *Store) WithNow(now func() time.Time) *Store {
	if now != nil {
		st.now = now
	}
	return st
}

// Create persists a new order in pending-payment state and stamps the first
// timeline event.
func (st *Store) Create(items []Item, summary pricing.Summary, notes string) Order {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := st.now()
	st.seq++
	o := Order{
		ID:          uuid.NewString(),
		OrderNumber: fmt.Sprintf("ORD-%d-%03d", now.Year(), st.seq),
		Items:       items,
		Status:      StatusPendingPayment,
		Pricing:     summary,
		Timeline:    []TimelineEvent{{Status: StatusPendingPayment, Timestamp: now}},
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	st.orders[o.ID] = o
	return o
}

// Get returns an order by id.
func (st *Store) Get(id string) (Order, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	o, ok := st.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

// List returns all orders, newest first.
func (st *Store) List() []Order {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]Order, 0, len(st.orders))
	for _, o := range st.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Advance moves an order to a new status, appending a timeline event. The
// transition must be allowed by the order flow.
func (st *Store) Advance(id string, to Status, description string) (Order, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	o, ok := st.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	if !CanTransition(o.Status, to) {
		return Order{}, fmt.Errorf("%s -> %s: %w", o.Status, to, ErrInvalidTransition)
	}
	now := st.now()
	o.Status = to
	o.Timeline = append(o.Timeline, TimelineEvent{Status: to, Timestamp: now, Description: description})
	o.UpdatedAt = now
	st.orders[id] = o
	return o, nil
}
