package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/windsor-dist/storefront-api/internal/pricing"
)

// Snapshot freezes product identity and pricing fields at the moment a line
// item is created, so later catalog changes never alter committed pricing.
type Snapshot struct {
	Name         string        `json:"name"`
	NameTh       string        `json:"nameTh"`
	SKU          string        `json:"sku"`
	ThumbnailURL string        `json:"thumbnailUrl,omitempty"`
	BasePrice    pricing.Money `json:"basePrice"`
}

// LineItem is a priced, quantified configuration owned by exactly one cart.
type LineItem struct {
	ID            string                `json:"id"`
	ProductID     string                `json:"productId"`
	Snapshot      Snapshot              `json:"productSnapshot"`
	Configuration pricing.Configuration `json:"configuration"`
	Quantity      int                   `json:"quantity"`
	UnitPrice     pricing.Money         `json:"unitPrice"`
	TotalPrice    pricing.Money         `json:"totalPrice"`
	AddedAt       time.Time             `json:"addedAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// Cart holds line items and an optionally applied discount code.
type Cart struct {
	ID           string     `json:"id"`
	Items        []LineItem `json:"items"`
	DiscountCode string     `json:"discountCode,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// MemoryStore keeps carts in process memory. Each cart has a single logical
// owner; the mutex only guards the map against concurrent HTTP handlers.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string]*Cart
	now   func() time.Time
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*Cart), now: time.Now}
}

// WithNow overrides the clock, for tests.
func (st *MemoryStore) WithNow(now func() time.Time) *MemoryStore {
	if now != nil {
		st.now = now
	}
	return st
}

// Create allocates a new empty cart.
func (st *MemoryStore) Create() Cart {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := st.now()
	c := &Cart{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	st.carts[c.ID] = c
	return *c
}

// Get returns a copy of the cart with the given id.
func (st *MemoryStore) Get(id string) (Cart, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	c, ok := st.carts[id]
	if !ok {
		return Cart{}, false
	}
	return cloneCart(c), true
}

// Update runs fn against the cart under the store lock. The mutation is
// discarded when fn returns an error.
func (st *MemoryStore) Update(id string, fn func(c *Cart) error) (Cart, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	c, ok := st.carts[id]
	if !ok {
		return Cart{}, ErrNotFound
	}
	scratch := cloneCart(c)
	if err := fn(&scratch); err != nil {
		return Cart{}, err
	}
	scratch.UpdatedAt = st.now()
	st.carts[id] = &scratch
	return cloneCart(&scratch), nil
}

// Delete removes a cart entirely.
func (st *MemoryStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.carts, id)
}

func cloneCart(c *Cart) Cart {
	out := *c
	out.Items = make([]LineItem, len(c.Items))
	copy(out.Items, c.Items)
	return out
}
