package order

import (
	"errors"
	"time"

	"github.com/windsor-dist/storefront-api/internal/pricing"
)

// Status tracks an order through production and delivery.
type Status string

// Order statuses. Configurable products are custom-made, so the flow includes
// manufacturing and quality-check stages.
const (
	StatusPendingPayment   Status = "pending_payment"
	StatusPaymentConfirmed Status = "payment_confirmed"
	StatusProcessing       Status = "processing"
	StatusManufacturing    Status = "manufacturing"
	StatusQualityCheck     Status = "quality_check"
	StatusReadyToShip      Status = "ready_to_ship"
	StatusShipped          Status = "shipped"
	StatusDelivered        Status = "delivered"
	StatusCompleted        Status = "completed"
	StatusCancelled        Status = "cancelled"
	StatusRefunded         Status = "refunded"
)

// ErrInvalidTransition is returned for a status change the flow does not allow.
var ErrInvalidTransition = errors.New("invalid order status transition")

var transitions = map[Status][]Status{
	StatusPendingPayment:   {StatusPaymentConfirmed, StatusCancelled},
	StatusPaymentConfirmed: {StatusProcessing, StatusCancelled, StatusRefunded},
	StatusProcessing:       {StatusManufacturing, StatusReadyToShip, StatusCancelled},
	StatusManufacturing:    {StatusQualityCheck},
	StatusQualityCheck:     {StatusReadyToShip, StatusManufacturing},
	StatusReadyToShip:      {StatusShipped},
	StatusShipped:          {StatusDelivered},
	StatusDelivered:        {StatusCompleted, StatusRefunded},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ItemSnapshot freezes product identity and the price at order time.
type ItemSnapshot struct {
	Name         string        `json:"name"`
	NameTh       string        `json:"nameTh"`
	SKU          string        `json:"sku"`
	ThumbnailURL string        `json:"thumbnailUrl,omitempty"`
	PriceAtOrder pricing.Money `json:"priceAtOrder"`
}

// Item is a denormalized order line.
type Item struct {
	ID            string                `json:"id"`
	ProductID     string                `json:"productId"`
	Snapshot      ItemSnapshot          `json:"productSnapshot"`
	Configuration pricing.Configuration `json:"configuration"`
	Quantity      int                   `json:"quantity"`
	UnitPrice     pricing.Money         `json:"unitPrice"`
	TotalPrice    pricing.Money         `json:"totalPrice"`
}

// TimelineEvent records a status change.
type TimelineEvent struct {
	Status      Status    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description,omitempty"`
}

// Order is a committed purchase with its derived pricing summary.
type Order struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Items       []Item          `json:"items"`
	Status      Status          `json:"status"`
	Pricing     pricing.Summary `json:"pricing"`
	Timeline    []TimelineEvent `json:"timeline"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
