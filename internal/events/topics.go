package events

// Topic constants for domain events emitted by the storefront.
const (
	TopicOrderCreated       = "order.created"
	TopicOrderStatusChanged = "order.status_changed"
	TopicDiscountApplied    = "discount.applied"
)

// DefaultTopics returns the canonical list of emitted topics.
func DefaultTopics() []string {
	return []string{
		TopicOrderCreated,
		TopicOrderStatusChanged,
		TopicDiscountApplied,
	}
}
