package catalog

import (
	"github.com/windsor-dist/storefront-api/internal/pricing"
)

// Category groups products by installation type.
type Category string

// Known categories.
const (
	CategoryWindow    Category = "window"
	CategoryDoor      Category = "door"
	CategoryVinyl     Category = "vinyl"
	CategoryScreen    Category = "screen"
	CategoryAccessory Category = "accessory"
)

// StockStatus describes availability.
type StockStatus string

// Stock states.
const (
	InStock    StockStatus = "in-stock"
	PreOrder   StockStatus = "pre-order"
	OutOfStock StockStatus = "out-of-stock"
)

// Badge marks a promotional state on a product card.
type Badge string

// Badges.
const (
	BadgeBestSeller Badge = "best-seller"
	BadgeNew        Badge = "new"
	BadgeEco        Badge = "eco"
	BadgePromo      Badge = "promo"
)

// Product is a catalog record. Constraints is nil for ready-made products;
// configurable products carry the dimension and option model used by the
// validator and price calculator.
type Product struct {
	ID            string                   `json:"id"`
	SKU           string                   `json:"sku"`
	Name          string                   `json:"name"`
	NameTh        string                   `json:"nameTh"`
	Category      Category                 `json:"category"`
	Series        string                   `json:"series,omitempty"`
	BasePrice     pricing.Money            `json:"basePrice"`
	ThumbnailURL  string                   `json:"thumbnailUrl,omitempty"`
	Rating        float64                  `json:"rating,omitempty"`
	ReviewCount   int                      `json:"reviewCount,omitempty"`
	Badges        []Badge                  `json:"badges,omitempty"`
	Description   string                   `json:"description,omitempty"`
	Features      []string                 `json:"features,omitempty"`
	Specs         map[string]string        `json:"specs,omitempty"`
	StockStatus   StockStatus              `json:"stockStatus"`
	LeadTimeDays  int                      `json:"leadTimeDays,omitempty"`
	Configurable  bool                     `json:"configurable"`
	Constraints   *pricing.ConstraintModel `json:"constraints,omitempty"`
}

// ListItem is the condensed card shape for list responses.
type ListItem struct {
	ID           string        `json:"id"`
	SKU          string        `json:"sku"`
	Name         string        `json:"name"`
	NameTh       string        `json:"nameTh"`
	Category     Category      `json:"category"`
	Series       string        `json:"series,omitempty"`
	BasePrice    pricing.Money `json:"basePrice"`
	ThumbnailURL string        `json:"thumbnailUrl,omitempty"`
	Rating       float64       `json:"rating,omitempty"`
	Badges       []Badge       `json:"badges,omitempty"`
	StockStatus  StockStatus   `json:"stockStatus"`
	Configurable bool          `json:"configurable"`
}

func (p Product) listItem() ListItem {
	return ListItem{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		NameTh:       p.NameTh,
		Category:     p.Category,
		Series:       p.Series,
		BasePrice:    p.BasePrice,
		ThumbnailURL: p.ThumbnailURL,
		Rating:       p.Rating,
		Badges:       p.Badges,
		StockStatus:  p.StockStatus,
		Configurable: p.Configurable,
	}
}
