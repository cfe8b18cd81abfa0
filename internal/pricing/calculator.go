package pricing

import "math"

// Per-square-meter cost constants for configurable products. Frame cost is the
// uPVC baseline; glass cost is the cheapest tier (clear 5mm). A per-material
// frame rate would come from the catalog in a later iteration.
const (
	FramePricePerSqm Money = 8000
	BaseGlassPerSqm  Money = 800
)

// Quote breaks a computed unit price into its components so the configurator
// can display them.
type Quote struct {
	AreaSqm       float64 `json:"areaSqm"`
	PricePerSqm   Money   `json:"pricePerSqm"`
	FramePrice    Money   `json:"framePrice"`
	GlassPrice    Money   `json:"glassPrice"`
	RawPrice      Money   `json:"rawPrice"`
	BasePrice     Money   `json:"basePrice"`
	UnitPrice     Money   `json:"unitPrice"`
	FloorApplied  bool    `json:"floorApplied"`
	BasePriceOnly bool    `json:"basePriceOnly"`
}

// UnitPrice computes the unit price for a product given its base price,
// constraint model, and the customer's configuration. It is total: invalid or
// missing dimensions degrade to the base price, and the result never falls
// below it. Callers gate on Validate before treating the result as final.
func UnitPrice(basePrice Money, model *ConstraintModel, cfg Configuration) Money {
	return ComputeQuote(basePrice, model, cfg).UnitPrice
}

// ComputeQuote is UnitPrice with the full breakdown.
func ComputeQuote(basePrice Money, model *ConstraintModel, cfg Configuration) Quote {
	q := Quote{BasePrice: basePrice, UnitPrice: basePrice}
	if model == nil {
		q.BasePriceOnly = true
		return q
	}
	if cfg.WidthCm <= 0 || cfg.HeightCm <= 0 {
		// Price preview before sizing: flat base price, no area computed.
		q.BasePriceOnly = true
		return q
	}

	q.AreaSqm = (cfg.WidthCm / 100) * (cfg.HeightCm / 100)
	q.FramePrice = FramePricePerSqm
	q.GlassPrice = BaseGlassPerSqm
	if glass := model.GlassByID(cfg.GlassID); glass != nil {
		q.GlassPrice += glass.PricePerSqm
	}
	q.PricePerSqm = q.FramePrice + q.GlassPrice
	q.RawPrice = Money(math.Round(float64(q.PricePerSqm) * q.AreaSqm))

	q.UnitPrice = q.RawPrice
	if q.UnitPrice < basePrice {
		q.UnitPrice = basePrice
		q.FloorApplied = true
	}
	return q
}
