package pricing

// Money represents a monetary value in whole baht.
type Money = int64

// Range bounds a dimension in centimeters. Step describes the increments the
// configurator UI offers; it is not enforced as a hard constraint.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step,omitempty"`
}

// ColorOption is a selectable frame color. PriceModifier is a flat additive
// amount and is not part of the area-based formula.
type ColorOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameTh        string `json:"nameTh"`
	HexCode       string `json:"hexCode,omitempty"`
	PriceModifier Money  `json:"priceModifier,omitempty"`
}

// GlassOption is a selectable glass type. PricePerSqm is the surcharge per
// square meter on top of the base glass tier.
type GlassOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameTh      string `json:"nameTh"`
	Description string `json:"description,omitempty"`
	PricePerSqm Money  `json:"pricePerSqm"`
}

// ConstraintModel describes the allowed dimensions and options of a
// configurable product. A nil model means the product is not configurable.
type ConstraintModel struct {
	Width  Range         `json:"width"`
	Height Range         `json:"height"`
	Colors []ColorOption `json:"colors,omitempty"`
	Glass  []GlassOption `json:"glass,omitempty"`
}

// GlassByID returns the glass option with the given id, or nil.
func (m *ConstraintModel) GlassByID(id string) *GlassOption {
	if m == nil || id == "" {
		return nil
	}
	for i := range m.Glass {
		if m.Glass[i].ID == id {
			return &m.Glass[i]
		}
	}
	return nil
}

// ColorByID returns the color option with the given id, or nil.
func (m *ConstraintModel) ColorByID(id string) *ColorOption {
	if m == nil || id == "" {
		return nil
	}
	for i := range m.Colors {
		if m.Colors[i].ID == id {
			return &m.Colors[i]
		}
	}
	return nil
}

// Configuration is a customer's concrete selection for one product.
// Dimensions are in centimeters and only meaningful for configurable products.
type Configuration struct {
	WidthCm  float64 `json:"widthCm,omitempty"`
	HeightCm float64 `json:"heightCm,omitempty"`
	ColorID  string  `json:"colorId,omitempty"`
	GlassID  string  `json:"glassId,omitempty"`
}
