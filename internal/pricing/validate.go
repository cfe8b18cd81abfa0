package pricing

// Reason codes reported by Validate.
const (
	ReasonWidthOutOfRange  = "width-out-of-range"
	ReasonHeightOutOfRange = "height-out-of-range"
	ReasonUnknownColor     = "unknown-color-option"
	ReasonUnknownGlass     = "unknown-glass-option"
)

// Verdict is the outcome of validating a configuration.
type Verdict struct {
	Valid   bool     `json:"valid"`
	Reasons []string `json:"reasons,omitempty"`
}

// Validate checks a candidate configuration against the constraint model.
// A nil model passes trivially: non-configurable products carry no dimension
// constraints. Step adherence is not checked.
func Validate(model *ConstraintModel, cfg Configuration) Verdict {
	if model == nil {
		return Verdict{Valid: true}
	}
	var reasons []string
	if cfg.WidthCm <= 0 || !model.Width.contains(cfg.WidthCm) {
		reasons = append(reasons, ReasonWidthOutOfRange)
	}
	if cfg.HeightCm <= 0 || !model.Height.contains(cfg.HeightCm) {
		reasons = append(reasons, ReasonHeightOutOfRange)
	}
	if cfg.ColorID != "" && model.ColorByID(cfg.ColorID) == nil {
		reasons = append(reasons, ReasonUnknownColor)
	}
	if cfg.GlassID != "" && model.GlassByID(cfg.GlassID) == nil {
		reasons = append(reasons, ReasonUnknownGlass)
	}
	return Verdict{Valid: len(reasons) == 0, Reasons: reasons}
}

func (r Range) contains(v float64) bool {
	if r.Min > 0 && v < r.Min {
		return false
	}
	if r.Max > 0 && v > r.Max {
		return false
	}
	return true
}
