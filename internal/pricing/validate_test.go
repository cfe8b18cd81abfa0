package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateNilModelPasses(t *testing.T) {
	v := Validate(nil, Configuration{})
	require.True(t, v.Valid)
	require.Empty(t, v.Reasons)
}

func TestValidateDimensionBounds(t *testing.T) {
	model := testModel()

	cases := []struct {
		name    string
		cfg     Configuration
		reasons []string
	}{
		{"valid", Configuration{WidthCm: 120, HeightCm: 200}, nil},
		{"upper bounds", Configuration{WidthCm: 400, HeightCm: 280}, nil},
		{"width missing", Configuration{HeightCm: 200}, []string{ReasonWidthOutOfRange}},
		{"width too small", Configuration{WidthCm: 119, HeightCm: 200}, []string{ReasonWidthOutOfRange}},
		{"width too large", Configuration{WidthCm: 401, HeightCm: 200}, []string{ReasonWidthOutOfRange}},
		{"height too small", Configuration{WidthCm: 120, HeightCm: 179}, []string{ReasonHeightOutOfRange}},
		{"both missing", Configuration{}, []string{ReasonWidthOutOfRange, ReasonHeightOutOfRange}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Validate(model, tc.cfg)
			require.Equal(t, len(tc.reasons) == 0, v.Valid)
			require.Equal(t, tc.reasons, v.Reasons)
		})
	}
}

func TestValidateStepNotEnforced(t *testing.T) {
	// 125 is inside the range but off the 10cm step grid; the source UI never
	// rejected off-step values, so neither do we.
	v := Validate(testModel(), Configuration{WidthCm: 125, HeightCm: 205})
	require.True(t, v.Valid)
}

func TestValidateOptionReferences(t *testing.T) {
	model := testModel()

	v := Validate(model, Configuration{WidthCm: 120, HeightCm: 200, ColorID: "white", GlassID: "clear-5mm"})
	require.True(t, v.Valid)

	v = Validate(model, Configuration{WidthCm: 120, HeightCm: 200, ColorID: "neon"})
	require.False(t, v.Valid)
	require.Contains(t, v.Reasons, ReasonUnknownColor)

	v = Validate(model, Configuration{WidthCm: 120, HeightCm: 200, GlassID: "bulletproof"})
	require.False(t, v.Valid)
	require.Contains(t, v.Reasons, ReasonUnknownGlass)
}
