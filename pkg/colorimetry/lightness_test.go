package colorimetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/luma/pkg/cie"
)

func TestLightnessGlasser1958(t *testing.T) {
	assert.InDelta(t, 36.2505626458, LightnessGlasser1958(10.08), tol)
}

func TestLightnessWyszecki1964(t *testing.T) {
	assert.InDelta(t, 37.0041149128, LightnessWyszecki1964(10.08), tol)
}

func TestLightness1976(t *testing.T) {
	assert.InDelta(t, 37.9856290977, Lightness1976(10.08, 100), tol)

	// Linear region near black.
	y := 0.5
	assert.InDelta(t, cie.Kappa*(y/100), Lightness1976(y, 100), tol)
}

func TestLightness1976RoundTrip(t *testing.T) {
	// Lightness1976 inverts Luminance1976 across both regions.
	for _, y := range []float64{0, 0.1, 0.5, 0.885645167, 1, 10.08, 18, 50, 99, 100} {
		l := Lightness1976(y, 100)
		assert.InDelta(t, y, Luminance1976(l, 100), 1e-10, "Y=%v", y)
	}

	// And with a non-default reference white.
	for _, y := range []float64{0.2, 9, 47} {
		l := Lightness1976(y, 95.047)
		assert.InDelta(t, y, Luminance1976(l, 95.047), 1e-10, "Y=%v", y)
	}
}

func TestLightnessFunctionsRegistry(t *testing.T) {
	require.Len(t, LightnessFunctions, 3)
	for _, m := range LightnessMethods() {
		require.Contains(t, LightnessFunctions, m)
	}

	y := 10.08
	assert.InDelta(t, LightnessGlasser1958(y), LightnessFunctions[LightnessGlasser1958Method](y), tol)
	assert.InDelta(t, LightnessWyszecki1964(y), LightnessFunctions[LightnessWyszecki1964Method](y), tol)
	assert.InDelta(t, Lightness1976(y, DefaultWhiteRef), LightnessFunctions[Lightness1976Method](y), tol)
}

func TestLightnessDispatch(t *testing.T) {
	tests := []struct {
		name   string
		y      float64
		yn     float64
		method LightnessMethod
		want   float64
	}{
		{"default method", 10.08, DefaultWhiteRef, "", 37.9856290977},
		{"glasser", 10.08, DefaultWhiteRef, LightnessGlasser1958Method, 36.2505626458},
		{"wyszecki", 10.08, DefaultWhiteRef, LightnessWyszecki1964Method, 37.0041149128},
		{"1976 honours white reference", 5.04, 50, Lightness1976Method, 37.9856290977},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lightness(tt.y, tt.yn, tt.method)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tol)
		})
	}
}

func TestLightnessUnknownMethod(t *testing.T) {
	_, err := Lightness(10, DefaultWhiteRef, "Lightness 1977")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown lightness method")
	assert.Contains(t, err.Error(), "Lightness Wyszecki 1964")
}
