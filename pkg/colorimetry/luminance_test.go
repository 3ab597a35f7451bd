package colorimetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/luma/pkg/cie"
)

const tol = 1e-7

func TestLuminanceNewhall1943(t *testing.T) {
	tests := []struct {
		v    float64
		want float64
	}{
		{0, 0},
		{3.74629715382, 10.4089874577},
		{10, 102.568},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, LuminanceNewhall1943(tt.v), 1e-4, "V=%v", tt.v)
	}

	// Doctest-precision spot check.
	assert.InDelta(t, 10.4089874577, LuminanceNewhall1943(3.74629715382), tol)
}

func TestLuminanceASTMD153508(t *testing.T) {
	assert.InDelta(t, 10.1488096782, LuminanceASTMD153508(3.74629715382), tol)
	assert.InDelta(t, 0.0, LuminanceASTMD153508(0), tol)
}

func TestLuminance1976(t *testing.T) {
	assert.InDelta(t, 10.08, Luminance1976(37.9856290977, 100), 1e-4)

	// Linear region near black.
	assert.InDelta(t, (5.0/cie.Kappa)*100, Luminance1976(5, 100), tol)
}

func TestLuminance1976Continuity(t *testing.T) {
	// Both branches must agree where they meet. With the rational
	// constants the knee sits at exactly L* = 8.
	knee := cie.Kappa * cie.Epsilon
	require.Equal(t, 8.0, knee)

	below := Luminance1976(knee-1e-9, 100)
	above := Luminance1976(knee+1e-9, 100)
	assert.InDelta(t, below, above, 1e-8)
	assert.InDelta(t, (216.0/24389.0)*100, Luminance1976(knee, 100), tol)
}

func TestLuminance1976ScalesLinearlyInWhiteRef(t *testing.T) {
	for _, l := range []float64{0, 0.5, 5, 8, 37.9856290977, 50, 100} {
		for _, yn := range []float64{1, 50, 100, 95.047} {
			assert.InDelta(t, Luminance1976(l, 1)*yn, Luminance1976(l, yn), 1e-12,
				"L=%v Yn=%v", l, yn)
		}
	}
}

func TestLuminanceFunctionsRegistry(t *testing.T) {
	require.Len(t, LuminanceFunctions, 3)
	for _, m := range LuminanceMethods() {
		require.Contains(t, LuminanceFunctions, m)
	}

	v := 3.74629715382
	assert.InDelta(t, LuminanceNewhall1943(v), LuminanceFunctions[LuminanceNewhall1943Method](v), tol)
	assert.InDelta(t, LuminanceASTMD153508(v), LuminanceFunctions[LuminanceASTMD153508Method](v), tol)
	assert.InDelta(t, Luminance1976(v, DefaultWhiteRef), LuminanceFunctions[Luminance1976Method](v), tol)
}

func TestLuminanceDispatch(t *testing.T) {
	tests := []struct {
		name   string
		lv     float64
		yn     float64
		method LuminanceMethod
		want   float64
	}{
		{
			name:   "default method",
			lv:     3.74629715382,
			yn:     DefaultWhiteRef,
			method: "",
			want:   Luminance1976(3.74629715382, 100),
		},
		{
			name:   "explicit 1976",
			lv:     37.9856290977,
			yn:     100,
			method: Luminance1976Method,
			want:   10.08,
		},
		{
			name:   "1976 honours white reference",
			lv:     37.9856290977,
			yn:     50,
			method: Luminance1976Method,
			want:   10.08 / 2,
		},
		{
			name:   "newhall ignores white reference",
			lv:     3.74629715382,
			yn:     50,
			method: LuminanceNewhall1943Method,
			want:   10.4089874577,
		},
		{
			name:   "astm",
			lv:     3.74629715382,
			yn:     DefaultWhiteRef,
			method: LuminanceASTMD153508Method,
			want:   10.1488096782,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Luminance(tt.lv, tt.yn, tt.method)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-4)
		})
	}
}

func TestLuminanceUnknownMethod(t *testing.T) {
	_, err := Luminance(10, DefaultWhiteRef, "unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown luminance method")
	assert.Contains(t, err.Error(), "Luminance ASTM D1535-08")
}
