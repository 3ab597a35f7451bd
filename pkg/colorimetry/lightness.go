package colorimetry

import (
	"fmt"
	"math"

	"github.com/jmylchreest/luma/pkg/cie"
)

// LightnessMethod identifies a published lightness computation method.
type LightnessMethod string

const (
	// LightnessGlasser1958Method converts luminance using the Glasser,
	// McKinney, Reilly, and Schnelle (1958) cube-root fit.
	LightnessGlasser1958Method LightnessMethod = "Lightness Glasser 1958"

	// LightnessWyszecki1964Method converts luminance using the Wyszecki
	// (1964) W* fit, valid for luminance between roughly 1% and 98%.
	LightnessWyszecki1964Method LightnessMethod = "Lightness Wyszecki 1964"

	// Lightness1976Method converts luminance using the CIE 1976
	// piecewise definition. This is the default method.
	Lightness1976Method LightnessMethod = "Lightness 1976"
)

// LightnessGlasser1958 returns the Lightness L of the given luminance Y
// using the Glasser et al. (1958) method.
// Y is nominally in [0, 100], L in [0, 100].
func LightnessGlasser1958(y float64) float64 {
	return 25.29*math.Cbrt(y) - 18.38
}

// LightnessWyszecki1964 returns the Lightness W of the given luminance Y
// using the Wyszecki (1964) method.
// Y is nominally in [0, 100], W in [0, 100].
func LightnessWyszecki1964(y float64) float64 {
	return 25*math.Cbrt(y) - 17
}

// Lightness1976 returns the Lightness L* of the given luminance Y with the
// given reference white luminance yn, per the CIE 1976 definition. This is
// the inverse of Luminance1976: the cubic region applies when the luminance
// ratio exceeds cie.Epsilon, the linear near-black region otherwise.
// Y is nominally in [0, yn], L* in [0, 100].
func Lightness1976(y, yn float64) float64 {
	t := y / yn
	if t > cie.Epsilon {
		return 116*math.Cbrt(t) - 16
	}
	return cie.Kappa * t
}

// LightnessFunctions maps each supported method name to its single-argument
// conversion function. The 1976 entry assumes DefaultWhiteRef. Read-only,
// like LuminanceFunctions.
var LightnessFunctions = map[LightnessMethod]func(float64) float64{
	LightnessGlasser1958Method:  LightnessGlasser1958,
	LightnessWyszecki1964Method: LightnessWyszecki1964,
	Lightness1976Method: func(y float64) float64 {
		return Lightness1976(y, DefaultWhiteRef)
	},
}

// LightnessMethods returns the supported lightness method names in a fixed
// order.
func LightnessMethods() []LightnessMethod {
	return []LightnessMethod{
		LightnessGlasser1958Method,
		LightnessWyszecki1964Method,
		Lightness1976Method,
	}
}

// Lightness returns the perceptual lightness of the given luminance y,
// computed with the named method. An empty method selects
// Lightness1976Method. yn applies only to the 1976 method, mirroring
// Luminance. An unrecognised method yields an error and no fallback.
func Lightness(y, yn float64, method LightnessMethod) (float64, error) {
	if method == "" {
		method = Lightness1976Method
	}
	if method == Lightness1976Method {
		return Lightness1976(y, yn), nil
	}
	fn, ok := LightnessFunctions[method]
	if !ok {
		return math.NaN(), fmt.Errorf("unknown lightness method: %q (valid methods: %v)", method, LightnessMethods())
	}
	return fn(y), nil
}
