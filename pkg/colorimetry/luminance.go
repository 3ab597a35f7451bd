// Package colorimetry provides scalar conversions between photometric
// luminance and the perceptual lightness scales built on top of it.
//
// Every conversion is a pure function of its float64 inputs. The nominal
// domains (Munsell value in [0, 10], Lightness and luminance in [0, 100])
// are documented but never enforced; out-of-domain inputs extrapolate along
// the underlying formula rather than being rejected.
package colorimetry

import (
	"fmt"
	"math"

	"github.com/jmylchreest/luma/pkg/cie"
)

// DefaultWhiteRef is the reference white luminance Yn assumed when a caller
// has no measured white point. On the usual 0-100 scale this makes the 1976
// conversions return relative luminance directly.
const DefaultWhiteRef = 100.0

// LuminanceMethod identifies a published luminance computation method.
type LuminanceMethod string

const (
	// LuminanceNewhall1943Method converts a Munsell value using the
	// Newhall, Nickerson, and Judd (1943) polynomial fit.
	LuminanceNewhall1943Method LuminanceMethod = "Luminance Newhall 1943"

	// Luminance1976Method converts CIE Lightness L* using the CIE 1976
	// piecewise definition. This is the default method.
	Luminance1976Method LuminanceMethod = "Luminance 1976"

	// LuminanceASTMD153508Method converts a Munsell value using the
	// ASTM D1535-08e1 (2008) polynomial fit.
	LuminanceASTMD153508Method LuminanceMethod = "Luminance ASTM D1535-08"
)

// LuminanceNewhall1943 returns the luminance Y of the given Munsell value V
// using the Newhall, Nickerson, and Judd (1943) method.
// V is nominally in [0, 10], Y in [0, 100].
func LuminanceNewhall1943(v float64) float64 {
	v2 := v * v
	v3 := v2 * v
	v4 := v3 * v
	v5 := v4 * v
	return 1.2219*v - 0.23111*v2 + 0.23951*v3 - 0.021009*v4 + 0.0008404*v5
}

// Luminance1976 returns the luminance Y of the given Lightness L* with the
// given reference white luminance yn, per the CIE 1976 definition. Above the
// knee at L* = cie.Kappa*cie.Epsilon the cubic region applies; below it the
// linear near-black region applies.
// L is nominally in [0, 100], Y in [0, yn].
func Luminance1976(l, yn float64) float64 {
	if l > cie.Kappa*cie.Epsilon {
		f := (l + 16) / 116
		return f * f * f * yn
	}
	return (l / cie.Kappa) * yn
}

// LuminanceASTMD153508 returns the luminance Y of the given Munsell value V
// using the ASTM D1535-08e1 (2008) method.
// V is nominally in [0, 10], Y in [0, 100].
func LuminanceASTMD153508(v float64) float64 {
	v2 := v * v
	v3 := v2 * v
	v4 := v3 * v
	v5 := v4 * v
	return 1.1914*v - 0.22533*v2 + 0.23352*v3 - 0.020484*v4 + 0.00081939*v5
}

// LuminanceFunctions maps each supported method name to its single-argument
// conversion function. The 1976 entry assumes DefaultWhiteRef; use Luminance
// or Luminance1976 directly to supply a different reference white. The map
// is built once and must be treated as read-only; concurrent readers need no
// locking.
var LuminanceFunctions = map[LuminanceMethod]func(float64) float64{
	LuminanceNewhall1943Method: LuminanceNewhall1943,
	Luminance1976Method: func(l float64) float64 {
		return Luminance1976(l, DefaultWhiteRef)
	},
	LuminanceASTMD153508Method: LuminanceASTMD153508,
}

// LuminanceMethods returns the supported luminance method names in a fixed
// order.
func LuminanceMethods() []LuminanceMethod {
	return []LuminanceMethod{
		LuminanceNewhall1943Method,
		Luminance1976Method,
		LuminanceASTMD153508Method,
	}
}

// Luminance returns the luminance Y of the given Lightness L* or Munsell
// value lv, computed with the named method. An empty method selects
// Luminance1976Method.
//
// yn is the reference white luminance and applies only to the 1976 method;
// the Munsell polynomials are defined on the fixed 0-100 scale and ignore
// it. Earlier revisions of this conversion dropped yn on every dispatched
// call; it is now always honoured when the 1976 method is selected.
//
// An unrecognised method yields an error and no fallback.
func Luminance(lv, yn float64, method LuminanceMethod) (float64, error) {
	if method == "" {
		method = Luminance1976Method
	}
	if method == Luminance1976Method {
		return Luminance1976(lv, yn), nil
	}
	fn, ok := LuminanceFunctions[method]
	if !ok {
		return math.NaN(), fmt.Errorf("unknown luminance method: %q (valid methods: %v)", method, LuminanceMethods())
	}
	return fn(lv), nil
}
