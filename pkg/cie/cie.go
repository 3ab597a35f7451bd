// Package cie provides the CIE colorimetry constants shared by the
// conversion functions in this module.
package cie

// Epsilon and Kappa define the knee between the linear and cubic regions of
// the CIE 1976 lightness function. The exact rational forms are used rather
// than the rounded values (0.008856, 903.3) published in older texts, so the
// two regions meet exactly at L* = Kappa * Epsilon = 8.
const (
	// Epsilon is the CIE linear/nonlinear transition point in the
	// luminance ratio domain.
	Epsilon = 216.0 / 24389.0

	// Kappa is the slope of the linear region of the CIE 1976 lightness
	// function.
	Kappa = 24389.0 / 27.0
)
