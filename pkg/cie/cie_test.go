package cie

import "testing"

func TestKneeProduct(t *testing.T) {
	// The rational forms make the linear/cubic knee land exactly on 8,
	// so both branches of the 1976 functions agree at the threshold.
	if got := Kappa * Epsilon; got != 8.0 {
		t.Errorf("Kappa*Epsilon = %v, want exactly 8", got)
	}
}
