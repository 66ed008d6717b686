//go:build gmp

package fibonacci

import (
	"context"
	"testing"
)

// TestGMPReference_AgreesWithDecimalEngine cross-checks the decimal engine
// against GMP, an independent bignum implementation. Requires -tags=gmp and
// libgmp.
func TestGMPReference_AgreesWithDecimalEngine(t *testing.T) {
	gmpCalc := &GMPCalculator{}
	native := &FastDoublingOpt{}

	for _, k := range []uint64{0, 1, 2, 10, 92, 150, 1000, 5000} {
		want, err := gmpCalc.CalculateCore(context.Background(), func(float64) {}, k, Options{})
		if err != nil {
			t.Fatalf("gmp F(%d): %v", k, err)
		}
		got, err := native.CalculateCore(context.Background(), func(float64) {}, k, Options{})
		if err != nil {
			t.Fatalf("native F(%d): %v", k, err)
		}
		if !got.Equal(want) {
			t.Errorf("F(%d): native %s, gmp %s", k, got.String(), want.String())
		}
	}
}

func TestGMPRegisteredInGlobalFactory(t *testing.T) {
	if !GlobalFactory().Has("gmp") {
		t.Error("gmp strategy not registered")
	}
}
