//go:build gmp

// This file provides a GMP-backed reference strategy, conditionally compiled
// with the "gmp" build tag:
//   - The default build has no cgo or libgmp requirement.
//   - With -tags=gmp, a "gmp" strategy appears in the registry and can be
//     used to cross-check the decimal engine against an independent,
//     assembly-optimized bignum implementation.
//
// System requirements: libgmp (apt-get install libgmp-dev / brew install gmp).

package fibonacci

import (
	"context"
	"math/bits"

	"github.com/ncw/gmp"

	"github.com/jwang0306/fibdrv/internal/bignum"
)

func init() {
	RegisterCalculator("gmp", func() coreCalculator { return &GMPCalculator{} })
}

// GMPCalculator computes F(k) with the fast-doubling identities over GMP
// integers, then converts the result into the engine's decimal
// representation. Its only role is to serve as an external oracle for the
// three native strategies; it deliberately shares no arithmetic with them.
type GMPCalculator struct{}

// Name returns the descriptive name of the strategy.
func (g *GMPCalculator) Name() string {
	return "Fast Doubling (GMP reference)"
}

// CalculateCore computes F(k) using GMP arithmetic.
func (g *GMPCalculator) CalculateCore(ctx context.Context, reporter ProgressReporter, k uint64, _ Options) (bignum.BigDecimal, error) {
	a := gmp.NewInt(0) // F(m)
	b := gmp.NewInt(1) // F(m+1)

	t1 := new(gmp.Int)
	t2 := new(gmp.Int)

	topBit := bits.Len64(k) - 1
	for i := topBit; i >= 0; i-- {
		select {
		case <-ctx.Done():
			return bignum.BigDecimal{}, ctx.Err()
		default:
		}

		// t1 = F(2m) = F(m)·(2·F(m+1) − F(m))
		t1.Lsh(b, 1)
		t1.Sub(t1, a)
		t1.Mul(a, t1)
		// t2 = F(2m+1) = F(m)² + F(m+1)²
		t2.Mul(b, b)
		a.Mul(a, a)
		t2.Add(t2, a)

		a.Set(t1)
		b.Set(t2)
		if k&(1<<uint(i)) != 0 {
			t1.Add(a, b)
			a.Set(b)
			b.Set(t1)
		}

		reporter(float64(topBit-i+1) / float64(topBit+1))
	}

	return bignum.Parse(a.String())
}
