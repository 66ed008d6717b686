package bignum

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// oracleAdd computes a+b with math/big and renders it as decimal text,
// serving as the reference implementation for the schoolbook engine.
func oracleAdd(a, b uint64) string {
	return new(big.Int).Add(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)).String()
}

func oracleMul(a, b uint64) string {
	return new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)).String()
}

// TestAdd_MatchesOracle_PropertyBased cross-checks digit-wise addition against
// math/big for native-representable operands, including sums that overflow
// uint64 and therefore exercise the carry into a new leading digit.
func TestAdd_MatchesOracle_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Add matches math/big", prop.ForAll(
		func(a, b uint64) bool {
			return Add(FromUint64(a), FromUint64(b)).String() == oracleAdd(a, b)
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("Add is commutative", prop.ForAll(
		func(a, b uint64) bool {
			return Add(FromUint64(a), FromUint64(b)).Equal(Add(FromUint64(b), FromUint64(a)))
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("Add is associative", prop.ForAll(
		func(a, b, c uint64) bool {
			da, db, dc := FromUint64(a), FromUint64(b), FromUint64(c)
			left := Add(Add(da, db), dc)
			right := Add(da, Add(db, dc))
			return left.Equal(right)
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestMul_MatchesOracle_PropertyBased cross-checks schoolbook multiplication
// against math/big, and verifies commutativity and the zero annihilator.
func TestMul_MatchesOracle_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Mul matches math/big", prop.ForAll(
		func(a, b uint64) bool {
			return Mul(FromUint64(a), FromUint64(b)).String() == oracleMul(a, b)
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("Mul is commutative", prop.ForAll(
		func(a, b uint64) bool {
			return Mul(FromUint64(a), FromUint64(b)).Equal(Mul(FromUint64(b), FromUint64(a)))
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("Mul by zero yields zero", prop.ForAll(
		func(a uint64) bool {
			return Mul(FromUint64(a), Zero()).IsZero()
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestSub_PropertyBased verifies subtraction through the addition inverse:
// for any a, b, Sub(Add(a, b), b) == a. This exercises borrow chains with
// operands the oracle-free path cannot easily enumerate.
func TestSub_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Sub inverts Add", prop.ForAll(
		func(a, b uint64) bool {
			da, db := FromUint64(a), FromUint64(b)
			diff, err := Sub(Add(da, db), db)
			return err == nil && diff.Equal(da)
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("Sub rejects negative results", prop.ForAll(
		func(a uint64) bool {
			da := FromUint64(a)
			_, err := Sub(da, Add(da, One()))
			return err == ErrNegativeResult
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestRoundTrip_PropertyBased verifies that rendering to decimal text and
// parsing back is the identity for every engine-producible value.
func TestRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Parse inverts String", prop.ForAll(
		func(a, b uint64) bool {
			// Mul grows past native width, so round-trips cover
			// multi-word values as well.
			d := Mul(FromUint64(a), FromUint64(b))
			back, err := Parse(d.String())
			return err == nil && back.Equal(d)
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t)
}
