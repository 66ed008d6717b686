// Package bignum implements an arbitrary-precision non-negative decimal
// integer, BigDecimal, together with the schoolbook arithmetic the Fibonacci
// strategies are built on: construction, addition, subtraction and
// multiplication.
//
// A BigDecimal stores one base-10 digit per slot, least-significant digit
// first, always at minimal length (no leading-zero padding; the value zero is
// exactly one `0` digit). Values are immutable: every operation allocates a
// fresh result and never aliases an operand, so callers can share BigDecimal
// values freely across goroutines without synchronization.
package bignum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNegativeResult is returned by Sub when the subtrahend exceeds the
// minuend. The engine has no representation for negative values; the
// Fibonacci doubling identities only ever subtract F(n) from 2·F(n+1),
// which is non-negative for every valid index, so hitting this error
// indicates a defect in the caller rather than a recoverable condition.
var ErrNegativeResult = errors.New("bignum: subtraction would be negative")

// BigDecimal is an arbitrary-precision non-negative decimal integer.
//
// The zero value of the type is not valid; construct values with Zero, One,
// FromUint64 or Parse, or receive them from an arithmetic operation.
type BigDecimal struct {
	// digits holds the decimal digits, least-significant first.
	// Invariant: len(digits) >= 1, every element is in [0,9], and the
	// most-significant digit is non-zero unless the value is zero
	// (represented as exactly []uint8{0}).
	digits []uint8
}

// Zero returns the BigDecimal representing 0.
func Zero() BigDecimal {
	return BigDecimal{digits: []uint8{0}}
}

// One returns the BigDecimal representing 1.
func One() BigDecimal {
	return BigDecimal{digits: []uint8{1}}
}

// FromUint64 returns the BigDecimal representing v, decomposed into decimal
// digits. FromUint64(0) and FromUint64(1) are the only constructors the
// Fibonacci strategies require; the general form exists for completeness and
// testability.
func FromUint64(v uint64) BigDecimal {
	if v == 0 {
		return Zero()
	}
	// uint64 needs at most 20 decimal digits.
	digits := make([]uint8, 0, 20)
	for v > 0 {
		digits = append(digits, uint8(v%10))
		v /= 10
	}
	return BigDecimal{digits: digits}
}

// Parse converts a decimal string (most-significant digit first, as produced
// by String) back into a BigDecimal. Leading zeros are tolerated and
// normalized away. An empty string or any non-digit character is an error.
func Parse(s string) (BigDecimal, error) {
	if s == "" {
		return BigDecimal{}, errors.New("bignum: cannot parse empty string")
	}
	digits := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		c := s[len(s)-1-i]
		if c < '0' || c > '9' {
			return BigDecimal{}, fmt.Errorf("bignum: invalid digit %q at position %d", c, len(s)-1-i)
		}
		digits[i] = c - '0'
	}
	return BigDecimal{digits: trim(digits)}, nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// compile-time-constant literals in initialization code and tests.
func MustParse(s string) BigDecimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NumDigits returns the number of significant decimal digits.
// The value zero has exactly one digit.
func (d BigDecimal) NumDigits() int {
	return len(d.digits)
}

// IsZero reports whether d represents the value zero.
func (d BigDecimal) IsZero() bool {
	return len(d.digits) == 1 && d.digits[0] == 0
}

// String renders d as decimal text, most-significant digit first. This is
// the byte layout the sequential-access boundary delivers to callers.
func (d BigDecimal) String() string {
	var sb strings.Builder
	sb.Grow(len(d.digits))
	for i := len(d.digits) - 1; i >= 0; i-- {
		sb.WriteByte('0' + d.digits[i])
	}
	return sb.String()
}

// Cmp compares d and other, returning -1, 0 or +1 when d is respectively
// less than, equal to or greater than other. Because both operands are
// canonical (minimal length), a length comparison settles all but the
// equal-length case.
func (d BigDecimal) Cmp(other BigDecimal) int {
	if len(d.digits) != len(other.digits) {
		if len(d.digits) < len(other.digits) {
			return -1
		}
		return 1
	}
	for i := len(d.digits) - 1; i >= 0; i-- {
		if d.digits[i] != other.digits[i] {
			if d.digits[i] < other.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether d and other represent the same value.
func (d BigDecimal) Equal(other BigDecimal) bool {
	return d.Cmp(other) == 0
}

// Add returns a + b. Digit-wise schoolbook addition with carry; the result
// has max(len(a), len(b)) digits, or one more when the final carry overflows
// into a new digit.
func Add(a, b BigDecimal) BigDecimal {
	longer, shorter := a.digits, b.digits
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}
	out := make([]uint8, len(longer)+1)
	carry := uint8(0)
	for i := 0; i < len(longer); i++ {
		sum := longer[i] + carry
		if i < len(shorter) {
			sum += shorter[i]
		}
		out[i] = sum % 10
		carry = sum / 10
	}
	out[len(longer)] = carry
	return BigDecimal{digits: trim(out)}
}

// Sub returns a - b. Digit-wise schoolbook subtraction with borrow.
// Precondition: a >= b; Sub returns ErrNegativeResult otherwise, since the
// engine does not represent negative values.
func Sub(a, b BigDecimal) (BigDecimal, error) {
	if a.Cmp(b) < 0 {
		return BigDecimal{}, ErrNegativeResult
	}
	out := make([]uint8, len(a.digits))
	borrow := uint8(0)
	for i := 0; i < len(a.digits); i++ {
		cur := int8(a.digits[i]) - int8(borrow)
		if i < len(b.digits) {
			cur -= int8(b.digits[i])
		}
		if cur < 0 {
			cur += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint8(cur)
	}
	return BigDecimal{digits: trim(out)}, nil
}

// Mul returns a * b using schoolbook O(len(a)·len(b)) multiplication.
// Partial products accumulate into a shared result buffer with carry
// propagation deferred to a single final pass over each column.
func Mul(a, b BigDecimal) BigDecimal {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	// Column sums fit comfortably in an int: each column accumulates at
	// most min(len(a), len(b)) products of at most 81, plus a carry.
	acc := make([]int, len(a.digits)+len(b.digits))
	for i, da := range a.digits {
		if da == 0 {
			continue
		}
		for j, db := range b.digits {
			acc[i+j] += int(da) * int(db)
		}
	}
	out := make([]uint8, len(acc))
	carry := 0
	for i, v := range acc {
		v += carry
		out[i] = uint8(v % 10)
		carry = v / 10
	}
	return BigDecimal{digits: trim(out)}
}

// Double returns 2·d. The fast-doubling step needs 2·F(n+1); expressing it
// as d + d keeps the arithmetic kernel down to the three schoolbook
// operations.
func (d BigDecimal) Double() BigDecimal {
	return Add(d, d)
}

// trim drops leading (most-significant) zero digits so the slice satisfies
// the minimal-length invariant. The all-zero case collapses to a single digit.
func trim(digits []uint8) []uint8 {
	n := len(digits)
	for n > 1 && digits[n-1] == 0 {
		n--
	}
	return digits[:n]
}
