package common

import (
	"math"
	"math/bits"
)

var (
	Zero        Fraction
	One         Fraction
	NegativeOne Fraction
	MinValue    Fraction
	MaxValue    Fraction
)

func init() {
	One = FromInt64(1)
	NegativeOne = FromInt64(-1)
	MinValue = FromInt64(math.MinInt64)
	MaxValue = FromInt64(math.MaxInt64)
}

// Fraction is an exact rational number with an int64 numerator and a
// positive int64 denominator, always kept in lowest terms with the sign on
// the numerator.
//
// The denominator is stored biased by one, so the zero value is 0/1 and two
// fractions can be compared with == or used as map keys.
//
// Arithmetic wraps on int64 overflow like the built-in integer types; no
// overflow error is reported. One wrapped value is reachable: an odd
// numerator over 2^63, e.g. MustFraction(1, math.MinInt64) or One.Shr(63).
// Its Denominator reports math.MinInt64, so feeding Components back into
// NewFraction flips the sign. Comparison and conversion treat that
// denominator as 2^63.
type Fraction struct {
	n int64
	d int64
}

// NewFraction returns num/den in canonical form, or ErrDivideByZero when den
// is zero.
func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDivideByZero
	}
	num, den = simplify(num, den)
	return Fraction{n: num, d: den - 1}, nil
}

func MustFraction(num, den int64) Fraction {
	f, err := NewFraction(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

func FromInt64(v int64) Fraction {
	return Fraction{n: v}
}

func FromBool(b bool) Fraction {
	if b {
		return One
	}
	return Zero
}

func (f Fraction) Numerator() int64 {
	return f.n
}

func (f Fraction) Denominator() int64 {
	return f.d + 1
}

func (f Fraction) Components() (num, den int64) {
	return f.n, f.d + 1
}

// denominator is the unsigned magnitude of the denominator, 2^63 for the
// wrapped math.MinInt64 case.
func (f Fraction) denominator() uint64 {
	return uint64(f.d + 1)
}

func (f Fraction) Equal(y Fraction) bool {
	return f.Numerator() == y.Numerator() && f.Denominator() == y.Denominator()
}

// Less compares the truncated integer parts first and only then the cross
// products, which are computed in 128 bits so they cannot overflow.
func (f Fraction) Less(y Fraction) bool {
	fn, fd := f.Components()
	yn, yd := y.Components()
	return fn/fd < yn/yd || mulLess(fn, y.denominator(), yn, f.denominator())
}

func (f Fraction) Greater(y Fraction) bool {
	return y.Less(f)
}

func (f Fraction) LessOrEqual(y Fraction) bool {
	return f.Equal(y) || f.Less(y)
}

func (f Fraction) GreaterOrEqual(y Fraction) bool {
	return y.LessOrEqual(f)
}

// Cmp returns -1 if f < y, 0 if f == y and 1 if f > y.
func (f Fraction) Cmp(y Fraction) int {
	switch {
	case f.Equal(y):
		return 0
	case f.Less(y):
		return -1
	default:
		return 1
	}
}

func (f Fraction) Hash() uint64 {
	return uint64(^f.Numerator() ^ f.Denominator())
}

func (f Fraction) Min(y Fraction) Fraction {
	if f.Less(y) {
		return f
	}
	return y
}

func (f Fraction) Max(y Fraction) Fraction {
	if f.Greater(y) {
		return f
	}
	return y
}

func (f Fraction) Sign() int {
	switch {
	case f.n < 0:
		return -1
	case f.n > 0:
		return 1
	default:
		return 0
	}
}

func (f Fraction) IsZero() bool {
	return f.n == 0
}

func (f Fraction) IsPositive() bool {
	return f.n > 0
}

func (f Fraction) IsNegative() bool {
	return f.n < 0
}

func (f Fraction) IsOne() bool {
	return f == One
}

func (f Fraction) IsNegativeOne() bool {
	return f == NegativeOne
}

func (f Fraction) IsInteger() bool {
	return f.Denominator() == 1
}

// IsEven and IsOdd report the parity of the numerator.
func (f Fraction) IsEven() bool {
	return f.n%2 == 0
}

func (f Fraction) IsOdd() bool {
	return !f.IsEven()
}

// IsPow2 reports whether the numerator is a positive power of two.
func (f Fraction) IsPow2() bool {
	return f.n > 0 && f.n&(f.n-1) == 0
}

func (f Fraction) IsMinValue() bool {
	return f == MinValue
}

func (f Fraction) IsMaxValue() bool {
	return f == MaxValue
}

// mulLess reports whether a*b < c*d using full 128-bit products.
func mulLess(a int64, b uint64, c int64, d uint64) bool {
	lh, ll := mul128(a, b)
	rh, rl := mul128(c, d)
	if lh != rh {
		return lh < rh
	}
	return ll < rl
}

// mul128 multiplies a signed value by an unsigned one, b <= 2^63.
func mul128(a int64, b uint64) (hi int64, lo uint64) {
	h, lo := bits.Mul64(uint64(a), b)
	hi = int64(h)
	if a < 0 {
		hi -= int64(b)
	}
	return hi, lo
}
