package common

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFraction(t *testing.T) {
	assert := assert.New(t)

	f, err := NewFraction(2, 4)
	assert.Nil(err)
	assert.Equal(int64(1), f.Numerator())
	assert.Equal(int64(2), f.Denominator())

	f = MustFraction(-2, 4)
	assert.Equal(int64(-1), f.Numerator())
	assert.Equal(int64(2), f.Denominator())

	f = MustFraction(2, -4)
	n, d := f.Components()
	assert.Equal(int64(-1), n)
	assert.Equal(int64(2), d)

	_, err = NewFraction(1, 0)
	assert.ErrorIs(err, ErrDivideByZero)
	assert.PanicsWithValue(ErrDivideByZero, func() { MustFraction(1, 0) })

	var zero Fraction
	assert.Equal(int64(0), zero.Numerator())
	assert.Equal(int64(1), zero.Denominator())
	assert.True(zero.Equal(Zero))
	assert.True(zero == MustFraction(0, 9))
	assert.Equal("0", zero.String())

	assert.Equal(int64(1), One.Numerator())
	assert.Equal(int64(-1), NegativeOne.Numerator())
	assert.Equal(int64(math.MinInt64), MinValue.Numerator())
	assert.Equal(int64(math.MaxInt64), MaxValue.Numerator())
	assert.Equal(int64(1), MaxValue.Denominator())

	assert.Equal(FromInt64(1), FromBool(true))
	assert.Equal(Zero, FromBool(false))
	assert.Equal(FromInt64(-3), FromInteger(int8(-3)))
	assert.Equal(FromInt64(-1), FromInteger(uint64(math.MaxUint64)))
}

func TestFractionRenormalize(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		num := r.Int63() - math.MaxInt64/2
		den := r.Int63n(math.MaxInt64-1) + 1
		if r.Intn(2) == 0 {
			den = -den
		}
		f := MustFraction(num, den)
		n, d := f.Components()
		assert.True(t, d > 0)
		if n == 0 {
			assert.Equal(t, int64(1), d)
		} else {
			assert.Equal(t, uint64(1), gcd(magnitude(n), magnitude(d)))
		}
		assert.Equal(t, f, MustFraction(n, d))
	}
}

func TestFractionOrder(t *testing.T) {
	assert := assert.New(t)

	half, third := MustFraction(1, 2), MustFraction(1, 3)
	assert.True(third.Less(half))
	assert.False(half.Less(third))
	assert.False(half.Less(half))
	assert.True(half.Neg().Less(third))
	assert.True(half.Neg().Less(third.Neg()))
	assert.True(FromInt64(3).Less(MustFraction(7, 2)))
	assert.False(MustFraction(7, 2).Less(FromInt64(3)))
	assert.True(MustFraction(-7, 2).Less(FromInt64(-3)))
	assert.True(MinValue.Less(MaxValue))
	assert.True(MinValue.Less(MustFraction(math.MinInt64+1, 2)))

	// cross products exceed int64
	a := MustFraction(math.MaxInt64, math.MaxInt64-1)
	b := MustFraction(math.MaxInt64-1, math.MaxInt64-2)
	assert.True(a.Less(b))
	assert.False(b.Less(a))
	assert.True(b.Greater(a))
	assert.Equal(-1, a.Cmp(b))
	assert.Equal(1, b.Cmp(a))
	assert.Equal(0, a.Cmp(MustFraction(math.MaxInt64, math.MaxInt64-1)))

	// the wrapped denominator MinInt64 orders as 2^63
	tiny, err := One.Shr(63)
	require.Nil(t, err)
	pos, quarter := tiny.Neg(), MustFraction(1, 1<<62)
	assert.True(pos.Less(quarter))
	assert.False(quarter.Less(pos))
	assert.True(quarter.Greater(pos))
	assert.True(tiny.Less(Zero))
	assert.True(tiny.Less(pos))
	assert.True(Zero.Less(pos))
	assert.True(quarter.Neg().Less(tiny))
	assert.Equal(-1, pos.Cmp(quarter))
	assert.Equal(1, quarter.Cmp(pos))
	n, d := pos.Components()
	assert.Equal(tiny, MustFraction(n, d))

	assert.True(half.LessOrEqual(half))
	assert.True(third.LessOrEqual(half))
	assert.True(half.GreaterOrEqual(third))
	assert.False(third.GreaterOrEqual(half))

	assert.Equal(third, half.Min(third))
	assert.Equal(half, half.Max(third))
	assert.Equal(half, half.Min(MustFraction(2, 4)))

	list := []Fraction{
		MustFraction(5, 6), FromInt64(-2), MustFraction(1, 3), Zero,
		MustFraction(-1, 3), MaxValue, MustFraction(1, 2), MinValue,
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Less(list[j]) })
	want := []string{"-9223372036854775808", "-2", "-1/3", "0", "1/3", "1/2", "5/6", "9223372036854775807"}
	for i, f := range list {
		assert.Equal(want[i], f.String())
	}
}

func TestFractionCmpConsistency(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	values := make([]Fraction, 200)
	for i := range values {
		values[i] = MustFraction(r.Int63n(41)-20, r.Int63n(12)+1)
	}
	for _, x := range values {
		for _, y := range values {
			c := x.Cmp(y)
			assert.Equal(t, x.Equal(y), c == 0)
			assert.Equal(t, x.Less(y), c < 0)
			assert.Equal(t, -c, y.Cmp(x))
			if x.Equal(y) {
				assert.Equal(t, x.Hash(), y.Hash())
			}
		}
	}
}

func TestFractionMapKey(t *testing.T) {
	require := require.New(t)

	seen := map[Fraction]string{}
	seen[MustFraction(2, 4)] = "half"
	seen[MustFraction(-3, 9)] = "negative third"
	seen[Fraction{}] = "zero"

	require.Equal("half", seen[MustFraction(-3, -6)])
	require.Equal("negative third", seen[MustFraction(1, -3)])
	require.Equal("zero", seen[MustFraction(0, -5)])
	require.Equal(MustFraction(2, 4).Hash(), MustFraction(1, 2).Hash())
}

func TestFractionPredicates(t *testing.T) {
	assert := assert.New(t)

	assert.True(Zero.IsZero())
	assert.False(Zero.IsPositive())
	assert.False(Zero.IsNegative())
	assert.Equal(0, Zero.Sign())
	assert.True(MustFraction(1, 3).IsPositive())
	assert.Equal(1, MustFraction(1, 3).Sign())
	assert.True(MustFraction(-1, 3).IsNegative())
	assert.Equal(-1, MustFraction(-1, 3).Sign())

	assert.True(One.IsOne())
	assert.False(MustFraction(1, 2).IsOne())
	assert.True(MustFraction(-4, 4).IsNegativeOne())
	assert.False(MustFraction(-1, 2).IsNegativeOne())

	assert.True(MustFraction(4, 3).IsEven())
	assert.True(MustFraction(-5, 3).IsOdd())
	assert.True(Zero.IsEven())

	assert.True(MustFraction(8, 3).IsPow2())
	assert.True(One.IsPow2())
	assert.False(FromInt64(6).IsPow2())
	assert.False(Zero.IsPow2())
	assert.False(MinValue.IsPow2())

	assert.True(MinValue.IsMinValue())
	assert.False(MustFraction(math.MinInt64, 3).IsMinValue())
	assert.True(MaxValue.IsMaxValue())
	assert.False(MustFraction(math.MaxInt64, 2).IsMaxValue())

	assert.True(FromInt64(5).IsInteger())
	assert.False(MustFraction(5, 2).IsInteger())
}
