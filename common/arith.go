package common

// Add, Sub and Mul divide out common factors before multiplying, so they
// only wrap when the reduced result does not fit in int64. Add and Sub work
// over the least common denominator, which never wraps to zero. Mul panics
// with ErrDivideByZero when the wrapped denominator product becomes zero.
func (f Fraction) Add(y Fraction) Fraction {
	fd, yd := f.denominator(), y.denominator()
	g := gcd(fd, yd)
	fs, ys := fd/g, yd/g
	return fromProduct(f.n*int64(ys)+y.n*int64(fs), fs*yd)
}

func (f Fraction) Sub(y Fraction) Fraction {
	return f.Add(y.Neg())
}

func (f Fraction) Mul(y Fraction) Fraction {
	if f.n == 0 || y.n == 0 {
		return Zero
	}
	fd, yd := f.denominator(), y.denominator()
	fg := gcd(magnitude(f.n), yd)
	yg := gcd(magnitude(y.n), fd)
	return fromProduct(quo(f.n, fg)*quo(y.n, yg), (fd/yg)*(yd/fg))
}

func (f Fraction) Neg() Fraction {
	return Fraction{n: -f.n, d: f.d}
}

func (f Fraction) Abs() Fraction {
	if f.IsNegative() {
		return f.Neg()
	}
	return f
}

func (f Fraction) Inc() Fraction {
	return f.Add(One)
}

func (f Fraction) Dec() Fraction {
	return f.Sub(One)
}

// Inverse returns den/num renormalized, so a negative numerator moves back
// onto the new numerator.
func (f Fraction) Inverse() (Fraction, error) {
	return NewFraction(f.Denominator(), f.Numerator())
}

func (f Fraction) Div(y Fraction) (Fraction, error) {
	inv, err := y.Inverse()
	if err != nil {
		return Fraction{}, err
	}
	return f.Mul(inv), nil
}

// Mod takes the numerator remainder when y is an integer, keeping the
// denominator of f. Otherwise both sides are cross multiplied to the common
// denominator den(f)*den(y) first.
func (f Fraction) Mod(y Fraction) (Fraction, error) {
	fn, fd := f.Components()
	yn, yd := y.Components()
	if yd == 1 {
		if yn == 0 {
			return Fraction{}, ErrDivideByZero
		}
		return fromProduct(fn%yn, f.denominator()), nil
	}
	m := yn * fd
	if m == 0 {
		return Fraction{}, ErrDivideByZero
	}
	return NewFraction(fn*yd%m, fd*yd)
}

// DivRem returns f/y and f%y, each computed on its own.
func (f Fraction) DivRem(y Fraction) (quo, rem Fraction, err error) {
	rem, err = f.Mod(y)
	if err != nil {
		return Fraction{}, Fraction{}, err
	}
	quo, err = f.Div(y)
	if err != nil {
		return Fraction{}, Fraction{}, err
	}
	return quo, rem, nil
}

// Shl multiplies f by 2^k. A shift of 64 or more multiplies by zero.
func (f Fraction) Shl(k uint) Fraction {
	return f.Mul(FromInt64(1 << k))
}

// Shr divides f by 2^k. A shift of 64 or more divides by zero.
func (f Fraction) Shr(k uint) (Fraction, error) {
	return f.Div(FromInt64(1 << k))
}

// UnsignedShr shifts the numerator bits right as an unsigned value and leaves
// the denominator alone.
func (f Fraction) UnsignedShr(k uint) Fraction {
	return fromProduct(int64(uint64(f.n)>>k), f.denominator())
}

// And, Or and Xor apply the bitwise operator to the numerators and to the
// denominators independently and renormalize the result. They carry no
// rational meaning.
func (f Fraction) And(y Fraction) (Fraction, error) {
	return NewFraction(f.Numerator()&y.Numerator(), f.Denominator()&y.Denominator())
}

func (f Fraction) Or(y Fraction) (Fraction, error) {
	return NewFraction(f.Numerator()|y.Numerator(), f.Denominator()|y.Denominator())
}

func (f Fraction) Xor(y Fraction) (Fraction, error) {
	return NewFraction(f.Numerator()^y.Numerator(), f.Denominator()^y.Denominator())
}
