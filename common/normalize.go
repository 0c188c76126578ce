package common

const minInt64Magnitude = uint64(1) << 63

// simplify reduces num/den to lowest terms and moves the sign onto the
// numerator. The caller guarantees den != 0.
//
// Negation follows Go's wrapping integer semantics: simplify(MinInt64, -1)
// returns MinInt64/1, and an odd numerator over MinInt64 keeps MinInt64 as
// its denominator.
func simplify(num, den int64) (int64, int64) {
	if num == 0 {
		return 0, 1
	}

	g := gcd(magnitude(num), magnitude(den))
	if g == minInt64Magnitude {
		// both are MinInt64
		return 1, 1
	}
	num /= int64(g)
	den /= int64(g)

	if den >= 0 {
		return num, den
	}
	return -num, -den
}

// gcd returns the greatest common divisor of two non-zero magnitudes.
func gcd(left, right uint64) uint64 {
	for {
		if left < right {
			left, right = right, left
		}
		left %= right
		if left == 0 {
			return right
		}
	}
}

func magnitude(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// fromProduct builds num/den where den is an unsigned product that may wrap.
// A denominator of exactly 2^63 with an odd numerator is stored as is, and
// any other value goes through the signed normalization of NewFraction.
func fromProduct(num int64, den uint64) Fraction {
	if den != minInt64Magnitude || num == 0 {
		return MustFraction(num, int64(den))
	}
	g := gcd(magnitude(num), den)
	if g == 1 {
		return Fraction{n: num, d: int64(den - 1)}
	}
	return MustFraction(quo(num, g), int64(den/g))
}

// quo divides x by a magnitude g that divides it exactly.
func quo(x int64, g uint64) int64 {
	if g == minInt64Magnitude {
		// x is MinInt64
		return -1
	}
	return x / int64(g)
}
