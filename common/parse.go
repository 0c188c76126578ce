package common

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders n when the denominator is 1 and n/d otherwise. The wrapped
// math.MinInt64 denominator prints as 9223372036854775808, which is outside
// the int64 range ParseFraction accepts, so such values do not round trip
// through text.
func (f Fraction) String() string {
	n, d := f.n, f.denominator()
	if d == 1 {
		return strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10) + "/" + strconv.FormatUint(d, 10)
}

// TryParseFraction accepts a base 10 integer with an optional sign, or two
// such integers joined by a single slash. A zero denominator fails the parse.
func TryParseFraction(s string) (Fraction, bool) {
	slash := findSlash(s)
	if slash < -1 {
		return Fraction{}, false
	}
	if slash == -1 {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Fraction{}, false
		}
		return FromInt64(n), true
	}

	n, err := strconv.ParseInt(s[:slash], 10, 64)
	if err != nil {
		return Fraction{}, false
	}
	d, err := strconv.ParseInt(s[slash+1:], 10, 64)
	if err != nil || d == 0 {
		return Fraction{}, false
	}
	f, err := NewFraction(n, d)
	return f, err == nil
}

func ParseFraction(s string) (Fraction, error) {
	f, ok := TryParseFraction(s)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %q", ErrFormatInvalid, s)
	}
	return f, nil
}

// findSlash returns the slash index, -1 when there is none, or -2 when there
// are several or the only one ends the string.
func findSlash(s string) int {
	i := strings.IndexByte(s, '/')
	if i < 0 {
		return -1
	}
	if i == len(s)-1 || strings.IndexByte(s[i+1:], '/') >= 0 {
		return -2
	}
	return i
}

func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Fraction) UnmarshalText(b []byte) error {
	v, err := ParseFraction(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Fraction) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.String())), nil
}

func (f *Fraction) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	return f.UnmarshalText([]byte(unquoted))
}
