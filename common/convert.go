package common

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Conversions maps each supported target kind to its explicit conversion.
// Integer targets truncate toward zero and then wrap like a Go conversion.
var Conversions = map[reflect.Kind]func(Fraction) interface{}{
	reflect.Bool:    func(f Fraction) interface{} { return f.Bool() },
	reflect.Int:     func(f Fraction) interface{} { return To[int](f) },
	reflect.Int8:    func(f Fraction) interface{} { return f.Int8() },
	reflect.Int16:   func(f Fraction) interface{} { return f.Int16() },
	reflect.Int32:   func(f Fraction) interface{} { return f.Int32() },
	reflect.Int64:   func(f Fraction) interface{} { return f.Int64() },
	reflect.Uint:    func(f Fraction) interface{} { return To[uint](f) },
	reflect.Uint8:   func(f Fraction) interface{} { return f.Uint8() },
	reflect.Uint16:  func(f Fraction) interface{} { return f.Uint16() },
	reflect.Uint32:  func(f Fraction) interface{} { return f.Uint32() },
	reflect.Uint64:  func(f Fraction) interface{} { return f.Uint64() },
	reflect.Float32: func(f Fraction) interface{} { return f.Float32() },
	reflect.Float64: func(f Fraction) interface{} { return f.Float64() },
	reflect.String:  func(f Fraction) interface{} { return f.String() },
}

// FromInteger converts any integer value to v/1. Unsigned values above
// math.MaxInt64 wrap to negative numerators.
func FromInteger[T constraints.Integer](v T) Fraction {
	return FromInt64(int64(v))
}

// To converts f to an integer or floating point type. Integers truncate
// toward zero; floats divide in the target precision.
func To[T constraints.Integer | constraints.Float](f Fraction) T {
	n, d := f.Components()
	if one := T(1); one/2 != 0 {
		return T(n) / T(f.denominator())
	}
	return T(n / d)
}

// FromValue accepts any Go integer kind or a bool.
func FromValue(v interface{}) (Fraction, error) {
	if f, ok := v.(Fraction); ok {
		return f, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromInt64(int64(rv.Uint())), nil
	}
	return Fraction{}, fmt.Errorf("%w: from %T", ErrConversionUnsupported, v)
}

func (f Fraction) Convert(kind reflect.Kind) (interface{}, error) {
	conv, ok := Conversions[kind]
	if !ok {
		return nil, fmt.Errorf("%w: to %s", ErrConversionUnsupported, kind)
	}
	return conv(f), nil
}

// ParseKind resolves a conversion target by its Go type name, e.g. "uint16".
func ParseKind(name string) (reflect.Kind, error) {
	for k := range Conversions {
		if k.String() == name {
			return k, nil
		}
	}
	return reflect.Invalid, fmt.Errorf("%w: to %s", ErrConversionUnsupported, name)
}

// Bool is true for every non-zero value.
func (f Fraction) Bool() bool {
	return f.n != 0
}

func (f Fraction) Int64() int64 {
	return To[int64](f)
}

func (f Fraction) Int32() int32 {
	return To[int32](f)
}

func (f Fraction) Int16() int16 {
	return To[int16](f)
}

func (f Fraction) Int8() int8 {
	return To[int8](f)
}

func (f Fraction) Uint64() uint64 {
	return To[uint64](f)
}

func (f Fraction) Uint32() uint32 {
	return To[uint32](f)
}

func (f Fraction) Uint16() uint16 {
	return To[uint16](f)
}

func (f Fraction) Uint8() uint8 {
	return To[uint8](f)
}

func (f Fraction) Float64() float64 {
	return To[float64](f)
}

func (f Fraction) Float32() float32 {
	return To[float32](f)
}

// Decimal divides in decimal arithmetic, rounding half away from zero to
// places fractional digits.
func (f Fraction) Decimal(places int32) decimal.Decimal {
	n, d := f.Components()
	return decimal.New(n, 0).DivRound(decimal.New(d, 0).Abs(), places)
}
