package common

import "errors"

var (
	ErrDivideByZero          = errors.New("fraction: divide by zero")
	ErrFormatInvalid         = errors.New("fraction: invalid format")
	ErrConversionUnsupported = errors.New("fraction: unsupported conversion")
)
