package bignum

import "errors"

var (
	ErrInvalidBase        = errors.New("bignum: invalid base")
	ErrInvalidLogBase     = errors.New("bignum: invalid logarithm base")
	ErrMalformedNumeral   = errors.New("bignum: malformed numeral")
	ErrBitIndexOutOfRange = errors.New("bignum: bit index out of range")
	ErrDivideByZero       = errors.New("bignum: division by zero")
)
