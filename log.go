package bignum

import (
	"fmt"
	"math"
)

// Log returns an estimate of the logarithm of |x| in the given base, which
// must be greater than 1.
//
// The estimate is derived from the bit length: the base-2 logarithm is taken
// as (words-1)*32 + log2(top word), then scaled by log2(base). Only the most
// significant word contributes, so for multi-word values the result may be
// low by up to one bit's worth. It is intended for digit and bit count
// estimation, not precise maths. The log of 1 is 0; the log of 0 is -Inf.
func (x Int) Log(base uint) (float64, error) {
	if base <= 1 {
		return 0, fmt.Errorf("%w %d", ErrInvalidLogBase, base)
	}
	if x.Equal(one) {
		return 0, nil
	}
	if base == 2 {
		return x.log2(), nil
	}
	return x.log2() / math.Log2(float64(base)), nil
}

func (x Int) log2() float64 {
	m := x.mag()
	top := len(m) - 1
	return float64(top*wordBits) + math.Log2(float64(m[top]))
}
