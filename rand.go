package bignum

import "math/rand"

// globalSource draws from math/rand's process-wide source, which is safe for
// concurrent use and randomly seeded.
type globalSource struct{}

func (globalSource) Uint64() uint64 { return rand.Uint64() }

// Rand generates a random Int of up to the requested number of bits from the
// process-wide random source. The sign is random unless positivesOnly is set.
// See RandFrom.
func Rand(bits uint, positivesOnly bool) Int {
	return RandFrom(globalSource{}, bits, positivesOnly)
}

// RandFrom generates a random Int of up to the requested number of bits from
// an external source. bits/32 whole words are filled with random bits; if
// bits is not a multiple of 32, one more word holds the remaining random low
// bits with the upper bits clear. The sign is drawn from the source unless
// positivesOnly is set.
//
// The result is trimmed like every other Int, so in the unlikely event that
// the most significant words come up zero, BitsAllocated will be less than
// bits. Zero bits yields zero.
func RandFrom(source RandSource, bits uint, positivesOnly bool) Int {
	full, extra := bits/wordBits, bits%wordBits

	var neg bool
	if !positivesOnly {
		neg = source.Uint64()&1 == 1
	}

	words := make([]uint32, full, full+1)
	for i := range words {
		words[i] = uint32(source.Uint64())
	}
	if extra > 0 {
		words = append(words, uint32(source.Uint64())>>(wordBits-extra))
	}

	return norm(neg, words)
}
