package bignum

// Lsh returns x shifted left by n bits. Whole words are inserted at the least
// significant end in one step, then the remaining n%32 bits are shifted one
// at a time. The sign is preserved.
func (x Int) Lsh(n uint) Int {
	if x.IsZero() {
		return FromU32(0)
	}

	m := x.mag()
	skip := n / wordBits
	n %= wordBits

	w := make([]uint32, int(skip)+len(m), int(skip)+len(m)+1)
	copy(w[skip:], m)

	for ; n > 0; n-- {
		w = shl1(w)
	}
	return Int{neg: x.neg, words: w}
}

// Rsh returns x shifted right by n bits. The magnitude is shifted, so this is
// not an arithmetic shift for negative values: -5 >> 1 == -2. The sign is
// preserved unless the result is zero.
func (x Int) Rsh(n uint) Int {
	m := x.mag()
	drop := n / wordBits
	if drop >= uint(len(m)) {
		return FromU32(0)
	}

	w := make([]uint32, uint(len(m))-drop)
	copy(w, m[drop:])

	for n %= wordBits; n > 0; n-- {
		shr1(w)
	}
	return norm(x.neg, w)
}

// shl1 shifts w left by a single bit in place, walking from the least
// significant word up. If a bit escapes the top word, a new word is appended.
func shl1(w []uint32) []uint32 {
	var carry uint32
	for i, v := range w {
		w[i] = (v << 1) | carry
		carry = v >> (wordBits - 1)
	}
	if carry != 0 {
		w = append(w, carry)
	}
	return w
}

// shr1 shifts w right by a single bit in place, walking from the most
// significant word down. The bit shifted out of the bottom is lost.
func shr1(w []uint32) {
	var carry uint32
	for i := len(w) - 1; i >= 0; i-- {
		v := w[i]
		w[i] = (v >> 1) | (carry << (wordBits - 1))
		carry = v & 1
	}
}
