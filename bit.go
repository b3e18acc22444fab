package bignum

import (
	"fmt"
	"math/bits"
)

// Bit reports whether bit i of the magnitude is set. i must be less than
// BitsAllocated(), otherwise ErrBitIndexOutOfRange is returned.
func (x Int) Bit(i uint) (bool, error) {
	if err := x.checkBit(i); err != nil {
		return false, err
	}
	return (x.storage()[i/wordBits]>>(i%wordBits))&1 != 0, nil
}

// SetBit sets bit i of the magnitude to v. i must be less than
// BitsAllocated(), otherwise ErrBitIndexOutOfRange is returned. The word
// count never changes: clearing the last set bit of the most significant word
// keeps the word, so the bit can be set again.
//
// The words are copied before they are written, so values previously copied
// from x are unaffected. If the magnitude becomes zero, x is no longer
// negative; setting a bit again afterwards yields a positive value.
func (x *Int) SetBit(i uint, v bool) error {
	if err := x.checkBit(i); err != nil {
		return err
	}

	w := x.cloneStorage()
	mask := uint32(1) << (i % wordBits)
	if v {
		w[i/wordBits] |= mask
	} else {
		w[i/wordBits] &^= mask
	}
	x.setStorage(w)
	return nil
}

// ToggleBit flips bit i of the magnitude. The same range and sign rules as
// SetBit apply.
func (x *Int) ToggleBit(i uint) error {
	if err := x.checkBit(i); err != nil {
		return err
	}

	w := x.cloneStorage()
	w[i/wordBits] ^= uint32(1) << (i % wordBits)
	x.setStorage(w)
	return nil
}

func (x Int) cloneStorage() []uint32 {
	src := x.storage()
	w := make([]uint32, len(src))
	copy(w, src)
	return w
}

// setStorage replaces the words without trimming.
func (x *Int) setStorage(w []uint32) {
	x.words = w
	if x.IsZero() {
		x.neg = false
	}
}

// TrailingZeros returns the index of the lowest set bit. Zero has no set
// bits and returns 0.
func (x Int) TrailingZeros() uint {
	for i, w := range x.mag() {
		if w != 0 {
			return uint(i)*wordBits + uint(bits.TrailingZeros32(w))
		}
	}
	return 0
}

func (x Int) checkBit(i uint) error {
	if alloc := x.BitsAllocated(); i >= alloc {
		return fmt.Errorf("%w: %d >= %d", ErrBitIndexOutOfRange, i, alloc)
	}
	return nil
}
