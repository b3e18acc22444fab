package bignum

import (
	"math/big"
	"math/bits"
)

// Int is an arbitrary-precision signed integer in sign-magnitude form. The
// magnitude is a little-endian sequence of 32-bit words. Every constructor and
// every arithmetic result is trimmed: the most significant word is non-zero
// unless the value is zero, in which case there is exactly one word. SetBit
// and ToggleBit never change the word count, so they can leave zero words at
// the top; everything that reads the magnitude ignores them. Zero is never
// negative.
//
// The zero value is ready to use and equals 0.
type Int struct {
	neg   bool
	words []uint32
}

func FromU32(v uint32) Int { return Int{words: []uint32{v}} }
func FromU64(v uint64) Int { return fromMag64(false, v) }
func FromInt(v int) Int    { return From64(int64(v)) }

func From32(v int32) Int {
	if v < 0 {
		return Int{neg: true, words: []uint32{uint32(-int64(v))}}
	}
	return Int{words: []uint32{uint32(v)}}
}

func From64(v int64) Int {
	if v < 0 {
		// Two's complement negation keeps math.MinInt64 intact as 1<<63:
		return fromMag64(true, ^uint64(v)+1)
	}
	return fromMag64(false, uint64(v))
}

// FromRaw creates an Int from a sign and a little-endian list of words. The
// words are copied.
func FromRaw(neg bool, words ...uint32) Int {
	w := make([]uint32, len(words))
	copy(w, words)
	return norm(neg, w)
}

// FromBigInt creates an Int from a big.Int. The result never shares memory
// with v.
func FromBigInt(v *big.Int) Int {
	words := v.Bits()

	var out []uint32
	switch intSize {
	case 64:
		out = make([]uint32, 0, len(words)*2)
		for _, w := range words {
			out = append(out, uint32(uint64(w)&wordMask), uint32(uint64(w)>>32))
		}
	case 32:
		out = make([]uint32, len(words))
		for i, w := range words {
			out[i] = uint32(w)
		}
	default:
		panic("bignum: unsupported bit size")
	}

	return norm(v.Sign() < 0, out)
}

func fromMag64(neg bool, v uint64) Int {
	return norm(neg, []uint32{uint32(v & wordMask), uint32(v >> wordBits)})
}

// norm takes ownership of words and returns a trimmed Int.
func norm(neg bool, words []uint32) Int {
	v := Int{neg: neg, words: words}
	v.trim()
	return v
}

// trim removes most significant zero words, leaving at least one word, and
// clears the sign of zero.
func (x *Int) trim() {
	n := len(x.words)
	for n > 1 && x.words[n-1] == 0 {
		n--
	}
	if n == 0 {
		x.words = []uint32{0}
		n = 1
	}
	x.words = x.words[:n]
	if n == 1 && x.words[0] == 0 {
		x.neg = false
	}
}

// storage returns the allocated words, including any zero words SetBit or
// ToggleBit left at the top. Callers must not write to the returned slice.
func (x Int) storage() []uint32 {
	if len(x.words) == 0 {
		return zero.words
	}
	return x.words
}

// mag returns the trimmed magnitude words for reading. Callers must not write
// to the returned slice.
func (x Int) mag() []uint32 {
	return trimWords(x.storage())
}

func (x Int) IsZero() bool {
	m := x.mag()
	return len(m) == 1 && m[0] == 0
}

func (x Int) Negative() bool { return x.neg }

func (x Int) Sign() int {
	if x.IsZero() {
		return 0
	} else if x.neg {
		return -1
	}
	return 1
}

func (x Int) Even() bool { return x.mag()[0]&1 == 0 }
func (x Int) Odd() bool  { return x.mag()[0]&1 != 0 }

// BitsAllocated returns the number of bits in the word storage, which is the
// largest value BitsUsed can reach before the storage needs to grow. Bit
// accessors accept any index below this.
func (x Int) BitsAllocated() uint { return uint(len(x.storage())) * wordBits }

// BitsUsed returns the smallest number of bits the magnitude fits in. Zero
// uses 0 bits.
func (x Int) BitsUsed() uint {
	m := x.mag()
	top := len(m) - 1
	return uint(top)*wordBits + uint(bits.Len32(m[top]))
}

// Words returns a copy of the magnitude, least significant word first.
func (x Int) Words() []uint32 {
	m := x.mag()
	out := make([]uint32, len(m))
	copy(out, m)
	return out
}

func (x Int) Abs() Int {
	return Int{words: x.Words()}
}

// Neg flips the sign. The negation of zero is zero, which is not negative.
func (x Int) Neg() Int {
	out := Int{neg: !x.neg, words: x.Words()}
	if out.IsZero() {
		out.neg = false
	}
	return out
}

// AsUint32 returns the least significant word of the magnitude. The sign is
// ignored.
func (x Int) AsUint32() uint32 { return x.mag()[0] }

// AsInt32 truncates the magnitude to 32 bits and applies the sign. Values
// outside the range will over/underflow.
func (x Int) AsInt32() int32 {
	v := int32(x.mag()[0])
	if x.neg {
		return -v
	}
	return v
}

// AsUint64 returns the least significant 64 bits of the magnitude. The sign is
// ignored. See IsUint64() if you want to check before you convert.
func (x Int) AsUint64() uint64 {
	m := x.mag()
	v := uint64(m[0])
	if len(m) > 1 {
		v |= uint64(m[1]) << wordBits
	}
	return v
}

// AsInt64 truncates the magnitude to 64 bits and applies the sign. Values
// outside the range will over/underflow. See IsInt64() if you want to check
// before you convert.
func (x Int) AsInt64() int64 {
	v := int64(x.AsUint64())
	if x.neg {
		return -v
	}
	return v
}

// IsUint64 reports whether x can be represented as a uint64.
func (x Int) IsUint64() bool {
	return !x.neg && len(x.mag()) <= 2
}

// IsInt64 reports whether x can be represented as an int64.
func (x Int) IsInt64() bool {
	if len(x.mag()) > 2 {
		return false
	}
	u := x.AsUint64()
	if x.neg {
		return u <= maxInt64+1
	}
	return u <= maxInt64
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (x Int) IntoBigInt(b *big.Int) {
	m := x.mag()

	var bw []big.Word
	switch intSize {
	case 64:
		n := (len(m) + 1) / 2
		bw = b.Bits()
		if cap(bw) < n {
			bw = make([]big.Word, n)
		} else {
			bw = bw[:n]
			for i := range bw {
				bw[i] = 0
			}
		}
		for i, w := range m {
			bw[i/2] |= big.Word(w) << (wordBits * uint(i%2))
		}

	case 32:
		bw = b.Bits()
		if cap(bw) < len(m) {
			bw = make([]big.Word, len(m))
		} else {
			bw = bw[:len(m)]
		}
		for i, w := range m {
			bw[i] = big.Word(w)
		}

	default:
		panic("bignum: unsupported bit size")
	}

	b.SetBits(bw)
	if x.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (x Int) AsBigInt() *big.Int {
	var v big.Int
	x.IntoBigInt(&v)
	return &v
}
