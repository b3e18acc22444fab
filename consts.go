package bignum

const (
	wordBits = 32
	wordMask = 1<<wordBits - 1

	maxUint32 = 1<<32 - 1
	maxInt64  = 1<<63 - 1

	minBase = 2
	maxBase = 36

	intSize = 32 << (^uint(0) >> 63)
)

// digits are used by Text and FromString. Text always emits upper case.
const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	zero = Int{words: []uint32{0}}
	one  = Int{words: []uint32{1}}
)
