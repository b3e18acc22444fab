package bignum

type RandSource interface {
	Uint64() uint64
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func Larger(a, b Int) Int {
	if a.LessThan(b) {
		return b
	}
	return a
}

func Smaller(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}
