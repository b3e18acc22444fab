package bignum

func (x Int) Inc() Int { return x.Add(one) }
func (x Int) Dec() Int { return x.Sub(one) }

func (x Int) Add(n Int) Int {
	xm, nm := x.mag(), n.mag()

	switch {
	case x.neg && n.neg:
		return norm(true, addMag(xm, nm))

	case x.neg: // -x + n
		if cmpMag(xm, nm) > 0 {
			return norm(true, subMag(xm, nm))
		}
		return norm(false, subMag(nm, xm))

	case n.neg: // x + -n
		if cmpMag(nm, xm) > 0 {
			return norm(true, subMag(nm, xm))
		}
		return norm(false, subMag(xm, nm))

	default:
		return norm(false, addMag(xm, nm))
	}
}

// Sub returns x - n. Rather than negating n and adding, the six sign and
// magnitude combinations are handled directly.
func (x Int) Sub(n Int) Int {
	xm, nm := x.mag(), n.mag()

	switch {
	case x.neg && !n.neg: // -x - n == -(x + n)
		return norm(true, addMag(xm, nm))

	case !x.neg && n.neg: // x - -n == x + n
		return norm(false, addMag(xm, nm))

	case x.neg && n.neg: // -x - -n == n - x
		if cmpMag(xm, nm) > 0 {
			return norm(true, subMag(xm, nm))
		}
		return norm(false, subMag(nm, xm))

	default:
		if cmpMag(xm, nm) < 0 {
			return norm(true, subMag(nm, xm))
		}
		return norm(false, subMag(xm, nm))
	}
}

// Mul returns the product of x and n using shift-and-add: for every set bit k
// in x's storage, n<<k is added to the running sum.
func (x Int) Mul(n Int) Int {
	xm := x.mag()
	by := n.Abs()

	var sum Int
	for wi, w := range xm {
		if w == 0 {
			continue
		}
		for b := uint(0); b < wordBits; b++ {
			if (w>>b)&1 != 0 {
				sum = sum.Add(by.Lsh(uint(wi)*wordBits + b))
			}
		}
	}

	sum.neg = x.neg != n.neg
	sum.trim()
	return sum
}

// Pow returns x raised to power by repeated multiplication. Pow(0) is 1 for
// every x, including 0.
func (x Int) Pow(power uint) Int {
	out := FromU32(1)
	for i := uint(0); i < power; i++ {
		out = x.Mul(out)
	}
	return out
}

// addMag adds two magnitudes, treating the longer as primary. The result is a
// new slice and may be one word longer than the longest input.
func addMag(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}

	out := make([]uint32, len(a), len(a)+1)

	var carry uint64
	for i := range a {
		sum := uint64(a[i]) + carry
		if i < len(b) {
			sum += uint64(b[i])
		}
		if sum > maxUint32 {
			carry = 1
			sum -= maxUint32 + 1
		} else {
			carry = 0
		}
		out[i] = uint32(sum)
	}

	if carry != 0 {
		out = append(out, uint32(carry))
	}
	return out
}

// subMag returns a - b in a new slice. |a| must be >= |b|; anything else is a
// bug in the caller and panics.
func subMag(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	if subWords(out, a, b) != 0 {
		panic("bignum: magnitude subtraction underflow")
	}
	return out
}

// subWords stores a - b into z and returns the borrow escaping the top word.
// z must be len(a) words long and may alias a. len(a) must be >= len(b).
func subWords(z, a, b []uint32) (borrow int64) {
	if len(a) < len(b) {
		panic("bignum: magnitude subtraction underflow")
	}
	for i := range a {
		diff := int64(a[i]) - borrow
		if i < len(b) {
			diff -= int64(b[i])
		}
		if diff < 0 {
			borrow = 1
			diff += maxUint32 + 1
		} else {
			borrow = 0
		}
		z[i] = uint32(diff)
	}
	return borrow
}

// trimWords is trim for a bare magnitude.
func trimWords(w []uint32) []uint32 {
	n := len(w)
	for n > 1 && w[n-1] == 0 {
		n--
	}
	return w[:n]
}
