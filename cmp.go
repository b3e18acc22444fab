package bignum

// Cmp compares x to n and returns:
//
//	-1 if x <  n
//	 0 if x == n
//	+1 if x >  n
//
// Values with different signs, or different word counts, are ordered without
// looking at the words. Otherwise the words are compared from the most
// significant down, so Cmp is O(n) in the worst case.
func (x Int) Cmp(n Int) int {
	if x.neg && !n.neg {
		return -1
	} else if !x.neg && n.neg {
		return 1
	}

	c := cmpMag(x.mag(), n.mag())
	if x.neg {
		return -c
	}
	return c
}

// Equal requires the same sign, the same word count and the same words.
func (x Int) Equal(n Int) bool {
	xm, nm := x.mag(), n.mag()
	if x.neg != n.neg || len(xm) != len(nm) {
		return false
	}
	for i := range xm {
		if xm[i] != nm[i] {
			return false
		}
	}
	return true
}

func (x Int) GreaterThan(n Int) bool      { return x.Cmp(n) > 0 }
func (x Int) GreaterOrEqualTo(n Int) bool { return x.Cmp(n) >= 0 }
func (x Int) LessThan(n Int) bool         { return x.Cmp(n) < 0 }
func (x Int) LessOrEqualTo(n Int) bool    { return x.Cmp(n) <= 0 }

// cmpMag compares two trimmed magnitudes. A shorter magnitude is smaller.
func cmpMag(a, b []uint32) int {
	if len(a) < len(b) {
		return -1
	} else if len(a) > len(b) {
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	return 0
}
