package bignum

// QuoRem returns the quotient q and remainder r of x / by in a single pass.
// If by is zero, ErrDivideByZero is returned. If you need both values, this
// is twice as fast as calling Quo then Rem.
//
// The magnitudes follow truncated division; the signs are assigned as
// follows:
//
//	q is negative if exactly one of x and by is negative and q != 0
//	r has the same sign as q if r != 0
//
// The remainder takes its sign from the quotient, not the dividend. The
// results differ from Go's '/' and '%' when the signs of x and by differ, and
// when |x| < |by| with a negative x:
//
//	 17 QuoRem  5 == ( 3,  2)
//	-17 QuoRem  5 == (-3, -2)
//	 17 QuoRem -5 == (-3, -2)
//	 -3 QuoRem  5 == ( 0,  3)
func (x Int) QuoRem(by Int) (q, r Int, err error) {
	if by.IsZero() {
		return q, r, ErrDivideByZero
	}

	qm, rm := quoRemMag(x.mag(), by.mag())

	q = norm(false, qm)
	if !q.IsZero() {
		q.neg = x.neg != by.neg
	}
	r = norm(false, rm)
	if !r.IsZero() {
		r.neg = q.neg
	}
	return q, r, nil
}

// Quo returns the quotient of x / by, with the sign rules described in
// QuoRem. If by is zero, ErrDivideByZero is returned.
func (x Int) Quo(by Int) (q Int, err error) {
	q, _, err = x.QuoRem(by)
	return q, err
}

// Rem returns the remainder of x divided by the magnitude of by. The sign of
// by is ignored, so the result is negative only when x is negative and
// |x| >= |by|:
//
//	 17 Rem  5 ==  2
//	 17 Rem -5 ==  2
//	-17 Rem  5 == -2
//	 -3 Rem  5 ==  3
//
// If by is zero, ErrDivideByZero is returned.
func (x Int) Rem(by Int) (r Int, err error) {
	_, r, err = x.QuoRem(by.Abs())
	return r, err
}

// quoRemMag performs bit-serial restoring division on two magnitudes. Every
// bit of u's storage is visited from the top down; the running remainder is
// shifted left with that bit injected, and whenever it reaches v, v is
// subtracted and the matching quotient bit is set. The quotient's storage is
// grown the first time a bit lands beyond it.
func quoRemMag(u, v []uint32) (q, r []uint32) {
	r = make([]uint32, 1, len(v)+1)

	for i := len(u)*wordBits - 1; i >= 0; i-- {
		wi, bi := i/wordBits, uint(i%wordBits)

		// {{{ Lsh(1), then inject bit i of u
		r = shl1(r)
		r[0] |= (u[wi] >> bi) & 1
		// }}}

		if cmpMag(r, v) >= 0 {
			if subWords(r, r, v) != 0 {
				panic("bignum: magnitude subtraction underflow")
			}
			r = trimWords(r)

			if len(q) <= wi {
				q = append(q, make([]uint32, wi+1-len(q))...)
			}
			q[wi] |= 1 << bi
		}
	}

	return q, r
}
