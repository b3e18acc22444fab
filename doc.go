/*
Package bignum provides an arbitrary-precision signed integer (Int), stored as
a sign flag and a little-endian sequence of 32-bit words.

Int is a value type; all operations return new values which own their words
outright, so the Go equivalent of 'x += y' is simply 'x = x.Add(y)'.

Simple example:

	a, _ := FromHex("FFFFFFFFFFFFFFFF")
	b := FromU64(math.MaxUint64)
	fmt.Println(a.Mul(b))
	// Output: 340282366920938463426481119284349108225

Int can be created from a variety of sources:

	FromU32(v uint32) Int
	From32(v int32) Int
	FromU64(v uint64) Int
	From64(v int64) Int
	FromInt(v int) Int
	FromRaw(neg bool, words ...uint32) Int
	FromHex(s string) (Int, error)
	FromString(s string, base int) (Int, error)
	FromBigInt(v *big.Int) Int
	Rand(bits uint, positivesOnly bool) Int
	RandFrom(source RandSource, bits uint, positivesOnly bool) Int

Division is bit-serial restoring division. QuoRem computes both the quotient
and the remainder in a single pass; Quo and Rem are wrappers around it. The
remainder takes the sign of the quotient, which is not the same as Go's
truncated '%' for all negative operands. See QuoRem for details.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- fmt.Scanner (hexadecimal input)
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Int is not safe for concurrent mutation via SetBit or ToggleBit; every other
method only reads its receiver.
*/
package bignum
