package bignum

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestFromHex(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out Int
	}{
		{"0", i64(0)},
		{"-0", i64(0)},
		{"00000000000000000", i64(0)},
		{"1", i64(1)},
		{"-1", i64(-1)},
		{"ff", i64(255)},
		{"FF", i64(255)},
		{"FFFFFFFF", u64(0xFFFFFFFF)},
		{"100000000", u64(1 << 32)},
		{"-123456789ABCDEF0", i64(-0x123456789ABCDEF0)},
		{"0000000000000001", i64(1)},
		{"1234567890abcdef1234567890abcdef", FromRaw(false, 0x90abcdef, 0x12345678, 0x90abcdef, 0x12345678)},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := FromHex(tc.in)
			tt.MustOK(err)
			tt.MustAssert(tc.out.Equal(v), "found %s", v)
			tt.MustOK(checkTrimmed(v))
		})
	}
}

func TestFromHexInvalid(t *testing.T) {
	for _, in := range []string{"", "-", "--1", "+1", "xyz", "0x10", "12 34", "1_0", "ffffffffg"} {
		t.Run(in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := FromHex(in)
			tt.MustAssert(errors.Is(err, ErrMalformedNumeral), "%v", err)
		})
	}
}

func TestFromString(t *testing.T) {
	for _, tc := range []struct {
		in   string
		base int
		out  Int
	}{
		{"0", 10, i64(0)},
		{"-0", 10, i64(0)},
		{"123", 10, i64(123)},
		{"-123", 10, i64(-123)},
		{"1010", 2, i64(10)},
		{"777", 8, i64(511)},
		{"zz", 36, i64(1295)},
		{"-Zz", 36, i64(-1295)},
		{"ffffffffffffffff", 16, u64(0xFFFFFFFFFFFFFFFF)},
		{"18446744073709551616", 10, hexs("1 00000000 00000000")},
	} {
		t.Run(fmt.Sprintf("%s/%d", tc.in, tc.base), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := FromString(tc.in, tc.base)
			tt.MustOK(err)
			tt.MustAssert(tc.out.Equal(v), "found %s", v)
			tt.MustOK(checkTrimmed(v))
		})
	}
}

func TestFromStringInvalid(t *testing.T) {
	for _, tc := range []struct {
		in   string
		base int
		err  error
	}{
		{"1", 1, ErrInvalidBase},
		{"1", 37, ErrInvalidBase},
		{"1", -10, ErrInvalidBase},
		{"", 10, ErrMalformedNumeral},
		{"-", 10, ErrMalformedNumeral},
		{"102", 2, ErrMalformedNumeral},
		{"12a", 10, ErrMalformedNumeral},
		{"1.5", 10, ErrMalformedNumeral},
		{" 1", 10, ErrMalformedNumeral},
	} {
		t.Run(fmt.Sprintf("%q/%d", tc.in, tc.base), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := FromString(tc.in, tc.base)
			tt.MustAssert(errors.Is(err, tc.err), "%v", err)
		})
	}
}

func TestIntText(t *testing.T) {
	for _, tc := range []struct {
		in   Int
		base int
		out  string
	}{
		{i64(0), 10, "0"},
		{i64(0), 2, "0"},
		{i64(255), 16, "FF"},
		{i64(-255), 16, "-FF"},
		{i64(-255), 2, "-11111111"},
		{i64(35), 36, "Z"},
		{i64(36), 36, "10"},
		{i64(8), 8, "10"},
		{hexs("1 00000000 00000000"), 10, "18446744073709551616"},
		{hexs("-ABCDEF01 23456789"), 16, "-ABCDEF0123456789"},
	} {
		t.Run(fmt.Sprintf("%s/%d", tc.out, tc.base), func(t *testing.T) {
			tt := assert.WrapTB(t)
			s, err := tc.in.Text(tc.base)
			tt.MustOK(err)
			tt.MustEqual(tc.out, s)
		})
	}
}

func TestIntTextInvalidBase(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, base := range []int{-1, 0, 1, 37, 100} {
		_, err := i64(10).Text(base)
		tt.MustAssert(errors.Is(err, ErrInvalidBase), "base %d", base)
	}
}

func TestIntTextRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	r := &rando{rng: globalRNG, bits: 200}

	for base := minBase; base <= maxBase; base++ {
		for i := 0; i < 20; i++ {
			r.Clear()
			b := r.BigInt()
			v := FromBigInt(b)

			s, err := v.Text(base)
			tt.MustOK(err)
			tt.MustEqual(strings.ToUpper(b.Text(base)), s)

			back, err := FromString(s, base)
			tt.MustOK(err)
			tt.MustAssert(v.Equal(back), "base %d: %s != %s", base, v, back)

			back, err = FromString(strings.ToLower(s), base)
			tt.MustOK(err)
			tt.MustAssert(v.Equal(back))
		}
	}
}

func TestIntFormat(t *testing.T) {
	for _, tc := range []struct {
		format string
		in     Int
		out    string
	}{
		{"%d", i64(0), "0"},
		{"%d", i64(-255), "-255"},
		{"%v", i64(-255), "-255"},
		{"%s", i64(255), "255"},
		{"%x", i64(255), "ff"},
		{"%X", i64(255), "FF"},
		{"%x", i64(-255), "-ff"},
		{"%#x", i64(255), "0xff"},
		{"%#X", i64(-255), "-0XFF"},
		{"%b", i64(5), "101"},
		{"%#b", i64(5), "0b101"},
		{"%o", i64(8), "10"},
		{"%#o", i64(8), "010"},
		{"%O", i64(8), "0o10"},
		{"%+d", i64(5), "+5"},
		{"%+d", i64(-5), "-5"},
		{"% d", i64(5), " 5"},
		{"%6d", i64(-5), "    -5"},
		{"%-6d|", i64(-5), "-5    |"},
		{"%06d", i64(-5), "-00005"},
		{"%#08x", i64(255), "0x0000ff"},
		{"%2d", i64(12345), "12345"},
		{"%x", hexs("1 00000000 00000000"), "10000000000000000"},
		{"%q", i64(5), "%!q(bignum.Int=5)"},
	} {
		t.Run(fmt.Sprintf("%s/%s", tc.format, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.format, tc.in))
		})
	}
}

func TestIntScan(t *testing.T) {
	tt := assert.WrapTB(t)

	var a, b Int
	n, err := fmt.Sscan("-ff  1234567890abcdef1", &a, &b)
	tt.MustOK(err)
	tt.MustEqual(2, n)
	tt.MustAssert(i64(-255).Equal(a), "found %s", a)
	tt.MustAssert(hexs("1 23456789 0ABCDEF1").Equal(b), "found %s", b)

	_, err = fmt.Sscan("nope", &a)
	tt.MustAssert(errors.Is(err, ErrMalformedNumeral), "%v", err)
}

func TestIntMarshalText(t *testing.T) {
	tt := assert.WrapTB(t)

	type wrapper struct {
		V Int
		P *Int
	}

	p := decs("-98765432109876543210")
	bts, err := json.Marshal(wrapper{V: i64(12), P: &p})
	tt.MustOK(err)
	tt.MustEqual(`{"V":"12","P":"-98765432109876543210"}`, string(bts))

	var out wrapper
	tt.MustOK(json.Unmarshal(bts, &out))
	tt.MustAssert(i64(12).Equal(out.V))
	tt.MustAssert(p.Equal(*out.P))

	var v Int
	tt.MustAssert(errors.Is(v.UnmarshalText([]byte("ff")), ErrMalformedNumeral))
}
