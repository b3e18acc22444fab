package bignum

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FromHex creates an Int from a hexadecimal string, most significant digit
// first, with an optional leading '-'. No '0x' prefix is accepted. Digits are
// consumed in groups of 8 from the least significant end, one group per word.
func FromHex(s string) (out Int, err error) {
	num := s
	neg := strings.HasPrefix(num, "-")
	if neg {
		num = num[1:]
	}
	if num == "" {
		return out, fmt.Errorf("%w: empty hex string %q", ErrMalformedNumeral, s)
	}

	words := make([]uint32, 0, (len(num)+7)/8)
	for hi := len(num); hi > 0; hi -= 8 {
		lo := hi - 8
		if lo < 0 {
			lo = 0
		}
		v, err := strconv.ParseUint(num[lo:hi], 16, 32)
		if err != nil {
			return out, fmt.Errorf("%w: hex string %q", ErrMalformedNumeral, s)
		}
		words = append(words, uint32(v))
	}

	return norm(neg, words), nil
}

// FromString creates an Int from a string in the given base (2 to 36), with
// an optional leading '-'. Digits above 9 may be upper or lower case. This is
// the inverse of Text.
func FromString(s string, base int) (out Int, err error) {
	if base < minBase || base > maxBase {
		return out, fmt.Errorf("%w %d", ErrInvalidBase, base)
	}

	num := s
	neg := strings.HasPrefix(num, "-")
	if neg {
		num = num[1:]
	}
	if num == "" {
		return out, fmt.Errorf("%w: empty string %q", ErrMalformedNumeral, s)
	}

	bigBase := FromU32(uint32(base))
	acc := zero
	for i := 0; i < len(num); i++ {
		d := digitValue(num[i])
		if d >= base {
			return out, fmt.Errorf("%w: invalid base %d digit %q in %q", ErrMalformedNumeral, base, num[i], s)
		}
		acc = bigBase.Mul(acc).Add(FromU32(uint32(d)))
	}

	acc.neg = neg
	acc.trim()
	return acc, nil
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return maxBase
}

// Text returns the string representation of x in the given base, which must
// be between 2 and 36 inclusive. Digits above 9 are upper case. Negative
// values are prefixed with '-'.
func (x Int) Text(base int) (string, error) {
	if base < minBase || base > maxBase {
		return "", fmt.Errorf("%w %d", ErrInvalidBase, base)
	}
	return x.text(base), nil
}

func (x Int) String() string {
	return x.text(10)
}

// text repeatedly divides the magnitude by base, collecting one digit per
// remainder. base must already be valid.
func (x Int) text(base int) string {
	bigBase := FromU32(uint32(base))

	var out []byte
	q := x.Abs()
	for {
		var r Int
		q, r, _ = q.QuoRem(bigBase)
		out = append(out, digits[r.AsUint32()])
		if q.IsZero() {
			break
		}
	}
	if x.neg {
		out = append(out, '-')
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Format implements fmt.Formatter. It accepts 'b' (binary), 'o' (octal), 'O'
// (octal with a 0o prefix), 'd', 's' and 'v' (decimal), 'x' (lowercase
// hexadecimal) and 'X' (uppercase hexadecimal). The '+', ' ', '#', '-' and
// '0' flags and a minimum width are supported; precision is ignored.
func (x Int) Format(s fmt.State, c rune) {
	var base int
	switch c {
	case 'b':
		base = 2
	case 'o', 'O':
		base = 8
	case 'd', 's', 'v':
		base = 10
	case 'x', 'X':
		base = 16
	default:
		fmt.Fprintf(s, "%%!%c(bignum.Int=%s)", c, x.String())
		return
	}

	num := x.Abs().text(base)
	if c == 'x' {
		num = strings.ToLower(num)
	}

	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	prefix := ""
	if c == 'O' {
		prefix = "0o"
	} else if s.Flag('#') {
		switch c {
		case 'b':
			prefix = "0b"
		case 'o':
			prefix = "0"
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}

	body := sign + prefix + num
	width, ok := s.Width()
	pad := width - len(body)

	switch {
	case !ok || pad <= 0:
		io.WriteString(s, body)
	case s.Flag('-'):
		io.WriteString(s, body+strings.Repeat(" ", pad))
	case s.Flag('0'):
		io.WriteString(s, sign+prefix+strings.Repeat("0", pad)+num)
	default:
		io.WriteString(s, strings.Repeat(" ", pad)+body)
	}
}

// Scan implements fmt.Scanner. It reads a single whitespace-delimited token
// and parses it as hexadecimal, like FromHex, regardless of the verb.
func (x *Int) Scan(state fmt.ScanState, verb rune) error {
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	v, err := FromHex(string(tok))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int) UnmarshalText(bts []byte) (err error) {
	v, err := FromString(string(bts), 10)
	if err != nil {
		return err
	}
	*x = v
	return nil
}
