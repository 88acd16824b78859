package bignum

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/smallyu/go-bignum/internal/nat"
)

// Text returns x in the given radix: an optional '-' followed by digits
// 0-9, a-z, A-Z with no leading zeros; 0 renders as "0". It panics if
// radix is outside [2, 62].
func (x *Int) Text(radix int) string {
	if x == nil {
		return "<nil>"
	}
	checkRadix(radix)
	return string(x.appendText(nil, radix))
}

func (x *Int) appendText(buf []byte, radix int) []byte {
	if x.neg {
		buf = append(buf, '-')
	}
	return append(buf, nat.Text(x.abs, radix)...)
}

func checkRadix(radix int) {
	if radix < nat.MinRadix || radix > nat.MaxRadix {
		panic(fmt.Sprintf("bignum: radix %d out of range [%d, %d]", radix, nat.MinRadix, nat.MaxRadix))
	}
}

// String returns x in base 10.
func (x *Int) String() string {
	return x.Text(10)
}

// SizeInBase returns the number of digits of |x| in the given radix,
// exact or one too large, without producing the digits.
func (x *Int) SizeInBase(radix int) int {
	checkRadix(radix)
	return nat.SizeInBase(x.abs, radix)
}

// Parse converts s in the given radix to an Int. s is an optional '-'
// followed by at least one digit. For radix <= 36 letters are
// case-insensitive; above that 'a'-'z' are 10-35 and 'A'-'Z' are 36-61.
func Parse(s string, radix int) (*Int, error) {
	return new(Int).SetString(s, radix)
}

// MustParse is like Parse but panics on error.
func MustParse(s string, radix int) *Int {
	z, err := Parse(s, radix)
	if err != nil {
		panic(err)
	}
	return z
}

// SetString sets z to the value of s (see Parse). On error z is unchanged.
func (z *Int) SetString(s string, radix int) (*Int, error) {
	if radix < nat.MinRadix || radix > nat.MaxRadix {
		return nil, domainError("radix %d out of range", radix)
	}
	neg := false
	digits := s
	if strings.HasPrefix(digits, "-") {
		neg = true
		digits = digits[1:]
	}
	if digits == "" {
		return nil, &ParseError{Input: s, Radix: radix, Offset: len(s), Reason: "missing digits"}
	}
	abs, off, err := nat.Parse(digits, radix)
	if err != nil {
		if neg {
			off++
		}
		return nil, &ParseError{Input: s, Radix: radix, Offset: off, Reason: "invalid digit"}
	}
	return z.setSigned(neg, abs), nil
}

// Format implements fmt.Formatter for the verbs b, o, O, d, x, X, s and v,
// honouring the '+', ' ', '#', '-' and '0' flags and the width.
func (x *Int) Format(s fmt.State, ch rune) {
	var radix int
	switch ch {
	case 'b':
		radix = 2
	case 'o', 'O':
		radix = 8
	case 'd', 's', 'v':
		radix = 10
	case 'x', 'X':
		radix = 16
	default:
		fmt.Fprintf(s, "%%!%c(bignum.Int=%s)", ch, x.String())
		return
	}
	if x == nil {
		io.WriteString(s, "<nil>")
		return
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
	if s.Flag('#') {
		switch ch {
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
	if ch == 'O' {
		prefix = "0o"
	}

	digits := nat.Text(x.abs, radix)
	if ch == 'X' {
		digits = bytes.ToUpper(digits)
	}

	var out []byte
	pad := 0
	if w, ok := s.Width(); ok {
		pad = w - len(sign) - len(prefix) - len(digits)
	}
	switch {
	case pad <= 0:
		out = fmt.Appendf(out, "%s%s%s", sign, prefix, digits)
	case s.Flag('-'):
		out = fmt.Appendf(out, "%s%s%s%s", sign, prefix, digits, strings.Repeat(" ", pad))
	case s.Flag('0'):
		out = fmt.Appendf(out, "%s%s%s%s", sign, prefix, strings.Repeat("0", pad), digits)
	default:
		out = fmt.Appendf(out, "%s%s%s%s", strings.Repeat(" ", pad), sign, prefix, digits)
	}
	s.Write(out)
}

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.appendText(nil, 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) error {
	_, err := z.SetString(string(text), 10)
	return err
}

// MarshalJSON implements json.Marshaler; the value is a JSON number.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return x.appendText(nil, 10), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a JSON number or a
// quoted decimal string; null leaves z unchanged.
func (z *Int) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	text = bytes.TrimPrefix(bytes.TrimSuffix(text, []byte{'"'}), []byte{'"'})
	return z.UnmarshalText(text)
}
