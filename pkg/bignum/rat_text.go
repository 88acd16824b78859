package bignum

import (
	"bytes"
	"errors"
	"strings"
)

// String returns x as "n" when it is an integer and "n/d" otherwise, in
// base 10.
func (x *Rat) String() string {
	if x == nil {
		return "<nil>"
	}
	return x.Text(10)
}

// Text returns x in the given radix in the same shape as String. It
// panics if radix is outside [2, 62].
func (x *Rat) Text(radix int) string {
	checkRadix(radix)
	return string(x.appendText(nil, radix))
}

func (x *Rat) appendText(buf []byte, radix int) []byte {
	buf = x.num.appendText(buf, radix)
	if !x.IsInt() {
		buf = append(buf, '/')
		buf = x.denom().appendText(buf, radix)
	}
	return buf
}

// ParseRat converts "n" or "n/d" in the given radix to a Rat in lowest
// terms. Only the numerator may carry a '-'. A zero denominator is
// ErrDivisionByZero; malformed text is a *ParseError whose Offset indexes
// into s.
func ParseRat(s string, radix int) (*Rat, error) {
	return new(Rat).SetString(s, radix)
}

// MustParseRat is like ParseRat but panics on error.
func MustParseRat(s string, radix int) *Rat {
	z, err := ParseRat(s, radix)
	if err != nil {
		panic(err)
	}
	return z
}

// SetString sets z to the value of s (see ParseRat). On error z is
// unchanged.
func (z *Rat) SetString(s string, radix int) (*Rat, error) {
	numText, denText, frac := strings.Cut(s, "/")
	num, err := Parse(numText, radix)
	if err != nil {
		return nil, reparent(err, s, 0)
	}
	if !frac {
		return z.assign(newRatReduced(num, One())), nil
	}
	off := len(numText) + 1
	if strings.HasPrefix(denText, "-") {
		return nil, &ParseError{Input: s, Radix: radix, Offset: off, Reason: "invalid digit"}
	}
	den, err := Parse(denText, radix)
	if err != nil {
		return nil, reparent(err, s, off)
	}
	if den.IsZero() {
		return nil, ErrDivisionByZero
	}
	return z.assign(normalize(num, den)), nil
}

// reparent rewrites a *ParseError for a substring so that it reports the
// whole input and an offset into it.
func reparent(err error, s string, off int) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	return &ParseError{Input: s, Radix: pe.Radix, Offset: pe.Offset + off, Reason: pe.Reason}
}

// MarshalText implements encoding.TextMarshaler.
func (x *Rat) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.appendText(nil, 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Rat) UnmarshalText(text []byte) error {
	_, err := z.SetString(string(text), 10)
	return err
}

// MarshalJSON implements json.Marshaler. The value is a JSON string since
// "n/d" is not a JSON number.
func (x *Rat) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	buf := append([]byte{'"'}, x.appendText(nil, 10)...)
	return append(buf, '"'), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a quoted "n/d" or
// "n" string or a bare integer; null leaves z unchanged.
func (z *Rat) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	text = bytes.TrimPrefix(bytes.TrimSuffix(text, []byte{'"'}), []byte{'"'})
	return z.UnmarshalText(text)
}
