package nat

import (
	"errors"
	"math"
	"math/bits"
)

// MinRadix and MaxRadix bound the radixes accepted by Text and Parse.
const (
	MinRadix = 2
	MaxRadix = 62
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrInvalidDigit is returned by Parse together with the offset of the
// first offending byte.
var ErrInvalidDigit = errors.New("nat: invalid digit")

// chunk returns the largest power bb = radix**n that fits in a word.
func chunk(radix uint64) (bb uint64, n int) {
	bb, n = radix, 1
	for {
		hi, lo := bits.Mul64(bb, radix)
		if hi != 0 {
			return bb, n
		}
		bb = lo
		n++
	}
}

// Text returns the digits of x in the given radix, most significant first,
// with no leading zeros; "0" for zero. The radix must be in [MinRadix, MaxRadix].
func Text(x Nat, radix int) []byte {
	x = x.Norm()
	if len(x) == 0 {
		return []byte{'0'}
	}
	r := uint64(radix)
	bb, ndigits := chunk(r)

	buf := make([]byte, 0, SizeInBase(x, radix))
	q := x.Clone()
	for len(q) > 0 {
		var w uint64
		q, w = divInPlace(q, bb)
		for i := 0; i < ndigits; i++ {
			if len(q) == 0 && w == 0 {
				break
			}
			buf = append(buf, digits[w%r])
			w /= r
		}
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// divInPlace divides q by y, reusing q's storage.
func divInPlace(q Nat, y uint64) (Nat, uint64) {
	r := divWVW(q, 0, q, y)
	return q.Norm(), r
}

// SizeInBase returns the number of digits of x in the given radix. The
// result is exact or one too large; it is computed from the bit length only.
func SizeInBase(x Nat, radix int) int {
	n := x.BitLen()
	if n == 0 {
		return 1
	}
	if radix&(radix-1) == 0 {
		shift := 0
		for 1<<shift < radix {
			shift++
		}
		return (n + shift - 1) / shift
	}
	return int(float64(n)*math.Log(2)/math.Log(float64(radix))) + 1
}

// digitValue maps a byte to its value in the given radix, or -1.
func digitValue(c byte, radix int) int {
	var d int
	switch {
	case '0' <= c && c <= '9':
		d = int(c - '0')
	case 'a' <= c && c <= 'z':
		d = int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		if radix <= 36 {
			d = int(c-'A') + 10
		} else {
			d = int(c-'A') + 36
		}
	default:
		return -1
	}
	if d >= radix {
		return -1
	}
	return d
}

// Parse converts a non-empty string of digits in the given radix. On
// failure it returns ErrInvalidDigit and the offset of the offending byte.
func Parse(s string, radix int) (Nat, int, error) {
	if len(s) == 0 {
		return nil, 0, ErrInvalidDigit
	}
	r := uint64(radix)
	bb, ndigits := chunk(r)

	var z Nat
	var w uint64
	var pow uint64 = 1
	n := 0
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i], radix)
		if d < 0 {
			return nil, i, ErrInvalidDigit
		}
		w = w*r + uint64(d)
		pow *= r
		n++
		if n == ndigits {
			z = MulAddWord(z, bb, w)
			w, pow, n = 0, 1, 0
		}
	}
	if n > 0 {
		z = MulAddWord(z, pow, w)
	}
	return z, 0, nil
}
