package nat

import "math/bits"

// GCD returns the greatest common divisor of x and y; GCD(0, 0) == 0.
//
// Small operands use the binary algorithm on single words, larger ones
// Euclid's remainder sequence on top of DivMod.
func GCD(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) == 0 {
		return y.Clone()
	}
	if len(y) == 0 {
		return x.Clone()
	}
	a, b := x, y
	for len(b) > 1 {
		_, r := DivMod(a, b)
		a, b = b, r
	}
	if len(b) == 0 {
		return a.Clone()
	}
	// b fits a single word; finish in machine arithmetic.
	w := ModWord(a, b[0])
	return FromUint64(gcdWord(b[0], w))
}

func gcdWord(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	shift := bits.TrailingZeros64(a | b)
	a >>= bits.TrailingZeros64(a)
	for b != 0 {
		b >>= bits.TrailingZeros64(b)
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << shift
}
