package nat

import "math/bits"

// Word-vector primitives. Unless stated otherwise z, x and y have equal
// length and z may alias x or y.

// z = x + y, returns the carry out.
func addVV(z, x, y []uint64) (c uint64) {
	for i := range z {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return c
}

// z = x - y, returns the borrow out.
func subVV(z, x, y []uint64) (c uint64) {
	for i := range z {
		z[i], c = bits.Sub64(x[i], y[i], c)
	}
	return c
}

// z = x + y for a single word y.
func addVW(z, x []uint64, y uint64) (c uint64) {
	c = y
	for i := range z {
		z[i], c = bits.Add64(x[i], c, 0)
	}
	return c
}

// z = x - y for a single word y.
func subVW(z, x []uint64, y uint64) (c uint64) {
	c = y
	for i := range z {
		z[i], c = bits.Sub64(x[i], c, 0)
	}
	return c
}

// z = x << s for 0 <= s < 64, returns the bits shifted out of the top.
func shlVU(z, x []uint64, s uint) (c uint64) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	ŝ := 64 - s
	n := len(z) - 1
	c = x[n] >> ŝ
	for i := n; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return c
}

// z = x >> s for 0 <= s < 64, returns the bits shifted out of the bottom
// (in the high end of c).
func shrVU(z, x []uint64, s uint) (c uint64) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	ŝ := 64 - s
	c = x[0] << ŝ
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return c
}

// z = x*y + r, returns the high word.
func mulAddVWW(z, x []uint64, y, r uint64) (c uint64) {
	c = r
	for i := range z {
		hi, lo := bits.Mul64(x[i], y)
		var cc uint64
		z[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	return c
}

// z += x*y, returns the high word.
func addMulVVW(z, x []uint64, y uint64) (c uint64) {
	for i := range z {
		hi, lo := bits.Mul64(x[i], y)
		var cc uint64
		lo, cc = bits.Add64(lo, c, 0)
		hi += cc
		z[i], cc = bits.Add64(z[i], lo, 0)
		c = hi + cc
	}
	return c
}

// z = (r<<64 + x) / y, returns the remainder. Requires r < y.
func divWVW(z []uint64, r uint64, x []uint64, y uint64) uint64 {
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = bits.Div64(r, x[i], y)
	}
	return r
}

// x1<<64 + x2 > y1<<64 + y2
func greaterThan(x1, x2, y1, y2 uint64) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}
