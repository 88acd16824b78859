// Package nat implements unsigned multi-precision integers as vectors of
// 64-bit limbs, least-significant limb first.
//
// A Nat is canonical when it has no high zero limbs; zero is the empty
// vector. Every exported function returns canonical results and leaves its
// arguments untouched, so results never share storage with an operand.
package nat

import "math/bits"

// Nat is an unsigned integer x = x[0] + x[1]*2^64 + ... + x[n-1]*2^(64(n-1)).
type Nat []uint64

// WordBits is the number of bits in one limb.
const WordBits = 64

// Norm strips high zero limbs. It reslices x and does not copy.
func (x Nat) Norm() Nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// Clone returns a canonical copy of x with its own storage.
func (x Nat) Clone() Nat {
	x = x.Norm()
	if len(x) == 0 {
		return nil
	}
	z := make(Nat, len(x))
	copy(z, x)
	return z
}

// FromUint64 returns v as a Nat.
func FromUint64(v uint64) Nat {
	if v == 0 {
		return nil
	}
	return Nat{v}
}

// IsZero reports whether x == 0.
func (x Nat) IsZero() bool {
	return len(x.Norm()) == 0
}

// Cmp compares x and y and returns -1, 0 or +1.
func Cmp(x, y Nat) int {
	x, y = x.Norm(), y.Norm()
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// BitLen returns the length of x in bits; 0 for zero.
func (x Nat) BitLen() int {
	x = x.Norm()
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*WordBits + bits.Len64(x[len(x)-1])
}

// TrailingZeroBits returns the number of consecutive zero bits at the
// bottom of x; 0 for zero.
func (x Nat) TrailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*WordBits + uint(bits.TrailingZeros64(w))
		}
	}
	return 0
}

// Bit returns bit i of x.
func (x Nat) Bit(i uint) uint {
	j := i / WordBits
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j]>>(i%WordBits)) & 1
}

// SetBit returns x with bit i set to b (0 or 1).
func SetBit(x Nat, i uint, b uint) Nat {
	j := int(i / WordBits)
	m := uint64(1) << (i % WordBits)
	n := len(x)
	if j >= n && b == 0 {
		return x.Clone()
	}
	if j >= n {
		n = j + 1
	}
	z := make(Nat, n)
	copy(z, x)
	if b == 0 {
		z[j] &^= m
	} else {
		z[j] |= m
	}
	return z.Norm()
}

// Uint64 returns the low limb of x.
func (x Nat) Uint64() uint64 {
	if len(x) == 0 {
		return 0
	}
	return x[0]
}

// Add returns x + y.
func Add(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) < len(y) {
		x, y = y, x
	}
	m, n := len(x), len(y)
	if m == 0 {
		return nil
	}
	z := make(Nat, m+1)
	c := addVV(z[:n], x[:n], y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.Norm()
}

// AddWord returns x + y.
func AddWord(x Nat, y uint64) Nat {
	x = x.Norm()
	if len(x) == 0 {
		return FromUint64(y)
	}
	z := make(Nat, len(x)+1)
	z[len(x)] = addVW(z[:len(x)], x, y)
	return z.Norm()
}

// Sub returns x - y. It panics if x < y.
func Sub(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	m, n := len(x), len(y)
	if m < n {
		panic("nat: negative result")
	}
	if n == 0 {
		return x.Clone()
	}
	z := make(Nat, m)
	c := subVV(z[:n], x[:n], y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("nat: negative result")
	}
	return z.Norm()
}

// SubWord returns x - y. It panics if x < y.
func SubWord(x Nat, y uint64) Nat {
	return Sub(x, FromUint64(y))
}

// Shl returns x << s.
func Shl(x Nat, s uint) Nat {
	x = x.Norm()
	if len(x) == 0 {
		return nil
	}
	if s == 0 {
		return x.Clone()
	}
	q := int(s / WordBits)
	n := len(x) + q + 1
	z := make(Nat, n)
	z[n-1] = shlVU(z[q:n-1], x, s%WordBits)
	return z.Norm()
}

// Shr returns x >> s.
func Shr(x Nat, s uint) Nat {
	x = x.Norm()
	q := int(s / WordBits)
	if q >= len(x) {
		return nil
	}
	n := len(x) - q
	z := make(Nat, n)
	shrVU(z, x[q:], s%WordBits)
	return z.Norm()
}
