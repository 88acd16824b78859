// Package bignum provides arbitrary-precision signed integers (Int) and
// exact fractions in lowest terms (Rat).
//
// Methods named after an operation (Add, Mul, Quo, ...) return a new value
// and leave their operands untouched; the result never shares storage with
// an operand. The ...Assign variants overwrite the receiver instead. The
// zero value of both types is a valid zero.
//
// Values are not safe for concurrent mutation; concurrent readers are fine.
package bignum

import (
	"github.com/smallyu/go-bignum/internal/nat"
)

// Int is a signed integer of unbounded size, stored as sign and magnitude.
type Int struct {
	neg bool    // sign; false when abs is empty
	abs nat.Nat // magnitude, canonical
}

// newSigned builds an Int taking ownership of abs.
func newSigned(neg bool, abs nat.Nat) *Int {
	return new(Int).setSigned(neg, abs)
}

func (z *Int) setSigned(neg bool, abs nat.Nat) *Int {
	z.abs = abs.Norm()
	z.neg = neg && len(z.abs) > 0
	return z
}

// Zero returns 0.
func Zero() *Int {
	return new(Int)
}

// One returns 1.
func One() *Int {
	return NewUint(1)
}

// NewInt returns v as an Int.
func NewInt(v int64) *Int {
	return new(Int).SetInt64(v)
}

// NewUint returns v as an Int.
func NewUint(v uint64) *Int {
	return new(Int).SetUint64(v)
}

// FromLimbs returns the non-negative integer
// limbs[0] + limbs[1]*2^64 + ... + limbs[n-1]*2^(64(n-1)).
// High zero limbs are ignored; an empty slice yields 0.
func FromLimbs(limbs []uint64) *Int {
	return new(Int).SetLimbs(limbs)
}

// Limbs returns a copy of the canonical magnitude limbs of x, least
// significant first. The result is empty for 0 and ignores the sign.
func (x *Int) Limbs() []uint64 {
	out := make([]uint64, len(x.abs))
	copy(out, x.abs)
	return out
}

// Clone returns a deep copy of x.
func (x *Int) Clone() *Int {
	return newSigned(x.neg, x.abs.Clone())
}

// Set sets z to a copy of x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.setSigned(x.neg, x.abs.Clone())
	}
	return z
}

// SetInt64 sets z to v and returns z.
func (z *Int) SetInt64(v int64) *Int {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return z.setSigned(v < 0, nat.FromUint64(u))
}

// SetUint64 sets z to v and returns z.
func (z *Int) SetUint64(v uint64) *Int {
	return z.setSigned(false, nat.FromUint64(v))
}

// SetLimbs sets z to the non-negative value of limbs (see FromLimbs).
func (z *Int) SetLimbs(limbs []uint64) *Int {
	return z.setSigned(false, nat.Nat(limbs).Clone())
}

// SetZero sets z to 0.
func (z *Int) SetZero() *Int {
	return z.setSigned(false, nil)
}

// SetOne sets z to 1.
func (z *Int) SetOne() *Int {
	return z.setSigned(false, nat.Nat{1})
}

// Sign returns -1, 0 or +1.
func (x *Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool {
	return len(x.abs) == 0
}

// IsOne reports whether x == 1.
func (x *Int) IsOne() bool {
	return !x.neg && len(x.abs) == 1 && x.abs[0] == 1
}

// IsPlusOrMinusOne reports whether x is 1 or -1.
func (x *Int) IsPlusOrMinusOne() bool {
	return len(x.abs) == 1 && x.abs[0] == 1
}

// IsEven reports whether x is divisible by 2.
func (x *Int) IsEven() bool {
	return len(x.abs) == 0 || x.abs[0]&1 == 0
}

// IsOdd reports whether x is not divisible by 2.
func (x *Int) IsOdd() bool {
	return !x.IsEven()
}

// BitLen returns the number of bits of |x|; 0 for 0.
func (x *Int) BitLen() int {
	return x.abs.BitLen()
}

// LimbCount returns the number of limbs of |x|; 0 for 0.
func (x *Int) LimbCount() int {
	return len(x.abs)
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	return newSigned(!x.neg, x.abs.Clone())
}

// NegAssign sets z to -z.
func (z *Int) NegAssign() *Int {
	z.neg = !z.neg && len(z.abs) > 0
	return z
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	return newSigned(false, x.abs.Clone())
}

// AbsAssign sets z to |z|.
func (z *Int) AbsAssign() *Int {
	z.neg = false
	return z
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.neg == y.neg:
		c := nat.Cmp(x.abs, y.abs)
		if x.neg {
			c = -c
		}
		return c
	case x.neg:
		return -1
	}
	return 1
}

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int {
	return nat.Cmp(x.abs, y.abs)
}

// CmpInt64 compares x with v.
func (x *Int) CmpInt64(v int64) int {
	return x.Cmp(NewInt(v))
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool {
	return x.Cmp(y) == 0
}
