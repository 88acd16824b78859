package bignum

import (
	"math/bits"

	"github.com/smallyu/go-bignum/internal/nat"
)

// addSigned returns (-1)^xn*xa + (-1)^yn*ya.
func addSigned(xn bool, xa nat.Nat, yn bool, ya nat.Nat) *Int {
	if xn == yn {
		return newSigned(xn, nat.Add(xa, ya))
	}
	if nat.Cmp(xa, ya) >= 0 {
		return newSigned(xn, nat.Sub(xa, ya))
	}
	return newSigned(yn, nat.Sub(ya, xa))
}

func (z *Int) assign(x *Int) *Int {
	z.neg, z.abs = x.neg, x.abs
	return z
}

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	return addSigned(x.neg, x.abs, y.neg, y.abs)
}

// AddAssign sets z to z + y.
func (z *Int) AddAssign(y *Int) *Int {
	return z.assign(z.Add(y))
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	return addSigned(x.neg, x.abs, !y.neg, y.abs)
}

// SubAssign sets z to z - y.
func (z *Int) SubAssign(y *Int) *Int {
	return z.assign(z.Sub(y))
}

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int {
	return newSigned(x.neg != y.neg, nat.Mul(x.abs, y.abs))
}

// MulAssign sets z to z * y.
func (z *Int) MulAssign(y *Int) *Int {
	return z.assign(z.Mul(y))
}

// AddInt64 returns x + v.
func (x *Int) AddInt64(v int64) *Int {
	return x.Add(NewInt(v))
}

// SubInt64 returns x - v.
func (x *Int) SubInt64(v int64) *Int {
	return x.Sub(NewInt(v))
}

// MulInt64 returns x * v.
func (x *Int) MulInt64(v int64) *Int {
	return x.mulWord(v < 0, absInt64(v))
}

// AddUint64 returns x + v.
func (x *Int) AddUint64(v uint64) *Int {
	return addSigned(x.neg, x.abs, false, nat.FromUint64(v))
}

// SubUint64 returns x - v.
func (x *Int) SubUint64(v uint64) *Int {
	return addSigned(x.neg, x.abs, true, nat.FromUint64(v))
}

// MulUint64 returns x * v.
func (x *Int) MulUint64(v uint64) *Int {
	return x.mulWord(false, v)
}

// AddInt64Assign sets z to z + v.
func (z *Int) AddInt64Assign(v int64) *Int {
	return z.assign(z.AddInt64(v))
}

// SubInt64Assign sets z to z - v.
func (z *Int) SubInt64Assign(v int64) *Int {
	return z.assign(z.SubInt64(v))
}

// MulInt64Assign sets z to z * v.
func (z *Int) MulInt64Assign(v int64) *Int {
	return z.assign(z.MulInt64(v))
}

// AddUint64Assign sets z to z + v.
func (z *Int) AddUint64Assign(v uint64) *Int {
	return z.assign(z.AddUint64(v))
}

// SubUint64Assign sets z to z - v.
func (z *Int) SubUint64Assign(v uint64) *Int {
	return z.assign(z.SubUint64(v))
}

// MulUint64Assign sets z to z * v.
func (z *Int) MulUint64Assign(v uint64) *Int {
	return z.assign(z.MulUint64(v))
}

func (x *Int) mulWord(neg bool, v uint64) *Int {
	return newSigned(x.neg != neg, nat.MulWord(x.abs, v))
}

func absInt64(v int64) uint64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return u
}

// AddMul returns z + x*y.
func (z *Int) AddMul(x, y *Int) *Int {
	p := nat.Mul(x.abs, y.abs)
	return addSigned(z.neg, z.abs, x.neg != y.neg, p)
}

// AddMulAssign sets z to z + x*y.
func (z *Int) AddMulAssign(x, y *Int) *Int {
	return z.assign(z.AddMul(x, y))
}

// SubMul returns z - x*y.
func (z *Int) SubMul(x, y *Int) *Int {
	p := nat.Mul(x.abs, y.abs)
	return addSigned(z.neg, z.abs, x.neg == y.neg, p)
}

// SubMulAssign sets z to z - x*y.
func (z *Int) SubMulAssign(x, y *Int) *Int {
	return z.assign(z.SubMul(x, y))
}

// AddMulUint64 returns z + x*k.
func (z *Int) AddMulUint64(x *Int, k uint64) *Int {
	return addSigned(z.neg, z.abs, x.neg, nat.MulWord(x.abs, k))
}

// AddMulInt64 returns z + x*k.
func (z *Int) AddMulInt64(x *Int, k int64) *Int {
	return addSigned(z.neg, z.abs, x.neg != (k < 0), nat.MulWord(x.abs, absInt64(k)))
}

// SubMulUint64 returns z - x*k.
func (z *Int) SubMulUint64(x *Int, k uint64) *Int {
	return addSigned(z.neg, z.abs, !x.neg, nat.MulWord(x.abs, k))
}

// SubMulInt64 returns z - x*k.
func (z *Int) SubMulInt64(x *Int, k int64) *Int {
	return addSigned(z.neg, z.abs, x.neg == (k < 0), nat.MulWord(x.abs, absInt64(k)))
}

// AddMulUint64Assign sets z to z + x*k.
func (z *Int) AddMulUint64Assign(x *Int, k uint64) *Int {
	return z.assign(z.AddMulUint64(x, k))
}

// SubMulUint64Assign sets z to z - x*k.
func (z *Int) SubMulUint64Assign(x *Int, k uint64) *Int {
	return z.assign(z.SubMulUint64(x, k))
}

// AddMulInt64Assign sets z to z + x*k.
func (z *Int) AddMulInt64Assign(x *Int, k int64) *Int {
	return z.assign(z.AddMulInt64(x, k))
}

// SubMulInt64Assign sets z to z - x*k.
func (z *Int) SubMulInt64Assign(x *Int, k int64) *Int {
	return z.assign(z.SubMulInt64(x, k))
}

// MulUint64Pair returns x * a * b. The two factors are combined into a
// double-word multiplier first.
func (x *Int) MulUint64Pair(a, b uint64) *Int {
	hi, lo := bits.Mul64(a, b)
	return newSigned(x.neg, nat.Mul(x.abs, nat.Nat{lo, hi}.Norm()))
}

// MulUint64PairAssign sets z to z * a * b.
func (z *Int) MulUint64PairAssign(a, b uint64) *Int {
	return z.assign(z.MulUint64Pair(a, b))
}

// Lsh returns x * 2^n.
func (x *Int) Lsh(n uint) *Int {
	return newSigned(x.neg, nat.Shl(x.abs, n))
}

// LshAssign sets z to z * 2^n.
func (z *Int) LshAssign(n uint) *Int {
	return z.assign(z.Lsh(n))
}

// Rsh returns x >> n as an arithmetic shift, i.e. floor(x / 2^n). Negative
// values round toward negative infinity.
func (x *Int) Rsh(n uint) *Int {
	if !x.neg {
		return newSigned(false, nat.Shr(x.abs, n))
	}
	// -x >> n == -(((x-1) >> n) + 1)
	t := nat.Shr(nat.SubWord(x.abs, 1), n)
	return newSigned(true, nat.AddWord(t, 1))
}

// RshAssign sets z to z >> n (see Rsh).
func (z *Int) RshAssign(n uint) *Int {
	return z.assign(z.Rsh(n))
}

// MulPow2 returns x * 2^exp. A negative exponent is an ErrDomain error.
func (x *Int) MulPow2(exp int64) (*Int, error) {
	if exp < 0 {
		return nil, domainError("negative shift %d", exp)
	}
	return x.Lsh(uint(exp)), nil
}

// MulPow2Assign sets z to z * 2^exp. On error z is unchanged.
func (z *Int) MulPow2Assign(exp int64) error {
	p, err := z.MulPow2(exp)
	if err != nil {
		return err
	}
	z.assign(p)
	return nil
}

// Pow returns x^e by repeated squaring; 0^0 == 1. A negative exponent is
// an ErrDomain error.
func (x *Int) Pow(e int64) (*Int, error) {
	if e < 0 {
		return nil, domainError("negative exponent %d", e)
	}
	return x.powUint(uint64(e)), nil
}

// PowAssign sets z to z^e (see Pow).
func (z *Int) PowAssign(e int64) error {
	p, err := z.Pow(e)
	if err != nil {
		return err
	}
	z.assign(p)
	return nil
}

// PowInt returns x^e for an arbitrary-precision exponent. Exponents that
// do not fit in 64 bits are accepted only when the result is bounded,
// that is for x in {-1, 0, 1}.
func (x *Int) PowInt(e *Int) (*Int, error) {
	if e.neg {
		return nil, domainError("negative exponent %s", e)
	}
	if e.FitsUint64() {
		return x.powUint(e.abs.Uint64()), nil
	}
	switch {
	case x.IsZero():
		return Zero(), nil
	case x.IsPlusOrMinusOne():
		return newSigned(x.neg && e.IsOdd(), nat.Nat{1}), nil
	}
	return nil, domainError("exponent %s too large", e)
}

func (x *Int) powUint(e uint64) *Int {
	return newSigned(x.neg && e&1 == 1, nat.Pow(x.abs, e))
}

// QuoRem returns the truncated quotient q = x/y (rounded toward zero) and
// remainder r = x - q*y, which is zero or has the sign of x.
func (x *Int) QuoRem(y *Int) (q, r *Int, err error) {
	if y.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	qa, ra := nat.DivMod(x.abs, y.abs)
	return newSigned(x.neg != y.neg, qa), newSigned(x.neg, ra), nil
}

// Quo returns x/y truncated toward zero.
func (x *Int) Quo(y *Int) (*Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of truncated division; see QuoRem.
func (x *Int) Rem(y *Int) (*Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// QuoAssign sets z to z/y truncated toward zero.
func (z *Int) QuoAssign(y *Int) error {
	q, err := z.Quo(y)
	if err != nil {
		return err
	}
	z.assign(q)
	return nil
}

// RemAssign sets z to the truncated remainder of z/y.
func (z *Int) RemAssign(y *Int) error {
	r, err := z.Rem(y)
	if err != nil {
		return err
	}
	z.assign(r)
	return nil
}

// quoExact divides by a non-zero y known to divide x.
func (x *Int) quoExact(y *Int) *Int {
	q, _ := nat.DivMod(x.abs, y.abs)
	return newSigned(x.neg != y.neg, q)
}

// FloorDiv returns floor(x/y).
func (x *Int) FloorDiv(y *Int) (*Int, error) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		return nil, err
	}
	if !r.IsZero() && r.neg != y.neg {
		q = q.SubUint64(1)
	}
	return q, nil
}

// CeilDiv returns ceil(x/y).
func (x *Int) CeilDiv(y *Int) (*Int, error) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		return nil, err
	}
	if !r.IsZero() && r.neg == y.neg {
		q = q.AddUint64(1)
	}
	return q, nil
}

// Mod returns the Euclidean remainder of x/y, in [0, |y|).
func (x *Int) Mod(y *Int) (*Int, error) {
	r, err := x.Rem(y)
	if err != nil {
		return nil, err
	}
	if r.neg {
		r = newSigned(false, nat.Sub(y.abs, r.abs))
	}
	return r, nil
}

// GCD returns the non-negative greatest common divisor of x and y;
// GCD of 0 and 0 is 0.
func (x *Int) GCD(y *Int) *Int {
	return newSigned(false, nat.GCD(x.abs, y.abs))
}

// LCM returns the non-negative least common multiple of x and y; 0 when
// either is 0.
func (x *Int) LCM(y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	g := nat.GCD(x.abs, y.abs)
	q, _ := nat.DivMod(x.abs, g)
	return newSigned(false, nat.Mul(q, y.abs))
}
