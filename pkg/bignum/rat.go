package bignum

import (
	"hash/fnv"

	"golang.org/x/exp/constraints"

	"github.com/smallyu/go-bignum/internal/nat"
)

// Rat is an exact fraction num/den kept in lowest terms with den > 0.
// Zero is 0/1. The zero value Rat{} is 0.
type Rat struct {
	num Int
	den Int // 0 in the zero value, read as 1
}

// newRatReduced takes ownership of num and den, which must already be
// coprime with den > 0. A zero numerator resets den to 1.
func newRatReduced(num, den *Int) *Rat {
	z := new(Rat)
	z.num.assign(num)
	if num.IsZero() {
		z.den.SetOne()
	} else {
		z.den.assign(den)
	}
	return z
}

// normalize reduces num/den by their gcd and moves the sign onto num. It
// takes ownership of num and den; den must be non-zero.
func normalize(num, den *Int) *Rat {
	if num.IsZero() {
		return newRatReduced(Zero(), One())
	}
	if g := nat.GCD(num.abs, den.abs); !(len(g) == 1 && g[0] == 1) {
		gi := newSigned(false, g)
		num = num.quoExact(gi)
		den = den.quoExact(gi)
	}
	if den.neg {
		num = num.Neg()
		den = den.Neg()
	}
	return newRatReduced(num, den)
}

// RatFromPair returns n/d in lowest terms. A zero d is ErrDivisionByZero.
func RatFromPair(n, d *Int) (*Rat, error) {
	if d.IsZero() {
		return nil, ErrDivisionByZero
	}
	return normalize(n.Clone(), d.Clone()), nil
}

// NewRat returns n/d for machine integers of any type.
func NewRat[N, D constraints.Integer](n N, d D) (*Rat, error) {
	return RatFromPair(intOf(n), intOf(d))
}

// RatFromInt returns n/1.
func RatFromInt(n *Int) *Rat {
	return newRatReduced(n.Clone(), One())
}

// ZeroRat returns 0.
func ZeroRat() *Rat {
	return newRatReduced(Zero(), One())
}

// OneRat returns 1.
func OneRat() *Rat {
	return newRatReduced(One(), One())
}

// denom returns the stored denominator, treating an unset one as 1. The
// result must not be modified.
func (x *Rat) denom() *Int {
	if x.den.IsZero() {
		return One()
	}
	return &x.den
}

// Num returns a copy of the numerator. Its sign is the sign of x.
func (x *Rat) Num() *Int {
	return x.num.Clone()
}

// Denom returns a copy of the denominator, always positive.
func (x *Rat) Denom() *Int {
	return x.denom().Clone()
}

// Clone returns a deep copy of x.
func (x *Rat) Clone() *Rat {
	return newRatReduced(x.num.Clone(), x.denom().Clone())
}

// Set sets z to a copy of x.
func (z *Rat) Set(x *Rat) *Rat {
	if z != x {
		z.assign(x.Clone())
	}
	return z
}

// SetFrac sets z to n/d in lowest terms. On error z is unchanged.
func (z *Rat) SetFrac(n, d *Int) (*Rat, error) {
	r, err := RatFromPair(n, d)
	if err != nil {
		return nil, err
	}
	return z.assign(r), nil
}

// SetInt sets z to n/1.
func (z *Rat) SetInt(n *Int) *Rat {
	return z.assign(RatFromInt(n))
}

// SetZero sets z to 0.
func (z *Rat) SetZero() *Rat {
	return z.assign(ZeroRat())
}

// SetOne sets z to 1.
func (z *Rat) SetOne() *Rat {
	return z.assign(OneRat())
}

func (z *Rat) assign(x *Rat) *Rat {
	z.num.assign(&x.num)
	z.den.assign(x.denom())
	return z
}

// Sign returns -1, 0 or +1.
func (x *Rat) Sign() int {
	return x.num.Sign()
}

// IsZero reports whether x == 0.
func (x *Rat) IsZero() bool {
	return x.num.IsZero()
}

// IsOne reports whether x == 1.
func (x *Rat) IsOne() bool {
	return x.num.IsOne() && x.denom().IsOne()
}

// IsInt reports whether the denominator is 1.
func (x *Rat) IsInt() bool {
	return x.denom().IsOne()
}

// Height returns max(|num|, den).
func (x *Rat) Height() *Int {
	d := x.denom()
	if x.num.CmpAbs(d) > 0 {
		return x.num.Abs()
	}
	return d.Clone()
}

// ToInt returns x as an Int, or a *ConversionError when x is not integral.
func (x *Rat) ToInt() (*Int, error) {
	if !x.IsInt() {
		return nil, &ConversionError{Value: x.String(), From: "Rat", To: "Int"}
	}
	return x.num.Clone(), nil
}

// Floor returns the greatest integer <= x.
func (x *Rat) Floor() *Int {
	q, _ := x.num.FloorDiv(x.denom())
	return q
}

// Ceil returns the least integer >= x.
func (x *Rat) Ceil() *Int {
	q, _ := x.num.CeilDiv(x.denom())
	return q
}

// Trunc returns x rounded toward zero.
func (x *Rat) Trunc() *Int {
	q, _ := x.num.Quo(x.denom())
	return q
}

// Cmp compares x and y exactly by cross-multiplication.
func (x *Rat) Cmp(y *Rat) int {
	if x.Sign() != y.Sign() {
		if x.Sign() < y.Sign() {
			return -1
		}
		return 1
	}
	return x.num.Mul(y.denom()).Cmp(y.num.Mul(x.denom()))
}

// CmpInt compares x with the integer y.
func (x *Rat) CmpInt(y *Int) int {
	return x.num.Cmp(y.Mul(x.denom()))
}

// Equal reports whether x == y. Canonical form makes this a field-wise
// comparison.
func (x *Rat) Equal(y *Rat) bool {
	return x.num.Equal(&y.num) && x.denom().Equal(y.denom())
}

// Hash returns a hash of x that depends only on its value.
func (x *Rat) Hash() uint64 {
	h := fnv.New64a()
	x.num.writeHash(h)
	h.Write([]byte{'/'})
	x.denom().writeHash(h)
	return h.Sum64()
}
