package bignum

// Fraction arithmetic follows Knuth, TAOCP vol. 2, 4.5.1: dividing by the
// gcd of the denominators before multiplying keeps intermediate values small
// and leaves every result in lowest terms.

// addRat returns a/b + c/d for reduced inputs.
func addRat(a, b, c, d *Int) *Rat {
	g := b.GCD(d)
	if g.IsOne() {
		// gcd(ad + bc, bd) == 1 when b and d are coprime.
		return newRatReduced(a.Mul(d).AddMul(b, c), b.Mul(d))
	}
	bg := b.quoExact(g)
	t := a.Mul(d.quoExact(g)).AddMul(c, bg)
	g2 := t.GCD(g)
	if g2.IsZero() || g2.IsOne() {
		return newRatReduced(t, bg.Mul(d))
	}
	return newRatReduced(t.quoExact(g2), bg.Mul(d.quoExact(g2)))
}

// mulRat returns (a/b) * (c/d) for reduced inputs.
func mulRat(a, b, c, d *Int) *Rat {
	if a.IsZero() || c.IsZero() {
		return ZeroRat()
	}
	g1 := a.GCD(d)
	g2 := c.GCD(b)
	num := a.quoExact(g1).Mul(c.quoExact(g2))
	den := b.quoExact(g2).Mul(d.quoExact(g1))
	return newRatReduced(num, den)
}

// inverse returns d/c with the sign moved to the numerator. c must be
// non-zero.
func inverse(c, d *Int) (*Int, *Int) {
	if c.neg {
		return d.Neg(), c.Neg()
	}
	return d, c
}

// Add returns x + y.
func (x *Rat) Add(y *Rat) *Rat {
	return addRat(&x.num, x.denom(), &y.num, y.denom())
}

// Sub returns x - y.
func (x *Rat) Sub(y *Rat) *Rat {
	return addRat(&x.num, x.denom(), y.num.Neg(), y.denom())
}

// Mul returns x * y.
func (x *Rat) Mul(y *Rat) *Rat {
	return mulRat(&x.num, x.denom(), &y.num, y.denom())
}

// Quo returns x / y; dividing by zero is ErrDivisionByZero.
func (x *Rat) Quo(y *Rat) (*Rat, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	c, d := inverse(&y.num, y.denom())
	return mulRat(&x.num, x.denom(), c, d), nil
}

// AddAssign sets z to z + y.
func (z *Rat) AddAssign(y *Rat) *Rat {
	return z.assign(z.Add(y))
}

// SubAssign sets z to z - y.
func (z *Rat) SubAssign(y *Rat) *Rat {
	return z.assign(z.Sub(y))
}

// MulAssign sets z to z * y.
func (z *Rat) MulAssign(y *Rat) *Rat {
	return z.assign(z.Mul(y))
}

// QuoAssign sets z to z / y. On error z is unchanged.
func (z *Rat) QuoAssign(y *Rat) error {
	q, err := z.Quo(y)
	if err != nil {
		return err
	}
	z.assign(q)
	return nil
}

// Neg returns -x.
func (x *Rat) Neg() *Rat {
	return newRatReduced(x.num.Neg(), x.denom().Clone())
}

// Abs returns |x|.
func (x *Rat) Abs() *Rat {
	return newRatReduced(x.num.Abs(), x.denom().Clone())
}

// NegAssign sets z to -z.
func (z *Rat) NegAssign() *Rat {
	z.num.NegAssign()
	return z
}

// AbsAssign sets z to |z|.
func (z *Rat) AbsAssign() *Rat {
	z.num.AbsAssign()
	return z
}

// Inv returns 1/x; the inverse of zero is ErrDivisionByZero.
func (x *Rat) Inv() (*Rat, error) {
	if x.IsZero() {
		return nil, ErrDivisionByZero
	}
	num, den := inverse(&x.num, x.denom())
	return newRatReduced(num.Clone(), den.Clone()), nil
}

// Pow returns x^e. Negative exponents invert x first, so 0^e with e < 0
// is ErrDivisionByZero; 0^0 == 1.
func (x *Rat) Pow(e int64) (*Rat, error) {
	base := x
	if e < 0 {
		inv, err := x.Inv()
		if err != nil {
			return nil, err
		}
		base = inv
	}
	n := absInt64(e)
	// Powers of coprime integers stay coprime.
	return newRatReduced(base.num.powUint(n), base.denom().powUint(n)), nil
}

// PowAssign sets z to z^e (see Pow). On error z is unchanged.
func (z *Rat) PowAssign(e int64) error {
	p, err := z.Pow(e)
	if err != nil {
		return err
	}
	z.assign(p)
	return nil
}

// PowInt returns x^e for an arbitrary-precision exponent. Exponents that
// do not fit in 64 bits are accepted only when the result is bounded,
// that is for x in {-1, 0, 1}; 0 raised to such a negative exponent is
// ErrDivisionByZero.
func (x *Rat) PowInt(e *Int) (*Rat, error) {
	if n, err := e.ToInt64(); err == nil {
		return x.Pow(n)
	}
	switch {
	case x.IsZero() && e.neg:
		return nil, ErrDivisionByZero
	case x.IsZero():
		return ZeroRat(), nil
	case x.denom().IsOne() && x.num.IsPlusOrMinusOne():
		r := OneRat()
		if x.num.neg && e.IsOdd() {
			r.NegAssign()
		}
		return r, nil
	}
	return nil, domainError("exponent %s too large", e)
}

// AddInt returns x + y.
func (x *Rat) AddInt(y *Int) *Rat {
	b := x.denom()
	// gcd(a + yb, b) == gcd(a, b) == 1
	return newRatReduced(x.num.AddMul(y, b), b.Clone())
}

// SubInt returns x - y.
func (x *Rat) SubInt(y *Int) *Rat {
	b := x.denom()
	return newRatReduced(x.num.SubMul(y, b), b.Clone())
}

// MulInt returns x * y.
func (x *Rat) MulInt(y *Int) *Rat {
	if y.IsZero() || x.IsZero() {
		return ZeroRat()
	}
	b := x.denom()
	g := y.GCD(b)
	return newRatReduced(x.num.Mul(y.quoExact(g)), b.quoExact(g))
}

// QuoInt returns x / y; a zero y is ErrDivisionByZero.
func (x *Rat) QuoInt(y *Int) (*Rat, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	if x.IsZero() {
		return ZeroRat(), nil
	}
	g := x.num.GCD(y)
	num := x.num.quoExact(g)
	den := x.denom().Mul(y.quoExact(g))
	if den.neg {
		num.NegAssign()
		den.NegAssign()
	}
	return newRatReduced(num, den), nil
}

// AddInt64 returns x + v.
func (x *Rat) AddInt64(v int64) *Rat {
	return x.AddInt(NewInt(v))
}

// SubInt64 returns x - v.
func (x *Rat) SubInt64(v int64) *Rat {
	return x.SubInt(NewInt(v))
}

// MulInt64 returns x * v.
func (x *Rat) MulInt64(v int64) *Rat {
	return x.MulInt(NewInt(v))
}

// QuoInt64 returns x / v; a zero v is ErrDivisionByZero.
func (x *Rat) QuoInt64(v int64) (*Rat, error) {
	return x.QuoInt(NewInt(v))
}

// AddIntAssign sets z to z + y.
func (z *Rat) AddIntAssign(y *Int) *Rat {
	return z.assign(z.AddInt(y))
}

// SubIntAssign sets z to z - y.
func (z *Rat) SubIntAssign(y *Int) *Rat {
	return z.assign(z.SubInt(y))
}

// MulIntAssign sets z to z * y.
func (z *Rat) MulIntAssign(y *Int) *Rat {
	return z.assign(z.MulInt(y))
}

// QuoIntAssign sets z to z / y. On error z is unchanged.
func (z *Rat) QuoIntAssign(y *Int) error {
	q, err := z.QuoInt(y)
	if err != nil {
		return err
	}
	z.assign(q)
	return nil
}

// AddInt64Assign sets z to z + v.
func (z *Rat) AddInt64Assign(v int64) *Rat {
	return z.assign(z.AddInt64(v))
}

// SubInt64Assign sets z to z - v.
func (z *Rat) SubInt64Assign(v int64) *Rat {
	return z.assign(z.SubInt64(v))
}

// MulInt64Assign sets z to z * v.
func (z *Rat) MulInt64Assign(v int64) *Rat {
	return z.assign(z.MulInt64(v))
}

// QuoInt64Assign sets z to z / v. On error z is unchanged.
func (z *Rat) QuoInt64Assign(v int64) error {
	return z.QuoIntAssign(NewInt(v))
}
