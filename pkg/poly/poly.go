// Package poly implements dense polynomials with arbitrary-precision
// integer coefficients on top of package bignum.
package poly

import (
	"strconv"
	"strings"

	"github.com/smallyu/go-bignum/pkg/bignum"
)

// Poly represents f(x) = a_0 + a_1*x + ... + a_t*x^t. Coefficients[i] is
// a_i; a nil entry reads as zero. Trailing zero coefficients do not change
// the value.
type Poly struct {
	Coefficients []*bignum.Int
}

// New returns the polynomial with the given coefficients, constant term
// first. The coefficients are copied and trailing zeros dropped.
func New(coeffs ...*bignum.Int) *Poly {
	p := &Poly{Coefficients: make([]*bignum.Int, len(coeffs))}
	for i, c := range coeffs {
		if c == nil {
			p.Coefficients[i] = bignum.Zero()
		} else {
			p.Coefficients[i] = c.Clone()
		}
	}
	p.trim()
	return p
}

// FromInt64 is New for machine-sized coefficients.
func FromInt64(coeffs ...int64) *Poly {
	p := &Poly{Coefficients: make([]*bignum.Int, len(coeffs))}
	for i, c := range coeffs {
		p.Coefficients[i] = bignum.NewInt(c)
	}
	p.trim()
	return p
}

func (p *Poly) trim() {
	p.Coefficients = p.Coefficients[:p.Degree()+1]
}

func (p *Poly) coeff(i int) *bignum.Int {
	if i >= len(p.Coefficients) || p.Coefficients[i] == nil {
		return bignum.Zero()
	}
	return p.Coefficients[i]
}

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p *Poly) Degree() int {
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		if c := p.Coefficients[i]; c != nil && !c.IsZero() {
			return i
		}
	}
	return -1
}

// Evaluate calculates f(x) over the integers.
func (p *Poly) Evaluate(x *bignum.Int) *bignum.Int {
	// Horner's method
	// result = a_t
	// for i = t-1 down to 0:
	//   result = result * x + a_i
	degree := p.Degree()
	result := bignum.Zero()
	if degree < 0 {
		return result
	}
	result.Set(p.coeff(degree))
	for i := degree - 1; i >= 0; i-- {
		result.MulAssign(x)
		result.AddAssign(p.coeff(i))
	}
	return result
}

// EvaluateMod calculates f(x) mod m, reducing after every step. The result
// is in [0, |m|); m == 0 is bignum.ErrDivisionByZero.
func (p *Poly) EvaluateMod(x, m *bignum.Int) (*bignum.Int, error) {
	if m.IsZero() {
		return nil, bignum.ErrDivisionByZero
	}
	result := bignum.Zero()
	for i := p.Degree(); i >= 0; i-- {
		r, err := result.Mul(x).Add(p.coeff(i)).Mod(m)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}

// EvaluateMulti calculates f(x) for multiple x values
func (p *Poly) EvaluateMulti(xs []*bignum.Int) []*bignum.Int {
	results := make([]*bignum.Int, len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}

// EvaluateRat calculates f(x) exactly at a rational point.
func (p *Poly) EvaluateRat(x *bignum.Rat) *bignum.Rat {
	result := bignum.ZeroRat()
	for i := p.Degree(); i >= 0; i-- {
		result = result.Mul(x).AddInt(p.coeff(i))
	}
	return result
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	n := max(len(p.Coefficients), len(q.Coefficients))
	out := make([]*bignum.Int, n)
	for i := range out {
		out[i] = p.coeff(i).Add(q.coeff(i))
	}
	return New(out...)
}

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly {
	n := max(len(p.Coefficients), len(q.Coefficients))
	out := make([]*bignum.Int, n)
	for i := range out {
		out[i] = p.coeff(i).Sub(q.coeff(i))
	}
	return New(out...)
}

// Mul returns p * q by schoolbook convolution.
func (p *Poly) Mul(q *Poly) *Poly {
	dp, dq := p.Degree(), q.Degree()
	if dp < 0 || dq < 0 {
		return New()
	}
	out := make([]*bignum.Int, dp+dq+1)
	for i := range out {
		out[i] = bignum.Zero()
	}
	for i := 0; i <= dp; i++ {
		a := p.coeff(i)
		if a.IsZero() {
			continue
		}
		for j := 0; j <= dq; j++ {
			out[i+j].AddMulAssign(a, q.coeff(j))
		}
	}
	return New(out...)
}

// Equal reports whether p and q have the same coefficients, ignoring
// trailing zeros.
func (p *Poly) Equal(q *Poly) bool {
	d := p.Degree()
	if d != q.Degree() {
		return false
	}
	for i := 0; i <= d; i++ {
		if !p.coeff(i).Equal(q.coeff(i)) {
			return false
		}
	}
	return true
}

// String renders p highest degree first, e.g. "3x^2 - 2x + 1".
func (p *Poly) String() string {
	d := p.Degree()
	if d < 0 {
		return "0"
	}
	var b strings.Builder
	for i := d; i >= 0; i-- {
		c := p.coeff(i)
		if c.IsZero() {
			continue
		}
		switch {
		case i == d && c.Sign() < 0:
			b.WriteString("-")
		case i != d && c.Sign() < 0:
			b.WriteString(" - ")
		case i != d:
			b.WriteString(" + ")
		}
		abs := c.Abs()
		if !abs.IsOne() || i == 0 {
			b.WriteString(abs.String())
		}
		switch {
		case i == 1:
			b.WriteString("x")
		case i > 1:
			b.WriteString("x^" + strconv.Itoa(i))
		}
	}
	return b.String()
}
