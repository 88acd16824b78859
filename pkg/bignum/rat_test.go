package bignum

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRat(t *testing.T, n, d int64) *Rat {
	t.Helper()
	r, err := NewRat(n, d)
	require.NoError(t, err)
	return r
}

func randRat(rnd *rand.Rand, maxLimbs int) *Rat {
	d := randInt(rnd, maxLimbs)
	for d.IsZero() {
		d = randInt(rnd, maxLimbs)
	}
	r, err := RatFromPair(randInt(rnd, maxLimbs), d)
	if err != nil {
		panic(err)
	}
	return r
}

func bigRat(x *Rat) *big.Rat {
	return new(big.Rat).SetFrac(x.Num().Big(), x.Denom().Big())
}

func requireSameRat(t *testing.T, want *big.Rat, got *Rat, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, want.RatString(), got.String(), msgAndArgs...)
}

func TestRatProduct(t *testing.T) {
	got := mustRat(t, 3, 4).Mul(mustRat(t, 2, 3))
	assert.True(t, got.Equal(mustRat(t, 1, 2)))
	assert.Equal(t, "1/2", got.String())
}

func TestRatZeroDenominator(t *testing.T) {
	_, err := RatFromPair(NewInt(1), Zero())
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = NewRat(0, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	z := mustRat(t, 2, 3)
	_, err = z.SetFrac(NewInt(1), Zero())
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, "2/3", z.String())
}

func TestRatCanonicalForm(t *testing.T) {
	tests := []struct {
		n, d     int64
		num, den string
	}{
		{6, -4, "-3", "2"},
		{-6, -4, "3", "2"},
		{0, -7, "0", "1"},
		{10, 5, "2", "1"},
		{math.MinInt64, math.MinInt64, "1", "1"},
		{1, math.MinInt64, "-1", "9223372036854775808"},
	}
	for _, tt := range tests {
		r := mustRat(t, tt.n, tt.d)
		assert.Equal(t, tt.num, r.Num().String(), "%d/%d", tt.n, tt.d)
		assert.Equal(t, tt.den, r.Denom().String(), "%d/%d", tt.n, tt.d)
		assert.Equal(t, 1, r.Denom().Sign())
	}

	var zero Rat
	assert.True(t, zero.IsZero())
	assert.True(t, zero.IsInt())
	assert.Equal(t, "1", zero.Denom().String())
	assert.Equal(t, "0", zero.String())
	assert.True(t, zero.Equal(ZeroRat()))
	assert.Equal(t, zero.Hash(), mustRat(t, 0, 5).Hash())

	huge := MustParse("123456789012345678901234567890", 10)
	r, err := RatFromPair(huge.MulInt64(7), huge.MulInt64(-21))
	require.NoError(t, err)
	assert.Equal(t, "-1/3", r.String())
}

func TestRatArithmeticMatchesBig(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		x, y := randRat(rnd, 3), randRat(rnd, 3)
		bx, by := bigRat(x), bigRat(y)

		requireSameRat(t, new(big.Rat).Add(bx, by), x.Add(y))
		requireSameRat(t, new(big.Rat).Sub(bx, by), x.Sub(y))
		requireSameRat(t, new(big.Rat).Mul(bx, by), x.Mul(y))
		requireSameRat(t, new(big.Rat).Neg(bx), x.Neg())
		requireSameRat(t, new(big.Rat).Abs(bx), x.Abs())
		assert.Equal(t, bx.Cmp(by), x.Cmp(y))

		if !y.IsZero() {
			q, err := x.Quo(y)
			require.NoError(t, err)
			requireSameRat(t, new(big.Rat).Quo(bx, by), q)
		}

		n := randInt(rnd, 2)
		bn := new(big.Rat).SetInt(n.Big())
		requireSameRat(t, new(big.Rat).Add(bx, bn), x.AddInt(n))
		requireSameRat(t, new(big.Rat).Sub(bx, bn), x.SubInt(n))
		requireSameRat(t, new(big.Rat).Mul(bx, bn), x.MulInt(n))
		assert.Equal(t, bx.Cmp(bn), x.CmpInt(n))
		if !n.IsZero() {
			q, err := x.QuoInt(n)
			require.NoError(t, err)
			requireSameRat(t, new(big.Rat).Quo(bx, bn), q)
		}
	}
}

func TestRatSharedDenominators(t *testing.T) {
	assert.Equal(t, "1/2", mustRat(t, 1, 6).Add(mustRat(t, 1, 3)).String())
	assert.Equal(t, "0", mustRat(t, 1, 6).Sub(mustRat(t, 1, 6)).String())
	assert.Equal(t, "1", mustRat(t, 5, 12).Add(mustRat(t, 7, 12)).String())
	assert.Equal(t, "-1/4", mustRat(t, 1, 4).Sub(mustRat(t, 1, 2)).String())
	assert.Equal(t, "1/12", mustRat(t, 1, 4).Sub(mustRat(t, 1, 6)).String())
}

func TestRatInverse(t *testing.T) {
	rnd := rand.New(rand.NewSource(12))
	for i := 0; i < 100; i++ {
		a := randRat(rnd, 3)
		if a.IsZero() {
			continue
		}
		inv, err := a.Inv()
		require.NoError(t, err)
		assert.True(t, a.Mul(inv).IsOne(), "%s * %s", a, inv)
		assert.Equal(t, 1, inv.Denom().Sign())
	}

	_, err := ZeroRat().Inv()
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = OneRat().Quo(ZeroRat())
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = OneRat().QuoInt(Zero())
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = OneRat().QuoInt64(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	inv, err := mustRat(t, -2, 3).Inv()
	require.NoError(t, err)
	assert.Equal(t, "-3/2", inv.String())
}

func TestRatPow(t *testing.T) {
	tests := []struct {
		n, d int64
		e    int64
		want string
	}{
		{2, 3, 2, "4/9"},
		{2, 3, -2, "9/4"},
		{-2, 3, -1, "-3/2"},
		{-2, 3, 3, "-8/27"},
		{-2, 3, 0, "1"},
		{0, 1, 0, "1"},
		{0, 1, 5, "0"},
		{1, 1, math.MinInt64, "1"},
		{-1, 1, math.MinInt64, "1"},
	}
	for _, tt := range tests {
		got, err := mustRat(t, tt.n, tt.d).Pow(tt.e)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "(%d/%d)^%d", tt.n, tt.d, tt.e)
	}

	_, err := ZeroRat().Pow(-1)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestRatPowInt(t *testing.T) {
	huge := One().Lsh(70).AddUint64(1)

	tests := []struct {
		n, d int64
		e    *Int
		want string
	}{
		{2, 3, NewInt(-3), "27/8"},
		{-1, 1, huge, "-1"},
		{-1, 1, huge.Neg(), "-1"},
		{-1, 1, huge.AddInt64(1), "1"},
		{1, 1, huge.Neg(), "1"},
		{0, 1, huge, "0"},
	}
	for _, tt := range tests {
		got, err := mustRat(t, tt.n, tt.d).PowInt(tt.e)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "(%d/%d)^%s", tt.n, tt.d, tt.e)
	}

	_, err := ZeroRat().PowInt(huge.Neg())
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = mustRat(t, 1, 2).PowInt(huge)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = mustRat(t, -1, 2).PowInt(huge.Neg())
	assert.ErrorIs(t, err, ErrDomain)

	w := mustRat(t, -2, 3)
	require.NoError(t, w.PowAssign(-3))
	assert.Equal(t, "-27/8", w.String())
	assert.ErrorIs(t, ZeroRat().PowAssign(-2), ErrDivisionByZero)
}

func TestRatRounding(t *testing.T) {
	tests := []struct {
		n, d               int64
		floor, ceil, trunc string
	}{
		{7, 2, "3", "4", "3"},
		{-7, 2, "-4", "-3", "-3"},
		{6, 3, "2", "2", "2"},
		{-1, 3, "-1", "0", "0"},
		{0, 1, "0", "0", "0"},
	}
	for _, tt := range tests {
		r := mustRat(t, tt.n, tt.d)
		assert.Equal(t, tt.floor, r.Floor().String())
		assert.Equal(t, tt.ceil, r.Ceil().String())
		assert.Equal(t, tt.trunc, r.Trunc().String())
	}
}

func TestRatQueries(t *testing.T) {
	r := mustRat(t, -7, 3)
	assert.Equal(t, -1, r.Sign())
	assert.False(t, r.IsInt())
	assert.Equal(t, "7", r.Height().String())
	assert.Equal(t, "5", mustRat(t, 2, 5).Height().String())

	_, err := r.ToInt()
	var ce *ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "-7/3", ce.Value)
	assert.ErrorIs(t, err, ErrConversion)

	n, err := mustRat(t, 12, -4).ToInt()
	require.NoError(t, err)
	assert.Equal(t, "-3", n.String())

	assert.True(t, OneRat().IsOne())
	assert.True(t, RatFromInt(NewInt(9)).IsInt())
	assert.Equal(t, 1, mustRat(t, 1, 3).CmpInt(Zero()))
	assert.Equal(t, -1, mustRat(t, 5, 2).CmpInt(NewInt(3)))
	assert.Equal(t, -1, mustRat(t, -1, 2).Cmp(mustRat(t, 1, 3)))
	assert.Equal(t, 0, mustRat(t, 2, 4).Cmp(mustRat(t, 1, 2)))
	assert.Equal(t, mustRat(t, 2, 4).Hash(), mustRat(t, -1, -2).Hash())
	assert.NotEqual(t, mustRat(t, 1, 2).Hash(), mustRat(t, -1, 2).Hash())
}

func TestRatAssignAndAlias(t *testing.T) {
	z := mustRat(t, 1, 2)
	z.AddAssign(mustRat(t, 1, 3))
	assert.Equal(t, "5/6", z.String())
	z.SubAssign(mustRat(t, 1, 6))
	assert.Equal(t, "2/3", z.String())
	z.MulAssign(mustRat(t, 3, 4))
	assert.Equal(t, "1/2", z.String())
	require.NoError(t, z.QuoAssign(mustRat(t, -1, 4)))
	assert.Equal(t, "-2", z.String())
	require.ErrorIs(t, z.QuoAssign(ZeroRat()), ErrDivisionByZero)
	assert.Equal(t, "-2", z.String())

	z.AddAssign(z)
	assert.Equal(t, "-4", z.String())

	n := NewInt(3)
	d := NewInt(6)
	r, err := RatFromPair(n, d)
	require.NoError(t, err)
	assert.Equal(t, "3", n.String())
	assert.Equal(t, "6", d.String())

	num := r.Num()
	num.AddAssign(NewInt(10))
	assert.Equal(t, "1/2", r.String())

	c := r.Clone()
	c.MulAssign(mustRat(t, 4, 1))
	assert.Equal(t, "1/2", r.String())

	var s Rat
	s.Set(r)
	s.SetOne()
	assert.Equal(t, "1/2", r.String())
	assert.True(t, s.IsOne())
	s.SetInt(NewInt(-4))
	assert.Equal(t, "-4", s.String())
	s.SetZero()
	assert.True(t, s.IsZero())
}

func TestRatMachineOperands(t *testing.T) {
	r := mustRat(t, 1, 3)
	assert.Equal(t, "7/3", r.AddInt64(2).String())
	assert.Equal(t, "-5/3", r.SubInt64(2).String())
	assert.Equal(t, "2", r.MulInt64(6).String())
	h, err := r.MulInt64(-3).QuoInt64(2)
	require.NoError(t, err)
	assert.Equal(t, "-1/2", h.String())
	assert.Equal(t, "0", r.MulInt64(0).String())

	q, err := r.QuoInt64(-2)
	require.NoError(t, err)
	assert.Equal(t, "-1/6", q.String())

	rnd := rand.New(rand.NewSource(17))
	for i := 0; i < 100; i++ {
		x := randRat(rnd, 2)
		y := randInt(rnd, 2)
		v := int64(rnd.Uint64())

		w := x.Clone()
		w.AddIntAssign(y)
		assert.Equal(t, x.AddInt(y).String(), w.String())
		w = x.Clone()
		w.SubIntAssign(y)
		assert.Equal(t, x.SubInt(y).String(), w.String())
		w = x.Clone()
		w.MulIntAssign(y)
		assert.Equal(t, x.MulInt(y).String(), w.String())
		w = x.Clone()
		w.AddInt64Assign(v)
		assert.Equal(t, x.AddInt64(v).String(), w.String())
		w = x.Clone()
		w.SubInt64Assign(v)
		assert.Equal(t, x.SubInt64(v).String(), w.String())
		w = x.Clone()
		w.MulInt64Assign(v)
		assert.Equal(t, x.MulInt64(v).String(), w.String())

		if !y.IsZero() {
			want, err := x.QuoInt(y)
			require.NoError(t, err)
			w = x.Clone()
			require.NoError(t, w.QuoIntAssign(y))
			assert.Equal(t, want.String(), w.String())
		}
		if v != 0 {
			want, err := x.QuoInt64(v)
			require.NoError(t, err)
			w = x.Clone()
			require.NoError(t, w.QuoInt64Assign(v))
			assert.Equal(t, want.String(), w.String())
		}

		w = x.Clone()
		w.NegAssign()
		assert.Equal(t, x.Neg().String(), w.String())
		w.AbsAssign()
		assert.Equal(t, x.Abs().String(), w.String())
	}

	w := mustRat(t, 3, 7)
	assert.ErrorIs(t, w.QuoIntAssign(Zero()), ErrDivisionByZero)
	assert.ErrorIs(t, w.QuoInt64Assign(0), ErrDivisionByZero)
	assert.Equal(t, "3/7", w.String())
}

func TestRatFieldLaws(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	for i := 0; i < 100; i++ {
		a, b, c := randRat(rnd, 2), randRat(rnd, 2), randRat(rnd, 2)
		assert.True(t, a.Add(b).Equal(b.Add(a)))
		assert.True(t, a.Mul(b).Equal(b.Mul(a)))
		assert.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))))
		assert.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))))
		assert.True(t, a.Sub(b).Add(b).Equal(a))
	}
}
