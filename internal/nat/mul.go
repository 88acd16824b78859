package nat

// karatsubaThreshold is the operand length in limbs at which Mul switches
// from schoolbook multiplication to Karatsuba. Both operands must reach it.
const karatsubaThreshold = 40

// MulWord returns x*y.
func MulWord(x Nat, y uint64) Nat {
	return MulAddWord(x, y, 0)
}

// MulAddWord returns x*y + r.
func MulAddWord(x Nat, y, r uint64) Nat {
	x = x.Norm()
	if len(x) == 0 || y == 0 {
		return FromUint64(r)
	}
	z := make(Nat, len(x)+1)
	z[len(x)] = mulAddVWW(z[:len(x)], x, y, r)
	return z.Norm()
}

// Mul returns x*y.
func Mul(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) < len(y) {
		x, y = y, x
	}
	switch {
	case len(y) == 0:
		return nil
	case len(y) == 1:
		return MulWord(x, y[0])
	case len(y) < karatsubaThreshold:
		return basicMul(x, y)
	}
	return karatsuba(x, y)
}

func basicMul(x, y Nat) Nat {
	z := make(Nat, len(x)+len(y))
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
	return z.Norm()
}

// karatsuba splits both operands at m limbs:
//
//	x*y = z2*B^2m + ((x0+x1)(y0+y1) - z0 - z2)*B^m + z0
func karatsuba(x, y Nat) Nat {
	m := len(x) / 2
	x0, x1 := split(x, m)
	y0, y1 := split(y, m)

	z0 := Mul(x0, y0)
	z2 := Mul(x1, y1)
	z1 := Mul(Add(x0, x1), Add(y0, y1))
	z1 = Sub(Sub(z1, z0), z2)

	z := make(Nat, len(x)+len(y)+1)
	copy(z, z0)
	addAt(z, z1, m)
	addAt(z, z2, 2*m)
	return z.Norm()
}

func split(x Nat, m int) (lo, hi Nat) {
	if len(x) <= m {
		return x, nil
	}
	return x[:m].Norm(), x[m:]
}

// addAt adds x into z starting at limb i. z must be long enough to absorb
// the final carry.
func addAt(z, x Nat, i int) {
	n := len(x)
	if n == 0 {
		return
	}
	c := addVV(z[i:i+n], z[i:i+n], x)
	if c != 0 {
		addVW(z[i+n:], z[i+n:], c)
	}
}

// Pow returns x**e.
func Pow(x Nat, e uint64) Nat {
	x = x.Norm()
	switch {
	case e == 0:
		return Nat{1}
	case len(x) == 0:
		return nil
	case len(x) == 1 && x[0] == 1:
		return Nat{1}
	}
	z := Nat{1}
	b := x
	for {
		if e&1 != 0 {
			z = Mul(z, b)
		}
		e >>= 1
		if e == 0 {
			break
		}
		b = Mul(b, b)
	}
	return z
}
