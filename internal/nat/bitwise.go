package nat

// And returns x & y.
func And(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	n := min(len(x), len(y))
	z := make(Nat, n)
	for i := 0; i < n; i++ {
		z[i] = x[i] & y[i]
	}
	return z.Norm()
}

// AndNot returns x &^ y.
func AndNot(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	z := make(Nat, len(x))
	copy(z, x)
	for i := 0; i < min(len(x), len(y)); i++ {
		z[i] &^= y[i]
	}
	return z.Norm()
}

// Or returns x | y.
func Or(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(Nat, len(x))
	copy(z, x)
	for i, w := range y {
		z[i] |= w
	}
	return z.Norm()
}

// Xor returns x ^ y.
func Xor(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(Nat, len(x))
	copy(z, x)
	for i, w := range y {
		z[i] ^= w
	}
	return z.Norm()
}
