package bignum

import "github.com/smallyu/go-bignum/internal/nat"

// Bitwise operations treat negative values as infinitely sign-extended
// two's complement: -x is ^(x-1). Results for non-negative operands are
// the plain magnitude operations.

// TestBit reports whether bit i of x is set. For negative x the bit is
// taken from the two's-complement form, so bits above BitLen are set.
func (x *Int) TestBit(i uint) bool {
	if !x.neg {
		return x.abs.Bit(i) == 1
	}
	return nat.SubWord(x.abs, 1).Bit(i) == 0
}

// SetBit sets bit i of z, growing z as needed. For negative z this is
// z |= 1<<i in two's complement.
func (z *Int) SetBit(i uint) *Int {
	if !z.neg {
		z.abs = nat.SetBit(z.abs, i, 1)
		return z
	}
	return z.assign(z.Or(newSigned(false, nat.SetBit(nil, i, 1))))
}

// And returns x & y.
func (x *Int) And(y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) & (-y) == ^(x-1) & ^(y-1) == ^((x-1) | (y-1)) == -(((x-1) | (y-1)) + 1)
			x1 := nat.SubWord(x.abs, 1)
			y1 := nat.SubWord(y.abs, 1)
			return newSigned(true, nat.AddWord(nat.Or(x1, y1), 1))
		}
		return newSigned(false, nat.And(x.abs, y.abs))
	}
	if x.neg {
		x, y = y, x
	}
	// x & (-y) == x & ^(y-1) == x &^ (y-1)
	y1 := nat.SubWord(y.abs, 1)
	return newSigned(false, nat.AndNot(x.abs, y1))
}

// AndNot returns x &^ y.
func (x *Int) AndNot(y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) &^ (-y) == ^(x-1) &^ ^(y-1) == ^(x-1) & (y-1) == (y-1) &^ (x-1)
			x1 := nat.SubWord(x.abs, 1)
			y1 := nat.SubWord(y.abs, 1)
			return newSigned(false, nat.AndNot(y1, x1))
		}
		return newSigned(false, nat.AndNot(x.abs, y.abs))
	}
	if x.neg {
		// (-x) &^ y == ^(x-1) &^ y == ^((x-1) | y) == -(((x-1) | y) + 1)
		x1 := nat.SubWord(x.abs, 1)
		return newSigned(true, nat.AddWord(nat.Or(x1, y.abs), 1))
	}
	// x &^ (-y) == x &^ ^(y-1) == x & (y-1)
	y1 := nat.SubWord(y.abs, 1)
	return newSigned(false, nat.And(x.abs, y1))
}

// Or returns x | y.
func (x *Int) Or(y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) | (-y) == ^(x-1) | ^(y-1) == ^((x-1) & (y-1)) == -(((x-1) & (y-1)) + 1)
			x1 := nat.SubWord(x.abs, 1)
			y1 := nat.SubWord(y.abs, 1)
			return newSigned(true, nat.AddWord(nat.And(x1, y1), 1))
		}
		return newSigned(false, nat.Or(x.abs, y.abs))
	}
	if x.neg {
		x, y = y, x
	}
	// x | (-y) == x | ^(y-1) == ^((y-1) &^ x) == -(((y-1) &^ x) + 1)
	y1 := nat.SubWord(y.abs, 1)
	return newSigned(true, nat.AddWord(nat.AndNot(y1, x.abs), 1))
}

// Xor returns x ^ y.
func (x *Int) Xor(y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) ^ (-y) == ^(x-1) ^ ^(y-1) == (x-1) ^ (y-1)
			x1 := nat.SubWord(x.abs, 1)
			y1 := nat.SubWord(y.abs, 1)
			return newSigned(false, nat.Xor(x1, y1))
		}
		return newSigned(false, nat.Xor(x.abs, y.abs))
	}
	if x.neg {
		x, y = y, x
	}
	// x ^ (-y) == x ^ ^(y-1) == ^(x ^ (y-1)) == -((x ^ (y-1)) + 1)
	y1 := nat.SubWord(y.abs, 1)
	return newSigned(true, nat.AddWord(nat.Xor(x.abs, y1), 1))
}

// Not returns ^x == -x-1.
func (x *Int) Not() *Int {
	if x.neg {
		return newSigned(false, nat.SubWord(x.abs, 1))
	}
	return newSigned(true, nat.AddWord(x.abs, 1))
}

// AndAssign sets z to z & y.
func (z *Int) AndAssign(y *Int) *Int {
	return z.assign(z.And(y))
}

// OrAssign sets z to z | y.
func (z *Int) OrAssign(y *Int) *Int {
	return z.assign(z.Or(y))
}

// XorAssign sets z to z ^ y.
func (z *Int) XorAssign(y *Int) *Int {
	return z.assign(z.Xor(y))
}
