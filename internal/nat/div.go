package nat

import "math/bits"

// DivWord returns q = x / y and r = x mod y. It panics if y == 0.
func DivWord(x Nat, y uint64) (q Nat, r uint64) {
	if y == 0 {
		panic("nat: division by zero")
	}
	x = x.Norm()
	if len(x) == 0 {
		return nil, 0
	}
	q = make(Nat, len(x))
	r = divWVW(q, 0, x, y)
	return q.Norm(), r
}

// ModWord returns x mod y without allocating a quotient. It panics if y == 0.
func ModWord(x Nat, y uint64) uint64 {
	if y == 0 {
		panic("nat: division by zero")
	}
	var r uint64
	for i := len(x) - 1; i >= 0; i-- {
		_, r = bits.Div64(r, x[i], y)
	}
	return r
}

// DivMod returns q = u / v and r = u mod v. It panics if v == 0.
func DivMod(u, v Nat) (q, r Nat) {
	u, v = u.Norm(), v.Norm()
	if len(v) == 0 {
		panic("nat: division by zero")
	}
	if Cmp(u, v) < 0 {
		return nil, u.Clone()
	}
	if len(v) == 1 {
		q, rw := DivWord(u, v[0])
		return q, FromUint64(rw)
	}
	return divLarge(u, v)
}

// divLarge is Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) for len(v) >= 2
// and u >= v.
func divLarge(uIn, vIn Nat) (q, r Nat) {
	n := len(vIn)
	m := len(uIn) - n

	// D1: normalize so the top bit of v is set.
	s := uint(bits.LeadingZeros64(vIn[n-1]))
	v := make(Nat, n)
	shlVU(v, vIn, s)
	u := make(Nat, len(uIn)+1)
	u[len(uIn)] = shlVU(u[:len(uIn)], uIn, s)

	q = make(Nat, m+1)
	qhatv := make(Nat, n+1)
	vn1, vn2 := v[n-1], v[n-2]

	for j := m; j >= 0; j-- {
		// D3: estimate qhat from the top two limbs.
		qhat := ^uint64(0)
		if ujn := u[j+n]; ujn != vn1 {
			var rhat uint64
			qhat, rhat = bits.Div64(ujn, u[j+n-1], vn1)

			x1, x2 := bits.Mul64(qhat, vn2)
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prev := rhat
				rhat += vn1
				if rhat < prev {
					break
				}
				x1, x2 = bits.Mul64(qhat, vn2)
			}
		}

		// D4: multiply and subtract; D6: add back if qhat was one too big.
		qhatv[n] = mulAddVWW(qhatv[:n], v, qhat, 0)
		if c := subVV(u[j:j+n+1], u[j:j+n+1], qhatv); c != 0 {
			c = addVV(u[j:j+n], u[j:j+n], v)
			u[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	// D8: unnormalize the remainder.
	r = make(Nat, n)
	shrVU(r, u[:n], s)
	return q.Norm(), r.Norm()
}
