package bignum

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/smallyu/go-bignum/internal/nat"
)

// FromInt returns v as an Int for any signed machine integer type.
func FromInt[T constraints.Signed](v T) *Int {
	return intOf(v)
}

// FromUint returns v as an Int for any unsigned machine integer type.
func FromUint[T constraints.Unsigned](v T) *Int {
	return intOf(v)
}

func intOf[T constraints.Integer](v T) *Int {
	if v < 0 {
		return NewInt(int64(v))
	}
	return NewUint(uint64(v))
}

// FitsInt64 reports whether x is representable as an int64.
func (x *Int) FitsInt64() bool {
	switch len(x.abs) {
	case 0:
		return true
	case 1:
		if x.neg {
			return x.abs[0] <= 1<<63
		}
		return x.abs[0] <= math.MaxInt64
	}
	return false
}

// FitsUint64 reports whether x is representable as a uint64; false for
// negative values.
func (x *Int) FitsUint64() bool {
	return !x.neg && len(x.abs) <= 1
}

// ToInt64 returns x as an int64, or a *ConversionError when x is out of range.
func (x *Int) ToInt64() (int64, error) {
	if !x.FitsInt64() {
		return 0, &ConversionError{Value: x.String(), From: "Int", To: "int64"}
	}
	u := x.abs.Uint64()
	if x.neg {
		return int64(-u), nil
	}
	return int64(u), nil
}

// ToUint64 returns x as a uint64, or a *ConversionError when x is negative
// or too large.
func (x *Int) ToUint64() (uint64, error) {
	if !x.FitsUint64() {
		return 0, &ConversionError{Value: x.String(), From: "Int", To: "uint64"}
	}
	return x.abs.Uint64(), nil
}

// Bytes returns |x| as a big-endian byte slice with no leading zeros.
func (x *Int) Bytes() []byte {
	buf := make([]byte, (x.BitLen()+7)/8)
	return x.FillBytes(buf)
}

// FillBytes writes |x| big-endian into buf, zero-padded on the left, and
// returns buf. It panics if |x| does not fit.
func (x *Int) FillBytes(buf []byte) []byte {
	if (x.BitLen()+7)/8 > len(buf) {
		panic("bignum: buffer too small for value")
	}
	clear(buf)
	var w [8]byte
	i := len(buf)
	for _, limb := range x.abs {
		binary.BigEndian.PutUint64(w[:], limb)
		for j := 7; j >= 0 && i > 0; j-- {
			i--
			buf[i] = w[j]
		}
	}
	return buf
}

// SetBytes interprets buf as a big-endian unsigned integer and sets z to it.
func (z *Int) SetBytes(buf []byte) *Int {
	abs := make(nat.Nat, (len(buf)+7)/8)
	for i := range abs {
		end := len(buf) - 8*i
		start := max(end-8, 0)
		var w uint64
		for _, b := range buf[start:end] {
			w = w<<8 | uint64(b)
		}
		abs[i] = w
	}
	return z.setSigned(false, abs)
}

// FromBig converts a math/big integer.
func FromBig(b *big.Int) *Int {
	z := new(Int).SetBytes(b.Bytes())
	z.neg = b.Sign() < 0
	return z
}

// Big returns x as a math/big integer.
func (x *Int) Big() *big.Int {
	b := new(big.Int).SetBytes(x.Bytes())
	if x.neg {
		b.Neg(b)
	}
	return b
}

// Hash returns a hash of x that depends only on its value.
func (x *Int) Hash() uint64 {
	h := fnv.New64a()
	x.writeHash(h)
	return h.Sum64()
}

func (x *Int) writeHash(h hash.Hash64) {
	var buf [8]byte
	if x.neg {
		h.Write([]byte{'-'})
	} else {
		h.Write([]byte{'+'})
	}
	for _, limb := range x.abs {
		binary.LittleEndian.PutUint64(buf[:], limb)
		h.Write(buf[:])
	}
}
