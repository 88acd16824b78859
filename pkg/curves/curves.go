// Package curves converts between bignum.Int and the fixed-width scalar and
// field types of the secp256k1 and edwards25519 libraries.
package curves

import (
	"fmt"
	"slices"

	"filippo.io/edwards25519"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-bignum/pkg/bignum"
)

// Secp256k1Order returns the order N of the secp256k1 group.
func Secp256k1Order() *bignum.Int {
	return bignum.FromBig(secp256k1.S256().Params().N)
}

// Secp256k1Prime returns the prime P of the secp256k1 base field.
func Secp256k1Prime() *bignum.Int {
	return bignum.FromBig(secp256k1.S256().Params().P)
}

// Ed25519Order returns the prime order l = 2^252 + 27742317777372353535851937790883648493
// of the edwards25519 scalar field.
func Ed25519Order() *bignum.Int {
	return bignum.One().Lsh(252).Add(bignum.MustParse("27742317777372353535851937790883648493", 10))
}

// reduce returns x mod m in [0, m). m is one of the non-zero constants
// above.
func reduce(x, m *bignum.Int) *bignum.Int {
	r, err := x.Mod(m)
	if err != nil {
		panic(err)
	}
	return r
}

// ToSecp256k1Scalar reduces x modulo N, negative values included.
func ToSecp256k1Scalar(x *bignum.Int) *secp256k1.ModNScalar {
	var s secp256k1.ModNScalar
	s.SetByteSlice(reduce(x, Secp256k1Order()).FillBytes(make([]byte, 32)))
	return &s
}

// FromSecp256k1Scalar returns s as an integer in [0, N).
func FromSecp256k1Scalar(s *secp256k1.ModNScalar) *bignum.Int {
	b := s.Bytes()
	return new(bignum.Int).SetBytes(b[:])
}

// ToSecp256k1Field reduces x modulo P.
func ToSecp256k1Field(x *bignum.Int) *secp256k1.FieldVal {
	var f secp256k1.FieldVal
	f.SetByteSlice(reduce(x, Secp256k1Prime()).FillBytes(make([]byte, 32)))
	return &f
}

// FromSecp256k1Field returns f as an integer in [0, P). f itself is not
// normalized.
func FromSecp256k1Field(f *secp256k1.FieldVal) *bignum.Int {
	var n secp256k1.FieldVal
	n.Set(f).Normalize()
	return new(bignum.Int).SetBytes(n.Bytes()[:])
}

// ToEd25519Scalar reduces x modulo l.
func ToEd25519Scalar(x *bignum.Int) *edwards25519.Scalar {
	b := reduce(x, Ed25519Order()).FillBytes(make([]byte, 32))
	// edwards25519 scalars are little-endian
	slices.Reverse(b)
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		panic(err)
	}
	return s
}

// FromEd25519Scalar returns s as an integer in [0, l).
func FromEd25519Scalar(s *edwards25519.Scalar) *bignum.Int {
	return fromLittleEndian(s.Bytes())
}

// ReduceEd25519Wide interprets a 64-byte little-endian string as an
// integer and reduces it modulo l, the way edwards25519 derives scalars
// from hash output.
func ReduceEd25519Wide(b []byte) (*bignum.Int, error) {
	if len(b) != 64 {
		return nil, &bignum.ConversionError{Value: fmt.Sprintf("of length %d", len(b)), From: "[]byte", To: "64-byte wide scalar"}
	}
	return reduce(fromLittleEndian(b), Ed25519Order()), nil
}

func fromLittleEndian(b []byte) *bignum.Int {
	be := slices.Clone(b)
	slices.Reverse(be)
	return new(bignum.Int).SetBytes(be)
}
