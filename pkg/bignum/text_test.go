package bignum

import (
	"encoding/json"
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTextRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(21))
	for radix := 2; radix <= 62; radix++ {
		for i := 0; i < 10; i++ {
			x := randInt(rnd, 4)
			s := x.Text(radix)
			assert.Equal(t, x.Big().Text(radix), s, "radix %d", radix)

			y, err := Parse(s, radix)
			require.NoError(t, err, "radix %d: %q", radix, s)
			assert.True(t, x.Equal(y), "radix %d: %q", radix, s)

			n := x.SizeInBase(radix)
			digits := len(x.Abs().Text(radix))
			if x.IsZero() {
				digits = 0
			}
			assert.GreaterOrEqual(t, n, digits, "radix %d: %q", radix, s)
			assert.LessOrEqual(t, n, digits+1, "radix %d: %q", radix, s)
		}
	}
}

func TestTextCanonical(t *testing.T) {
	assert.Equal(t, "0", Zero().Text(2))
	assert.Equal(t, "0", NewInt(5).Sub(NewInt(5)).Text(36))
	assert.Equal(t, "-ff", NewInt(-255).Text(16))
	assert.Equal(t, "Z", NewInt(61).Text(62))
	assert.Equal(t, "z", NewInt(35).Text(36))
	assert.Equal(t, "<nil>", (*Int)(nil).String())
	assert.Panics(t, func() { NewInt(1).Text(1) })
	assert.Panics(t, func() { NewInt(1).Text(63) })
}

func TestParseCases(t *testing.T) {
	tests := []struct {
		s     string
		radix int
		want  string
	}{
		{"0", 10, "0"},
		{"-0", 10, "0"},
		{"000123", 10, "123"},
		{"FF", 16, "255"},
		{"ff", 16, "255"},
		{"-Zz", 36, "-1295"},
		{"z", 62, "35"},
		{"Z", 62, "61"},
		{"10", 62, "62"},
		{"1111", 2, "15"},
	}
	for _, tt := range tests {
		x, err := Parse(tt.s, tt.radix)
		require.NoError(t, err, tt.s)
		assert.Equal(t, tt.want, x.String(), tt.s)
	}
	assert.False(t, MustParse("-0", 10).neg)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		s      string
		radix  int
		offset int
	}{
		{"", 10, 0},
		{"-", 10, 1},
		{"12a4", 10, 2},
		{"-12a4", 10, 3},
		{"+5", 10, 0},
		{" 5", 10, 0},
		{"102", 2, 2},
		{"1_000", 10, 1},
	}
	for _, tt := range tests {
		_, err := Parse(tt.s, tt.radix)
		var pe *ParseError
		require.ErrorAs(t, err, &pe, "%q", tt.s)
		assert.Equal(t, tt.offset, pe.Offset, "%q", tt.s)
		assert.Equal(t, tt.s, pe.Input)
		assert.ErrorIs(t, err, ErrParse)
	}

	_, err := Parse("10", 1)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = Parse("10", 63)
	assert.ErrorIs(t, err, ErrDomain)

	z := NewInt(42)
	_, err = z.SetString("4x", 10)
	require.Error(t, err)
	assert.Equal(t, "42", z.String())

	assert.Panics(t, func() { MustParse("nope", 10) })
}

func TestFormat(t *testing.T) {
	tests := []struct {
		format string
		x      *Int
		want   string
	}{
		{"%d", NewInt(-42), "-42"},
		{"%v", NewInt(42), "42"},
		{"%s", NewInt(42), "42"},
		{"%+d", NewInt(42), "+42"},
		{"% d", NewInt(42), " 42"},
		{"%x", NewInt(255), "ff"},
		{"%X", NewInt(-255), "-FF"},
		{"%#x", NewInt(255), "0xff"},
		{"%#X", NewInt(255), "0XFF"},
		{"%b", NewInt(5), "101"},
		{"%#b", NewInt(5), "0b101"},
		{"%o", NewInt(8), "10"},
		{"%#o", NewInt(8), "010"},
		{"%O", NewInt(8), "0o10"},
		{"%6d", NewInt(42), "    42"},
		{"%-6d|", NewInt(42), "42    |"},
		{"%06d", NewInt(-42), "-00042"},
		{"%d", (*Int)(nil), "<nil>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fmt.Sprintf(tt.format, tt.x), tt.format)
	}

	x := One().Lsh(100)
	assert.Equal(t, x.Big().Text(16), fmt.Sprintf("%x", x))
	assert.Contains(t, fmt.Sprintf("%q", NewInt(1)), "%!q")
}

type ledger struct {
	Total   *Int `json:"total"`
	Balance Int  `json:"balance"`
	Share   *Rat `json:"share"`
}

func TestJSON(t *testing.T) {
	huge := MustParse("-123456789012345678901234567890", 10)
	in := ledger{Total: huge, Balance: *NewInt(7), Share: mustRat(t, -2, 6)}

	data, err := json.Marshal(&in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":-123456789012345678901234567890,"balance":7,"share":"-1/3"}`, string(data))

	var out ledger
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Total.Equal(huge))
	assert.True(t, out.Balance.Equal(NewInt(7)))
	assert.True(t, out.Share.Equal(mustRat(t, -1, 3)))

	require.NoError(t, json.Unmarshal([]byte(`{"total":"99","balance":null,"share":4}`), &out))
	assert.Equal(t, "99", out.Total.String())
	assert.Equal(t, "7", out.Balance.String())
	assert.Equal(t, "4", out.Share.String())

	var bad ledger
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"total":1.5}`), &bad), ErrParse)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"share":"1/0"}`), &bad), ErrDivisionByZero)

	data, err = json.Marshal(&ledger{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":null,"balance":0,"share":null}`, string(data))
}

func TestRatText(t *testing.T) {
	assert.Equal(t, "-3/2", mustRat(t, 6, -4).String())
	assert.Equal(t, "5", mustRat(t, 10, 2).String())
	assert.Equal(t, "33/2", mustRat(t, 255, 10).Text(16))
	assert.Equal(t, "<nil>", (*Rat)(nil).String())
	assert.Panics(t, func() { OneRat().Text(0) })

	rnd := rand.New(rand.NewSource(22))
	for radix := 2; radix <= 62; radix += 5 {
		for i := 0; i < 10; i++ {
			x := randRat(rnd, 2)
			y, err := ParseRat(x.Text(radix), radix)
			require.NoError(t, err)
			assert.True(t, x.Equal(y), "radix %d: %s", radix, x.Text(radix))
		}
	}

	text, err := mustRat(t, 7, -21).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-1/3", string(text))
	var r Rat
	require.NoError(t, r.UnmarshalText([]byte("14")))
	assert.Equal(t, "14", r.String())
}

func TestParseRat(t *testing.T) {
	tests := []struct {
		s     string
		radix int
		want  string
	}{
		{"6/4", 10, "3/2"},
		{"-6/4", 10, "-3/2"},
		{"0/5", 10, "0"},
		{"-0/5", 10, "0"},
		{"12", 10, "12"},
		{"ff/a", 16, "51/2"},
		{"10/100", 2, "1/2"},
	}
	for _, tt := range tests {
		r, err := ParseRat(tt.s, tt.radix)
		require.NoError(t, err, tt.s)
		assert.Equal(t, tt.want, r.String(), tt.s)
	}

	errTests := []struct {
		s      string
		offset int
	}{
		{"10/-4", 3},
		{"1/2x", 3},
		{"/2", 0},
		{"2/", 2},
		{"1x/2", 1},
		{"1/2/3", 3},
	}
	for _, tt := range errTests {
		_, err := ParseRat(tt.s, 10)
		var pe *ParseError
		require.ErrorAs(t, err, &pe, tt.s)
		assert.Equal(t, tt.offset, pe.Offset, tt.s)
		assert.Equal(t, tt.s, pe.Input, tt.s)
	}

	_, err := ParseRat("3/0", 10)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = ParseRat("3/4", 99)
	assert.ErrorIs(t, err, ErrDomain)
	assert.Panics(t, func() { MustParseRat("1/0", 10) })
	assert.Equal(t, "1/2", MustParseRat("2/4", 10).String())
}

type tuning struct {
	Modulus Int `toml:"modulus" yaml:"modulus"`
	Offset  Int `toml:"offset" yaml:"offset"`
	Ratio   Rat `toml:"ratio" yaml:"ratio"`
}

func TestDecodeTOML(t *testing.T) {
	const doc = `
modulus = "115792089237316195423570985008687907852837564279074904382605163141518161494337"
offset = -12
ratio = "3/9"
`
	var cfg tuning
	_, err := toml.Decode(doc, &cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Modulus.LimbCount())
	assert.Equal(t, "-12", cfg.Offset.String())
	assert.Equal(t, "1/3", cfg.Ratio.String())

	_, err = toml.Decode(`ratio = "1/0"`, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrDivisionByZero.Error())
}

func TestDecodeYAML(t *testing.T) {
	const doc = `
modulus: 115792089237316195423570985008687907852837564279074904382605163141518161494337
offset: -12
ratio: 10/-4
`
	var cfg tuning
	err := yaml.Unmarshal([]byte(doc), &cfg)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Offset)

	const good = `
modulus: 115792089237316195423570985008687907852837564279074904382605163141518161494337
offset: -12
ratio: -10/4
`
	cfg = tuning{}
	require.NoError(t, yaml.Unmarshal([]byte(good), &cfg))
	assert.Equal(t, -1, new(big.Int).Lsh(big.NewInt(1), 255).Cmp(cfg.Modulus.Big()))
	assert.Equal(t, "-12", cfg.Offset.String())
	assert.Equal(t, "-5/2", cfg.Ratio.String())
}
