// Package big contains a mostly API-compatible "math/big".Int that marshals to decimal text
// (JSON) and to big-endian bytes (CBOR).
package big

import (
	"encoding/json"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/go-errors/errors"
)

// Int is an API-compatible "math/big".Int with decimal text and binary marshaling.
// Binary marshaling only supports non-negative integers.
type Int big.Int

// MarshalText implements encoding.TextMarshaler, returning the base 10 representation of i.
func (i *Int) MarshalText() ([]byte, error) {
	return i.Go().MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing a base 10 integer.
func (i *Int) UnmarshalText(text []byte) error {
	if _, ok := i.SetString(string(text), 10); !ok {
		return errors.Errorf("%q is not a base 10 integer", text)
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Quoted input is parsed as a base 10 string;
// otherwise the input is decoded as an ordinary JSON number.
func (i *Int) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return errors.New("empty JSON input")
	}
	if b[0] != '"' {
		return json.Unmarshal(b, i.Go())
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return i.UnmarshalText([]byte(s))
}

// MarshalBinary implements encoding.BinaryMarshaler, returning the big-endian
// bytes of i.
func (i *Int) MarshalBinary() ([]byte, error) {
	if i.Sign() == -1 {
		return nil, errors.New("Marshaling negative integers is not supported")
	}
	return i.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (i *Int) UnmarshalBinary(data []byte) error {
	i.SetBytes(data)
	return nil
}

// Convert from a "math/big".Int
func Convert(x *big.Int) *Int {
	return (*Int)(x)
}

// Convert to a "math/big".Int
func (i *Int) Go() *big.Int {
	return (*big.Int)(i)
}

// "math/big".Int API, restricted to what the arithmetic in this module needs.

func NewInt(x int64) *Int { return Convert(big.NewInt(x)) }

func (i *Int) Format(s fmt.State, ch rune) { i.Go().Format(s, ch) }
func (i *Int) Bit(j int) uint              { return i.Go().Bit(j) }
func (i *Int) Bytes() []byte               { return i.Go().Bytes() }
func (i *Int) BitLen() int                 { return i.Go().BitLen() }
func (i *Int) Int64() int64                { return i.Go().Int64() }
func (i *Int) Uint64() uint64              { return i.Go().Uint64() }
func (i *Int) IsInt64() bool               { return i.Go().IsInt64() }
func (i *Int) IsUint64() bool              { return i.Go().IsUint64() }
func (i *Int) Sign() int                   { return i.Go().Sign() }
func (i *Int) Cmp(y *Int) int              { return i.Go().Cmp(y.Go()) }
func (i *Int) ProbablyPrime(n int) bool    { return i.Go().ProbablyPrime(n) }
func (i *Int) String() string              { return i.Go().String() }
func (i *Int) Text(base int) string        { return i.Go().Text(base) }
func (i *Int) SetInt64(x int64) *Int       { return Convert(i.Go().SetInt64(x)) }
func (i *Int) SetUint64(x uint64) *Int     { return Convert(i.Go().SetUint64(x)) }
func (i *Int) Set(x *Int) *Int             { return Convert(i.Go().Set(x.Go())) }
func (i *Int) Abs(x *Int) *Int             { return Convert(i.Go().Abs(x.Go())) }
func (i *Int) Neg(x *Int) *Int             { return Convert(i.Go().Neg(x.Go())) }
func (i *Int) Add(x, y *Int) *Int          { return Convert(i.Go().Add(x.Go(), y.Go())) }
func (i *Int) Sub(x, y *Int) *Int          { return Convert(i.Go().Sub(x.Go(), y.Go())) }
func (i *Int) Mul(x, y *Int) *Int          { return Convert(i.Go().Mul(x.Go(), y.Go())) }
func (i *Int) Quo(x, y *Int) *Int          { return Convert(i.Go().Quo(x.Go(), y.Go())) }
func (i *Int) Rem(x, y *Int) *Int          { return Convert(i.Go().Rem(x.Go(), y.Go())) }
func (i *Int) Div(x, y *Int) *Int          { return Convert(i.Go().Div(x.Go(), y.Go())) }
func (i *Int) Mod(x, y *Int) *Int          { return Convert(i.Go().Mod(x.Go(), y.Go())) }
func (i *Int) SetBytes(buf []byte) *Int    { return Convert(i.Go().SetBytes(buf)) }
func (i *Int) Lsh(x *Int, n uint) *Int     { return Convert(i.Go().Lsh(x.Go(), n)) }
func (i *Int) Rsh(x *Int, n uint) *Int     { return Convert(i.Go().Rsh(x.Go(), n)) }
func (i *Int) Sqrt(x *Int) *Int            { return Convert(i.Go().Sqrt(x.Go())) }
func (i *Int) Exp(x, y, m *Int) *Int {
	var mod *big.Int
	if m != nil {
		mod = m.Go()
	}
	return Convert(i.Go().Exp(x.Go(), y.Go(), mod))
}
func (i *Int) GCD(x, y, a, b *Int) *Int {
	var xg, yg *big.Int
	if x != nil {
		xg = x.Go()
	}
	if y != nil {
		yg = y.Go()
	}
	return Convert(i.Go().GCD(xg, yg, a.Go(), b.Go()))
}
func (i *Int) Rand(rnd *rand.Rand, n *Int) *Int {
	return Convert(i.Go().Rand(rnd, n.Go()))
}
func (i *Int) ModInverse(g, n *Int) *Int {
	return Convert(i.Go().ModInverse(g.Go(), n.Go()))
}
func (i *Int) SetString(s string, base int) (*Int, bool) {
	r, ok := i.Go().SetString(s, base)
	return Convert(r), ok
}
