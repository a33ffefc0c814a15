// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"github.com/cronokirby/saferith"
	"github.com/go-errors/errors"
	"github.com/privacybydesign/twosquares/big"
)

// Small integer arithmetic shared by the representation algorithms and the
// number theory oracles.

// Often we need to refer to the same small constant big numbers, no point in
// creating them again and again.
var (
	bigZERO  = big.NewInt(0)
	bigONE   = big.NewInt(1)
	bigTHREE = big.NewInt(3)
	bigFOUR  = big.NewInt(4)
	bigFIVE  = big.NewInt(5)
	bigEIGHT = big.NewInt(8)
)

var ErrNoModInverse = errors.New("modular inverse does not exist")

// ModPow computes x^y mod m for m > 0. The exponent (y) can be negative, in which
// case it uses the modular inverse to compute the result (in contrast to Go's Exp
// function). For odd moduli the exponentiation runs on saferith's Montgomery
// arithmetic, whose cost depends only on the sizes of the operands.
func ModPow(x, y, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, errors.Errorf("modulus must be positive, got %s", m)
	}
	base := new(big.Int).Mod(x, m)
	exp := y
	if y.Sign() == -1 {
		t := new(big.Int).ModInverse(base, m)
		if t == nil {
			return nil, ErrNoModInverse
		}
		base = t
		exp = new(big.Int).Neg(y)
	}
	if m.Bit(0) == 0 || m.Cmp(bigONE) == 0 {
		return new(big.Int).Exp(base, exp, m), nil
	}

	mod := saferith.ModulusFromNat(new(saferith.Nat).SetBig(m.Go(), m.BitLen()))
	b := new(saferith.Nat).SetBig(base.Go(), m.BitLen())
	e := new(saferith.Nat).SetBig(exp.Go(), exp.BitLen())
	return big.Convert(new(saferith.Nat).Exp(b, e, mod).Big()), nil
}

// FloorSqrt returns the largest integer r with r*r <= n. It panics for negative n.
func FloorSqrt(n *big.Int) *big.Int {
	return new(big.Int).Sqrt(n)
}

// CeilSqrt returns the smallest integer r with r*r >= n. For any integer a,
// a < sqrt(n) holds exactly when a < CeilSqrt(n).
func CeilSqrt(n *big.Int) *big.Int {
	r := FloorSqrt(n)
	if new(big.Int).Mul(r, r).Cmp(n) != 0 {
		r.Add(r, bigONE)
	}
	return r
}

// IsSquare reports whether n is the square of an integer, returning the root.
func IsSquare(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 {
		return nil, false
	}
	r := FloorSqrt(n)
	return r, new(big.Int).Mul(r, r).Cmp(n) == 0
}

// Mod4 returns n mod 4 for non-negative n.
func Mod4(n *big.Int) uint {
	return n.Bit(1)<<1 | n.Bit(0)
}

// Mod8 returns n mod 8 for non-negative n.
func Mod8(n *big.Int) uint {
	return n.Bit(2)<<2 | Mod4(n)
}

// ModUint64 returns n mod m.
func ModUint64(n *big.Int, m uint64) uint64 {
	return new(big.Int).Mod(n, new(big.Int).SetUint64(m)).Uint64()
}

// LegendreSymbol calculates the Legendre symbol (a/p).
func LegendreSymbol(a, p *big.Int) int {
	// Adapted from: https://programmingpraxis.com/2012/05/01/legendres-symbol/
	j := 1

	// rule 5
	n := new(big.Int).Mod(a, p)
	m := new(big.Int).Set(p)

	tmp := new(big.Int)
	for n.Cmp(bigZERO) != 0 {
		// rules 3 and 4
		t := 0
		for n.Bit(0) == 0 {
			n.Rsh(n, 1)
			t++
		}
		tmp.Mod(m, bigEIGHT)
		if t&1 == 1 && (tmp.Cmp(bigTHREE) == 0 || tmp.Cmp(bigFIVE) == 0) {
			j = -j
		}

		// rule 6
		if tmp.Mod(m, bigFOUR).Cmp(bigTHREE) == 0 && tmp.Mod(n, bigFOUR).Cmp(bigTHREE) == 0 {
			j = -j
		}

		// rules 5 and 6
		m.Mod(m, n)
		n, m = m, n
	}
	if m.Cmp(bigONE) == 0 {
		return j
	}
	return 0
}
