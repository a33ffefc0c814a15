package twosquares

import (
	"math"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/twosquares/big"
	"github.com/privacybydesign/twosquares/internal/common"
	"github.com/privacybydesign/twosquares/primes"
)

var (
	ErrUnsupportedModulus = errors.New("modulus must be 2 or a prime congruent to 1 mod 4")
	ErrNoNonResidue       = errors.New("no quadratic non-residue below the search bound")
	ErrNotPrime           = errors.New("modulus is not prime")
)

// QuadraticNonResidue returns the least quadratic non-residue modulo the prime p = 1 mod 4.
//
// If p = 5 mod 8 this is 2, otherwise if p = 2 mod 3 it is 3. In the remaining case
// the odd primes q >= 5 are tried with Euler's criterion, (p mod q)^((q-1)/2) = -1 mod q,
// up to floor(sqrt(p))+1; the least non-residue of a prime always lies in that range.
// The candidate primes are taken from candidates, which may be shared between calls
// to avoid recomputing them; nil means a fresh sequence is used.
// (See S. Wagon, "The Euclidean Algorithm Strikes Again", Amer. Math. Monthly 97 (1990).)
func QuadraticNonResidue(p *big.Int, candidates *primes.Sequence) (*big.Int, error) {
	if p.Sign() <= 0 || common.Mod4(p) != 1 {
		return nil, ErrUnsupportedModulus
	}
	if common.Mod8(p) == 5 {
		return big.NewInt(2), nil
	}
	if common.ModUint64(p, 3) == 2 {
		return big.NewInt(3), nil
	}

	if candidates == nil {
		candidates = primes.NewSequence()
	}
	hi := uint64(math.MaxUint64)
	if root := common.FloorSqrt(p); root.IsUint64() && root.Uint64() < math.MaxUint64-2 {
		hi = root.Uint64() + 2 // exclusive
	}

	it := candidates.Range(5, hi)
	bq := new(big.Int)
	for q, ok := it.Next(); ok; q, ok = it.Next() {
		bq.SetUint64(q)
		r, err := common.ModPow(new(big.Int).Mod(p, bq), new(big.Int).SetUint64((q-1)/2), bq)
		if err != nil {
			return nil, err
		}
		if r.Uint64() == q-1 {
			return new(big.Int).Set(bq), nil
		}
	}
	return nil, ErrNoNonResidue
}

// PrimeRepresentation returns the representation of the prime p = 1 mod 4 as a sum of
// two squares, or (1, 1) for p = 2.
//
// With g the least non-residue, x = g^((p-1)/4) mod p is a square root of -1 mod p.
// Running the Euclidean algorithm on (p, x) until the larger element drops below
// sqrt(p) leaves the pair (a, b) with a^2 + b^2 = p.
func PrimeRepresentation(p *big.Int, candidates *primes.Sequence) (Representation, error) {
	if p.Cmp(bigTWO) == 0 {
		return Representation{A: big.NewInt(1), B: big.NewInt(1)}, nil
	}
	g, err := QuadraticNonResidue(p, candidates)
	if err != nil {
		return Representation{}, err
	}
	exp := new(big.Int).Sub(p, bigONE)
	exp.Rsh(exp, 2)
	x, err := common.ModPow(g, exp, p)
	if err != nil {
		return Representation{}, err
	}

	// a < sqrt(p) exactly when a < ceil(sqrt(p))
	bound := common.CeilSqrt(p)
	a, b := new(big.Int).Set(p), x
	for a.Cmp(bound) >= 0 {
		if b.Sign() == 0 {
			return Representation{}, errors.WrapPrefix(ErrNotPrime, p.String(), 0)
		}
		a, b = b, new(big.Int).Mod(a, b)
	}

	rep := NewRepresentation(a, b)
	if rep.Norm().Cmp(p) != 0 {
		return Representation{}, errors.WrapPrefix(ErrNotPrime, p.String(), 0)
	}
	return rep, nil
}
