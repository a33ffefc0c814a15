package twosquares

import (
	"github.com/privacybydesign/twosquares/big"
	"github.com/privacybydesign/twosquares/internal/common"
	"github.com/privacybydesign/twosquares/primes"
)

// RepresentationCount returns r2(n), the number of pairs of integers (x, y), signs and
// order counted, with x^2 + y^2 = n, using the default oracle.
func RepresentationCount(n *big.Int) (*big.Int, error) {
	return defaultSolver.Count(n)
}

// Count returns r2(n) = 4(d1(n) - d3(n)), where d1 and d3 count the divisors of n that
// are 1 and 3 mod 4. By convention r2(0) = 1.
func (s *Solver) Count(n *big.Int) (*big.Int, error) {
	switch n.Sign() {
	case -1:
		return nil, ErrInvalidInput
	case 0:
		return big.NewInt(1), nil
	}

	divs, err := s.oracle.Divisors(n)
	if err != nil {
		return nil, err
	}
	var d1, d3 int64
	for _, d := range divs {
		switch common.Mod4(d) {
		case 1:
			d1++
		case 3:
			d3++
		}
	}
	return big.NewInt(4 * (d1 - d3)), nil
}

// CountFromFactorization returns r2 of the integer factorized by f in closed form:
// 0 if a prime p = 3 mod 4 occurs to an odd power, and 4 times the product of
// (e+1) over the primes p = 1 mod 4 with exponent e otherwise.
func CountFromFactorization(f primes.Factorization) *big.Int {
	count := big.NewInt(4)
	for _, fac := range f {
		switch common.Mod4(fac.Prime) {
		case 1:
			count.Mul(count, big.NewInt(int64(fac.Exponent)+1))
		case 3:
			if fac.Exponent%2 == 1 {
				return big.NewInt(0)
			}
		}
	}
	return count
}
