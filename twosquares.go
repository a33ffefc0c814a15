package twosquares

import (
	"github.com/go-errors/errors"
	"github.com/privacybydesign/twosquares/big"
	"github.com/privacybydesign/twosquares/internal/common"
	"github.com/privacybydesign/twosquares/primes"
)

var ErrInvalidInput = errors.New("n must be a non-negative integer")

// Oracle supplies the factorizations and divisor lists the algorithms are built on.
// Errors returned by an Oracle are passed on to the caller unmodified.
type Oracle interface {
	Factorize(n *big.Int) (primes.Factorization, error)
	Divisors(n *big.Int) ([]*big.Int, error)
}

// Solver computes sums of two squares on top of an Oracle. It holds no mutable state
// and is safe for concurrent use.
type Solver struct {
	oracle Oracle

	// Workers bounds the number of goroutines used by SolveAll; 0 means GOMAXPROCS.
	Workers int
	// Follower is notified of the progress of SolveAll. It must be safe for concurrent use.
	Follower ProgressFollower
}

// NewSolver returns a Solver using the given oracle, or primes.Default() if it is nil.
func NewSolver(oracle Oracle) *Solver {
	if oracle == nil {
		oracle = primes.Default()
	}
	return &Solver{oracle: oracle, Follower: &EmptyFollower{}}
}

var defaultSolver = NewSolver(nil)

// SumOfTwoSquares returns all representations of n as m1^2 + m2^2 with 0 <= m1 <= m2,
// and r2(n), using the default oracle.
func SumOfTwoSquares(n *big.Int) (*Result, error) {
	return defaultSolver.Solve(n)
}

// Solve returns r2(n) and all representations of n as m1^2 + m2^2 with 0 <= m1 <= m2,
// sorted ascending. The representations are constructed from the factorization of n:
// each prime p = 1 mod 4 (and 2) is written as a sum of two squares, raised to its
// exponent by repeated composition, and the results for all primes are composed.
// If a prime p = 3 mod 4 divides n to an odd power, n has no representations and
// the result has count 0 and no representations.
func (s *Solver) Solve(n *big.Int) (*Result, error) {
	switch {
	case n.Sign() < 0:
		return nil, ErrInvalidInput
	case n.Sign() == 0:
		return &Result{
			N:               big.NewInt(0),
			Count:           big.NewInt(1),
			Representations: Representations{{A: big.NewInt(0), B: big.NewInt(0)}},
		}, nil
	case n.Cmp(bigONE) == 0:
		return &Result{
			N:               big.NewInt(1),
			Count:           big.NewInt(4),
			Representations: Representations{unit()},
		}, nil
	}

	f, err := s.oracle.Factorize(n)
	if err != nil {
		return nil, err
	}
	Logger.Tracef("factorized %s = %s", n, f)

	result := &Result{
		N:               new(big.Int).Set(n),
		Count:           CountFromFactorization(f),
		Representations: Representations{},
	}
	if result.Count.Sign() == 0 {
		Logger.Debugf("%s has a prime factor 3 mod 4 with odd exponent, no representations", n)
		return result, nil
	}

	// Shared between the non-residue searches of all prime factors
	candidates := primes.NewSequence()
	reps := Representations{unit()}
	for _, fac := range f {
		facReps, err := factorRepresentations(fac, candidates)
		if err != nil {
			return nil, err
		}
		Logger.Tracef("representations of %s^%d: %s", fac.Prime, fac.Exponent, facReps)
		reps = composeSets(reps, facReps)
	}
	result.Representations = reps.canonical()
	return result, nil
}

// factorRepresentations returns the representations of p^e. For p = 3 mod 4 the
// exponent must be even and the only representation is (0, p^(e/2)).
func factorRepresentations(fac primes.Factor, candidates *primes.Sequence) (Representations, error) {
	if common.Mod4(fac.Prime) == 3 {
		if fac.Exponent%2 == 1 {
			return Representations{}, nil
		}
		root := new(big.Int).Exp(fac.Prime, big.NewInt(int64(fac.Exponent/2)), nil)
		return Representations{NewRepresentation(bigZERO, root)}, nil
	}

	base, err := PrimeRepresentation(fac.Prime, candidates)
	if err != nil {
		return nil, err
	}
	return PrimePowerRepresentations(base, fac.Exponent), nil
}
