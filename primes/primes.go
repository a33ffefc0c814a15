// Package primes supplies the number theory oracles used by the sum of two squares
// algorithms: prime enumeration, integer factorization and divisor listing.
package primes

import (
	"github.com/sirupsen/logrus"
)

var Logger = logrus.StandardLogger()

// Parameters control the cost/certainty trade-offs of the oracles.
type Parameters struct {
	// PrimalityRounds is the number of Miller-Rabin rounds passed to ProbablyPrime.
	PrimalityRounds int
	// TrialDivisionBound is the exclusive bound on the primes tried by trial division
	// before falling back to Pollard's rho.
	TrialDivisionBound uint64
	// RhoAttempts is the number of polynomials x^2+c tried on a composite
	// cofactor before giving up.
	RhoAttempts int
}

// DefaultParameters returns the parameters used by Factorize and Divisors.
func DefaultParameters() Parameters {
	return Parameters{
		PrimalityRounds:    40,
		TrialDivisionBound: 1 << 12,
		RhoAttempts:        64,
	}
}

// Sequence is a memoized, on-demand sequence of the primes 2, 3, 5, 7, ...
// It is extended lazily; iterators created from one Sequence share its cache.
// A Sequence is not safe for concurrent use.
type Sequence struct {
	primes []uint64
}

// NewSequence returns an empty prime cache.
func NewSequence() *Sequence {
	return &Sequence{primes: []uint64{2, 3}}
}

// Len returns the number of primes computed so far.
func (s *Sequence) Len() int {
	return len(s.primes)
}

// At returns the i-th prime (0-based), extending the cache as needed.
func (s *Sequence) At(i int) uint64 {
	for len(s.primes) <= i {
		s.extend()
	}
	return s.primes[i]
}

// extend appends the next prime, testing odd candidates by trial division
// against the primes already cached.
func (s *Sequence) extend() {
	for c := s.primes[len(s.primes)-1] + 2; ; c += 2 {
		if s.isPrime(c) {
			s.primes = append(s.primes, c)
			return
		}
	}
}

func (s *Sequence) isPrime(c uint64) bool {
	for _, q := range s.primes {
		if q*q > c {
			return true
		}
		if c%q == 0 {
			return false
		}
	}
	return true
}

// Range returns an iterator over the primes q with lo <= q < hi.
func (s *Sequence) Range(lo, hi uint64) *Iterator {
	return &Iterator{seq: s, lo: lo, hi: hi, start: -1, idx: -1}
}

// Iterator walks a finite range of primes. It can be restarted with Reset.
type Iterator struct {
	seq    *Sequence
	lo, hi uint64
	start  int // index of the first prime >= lo, -1 until located
	idx    int // -1 until the first call to Next after creation or Reset
}

// Next returns the next prime in the range, or false once the range is exhausted.
func (it *Iterator) Next() (uint64, bool) {
	if it.idx < 0 {
		it.locate()
	}
	q := it.seq.At(it.idx)
	if q >= it.hi {
		return 0, false
	}
	it.idx++
	return q, true
}

// Reset rewinds the iterator to the start of its range.
func (it *Iterator) Reset() {
	it.idx = -1
}

func (it *Iterator) locate() {
	if it.start < 0 {
		i := 0
		for it.seq.At(i) < it.lo {
			i++
		}
		it.start = i
	}
	it.idx = it.start
}
