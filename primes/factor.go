package primes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/twosquares/big"
	"github.com/privacybydesign/twosquares/internal/common"
)

var bigONE = big.NewInt(1)

var (
	ErrNonPositive         = errors.New("only positive integers can be factorized")
	ErrFactorizationFailed = errors.New("failed to split composite number")
)

type (
	// Factor is a prime together with its multiplicity in a factorization.
	Factor struct {
		Prime    *big.Int `json:"prime"`
		Exponent int      `json:"exponent"`
	}

	// Factorization is the prime factorization of a positive integer, sorted by
	// ascending prime. The factorization of 1 is empty.
	Factorization []Factor
)

// Value returns the integer whose factorization f is.
func (f Factorization) Value() *big.Int {
	v := big.NewInt(1)
	for _, fac := range f {
		v.Mul(v, new(big.Int).Exp(fac.Prime, big.NewInt(int64(fac.Exponent)), nil))
	}
	return v
}

// Divisors returns all positive divisors of f.Value() in ascending order.
func (f Factorization) Divisors() []*big.Int {
	divs := []*big.Int{big.NewInt(1)}
	for _, fac := range f {
		count := len(divs)
		pk := big.NewInt(1)
		for e := 1; e <= fac.Exponent; e++ {
			pk = new(big.Int).Mul(pk, fac.Prime)
			for _, d := range divs[:count] {
				divs = append(divs, new(big.Int).Mul(d, pk))
			}
		}
	}
	sort.Slice(divs, func(i, j int) bool { return divs[i].Cmp(divs[j]) < 0 })
	return divs
}

func (f Factorization) String() string {
	if len(f) == 0 {
		return "1"
	}
	parts := make([]string, len(f))
	for i, fac := range f {
		if fac.Exponent == 1 {
			parts[i] = fac.Prime.String()
		} else {
			parts[i] = fmt.Sprintf("%s^%d", fac.Prime, fac.Exponent)
		}
	}
	return strings.Join(parts, " * ")
}

// Oracle factorizes integers by trial division followed by Pollard's rho on
// the remaining cofactor. An Oracle is immutable and safe for concurrent use.
type Oracle struct {
	params Parameters
	small  []uint64
}

// NewOracle precomputes the trial division primes for the given parameters.
func NewOracle(params Parameters) *Oracle {
	o := &Oracle{params: params}
	it := NewSequence().Range(2, params.TrialDivisionBound)
	for q, ok := it.Next(); ok; q, ok = it.Next() {
		o.small = append(o.small, q)
	}
	return o
}

var defaultOracle = NewOracle(DefaultParameters())

// Default returns the Oracle configured with DefaultParameters.
func Default() *Oracle {
	return defaultOracle
}

// Factorize returns the prime factorization of n using the default Oracle.
func Factorize(n *big.Int) (Factorization, error) {
	return defaultOracle.Factorize(n)
}

// Divisors returns the positive divisors of n using the default Oracle.
func Divisors(n *big.Int) ([]*big.Int, error) {
	return defaultOracle.Divisors(n)
}

// Divisors returns the positive divisors of n in ascending order.
func (o *Oracle) Divisors(n *big.Int) ([]*big.Int, error) {
	f, err := o.Factorize(n)
	if err != nil {
		return nil, err
	}
	return f.Divisors(), nil
}

// Factorize returns the prime factorization of n > 0.
func (o *Oracle) Factorize(n *big.Int) (Factorization, error) {
	if n.Sign() <= 0 {
		return nil, ErrNonPositive
	}

	var f Factorization
	m := new(big.Int).Set(n)
	bq := new(big.Int)
	rem := new(big.Int)
	for _, q := range o.small {
		bq.SetUint64(q)
		if rem.Mul(bq, bq).Cmp(m) > 0 {
			break
		}
		e := 0
		for rem.Mod(m, bq).Sign() == 0 {
			m.Quo(m, bq)
			e++
		}
		if e > 0 {
			f = append(f, Factor{Prime: new(big.Int).Set(bq), Exponent: e})
		}
	}
	if m.Cmp(bigONE) == 0 {
		return f, nil
	}

	Logger.Tracef("trial division left cofactor %s", m)
	large, err := o.split(m)
	if err != nil {
		return nil, err
	}
	sort.Slice(large, func(i, j int) bool { return large[i].Cmp(large[j]) < 0 })
	for _, p := range large {
		if last := len(f) - 1; last >= 0 && f[last].Prime.Cmp(p) == 0 {
			f[last].Exponent++
			continue
		}
		f = append(f, Factor{Prime: p, Exponent: 1})
	}
	return f, nil
}

// split returns the prime factors of m > 1 with multiplicity, in no particular order.
func (o *Oracle) split(m *big.Int) ([]*big.Int, error) {
	if m.ProbablyPrime(o.params.PrimalityRounds) {
		return []*big.Int{m}, nil
	}
	if r, ok := common.IsSquare(m); ok {
		half, err := o.split(r)
		if err != nil {
			return nil, err
		}
		return append(half, half...), nil
	}

	d, err := o.rho(m)
	if err != nil {
		return nil, err
	}
	left, err := o.split(d)
	if err != nil {
		return nil, err
	}
	right, err := o.split(new(big.Int).Quo(m, d))
	if err != nil {
		return nil, err
	}
	return append(left, right...), nil
}

// rho finds a non-trivial divisor of the composite n with Pollard's rho method,
// using Floyd cycle detection on x -> x^2 + c for c = 1, 2, ...
func (o *Oracle) rho(n *big.Int) (*big.Int, error) {
	diff := new(big.Int)
	for c := 1; c <= o.params.RhoAttempts; c++ {
		bc := big.NewInt(int64(c))
		x, y, d := big.NewInt(2), big.NewInt(2), big.NewInt(1)
		for d.Cmp(bigONE) == 0 {
			x.Mul(x, x).Add(x, bc).Mod(x, n)
			y.Mul(y, y).Add(y, bc).Mod(y, n)
			y.Mul(y, y).Add(y, bc).Mod(y, n)
			d.GCD(nil, nil, diff.Abs(diff.Sub(x, y)), n)
		}
		if d.Cmp(n) != 0 {
			return d, nil
		}
		Logger.Debugf("pollard rho with c=%d found no divisor of %s", c, n)
	}
	return nil, errors.WrapPrefix(ErrFactorizationFailed, n.String(), 0)
}
