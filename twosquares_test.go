package twosquares

import (
	"encoding/json"
	"testing"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/twosquares/big"
	"github.com/privacybydesign/twosquares/primes"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func init() {
	Logger = logrus.StandardLogger()
	Logger.SetLevel(logrus.FatalLevel)
}

func solve(t *testing.T, n int64) *Result {
	res, err := SumOfTwoSquares(big.NewInt(n))
	require.NoError(t, err)
	require.NoError(t, res.Verify())
	return res
}

func TestSumOfTwoSquaresExamples(t *testing.T) {
	res := solve(t, 0)
	require.Equal(t, int64(1), res.Count.Int64())
	requireReps(t, []Representation{rep(0, 0)}, res.Representations)

	res = solve(t, 1)
	require.Equal(t, int64(4), res.Count.Int64())
	requireReps(t, []Representation{rep(0, 1)}, res.Representations)

	res = solve(t, 25)
	require.Equal(t, int64(12), res.Count.Int64())
	requireReps(t, []Representation{rep(0, 5), rep(3, 4)}, res.Representations)

	res = solve(t, 3)
	require.Zero(t, res.Count.Sign())
	require.Empty(t, res.Representations)

	res = solve(t, 9)
	require.Equal(t, int64(4), res.Count.Int64())
	requireReps(t, []Representation{rep(0, 3)}, res.Representations)

	res = solve(t, 50)
	require.Equal(t, int64(12), res.Count.Int64())
	requireReps(t, []Representation{rep(1, 7), rep(5, 5)}, res.Representations)
	require.Equal(t, "r2(50) = 12: {(1, 7), (5, 5)}", res.String())

	res = solve(t, 15)
	require.Zero(t, res.Count.Sign())
	require.Empty(t, res.Representations)
}

func TestSumOfTwoSquaresNegative(t *testing.T) {
	res, err := SumOfTwoSquares(big.NewInt(-25))
	require.Equal(t, ErrInvalidInput, err)
	require.Nil(t, res)
}

func TestSumOfTwoSquaresBruteForce(t *testing.T) {
	for n := int64(0); n < 2000; n++ {
		res := solve(t, n)

		var expected []Representation
		for a := int64(0); 2*a*a <= n; a++ {
			if b := isqrt(n - a*a); b*b == n-a*a {
				expected = append(expected, rep(a, b))
			}
		}
		requireReps(t, expected, res.Representations)
		require.Equal(t, bruteForceCount(n), res.Count.Int64(), "r2(%d)", n)
	}
}

func TestSumOfTwoSquaresMatchesCount(t *testing.T) {
	for n := int64(0); n < 5000; n += 7 {
		res := solve(t, n)
		count, err := RepresentationCount(big.NewInt(n))
		require.NoError(t, err)
		require.Zero(t, res.Count.Cmp(count), "r2(%d)", n)
	}
}

func TestSumOfTwoSquaresDeterministic(t *testing.T) {
	n := big.NewInt(2 * 2 * 5 * 5 * 5 * 13 * 17 * 29 * 49)
	first, err := SumOfTwoSquares(n)
	require.NoError(t, err)
	second, err := SumOfTwoSquares(n)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, int64(4*4*2*2*2), first.Count.Int64())
}

func TestSumOfTwoSquaresLarge(t *testing.T) {
	// 2^7 * 3^4 * 5^6 * 13^3 * 1000033
	n := big.NewInt(2 * 2 * 2 * 2 * 2 * 2 * 2 * 81 * 15625 * 2197)
	n.Mul(n, big.NewInt(1000033))
	res, err := SumOfTwoSquares(n)
	require.NoError(t, err)
	require.NoError(t, res.Verify())
	require.Equal(t, int64(224), res.Count.Int64())
	require.Len(t, res.Representations, 28)

	p := largePrime(t)
	res, err = SumOfTwoSquares(p)
	require.NoError(t, err)
	require.NoError(t, res.Verify())
	require.Equal(t, int64(8), res.Count.Int64())
	require.Len(t, res.Representations, 1)

	pp := new(big.Int).Mul(p, p)
	res, err = SumOfTwoSquares(pp)
	require.NoError(t, err)
	require.NoError(t, res.Verify())
	require.Equal(t, int64(12), res.Count.Int64())
	require.Len(t, res.Representations, 2)
	require.Zero(t, res.Representations[0].A.Sign())
	require.Zero(t, res.Representations[0].B.Cmp(p))
}

type fakeOracle struct {
	factorization primes.Factorization
	err           error
}

func (o *fakeOracle) Factorize(*big.Int) (primes.Factorization, error) {
	return o.factorization, o.err
}

func (o *fakeOracle) Divisors(*big.Int) ([]*big.Int, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.factorization.Divisors(), nil
}

func TestOracleFailure(t *testing.T) {
	oracleErr := errors.New("factorization unavailable")
	solver := NewSolver(&fakeOracle{err: oracleErr})

	_, err := solver.Solve(big.NewInt(65))
	require.Equal(t, oracleErr, err)
	_, err = solver.Count(big.NewInt(65))
	require.Equal(t, oracleErr, err)

	// boundary cases do not consult the oracle
	res, err := solver.Solve(big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, int64(4), res.Count.Int64())
}

func TestOracleWrongFactorization(t *testing.T) {
	// an oracle claiming 21 is prime
	solver := NewSolver(&fakeOracle{
		factorization: primes.Factorization{{Prime: big.NewInt(21), Exponent: 1}},
	})
	_, err := solver.Solve(big.NewInt(21))
	require.True(t, errors.Is(err, ErrNotPrime), "got %v", err)
}

func TestResultEncoding(t *testing.T) {
	res := solve(t, 5*5*13*2*9)

	bts, err := EncodeResult(res)
	require.NoError(t, err)
	decoded, err := DecodeResult(bts)
	require.NoError(t, err)
	require.Zero(t, res.N.Cmp(decoded.N))
	require.Zero(t, res.Count.Cmp(decoded.Count))
	requireReps(t, res.Representations, decoded.Representations)

	again, err := EncodeResult(decoded)
	require.NoError(t, err)
	require.Equal(t, bts, again)

	jsn, err := json.Marshal(solve(t, 50))
	require.NoError(t, err)
	require.JSONEq(t, `{"n":"50","count":"12","representations":[{"a":"1","b":"7"},{"a":"5","b":"5"}]}`, string(jsn))
}

func TestResultVerifyRejects(t *testing.T) {
	res := solve(t, 325)
	res.Count = big.NewInt(16)
	require.True(t, errors.Is(res.Verify(), ErrInvalidResult))
	bts, err := EncodeResult(res)
	require.NoError(t, err)
	_, err = DecodeResult(bts)
	require.True(t, errors.Is(err, ErrInvalidResult))

	res = solve(t, 325)
	res.Representations[0], res.Representations[1] = res.Representations[1], res.Representations[0]
	require.True(t, errors.Is(res.Verify(), ErrInvalidResult))

	res = solve(t, 325)
	res.Representations[0] = rep(1, 17)
	require.True(t, errors.Is(res.Verify(), ErrInvalidResult))

	require.True(t, errors.Is((&Result{}).Verify(), ErrInvalidResult))
}

func BenchmarkSumOfTwoSquares(b *testing.B) {
	n := big.NewInt(2 * 5 * 5 * 5 * 13 * 13 * 17 * 29 * 37 * 41)
	for i := 0; i < b.N; i++ {
		_, _ = SumOfTwoSquares(n)
	}
}
