// Package twosquares finds all representations of a non-negative integer n as a sum of
// two squares m1^2 + m2^2 with 0 <= m1 <= m2, together with their number r2(n).
//
// Instead of searching all m1 below sqrt(n), the representations are built from the prime
// factorization of n: every prime p = 1 mod 4 is written as a sum of two squares with a
// truncated Euclidean algorithm seeded by a quadratic non-residue, and the
// Brahmagupta-Fibonacci identity
//
//	(a^2 + b^2)(c^2 + d^2) = (ac + bd)^2 + (ad - bc)^2 = (ac - bd)^2 + (ad + bc)^2
//
// combines them into representations of prime powers and finally of n. For example:
//
//	res, err := twosquares.SumOfTwoSquares(big.NewInt(50))
//	// res.Count == 12, res.Representations == {(1, 7), (5, 5)}
//
// Factorizations and divisors are obtained from an Oracle; package primes provides the
// default one.
package twosquares
