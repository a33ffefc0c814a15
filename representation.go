package twosquares

import (
	"fmt"
	"sort"
	"strings"

	"github.com/privacybydesign/twosquares/big"
)

var (
	bigZERO = big.NewInt(0)
	bigONE  = big.NewInt(1)
	bigTWO  = big.NewInt(2)
)

// Representation is a pair (A, B) with 0 <= A <= B standing for the sum A^2 + B^2.
// Representations are values: once constructed their integers are never modified.
type Representation struct {
	A *big.Int `json:"a"`
	B *big.Int `json:"b"`
}

// NewRepresentation returns the canonical representation (min(|a|,|b|), max(|a|,|b|)).
func NewRepresentation(a, b *big.Int) Representation {
	x, y := new(big.Int).Abs(a), new(big.Int).Abs(b)
	if x.Cmp(y) > 0 {
		x, y = y, x
	}
	return Representation{A: x, B: y}
}

// unit is the representation of 1.
func unit() Representation {
	return Representation{A: big.NewInt(0), B: big.NewInt(1)}
}

// Cmp compares r and s lexicographically by (A, B).
func (r Representation) Cmp(s Representation) int {
	if c := r.A.Cmp(s.A); c != 0 {
		return c
	}
	return r.B.Cmp(s.B)
}

// Equal reports whether r and s are the same pair.
func (r Representation) Equal(s Representation) bool {
	return r.Cmp(s) == 0
}

// Norm returns A^2 + B^2.
func (r Representation) Norm() *big.Int {
	n := new(big.Int).Mul(r.A, r.A)
	return n.Add(n, new(big.Int).Mul(r.B, r.B))
}

// Multiplicity returns the number of signed, ordered pairs (x, y) with x^2 + y^2 = Norm()
// that r stands for: 8, halved once for each of A = B, A = 0 and B = 0.
// Summed over all representations of n it equals r2(n).
func (r Representation) Multiplicity() int {
	m := 8
	if r.A.Cmp(r.B) == 0 {
		m >>= 1
	}
	if r.A.Sign() == 0 {
		m >>= 1
	}
	if r.B.Sign() == 0 {
		m >>= 1
	}
	return m
}

func (r Representation) String() string {
	return fmt.Sprintf("(%s, %s)", r.A, r.B)
}

// Representations is a list of representations of one integer. The lists returned by
// this package are canonical: sorted ascending by (A, B) without duplicates.
type Representations []Representation

func (reps Representations) String() string {
	parts := make([]string, len(reps))
	for i, r := range reps {
		parts[i] = r.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// canonical returns a sorted copy of reps with duplicates removed.
func (reps Representations) canonical() Representations {
	sorted := make(Representations, len(reps))
	copy(sorted, reps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Cmp(sorted[j]) < 0 })

	res := make(Representations, 0, len(sorted))
	for _, r := range sorted {
		if len(res) > 0 && res[len(res)-1].Equal(r) {
			continue
		}
		res = append(res, r)
	}
	return res
}

// Compose applies the Brahmagupta-Fibonacci identity: given representations (a, b) of A
// and (c, d) of B, it returns the representations
//
//	(ac + bd, |ad - bc|) and (|ac - bd|, ad + bc)
//
// of A*B, each in canonical order. When both coincide only one is returned.
func Compose(r, s Representation) Representations {
	ac := new(big.Int).Mul(r.A, s.A)
	bd := new(big.Int).Mul(r.B, s.B)
	ad := new(big.Int).Mul(r.A, s.B)
	bc := new(big.Int).Mul(r.B, s.A)

	first := NewRepresentation(new(big.Int).Add(ac, bd), new(big.Int).Sub(ad, bc))
	second := NewRepresentation(new(big.Int).Sub(ac, bd), new(big.Int).Add(ad, bc))
	if first.Equal(second) {
		return Representations{first}
	}
	return Representations{first, second}
}

// composeSets composes every element of x with every element of y and returns the
// canonical union of the results.
func composeSets(x, y Representations) Representations {
	res := make(Representations, 0, 2*len(x)*len(y))
	for _, r := range x {
		for _, s := range y {
			res = append(res, Compose(r, s)...)
		}
	}
	return res.canonical()
}

// PrimePowerRepresentations returns the representations of p^k given the representation
// base of a prime p (2 or p = 1 mod 4), by composing with base k-1 times. For k < 1 it
// returns the representation of 1.
func PrimePowerRepresentations(base Representation, k int) Representations {
	if k < 1 {
		return Representations{unit()}
	}
	b := NewRepresentation(base.A, base.B)
	reps := Representations{b}
	for i := 1; i < k; i++ {
		reps = composeSets(reps, Representations{b})
	}
	return reps
}
