package twosquares

import (
	"fmt"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/twosquares/big"
	"github.com/privacybydesign/twosquares/cbor"
)

var ErrInvalidResult = errors.New("invalid result")

// Result holds r2(N) together with all representations of N.
type Result struct {
	N               *big.Int        `json:"n"`
	Count           *big.Int        `json:"count"`
	Representations Representations `json:"representations"`
}

func (r *Result) String() string {
	return fmt.Sprintf("r2(%s) = %s: %s", r.N, r.Count, r.Representations)
}

// Verify checks that every representation is canonical and sums to N, that the
// representations are sorted without duplicates, and that their multiplicities add up
// to Count.
func (r *Result) Verify() error {
	if r.N == nil || r.Count == nil {
		return errors.WrapPrefix(ErrInvalidResult, "missing fields", 0)
	}
	if r.N.Sign() < 0 {
		return errors.WrapPrefix(ErrInvalidResult, "negative n", 0)
	}

	total := new(big.Int)
	for i, rep := range r.Representations {
		if rep.A == nil || rep.B == nil {
			return errors.WrapPrefix(ErrInvalidResult, fmt.Sprintf("representation %d incomplete", i), 0)
		}
		if rep.A.Sign() < 0 || rep.A.Cmp(rep.B) > 0 {
			return errors.WrapPrefix(ErrInvalidResult, fmt.Sprintf("%s is not canonical", rep), 0)
		}
		if rep.Norm().Cmp(r.N) != 0 {
			return errors.WrapPrefix(ErrInvalidResult, fmt.Sprintf("%s does not sum to %s", rep, r.N), 0)
		}
		if i > 0 && r.Representations[i-1].Cmp(rep) >= 0 {
			return errors.WrapPrefix(ErrInvalidResult, fmt.Sprintf("%s out of order", rep), 0)
		}
		total.Add(total, big.NewInt(int64(rep.Multiplicity())))
	}
	if total.Cmp(r.Count) != 0 {
		return errors.WrapPrefix(ErrInvalidResult, fmt.Sprintf("count %s, representations account for %s", r.Count, total), 0)
	}
	return nil
}

// EncodeResult encodes r as deterministic CBOR.
func EncodeResult(r *Result) ([]byte, error) {
	return cbor.Marshal(r)
}

// DecodeResult decodes a CBOR-encoded result and verifies it.
func DecodeResult(data []byte) (*Result, error) {
	r := new(Result)
	if err := cbor.Unmarshal(data, r); err != nil {
		return nil, err
	}
	if err := r.Verify(); err != nil {
		return nil, err
	}
	return r, nil
}
