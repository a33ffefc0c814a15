// Package cbor encodes and decodes results with github.com/fxamacker/cbor using
// Core Deterministic Encoding (RFC 8949 section 4.2), so that equal results
// always encode to identical bytes. The decoder rejects duplicate map keys and
// bounds the size of arrays, as encoded results may come from untrusted sources.
package cbor

import (
	"github.com/fxamacker/cbor/v2" // imports as cbor
)

const (
	// MaxArrayElements bounds the number of representations a decoded result can hold.
	MaxArrayElements = 1024 * 1024
	MaxMapPairs      = 64
)

var (
	encOptions = cbor.EncOptions{
		Sort:          cbor.SortCoreDeterministic,
		ShortestFloat: cbor.ShortestFloat16,
		NaNConvert:    cbor.NaNConvert7e00,
		InfConvert:    cbor.InfConvertFloat16,
		IndefLength:   cbor.IndefLengthForbidden,
		// Integers travel as byte strings, never as bignum tags
		TagsMd: cbor.TagsForbidden,
	}

	decOptions = cbor.DecOptions{
		IndefLength:      cbor.IndefLengthForbidden,
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: MaxArrayElements,
		MaxMapPairs:      MaxMapPairs,
		TagsMd:           cbor.TagsForbidden,
	}

	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = encOptions.EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = decOptions.DecMode(); err != nil {
		panic(err)
	}
}

// Marshal encodes src into deterministic CBOR.
func Marshal(src interface{}) ([]byte, error) {
	return encMode.Marshal(src)
}

// Unmarshal decodes CBOR in data into dst.
func Unmarshal(data []byte, dst interface{}) error {
	return decMode.Unmarshal(data, dst)
}
