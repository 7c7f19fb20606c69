// Package codec converts encrypted blobs to and from the text form held by
// the string-only key-value backends. The mapping is standard base64 and
// lossless in both directions.
package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrMalformedEncoding is returned by FromText for input outside the
// base64 alphabet or with broken padding.
var ErrMalformedEncoding = errors.New("malformed encoding")

// ToText encodes a binary blob as base64 text.
func ToText(blob []byte) string {
	return base64.StdEncoding.EncodeToString(blob)
}

// FromText decodes base64 text back into the original blob.
func FromText(text string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return blob, nil
}
