package crypto

import (
	"encoding/base64"
	"math/big"
)

// B64URL returns base64url encoding without padding.
func B64URL(b []byte) string { return base64.RawURLEncoding.EncodeToString(b) }

// FromB64URL decodes unpadded base64url.
func FromB64URL(s string) ([]byte, error) { return base64.RawURLEncoding.DecodeString(s) }

// IntB64URL encodes n as minimal unsigned big-endian bytes, base64url.
func IntB64URL(n *big.Int) string { return B64URL(n.Bytes()) }

// IntFromB64URL is the inverse of IntB64URL.
func IntFromB64URL(s string) (*big.Int, error) {
	b, err := FromB64URL(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}
