package crypto

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	mh "github.com/multiformats/go-multihash"

	"pairwise/internal/domain"
)

// ecThumbprintInput and rsaThumbprintInput list the RFC 7638 required members
// in lexicographic order; encoding/json keeps declaration order.
type ecThumbprintInput struct {
	Crv string `json:"crv"`
	Kty string `json:"kty"`
	X   string `json:"x"`
	Y   string `json:"y"`
}

type rsaThumbprintInput struct {
	E   string `json:"e"`
	Kty string `json:"kty"`
	N   string `json:"n"`
}

// canonicalJWK returns the RFC 7638 thumbprint input for j.
func canonicalJWK(j domain.JWK) ([]byte, error) {
	switch domain.KeyType(j.Kty) {
	case domain.KeyTypeEC:
		return json.Marshal(ecThumbprintInput{Crv: j.Crv, Kty: j.Kty, X: j.X, Y: j.Y})
	case domain.KeyTypeRSA:
		return json.Marshal(rsaThumbprintInput{E: j.E, Kty: j.Kty, N: j.N})
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedKeyType, j.Kty)
	}
}

// Thumbprint returns the RFC 7638 SHA-256 thumbprint of j, base64url.
func Thumbprint(j domain.JWK) (string, error) {
	in, err := canonicalJWK(j)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(in)
	return B64URL(sum[:]), nil
}

// Fingerprint returns a base58 sha2-256 multihash of the thumbprint input.
func Fingerprint(j domain.JWK) (string, error) {
	in, err := canonicalJWK(j)
	if err != nil {
		return "", err
	}
	sum, err := mh.Sum(in, mh.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return sum.B58String(), nil
}
