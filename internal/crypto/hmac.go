package crypto

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"pairwise/internal/domain"
)

// hmacSigner is an HMAC bound to a private copy of its key.
type hmacSigner struct {
	newHash func() hash.Hash
	key     []byte
	size    int
}

// NewHMAC returns a keyed-hash signer for hashFn keyed with a copy of key.
func NewHMAC(hashFn domain.HashFunction, key []byte) (domain.Signer, error) {
	var newHash func() hash.Hash
	switch hashFn {
	case domain.SHA256:
		newHash = sha256.New
	case domain.SHA512:
		newHash = sha512.New
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedHash, hashFn)
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &hmacSigner{newHash: newHash, key: k, size: newHash().Size()}, nil
}

// Sign returns HMAC(key, data).
func (s *hmacSigner) Sign(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h := hmac.New(s.newHash, s.key)
	h.Write(data)
	return h.Sum(nil), nil
}

func (s *hmacSigner) Size() int { return s.size }
