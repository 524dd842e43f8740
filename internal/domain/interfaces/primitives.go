package interfaces

import (
	"context"
	"math/big"

	domaintypes "pairwise/internal/domain/types"
)

// Signer is a keyed hash bound to one key.
type Signer interface {
	// Sign returns the keyed hash of data. Implementations may block.
	Sign(ctx context.Context, data []byte) ([]byte, error)
	// Size is the output length in bytes.
	Size() int
}

// KeyedHash constructs HMAC signers.
type KeyedHash interface {
	NewHMAC(hash domaintypes.HashFunction, key []byte) (Signer, error)
}

// Curve is the elliptic-curve arithmetic used for EC derivation.
type Curve interface {
	// Name is the curve's canonical name, e.g. "secp256k1".
	Name() string
	// Order is the order of the base point.
	Order() *big.Int
	// ScalarBaseMult returns d·G as fixed-width big-endian coordinates.
	ScalarBaseMult(d []byte) (x, y []byte, err error)
	// ValidateKeyPair checks that (x, y) is on the curve and equals d·G.
	ValidateKeyPair(d, x, y []byte) error
}

// Primality runs probabilistic compositeness tests.
type Primality interface {
	ProbablyPrime(n *big.Int, rounds int) bool
}

// Primitives bundles every capability the derivation engine consumes.
type Primitives interface {
	KeyedHash
	Primality
	// CurveFor resolves a JWK curve name to its arithmetic.
	CurveFor(name domaintypes.CurveName) (Curve, error)
}
