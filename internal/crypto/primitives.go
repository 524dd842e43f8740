package crypto

import (
	"fmt"
	"math/big"

	"pairwise/internal/domain"
)

// BigPrimality runs math/big's probabilistic primality test.
type BigPrimality struct{}

// ProbablyPrime performs rounds Miller-Rabin tests plus a Baillie-PSW test.
func (BigPrimality) ProbablyPrime(n *big.Int, rounds int) bool {
	return n.ProbablyPrime(rounds)
}

// Primitives is the default capability set: crypto/hmac, secp256k1 and math/big.
type Primitives struct {
	BigPrimality
}

// NewPrimitives returns the default capability set.
func NewPrimitives() *Primitives { return &Primitives{} }

// NewHMAC returns an HMAC signer; see the package-level NewHMAC.
func (*Primitives) NewHMAC(hashFn domain.HashFunction, key []byte) (domain.Signer, error) {
	return NewHMAC(hashFn, key)
}

// CurveFor maps K-256 and P-256K to secp256k1.
func (*Primitives) CurveFor(name domain.CurveName) (domain.Curve, error) {
	switch name {
	case domain.CurveK256, domain.CurveP256K:
		return Secp256k1{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedCurve, name)
	}
}

// Compile-time assertion that Primitives implements domain.Primitives.
var _ domain.Primitives = (*Primitives)(nil)
