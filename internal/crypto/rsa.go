package crypto

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"math/big"

	"pairwise/internal/domain"
)

// RSAKey is the opaque key object for derived RSA material. It signs RS256
// (RSASSA-PKCS1-v1_5 with SHA-256).
type RSAKey struct {
	priv       *rsa.PrivateKey
	jwk        domain.JWK
	use        domain.KeyUse
	exportable bool
}

// NewRSAKey wraps m. The CRT values in m are used as given for the JWK and
// recomputed by crypto/rsa for signing. Material that crypto/rsa would refuse
// to sign with is rejected here.
func NewRSAKey(m domain.RSAKeyMaterial, use domain.KeyUse, exportable bool) (*RSAKey, error) {
	if m.N == nil || m.E == nil || m.D == nil || m.P == nil || m.Q == nil {
		return nil, fmt.Errorf("rsa key: incomplete material")
	}
	if !m.E.IsInt64() || m.E.Int64() > 1<<31-1 {
		return nil, fmt.Errorf("rsa key: public exponent out of range")
	}
	priv := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: new(big.Int).Set(m.N), E: int(m.E.Int64())},
		D:         new(big.Int).Set(m.D),
		Primes:    []*big.Int{new(big.Int).Set(m.P), new(big.Int).Set(m.Q)},
	}
	priv.Precompute()
	if err := priv.Validate(); err != nil {
		return nil, fmt.Errorf("rsa key: %w", err)
	}

	return &RSAKey{
		priv: priv,
		jwk: domain.JWK{
			Kty: string(domain.KeyTypeRSA),
			Use: string(use),
			N:   IntB64URL(m.N),
			E:   IntB64URL(m.E),
			D:   IntB64URL(m.D),
			P:   IntB64URL(m.P),
			Q:   IntB64URL(m.Q),
			Dp:  IntB64URL(m.Dp),
			Dq:  IntB64URL(m.Dq),
			Qi:  IntB64URL(m.Qi),
		},
		use:        use,
		exportable: exportable,
	}, nil
}

func (k *RSAKey) KeyType() domain.KeyType { return domain.KeyTypeRSA }
func (k *RSAKey) Use() domain.KeyUse       { return k.use }
func (k *RSAKey) Exportable() bool         { return k.exportable }

// JWK returns the private JWK, or ErrNotExportable.
func (k *RSAKey) JWK() (domain.JWK, error) {
	if !k.exportable {
		return domain.JWK{}, domain.ErrNotExportable
	}
	return k.jwk, nil
}

func (k *RSAKey) PublicJWK() domain.JWK { return k.jwk.Public() }

func (k *RSAKey) Thumbprint() (string, error) { return Thumbprint(k.jwk) }

// PublicKey returns the crypto/rsa public key.
func (k *RSAKey) PublicKey() *rsa.PublicKey { return &k.priv.PublicKey }

// Sign returns an RS256 signature over msg.
func (k *RSAKey) Sign(msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)
	return rsa.SignPKCS1v15(nil, k.priv, crypto.SHA256, digest[:])
}

// Verify checks an RS256 signature over msg.
func (k *RSAKey) Verify(msg, sig []byte) error {
	digest := sha256.Sum256(msg)
	if err := rsa.VerifyPKCS1v15(&k.priv.PublicKey, crypto.SHA256, digest[:], sig); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadSignature, err)
	}
	return nil
}

var _ domain.PrivateKey = (*RSAKey)(nil)
