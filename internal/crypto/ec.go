package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"pairwise/internal/domain"
)

// SignatureBytes is the size of a JWS ES256K signature (r || s).
const SignatureBytes = 2 * CoordinateBytes

// ECKey is the opaque key object for derived secp256k1 material. It signs
// ES256K with RFC 6979 nonces, so signatures are deterministic too.
type ECKey struct {
	priv       *secp256k1.PrivateKey
	pub        *secp256k1.PublicKey
	jwk        domain.JWK
	use        domain.KeyUse
	exportable bool
}

// NewECKey wraps m after checking that it is a valid secp256k1 key pair.
func NewECKey(m domain.ECKeyMaterial, use domain.KeyUse, exportable bool) (*ECKey, error) {
	priv, err := privateKeyFromScalar(m.D)
	if err != nil {
		return nil, fmt.Errorf("ec key: %w", err)
	}
	pub, err := publicKeyFromCoordinates(m.X, m.Y)
	if err != nil {
		return nil, fmt.Errorf("ec key: %w", err)
	}
	if !priv.PubKey().IsEqual(pub) {
		return nil, fmt.Errorf("ec key: %w: public point does not match scalar", domain.ErrInvalidKeyPair)
	}
	return &ECKey{
		priv: priv,
		pub:  pub,
		jwk: domain.JWK{
			Kty: string(domain.KeyTypeEC),
			Use: string(use),
			Crv: string(m.Curve),
			X:   B64URL(m.X),
			Y:   B64URL(m.Y),
			D:   B64URL(m.D),
		},
		use:        use,
		exportable: exportable,
	}, nil
}

func (k *ECKey) KeyType() domain.KeyType { return domain.KeyTypeEC }
func (k *ECKey) Use() domain.KeyUse       { return k.use }
func (k *ECKey) Exportable() bool         { return k.exportable }

// JWK returns the private JWK, or ErrNotExportable.
func (k *ECKey) JWK() (domain.JWK, error) {
	if !k.exportable {
		return domain.JWK{}, domain.ErrNotExportable
	}
	return k.jwk, nil
}

func (k *ECKey) PublicJWK() domain.JWK { return k.jwk.Public() }

func (k *ECKey) Thumbprint() (string, error) { return Thumbprint(k.jwk) }

// CompressedPublicKey returns the 33-byte SEC1 compressed point.
func (k *ECKey) CompressedPublicKey() []byte { return k.pub.SerializeCompressed() }

// Sign returns a 64-byte ES256K signature over sha256(msg).
func (k *ECKey) Sign(msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)
	sig := ecdsa.Sign(k.priv, digest[:])
	r, s := sig.R(), sig.S()
	rb, sb := r.Bytes(), s.Bytes()

	out := make([]byte, 0, SignatureBytes)
	out = append(out, rb[:]...)
	out = append(out, sb[:]...)
	return out, nil
}

// Verify checks a 64-byte ES256K signature over sha256(msg).
func (k *ECKey) Verify(msg, sig []byte) error {
	if len(sig) != SignatureBytes {
		return fmt.Errorf("%w: want %d bytes, got %d", domain.ErrBadSignature, SignatureBytes, len(sig))
	}
	var r, s secp256k1.ModNScalar
	if r.SetByteSlice(sig[:CoordinateBytes]) || s.SetByteSlice(sig[CoordinateBytes:]) {
		return fmt.Errorf("%w: signature component overflows curve order", domain.ErrBadSignature)
	}
	digest := sha256.Sum256(msg)
	if !ecdsa.NewSignature(&r, &s).Verify(digest[:], k.pub) {
		return domain.ErrBadSignature
	}
	return nil
}

var _ domain.PrivateKey = (*ECKey)(nil)
