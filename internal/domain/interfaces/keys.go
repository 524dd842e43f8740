package interfaces

import domaintypes "pairwise/internal/domain/types"

// PrivateKey is the opaque key object handed back to callers.
type PrivateKey interface {
	KeyType() domaintypes.KeyType
	Use() domaintypes.KeyUse
	Exportable() bool

	// JWK returns the full private JWK; it fails for non-exportable keys.
	JWK() (domaintypes.JWK, error)
	// PublicJWK returns the public members only.
	PublicJWK() domaintypes.JWK
	// Thumbprint is the RFC 7638 SHA-256 thumbprint, base64url.
	Thumbprint() (string, error)

	Sign(msg []byte) ([]byte, error)
	Verify(msg, sig []byte) error
}
