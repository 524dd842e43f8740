package types

import "math/big"

// PublicExponent is the fixed RSA public exponent.
const PublicExponent = 65537

// RSAKeyMaterial holds every RSA private-key component.
type RSAKeyMaterial struct {
	N  *big.Int
	E  *big.Int
	D  *big.Int
	P  *big.Int
	Q  *big.Int
	Dp *big.Int
	Dq *big.Int
	Qi *big.Int
}

// ECKeyMaterial holds a curve key pair as fixed-width big-endian coordinates.
type ECKeyMaterial struct {
	Curve CurveName
	D     []byte
	X     []byte
	Y     []byte
}

// JWK is the JSON Web Key form of derived key material.
//
// Every binary member is base64url without padding.
type JWK struct {
	Kty string `json:"kty"`
	Use string `json:"use,omitempty"`
	Crv string `json:"crv,omitempty"`
	Kid string `json:"kid,omitempty"`

	X string `json:"x,omitempty"`
	Y string `json:"y,omitempty"`

	N  string `json:"n,omitempty"`
	E  string `json:"e,omitempty"`
	P  string `json:"p,omitempty"`
	Q  string `json:"q,omitempty"`
	Dp string `json:"dp,omitempty"`
	Dq string `json:"dq,omitempty"`
	Qi string `json:"qi,omitempty"`

	D string `json:"d,omitempty"`
}

// Public returns a copy with every private member cleared.
func (j JWK) Public() JWK {
	j.D, j.P, j.Q, j.Dp, j.Dq, j.Qi = "", "", "", "", "", ""
	return j
}

// IsPrivate reports whether j carries a private member.
func (j JWK) IsPrivate() bool { return j.D != "" }
