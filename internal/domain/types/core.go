package types

// KeyType names the asymmetric key family to derive (JWK "kty").
type KeyType string

const (
	KeyTypeEC  KeyType = "EC"
	KeyTypeRSA KeyType = "RSA"
)

// String returns the string form of the key type.
func (k KeyType) String() string { return string(k) }

// CurveName is a JWK "crv" value.
type CurveName string

const (
	CurveK256  CurveName = "K-256"
	CurveP256K CurveName = "P-256K"
)

// String returns the string form of the curve name.
func (c CurveName) String() string { return string(c) }

// KeyUse is a JWK "use" value.
type KeyUse string

const (
	KeyUseSig KeyUse = "sig"
	KeyUseEnc KeyUse = "enc"
)

// String returns the string form of the key use.
func (u KeyUse) String() string { return string(u) }

// HashFunction names the hash behind a keyed-hash signer.
type HashFunction string

const (
	SHA256 HashFunction = "SHA-256"
	SHA512 HashFunction = "SHA-512"
)

// String returns the string form of the hash function.
func (h HashFunction) String() string { return string(h) }
