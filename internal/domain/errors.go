package domain

import "errors"

var (
	// ErrUnsupportedKeyType is returned for a key type outside {EC, RSA}.
	ErrUnsupportedKeyType = errors.New("unsupported key type")
	// ErrUnsupportedCurve is returned for a curve name outside {K-256, P-256K}.
	ErrUnsupportedCurve = errors.New("unsupported curve")
	// ErrUnsupportedHash is returned for a hash function the keyed hash cannot build.
	ErrUnsupportedHash = errors.New("unsupported hash function")
	// ErrModularInverse is returned when e has no inverse modulo phi.
	ErrModularInverse = errors.New("public exponent is not invertible modulo phi")
	// ErrDegeneratePrimes is returned when p == q or q has no inverse modulo p.
	ErrDegeneratePrimes = errors.New("derived primes are degenerate")
	// ErrInvalidKeyPair is returned when a derived curve key pair fails validation.
	ErrInvalidKeyPair = errors.New("invalid key pair")
	// ErrScalarOutOfRange is returned when a derived scalar is zero or not below the curve order.
	ErrScalarOutOfRange = errors.New("private scalar out of range")
	// ErrPrimeSearchExhausted is returned when the prime search hits its test cap.
	ErrPrimeSearchExhausted = errors.New("prime search exhausted")
	// ErrInvalidModulusBits is returned for an RSA modulus size that cannot be derived.
	ErrInvalidModulusBits = errors.New("invalid RSA modulus size")
	// ErrInvalidLength is returned for a byte stream or seed length that is not usable.
	ErrInvalidLength = errors.New("invalid length")
	// ErrEmptyMasterSecret is returned when no master secret is supplied.
	ErrEmptyMasterSecret = errors.New("master secret is empty")
	// ErrNotExportable is returned when private members are requested from a non-exportable key.
	ErrNotExportable = errors.New("key is not exportable")
	// ErrBadSignature is returned when a signature does not verify.
	ErrBadSignature = errors.New("signature verification failed")
)
