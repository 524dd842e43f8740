package crypto

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"pairwise/internal/domain"
)

// CoordinateBytes is the width of secp256k1 scalars and coordinates.
const CoordinateBytes = 32

// Secp256k1 implements domain.Curve on top of the decred secp256k1 engine.
type Secp256k1 struct{}

func (Secp256k1) Name() string { return "secp256k1" }

// Order returns a copy of the group order N.
func (Secp256k1) Order() *big.Int { return new(big.Int).Set(secp256k1.Params().N) }

// ScalarBaseMult returns d·G. d must be a 32-byte scalar in [1, N).
func (Secp256k1) ScalarBaseMult(d []byte) (x, y []byte, err error) {
	priv, err := privateKeyFromScalar(d)
	if err != nil {
		return nil, nil, err
	}
	x, y = splitUncompressed(priv.PubKey())
	return x, y, nil
}

// ValidateKeyPair checks that (x, y) is a point on the curve and equals d·G.
func (Secp256k1) ValidateKeyPair(d, x, y []byte) error {
	priv, err := privateKeyFromScalar(d)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidKeyPair, err)
	}
	pub, err := publicKeyFromCoordinates(x, y)
	if err != nil {
		return err
	}
	if !priv.PubKey().IsEqual(pub) {
		return fmt.Errorf("%w: public point does not match scalar", domain.ErrInvalidKeyPair)
	}
	return nil
}

func privateKeyFromScalar(d []byte) (*secp256k1.PrivateKey, error) {
	if len(d) != CoordinateBytes {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", domain.ErrInvalidLength, CoordinateBytes, len(d))
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(d); overflow || s.IsZero() {
		return nil, domain.ErrScalarOutOfRange
	}
	return secp256k1.NewPrivateKey(&s), nil
}

func publicKeyFromCoordinates(x, y []byte) (*secp256k1.PublicKey, error) {
	if len(x) != CoordinateBytes || len(y) != CoordinateBytes {
		return nil, fmt.Errorf("%w: coordinates must be %d bytes", domain.ErrInvalidKeyPair, CoordinateBytes)
	}
	var fx, fy secp256k1.FieldVal
	if fx.SetByteSlice(x) || fy.SetByteSlice(y) {
		return nil, fmt.Errorf("%w: coordinate exceeds field prime", domain.ErrInvalidKeyPair)
	}
	pub := secp256k1.NewPublicKey(&fx, &fy)
	if !pub.IsOnCurve() {
		return nil, fmt.Errorf("%w: point is not on secp256k1", domain.ErrInvalidKeyPair)
	}
	return pub, nil
}

// splitUncompressed returns the 32-byte X and Y of pub.
func splitUncompressed(pub *secp256k1.PublicKey) (x, y []byte) {
	raw := pub.SerializeUncompressed() // 0x04 || X || Y
	x = make([]byte, CoordinateBytes)
	y = make([]byte, CoordinateBytes)
	copy(x, raw[1:1+CoordinateBytes])
	copy(y, raw[1+CoordinateBytes:])
	return x, y
}

var _ domain.Curve = Secp256k1{}
