package crypto_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pairwise/internal/crypto"
	"pairwise/internal/domain"
)

const (
	gx = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	gy = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

func scalar(b byte) []byte {
	d := make([]byte, crypto.CoordinateBytes)
	d[len(d)-1] = b
	return d
}

func TestSecp256k1_ScalarBaseMultOne(t *testing.T) {
	x, y, err := crypto.Secp256k1{}.ScalarBaseMult(scalar(1))
	require.NoError(t, err)
	assert.Equal(t, gx, hex.EncodeToString(x))
	assert.Equal(t, gy, hex.EncodeToString(y))
}

func TestSecp256k1_ScalarRange(t *testing.T) {
	c := crypto.Secp256k1{}

	_, _, err := c.ScalarBaseMult(scalar(0))
	assert.ErrorIs(t, err, domain.ErrScalarOutOfRange)

	order := c.Order().Bytes()
	_, _, err = c.ScalarBaseMult(order)
	assert.ErrorIs(t, err, domain.ErrScalarOutOfRange)

	_, _, err = c.ScalarBaseMult([]byte{1})
	assert.ErrorIs(t, err, domain.ErrInvalidLength)
}

func TestSecp256k1_ValidateKeyPair(t *testing.T) {
	c := crypto.Secp256k1{}
	x, y, err := c.ScalarBaseMult(scalar(2))
	require.NoError(t, err)

	assert.NoError(t, c.ValidateKeyPair(scalar(2), x, y))
	assert.ErrorIs(t, c.ValidateKeyPair(scalar(3), x, y), domain.ErrInvalidKeyPair)

	offCurve := append([]byte(nil), y...)
	offCurve[31] ^= 1
	assert.ErrorIs(t, c.ValidateKeyPair(scalar(2), x, offCurve), domain.ErrInvalidKeyPair)
}

func TestPrimitives_CurveFor(t *testing.T) {
	p := crypto.NewPrimitives()
	for _, name := range []domain.CurveName{domain.CurveK256, domain.CurveP256K} {
		c, err := p.CurveFor(name)
		require.NoError(t, err)
		assert.Equal(t, "secp256k1", c.Name())
	}
	for _, name := range []domain.CurveName{"P-256", "P-384", ""} {
		_, err := p.CurveFor(name)
		assert.ErrorIs(t, err, domain.ErrUnsupportedCurve)
	}
}
