package eckey_test

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pairwise/internal/crypto"
	"pairwise/internal/domain"
	"pairwise/internal/protocol/eckey"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestBuild_Golden(t *testing.T) {
	m, err := eckey.Build(context.Background(), crypto.NewPrimitives(), make([]byte, 32), "peer1", domain.CurveK256)
	require.NoError(t, err)

	assert.Equal(t, domain.CurveK256, m.Curve)
	assert.Equal(t, mustHex(t, "16735451b6c9e20e374314c9e34ec6faed927a456809004755d789bb222be4c4"), m.D)
	assert.Equal(t, mustHex(t, "d0da2deca4323e5b2e4234a0aaf29b53803c36231d9c18df0841be11fd61c7ef"), m.X)
	assert.Equal(t, mustHex(t, "64f498f73a902affab67d7ebe5a96e0417aa14c7b44d94cbc22b5a4211d0ac2d"), m.Y)

	other, err := eckey.Build(context.Background(), crypto.NewPrimitives(), make([]byte, 32), "peer2", domain.CurveK256)
	require.NoError(t, err)
	assert.NotEqual(t, m.D, other.D)
	assert.Equal(t, mustHex(t, "97444fa1131e92187984714750688c8ec6812d9a985e5b5963a6433a8147c2cc"), other.X)
}

func TestBuild_CurveAliases(t *testing.T) {
	k, err := eckey.Build(context.Background(), crypto.NewPrimitives(), []byte("m"), "p", domain.CurveK256)
	require.NoError(t, err)
	p, err := eckey.Build(context.Background(), crypto.NewPrimitives(), []byte("m"), "p", domain.CurveP256K)
	require.NoError(t, err)

	assert.Equal(t, k.D, p.D)
	assert.Equal(t, k.X, p.X)
	assert.Equal(t, domain.CurveP256K, p.Curve)
}

func TestBuild_PointMatchesScalar(t *testing.T) {
	m, err := eckey.Build(context.Background(), crypto.NewPrimitives(), []byte("another master"), "peer9", domain.CurveK256)
	require.NoError(t, err)

	d := new(big.Int).SetBytes(m.D)
	assert.Equal(t, 1, d.Sign())
	assert.Equal(t, -1, d.Cmp(crypto.Secp256k1{}.Order()))
	assert.NoError(t, crypto.Secp256k1{}.ValidateKeyPair(m.D, m.X, m.Y))
}

func TestBuild_UnsupportedCurve(t *testing.T) {
	_, err := eckey.Build(context.Background(), crypto.NewPrimitives(), []byte("m"), "p", "P-384")
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurve)
}

func TestBuild_EmptyMaster(t *testing.T) {
	_, err := eckey.Build(context.Background(), crypto.NewPrimitives(), nil, "p", domain.CurveK256)
	assert.ErrorIs(t, err, domain.ErrEmptyMasterSecret)
}

// stubCurve lets tests force curve-side outcomes.
type stubCurve struct {
	crypto.Secp256k1
	order       *big.Int
	validateErr error
}

func (c stubCurve) Order() *big.Int {
	if c.order != nil {
		return c.order
	}
	return c.Secp256k1.Order()
}

func (c stubCurve) ValidateKeyPair(d, x, y []byte) error { return c.validateErr }

type stubPrims struct {
	*crypto.Primitives
	curve stubCurve
}

func (s stubPrims) CurveFor(name domain.CurveName) (domain.Curve, error) {
	if _, err := s.Primitives.CurveFor(name); err != nil {
		return nil, err
	}
	return s.curve, nil
}

func TestBuild_ValidationFailureIsReturned(t *testing.T) {
	prims := stubPrims{crypto.NewPrimitives(), stubCurve{validateErr: errors.New("not on curve")}}
	_, err := eckey.Build(context.Background(), prims, []byte("m"), "p", domain.CurveK256)
	assert.ErrorIs(t, err, domain.ErrInvalidKeyPair)
}

func TestBuild_ScalarAboveOrderRejected(t *testing.T) {
	prims := stubPrims{crypto.NewPrimitives(), stubCurve{order: big.NewInt(7)}}
	_, err := eckey.Build(context.Background(), prims, []byte("m"), "p", domain.CurveK256)
	assert.ErrorIs(t, err, domain.ErrScalarOutOfRange)
}
