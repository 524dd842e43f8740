package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pairwise/internal/crypto"
)

func TestMasterSecretFromPassphrase(t *testing.T) {
	a := crypto.MasterSecretFromPassphrase("Correct-Horse-9", "did:example:alice")
	b := crypto.MasterSecretFromPassphrase("Correct-Horse-9", "did:example:alice")
	c := crypto.MasterSecretFromPassphrase("Correct-Horse-9", "did:example:bob")

	assert.Len(t, a, crypto.MasterSecretBytes)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestNewMasterSecret(t *testing.T) {
	a, err := crypto.NewMasterSecret()
	require.NoError(t, err)
	b, err := crypto.NewMasterSecret()
	require.NoError(t, err)

	assert.Len(t, a, crypto.MasterSecretBytes)
	assert.NotEqual(t, a, b)
}

func TestB64URL_RoundTrip(t *testing.T) {
	in := []byte{0xfb, 0xff, 0x00}
	s := crypto.B64URL(in)
	assert.Equal(t, "-_8A", s)

	out, err := crypto.FromB64URL(s)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
