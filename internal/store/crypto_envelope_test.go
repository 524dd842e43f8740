package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Small scrypt cost keeps these tests fast.
const testN, testR, testP = 1 << 10, 8, 1

func TestEnvelope_RoundTrip(t *testing.T) {
	blob, err := seal("pass", "did:example:alice", []byte("secret"), testN, testR, testP)
	require.NoError(t, err)

	pt, err := open("pass", "did:example:alice", blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pt)

	_, err = open("nope", "did:example:alice", blob)
	assert.ErrorIs(t, err, errWrongPassphrase)
}

func TestEnvelope_BoundToDID(t *testing.T) {
	blob, err := seal("pass", "did:example:alice", []byte("secret"), testN, testR, testP)
	require.NoError(t, err)

	_, err = open("pass", "did:example:bob", blob)
	assert.Error(t, err)

	// Rewriting the recorded DID does not help: it is part of the AEAD data.
	var env envelope
	require.NoError(t, json.Unmarshal(blob, &env))
	env.DID = "did:example:bob"
	forged, err := json.Marshal(env)
	require.NoError(t, err)

	_, err = open("pass", "did:example:bob", forged)
	assert.ErrorIs(t, err, errWrongPassphrase)
}

func TestEnvelope_FutureVersion(t *testing.T) {
	blob, err := seal("pass", "did:example:alice", []byte("secret"), testN, testR, testP)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(blob, &env))
	env.V = envelopeFormatVersion + 1
	future, err := json.Marshal(env)
	require.NoError(t, err)

	_, err = open("pass", "did:example:alice", future)
	assert.Error(t, err)
}
