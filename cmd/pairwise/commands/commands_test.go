package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"pairwise/internal/app"
	"pairwise/internal/domain"
)

const (
	testPass = "Correct-Horse-9-Battery!"
	testDID  = "did:example:alice"
)

// run executes the CLI with args against home and returns stdout.
func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append([]string{"--home", home}, args...))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func initHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	out, err := run(t, home, "init", "-p", testPass, "--did", testDID)
	require.NoError(t, err)
	assert.Contains(t, out, "Master secret created for "+testDID)
	return home
}

func TestInitAndList(t *testing.T) {
	home := initHome(t)

	_, err := run(t, home, "init", "-p", testPass, "--did", testDID)
	assert.Error(t, err, "second init without --overwrite")

	out, err := run(t, home, "list")
	require.NoError(t, err)
	assert.Equal(t, testDID+"\n", out)
}

func TestInit_RequiresPassphrase(t *testing.T) {
	_, err := run(t, t.TempDir(), "init", "--did", testDID)
	assert.Error(t, err)
}

func TestDerive_EC(t *testing.T) {
	home := initHome(t)

	out, err := run(t, home, "derive", "-p", testPass, "--did", testDID, "--peer", "bob")
	require.NoError(t, err)

	var pub domain.JWK
	require.NoError(t, json.Unmarshal([]byte(out), &pub))
	assert.Equal(t, "EC", pub.Kty)
	assert.Equal(t, "K-256", pub.Crv)
	assert.NotEmpty(t, pub.Kid)
	assert.Empty(t, pub.D)

	out, err = run(t, home, "derive", "-p", testPass, "--did", testDID, "--peer", "bob", "--private")
	require.NoError(t, err)

	var priv domain.JWK
	require.NoError(t, json.Unmarshal([]byte(out), &priv))
	assert.NotEmpty(t, priv.D)
	assert.Equal(t, pub.X, priv.X)
	assert.Equal(t, pub.Kid, priv.Kid)
}

func TestDerive_RSAFromPassphrase(t *testing.T) {
	home := t.TempDir()
	args := []string{"derive", "-p", "any passphrase", "--from-passphrase",
		"--did", testDID, "--peer", "bob", "--kty", "RSA", "--bits", "1024"}

	first, err := run(t, home, args...)
	require.NoError(t, err)
	second, err := run(t, home, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var pub domain.JWK
	require.NoError(t, json.Unmarshal([]byte(first), &pub))
	assert.Equal(t, "RSA", pub.Kty)
	assert.Equal(t, "AQAB", pub.E)
}

func TestDerive_UnknownDID(t *testing.T) {
	home := initHome(t)
	_, err := run(t, home, "derive", "-p", testPass, "--did", "did:example:nobody", "--peer", "bob")
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	home := initHome(t)
	out, err := run(t, home, "fingerprint", "-p", testPass, "--did", testDID, "--peer", "bob")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Thumbprint: "))
	assert.True(t, strings.HasPrefix(lines[1], "Fingerprint: Qm"))
}

func TestSignVerify(t *testing.T) {
	home := initHome(t)
	key := []string{"-p", testPass, "--did", testDID, "--peer", "bob"}

	out, err := run(t, home, append([]string{"sign", "-m", "hello"}, key...)...)
	require.NoError(t, err)
	sig := strings.TrimSpace(out)
	require.NotEmpty(t, sig)

	out, err = run(t, home, append([]string{"verify", "-m", "hello", "--sig", sig}, key...)...)
	require.NoError(t, err)
	assert.Equal(t, "Signature OK\n", out)

	_, err = run(t, home, append([]string{"verify", "-m", "hellO", "--sig", sig}, key...)...)
	assert.ErrorIs(t, err, domain.ErrBadSignature)

	// Another peer's key does not verify bob's signature.
	_, err = run(t, home, "verify", "-m", "hello", "--sig", sig, "-p", testPass, "--did", testDID, "--peer", "carol")
	assert.ErrorIs(t, err, domain.ErrBadSignature)
}

func TestConfig_PrintsEffectiveConfig(t *testing.T) {
	home := t.TempDir()
	out, err := run(t, home, "--log-level", "debug", "config")
	require.NoError(t, err)

	var cfg app.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "EC", cfg.Key.Type)
}
