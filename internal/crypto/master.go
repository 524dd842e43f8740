package crypto

import (
	"crypto/rand"
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// MasterSecretBytes is the size of generated master secrets.
const MasterSecretBytes = 32

const masterSaltLabel = "pairwise-master-v1"

// NewMasterSecret returns a fresh random master secret.
func NewMasterSecret() ([]byte, error) {
	b := make([]byte, MasterSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// MasterSecretFromPassphrase derives a master secret from a passphrase with
// Argon2id. The salt is bound to did so one passphrase yields a distinct
// secret per identity.
func MasterSecretFromPassphrase(passphrase, did string) []byte {
	h := sha256.New()
	h.Write([]byte(masterSaltLabel))
	h.Write([]byte{0})
	h.Write([]byte(did))
	salt := h.Sum(nil)
	return argon2.IDKey([]byte(passphrase), salt, 1, 64*1024, 4, MasterSecretBytes)
}
