package identity

import (
	"fmt"
	"unicode"

	"pairwise/internal/crypto"
	"pairwise/internal/domain"
	"pairwise/internal/util/memzero"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service creates and loads master secrets using a backing store.
type Service struct {
	store domain.MasterSecretStore
}

// New returns an identity service backed by the given store.
func New(s domain.MasterSecretStore) *Service { return &Service{store: s} }

// CreateMasterSecret generates a random master secret for did and saves it
// encrypted with the passphrase.
func (s *Service) CreateMasterSecret(passphrase, did string, overwrite bool) error {
	if !isSecurePassphrase(passphrase) {
		return ErrWeakPassphrase
	}
	secret, err := crypto.NewMasterSecret()
	if err != nil {
		return err
	}
	defer memzero.Zero(secret)
	return s.store.SaveMasterSecret(passphrase, did, secret, overwrite)
}

// LoadMasterSecret decrypts and returns the master secret for did. The
// caller owns the slice and should zero it after use.
func (s *Service) LoadMasterSecret(passphrase, did string) ([]byte, error) {
	return s.store.LoadMasterSecret(passphrase, did)
}

// ListDIDs returns the DIDs with a stored master secret.
func (s *Service) ListDIDs() ([]string, error) { return s.store.ListDIDs() }

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
