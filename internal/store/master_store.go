package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"pairwise/internal/domain"
)

const (
	mastersDir = "masters"
	indexFile  = "index.json" // map[filename]did
)

var (
	// ErrMasterSecretExists is returned when saving over an existing secret without overwrite.
	ErrMasterSecretExists = errors.New("master secret already exists")
	// ErrMasterSecretNotFound is returned when no secret is stored for a DID.
	ErrMasterSecretNotFound = errors.New("master secret not found")
)

// MasterSecretFileStore keeps one encrypted master secret per DID under
// <dir>/masters. Derived keys are never written.
type MasterSecretFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewMasterSecretFileStore returns a store rooted at dir.
func NewMasterSecretFileStore(dir string) *MasterSecretFileStore {
	return &MasterSecretFileStore{dir: dir}
}

// fileFor maps a DID to a filesystem-safe name; DIDs contain ':' and '/'.
func fileFor(did string) string {
	sum := sha256.Sum256([]byte(did))
	return hex.EncodeToString(sum[:16]) + ".json.enc"
}

func (s *MasterSecretFileStore) root() string { return filepath.Join(s.dir, mastersDir) }

// SaveMasterSecret encrypts secret with passphrase and writes it for did.
func (s *MasterSecretFileStore) SaveMasterSecret(passphrase, did string, secret []byte, overwrite bool) error {
	if did == "" {
		return errors.New("did cannot be empty")
	}
	if len(secret) == 0 {
		return domain.ErrEmptyMasterSecret
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root(), 0o700); err != nil {
		return err
	}
	name := fileFor(did)
	path := filepath.Join(s.root(), name)
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w for %q", ErrMasterSecretExists, did)
		}
	}

	N, r, p := scryptParamsDefault()
	blob, err := seal(passphrase, did, secret, N, r, p)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, blob, 0o600); err != nil {
		return err
	}

	index := map[string]string{}
	if err := readJSON(filepath.Join(s.root(), indexFile), &index); err != nil {
		return err
	}
	index[name] = did
	return writeJSON(filepath.Join(s.root(), indexFile), index, 0o600)
}

// LoadMasterSecret reads and decrypts the master secret for did.
func (s *MasterSecretFileStore) LoadMasterSecret(passphrase, did string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.root(), fileFor(did)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w for %q", ErrMasterSecretNotFound, did)
	}
	if err != nil {
		return nil, err
	}
	return open(passphrase, did, b)
}

// ListDIDs returns every DID with a stored master secret, sorted.
func (s *MasterSecretFileStore) ListDIDs() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := map[string]string{}
	if err := readJSON(filepath.Join(s.root(), indexFile), &index); err != nil {
		return nil, err
	}
	dids := make([]string, 0, len(index))
	for name, did := range index {
		if _, err := os.Stat(filepath.Join(s.root(), name)); err == nil {
			dids = append(dids, did)
		}
	}
	sort.Strings(dids)
	return dids, nil
}

// Compile-time assertion that MasterSecretFileStore implements domain.MasterSecretStore.
var _ domain.MasterSecretStore = (*MasterSecretFileStore)(nil)
