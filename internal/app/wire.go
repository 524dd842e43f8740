package app

import (
	"io"
	"log/slog"
	"os"

	"pairwise/internal/crypto"
	"pairwise/internal/domain"
	identitysvc "pairwise/internal/services/identity"
	pairwisesvc "pairwise/internal/services/pairwise"
	"pairwise/internal/store"
)

// Wire bundles the stores and services the CLI uses.
type Wire struct {
	Config     Config
	Log        *slog.Logger
	Primitives domain.Primitives
	Masters    domain.MasterSecretStore
	Identity   domain.IdentityService
	Pairwise   *pairwisesvc.Service
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut, or
// stderr when nil.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if logOut == nil {
		logOut = os.Stderr
	}
	log, err := NewLogger(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	masters := store.NewMasterSecretFileStore(cfg.Home)
	prims := crypto.NewPrimitives()

	return &Wire{
		Config:     cfg,
		Log:        log,
		Primitives: prims,
		Masters:    masters,
		Identity:   identitysvc.New(masters),
		Pairwise: pairwisesvc.New(prims, pairwisesvc.Options{
			PrimeMaxTests: cfg.Prime.MaxTests,
			Logger:        log,
		}),
	}, nil
}
