package interfaces

import (
	"context"

	domaintypes "pairwise/internal/domain/types"
)

// PairwiseService derives pairwise keys without keeping any state.
type PairwiseService interface {
	Derive(
		ctx context.Context,
		identity domaintypes.PairwiseIdentity,
		masterKey []byte,
		params domaintypes.GenerateParams,
	) (PrivateKey, domaintypes.Diagnostics, error)
}

// IdentityService creates and loads the master secret kept per DID.
type IdentityService interface {
	CreateMasterSecret(passphrase, did string, overwrite bool) error
	LoadMasterSecret(passphrase, did string) ([]byte, error)
	ListDIDs() ([]string, error)
}
