package pairwise

import (
	"context"

	"pairwise/internal/domain"
)

// PairwiseKey is the key for one (DID, peer) relationship.
//
// A failed Generate leaves the key unset only if no earlier call succeeded;
// otherwise Key keeps returning the key from the last successful call.
type PairwiseKey struct {
	svc      *Service
	identity domain.PairwiseIdentity

	key  domain.PrivateKey
	diag domain.Diagnostics
}

// ID returns DID + "-" + peer identifier.
func (k *PairwiseKey) ID() string { return k.identity.ID() }

func (k *PairwiseKey) DID() string    { return k.identity.DID }
func (k *PairwiseKey) PeerID() string { return k.identity.PeerID }

// Identity returns the bound identity pair.
func (k *PairwiseKey) Identity() domain.PairwiseIdentity { return k.identity }

// Key returns the last generated key, if any.
func (k *PairwiseKey) Key() (domain.PrivateKey, bool) { return k.key, k.key != nil }

// PrimeTestCount is the number of prime candidates tested by the last RSA
// generation; zero for EC.
func (k *PairwiseKey) PrimeTestCount() int { return k.diag.PrimeTestCount }

// Diagnostics returns the statistics of the last successful generation.
func (k *PairwiseKey) Diagnostics() domain.Diagnostics { return k.diag }

// Generate derives the key for masterKey and params and stores it on k.
// On error k keeps its previous state.
func (k *PairwiseKey) Generate(ctx context.Context, masterKey []byte, params domain.GenerateParams) (domain.PrivateKey, error) {
	key, diag, err := k.svc.Derive(ctx, k.identity, masterKey, params)
	if err != nil {
		return nil, err
	}
	k.key, k.diag = key, diag
	return key, nil
}
