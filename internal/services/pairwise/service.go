package pairwise

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"pairwise/internal/crypto"
	"pairwise/internal/domain"
	"pairwise/internal/protocol/eckey"
	"pairwise/internal/protocol/prime"
	"pairwise/internal/protocol/rsakey"
)

// Options tunes derivation.
type Options struct {
	// PrimeMaxTests caps each RSA prime search; see prime.Options.
	PrimeMaxTests int
	// Logger receives debug records for each derivation. Nil discards.
	Logger *slog.Logger
}

// Service derives pairwise keys from injected primitives.
type Service struct {
	prims domain.Primitives
	opts  Options
	log   *slog.Logger
}

// New returns a Service using prims. A nil prims selects crypto.NewPrimitives.
func New(prims domain.Primitives, opts Options) *Service {
	if prims == nil {
		prims = crypto.NewPrimitives()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{prims: prims, opts: opts, log: log.With("component", "pairwise")}
}

// Key returns a PairwiseKey for did and peerID with no key generated yet.
func (s *Service) Key(did, peerID string) *PairwiseKey {
	return &PairwiseKey{
		svc:      s,
		identity: domain.PairwiseIdentity{DID: did, PeerID: peerID},
	}
}

// Derive derives the key for identity without touching any PairwiseKey state.
func (s *Service) Derive(
	ctx context.Context,
	identity domain.PairwiseIdentity,
	masterKey []byte,
	params domain.GenerateParams,
) (domain.PrivateKey, domain.Diagnostics, error) {
	log := s.log.With("id", identity.ID(), "kty", params.KeyType)

	switch params.KeyType {
	case domain.KeyTypeRSA:
		res, err := rsakey.Build(ctx, s.prims, masterKey, identity.PeerID, params.Algorithm.ModulusLength, rsakey.Options{
			Prime: prime.Options{MaxTests: s.opts.PrimeMaxTests},
		})
		if err != nil {
			log.Debug("rsa derivation failed", "err", err)
			return nil, domain.Diagnostics{}, err
		}
		key, err := crypto.NewRSAKey(res.Material, params.Use, params.Exportable)
		if err != nil {
			return nil, domain.Diagnostics{}, err
		}
		diag := domain.Diagnostics{PrimeTestCount: res.Tests(), PTests: res.PTests, QTests: res.QTests}
		log.Debug("derived rsa key",
			"modulus_bits", res.Material.N.BitLen(),
			"p_tests", diag.PTests,
			"q_tests", diag.QTests,
		)
		return key, diag, nil

	case domain.KeyTypeEC:
		m, err := eckey.Build(ctx, s.prims, masterKey, identity.PeerID, params.Algorithm.NamedCurve)
		if err != nil {
			log.Debug("ec derivation failed", "err", err)
			return nil, domain.Diagnostics{}, err
		}
		key, err := crypto.NewECKey(m, params.Use, params.Exportable)
		if err != nil {
			return nil, domain.Diagnostics{}, err
		}
		log.Debug("derived ec key", "crv", m.Curve)
		return key, domain.Diagnostics{}, nil

	default:
		return nil, domain.Diagnostics{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedKeyType, params.KeyType)
	}
}

// Compile-time assertion that Service implements domain.PairwiseService.
var _ domain.PairwiseService = (*Service)(nil)
