package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pairwise/internal/crypto"
	"pairwise/internal/domain"
	"pairwise/internal/util/memzero"
)

// keyFlags selects which pairwise key a command operates on.
type keyFlags struct {
	did            string
	peer           string
	kty            string
	crv            string
	bits           int
	use            string
	fromPassphrase bool
}

func (f *keyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.did, "did", "", "DID owning the master secret")
	cmd.Flags().StringVar(&f.peer, "peer", "", "peer identifier")
	cmd.Flags().StringVar(&f.kty, "kty", "", "key type: EC or RSA (default from config)")
	cmd.Flags().StringVar(&f.crv, "crv", "", "curve: K-256 or P-256K (default from config)")
	cmd.Flags().IntVar(&f.bits, "bits", 0, "RSA modulus size (default from config)")
	cmd.Flags().StringVar(&f.use, "use", "", "key use: sig or enc (default from config)")
	cmd.Flags().BoolVar(&f.fromPassphrase, "from-passphrase", false,
		"derive the master secret from the passphrase instead of the store")
}

func (f *keyFlags) params(exportable bool) domain.GenerateParams {
	cfg := wire.Config
	if f.kty != "" {
		cfg.Key.Type = f.kty
	}
	if f.crv != "" {
		cfg.Key.Curve = f.crv
	}
	if f.bits != 0 {
		cfg.Key.ModulusBits = f.bits
	}
	if f.use != "" {
		cfg.Key.Use = f.use
	}
	return cfg.GenerateParams(exportable)
}

// deriveKey loads or derives the master secret and derives the pairwise key.
func (f *keyFlags) deriveKey(cmd *cobra.Command, exportable bool) (domain.PrivateKey, domain.Diagnostics, error) {
	if f.did == "" || f.peer == "" {
		return nil, domain.Diagnostics{}, fmt.Errorf("--did and --peer required")
	}
	if passphrase == "" {
		return nil, domain.Diagnostics{}, fmt.Errorf("passphrase required (-p)")
	}

	var (
		master []byte
		err    error
	)
	if f.fromPassphrase {
		master = crypto.MasterSecretFromPassphrase(passphrase, f.did)
	} else {
		master, err = wire.Identity.LoadMasterSecret(passphrase, f.did)
		if err != nil {
			return nil, domain.Diagnostics{}, err
		}
	}
	defer memzero.Zero(master)

	pk := wire.Pairwise.Key(f.did, f.peer)
	key, err := pk.Generate(cmd.Context(), master, f.params(exportable))
	if err != nil {
		return nil, domain.Diagnostics{}, err
	}
	return key, pk.Diagnostics(), nil
}
