package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pairwise/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	var kf keyFlags
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the thumbprint and multihash fingerprint of a pairwise key",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _, err := kf.deriveKey(cmd, false)
			if err != nil {
				return err
			}
			tp, err := key.Thumbprint()
			if err != nil {
				return err
			}
			fp, err := crypto.Fingerprint(key.PublicJWK())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Thumbprint: %s\nFingerprint: %s\n", tp, fp)
			return nil
		},
	}
	kf.register(cmd)
	return cmd
}
