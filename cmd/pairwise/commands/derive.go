package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"pairwise/internal/domain"
)

func deriveCmd() *cobra.Command {
	var (
		kf      keyFlags
		private bool
	)
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the pairwise key for a DID and peer and print its JWK",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, diag, err := kf.deriveKey(cmd, private)
			if err != nil {
				return err
			}

			jwk := key.PublicJWK()
			if private {
				if jwk, err = key.JWK(); err != nil {
					return err
				}
			}
			if jwk.Kid, err = key.Thumbprint(); err != nil {
				return err
			}
			if key.KeyType() == domain.KeyTypeRSA {
				wire.Log.Info("derived rsa key", "prime_tests", diag.PrimeTestCount)
			}

			out, err := json.MarshalIndent(jwk, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	kf.register(cmd)
	cmd.Flags().BoolVar(&private, "private", false, "include private members in the JWK")
	return cmd
}
