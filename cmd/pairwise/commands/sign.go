package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pairwise/internal/crypto"
)

func signCmd() *cobra.Command {
	var (
		kf      keyFlags
		message string
	)
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with a pairwise key (RS256 or ES256K)",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _, err := kf.deriveKey(cmd, false)
			if err != nil {
				return err
			}
			sig, err := key.Sign([]byte(message))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.B64URL(sig))
			return nil
		},
	}
	kf.register(cmd)
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to sign")
	return cmd
}

func verifyCmd() *cobra.Command {
	var (
		kf        keyFlags
		message   string
		signature string
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a base64url signature made by a pairwise key",
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := crypto.FromB64URL(signature)
			if err != nil {
				return fmt.Errorf("decode signature: %w", err)
			}
			key, _, err := kf.deriveKey(cmd, false)
			if err != nil {
				return err
			}
			if err := key.Verify([]byte(message), sig); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signature OK")
			return nil
		},
	}
	kf.register(cmd)
	cmd.Flags().StringVarP(&message, "message", "m", "", "signed message")
	cmd.Flags().StringVar(&signature, "sig", "", "base64url signature")
	return cmd
}
