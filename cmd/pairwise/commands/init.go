package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var (
		did       string
		overwrite bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a master secret for a DID and store it encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if did == "" {
				return fmt.Errorf("--did required")
			}
			if err := wire.Identity.CreateMasterSecret(passphrase, did, overwrite); err != nil {
				return err
			}
			wire.Log.Info("master secret created", "did", did)
			fmt.Fprintf(cmd.OutOrStdout(), "Master secret created for %s\n", did)
			return nil
		},
	}
	cmd.Flags().StringVar(&did, "did", "", "DID owning the master secret")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing master secret")
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List DIDs with a stored master secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			dids, err := wire.Identity.ListDIDs()
			if err != nil {
				return err
			}
			for _, did := range dids {
				fmt.Fprintln(cmd.OutOrStdout(), did)
			}
			return nil
		},
	}
}
