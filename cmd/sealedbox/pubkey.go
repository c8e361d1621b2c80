package main

import (
	"fmt"

	"github.com/spf13/cobra"

	sealedbox "github.com/vaultsandbox/sealedbox-go"
)

func newPubkeyCmd(a *app) *cobra.Command {
	var keyFile string

	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key and fingerprint of a key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.resolveKeyFile(keyFile)
			if err != nil {
				return err
			}
			exported, err := readExport(path)
			if err != nil {
				return err
			}
			publicKey, err := sealedbox.ImportPublicKey(exported)
			if err != nil {
				return err
			}
			fp, err := sealedbox.Fingerprint(publicKey)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), sealedbox.Encode(publicKey))
			fmt.Fprintf(cmd.OutOrStdout(), "fingerprint: %s\n", fp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyFile, "key-file", "k", "", "key file written by keygen (env "+envKeyFile+")")

	return cmd
}
