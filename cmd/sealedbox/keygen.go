package main

import (
	"github.com/spf13/cobra"

	sealedbox "github.com/vaultsandbox/sealedbox-go"
)

func newKeygenCmd(a *app) *cobra.Command {
	var (
		out        string
		publicOnly bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a recipient keypair",
		Long: `Generates a new X25519 keypair and prints it as JSON.

With --out the keypair is written to a file readable only by its owner.
With --public-only the secret key is discarded and only the public half is
emitted, which is the form to hand to senders.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp := sealedbox.GenerateKeypair()
			defer kp.Zeroize()

			exported := kp.Export()
			if publicOnly {
				exported = kp.ExportPublic()
			}
			a.log.Infof("generated keypair %s", exported.Fingerprint)

			if out == "" {
				if !publicOnly {
					a.log.Warnf("writing secret key to stdout")
				}
				return writeExport(cmd.OutOrStdout(), exported)
			}
			if err := writeExportFile(out, exported, force); err != nil {
				return err
			}
			a.log.Infof("wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the keypair to this file instead of stdout")
	cmd.Flags().BoolVar(&publicOnly, "public-only", false, "omit the secret key")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing --out file")

	return cmd
}
