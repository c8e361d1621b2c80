package main

import (
	"github.com/spf13/cobra"

	sealedbox "github.com/vaultsandbox/sealedbox-go"
)

func newOpenCmd(a *app) *cobra.Command {
	var keyFile string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a base64 sealed box from stdin",
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
			kp, err := sealedbox.ImportKeypair(exported)
			if err != nil {
				return err
			}
			defer kp.Zeroize()

			input, err := readInput(cmd.InOrStdin(), true)
			if err != nil {
				return err
			}
			sealed, err := sealedbox.Decode(string(input))
			if err != nil {
				return err
			}

			message, err := kp.Open(sealed)
			if err != nil {
				return err
			}
			a.log.Infof("opened %d bytes", len(message))

			_, err = cmd.OutOrStdout().Write(message)
			return err
		},
	}

	cmd.Flags().StringVarP(&keyFile, "key-file", "k", "", "key file written by keygen (env "+envKeyFile+")")

	return cmd
}
