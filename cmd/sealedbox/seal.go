package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	sealedbox "github.com/vaultsandbox/sealedbox-go"
)

var errNoRecipient = errors.New("no recipient given: use --public-key or --key-file, or set " + envPublicKey)

func newSealCmd(a *app) *cobra.Command {
	var (
		publicKeyB64 string
		keyFile      string
	)

	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Seal stdin to a recipient's public key",
		Long: `Reads a message from stdin, seals it to the recipient's public key and
prints the sealed box as standard base64.

The recipient is given either as a base64 public key (for example a GitHub
repository key) or as a key file from keygen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			publicKey, err := a.recipientKey(publicKeyB64, keyFile)
			if err != nil {
				return err
			}

			message, err := readInput(cmd.InOrStdin(), false)
			if err != nil {
				return err
			}

			sealed, err := sealedbox.Seal(message, publicKey)
			if err != nil {
				return err
			}
			a.log.Infof("sealed %d bytes into %d", len(message), len(sealed))

			fmt.Fprintln(cmd.OutOrStdout(), sealedbox.Encode(sealed))
			return nil
		},
	}

	cmd.Flags().StringVarP(&publicKeyB64, "public-key", "p", "", "recipient public key in base64 (env "+envPublicKey+")")
	cmd.Flags().StringVarP(&keyFile, "key-file", "k", "", "read the recipient public key from a key file")
	cmd.MarkFlagsMutuallyExclusive("public-key", "key-file")

	return cmd
}

// recipientKey resolves the public key to seal to. Flags take precedence
// over the environment; a key file is only consulted when named by flag.
func (a *app) recipientKey(publicKeyB64, keyFile string) ([]byte, error) {
	if keyFile != "" {
		exported, err := readExport(keyFile)
		if err != nil {
			return nil, err
		}
		return sealedbox.ImportPublicKey(exported)
	}

	if publicKeyB64 == "" {
		publicKeyB64 = a.env(envPublicKey)
		if publicKeyB64 == "" {
			return nil, errNoRecipient
		}
		a.log.Debugf("using public key from %s", envPublicKey)
	}

	publicKey, err := sealedbox.Decode(publicKeyB64)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}
	return publicKey, nil
}
