package main

import (
	"fmt"

	"github.com/spf13/cobra"

	sealedbox "github.com/vaultsandbox/sealedbox-go"
)

const variantUsage = "base64 variant: original, original-no-padding, urlsafe, urlsafe-no-padding"

func newEncodeCmd(a *app) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Base64-encode stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := sealedbox.ParseVariant(variant)
			if err != nil {
				return err
			}
			data, err := readInput(cmd.InOrStdin(), false)
			if err != nil {
				return err
			}
			text, err := sealedbox.EncodeVariant(data, v)
			if err != nil {
				return err
			}
			a.log.Debugf("encoded %d bytes as %s", len(data), v)

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "original", variantUsage)

	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := sealedbox.ParseVariant(variant)
			if err != nil {
				return err
			}
			text, err := readInput(cmd.InOrStdin(), true)
			if err != nil {
				return err
			}
			data, err := sealedbox.DecodeVariant(string(text), v)
			if err != nil {
				return err
			}
			a.log.Debugf("decoded %d bytes as %s", len(data), v)

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "original", variantUsage)

	return cmd
}
