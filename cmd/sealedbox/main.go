// Command sealedbox seals and opens libsodium-compatible sealed boxes from
// the shell.
//
//	sealedbox keygen --out recipient.json
//	echo -n "my-token" | sealedbox seal --public-key "$REPO_KEY"
//	sealedbox open --key-file recipient.json < secret.b64
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	sealedbox "github.com/vaultsandbox/sealedbox-go"
	logger "github.com/vaultsandbox/sealedbox-go/internal/logging"
)

const (
	envPublicKey = "SEALEDBOX_PUBLIC_KEY"
	envKeyFile   = "SEALEDBOX_KEY_FILE"

	defaultEnvFile = ".env"
)

// Config carries the process streams and environment so tests can drive
// run without touching the real ones.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// DefaultConfig returns a Config bound to the real process.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

// app holds state shared by all subcommands for one invocation.
type app struct {
	cfg     Config
	log     logger.Logger
	verbose bool
	debug   bool
	envFile string
	dotenv  map[string]string
}

// env looks a variable up in the process environment first, then in the
// loaded env file.
func (a *app) env(key string) string {
	if a.cfg.Getenv != nil {
		if v := a.cfg.Getenv(key); v != "" {
			return v
		}
	}
	return a.dotenv[key]
}

func (a *app) loadEnvFile() error {
	path := a.envFile
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	a.dotenv = values
	a.log.Debugf("loaded %d variables from %s", len(values), path)
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sealedbox",
		Short: "Anonymous public-key encryption with libsodium sealed boxes",
		Long: `sealedbox encrypts data to a recipient's public key so that only the
holder of the matching secret key can read it. The sender needs no keypair.

Boxes are compatible with libsodium's crypto_box_seal, the format GitHub
expects for Actions secrets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log.Verbose = a.verbose
			a.log.Debug = a.debug

			if err := a.loadEnvFile(); err != nil {
				return err
			}
			if err := sealedbox.EnsureInit(); err != nil {
				return fmt.Errorf("library self-test failed: %w", err)
			}
			a.log.Debugf("self-test passed")
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "show informational messages")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "show debug messages")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load variables from this file (default .env if present)")

	cmd.AddCommand(
		newKeygenCmd(a),
		newPubkeyCmd(a),
		newSealCmd(a),
		newOpenCmd(a),
		newEncodeCmd(a),
		newDecodeCmd(a),
	)

	return cmd
}

func run(args []string, cfg Config) error {
	a := &app{
		cfg: cfg,
		log: logger.Logger{Out: cfg.Stdout, Err: cfg.Stderr},
	}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(cfg.Stdin)
	cmd.SetOut(cfg.Stdout)
	cmd.SetErr(cfg.Stderr)

	if err := cmd.Execute(); err != nil {
		a.log.Errorf("%v", err)
		return err
	}
	return nil
}
