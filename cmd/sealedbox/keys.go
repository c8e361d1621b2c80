package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	sealedbox "github.com/vaultsandbox/sealedbox-go"
)

// keyFileMode keeps exported secret keys readable by the owner only.
const keyFileMode = 0o600

var errNoKeyFile = errors.New("no key file given: use --key-file or set " + envKeyFile)

func (a *app) resolveKeyFile(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if path := a.env(envKeyFile); path != "" {
		a.log.Debugf("using key file from %s", envKeyFile)
		return path, nil
	}
	return "", errNoKeyFile
}

func readExport(path string) (*sealedbox.ExportedKeypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	var exported sealedbox.ExportedKeypair
	if err := json.Unmarshal(data, &exported); err != nil {
		return nil, fmt.Errorf("%w: %s is not a key file", sealedbox.ErrInvalidImportData, path)
	}
	return &exported, nil
}

func writeExport(w io.Writer, exported *sealedbox.ExportedKeypair) error {
	data, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeExportFile(path string, exported *sealedbox.ExportedKeypair, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, keyFileMode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
		return fmt.Errorf("failed to create key file: %w", err)
	}

	if err := writeExport(f, exported); err != nil {
		f.Close()
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return f.Close()
}

// readInput reads all of stdin. Text inputs are trimmed of surrounding
// whitespace so a trailing newline from echo or a file does not break
// strict base64 decoding.
func readInput(r io.Reader, text bool) ([]byte, error) {
	if r == nil {
		return nil, errors.New("no input available")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if text {
		return []byte(strings.TrimSpace(string(data))), nil
	}
	return data, nil
}
