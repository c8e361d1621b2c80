package sealedbox

import (
	"errors"
	"fmt"

	"github.com/vaultsandbox/sealedbox-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidKey is returned when key material has the wrong length.
	// Both ErrInvalidPublicKey and ErrInvalidSecretKey failures match it.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidPublicKey is returned when a public key has the wrong length.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidSecretKey is returned when a secret key has the wrong length.
	ErrInvalidSecretKey = errors.New("invalid secret key")

	// ErrAuthenticationFailed is returned when a sealed box cannot be opened.
	// Truncation, corruption, tampering and a mismatched keypair all return
	// this exact value.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidEncoding is returned when base64 text is malformed.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrKeypairMismatch is returned when a public key does not belong to the
	// secret key it is paired with.
	ErrKeypairMismatch = errors.New("public key does not match secret key")

	// ErrInvalidImportData is returned when an exported keypair is invalid.
	ErrInvalidImportData = errors.New("invalid import data")

	// ErrFatal is matched by failures of the random source or the library
	// self-test. There is no correct way to continue after one.
	ErrFatal = errors.New("fatal cryptographic failure")
)

// SealedBoxError is implemented by all typed errors of this package.
type SealedBoxError interface {
	error
	SealedBoxError() // marker method
}

// KeyError reports key material of the wrong length. It records lengths
// only, never key bytes.
type KeyError struct {
	Key  string // "public" or "secret"
	Size int
	Want int
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("invalid %s key: got %d bytes, want %d", e.Key, e.Size, e.Want)
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyError) Is(target error) bool {
	switch target {
	case ErrInvalidKey:
		return true
	case ErrInvalidPublicKey:
		return e.Key == "public"
	case ErrInvalidSecretKey:
		return e.Key == "secret"
	}
	return false
}

// SealedBoxError implements the SealedBoxError interface.
func (e *KeyError) SealedBoxError() {}

// EncodingError reports malformed base64 text.
type EncodingError struct {
	// Offset is the position of the first offending byte, when known.
	Offset int64
	Err    error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid encoding: %v", e.Err)
	}
	return fmt.Sprintf("invalid encoding at offset %d", e.Offset)
}

// Unwrap returns the underlying error.
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

// SealedBoxError implements the SealedBoxError interface.
func (e *EncodingError) SealedBoxError() {}

// FatalError reports an unrecoverable failure of the random source or the
// library self-test. GenerateKeypair and Seal panic with it; EnsureInit
// returns it.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *FatalError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *FatalError) Is(target error) bool {
	return target == ErrFatal
}

// SealedBoxError implements the SealedBoxError interface.
func (e *FatalError) SealedBoxError() {}

// wrapError converts internal crypto errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, crypto.ErrAuthenticationFailed) {
		return ErrAuthenticationFailed
	}

	var sizeErr *crypto.KeySizeError
	if errors.As(err, &sizeErr) {
		return &KeyError{Key: sizeErr.Key, Size: sizeErr.Got, Want: sizeErr.Want}
	}

	var encErr *crypto.CorruptEncodingError
	if errors.As(err, &encErr) {
		return &EncodingError{Offset: encErr.Offset}
	}
	if errors.Is(err, crypto.ErrInvalidVariant) {
		return &EncodingError{Offset: -1, Err: err}
	}

	if errors.Is(err, crypto.ErrKeypairMismatch) {
		return ErrKeypairMismatch
	}

	if errors.Is(err, crypto.ErrRandomSource) || errors.Is(err, crypto.ErrSelfTest) {
		return &FatalError{Op: op, Err: err}
	}

	return err
}

// mustNotBeFatal panics with err when it is a FatalError and returns it
// unchanged otherwise.
func mustNotBeFatal(err error) error {
	var fatal *FatalError
	if errors.As(err, &fatal) {
		panic(fatal)
	}
	return err
}
