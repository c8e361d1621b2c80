package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSecretKeySize is returned when the secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when the public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrAuthenticationFailed is returned when a sealed box cannot be opened.
	// Truncated input, tampering and a mismatched keypair all produce this
	// same value.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrKeypairMismatch is returned when a public key was not derived from
	// the accompanying secret key.
	ErrKeypairMismatch = errors.New("public key does not match secret key")

	// ErrInvalidEncoding is returned when base64 text is malformed.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidVariant is returned for an unrecognized base64 variant.
	ErrInvalidVariant = errors.New("invalid base64 variant")

	// ErrRandomSource is returned when the random source cannot supply bytes.
	ErrRandomSource = errors.New("random source unavailable")

	// ErrSelfTest is returned when the initialization self-test fails.
	ErrSelfTest = errors.New("self-test failed")
)

// KeySizeError reports key material of the wrong length. Only the lengths
// are recorded, never the key bytes.
type KeySizeError struct {
	// Key is "public" or "secret".
	Key  string
	Got  int
	Want int
}

func (e *KeySizeError) Error() string {
	return fmt.Sprintf("invalid %s key size: got %d, want %d", e.Key, e.Got, e.Want)
}

// Is implements errors.Is for sentinel error matching.
func (e *KeySizeError) Is(target error) bool {
	switch e.Key {
	case "public":
		return target == ErrInvalidPublicKeySize
	case "secret":
		return target == ErrInvalidSecretKeySize
	}
	return false
}

// CorruptEncodingError reports the offset of the first malformed byte in a
// base64 text.
type CorruptEncodingError struct {
	Offset int64
}

func (e *CorruptEncodingError) Error() string {
	return fmt.Sprintf("invalid encoding at offset %d", e.Offset)
}

// Is implements errors.Is for sentinel error matching.
func (e *CorruptEncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

func publicKeySizeError(got int) error {
	return &KeySizeError{Key: "public", Got: got, Want: PublicKeySize}
}

func secretKeySizeError(got int) error {
	return &KeySizeError{Key: "secret", Got: got, Want: SecretKeySize}
}
