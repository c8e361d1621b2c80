package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"
)

// Seal encrypts message to recipientPublicKey as an anonymous sealed box.
// The output is the ephemeral public key followed by the ciphertext and tag,
// exactly as produced by box.SealAnonymous. A nil rand uses the package
// random source.
func Seal(message, recipientPublicKey []byte, rand io.Reader) ([]byte, error) {
	if len(recipientPublicKey) != PublicKeySize {
		return nil, publicKeySizeError(len(recipientPublicKey))
	}

	var recipient [PublicKeySize]byte
	copy(recipient[:], recipientPublicKey)

	out := make([]byte, 0, len(message)+SealOverhead)
	sealed, err := box.SealAnonymous(out, message, &recipient, reader(rand))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	return sealed, nil
}
