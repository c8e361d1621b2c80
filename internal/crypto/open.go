package crypto

import "golang.org/x/crypto/nacl/box"

// Open decrypts a sealed box with the recipient's keypair.
//
// Key lengths are validated up front, public key first. After that every
// failure is reported as ErrAuthenticationFailed with no further detail.
func Open(sealedBox, recipientPublicKey, recipientSecretKey []byte) ([]byte, error) {
	if len(recipientPublicKey) != PublicKeySize {
		return nil, publicKeySizeError(len(recipientPublicKey))
	}
	if len(recipientSecretKey) != SecretKeySize {
		return nil, secretKeySizeError(len(recipientSecretKey))
	}

	var publicKey [PublicKeySize]byte
	var secretKey [SecretKeySize]byte
	copy(publicKey[:], recipientPublicKey)
	copy(secretKey[:], recipientSecretKey)
	defer Zeroize(secretKey[:])

	message, ok := box.OpenAnonymous(nil, sealedBox, &publicKey, &secretKey)
	if !ok {
		return nil, ErrAuthenticationFailed
	}
	if message == nil {
		message = []byte{}
	}

	return message, nil
}
