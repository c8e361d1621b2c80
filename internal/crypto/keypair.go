package crypto

import (
	cryptorand "crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/cloudflare/circl/dh/x25519"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/nacl/box"
)

// randReader is the random source used for key generation and sealing.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// reader resolves the random source for an operation: an explicit reader
// wins, then the package override, then crypto/rand.
func reader(r io.Reader) io.Reader {
	if r != nil {
		return r
	}
	if randReader != nil {
		return randReader
	}
	return cryptorand.Reader
}

// Keypair represents an X25519 keypair for sealed boxes.
type Keypair struct {
	// PublicKey is the raw X25519 public key bytes.
	PublicKey []byte
	// SecretKey is the raw X25519 secret key bytes.
	SecretKey []byte
	// PublicKeyB64 is the public key encoded as standard padded base64.
	PublicKeyB64 string
}

// GenerateKeypair creates a new X25519 keypair. A nil rand uses the
// package random source.
func GenerateKeypair(rand io.Reader) (*Keypair, error) {
	pub, priv, err := box.GenerateKey(reader(rand))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	return &Keypair{
		PublicKey:    pub[:],
		SecretKey:    priv[:],
		PublicKeyB64: ToBase64(pub[:]),
	}, nil
}

// KeypairFromSecretKey reconstructs a keypair from the secret key by
// recomputing the public key.
func KeypairFromSecretKey(secretKey []byte) (*Keypair, error) {
	publicKey, err := DerivePublicKeyFromSecret(secretKey)
	if err != nil {
		return nil, err
	}

	sk := make([]byte, SecretKeySize)
	copy(sk, secretKey)

	return &Keypair{
		PublicKey:    publicKey,
		SecretKey:    sk,
		PublicKeyB64: ToBase64(publicKey),
	}, nil
}

// NewKeypairFromBytes creates a keypair from raw bytes. The public key is
// checked first so a caller with two bad inputs always sees the same error.
func NewKeypairFromBytes(publicKeyBytes, secretKeyBytes []byte) (*Keypair, error) {
	if len(publicKeyBytes) != PublicKeySize {
		return nil, publicKeySizeError(len(publicKeyBytes))
	}
	if len(secretKeyBytes) != SecretKeySize {
		return nil, secretKeySizeError(len(secretKeyBytes))
	}

	pk := make([]byte, PublicKeySize)
	copy(pk, publicKeyBytes)
	sk := make([]byte, SecretKeySize)
	copy(sk, secretKeyBytes)

	return &Keypair{
		PublicKey:    pk,
		SecretKey:    sk,
		PublicKeyB64: ToBase64(pk),
	}, nil
}

// ValidateKeypair validates that a keypair has the correct structure and sizes
// and that the public key belongs to the secret key.
// Returns true if all validations pass, false otherwise.
func ValidateKeypair(keypair *Keypair) bool {
	if keypair == nil {
		return false
	}

	if keypair.PublicKey == nil || keypair.SecretKey == nil || keypair.PublicKeyB64 == "" {
		return false
	}

	if len(keypair.PublicKey) != PublicKeySize || len(keypair.SecretKey) != SecretKeySize {
		return false
	}

	if keypair.PublicKeyB64 != ToBase64(keypair.PublicKey) {
		return false
	}

	derived, err := DerivePublicKeyFromSecret(keypair.SecretKey)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(derived, keypair.PublicKey) == 1
}

// DerivePublicKeyFromSecret computes the X25519 public key for a secret key.
// Returns an error if the secret key has an invalid size.
func DerivePublicKeyFromSecret(secretKey []byte) ([]byte, error) {
	if len(secretKey) != SecretKeySize {
		return nil, secretKeySizeError(len(secretKey))
	}

	var secret, public x25519.Key
	copy(secret[:], secretKey)
	x25519.KeyGen(&public, &secret)
	Zeroize(secret[:])

	return public[:], nil
}

// Fingerprint returns a short stable identifier for a public key: the hex
// form of the first FingerprintSize bytes of its BLAKE2b-256 digest.
func Fingerprint(publicKey []byte) (string, error) {
	if len(publicKey) != PublicKeySize {
		return "", publicKeySizeError(len(publicKey))
	}

	sum := blake2b.Sum256(publicKey)
	return hex.EncodeToString(sum[:FingerprintSize]), nil
}

// Zeroize overwrites the secret key bytes. The keypair must not be used for
// opening afterwards.
func (k *Keypair) Zeroize() {
	if k == nil {
		return
	}
	Zeroize(k.SecretKey)
}

// Zeroize overwrites b with zeros.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
