package crypto

import "golang.org/x/crypto/nacl/box"

const (
	// PublicKeySize is the size of an X25519 public key in bytes.
	PublicKeySize = 32
	// SecretKeySize is the size of an X25519 secret key in bytes.
	SecretKeySize = 32

	// TagSize is the size of the Poly1305 authentication tag in bytes.
	TagSize = box.Overhead
	// SealOverhead is the number of bytes a sealed box adds to its message:
	// the ephemeral public key followed by the authentication tag.
	SealOverhead = box.AnonymousOverhead

	// FingerprintSize is the number of BLAKE2b-256 bytes kept in a fingerprint.
	FingerprintSize = 16
)

// Ciphersuite is the canonical string representation of the algorithm suite.
const Ciphersuite = "X25519:XSalsa20-Poly1305:BLAKE2b"
