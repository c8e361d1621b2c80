// Package crypto implements anonymous sealed boxes and the key material
// handling around them.
//
// # Algorithm Suite
//
// The construction is libsodium's crypto_box_seal, provided by
// golang.org/x/crypto/nacl/box:
//
//   - X25519 (RFC 7748): key agreement between a fresh ephemeral keypair
//     and the recipient's public key.
//
//   - BLAKE2b: derives the 24-byte nonce from the ephemeral and recipient
//     public keys, so no nonce is stored or transmitted.
//
//   - XSalsa20-Poly1305: authenticated encryption of the message.
//
// A sealed box is laid out as
//
//	ephemeral public key (32) || ciphertext || Poly1305 tag (16)
//
// and this package never reinterprets that layout itself.
//
// # Security Model
//
//   - Confidentiality: only the holder of the secret key can open a box.
//   - Integrity: any modification makes [Open] fail.
//   - Anonymity: the sender has no identity; boxes are not sender-authenticated.
//
// [Open] validates key lengths before doing any cryptographic work. Past
// that point every failure is reported as [ErrAuthenticationFailed], so a
// caller cannot tell a truncated box from a tampered one or from a box
// sealed to another key.
//
// # Key Management
//
// Use [GenerateKeypair] to create a keypair. [KeypairFromSecretKey]
// recomputes the public key from a stored secret key. Keep secret keys out
// of logs, error messages and version control.
//
// # Base64 Encoding
//
// [ToBase64]/[FromBase64] use the standard padded alphabet and decode
// strictly. [EncodeVariant]/[DecodeVariant] cover the other libsodium
// variants.
package crypto
