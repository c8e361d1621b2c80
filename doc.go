// Package sealedbox provides anonymous public-key encryption compatible
// with libsodium's crypto_box_seal.
//
// A sender seals a message to a recipient's public key without a keypair of
// their own; only the recipient's secret key can open it. This is the
// scheme GitHub uses for Actions secrets.
//
// Basic usage:
//
//	if err := sealedbox.EnsureInit(); err != nil {
//	    log.Fatal(err)
//	}
//
//	kp := sealedbox.GenerateKeypair()
//
//	sealed, err := sealedbox.Seal([]byte("Hello, GitHub!"), kp.PublicKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	message, err := sealedbox.Open(sealed, kp.PublicKey, kp.SecretKey)
//	if errors.Is(err, sealedbox.ErrAuthenticationFailed) {
//	    // tampered, truncated or sealed to another key
//	}
//
// Keys and boxes are raw bytes; use Encode and Decode to move them across
// text-only boundaries.
package sealedbox
