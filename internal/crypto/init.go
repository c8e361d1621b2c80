package crypto

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"github.com/cloudflare/circl/dh/x25519"
)

var (
	initOnce sync.Once
	initErr  error
)

// RFC 7748 §6.1 test vectors.
const (
	kat25519AliceSecret = "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a"
	kat25519AlicePublic = "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a"
	kat25519BobPublic   = "de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f"
	kat25519Shared      = "4a5d9d5ba4ce2de1728e3bf480350f25e07e21c947d19e3376f09b3c1e161742"
)

// EnsureInit runs the one-time library self-test. The first caller performs
// it and every caller, concurrent or later, receives the same result.
// Operations in this package work without it; it exists so a process can
// fail fast when its random source or primitives are broken.
func EnsureInit() error {
	initOnce.Do(func() {
		initErr = selfTest(reader(nil))
	})
	return initErr
}

func selfTest(rand io.Reader) error {
	probe := make([]byte, 32)
	if _, err := io.ReadFull(rand, probe); err != nil {
		return fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	if err := x25519KnownAnswer(); err != nil {
		return err
	}

	kp, err := GenerateKeypair(rand)
	if err != nil {
		return err
	}
	defer kp.Zeroize()

	sealed, err := Seal(probe, kp.PublicKey, rand)
	if err != nil {
		return err
	}
	opened, err := Open(sealed, kp.PublicKey, kp.SecretKey)
	if err != nil || !bytes.Equal(opened, probe) {
		return fmt.Errorf("%w: sealed box round trip", ErrSelfTest)
	}

	return nil
}

func x25519KnownAnswer() error {
	var secret, public, peer, shared x25519.Key
	mustDecodeHex(secret[:], kat25519AliceSecret)
	mustDecodeHex(peer[:], kat25519BobPublic)

	x25519.KeyGen(&public, &secret)
	if hex.EncodeToString(public[:]) != kat25519AlicePublic {
		return fmt.Errorf("%w: x25519 public key derivation", ErrSelfTest)
	}

	if !x25519.Shared(&shared, &secret, &peer) || hex.EncodeToString(shared[:]) != kat25519Shared {
		return fmt.Errorf("%w: x25519 shared secret", ErrSelfTest)
	}

	return nil
}

func mustDecodeHex(dst []byte, s string) {
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		panic("crypto: bad test vector: " + err.Error())
	}
}
