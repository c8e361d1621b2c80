package sealedbox

import (
	"context"
	"io"

	"github.com/vaultsandbox/sealedbox-go/internal/crypto"
	"github.com/vaultsandbox/sealedbox-go/internal/tracing"
)

const (
	// PublicKeySize is the length of a public key in bytes.
	PublicKeySize = crypto.PublicKeySize
	// SecretKeySize is the length of a secret key in bytes.
	SecretKeySize = crypto.SecretKeySize
	// Overhead is the number of bytes a sealed box adds to its message.
	Overhead = crypto.SealOverhead

	// Ciphersuite names the primitives behind a sealed box.
	Ciphersuite = crypto.Ciphersuite
)

// Codec seals and opens boxes. It holds only immutable configuration and is
// safe for concurrent use.
type Codec struct {
	tracer tracing.Tracer
	rand   io.Reader
}

// New creates a Codec.
func New(opts ...Option) *Codec {
	cfg := codecConfig{
		tracer: tracing.NewOTel(nil),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Codec{
		tracer: cfg.tracer,
		rand:   cfg.rand,
	}
}

var defaultCodec = New()

// GenerateKeypair creates a fresh keypair. It panics with a *FatalError if
// the random source fails.
func (c *Codec) GenerateKeypair(ctx context.Context) *Keypair {
	_, end := c.tracer.Start(ctx, tracing.SpanKeygen)

	kp, err := crypto.GenerateKeypair(c.rand)
	if err != nil {
		err = wrapError("generate keypair", err)
		end(err)
		panic(err)
	}
	end(nil)

	return &Keypair{PublicKey: kp.PublicKey, SecretKey: kp.SecretKey}
}

// Seal encrypts message to recipientPublicKey. The result is the ephemeral
// public key followed by the ciphertext and tag; sealing the same message
// twice gives different boxes.
//
// It returns a *KeyError matching ErrInvalidPublicKey if the key is not
// PublicKeySize bytes, and panics with a *FatalError if the random source
// fails.
func (c *Codec) Seal(ctx context.Context, message, recipientPublicKey []byte) ([]byte, error) {
	_, end := c.tracer.Start(ctx, tracing.SpanSeal, tracing.AttrMessageSize.Int(len(message)))

	sealed, err := crypto.Seal(message, recipientPublicKey, c.rand)
	if err != nil {
		err = wrapError("seal", err)
		end(err)
		return nil, mustNotBeFatal(err)
	}
	end(nil)

	return sealed, nil
}

// Open decrypts sealedBox with the recipient's keypair.
//
// Key lengths are checked first, public key then secret key, each failing
// with its own *KeyError. Any other failure returns ErrAuthenticationFailed
// itself, whatever the cause.
func (c *Codec) Open(ctx context.Context, sealedBox, recipientPublicKey, recipientSecretKey []byte) ([]byte, error) {
	_, end := c.tracer.Start(ctx, tracing.SpanOpen, tracing.AttrBoxSize.Int(len(sealedBox)))

	message, err := crypto.Open(sealedBox, recipientPublicKey, recipientSecretKey)
	if err != nil {
		err = wrapError("open", err)
		end(err)
		return nil, err
	}
	end(nil)

	return message, nil
}

// GenerateKeypair creates a fresh keypair. It panics with a *FatalError if
// the random source fails.
func GenerateKeypair() *Keypair {
	return defaultCodec.GenerateKeypair(context.Background())
}

// Seal encrypts message to recipientPublicKey. See Codec.Seal.
func Seal(message, recipientPublicKey []byte) ([]byte, error) {
	return defaultCodec.Seal(context.Background(), message, recipientPublicKey)
}

// Open decrypts sealedBox with the recipient's keypair. See Codec.Open.
func Open(sealedBox, recipientPublicKey, recipientSecretKey []byte) ([]byte, error) {
	return defaultCodec.Open(context.Background(), sealedBox, recipientPublicKey, recipientSecretKey)
}

// EnsureInit runs the one-time library self-test: a random source probe, an
// X25519 known-answer test and a seal/open round trip. It is safe to call
// from many goroutines; the first call does the work and the rest return
// its result. Call it once at startup. The other functions do not require
// it.
func EnsureInit() error {
	return wrapError("init", crypto.EnsureInit())
}
