package sealedbox

import (
	"fmt"
	"time"

	"github.com/vaultsandbox/sealedbox-go/internal/crypto"
)

// ExportVersion is the current export format version.
const ExportVersion = 1

// Keypair is a recipient's public and secret key, generated together.
// The secret key must stay in the owning process; never log it.
type Keypair struct {
	PublicKey []byte
	SecretKey []byte
}

// NewKeypair builds a keypair from raw bytes, checking the public key
// length, then the secret key length, then that the two belong together.
func NewKeypair(publicKey, secretKey []byte) (*Keypair, error) {
	kp, err := crypto.NewKeypairFromBytes(publicKey, secretKey)
	if err != nil {
		return nil, wrapError("new keypair", err)
	}
	if !crypto.ValidateKeypair(kp) {
		return nil, ErrKeypairMismatch
	}
	return &Keypair{PublicKey: kp.PublicKey, SecretKey: kp.SecretKey}, nil
}

// KeypairFromSecretKey rebuilds a keypair by recomputing the public key.
func KeypairFromSecretKey(secretKey []byte) (*Keypair, error) {
	kp, err := crypto.KeypairFromSecretKey(secretKey)
	if err != nil {
		return nil, wrapError("keypair from secret key", err)
	}
	return &Keypair{PublicKey: kp.PublicKey, SecretKey: kp.SecretKey}, nil
}

// PublicKeyBase64 returns the public key in standard padded base64, the form
// services such as GitHub publish repository keys in.
func (k *Keypair) PublicKeyBase64() string {
	return crypto.ToBase64(k.PublicKey)
}

// Fingerprint returns a short hex identifier for the public key.
func (k *Keypair) Fingerprint() string {
	fp, err := crypto.Fingerprint(k.PublicKey)
	if err != nil {
		return ""
	}
	return fp
}

// Fingerprint returns a short hex identifier for a public key: the first 16
// bytes of its BLAKE2b-256 digest.
func Fingerprint(publicKey []byte) (string, error) {
	fp, err := crypto.Fingerprint(publicKey)
	if err != nil {
		return "", wrapError("fingerprint", err)
	}
	return fp, nil
}

// Open decrypts a box sealed to this keypair.
func (k *Keypair) Open(sealedBox []byte) ([]byte, error) {
	return Open(sealedBox, k.PublicKey, k.SecretKey)
}

// Zeroize overwrites the secret key. The keypair cannot open boxes afterwards.
func (k *Keypair) Zeroize() {
	if k == nil {
		return
	}
	crypto.Zeroize(k.SecretKey)
}

// ExportedKeypair is the JSON form of a keypair.
// WARNING: unless produced by ExportPublic, it contains the secret key.
type ExportedKeypair struct {
	// Version is the export format version. MUST be 1.
	Version int `json:"version"`
	// PublicKey is the public key (standard base64, 32 bytes decoded).
	PublicKey string `json:"publicKey"`
	// SecretKey is the secret key (standard base64, 32 bytes decoded).
	// Empty for public-only exports.
	SecretKey string `json:"secretKey,omitempty"`
	// Fingerprint is informational; it is recomputed on import.
	Fingerprint string `json:"fingerprint,omitempty"`
	// ExportedAt is the export timestamp (RFC 3339). Informational only.
	ExportedAt time.Time `json:"exportedAt"`
}

// Validate checks that the exported data is well formed and, when a secret
// key is present, that the public key belongs to it.
func (e *ExportedKeypair) Validate() error {
	if e.Version != ExportVersion {
		return fmt.Errorf("%w: unsupported version %d, expected %d", ErrInvalidImportData, e.Version, ExportVersion)
	}

	if e.PublicKey == "" {
		return fmt.Errorf("%w: publicKey is required", ErrInvalidImportData)
	}
	publicKey, err := crypto.FromBase64(e.PublicKey)
	if err != nil {
		return fmt.Errorf("%w: invalid publicKey encoding", ErrInvalidImportData)
	}
	if len(publicKey) != PublicKeySize {
		return fmt.Errorf("%w: publicKey size %d, expected %d", ErrInvalidImportData, len(publicKey), PublicKeySize)
	}

	if e.SecretKey == "" {
		return nil
	}

	// Size and mismatch errors below never include key bytes.
	secretKey, err := crypto.FromBase64(e.SecretKey)
	if err != nil {
		return fmt.Errorf("%w: invalid secretKey encoding", ErrInvalidImportData)
	}
	defer crypto.Zeroize(secretKey)
	if len(secretKey) != SecretKeySize {
		return fmt.Errorf("%w: secretKey size %d, expected %d", ErrInvalidImportData, len(secretKey), SecretKeySize)
	}

	kp, _ := crypto.NewKeypairFromBytes(publicKey, secretKey)
	defer kp.Zeroize()
	if !crypto.ValidateKeypair(kp) {
		return fmt.Errorf("%w: %w", ErrInvalidImportData, ErrKeypairMismatch)
	}

	return nil
}

// HasSecretKey reports whether the export carries a secret key.
func (e *ExportedKeypair) HasSecretKey() bool {
	return e.SecretKey != ""
}

// Export returns exportable keypair data including the secret key.
func (k *Keypair) Export() *ExportedKeypair {
	exported := k.ExportPublic()
	exported.SecretKey = crypto.ToBase64(k.SecretKey)
	return exported
}

// ExportPublic returns exportable data without the secret key, suitable for
// handing to senders.
func (k *Keypair) ExportPublic() *ExportedKeypair {
	return &ExportedKeypair{
		Version:     ExportVersion,
		PublicKey:   crypto.ToBase64(k.PublicKey),
		Fingerprint: k.Fingerprint(),
		ExportedAt:  time.Now().UTC(),
	}
}

// ImportKeypair reconstructs a keypair from exported data. The export must
// carry a secret key; use ImportPublicKey for public-only exports.
func ImportKeypair(data *ExportedKeypair) (*Keypair, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if !data.HasSecretKey() {
		return nil, fmt.Errorf("%w: secretKey is required", ErrInvalidImportData)
	}

	// Validate() already verified these are valid base64 with correct sizes
	publicKey, _ := crypto.FromBase64(data.PublicKey)
	secretKey, _ := crypto.FromBase64(data.SecretKey)

	return &Keypair{PublicKey: publicKey, SecretKey: secretKey}, nil
}

// ImportPublicKey returns the raw public key from exported data, with or
// without a secret key present.
func ImportPublicKey(data *ExportedKeypair) ([]byte, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	publicKey, _ := crypto.FromBase64(data.PublicKey)
	return publicKey, nil
}
