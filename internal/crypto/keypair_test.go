package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestGenerateKeypair(t *testing.T) {
	kp, err := GenerateKeypair(nil)
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	if len(kp.PublicKey) != PublicKeySize {
		t.Errorf("PublicKey size = %d, want %d", len(kp.PublicKey), PublicKeySize)
	}

	if len(kp.SecretKey) != SecretKeySize {
		t.Errorf("SecretKey size = %d, want %d", len(kp.SecretKey), SecretKeySize)
	}

	decoded, err := FromBase64(kp.PublicKeyB64)
	if err != nil {
		t.Fatalf("FromBase64() error = %v", err)
	}
	if !bytes.Equal(decoded, kp.PublicKey) {
		t.Error("PublicKeyB64 does not decode to PublicKey")
	}

	if !ValidateKeypair(kp) {
		t.Error("ValidateKeypair() = false for a fresh keypair")
	}
}

func TestGenerateKeypair_Uniqueness(t *testing.T) {
	kp1, err := GenerateKeypair(nil)
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	kp2, err := GenerateKeypair(nil)
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	if bytes.Equal(kp1.PublicKey, kp2.PublicKey) {
		t.Error("Generated keypairs have identical public keys")
	}

	if bytes.Equal(kp1.SecretKey, kp2.SecretKey) {
		t.Error("Generated keypairs have identical secret keys")
	}
}

func TestGenerateKeypair_RandomSourceFailure(t *testing.T) {
	_, err := GenerateKeypair(failingReader{})
	if !errors.Is(err, ErrRandomSource) {
		t.Errorf("expected ErrRandomSource, got %v", err)
	}
}

func TestGenerateKeypair_PackageReader(t *testing.T) {
	restore := SetRandReaderForTesting(bytes.NewReader(bytes.Repeat([]byte{0x42}, 64)))
	kp1, err := GenerateKeypair(nil)
	restore()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	restore = SetRandReaderForTesting(bytes.NewReader(bytes.Repeat([]byte{0x42}, 64)))
	kp2, err := GenerateKeypair(nil)
	restore()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	if !bytes.Equal(kp1.SecretKey, kp2.SecretKey) {
		t.Error("same random stream produced different secret keys")
	}
}

func TestKeypairFromSecretKey(t *testing.T) {
	original, err := GenerateKeypair(nil)
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	reconstructed, err := KeypairFromSecretKey(original.SecretKey)
	if err != nil {
		t.Fatalf("KeypairFromSecretKey() error = %v", err)
	}

	if !bytes.Equal(original.PublicKey, reconstructed.PublicKey) {
		t.Error("Reconstructed public key does not match original")
	}

	if !bytes.Equal(original.SecretKey, reconstructed.SecretKey) {
		t.Error("Reconstructed secret key does not match original")
	}

	if original.PublicKeyB64 != reconstructed.PublicKeyB64 {
		t.Errorf("PublicKeyB64 mismatch: got %s, want %s", reconstructed.PublicKeyB64, original.PublicKeyB64)
	}
}

func TestKeypairFromSecretKey_RFC7748(t *testing.T) {
	secret, _ := hex.DecodeString(kat25519AliceSecret)

	kp, err := KeypairFromSecretKey(secret)
	if err != nil {
		t.Fatalf("KeypairFromSecretKey() error = %v", err)
	}

	if got := hex.EncodeToString(kp.PublicKey); got != kat25519AlicePublic {
		t.Errorf("PublicKey = %s, want %s", got, kat25519AlicePublic)
	}
}

func TestKeypairFromSecretKey_InvalidSize(t *testing.T) {
	tests := []struct {
		name string
		key  []byte
	}{
		{"empty", []byte{}},
		{"too short", []byte("too short")},
		{"one byte short", make([]byte, SecretKeySize-1)},
		{"one byte long", make([]byte, SecretKeySize+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := KeypairFromSecretKey(tt.key)
			if !errors.Is(err, ErrInvalidSecretKeySize) {
				t.Errorf("expected ErrInvalidSecretKeySize, got %v", err)
			}
		})
	}
}

func TestNewKeypairFromBytes(t *testing.T) {
	original, err := GenerateKeypair(nil)
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	kp, err := NewKeypairFromBytes(original.PublicKey, original.SecretKey)
	if err != nil {
		t.Fatalf("NewKeypairFromBytes() error = %v", err)
	}

	if !bytes.Equal(kp.PublicKey, original.PublicKey) {
		t.Error("PublicKey mismatch")
	}

	if !bytes.Equal(kp.SecretKey, original.SecretKey) {
		t.Error("SecretKey mismatch")
	}

	// The keypair owns its own copy.
	original.SecretKey[0] ^= 0xff
	if bytes.Equal(kp.SecretKey, original.SecretKey) {
		t.Error("NewKeypairFromBytes() aliases the caller's secret key")
	}
}

func TestNewKeypairFromBytes_InvalidSecretKeySize(t *testing.T) {
	_, err := NewKeypairFromBytes(make([]byte, PublicKeySize), []byte("short"))
	if !errors.Is(err, ErrInvalidSecretKeySize) {
		t.Errorf("expected ErrInvalidSecretKeySize, got %v", err)
	}
}

func TestNewKeypairFromBytes_InvalidPublicKeySize(t *testing.T) {
	_, err := NewKeypairFromBytes([]byte("short"), make([]byte, SecretKeySize))
	if !errors.Is(err, ErrInvalidPublicKeySize) {
		t.Errorf("expected ErrInvalidPublicKeySize, got %v", err)
	}
}

func TestNewKeypairFromBytes_BothInvalidReportsPublic(t *testing.T) {
	_, err := NewKeypairFromBytes(nil, nil)
	if !errors.Is(err, ErrInvalidPublicKeySize) {
		t.Errorf("expected ErrInvalidPublicKeySize, got %v", err)
	}
}

func TestValidateKeypair(t *testing.T) {
	kp, err := GenerateKeypair(nil)
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}
	other, err := GenerateKeypair(nil)
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	tests := []struct {
		name    string
		keypair *Keypair
		want    bool
	}{
		{"valid", kp, true},
		{"nil", nil, false},
		{"empty", &Keypair{}, false},
		{"short public key", &Keypair{PublicKey: kp.PublicKey[:31], SecretKey: kp.SecretKey, PublicKeyB64: kp.PublicKeyB64}, false},
		{"short secret key", &Keypair{PublicKey: kp.PublicKey, SecretKey: kp.SecretKey[:31], PublicKeyB64: kp.PublicKeyB64}, false},
		{"stale base64", &Keypair{PublicKey: kp.PublicKey, SecretKey: kp.SecretKey, PublicKeyB64: other.PublicKeyB64}, false},
		{"mismatched keys", &Keypair{PublicKey: other.PublicKey, SecretKey: kp.SecretKey, PublicKeyB64: other.PublicKeyB64}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateKeypair(tt.keypair); got != tt.want {
				t.Errorf("ValidateKeypair() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	kp, err := GenerateKeypair(nil)
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	fp1, err := Fingerprint(kp.PublicKey)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}
	fp2, _ := Fingerprint(kp.PublicKey)

	if fp1 != fp2 {
		t.Errorf("Fingerprint() not stable: %s != %s", fp1, fp2)
	}
	if len(fp1) != FingerprintSize*2 {
		t.Errorf("Fingerprint() length = %d, want %d", len(fp1), FingerprintSize*2)
	}
	if strings.ToLower(fp1) != fp1 {
		t.Errorf("Fingerprint() = %s, want lowercase hex", fp1)
	}

	if _, err := Fingerprint(kp.PublicKey[:10]); !errors.Is(err, ErrInvalidPublicKeySize) {
		t.Errorf("expected ErrInvalidPublicKeySize, got %v", err)
	}
}

func TestKeypair_Zeroize(t *testing.T) {
	kp, err := GenerateKeypair(nil)
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	kp.Zeroize()

	if !bytes.Equal(kp.SecretKey, make([]byte, SecretKeySize)) {
		t.Error("Zeroize() left secret key bytes behind")
	}

	var nilKeypair *Keypair
	nilKeypair.Zeroize()
}

func TestKeySizeError_Message(t *testing.T) {
	err := &KeySizeError{Key: "secret", Got: 3, Want: SecretKeySize}

	if got, want := err.Error(), "invalid secret key size: got 3, want 32"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if errors.Is(err, ErrInvalidPublicKeySize) {
		t.Error("secret key error matches ErrInvalidPublicKeySize")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func BenchmarkGenerateKeypair(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := GenerateKeypair(nil)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKeypairFromSecretKey(b *testing.B) {
	kp, _ := GenerateKeypair(nil)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := KeypairFromSecretKey(kp.SecretKey)
		if err != nil {
			b.Fatal(err)
		}
	}
}
