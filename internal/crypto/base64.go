package crypto

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Variant selects a base64 alphabet and padding rule. The values mirror the
// libsodium variants so text produced elsewhere can be decoded here.
type Variant int

const (
	// VariantOriginal is the standard alphabet with padding (RFC 4648 §4).
	VariantOriginal Variant = iota + 1
	// VariantOriginalNoPadding is the standard alphabet without padding.
	VariantOriginalNoPadding
	// VariantURLSafe is the URL-safe alphabet with padding (RFC 4648 §5).
	VariantURLSafe
	// VariantURLSafeNoPadding is the URL-safe alphabet without padding.
	VariantURLSafeNoPadding
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantOriginal:
		return "original"
	case VariantOriginalNoPadding:
		return "original-no-padding"
	case VariantURLSafe:
		return "urlsafe"
	case VariantURLSafeNoPadding:
		return "urlsafe-no-padding"
	default:
		return "unknown"
	}
}

// ParseVariant parses a variant name as returned by Variant.String.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "original", "standard", "":
		return VariantOriginal, nil
	case "original-no-padding":
		return VariantOriginalNoPadding, nil
	case "urlsafe":
		return VariantURLSafe, nil
	case "urlsafe-no-padding":
		return VariantURLSafeNoPadding, nil
	default:
		return 0, ErrInvalidVariant
	}
}

func (v Variant) encoding() (*base64.Encoding, error) {
	switch v {
	case VariantOriginal:
		return base64.StdEncoding.Strict(), nil
	case VariantOriginalNoPadding:
		return base64.RawStdEncoding.Strict(), nil
	case VariantURLSafe:
		return base64.URLEncoding.Strict(), nil
	case VariantURLSafeNoPadding:
		return base64.RawURLEncoding.Strict(), nil
	default:
		return nil, ErrInvalidVariant
	}
}

// ToBase64 encodes bytes to standard base64 with padding.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes canonical standard base64 with padding. Line breaks,
// missing or extra padding and non-zero trailing bits are all rejected.
func FromBase64(s string) ([]byte, error) {
	return DecodeVariant(s, VariantOriginal)
}

// EncodeVariant encodes bytes with the given variant.
func EncodeVariant(data []byte, v Variant) (string, error) {
	enc, err := v.encoding()
	if err != nil {
		return "", err
	}
	return enc.EncodeToString(data), nil
}

// DecodeVariant decodes text written in the given variant.
func DecodeVariant(s string, v Variant) ([]byte, error) {
	enc, err := v.encoding()
	if err != nil {
		return nil, err
	}

	// encoding/base64 silently skips CR and LF; canonical text has neither.
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, &CorruptEncodingError{Offset: int64(i)}
	}

	data, err := enc.DecodeString(s)
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, &CorruptEncodingError{Offset: int64(corrupt)}
		}
		return nil, &CorruptEncodingError{}
	}

	return data, nil
}
