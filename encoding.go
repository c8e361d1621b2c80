package sealedbox

import "github.com/vaultsandbox/sealedbox-go/internal/crypto"

// Variant selects a base64 alphabet and padding rule.
type Variant = crypto.Variant

// Base64 variants, matching libsodium's.
const (
	VariantOriginal          = crypto.VariantOriginal
	VariantOriginalNoPadding = crypto.VariantOriginalNoPadding
	VariantURLSafe           = crypto.VariantURLSafe
	VariantURLSafeNoPadding  = crypto.VariantURLSafeNoPadding
)

// ParseVariant parses a variant name such as "original" or "urlsafe-no-padding".
func ParseVariant(s string) (Variant, error) {
	v, err := crypto.ParseVariant(s)
	return v, wrapError("parse variant", err)
}

// Encode returns the standard, padded base64 form of data.
func Encode(data []byte) string {
	return crypto.ToBase64(data)
}

// Decode parses standard, padded base64. It is strict: characters outside
// the alphabet, line breaks, wrong padding and non-canonical trailing bits
// fail with an *EncodingError matching ErrInvalidEncoding.
func Decode(s string) ([]byte, error) {
	data, err := crypto.FromBase64(s)
	if err != nil {
		return nil, wrapError("decode", err)
	}
	return data, nil
}

// EncodeVariant encodes data with the given variant.
func EncodeVariant(data []byte, v Variant) (string, error) {
	s, err := crypto.EncodeVariant(data, v)
	if err != nil {
		return "", wrapError("encode", err)
	}
	return s, nil
}

// DecodeVariant decodes text written in the given variant.
func DecodeVariant(s string, v Variant) ([]byte, error) {
	data, err := crypto.DecodeVariant(s, v)
	if err != nil {
		return nil, wrapError("decode", err)
	}
	return data, nil
}
