// Package varmor provides the Base64 codec used to carry the
// credentialcrypt ciphertext buffer inside a site descriptor's
// encrypted field.
//
// spec.md §6 pins the wire format as plain Base64 (standard alphabet,
// padding included) with no framing, so unlike the teacher's original
// saltybox1:-prefixed armor, Wrap/Unwrap here add no magic prefix or
// version byte.
package varmor

import (
	"encoding/base64"
	"fmt"
)

// Wrap encodes body as standard, padded Base64.
func Wrap(body []byte) string {
	return base64.StdEncoding.EncodeToString(body)
}

// Unwrap decodes a string produced by Wrap.
//
// Error conditions include malformed Base64 and truncated input.
func Unwrap(armored string) ([]byte, error) {
	body, err := base64.StdEncoding.DecodeString(armored)
	if err != nil {
		return nil, fmt.Errorf("varmor: base64 decoding failed: %w", err)
	}
	return body, nil
}
