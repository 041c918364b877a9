// Package credentialcrypt implements authenticated encryption and
// decryption of short credentials, with length-hiding padding so that
// any two plaintexts shorter than PadLen encrypt to ciphertexts of
// identical length.
//
// This wrapper is proprietary to this implementation; it is not part
// of the upstream master-password algorithm.
package credentialcrypt

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// NonceLen is the length, in bytes, of the ChaCha20-Poly1305 nonce.
	NonceLen = 12
	// TagLen is the length, in bytes, of the ChaCha20-Poly1305 tag.
	TagLen = 16
	// PadLen is the padded length chosen to match the longest
	// generated password, so short credentials reveal no length.
	PadLen = 20
	// KeyLen is the number of master-key bytes used as the AEAD key.
	KeyLen = 32
)

// ErrAuthenticationFailed is returned by Decrypt when the buffer fails
// to authenticate: a corrupted buffer, tampering, or a wrong key.
var ErrAuthenticationFailed = errors.New("credentialcrypt: authentication failed")

// paddedLen returns max(n+1, PadLen): a plaintext of length n always
// grows by at least one byte (the trailing zero marker), even when
// n >= PadLen. This preserves wire compatibility with the upstream
// padding formula; it is not a bug.
func paddedLen(n int) int {
	if n+1 > PadLen {
		return n + 1
	}
	return PadLen
}

// MinBufferLen returns the minimum working-buffer length required to
// encrypt a plaintext of length n: nonce + padded plaintext + tag.
func MinBufferLen(n int) int {
	return paddedLen(n) + NonceLen + TagLen
}

// pad fills buf[n:paddedLen(n)] with the padding scheme: if n < PadLen,
// every pad byte is set to PadLen-n; otherwise a single trailing zero
// marker is appended at position n. buf must have length paddedLen(n).
func pad(buf []byte, n int) {
	padded := paddedLen(n)
	if n < PadLen {
		marker := byte(PadLen - n)
		for i := n; i < padded; i++ {
			buf[i] = marker
		}
		return
	}
	buf[n] = 0
}

// unpad strips the padding scheme's trailing bytes from a padded
// plaintext, returning the original plaintext as a subslice of buf.
func unpad(buf []byte) []byte {
	if len(buf) == 0 {
		panic("credentialcrypt: cannot unpad empty buffer")
	}
	marker := buf[len(buf)-1]
	if marker == 0 {
		return buf[:len(buf)-1]
	}
	return buf[:len(buf)-int(marker)]
}

// Encrypt seals plaintext into buf using a key derived from the first
// KeyLen bytes of masterKey. buf must be at least MinBufferLen(len(plaintext))
// bytes; Encrypt uses exactly that many bytes of buf, laid out as
// [nonce | padded-plaintext-ciphertext | tag].
//
// CSPRNG failure while generating the nonce is fatal, matching the
// teacher's treatment of crypto/rand failures as unrecoverable.
func Encrypt(plaintext []byte, masterKey []byte, buf []byte) error {
	n := len(plaintext)
	min := MinBufferLen(n)
	if len(buf) < min {
		panic("credentialcrypt: buffer smaller than MinBufferLen")
	}
	buf = buf[:min]

	nonce := buf[:NonceLen]
	if _, err := rand.Read(nonce); err != nil {
		log.Panic("credentialcrypt: reading nonce: ", err)
	}

	padded := paddedLen(n)
	plain := buf[NonceLen : NonceLen+padded]
	copy(plain, plaintext)
	pad(plain, n)

	aead, err := chacha20poly1305.New(masterKey[:KeyLen])
	if err != nil {
		return fmt.Errorf("credentialcrypt: %w", err)
	}
	aead.Seal(plain[:0], nonce, plain, nil)
	return nil
}

// Decrypt opens a buffer previously produced by Encrypt, using a key
// derived from the first KeyLen bytes of masterKey, and returns the
// original plaintext as a borrow into buf. Authentication failure is
// fatal to the caller: there is no retry.
func Decrypt(masterKey []byte, buf []byte) ([]byte, error) {
	if len(buf) < NonceLen+TagLen {
		return nil, fmt.Errorf("credentialcrypt: buffer too short to contain nonce and tag")
	}

	nonce := buf[:NonceLen]
	sealed := buf[NonceLen:]

	aead, err := chacha20poly1305.New(masterKey[:KeyLen])
	if err != nil {
		return nil, fmt.Errorf("credentialcrypt: %w", err)
	}

	padded, err := aead.Open(sealed[:0], nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return unpad(padded), nil
}
