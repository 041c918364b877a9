// Package sitecrypt implements site-credential derivation: salt
// construction, a keyed MAC over that salt, and template application to
// turn the resulting seed into a site-specific credential.
package sitecrypt

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/scode/masterpassword/secretbuf"
	"github.com/scode/masterpassword/sitetype"
	"github.com/scode/masterpassword/template"
)

// ErrSiteNameTooLong is returned when the site name exceeds 2^32-1 bytes.
var ErrSiteNameTooLong = errors.New("sitecrypt: site name too long")

// ErrSiteContextTooLong is returned when the context exceeds 2^32-1 bytes.
var ErrSiteContextTooLong = errors.New("sitecrypt: site context too long")

// randomSeedLen is the length of the seed used by RandomPassword: one
// byte to select a template plus the 20-byte maximum template length.
const randomSeedLen = 21

// PasswordForSite derives a site-specific credential from masterKey and
// the given site parameters.
//
// Calling this with typ == sitetype.Stored is a programming error: a
// stored credential is decrypted via credentialcrypt, not derived here.
func PasswordForSite(
	masterKey []byte,
	name []byte,
	typ sitetype.SiteType,
	counter uint32,
	variant sitetype.SiteVariant,
	context []byte,
) (*secretbuf.Buffer, error) {
	if typ == sitetype.Stored {
		panic("sitecrypt: PasswordForSite called with Stored site type")
	}
	if uint64(len(name)) > math.MaxUint32 {
		return nil, ErrSiteNameTooLong
	}
	if uint64(len(context)) > math.MaxUint32 {
		return nil, ErrSiteContextTooLong
	}

	salt := siteSalt(name, counter, variant, context)

	mac := hmac.New(sha256.New, masterKey)
	mac.Write(salt)
	seed := mac.Sum(nil)

	password, err := template.Encode(typ, seed)
	if err != nil {
		return nil, fmt.Errorf("sitecrypt: %w", err)
	}
	return secretbuf.NewFromString(password), nil
}

// siteSalt composes the site salt: scope(variant) || BE32(len(name)) ||
// name || BE32(counter) [|| BE32(len(context)) || context if context is
// non-empty]. A zero-length context elides both trailing fields; this
// is observable on the wire and must be preserved exactly.
func siteSalt(name []byte, counter uint32, variant sitetype.SiteVariant, context []byte) []byte {
	scope := variant.ScopeString()
	size := len(scope) + 4 + len(name) + 4
	if len(context) > 0 {
		size += 4 + len(context)
	}

	salt := make([]byte, 0, size)
	salt = append(salt, scope...)
	salt = appendBE32(salt, uint32(len(name)))
	salt = append(salt, name...)
	salt = appendBE32(salt, counter)
	if len(context) > 0 {
		salt = appendBE32(salt, uint32(len(context)))
		salt = append(salt, context...)
	}
	return salt
}

func appendBE32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// RandomPassword generates a credential of the given type from a fresh
// CSPRNG seed, for use when no master key is in hand (e.g. generating a
// random credential to later store via credentialcrypt).
func RandomPassword(typ sitetype.SiteType) (*secretbuf.Buffer, error) {
	if typ == sitetype.Stored {
		panic("sitecrypt: RandomPassword called with Stored site type")
	}

	seed := make([]byte, randomSeedLen)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("sitecrypt: reading random seed: %w", err)
	}

	password, err := template.Encode(typ, seed)
	if err != nil {
		return nil, fmt.Errorf("sitecrypt: %w", err)
	}
	return secretbuf.NewFromString(password), nil
}
