// Package masterkey derives the 64-byte master key from a user's full
// name and master password via scrypt.
package masterkey

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/scode/masterpassword/secretbuf"
	"github.com/scode/masterpassword/sitetype"
	"golang.org/x/crypto/scrypt"
)

// ErrFullNameTooLong is returned when fullName exceeds 2^32-1 bytes.
var ErrFullNameTooLong = errors.New("masterkey: full name too long")

const (
	keyLen  = 64
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 2
)

// ForUser derives the 64-byte master key for (fullName, masterPassword).
//
// The salt is the concatenation of the Password-variant scope string
// (the master key is variant-independent), the big-endian 32-bit length
// of fullName, and fullName itself.
func ForUser(fullName []byte, masterPassword []byte) (*secretbuf.Buffer, error) {
	if uint64(len(fullName)) > math.MaxUint32 {
		return nil, ErrFullNameTooLong
	}

	salt := make([]byte, 0, len(sitetype.Password.ScopeString())+4+len(fullName))
	salt = append(salt, sitetype.Password.ScopeString()...)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(fullName)))
	salt = append(salt, lenBuf[:]...)
	salt = append(salt, fullName...)

	key, err := scrypt.Key(masterPassword, salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return nil, fmt.Errorf("masterkey: scrypt: %w", err)
	}

	return secretbuf.New(key), nil
}
