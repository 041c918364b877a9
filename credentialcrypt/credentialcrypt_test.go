package credentialcrypt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func allOnesKey() []byte {
	key := make([]byte, 64)
	for i := range key {
		key[i] = 1
	}
	return key
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := allOnesKey()
	plaintext := []byte("This is a secret.")

	buf := make([]byte, MinBufferLen(len(plaintext)))
	assert.NoError(t, Encrypt(plaintext, key, buf))

	got, err := Decrypt(key, buf)
	assert.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestEncryptDecryptAllLengths(t *testing.T) {
	key := allOnesKey()
	for n := 0; n <= 4096; n++ {
		plaintext := bytes.Repeat([]byte{byte(n % 256)}, n)
		buf := make([]byte, MinBufferLen(n))
		assert.NoError(t, Encrypt(plaintext, key, buf))

		got, err := Decrypt(key, buf)
		assert.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestLengthHidingForShortPlaintexts(t *testing.T) {
	shortLen := MinBufferLen(3)
	longLen := MinBufferLen(19)
	assert.Equal(t, shortLen, longLen, "any two plaintexts shorter than PadLen must produce equal-length ciphertexts")
}

func TestPaddedLenGrowsPastPadLen(t *testing.T) {
	// spec.md §9: padded_len = max(n+1, PAD_LEN), so plaintexts of
	// length >= PAD_LEN still grow by one byte.
	assert.Equal(t, PadLen+1, paddedLen(PadLen))
	assert.Equal(t, PadLen+2, paddedLen(PadLen+1))
}

func TestPadVector(t *testing.T) {
	buf := make([]byte, 20)
	copy(buf, []byte{1, 2, 3, 4, 5})
	pad(buf, 5)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, buf[:5])
	for _, b := range buf[5:] {
		assert.Equal(t, byte(15), b)
	}

	got := unpad(buf)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, got)
}

func TestPadVectorAtAndPastPadLen(t *testing.T) {
	for _, n := range []int{PadLen, PadLen + 1} {
		buf := bytes.Repeat([]byte{100}, n+1)
		pad(buf, n)
		assert.Equal(t, byte(0), buf[n])
		for _, b := range buf[:n] {
			assert.Equal(t, byte(100), b)
		}

		got := unpad(buf)
		assert.Equal(t, bytes.Repeat([]byte{100}, n), got)
	}
}

func TestDecryptFailsOnTamperedBuffer(t *testing.T) {
	key := allOnesKey()
	plaintext := []byte("tamper me")
	buf := make([]byte, MinBufferLen(len(plaintext)))
	assert.NoError(t, Encrypt(plaintext, key, buf))

	buf[len(buf)-1] ^= 0xFF

	_, err := Decrypt(key, buf)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestDecryptFailsOnWrongKey(t *testing.T) {
	key := allOnesKey()
	plaintext := []byte("secret")
	buf := make([]byte, MinBufferLen(len(plaintext)))
	assert.NoError(t, Encrypt(plaintext, key, buf))

	wrongKey := make([]byte, 64)
	_, err := Decrypt(wrongKey, buf)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestEncryptPanicsOnUndersizedBuffer(t *testing.T) {
	key := allOnesKey()
	assert.Panics(t, func() {
		_ = Encrypt([]byte("too long for this buffer"), key, make([]byte, 4))
	})
}
