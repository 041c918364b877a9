package varmor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapUnwrapRoundTrip(t *testing.T) {
	for _, s := range []string{"", "test", "hello world", "\x00\x01\xff"} {
		got, err := Unwrap(Wrap([]byte(s)))
		assert.NoError(t, err)
		assert.Equal(t, []byte(s), got)
	}
}

func TestUnwrapRejectsInvalidBase64(t *testing.T) {
	_, err := Unwrap("not valid base64!!")
	assert.Error(t, err)
}

func TestWrapIsStandardPaddedBase64(t *testing.T) {
	// A single byte requires two padding characters under standard
	// Base64, distinguishing this from unpadded/URL-safe variants.
	assert.Equal(t, "AA==", Wrap([]byte{0}))
}
