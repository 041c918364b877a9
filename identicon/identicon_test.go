package identicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForJohnDoe(t *testing.T) {
	assert.Equal(t, "╔░╝⌚", For([]byte("John Doe"), []byte("password")))
}

func TestForUnicodeUserName(t *testing.T) {
	assert.Equal(t, "═▒╝♚", For([]byte("Max Müller"), []byte("passwort")))
}

func TestForZhangWei(t *testing.T) {
	assert.Equal(t, "╔░╗◒", For([]byte("Zhang Wei"), []byte("password")))
}

func TestForDeterministic(t *testing.T) {
	a := For([]byte("Jane Doe"), []byte("hunter2"))
	b := For([]byte("Jane Doe"), []byte("hunter2"))
	assert.Equal(t, a, b)
}

func TestForFourGlyphs(t *testing.T) {
	id := For([]byte("Someone"), []byte("secret"))
	count := 0
	for range id {
		count++
	}
	assert.Equal(t, 4, count)
}
