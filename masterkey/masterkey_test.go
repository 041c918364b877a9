package masterkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForUserJohnDoeVector(t *testing.T) {
	key, err := ForUser([]byte("John Doe"), []byte("password"))
	assert.NoError(t, err)
	defer key.Release()

	expected := []byte{
		27, 177, 181, 88, 106, 115, 177, 174, 150, 213, 214, 9, 53, 44, 141,
		132, 20, 254, 89, 228, 224, 58, 95, 52, 226, 174, 130, 64, 244, 84, 216,
		6, 136, 210, 95, 208, 201, 115, 81, 48, 112, 177, 183, 129, 50, 44, 115,
		10, 86, 114, 44, 225, 160, 170, 250, 210, 194, 87, 12, 220, 20, 36, 120,
		232,
	}
	assert.Equal(t, expected, key.Bytes())
}

func TestForUserDeterministic(t *testing.T) {
	a, err := ForUser([]byte("Max Müller"), []byte("passwort"))
	assert.NoError(t, err)
	defer a.Release()

	b, err := ForUser([]byte("Max Müller"), []byte("passwort"))
	assert.NoError(t, err)
	defer b.Release()

	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestForUserLength(t *testing.T) {
	key, err := ForUser([]byte("Zhang Wei"), []byte("password"))
	assert.NoError(t, err)
	defer key.Release()

	assert.Len(t, key.Bytes(), 64)
}
