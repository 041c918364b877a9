package sitecrypt

import (
	"testing"

	"github.com/scode/masterpassword/masterkey"
	"github.com/scode/masterpassword/sitetype"
	"github.com/stretchr/testify/assert"
)

func TestPasswordForSiteJohnDoeGoogle(t *testing.T) {
	key, err := masterkey.ForUser([]byte("John Doe"), []byte("password"))
	assert.NoError(t, err)
	defer key.Release()

	pw, err := PasswordForSite(key.Bytes(), []byte("google.com"), sitetype.Long, 1, sitetype.Password, nil)
	assert.NoError(t, err)
	defer pw.Release()

	assert.Equal(t, "QubnJuvaMoke2~", pw.String())
}

func TestPasswordForSiteUnicodeUserName(t *testing.T) {
	key, err := masterkey.ForUser([]byte("Max Müller"), []byte("passwort"))
	assert.NoError(t, err)
	defer key.Release()

	pw, err := PasswordForSite(key.Bytes(), []byte("de.wikipedia.org"), sitetype.Long, 1, sitetype.Password, nil)
	assert.NoError(t, err)
	defer pw.Release()

	assert.Equal(t, "DaknJezb6,Zula", pw.String())
}

func TestPasswordForSiteUnicodeSiteName(t *testing.T) {
	key, err := masterkey.ForUser([]byte("Zhang Wei"), []byte("password"))
	assert.NoError(t, err)
	defer key.Release()

	pw, err := PasswordForSite(key.Bytes(), []byte("山东大学.cn"), sitetype.Long, 1, sitetype.Password, nil)
	assert.NoError(t, err)
	defer pw.Release()

	assert.Equal(t, "ZajmGabl0~Zoza", pw.String())
}

func TestPasswordForSiteDeterministic(t *testing.T) {
	key, err := masterkey.ForUser([]byte("Jane Doe"), []byte("hunter2"))
	assert.NoError(t, err)
	defer key.Release()

	a, err := PasswordForSite(key.Bytes(), []byte("example.com"), sitetype.Maximum, 1, sitetype.Password, []byte("q1"))
	assert.NoError(t, err)
	defer a.Release()

	b, err := PasswordForSite(key.Bytes(), []byte("example.com"), sitetype.Maximum, 1, sitetype.Password, []byte("q1"))
	assert.NoError(t, err)
	defer b.Release()

	assert.Equal(t, a.String(), b.String())
}

func TestPasswordForSiteEmptyContextElidesFields(t *testing.T) {
	// An empty context must salt identically to a call that omits
	// context entirely (spec.md §4.5: "a zero-length context elides
	// both fields").
	key, err := masterkey.ForUser([]byte("Jane Doe"), []byte("hunter2"))
	assert.NoError(t, err)
	defer key.Release()

	withNil, err := PasswordForSite(key.Bytes(), []byte("example.com"), sitetype.Long, 1, sitetype.Password, nil)
	assert.NoError(t, err)
	defer withNil.Release()

	withEmpty, err := PasswordForSite(key.Bytes(), []byte("example.com"), sitetype.Long, 1, sitetype.Password, []byte{})
	assert.NoError(t, err)
	defer withEmpty.Release()

	assert.Equal(t, withNil.String(), withEmpty.String())
}

func TestPasswordForSiteCounterChangesOutput(t *testing.T) {
	key, err := masterkey.ForUser([]byte("Jane Doe"), []byte("hunter2"))
	assert.NoError(t, err)
	defer key.Release()

	one, err := PasswordForSite(key.Bytes(), []byte("example.com"), sitetype.Long, 1, sitetype.Password, nil)
	assert.NoError(t, err)
	defer one.Release()

	two, err := PasswordForSite(key.Bytes(), []byte("example.com"), sitetype.Long, 2, sitetype.Password, nil)
	assert.NoError(t, err)
	defer two.Release()

	assert.NotEqual(t, one.String(), two.String())
}

func TestPasswordForSiteStoredPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = PasswordForSite(make([]byte, 64), []byte("site"), sitetype.Stored, 1, sitetype.Password, nil)
	})
}

func TestRandomPasswordProducesNonEmptyOutput(t *testing.T) {
	pw, err := RandomPassword(sitetype.Long)
	assert.NoError(t, err)
	defer pw.Release()

	assert.NotEmpty(t, pw.String())
}

func TestRandomPasswordStoredPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = RandomPassword(sitetype.Stored)
	})
}

func TestRandomPasswordIsRandom(t *testing.T) {
	a, err := RandomPassword(sitetype.Maximum)
	assert.NoError(t, err)
	defer a.Release()

	b, err := RandomPassword(sitetype.Maximum)
	assert.NoError(t, err)
	defer b.Release()

	// Collision is astronomically unlikely for a 21-byte CSPRNG seed.
	assert.NotEqual(t, a.String(), b.String())
}
