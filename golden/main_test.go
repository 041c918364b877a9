package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveVectorMatchesKnownAnswer(t *testing.T) {
	v, err := deriveVector("John Doe", "password", "google.com", "")
	assert.NoError(t, err)
	assert.Equal(t, "╔░╝⌚", v.Identicon)
	assert.Equal(t, "QubnJuvaMoke2~", v.SitePassword)
}

func TestDeriveVectorUnicodeFullName(t *testing.T) {
	v, err := deriveVector("Max Müller", "passwort", "de.wikipedia.org", "")
	assert.NoError(t, err)
	assert.Equal(t, "═▒╝♚", v.Identicon)
	assert.Equal(t, "DaknJezb6,Zula", v.SitePassword)
}

func TestDeriveVectorIdenticonOnlyWhenSiteNameEmpty(t *testing.T) {
	v, err := deriveVector("John Doe", "password", "", "")
	assert.NoError(t, err)
	assert.Equal(t, "╔░╝⌚", v.Identicon)
	assert.Empty(t, v.SitePassword)
}

func TestDeriveVectorDeterministic(t *testing.T) {
	v1, err := deriveVector("Zhang Wei", "password", "山东大学.cn", "")
	assert.NoError(t, err)
	v2, err := deriveVector("Zhang Wei", "password", "山东大学.cn", "")
	assert.NoError(t, err)
	assert.Equal(t, v1, v2)
}
