// Package sitedesc implements the site descriptor: the boundary value
// object exchanged with the configuration layer, together with default
// resolution into the fully-populated form the core operates on.
package sitedesc

import (
	"errors"
	"fmt"

	"github.com/scode/masterpassword/sitetype"
	"github.com/scode/masterpassword/varmor"
)

// ErrNameRequired is returned when a Record has no site name.
var ErrNameRequired = errors.New("sitedesc: name is required")

// ErrStoredWithoutEncrypted is returned when a Record resolves to type
// Stored but carries no encrypted credential.
var ErrStoredWithoutEncrypted = errors.New("sitedesc: type is stored but no encrypted credential is present")

// ErrEncryptedWithoutStored is returned when a Record carries an
// encrypted credential but an explicit, non-Stored type.
var ErrEncryptedWithoutStored = errors.New("sitedesc: encrypted credential present but type is not stored")

// Record is the wire shape exchanged with the configuration layer:
// every field but Name is optional, using the zero value to mean
// "unset" (empty string/nil counter), mirroring the optional fields in
// spec.md §6.
type Record struct {
	Name      string
	Type      string // alias, e.g. "long"; "" means unset
	Counter   *uint32
	Variant   string // alias, e.g. "password"; "" means unset
	Context   string
	Encrypted string // Base64, "" means no stored credential
}

// Descriptor is the resolved site descriptor: every optional field in
// Record has had its default applied (spec.md §3).
type Descriptor struct {
	Name      []byte
	Type      sitetype.SiteType
	Counter   uint32
	Variant   sitetype.SiteVariant
	Context   []byte
	Encrypted []byte // nil unless Type == sitetype.Stored
}

// Resolve decodes aliases and applies defaults, returning a Descriptor.
//
// Defaults: Counter defaults to 1; Variant defaults to Password; Type
// defaults per variant (Password->Long, Login->Name, Answer->Phrase)
// when no encrypted credential is present, else Stored; Context
// defaults to empty. Resolve enforces the descriptor invariant: a
// descriptor with an encrypted credential must resolve to type Stored,
// and vice versa.
func (r Record) Resolve() (Descriptor, error) {
	if r.Name == "" {
		return Descriptor{}, ErrNameRequired
	}

	variant := sitetype.Password
	if r.Variant != "" {
		v, err := sitetype.VariantFromString(r.Variant)
		if err != nil {
			return Descriptor{}, fmt.Errorf("sitedesc: %w", err)
		}
		variant = v
	}

	var encrypted []byte
	if r.Encrypted != "" {
		b, err := varmor.Unwrap(r.Encrypted)
		if err != nil {
			return Descriptor{}, fmt.Errorf("sitedesc: decoding encrypted field: %w", err)
		}
		encrypted = b
	}

	var typ sitetype.SiteType
	switch {
	case r.Type != "":
		t, err := sitetype.TypeFromString(r.Type)
		if err != nil {
			return Descriptor{}, fmt.Errorf("sitedesc: %w", err)
		}
		typ = t
	case encrypted != nil:
		typ = sitetype.Stored
	default:
		typ = sitetype.DefaultType(variant)
	}

	if typ == sitetype.Stored && encrypted == nil {
		return Descriptor{}, ErrStoredWithoutEncrypted
	}
	if typ != sitetype.Stored && encrypted != nil {
		return Descriptor{}, ErrEncryptedWithoutStored
	}

	counter := uint32(1)
	if r.Counter != nil {
		counter = *r.Counter
	}

	return Descriptor{
		Name:      []byte(r.Name),
		Type:      typ,
		Counter:   counter,
		Variant:   variant,
		Context:   []byte(r.Context),
		Encrypted: encrypted,
	}, nil
}

// NewStoredRecord builds a Record that persists encryptedBuf (the
// output of credentialcrypt.Encrypt) as the named site's stored
// credential.
func NewStoredRecord(name string, encryptedBuf []byte) Record {
	return Record{
		Name:      name,
		Type:      sitetype.Stored.String(),
		Encrypted: varmor.Wrap(encryptedBuf),
	}
}
