// Package commands binds the core derivation packages into the
// operations a CLI front end needs: generating a site credential,
// displaying the identicon for a master password, encrypting a
// user-supplied credential into a site descriptor, and showing every
// site in a resolved configuration.
package commands

import (
	"errors"
	"fmt"

	"github.com/scode/masterpassword/credentialcrypt"
	"github.com/scode/masterpassword/identicon"
	"github.com/scode/masterpassword/masterkey"
	"github.com/scode/masterpassword/preader"
	"github.com/scode/masterpassword/secretbuf"
	"github.com/scode/masterpassword/sitecrypt"
	"github.com/scode/masterpassword/sitedesc"
	"github.com/scode/masterpassword/sitetype"
)

// ErrStoredCredentialRequiresPassword is returned when asked to reveal
// a Stored site whose descriptor carries no encrypted credential. This
// duplicates a check sitedesc.Resolve already enforces; kept here as a
// defense for callers that construct Descriptors directly.
var ErrStoredCredentialRequiresPassword = errors.New("commands: stored site has no encrypted credential")

// MasterKey reads the master password via pr and derives the master
// key for fullName. The returned buffer must be released by the
// caller once it is no longer needed.
func MasterKey(fullName string, pr preader.MasterPasswordReader) (*secretbuf.Buffer, error) {
	masterPassword, err := pr.ReadMasterPassword()
	if err != nil {
		return nil, fmt.Errorf("commands: reading master password: %w", err)
	}

	key, err := masterkey.ForUser([]byte(fullName), []byte(masterPassword))
	if err != nil {
		return nil, fmt.Errorf("commands: deriving master key: %w", err)
	}

	return key, nil
}

// Identicon reads the master password via pr and returns the identicon
// for (fullName, masterPassword), without deriving the full master key.
func Identicon(fullName string, pr preader.MasterPasswordReader) (string, error) {
	masterPassword, err := pr.ReadMasterPassword()
	if err != nil {
		return "", fmt.Errorf("commands: reading master password: %w", err)
	}

	return identicon.For([]byte(fullName), []byte(masterPassword)), nil
}

// Generate derives the credential for a single resolved site descriptor
// under the given master key. Generated types are produced
// deterministically via sitecrypt.PasswordForSite; a Stored descriptor
// is decrypted via credentialcrypt using the first KeyLen bytes of the
// master key. The returned buffer must be released by the caller.
func Generate(masterKey []byte, d sitedesc.Descriptor) (*secretbuf.Buffer, error) {
	if d.Type == sitetype.Stored {
		if d.Encrypted == nil {
			return nil, ErrStoredCredentialRequiresPassword
		}
		plaintext, err := credentialcrypt.Decrypt(masterKey, d.Encrypted)
		if err != nil {
			return nil, fmt.Errorf("commands: decrypting stored credential for %s: %w", d.Name, err)
		}
		return secretbuf.New(plaintext), nil
	}

	pw, err := sitecrypt.PasswordForSite(masterKey, d.Name, d.Type, d.Counter, d.Variant, d.Context)
	if err != nil {
		return nil, fmt.Errorf("commands: deriving password for %s: %w", d.Name, err)
	}
	return pw, nil
}

// Store reads a user-chosen credential via pr, encrypts it under the
// first credentialcrypt.KeyLen bytes of masterKey, and returns a Record
// suitable for persisting into the site's configuration entry.
func Store(name string, masterKey []byte, pr preader.MasterPasswordReader) (sitedesc.Record, error) {
	credential, err := pr.ReadMasterPassword()
	if err != nil {
		return sitedesc.Record{}, fmt.Errorf("commands: reading credential to store: %w", err)
	}

	buf := make([]byte, credentialcrypt.MinBufferLen(len(credential)))
	if err := credentialcrypt.Encrypt([]byte(credential), masterKey, buf); err != nil {
		return sitedesc.Record{}, fmt.Errorf("commands: encrypting credential for %s: %w", name, err)
	}

	return sitedesc.NewStoredRecord(name, buf), nil
}

// ShownSite pairs a resolved descriptor with its derived or decrypted
// credential, ready for display.
type ShownSite struct {
	Descriptor sitedesc.Descriptor
	Credential *secretbuf.Buffer
}

// Show resolves and derives the credential for every record in
// records, returning one ShownSite per record in order. Every returned
// buffer must be released by the caller. On error, any buffers already
// derived are released before returning.
func Show(masterKey []byte, records []sitedesc.Record) ([]ShownSite, error) {
	shown := make([]ShownSite, 0, len(records))

	for _, rec := range records {
		d, err := rec.Resolve()
		if err != nil {
			releaseAll(shown)
			return nil, fmt.Errorf("commands: resolving site %s: %w", rec.Name, err)
		}

		cred, err := Generate(masterKey, d)
		if err != nil {
			releaseAll(shown)
			return nil, err
		}

		shown = append(shown, ShownSite{Descriptor: d, Credential: cred})
	}

	return shown, nil
}

func releaseAll(shown []ShownSite) {
	for _, s := range shown {
		s.Credential.Release()
	}
}
