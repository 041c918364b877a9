// Package sitetype implements the SiteVariant and SiteType catalog: the
// enumerations that select a derivation scope and an output template
// family, along with their string codecs.
package sitetype

import "fmt"

// SiteVariant selects what kind of credential is being derived.
type SiteVariant int

const (
	// Password is the default variant: derive the site's login password.
	Password SiteVariant = iota
	// Login derives a site-specific login name.
	Login
	// Answer derives an answer to a security question.
	Answer
)

// ScopeString returns the fixed ASCII scope string used as a salt
// prefix for the given variant.
func (v SiteVariant) ScopeString() string {
	switch v {
	case Password:
		return "com.lyndir.masterpassword"
	case Login:
		return "com.lyndir.masterpassword.login"
	case Answer:
		return "com.lyndir.masterpassword.answer"
	default:
		panic(fmt.Sprintf("sitetype: unknown SiteVariant %d", v))
	}
}

// String returns the canonical long-form name of the variant.
func (v SiteVariant) String() string {
	switch v {
	case Password:
		return "password"
	case Login:
		return "login"
	case Answer:
		return "answer"
	default:
		panic(fmt.Sprintf("sitetype: unknown SiteVariant %d", v))
	}
}

// VariantFromString decodes a recognized alias into a SiteVariant. It
// fails cleanly on any unrecognized input.
func VariantFromString(s string) (SiteVariant, error) {
	switch s {
	case "p", "password":
		return Password, nil
	case "l", "login":
		return Login, nil
	case "a", "answer":
		return Answer, nil
	default:
		return 0, fmt.Errorf("sitetype: unrecognized variant %q", s)
	}
}

// SiteType selects the output shape of a generated credential, or marks
// a credential as Stored rather than regenerated.
type SiteType int

const (
	Maximum SiteType = iota
	Long
	Medium
	Basic
	Short
	PIN
	Name
	Phrase
	// Stored marks a credential persisted via credentialcrypt rather
	// than regenerated from the master key.
	Stored
)

// String returns the canonical long-form name of the type.
func (t SiteType) String() string {
	switch t {
	case Maximum:
		return "maximum"
	case Long:
		return "long"
	case Medium:
		return "medium"
	case Basic:
		return "basic"
	case Short:
		return "short"
	case PIN:
		return "pin"
	case Name:
		return "name"
	case Phrase:
		return "phrase"
	case Stored:
		return "stored"
	default:
		panic(fmt.Sprintf("sitetype: unknown SiteType %d", t))
	}
}

// Generated reports whether t is one of the eight generated types
// (templates applied to a derived seed), as opposed to Stored.
func (t SiteType) Generated() bool {
	return t != Stored
}

// TypeFromString decodes a recognized alias into a SiteType. It fails
// cleanly on any unrecognized input.
func TypeFromString(s string) (SiteType, error) {
	switch s {
	case "x", "max", "maximum":
		return Maximum, nil
	case "l", "long":
		return Long, nil
	case "m", "med", "medium":
		return Medium, nil
	case "b", "basic":
		return Basic, nil
	case "s", "short":
		return Short, nil
	case "i", "pin":
		return PIN, nil
	case "n", "name":
		return Name, nil
	case "p", "phrase":
		return Phrase, nil
	case "stored":
		return Stored, nil
	default:
		return 0, fmt.Errorf("sitetype: unrecognized type %q", s)
	}
}

// DefaultType returns the default SiteType for a variant when no stored
// credential is present, per spec: Password->Long, Login->Name,
// Answer->Phrase.
func DefaultType(v SiteVariant) SiteType {
	switch v {
	case Password:
		return Long
	case Login:
		return Name
	case Answer:
		return Phrase
	default:
		panic(fmt.Sprintf("sitetype: unknown SiteVariant %d", v))
	}
}
