// Package preader implements interactive and scripted reading of the
// user's master password, including an "at most once" caching wrapper
// so a single invocation never prompts twice.
package preader

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"golang.org/x/term"
)

// MasterPasswordReader reads a user's master password.
type MasterPasswordReader interface {
	ReadMasterPassword() (string, error)
}

// StdinMasterPasswordReader prompts at the terminal when stdin is a
// TTY, or otherwise reads the whole of stdin (useful for scripting and
// tests, e.g. piping a master password through a CI pipeline).
type StdinMasterPasswordReader struct{}

func (r *StdinMasterPasswordReader) ReadMasterPassword() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		if _, err := fmt.Fprint(os.Stderr, "Master password: "); err != nil {
			return "", err
		}
		phrase, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return "", fmt.Errorf("preader: reading master password: %w", err)
		}
		fmt.Fprintln(os.Stderr)
		return string(phrase), nil
	}

	return NewReader(os.Stdin).ReadMasterPassword()
}

// ReaderMasterPasswordReader reads the entire contents of an arbitrary
// io.Reader as the master password. It exists to let tests and
// non-interactive callers supply a master password without a terminal.
type ReaderMasterPasswordReader struct {
	upstream io.Reader
}

// NewReader wraps r as a MasterPasswordReader.
func NewReader(r io.Reader) *ReaderMasterPasswordReader {
	return &ReaderMasterPasswordReader{upstream: r}
}

func (r *ReaderMasterPasswordReader) ReadMasterPassword() (string, error) {
	data, err := ioutil.ReadAll(r.upstream)
	if err != nil {
		return "", fmt.Errorf("preader: reading master password: %w", err)
	}
	return string(data), nil
}

// ConstantMasterPasswordReader always returns the same fixed value;
// useful in tests that do not want to exercise terminal or stdin I/O.
type ConstantMasterPasswordReader struct {
	value string
}

// NewConstant wraps value as a MasterPasswordReader.
func NewConstant(value string) *ConstantMasterPasswordReader {
	return &ConstantMasterPasswordReader{value: value}
}

func (r *ConstantMasterPasswordReader) ReadMasterPassword() (string, error) {
	return r.value, nil
}

// CachingMasterPasswordReader wraps a MasterPasswordReader, reading
// from Upstream at most once and returning the cached value on every
// subsequent call. This allows "at most once" semantics while still
// lazily deferring the first invocation.
type CachingMasterPasswordReader struct {
	Upstream MasterPasswordReader
	cached   bool
	value    string
}

func (r *CachingMasterPasswordReader) ReadMasterPassword() (string, error) {
	if !r.cached {
		value, err := r.Upstream.ReadMasterPassword()
		if err != nil {
			return "", err
		}
		r.value = value
		r.cached = true
	}
	return r.value, nil
}
