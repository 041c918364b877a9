//go:build !unix

package secretbuf

import "errors"

// pin/unpin are no-ops on platforms without mlock/munlock; the caller
// treats any error as non-fatal, so this simply always reports
// "unsupported" rather than pretending to succeed.
func pin(data []byte) error {
	return errors.New("secretbuf: page pinning unsupported on this platform")
}

func unpin(data []byte) error {
	return nil
}
