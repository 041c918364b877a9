//go:build unix

package secretbuf

import "golang.org/x/sys/unix"

func pin(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Mlock(data)
}

func unpin(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Munlock(data)
}
