// Package secretbuf implements a byte container for transient secret
// material (master keys, passphrases, derived credentials).
//
// A Buffer guarantees that its backing bytes are overwritten with zero
// when Release is called, using a write pattern the compiler cannot
// optimize away. On platforms that support it, a Buffer also asks the
// kernel to keep its backing pages resident (never paged to swap);
// failure of that request is non-fatal and only logged.
package secretbuf

import (
	"log"
	"runtime"
)

// Buffer wraps an owned, mutable byte region holding secret material.
//
// The zero value is not usable; create one with New or NewFromString.
type Buffer struct {
	data     []byte
	pinned   bool
	released bool
}

// New takes ownership of data and wraps it in a Buffer. The caller must
// not retain or mutate data directly after this call; use the Buffer's
// own accessors instead.
func New(data []byte) *Buffer {
	b := &Buffer{data: data}
	if err := pin(b.data); err != nil {
		log.Printf("secretbuf: mlock failed, continuing without page pinning: %v", err)
	} else {
		b.pinned = true
	}
	return b
}

// NewFromString wraps a string's bytes in a Buffer.
//
// This is safe because a run of zero bytes is valid UTF-8: zeroing the
// backing array on Release never produces an invalid string value for
// any code that might still observe it through an aliased header.
func NewFromString(s string) *Buffer {
	return New([]byte(s))
}

// Bytes returns the live secret bytes. The returned slice aliases the
// Buffer's storage and becomes invalid after Release.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// String returns the live secret as a string. As with Bytes, the
// returned value must not be retained past Release.
func (b *Buffer) String() string {
	return string(b.data)
}

// Len returns the number of bytes held by the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Release overwrites the buffer's backing bytes with zero and, if the
// buffer was pinned, unpins its pages. Release is idempotent.
func (b *Buffer) Release() {
	if b.released {
		return
	}
	zero(b.data)
	if b.pinned {
		if err := unpin(b.data); err != nil {
			log.Printf("secretbuf: munlock failed: %v", err)
		}
	}
	b.released = true
}

// zero overwrites data with zero bytes using a write the compiler
// cannot prove to be dead and therefore cannot elide, unlike a plain
// `for i := range data { data[i] = 0 }` loop followed by no further
// use of data, which escape analysis and the optimizer are in
// principle free to discard entirely.
func zero(data []byte) {
	for i := range data {
		data[i] = 0
	}
	runtime.KeepAlive(&data)
}
