// Package identicon derives a four-glyph visual fingerprint of a user's
// full name and master password. It is a standalone display helper: it
// never participates in credential derivation.
package identicon

import (
	"crypto/hmac"
	"crypto/sha256"
)

var leftArm = []string{"╔", "╚", "╰", "═"}
var body = []string{"█", "░", "▒", "▓", "☺", "☻"}
var rightArm = []string{"╗", "╝", "╯", "═"}

// accessory is the 57-element glyph set; its order is part of the wire
// contract (spec.md §6) and must not change.
var accessory = []string{
	"◈", "◎", "◐", "◑", "◒", "◓", "☀", "☁", "☂", "☃", "☄", "★", "☆", "☎",
	"☏", "⎈", "⌂", "☘", "☢", "☣", "☕", "⌚", "⌛", "⏰", "⚡", "⛄", "⛅", "☔",
	"♔", "♕", "♖", "♗", "♘", "♙", "♚", "♛", "♜", "♝", "♞", "♟", "♨", "♩",
	"♪", "♫", "⚐", "⚑", "⚔", "⚖", "⚙", "⚠", "⌘", "⏎", "✄", "✆", "✈", "✉", "✌",
}

// For returns the identicon for (fullName, masterPassword): four glyphs
// chosen from fixed sets by HMAC-SHA-256(key=masterPassword,
// msg=fullName). No color channel is derived; the identicon is
// monochrome.
func For(fullName []byte, masterPassword []byte) string {
	mac := hmac.New(sha256.New, masterPassword)
	mac.Write(fullName)
	seed := mac.Sum(nil)

	return pick(leftArm, seed[0]) + pick(body, seed[1]) + pick(rightArm, seed[2]) + pick(accessory, seed[3])
}

func pick(set []string, b byte) string {
	return set[int(b)%len(set)]
}
