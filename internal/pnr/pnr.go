// Package pnr issues booking reference codes.
package pnr

import (
	"math/rand"
	"strings"
)

// Length of a reference code.
const Length = 8

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate draws 8-character codes until exists reports one as unused.
// The 36^8 space makes collisions rare, but uniqueness is checked, not
// assumed. A nil exists accepts the first draw.
func Generate(exists func(string) bool) string {
	for {
		code := random()
		if exists == nil || !exists(code) {
			return code
		}
	}
}

func random() string {
	var b strings.Builder
	b.Grow(Length)
	for i := 0; i < Length; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}

// Valid reports whether s looks like a reference code.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(alphabet, rune(s[i])) {
			return false
		}
	}
	return true
}
