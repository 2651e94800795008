// Package bookingref generates the opaque references handed to patients when
// a slot is booked. References are assigned exactly once, at booking time;
// newly generated slots carry no reference.
package bookingref

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

const prefix = "BK-"

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// New returns a reference token with enough entropy to be unguessable.
// Uniqueness is ultimately enforced by the database index; 16 random bytes
// make a collision practically impossible in the first place.
func New() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic("bookingref: " + err.Error())
	}
	return prefix + encoding.EncodeToString(buf)
}

// IsWellFormed reports whether s looks like a reference issued by New.
func IsWellFormed(s string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	body := strings.TrimPrefix(s, prefix)
	if len(body) != encoding.EncodedLen(16) {
		return false
	}
	_, err := encoding.DecodeString(body)
	return err == nil
}
