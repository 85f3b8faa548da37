// Package hash provides hashing utilities for secret fingerprints.
package hash

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
)

// Fingerprint returns the first 8 characters of SHA1(s), or "" for an
// empty string.
func Fingerprint(s string) string {
	if s == "" {
		return ""
	}
	return SHA1Sum(s)[:8]
}

// SHA1Sum returns the full SHA1 hash of a string.
func SHA1Sum(s string) string {
	hasher := sha1.New()
	_, _ = io.WriteString(hasher, s)
	return hex.EncodeToString(hasher.Sum(nil))
}
