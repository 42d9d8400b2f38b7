package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// EntryKey returns prefix + ":" + the first 16 hex chars of sha256(text).
// Text can be arbitrarily long; the key stays fixed-size.
func EntryKey(prefix, text string) string {
	sum := sha256.Sum256([]byte(text))
	return prefix + ":" + hex.EncodeToString(sum[:8])
}
