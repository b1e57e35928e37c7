package glot

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key from a text hash and the language pair.
// Source is part of the key: "auto" and an explicit code can legitimately
// produce different results for the same text.
func CacheKey(hash, source, target string) string {
	return hash + ":" + source + ":" + target
}
