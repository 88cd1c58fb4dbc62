package goweft

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text. It is the
// canonical dedup key: two occurrences with the same inner text hash
// identically regardless of surrounding markup or whitespace.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// MemoryKey generates a translation-memory key from a source text and
// target language.
func MemoryKey(sourceText, targetLang string) string {
	return HashText(sourceText) + ":" + NormalizeLocale(targetLang)
}
