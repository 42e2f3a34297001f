// text/fold.go
package text

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// chainPool avoids per-call allocations.
// Each borrower gets an NFD → strip combining marks (Mn) → NFC pipeline.
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)), // remove combining diacritics
			norm.NFC,
		)
	},
}

// Fold lowercases and strips *combining* diacritics via NFD→remove(Mn)→NFC.
// It does not guarantee ASCII; characters like "ø" or "ß" remain.
// Returns "" for blank/whitespace-only strings.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// ASCII fast path: already ASCII with no A..Z needs no work.
	if isASCIIAndLower(s) {
		return s
	}

	return stripMarks(strings.ToLower(s))
}

// FoldTokens folds and then splits on whitespace.
func FoldTokens(s string) []string {
	f := Fold(s)
	if f == "" {
		return nil
	}
	return strings.Fields(f)
}

func stripMarks(s string) string {
	t := chainPool.Get().(transform.Transformer)
	defer func() {
		t.Reset()
		chainPool.Put(t)
	}()

	out, _, _ := transform.String(t, s)
	return out
}

// isASCIIAndLower reports whether s contains only ASCII bytes and no A..Z.
func isASCIIAndLower(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x80 {
			return false
		}
		if b >= 'A' && b <= 'Z' {
			return false
		}
	}
	return true
}
