// text/strings.go
package text

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers keep state between calls, so each borrower gets its own.
var titlePool = sync.Pool{
	New: func() any {
		c := cases.Title(language.Und)
		return &c
	},
}

// Title upper-cases the first letter of each word and lower-cases the rest.
//
//	Title("test title") // "Test Title"
func Title(s string) string {
	c := titlePool.Get().(*cases.Caser)
	defer func() {
		c.Reset()
		titlePool.Put(c)
	}()
	return c.String(s)
}

// DefaultLimitEnd is appended by Limit when a string is cut.
const DefaultLimitEnd = "..."

// Limit shortens s to at most limit runes. When s is cut, trailing whitespace
// of the kept part is dropped and end is appended, so the result may be
// longer than limit. Strings that already fit are returned unchanged.
//
//	Limit("Test description limit", 16, "...") // "Test description..."
func Limit(s string, limit int, end string) string {
	if limit < 0 {
		limit = 0
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	cut := 0
	for i := range s {
		if limit == 0 {
			cut = i
			break
		}
		limit--
	}
	return strings.TrimRightFunc(s[:cut], unicode.IsSpace) + end
}

// DefaultSlugSeparator joins words in Slug output.
const DefaultSlugSeparator = "-"

// latinExpand spells out Latin letters that have no combining-mark
// decomposition, so Fold leaves them intact.
var latinExpand = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae",
	"œ", "oe",
	"ø", "o",
	"đ", "d",
	"ð", "d",
	"ł", "l",
	"þ", "th",
	"ı", "i",
)

// Slug builds a URL-friendly identifier: diacritics are folded away,
// letters are lower-cased, "@" reads as "at", and every run of whitespace,
// '-' or '_' becomes a single sep. Other punctuation is dropped.
// Common Latin letters without a decomposition are spelled out ("ß" → "ss",
// "æ" → "ae", "ø" → "o"); letters from other scripts are kept as-is.
//
//	Slug("Test slug", "-") // "test-slug"
//	Slug("Test slug", "+") // "test+slug"
//	Slug("Straße", "-")    // "strasse"
func Slug(s, sep string) string {
	folded := latinExpand.Replace(Fold(s))
	if folded == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(folded))
	pending := false
	for _, r := range folded {
		switch {
		case r == '@':
			pending = true
			if b.Len() > 0 {
				b.WriteString(sep)
			}
			b.WriteString("at")
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pending && b.Len() > 0 {
				b.WriteString(sep)
			}
			pending = false
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r) || r == '-' || r == '_' || strings.ContainsRune(sep, r):
			pending = true
		}
	}
	return b.String()
}
