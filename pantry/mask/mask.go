// mask/mask.go
package mask

import "strings"

// DefaultPlaceholder is the template rune that consumes one input rune.
const DefaultPlaceholder = '#'

// Common Brazilian document and contact templates.
const (
	CPF     = "###.###.###-##"
	CNPJ    = "##.###.###/####-##"
	CEP     = "#####-###"
	PhoneBR = "(##) #####-####"
)

// Mask applies template to value using DefaultPlaceholder.
//
//	Mask("12345678900", CPF) // "123.456.789-00"
func Mask(value, template string) string {
	return MaskWith(value, template, DefaultPlaceholder)
}

// MaskWith walks template rune by rune. Each placeholder rune is replaced by
// the next unconsumed rune of value; every other rune is copied as-is.
// Once value runs out, remaining placeholders produce nothing, so the result
// can be shorter than template. Input beyond the placeholder count is dropped.
// An empty value yields "".
func MaskWith(value, template string, placeholder rune) string {
	if value == "" {
		return ""
	}

	in := []rune(value)
	next := 0

	var b strings.Builder
	b.Grow(len(template))
	for _, r := range template {
		if r != placeholder {
			b.WriteRune(r)
			continue
		}
		if next < len(in) {
			b.WriteRune(in[next])
			next++
		}
	}
	return b.String()
}

// Unmask removes every occurrence of each literal from value.
//
//	Unmask("123.456.789-00", ".", "-") // "12345678900"
func Unmask(value string, literals ...string) string {
	if value == "" {
		return ""
	}

	pairs := make([]string, 0, len(literals)*2)
	for _, l := range literals {
		if l == "" {
			continue
		}
		pairs = append(pairs, l, "")
	}
	if len(pairs) == 0 {
		return value
	}
	return strings.NewReplacer(pairs...).Replace(value)
}

// Literals returns the distinct non-placeholder runes of template, in order
// of first appearance, ready to pass to Unmask.
func Literals(template string, placeholder rune) []string {
	seen := make(map[rune]bool)
	var out []string
	for _, r := range template {
		if r == placeholder || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, string(r))
	}
	return out
}

// Placeholders counts how many input runes template can consume.
func Placeholders(template string, placeholder rune) int {
	return strings.Count(template, string(placeholder))
}
