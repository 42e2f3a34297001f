// money/money.go
package money

import (
	"net/http"
	"strconv"
	"strings"

	verrors "github.com/dalemusser/viewkit/pantry/errors"
)

// NumberFormat holds the separators used to render an amount.
type NumberFormat struct {
	DecimalSeparator  string
	ThousandSeparator string
	GroupSize         int
}

// BR is the pt-BR convention: 1.234,56.
var BR = NumberFormat{
	DecimalSeparator:  ",",
	ThousandSeparator: ".",
	GroupSize:         3,
}

// CentsToDisplay renders a minor-unit amount in pt-BR form with exactly two
// fraction digits. prefix is prepended verbatim; it may carry a currency
// symbol, a sign, or both.
//
//	CentsToDisplay(542100, "R$ -") // "R$ -5.421,00"
func CentsToDisplay(cents int64, prefix string) string {
	return prefix + Format(cents, BR)
}

// Format renders cents with nf. Integer arithmetic only, so every int64
// (including math.MinInt64) renders exactly.
func Format(cents int64, nf NumberFormat) string {
	negative := cents < 0
	abs := uint64(cents)
	if negative {
		abs = -abs
	}

	intPart := strconv.FormatUint(abs/100, 10)
	frac := abs % 100

	if nf.ThousandSeparator != "" && nf.GroupSize > 0 && len(intPart) > nf.GroupSize {
		var groups []string
		for len(intPart) > 0 {
			start := len(intPart) - nf.GroupSize
			if start < 0 {
				start = 0
			}
			groups = append([]string{intPart[start:]}, groups...)
			intPart = intPart[:start]
		}
		intPart = strings.Join(groups, nf.ThousandSeparator)
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	b.WriteString(nf.DecimalSeparator)
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatUint(frac, 10))
	return b.String()
}

// DisplayToCents strips every non-digit from text and returns prefix followed
// by the remaining digits. The result is a label, not a number: a "-" prefix
// is concatenated, never applied as a sign, and leading zeros survive.
// Text without any digit fails with an invalid_input error.
//
//	DisplayToCents("5.421,00", "") // "542100"
func DisplayToCents(text, prefix string) (string, error) {
	digits := onlyDigits(text)
	if digits == "" {
		return "", verrors.InvalidInput("money value " + strconv.Quote(text) + " must contain a number").
			WithDetail("text", text)
	}
	return prefix + digits, nil
}

// ParseCents is the typed form of DisplayToCents: it returns the digits of
// text as an int64 amount. A leading "-" anywhere before the first digit
// makes the result negative.
func ParseCents(text string) (int64, error) {
	digits := onlyDigits(text)
	if digits == "" {
		return 0, verrors.InvalidInput("money value " + strconv.Quote(text) + " must contain a number").
			WithDetail("text", text)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, verrors.Wrap(err, verrors.CodeInvalidInput, "money value "+strconv.Quote(text)+" is out of range", http.StatusBadRequest)
	}
	if i := strings.IndexFunc(text, isDigit); i > 0 && strings.Contains(text[:i], "-") {
		n = -n
	}
	return n, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
