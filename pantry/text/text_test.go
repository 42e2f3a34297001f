package text

import (
	"reflect"
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"test title", "Test Title"},
		{"TEST TITLE", "Test Title"},
		{"são paulo", "São Paulo"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Title(tt.in); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		end   string
		want  string
	}{
		{"fits", "Test description limit", 100, DefaultLimitEnd, "Test description limit"},
		{"cut", "Test description limit", 16, DefaultLimitEnd, "Test description..."},
		{"custom end", "Test description limit", 16, " :)", "Test description :)"},
		{"trailing space trimmed", "Test description limit", 17, DefaultLimitEnd, "Test description..."},
		{"exact length", "abc", 3, DefaultLimitEnd, "abc"},
		{"runes not bytes", "ação rápida", 4, DefaultLimitEnd, "ação..."},
		{"zero", "abc", 0, DefaultLimitEnd, "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Limit(tt.in, tt.limit, tt.end); got != tt.want {
				t.Errorf("Limit(%q, %d, %q) = %q, want %q", tt.in, tt.limit, tt.end, got, tt.want)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sep  string
		want string
	}{
		{"basic", "Test slug", "-", "test-slug"},
		{"plus separator", "Test slug", "+", "test+slug"},
		{"accents", "Ação Rápida", "-", "acao-rapida"},
		{"collapses runs", "  hello -- _ world  ", "-", "hello-world"},
		{"drops punctuation", "Hello, World!", "-", "hello-world"},
		{"at sign", "me@example", "-", "me-at-example"},
		{"underscore separator", "Foo Bar-baz", "_", "foo_bar_baz"},
		{"sharp s", "Straße", "-", "strasse"},
		{"ligatures and stroke letters", "Æther Øresund Łódź", "-", "aether-oresund-lodz"},
		{"other scripts kept", "Привет мир", "-", "привет-мир"},
		{"empty", "   ", "-", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.in, tt.sep); got != tt.want {
				t.Errorf("Slug(%q, %q) = %q, want %q", tt.in, tt.sep, got, tt.want)
			}
		})
	}
}

func TestFold(t *testing.T) {
	if got := Fold("  Crème Brûlée "); got != "creme brulee" {
		t.Errorf("Fold = %q", got)
	}
	if got := FoldTokens("Crème Brûlée"); !reflect.DeepEqual(got, []string{"creme", "brulee"}) {
		t.Errorf("FoldTokens = %q", got)
	}
	if FoldTokens("   ") != nil {
		t.Error("FoldTokens of blank should be nil")
	}
}
