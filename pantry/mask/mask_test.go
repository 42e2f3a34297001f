package mask

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		template    string
		placeholder rune
		want        string
	}{
		{"cpf", "12345678900", CPF, '#', "123.456.789-00"},
		{"cpf with plus placeholder", "12345678900", "+++.+++.+++-++", '+', "123.456.789-00"},
		{"empty value", "", CPF, '#', ""},
		{"short value keeps remaining literals", "1234", CPF, '#', "123.4.-"},
		{"extra input dropped", "123456789001234", CPF, '#', "123.456.789-00"},
		{"cnpj", "11222333000181", CNPJ, '#', "11.222.333/0001-81"},
		{"cep", "01310100", CEP, '#', "01310-100"},
		{"phone", "11987654321", PhoneBR, '#', "(11) 98765-4321"},
		{"multibyte input", "ção", "#-#-#", '#', "ç-ã-o"},
		{"template with no placeholders", "123", "abc", '#', "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskWith(tt.value, tt.template, tt.placeholder)
			if got != tt.want {
				t.Errorf("MaskWith(%q, %q, %q) = %q, want %q",
					tt.value, tt.template, tt.placeholder, got, tt.want)
			}
		})
	}

	if got := Mask("12345678900", "###.###.###-##"); got != "123.456.789-00" {
		t.Errorf("Mask default placeholder = %q", got)
	}
}

func TestUnmask(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		literals []string
		want     string
	}{
		{"cpf", "123.456.789-00", []string{".", "-"}, "12345678900"},
		{"empty", "", []string{".", "-"}, ""},
		{"no literals", "123.4", nil, "123.4"},
		{"empty literal ignored", "1.2", []string{"", "."}, "12"},
		{"multi-rune literal", "R$ 10,00", []string{"R$ ", ","}, "1000"},
		{"order does not matter", "(11) 98765-4321", []string{"-", " ", ")", "("}, "11987654321"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unmask(tt.value, tt.literals...); got != tt.want {
				t.Errorf("Unmask(%q, %q) = %q, want %q", tt.value, tt.literals, got, tt.want)
			}
		})
	}
}

func TestLiterals(t *testing.T) {
	got := Literals(CNPJ, DefaultPlaceholder)
	want := []string{".", "/", "-"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Literals(%q) = %q, want %q", CNPJ, got, want)
	}
	if n := Placeholders(CNPJ, DefaultPlaceholder); n != 14 {
		t.Errorf("Placeholders(%q) = %d, want 14", CNPJ, n)
	}
}

func TestMaskUnmaskRoundTrip(t *testing.T) {
	templates := []string{CPF, CNPJ, CEP, PhoneBR, "##/##/####"}
	values := []string{"1", "12345", "12345678900", "98765432109876543210"}

	for _, tmpl := range templates {
		lits := Literals(tmpl, DefaultPlaceholder)
		n := Placeholders(tmpl, DefaultPlaceholder)
		for _, v := range values {
			want := v
			if utf8.RuneCountInString(v) > n {
				want = string([]rune(v)[:n])
			}
			got := Unmask(Mask(v, tmpl), lits...)
			if got != want {
				t.Errorf("round trip %q through %q = %q, want %q", v, tmpl, got, want)
			}
		}
	}
}
