package format

import (
	"strings"
	"testing"
)

var samples = []string{
	"",
	"1",
	"123",
	"1234",
	"123456",
	"1234567",
	"123456789",
	"1234567890",
	"12345678901",
	"123456789012345",
	"123.456.789-01",
	"abc123def456ghi789jk01",
	"  9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 ",
	"12/34",
	"４５６", // full-width digits are not ASCII digits
}

func TestFormatters_Idempotent(t *testing.T) {
	formatters := map[string]func(string) string{
		"card":   CardNumber,
		"expiry": ExpiryDate,
		"cpf":    CPF,
		"oab":    OAB,
	}
	for name, f := range formatters {
		for _, in := range samples {
			once := f(in)
			if twice := f(once); twice != once {
				t.Fatalf("%s not idempotent for %q: %q then %q", name, in, once, twice)
			}
		}
	}
}

func TestCPF(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"123":             "123",
		"1234":            "123.4",
		"123456":          "123.456",
		"1234567":         "123.456.7",
		"123456789":       "123.456.789",
		"1234567890":      "123.456.789-0",
		"12345678901":     "123.456.789-01",
		"123456789012345": "123.456.789-01",
		"a1b2c3":          "123",
	}
	for in, want := range cases {
		if got := CPF(in); got != want {
			t.Fatalf("CPF(%q) = %q, want %q", in, got, want)
		}
	}
	for _, in := range samples {
		if n := len(Digits(CPF(in))); n > 11 {
			t.Fatalf("CPF(%q) kept %d digits", in, n)
		}
	}
}

func TestOAB(t *testing.T) {
	cases := map[string]string{
		"12":        "12",
		"1234":      "123.4",
		"123456":    "123.456",
		"123456789": "123.456",
		"12.34.56":  "123.456",
	}
	for in, want := range cases {
		if got := OAB(in); got != want {
			t.Fatalf("OAB(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCardNumber(t *testing.T) {
	if got := CardNumber("4111111111111111"); got != "4111 1111 1111 1111" {
		t.Fatalf("unexpected card: %q", got)
	}
	if got := CardNumber("4111-1111-1111-1111-9999"); got != "4111 1111 1111 1111" {
		t.Fatalf("expected truncation, got %q", got)
	}
	if got := CardNumber("41111"); got != "4111 1" {
		t.Fatalf("unexpected partial card: %q", got)
	}

	for _, in := range samples {
		out := CardNumber(in)
		if len(out) > 19 {
			t.Fatalf("CardNumber(%q) too long: %q", in, out)
		}
		digits := 0
		for i := 0; i < len(out); i++ {
			if out[i] == ' ' {
				if digits%4 != 0 || digits == 0 {
					t.Fatalf("misplaced space in %q", out)
				}
				continue
			}
			digits++
			if digits%4 == 0 && digits < len(Digits(out)) && (i+1 >= len(out) || out[i+1] != ' ') {
				t.Fatalf("missing space after group in %q", out)
			}
		}
		if strings.HasSuffix(out, " ") {
			t.Fatalf("trailing space in %q", out)
		}
	}
}

func TestExpiryDate(t *testing.T) {
	cases := map[string]string{
		"1":      "1",
		"12":     "12",
		"123":    "12/3",
		"1234":   "12/34",
		"12/345": "12/34",
		"ab0927": "09/27",
	}
	for in, want := range cases {
		if got := ExpiryDate(in); got != want {
			t.Fatalf("ExpiryDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBRL(t *testing.T) {
	cases := map[int64]string{
		0:         "R$ 0,00",
		5:         "R$ 0,05",
		19990:     "R$ 199,90",
		57949:     "R$ 579,49",
		123456:    "R$ 1.234,56",
		123456789: "R$ 1.234.567,89",
		-4990:     "-R$ 49,90",
	}
	for in, want := range cases {
		if got := BRL(in); got != want {
			t.Fatalf("BRL(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestProcessFileName(t *testing.T) {
	if got := ProcessFileName("Ação Trabalhista"); got != "ação_trabalhista.pdf" {
		t.Fatalf("unexpected file name: %q", got)
	}
	if got := ProcessFileName("Petição   Inicial\tCível"); got != "petição_inicial_cível.pdf" {
		t.Fatalf("unexpected file name: %q", got)
	}
}
