package validation

import (
	"reflect"
	"testing"

	"assistente_juridico/internal/domain/entities"
)

func validForm() entities.RegistrationForm {
	return entities.RegistrationForm{
		FullName: "Joao Silva",
		Email:    "joao@x.com",
		CPF:      "123.456.789-01",
		OAB:      "123.456",
		OABState: "SP",
		Password: "12345678",
	}
}

func TestProfileValid(t *testing.T) {
	t.Run("all predicates hold", func(t *testing.T) {
		if !ProfileValid(validForm()) {
			t.Fatalf("expected valid form, report=%v", ProfileReport(validForm()))
		}
	})

	t.Run("unformatted digits are accepted", func(t *testing.T) {
		f := validForm()
		f.CPF = "12345678901"
		f.OAB = "123456"
		if !ProfileValid(f) {
			t.Fatalf("expected valid form")
		}
	})

	cases := []struct {
		name   string
		mutate func(*entities.RegistrationForm)
		field  string
	}{
		{"short name", func(f *entities.RegistrationForm) { f.FullName = "Jo" }, FieldFullName},
		{"email without tld", func(f *entities.RegistrationForm) { f.Email = "joao@x" }, FieldEmail},
		{"email with space", func(f *entities.RegistrationForm) { f.Email = "jo ao@x.com" }, FieldEmail},
		{"cpf with 10 digits", func(f *entities.RegistrationForm) { f.CPF = "123.456.789-0" }, FieldCPF},
		{"oab with 5 digits", func(f *entities.RegistrationForm) { f.OAB = "123.45" }, FieldOAB},
		{"state missing", func(f *entities.RegistrationForm) { f.OABState = "" }, FieldOABState},
		{"state unknown", func(f *entities.RegistrationForm) { f.OABState = "XX" }, FieldOABState},
		{"password short", func(f *entities.RegistrationForm) { f.Password = "1234567" }, FieldPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutate(&f)
			if ProfileValid(f) {
				t.Fatalf("expected invalid form")
			}
			if got := ProfileReport(f); !reflect.DeepEqual(got, []string{tc.field}) {
				t.Fatalf("expected report [%s], got %v", tc.field, got)
			}
		})
	}

	t.Run("three-letter accented name counts runes", func(t *testing.T) {
		f := validForm()
		f.FullName = "Zoé"
		if !ValidFullName(f.FullName) {
			t.Fatalf("expected 3 runes to be valid")
		}
	})
}

func TestBrazilianStatesEnumeration(t *testing.T) {
	if len(entities.BrazilianStates) != 27 {
		t.Fatalf("expected 27 states, got %d", len(entities.BrazilianStates))
	}
	for _, st := range entities.BrazilianStates {
		if !ValidOABState(st) {
			t.Fatalf("state %s rejected", st)
		}
	}
}

func TestCardValid(t *testing.T) {
	c := CardDetails{Number: "4111111111111111", Name: "joao silva", ExpiryDate: "1230", CVV: "12a3"}.Normalize()
	if c.Number != "4111 1111 1111 1111" || c.Name != "JOAO SILVA" || c.ExpiryDate != "12/30" || c.CVV != "123" {
		t.Fatalf("unexpected normalization: %+v", c)
	}
	if !CardValid(c) {
		t.Fatalf("expected valid card")
	}

	c.CVV = "12"
	if CardValid(c) {
		t.Fatalf("expected invalid cvv")
	}
}
