package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/domain/format"
)

const (
	MinFullNameLength = 3
	MinPasswordLength = 8
	MinCardNameLength = 3
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field names reported by ProfileReport, matching the request JSON keys.
const (
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldCPF      = "cpf"
	FieldOAB      = "oab"
	FieldOABState = "oab_state"
	FieldPassword = "password"
)

func ValidFullName(s string) bool { return utf8.RuneCountInString(s) >= MinFullNameLength }

func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

func ValidCPF(s string) bool { return len(format.Digits(s)) == 11 }

func ValidOAB(s string) bool { return len(format.Digits(s)) == 6 }

func ValidOABState(s string) bool {
	for _, st := range entities.BrazilianStates {
		if st == s {
			return true
		}
	}
	return false
}

func ValidPassword(s string) bool { return utf8.RuneCountInString(s) >= MinPasswordLength }

// ProfileReport lists the step-one fields that fail their predicate.
func ProfileReport(f entities.RegistrationForm) []string {
	var invalid []string
	if !ValidFullName(f.FullName) {
		invalid = append(invalid, FieldFullName)
	}
	if !ValidEmail(f.Email) {
		invalid = append(invalid, FieldEmail)
	}
	if !ValidCPF(f.CPF) {
		invalid = append(invalid, FieldCPF)
	}
	if !ValidOAB(f.OAB) {
		invalid = append(invalid, FieldOAB)
	}
	if !ValidOABState(f.OABState) {
		invalid = append(invalid, FieldOABState)
	}
	if !ValidPassword(f.Password) {
		invalid = append(invalid, FieldPassword)
	}
	return invalid
}

// ProfileValid gates the move from the profile step to license selection.
func ProfileValid(f entities.RegistrationForm) bool {
	return len(ProfileReport(f)) == 0
}

// CardDetails is the local card sub-form.
type CardDetails struct {
	Number     string `json:"card_number"`
	Name       string `json:"card_name"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// Normalize applies the same masks the form applies on every keystroke.
func (c CardDetails) Normalize() CardDetails {
	return CardDetails{
		Number:     format.CardNumber(c.Number),
		Name:       strings.ToUpper(c.Name),
		ExpiryDate: format.ExpiryDate(c.ExpiryDate),
		CVV:        format.Digits(c.CVV),
	}
}

// CardValid reports whether a normalized card sub-form can be submitted.
func CardValid(c CardDetails) bool {
	return len(strings.ReplaceAll(c.Number, " ", "")) == 16 &&
		utf8.RuneCountInString(c.Name) >= MinCardNameLength &&
		len(c.ExpiryDate) == 5 &&
		len(c.CVV) == 3
}
