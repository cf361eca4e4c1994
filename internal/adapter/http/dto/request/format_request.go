package request

import (
	"errors"
	"strings"

	"assistente_juridico/internal/domain/format"
)

var ErrUnknownFormatField = errors.New("unknown format field")

// FormatRequest asks the server to mask one form field the way the UI does on every keystroke.
type FormatRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// Apply re-derives the formatted value from the cumulative raw input.
func (r FormatRequest) Apply() (string, error) {
	switch strings.ToLower(strings.TrimSpace(r.Field)) {
	case "card", "card_number":
		return format.CardNumber(r.Value), nil
	case "expiry", "expiry_date":
		return format.ExpiryDate(r.Value), nil
	case "cpf":
		return format.CPF(r.Value), nil
	case "oab":
		return format.OAB(r.Value), nil
	default:
		return "", ErrUnknownFormatField
	}
}
