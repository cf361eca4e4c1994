package request

import (
	"strings"

	"assistente_juridico/internal/domain/validation"
)

// RegistrationProfileRequest patches step one of the wizard. Absent fields are kept.
type RegistrationProfileRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	CPF      *string `json:"cpf"`
	OAB      *string `json:"oab"`
	OABState *string `json:"oab_state"`
	Password *string `json:"password"`
}

type SelectLicenseRequest struct {
	LicenseType string `json:"license_type" binding:"required"`
}

type CardRequest struct {
	Number     string `json:"card_number"`
	Name       string `json:"card_name"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// ConfirmPaymentRequest confirms the payment collected by the external form. The
// card sub-form is optional: hosted payment forms never send it here.
type ConfirmPaymentRequest struct {
	Card *CardRequest `json:"card"`
}

func (r ConfirmPaymentRequest) CardDetails() *validation.CardDetails {
	if r.Card == nil {
		return nil
	}
	return &validation.CardDetails{
		Number:     strings.TrimSpace(r.Card.Number),
		Name:       strings.TrimSpace(r.Card.Name),
		ExpiryDate: strings.TrimSpace(r.Card.ExpiryDate),
		CVV:        strings.TrimSpace(r.Card.CVV),
	}
}
