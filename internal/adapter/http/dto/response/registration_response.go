package response

import (
	"time"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/domain/format"
	"assistente_juridico/internal/domain/validation"
)

type RegistrationFormResponse struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	CPF         string `json:"cpf"`
	OAB         string `json:"oab"`
	OABState    string `json:"oab_state"`
	HasPassword bool   `json:"has_password"`
	LicenseType string `json:"license_type"`
}

type PaymentIntentStateResponse struct {
	Status       string `json:"status"`
	LicenseType  string `json:"license_type"`
	ClientSecret string `json:"client_secret,omitempty"`
	Amount       int64  `json:"amount,omitempty"`
	AmountLabel  string `json:"amount_display,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Retryable    bool   `json:"retryable"`
}

// RegistrationResponse mirrors the wizard. CanAdvance drives the step-one submit
// control; ShowPaymentForm is true once a payment intent is ready.
type RegistrationResponse struct {
	ID              string                      `json:"id"`
	Step            string                      `json:"step"`
	Form            RegistrationFormResponse    `json:"form"`
	CanAdvance      bool                        `json:"can_advance"`
	InvalidFields   []string                    `json:"invalid_fields"`
	ShowPaymentForm bool                        `json:"show_payment_form"`
	PaymentIntent   *PaymentIntentStateResponse `json:"payment_intent,omitempty"`
	LawyerID        string                      `json:"lawyer_id,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
	CompletedAt     *time.Time                  `json:"completed_at,omitempty"`
}

func FromRegistration(s entities.RegistrationSession) RegistrationResponse {
	invalid := []string{}
	if s.Step == entities.StepCollectingProfile {
		invalid = append(invalid, validation.ProfileReport(s.Form)...)
	}
	resp := RegistrationResponse{
		ID:   s.ID,
		Step: string(s.Step),
		Form: RegistrationFormResponse{
			FullName:    s.Form.FullName,
			Email:       s.Form.Email,
			CPF:         s.Form.CPF,
			OAB:         s.Form.OAB,
			OABState:    s.Form.OABState,
			HasPassword: s.Form.Password != "",
			LicenseType: string(s.Form.LicenseType),
		},
		CanAdvance:    s.Step == entities.StepCollectingProfile && len(invalid) == 0,
		InvalidFields: invalid,
		LawyerID:      s.LawyerID,
		CreatedAt:     s.CreatedAt,
		CompletedAt:   s.CompletedAt,
	}
	if pi := s.PaymentIntent; pi != nil {
		resp.PaymentIntent = FromPaymentIntentResult(*pi)
		resp.ShowPaymentForm = s.Step == entities.StepSelectingLicense && pi.Status == entities.PaymentIntentReady
	}
	return resp
}

func FromPaymentIntentResult(pi entities.PaymentIntentResult) *PaymentIntentStateResponse {
	out := &PaymentIntentStateResponse{
		Status:      string(pi.Status),
		LicenseType: string(pi.LicenseType),
		Reason:      pi.Reason,
		Retryable:   pi.Retryable,
	}
	if pi.Intent != nil {
		out.ClientSecret = pi.Intent.ClientSecret
		out.Amount = pi.Intent.Amount
		out.AmountLabel = format.BRL(pi.Intent.Amount)
	}
	return out
}

// PaymentIntentResponse is the `POST /api/create-payment-intent` body.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

func FromPaymentIntent(p entities.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{ClientSecret: p.ClientSecret, Amount: p.Amount, Currency: p.Currency}
}
