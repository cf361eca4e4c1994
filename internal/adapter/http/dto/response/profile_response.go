package response

import (
	"time"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/domain/format"
)

type LawyerResponse struct {
	ID               string    `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	CPF              string    `json:"cpf"`
	OABNumber        string    `json:"oab_number"`
	OABState         string    `json:"oab_state"`
	SubscriptionTier string    `json:"subscription_tier"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	Credits          int       `json:"credits"`
	CreatedAt        time.Time `json:"created_at"`
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	Purpose       string    `json:"purpose"`
	LicenseType   string    `json:"license_type,omitempty"`
	Amount        int64     `json:"amount"`
	AmountDisplay string    `json:"amount_display"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
}

type ProfileResponse struct {
	Lawyer   LawyerResponse    `json:"lawyer"`
	Payments []PaymentResponse `json:"payments"`
}

type PurchaseResponse struct {
	Lawyer        LawyerResponse              `json:"lawyer"`
	PaymentIntent *PaymentIntentStateResponse `json:"payment_intent"`
	Payment       *PaymentResponse            `json:"payment,omitempty"`
}

type SessionResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	OwnerID   string          `json:"owner_id"`
	Demo      bool            `json:"demo"`
	Lawyer    *LawyerResponse `json:"lawyer,omitempty"`
}

func FromLawyer(l entities.Lawyer) LawyerResponse {
	return LawyerResponse{
		ID:               l.ID,
		FullName:         l.FullName,
		Email:            l.Email,
		CPF:              l.CPF,
		OABNumber:        l.OABNumber,
		OABState:         l.OABState,
		SubscriptionTier: string(l.SubscriptionTier),
		AvatarURL:        l.AvatarURL,
		Credits:          l.Credits,
		CreatedAt:        l.CreatedAt,
	}
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Purpose:       string(p.Purpose),
		LicenseType:   string(p.LicenseType),
		Amount:        p.Amount,
		AmountDisplay: format.BRL(p.Amount),
		Date:          p.Date,
		Status:        string(p.Status),
	}
}

func FromProfile(lawyer entities.Lawyer, payments []entities.Payment) ProfileResponse {
	out := ProfileResponse{Lawyer: FromLawyer(lawyer), Payments: make([]PaymentResponse, 0, len(payments))}
	for _, p := range payments {
		out.Payments = append(out.Payments, FromPayment(p))
	}
	return out
}

func FromPurchase(l entities.Lawyer, intent entities.PaymentIntentResult, payment *entities.Payment) PurchaseResponse {
	out := PurchaseResponse{Lawyer: FromLawyer(l), PaymentIntent: FromPaymentIntentResult(intent)}
	if payment != nil {
		p := FromPayment(*payment)
		out.Payment = &p
	}
	return out
}

func FromSession(token string, expiresAt time.Time, id entities.Identity, lawyer *entities.Lawyer) SessionResponse {
	out := SessionResponse{Token: token, ExpiresAt: expiresAt, OwnerID: id.OwnerID, Demo: id.Demo}
	if lawyer != nil {
		l := FromLawyer(*lawyer)
		out.Lawyer = &l
	}
	return out
}
