package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

type PaymentPurpose string

const (
	PaymentPurposeSubscription PaymentPurpose = "subscription"
	PaymentPurposeCredits      PaymentPurpose = "credits"
)

// Payment is a confirmed charge against a lawyer account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (lawyer_id-index): lawyer_id
//
// ProviderPayloadRaw keeps the collaborator response for audit.
type Payment struct {
	ID          string         `json:"id"`
	LawyerID    string         `json:"lawyer_id"`
	Purpose     PaymentPurpose `json:"purpose"`
	LicenseType LicenseType    `json:"license_type,omitempty"`
	Amount      int64          `json:"amount"`
	Date        time.Time      `json:"date"`
	Status      PaymentStatus  `json:"status"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
