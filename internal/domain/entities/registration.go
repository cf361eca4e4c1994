package entities

import "time"

// RegistrationStep is the wizard state.
type RegistrationStep string

const (
	StepCollectingProfile RegistrationStep = "collecting_profile"
	StepSelectingLicense  RegistrationStep = "selecting_license"
	StepCompleted         RegistrationStep = "completed"
)

// BrazilianStates is the fixed enumeration accepted for the OAB section.
var BrazilianStates = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS", "MG",
	"PA", "PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// RegistrationForm is the field-by-field state of step one plus the chosen tier.
type RegistrationForm struct {
	FullName    string      `json:"full_name"`
	Email       string      `json:"email"`
	CPF         string      `json:"cpf"`
	OAB         string      `json:"oab"`
	OABState    string      `json:"oab_state"`
	Password    string      `json:"-"`
	LicenseType LicenseType `json:"license_type"`
}

type PaymentIntentStatus string

const (
	PaymentIntentRequesting PaymentIntentStatus = "requesting"
	PaymentIntentReady      PaymentIntentStatus = "ready"
	PaymentIntentFailed     PaymentIntentStatus = "failed"
)

// PaymentIntent is the token handed out by the payment collaborator for a given amount.
type PaymentIntent struct {
	ClientSecret string `json:"client_secret"`
	ProviderID   string `json:"provider_id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// PaymentIntentResult is what the wizard remembers about the last intent request.
type PaymentIntentResult struct {
	Status      PaymentIntentStatus `json:"status"`
	LicenseType LicenseType         `json:"license_type"`
	Intent      *PaymentIntent      `json:"intent,omitempty"`
	Reason      string              `json:"reason,omitempty"`
	Retryable   bool                `json:"retryable"`
}

// RegistrationSession is one run of the two-step wizard.
type RegistrationSession struct {
	ID            string               `json:"id"`
	Step          RegistrationStep     `json:"step"`
	Form          RegistrationForm     `json:"form"`
	PaymentIntent *PaymentIntentResult `json:"payment_intent,omitempty"`
	LawyerID      string               `json:"lawyer_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	CompletedAt   *time.Time           `json:"completed_at,omitempty"`
}
