package entities

import "time"

// Lawyer is the account created when the registration wizard completes.
type Lawyer struct {
	ID               string      `json:"id"`
	FullName         string      `json:"full_name"`
	Email            string      `json:"email"`
	CPF              string      `json:"cpf"`
	OABNumber        string      `json:"oab_number"`
	OABState         string      `json:"oab_state"`
	SubscriptionTier LicenseType `json:"subscription_tier"`
	PasswordHash     string      `json:"-"`
	AvatarURL        string      `json:"avatar_url,omitempty"`
	Credits          int         `json:"credits"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
