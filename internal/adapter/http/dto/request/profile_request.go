package request

type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type SubscriptionRequest struct {
	LicenseType string `json:"license_type" binding:"required"`
}

type CreditsRequest struct {
	Amount int `json:"amount" binding:"required"`
}
