package request

// LoginRequest carries the login form. Both fields are checked by the use case so
// the pt-BR message is the same whichever is missing.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
