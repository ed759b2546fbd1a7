package models

// LoginRequest is the sign-in form.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"shopper@example.com"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// RegisterRequest is the create-account form.
type RegisterRequest struct {
	Name            string `json:"name" binding:"required" example:"Sam Shopper"`
	Email           string `json:"email" binding:"required,email" example:"shopper@example.com"`
	Password        string `json:"password" binding:"required" example:"secret"`
	ConfirmPassword string `json:"confirmPassword" binding:"required" example:"secret"`
}

// AccountResponse is returned by the auth forms. No account is persisted.
type AccountResponse struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}
