package services

import (
	"errors"
	"strings"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
)

var ErrPasswordMismatch = errors.New("passwords do not match")

// ValidateLogin only checks presence: no credentials are verified.
func ValidateLogin(req models.LoginRequest) (models.AccountResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return models.AccountResponse{}, ErrMissingFields
	}
	return models.AccountResponse{Email: email}, nil
}

// ValidateRegistration checks the create-account form. No account is stored.
func ValidateRegistration(req models.RegisterRequest) (models.AccountResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return models.AccountResponse{}, ErrMissingFields
	}
	if req.Password != req.ConfirmPassword {
		return models.AccountResponse{}, ErrPasswordMismatch
	}
	return models.AccountResponse{Name: name, Email: email}, nil
}
