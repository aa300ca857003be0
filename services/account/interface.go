package account

import (
	accountRepo "playfield/database/repository/account"
	"playfield/models"
)

// AuthResponse contains only the account's ID, role and the JWT token.
type AuthResponse struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// AccountService defines business logic for account operations.
type AccountService interface {
	// Register validates the registration details, creates a new account,
	// generates a token, stores its hash, and returns the ID and token.
	Register(account models.Account) (*AuthResponse, error)
	// Authenticate verifies credentials and returns ID and token.
	Authenticate(email, password string) (*AuthResponse, error)
	// GetByID retrieves an account (safe view) by its unique ID.
	GetByID(accountID string) (*models.Account, error)
	// GetAll lists all accounts; super-admin surface.
	GetAll() ([]models.Account, error)
	// ChangePassword rotates the password after verifying the current one.
	ChangePassword(accountID, currentPassword, newPassword string) error
	// ForgotPassword sends a short-lived reset code to the account's contact.
	ForgotPassword(email string) error
	// ResetPassword sets a new password after verifying the reset code.
	ResetPassword(email, code, newPassword string) error
	// RevokeToken invalidates the account's current auth token.
	RevokeToken(accountID string) error
	// UpdateFCMToken stores the device token used for push notifications.
	UpdateFCMToken(accountID, fcmToken string) error
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo accountRepo.AccountRepository
}
