package account

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"playfield/models"
	"playfield/utils"
)

const tokenTTL = 24 * time.Hour

// Register validates required fields, hashes the password, persists the
// account, and returns a fresh auth token. Self-registration never grants
// the super-admin role.
func (s *DefaultAccountService) Register(account models.Account) (*AuthResponse, error) {
	if account.Email == "" || account.Password == "" {
		return nil, newError(CodeValidation, "email and password are required")
	}
	if account.Name == "" {
		return nil, newError(CodeValidation, "name is required")
	}
	switch account.Role {
	case "":
		account.Role = models.RoleUser
	case models.RoleUser, models.RoleAdmin:
	default:
		return nil, newError(CodeValidation, "role %q cannot be self-assigned", account.Role)
	}

	existing, err := s.Repo.GetByEmail(account.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}
	if existing != nil {
		return nil, newError(CodeConflict, "account with email %s already exists", account.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account.PasswordHash = string(hashedPassword)
	account.Password = ""
	account.ID = uuid.New().String()

	token, err := utils.GenerateToken(account.ID, account.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	account.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &AuthResponse{ID: account.ID, Role: account.Role, Token: token}, nil
}

// Authenticate verifies the credentials. If valid, it rotates the auth token
// and returns the new one.
func (s *DefaultAccountService) Authenticate(email, password string) (*AuthResponse, error) {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account for authentication: %w", err)
	}
	if account == nil {
		return nil, newError(CodeUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, newError(CodeUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(account.ID, account.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(account.ID, map[string]interface{}{"tokenHash": utils.HashToken(token)}); err != nil {
		return nil, fmt.Errorf("failed to store auth token: %w", err)
	}

	return &AuthResponse{ID: account.ID, Role: account.Role, Token: token}, nil
}

// RevokeToken invalidates the account's current auth token.
func (s *DefaultAccountService) RevokeToken(accountID string) error {
	if err := s.Repo.UpdateSetDocument(accountID, map[string]interface{}{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}
	return nil
}

// ChangePassword rotates the password after verifying the current one, and
// revokes the existing token so stale sessions drop off.
func (s *DefaultAccountService) ChangePassword(accountID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return newError(CodeValidation, "new password is required")
	}
	account, err := s.Repo.GetByID(accountID)
	if err != nil {
		return fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return newError(CodeNotFound, "account %s not found", accountID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(currentPassword)); err != nil {
		return newError(CodeUnauthorized, "current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	fields := map[string]interface{}{"passwordHash": string(hashed), "tokenHash": ""}
	if err := s.Repo.UpdateSetDocument(accountID, fields); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// ForgotPassword sends a short-lived reset code to the account's contact.
// It answers uniformly so callers cannot probe which emails exist.
func (s *DefaultAccountService) ForgotPassword(email string) error {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil
	}

	destination := account.Phone
	if destination == "" {
		destination = account.Email
	}
	return utils.InitiatePasswordReset(account.ID, destination)
}

// ResetPassword sets a new password after verifying the reset code.
func (s *DefaultAccountService) ResetPassword(email, code, newPassword string) error {
	if newPassword == "" {
		return newError(CodeValidation, "new password is required")
	}
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return newError(CodeUnauthorized, "invalid reset code")
	}
	if err := utils.VerifyPasswordResetCode(account.ID, code); err != nil {
		return newError(CodeUnauthorized, "invalid reset code")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	fields := map[string]interface{}{"passwordHash": string(hashed), "tokenHash": ""}
	if err := s.Repo.UpdateSetDocument(account.ID, fields); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
