package account

import (
	"fmt"

	"playfield/models"
)

// GetByID retrieves an account with sensitive fields stripped.
func (s *DefaultAccountService) GetByID(accountID string) (*models.Account, error) {
	account, err := s.Repo.GetByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, newError(CodeNotFound, "account %s not found", accountID)
	}
	account.PasswordHash = ""
	account.TokenHash = ""
	return account, nil
}

// GetAll lists all accounts; the repository projection drops sensitive fields.
func (s *DefaultAccountService) GetAll() ([]models.Account, error) {
	accounts, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateFCMToken stores the device token used for push notifications.
func (s *DefaultAccountService) UpdateFCMToken(accountID, fcmToken string) error {
	account, err := s.Repo.GetByID(accountID)
	if err != nil {
		return fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return newError(CodeNotFound, "account %s not found", accountID)
	}
	if err := s.Repo.UpdateSetDocument(accountID, map[string]interface{}{"fcmToken": fcmToken}); err != nil {
		return fmt.Errorf("failed to update device token: %w", err)
	}
	return nil
}
