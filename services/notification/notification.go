package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"

	accountRepo "playfield/database/repository/account"
	"playfield/utils"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendPush(ctx context.Context, accountID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Accounts accountRepo.AccountRepository
}

// SendPush looks up an account's FCM token and sends a push. It is a no-op
// when push delivery is not configured.
func (s *DefaultNotificationService) SendPush(ctx context.Context, accountID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return nil
	}

	account, err := s.Accounts.GetByID(accountID)
	if err != nil {
		return fmt.Errorf("SendPush: could not find account %s: %w", accountID, err)
	}
	if account == nil || account.FCMToken == "" {
		return fmt.Errorf("SendPush: account %s has no FCM token", accountID)
	}

	msg := &messaging.Message{
		Token: account.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPush: failed to send FCM message: %w", err)
	}
	return nil
}
