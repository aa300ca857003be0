package utils

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// generateSecureOTP generates a secure random OTP of the specified length.
// It returns a base32 encoded string (without padding) truncated to the desired length.
func generateSecureOTP(length int) (string, error) {
	numBytes := (length*5 + 7) / 8
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	otp := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(otp) > length {
		otp = otp[:length]
	}
	return otp, nil
}

// sendResetCode delivers the reset code to the account's phone or email.
// TODO: wire the SMS gateway once the provider contract is signed.
func sendResetCode(destination, code string) error {
	GetLogger().Sugar().Infof("Sending password reset code to %s: %s", destination, code)
	return nil
}

// InitiatePasswordReset generates a reset code, stores it in Redis with a
// 5-minute TTL keyed by account ID, and sends it to the given destination.
func InitiatePasswordReset(accountID, destination string) error {
	code, err := generateSecureOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}
	ttl := 5 * time.Minute
	key := fmt.Sprintf("reset:%s", accountID)

	ctx := context.Background()
	client := GetOTPCacheClient()
	if err := client.Set(ctx, key, code, ttl).Err(); err != nil {
		GetLogger().Error("Failed to cache reset code", zap.Error(err))
		return fmt.Errorf("failed to initiate password reset")
	}

	if err := sendResetCode(destination, code); err != nil {
		GetLogger().Error("Failed to send reset code", zap.Error(err))
		return fmt.Errorf("failed to send reset code")
	}
	return nil
}

// VerifyPasswordResetCode compares the provided code against the stored one
// and deletes it on success.
func VerifyPasswordResetCode(accountID, providedCode string) error {
	key := fmt.Sprintf("reset:%s", accountID)
	ctx := context.Background()
	client := GetOTPCacheClient()

	stored, err := client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("reset code not found or expired")
		}
		return fmt.Errorf("failed to retrieve reset code: %w", err)
	}
	if stored != providedCode {
		return fmt.Errorf("reset code does not match")
	}

	if err := client.Del(ctx, key).Err(); err != nil {
		GetLogger().Error("Failed to delete reset code after verification", zap.Error(err))
	}
	return nil
}
