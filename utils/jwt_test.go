package utils

import (
	"testing"
	"time"

	"playfield/config"
)

func TestGenerateTokenSignsWithConfiguredSecret(t *testing.T) {
	defer func() { config.AppConfig.JWTSecret = "" }()

	config.AppConfig.JWTSecret = "first-secret"
	token, err := GenerateToken("acct-1", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if sub, err := ExtractIDFromToken(token); err != nil || sub != "acct-1" {
		t.Fatalf("ExtractIDFromToken = %q, %v", sub, err)
	}

	// Tokens signed under one secret must not validate under another.
	config.AppConfig.JWTSecret = "second-secret"
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("token validated after the signing secret changed")
	}
}

func TestExtractIDFromTokenRejectsGarbage(t *testing.T) {
	if _, err := ExtractIDFromToken("not-a-token"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}
