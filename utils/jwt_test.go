package utils

import (
	"strings"
	"testing"
	"time"

	"tidybook/config"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("sess-abc", time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	sessionID, err := ExtractSessionIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractSessionIDFromToken failed: %v", err)
	}
	if sessionID != "sess-abc" {
		t.Fatalf("expected session id sess-abc, got %q", sessionID)
	}
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := GenerateSessionToken("sess-abc", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	if _, err := ExtractSessionIDFromToken(token); err == nil {
		t.Fatalf("expected an error for an expired token")
	}
}

func TestSessionTokenTampered(t *testing.T) {
	token, err := GenerateSessionToken("sess-abc", time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := ExtractSessionIDFromToken(tampered); err == nil {
		t.Fatalf("expected an error for a tampered token")
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	if _, err := ExtractSessionIDFromToken("not-a-token"); err == nil {
		t.Fatalf("expected an error for garbage input")
	}
}

func TestSessionTokenUsesConfiguredSecret(t *testing.T) {
	original := config.AppConfig.JWTSecret
	defer func() { config.AppConfig.JWTSecret = original }()

	config.AppConfig.JWTSecret = "configured-secret"
	token, err := GenerateSessionToken("sess-abc", time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}
	if _, err := ExtractSessionIDFromToken(token); err != nil {
		t.Fatalf("token signed with configured secret did not validate: %v", err)
	}

	// Rotating the configured secret invalidates previously issued tokens.
	config.AppConfig.JWTSecret = "rotated-secret"
	if _, err := ExtractSessionIDFromToken(token); err == nil {
		t.Fatalf("expected validation to fail after secret rotation")
	}
}
