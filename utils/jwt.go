package utils

import (
	"errors"
	"os"
	"time"

	"tidybook/config"

	"github.com/golang-jwt/jwt"
)

// signingSecret resolves the session-token secret: configuration first, then
// the environment, then a development fallback. Resolved per call so the
// config is honored regardless of initialization order.
func signingSecret() []byte {
	if s := config.AppConfig.JWTSecret; s != "" {
		return []byte(s)
	}
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("tidybook-dev")
}

// GenerateSessionToken creates a signed JWT bound to a quote session. Wizard
// calls that mutate the session must present it.
func GenerateSessionToken(sessionID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": sessionID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret())
}

// ValidateSessionToken parses and validates a token string and returns the token if valid.
func ValidateSessionToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return signingSecret(), nil
	})
}

// ExtractSessionIDFromToken extracts the session id (subject) from a valid
// token string.
func ExtractSessionIDFromToken(tokenString string) (string, error) {
	token, err := ValidateSessionToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}

	return sub, nil
}
