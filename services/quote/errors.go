package quote

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a quote session is missing or expired.
var ErrSessionNotFound = errors.New("quote session not found or expired")

// QuoteError carries a machine-readable code alongside the message.
type QuoteError struct {
	Code    string
	Message string
}

func (e *QuoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewQuoteError(code, msg string) error {
	return &QuoteError{Code: code, Message: msg}
}
