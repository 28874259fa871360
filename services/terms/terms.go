package terms

import (
	"context"
	"fmt"
	"time"

	"tidybook/config"
	"tidybook/models"

	"github.com/go-redis/redis/v8"
)

const acceptancePrefix = "terms:accepted:"

// TermsService gates checkout behind acceptance of the current terms version.
type TermsService interface {
	GetSections() []models.TermsSection
	Accept(ctx context.Context, deviceID string) error
	Status(ctx context.Context, deviceID string) (models.TermsStatus, error)
}

// DefaultTermsService records acceptance per device in Redis.
type DefaultTermsService struct {
	Cache *redis.Client
}

// GetSections returns all legal documents shown in the terms gate.
func (s *DefaultTermsService) GetSections() []models.TermsSection {
	now := time.Now().UTC().Format(time.RFC3339)
	version := config.AppConfig.TermsVersion

	return []models.TermsSection{
		{
			ID:      "tos",
			Title:   "Terms of Service",
			Summary: "These terms govern your use of the Tidybook booking platform.",
			Content: generateTermsOfService(),
			Version: version,
			Updated: now,
		},
		{
			ID:      "privacy",
			Title:   "Privacy Policy",
			Summary: "How Tidybook collects and uses personal data.",
			Content: generatePrivacyPolicy(),
			Version: version,
			Updated: now,
		},
		{
			ID:      "recording",
			Title:   "Video Recording Consent",
			Summary: "What opting into visit recording means and how footage is handled.",
			Content: generateRecordingPolicy(),
			Version: version,
			Updated: now,
		},
		{
			ID:      "payments",
			Title:   "Payment & Cancellation Policy",
			Summary: "How payments, refunds, and cancellations work on Tidybook.",
			Content: generatePaymentPolicy(),
			Version: version,
			Updated: now,
		},
	}
}

// Accept records that a device accepted the current terms version.
func (s *DefaultTermsService) Accept(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return fmt.Errorf("device id is required")
	}
	key := acceptancePrefix + deviceID
	return s.Cache.Set(ctx, key, config.AppConfig.TermsVersion, 0).Err()
}

// Status reports whether a device has accepted the current version. A stale
// acceptance (older version) does not count.
func (s *DefaultTermsService) Status(ctx context.Context, deviceID string) (models.TermsStatus, error) {
	status := models.TermsStatus{
		DeviceID:       deviceID,
		CurrentVersion: config.AppConfig.TermsVersion,
	}

	key := acceptancePrefix + deviceID
	accepted, err := s.Cache.Get(ctx, key).Result()
	if err == redis.Nil {
		return status, nil
	}
	if err != nil {
		return status, err
	}

	status.AcceptedVersion = accepted
	status.Accepted = accepted == status.CurrentVersion
	return status, nil
}
