package quote

import (
	"context"

	prefsRepo "tidybook/database/repository/preferences"
	"tidybook/models"
	"tidybook/services/pricing"

	"go.uber.org/zap"
)

// QuoteUpdate is a partial update to the wizard context. Nil fields are left
// untouched; every update triggers a full breakdown recomputation.
type QuoteUpdate struct {
	Rooms               *models.RoomSelection `json:"rooms,omitempty"`
	ServiceType         *string               `json:"serviceType,omitempty"`
	CleanlinessLevel    *int                  `json:"cleanlinessLevel,omitempty"`
	Frequency           *string               `json:"frequency,omitempty"`
	PaymentFrequency    *string               `json:"paymentFrequency,omitempty"`
	AllowVideoRecording *bool                 `json:"allowVideoRecording,omitempty"`
}

// FollowupScheduler queues a follow-up for quotes that need manual handling.
type FollowupScheduler interface {
	EnqueueQuoteFollowup(sessionID, deviceID string, result models.QuoteResult) error
}

// QuoteSessionService manages the stateful pricing wizard session.
type QuoteSessionService interface {
	InitiateQuote(ctx context.Context, deviceID string) (*models.QuoteSession, error)
	GetQuote(ctx context.Context, sessionID string) (*models.QuoteSession, error)
	UpdateQuote(ctx context.Context, sessionID string, update QuoteUpdate) (*models.QuoteSession, error)
	SaveRoomConfiguration(ctx context.Context, sessionID, roomType string, input models.RoomConfigurationInput) (*models.QuoteSession, error)
	CompleteQuote(ctx context.Context, sessionID string) (*models.QuoteResult, error)
	CancelQuote(ctx context.Context, sessionID string) error
}

// DefaultQuoteSessionService implements QuoteSessionService.
type DefaultQuoteSessionService struct {
	Store      SessionStore
	PricingSvc pricing.PricingService
	PrefsRepo  prefsRepo.PreferencesRepository
	Followups  FollowupScheduler
	Logger     *zap.Logger
}
