package quote

import (
	"context"
	"fmt"

	"tidybook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateQuote creates a new wizard session, seeded from the device's stored
// preferences when available, and computes the initial breakdown.
func (s *DefaultQuoteSessionService) InitiateQuote(ctx context.Context, deviceID string) (*models.QuoteSession, error) {
	pctx := models.PricingContext{
		Rooms:            models.RoomSelection{},
		ServiceType:      models.ServiceTypeStandard,
		CleanlinessLevel: 1,
		Frequency:        models.FrequencyOneTime,
		PaymentFrequency: models.PaymentPerService,
	}

	if deviceID != "" && s.PrefsRepo != nil {
		prefs, err := s.PrefsRepo.GetByDeviceID(ctx, deviceID)
		if err != nil {
			s.Logger.Warn("failed to load preferences, starting from defaults",
				zap.String("deviceId", deviceID), zap.Error(err))
		} else if prefs != nil {
			if len(prefs.LastSelectedRooms) > 0 {
				pctx.Rooms = prefs.LastSelectedRooms
			}
			if prefs.PreferredServiceType != "" {
				pctx.ServiceType = prefs.PreferredServiceType
			}
			if prefs.PreferredFrequency != "" {
				pctx.Frequency = prefs.PreferredFrequency
			}
			if prefs.PreferredPaymentFrequency != "" {
				pctx.PaymentFrequency = prefs.PreferredPaymentFrequency
			}
			pctx.AllowVideoRecording = prefs.AllowVideoRecording
		}
	}

	session := &models.QuoteSession{
		SessionID: uuid.New().String(),
		DeviceID:  deviceID,
		Context:   pctx,
		Breakdown: s.PricingSvc.Calculate(pctx),
	}

	if err := s.Store.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store quote session: %w", err)
	}
	return session, nil
}

// GetQuote returns the current session state.
func (s *DefaultQuoteSessionService) GetQuote(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// UpdateQuote applies a partial context update and recomputes the breakdown
// from scratch.
func (s *DefaultQuoteSessionService) UpdateQuote(ctx context.Context, sessionID string, update QuoteUpdate) (*models.QuoteSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, NewQuoteError("sessionCompleted", "completed sessions cannot be updated")
	}

	if update.Rooms != nil {
		rooms := models.RoomSelection{}
		for roomType, count := range *update.Rooms {
			// Negative counts are clamped at the point of mutation.
			if count < 0 {
				count = 0
			}
			rooms[roomType] = count
		}
		session.Context.Rooms = rooms
	}
	if update.ServiceType != nil {
		session.Context.ServiceType = *update.ServiceType
	}
	if update.CleanlinessLevel != nil {
		level := *update.CleanlinessLevel
		if level < 1 || level > 4 {
			return nil, NewQuoteError("invalidCleanlinessLevel", "cleanliness level must be between 1 and 4")
		}
		session.Context.CleanlinessLevel = level
	}
	if update.Frequency != nil {
		session.Context.Frequency = *update.Frequency
	}
	if update.PaymentFrequency != nil {
		session.Context.PaymentFrequency = *update.PaymentFrequency
	}
	if update.AllowVideoRecording != nil {
		session.Context.AllowVideoRecording = *update.AllowVideoRecording
	}

	session.Breakdown = s.PricingSvc.Calculate(session.Context)

	if err := s.Store.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update quote session: %w", err)
	}
	return session, nil
}

// SaveRoomConfiguration attaches a customized room configuration to the
// session and recomputes the breakdown with it.
func (s *DefaultQuoteSessionService) SaveRoomConfiguration(ctx context.Context, sessionID, roomType string, input models.RoomConfigurationInput) (*models.QuoteSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, NewQuoteError("sessionCompleted", "completed sessions cannot be updated")
	}

	config := s.PricingSvc.ComputeRoomConfiguration(roomType, input)
	if session.Context.RoomConfigurations == nil {
		session.Context.RoomConfigurations = make(map[string]models.RoomConfiguration)
	}
	session.Context.RoomConfigurations[roomType] = config
	session.Breakdown = s.PricingSvc.Calculate(session.Context)

	if err := s.Store.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save room configuration: %w", err)
	}
	return session, nil
}

// CompleteQuote finalizes the wizard: recomputes the breakdown one last time,
// persists the device's preferences for the next visit, and hands back the
// result the checkout flow consumes. Quotes flagged unavailable are queued
// for a manual follow-up.
func (s *DefaultQuoteSessionService) CompleteQuote(ctx context.Context, sessionID string) (*models.QuoteResult, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Breakdown = s.PricingSvc.Calculate(session.Context)
	session.Completed = true
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to finalize quote session: %w", err)
	}

	result := &models.QuoteResult{
		Rooms:               session.Context.Rooms,
		ServiceType:         session.Context.ServiceType,
		CleanlinessLevel:    session.Context.CleanlinessLevel,
		Frequency:           session.Context.Frequency,
		PaymentFrequency:    session.Context.PaymentFrequency,
		AllowVideoRecording: session.Context.AllowVideoRecording,
		Breakdown:           session.Breakdown,
	}

	if session.DeviceID != "" && s.PrefsRepo != nil {
		prefs := models.UserPreferences{
			DeviceID:                  session.DeviceID,
			LastSelectedRooms:         session.Context.Rooms,
			PreferredServiceType:      session.Context.ServiceType,
			PreferredFrequency:        session.Context.Frequency,
			PreferredPaymentFrequency: session.Context.PaymentFrequency,
			AllowVideoRecording:       session.Context.AllowVideoRecording,
		}
		if err := s.PrefsRepo.Upsert(ctx, prefs); err != nil {
			s.Logger.Warn("failed to persist preferences",
				zap.String("deviceId", session.DeviceID), zap.Error(err))
		}
	}

	if !session.Breakdown.IsServiceAvailable && s.Followups != nil {
		if err := s.Followups.EnqueueQuoteFollowup(session.SessionID, session.DeviceID, *result); err != nil {
			s.Logger.Error("failed to enqueue quote follow-up",
				zap.String("sessionId", session.SessionID), zap.Error(err))
		}
	}

	return result, nil
}

// CancelQuote discards the session.
func (s *DefaultQuoteSessionService) CancelQuote(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}
