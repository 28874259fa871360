package quote

import (
	"context"
	"testing"

	"tidybook/models"
	"tidybook/services/catalog"
	"tidybook/services/pricing"

	"go.uber.org/zap"
)

// memSessionStore is an in-memory SessionStore for tests.
type memSessionStore struct {
	sessions map[string]models.QuoteSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]models.QuoteSession)}
}

func (s *memSessionStore) Get(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	dup := session
	return &dup, nil
}

func (s *memSessionStore) Set(ctx context.Context, session *models.QuoteSession) error {
	s.sessions[session.SessionID] = *session
	return nil
}

func (s *memSessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

// memPrefsRepo is an in-memory PreferencesRepository for tests.
type memPrefsRepo struct {
	prefs map[string]models.UserPreferences
}

func newMemPrefsRepo() *memPrefsRepo {
	return &memPrefsRepo{prefs: make(map[string]models.UserPreferences)}
}

func (r *memPrefsRepo) GetByDeviceID(ctx context.Context, deviceID string) (*models.UserPreferences, error) {
	p, ok := r.prefs[deviceID]
	if !ok {
		return nil, nil
	}
	dup := p
	return &dup, nil
}

func (r *memPrefsRepo) Upsert(ctx context.Context, prefs models.UserPreferences) error {
	r.prefs[prefs.DeviceID] = prefs
	return nil
}

func (r *memPrefsRepo) DeleteByDeviceID(ctx context.Context, deviceID string) error {
	delete(r.prefs, deviceID)
	return nil
}

// captureScheduler records enqueued follow-ups.
type captureScheduler struct {
	sessionIDs []string
}

func (c *captureScheduler) EnqueueQuoteFollowup(sessionID, deviceID string, result models.QuoteResult) error {
	c.sessionIDs = append(c.sessionIDs, sessionID)
	return nil
}

func newTestQuoteService() (*DefaultQuoteSessionService, *memPrefsRepo, *captureScheduler) {
	prefs := newMemPrefsRepo()
	followups := &captureScheduler{}
	svc := &DefaultQuoteSessionService{
		Store: newMemSessionStore(),
		PricingSvc: &pricing.DefaultPricingService{
			Catalog: catalog.NewStaticCatalog(),
			Logger:  zap.NewNop(),
		},
		PrefsRepo: prefs,
		Followups: followups,
		Logger:    zap.NewNop(),
	}
	return svc, prefs, followups
}

func ptr[T any](v T) *T { return &v }

func TestInitiateQuote_Defaults(t *testing.T) {
	svc, _, _ := newTestQuoteService()
	ctx := context.Background()

	session, err := svc.InitiateQuote(ctx, "device-1")
	if err != nil {
		t.Fatalf("InitiateQuote failed: %v", err)
	}
	if session.SessionID == "" {
		t.Fatalf("expected a session id")
	}
	if session.Context.ServiceType != models.ServiceTypeStandard {
		t.Fatalf("expected standard service type, got %q", session.Context.ServiceType)
	}
	if session.Context.CleanlinessLevel != 1 {
		t.Fatalf("expected cleanliness level 1, got %d", session.Context.CleanlinessLevel)
	}
	if session.Context.Frequency != models.FrequencyOneTime {
		t.Fatalf("expected one-time frequency, got %q", session.Context.Frequency)
	}
	if session.Breakdown.TotalPrice != 0 {
		t.Fatalf("expected zero total for empty selection, got %v", session.Breakdown.TotalPrice)
	}

	got, err := svc.GetQuote(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}
	if got.SessionID != session.SessionID {
		t.Fatalf("stored session id mismatch")
	}
}

func TestInitiateQuote_SeedsFromPreferences(t *testing.T) {
	svc, prefs, _ := newTestQuoteService()
	ctx := context.Background()

	prefs.prefs["device-1"] = models.UserPreferences{
		DeviceID:                  "device-1",
		LastSelectedRooms:         models.RoomSelection{"bedroom": 2},
		PreferredServiceType:      models.ServiceTypeDetailing,
		PreferredFrequency:        models.FrequencyWeekly,
		PreferredPaymentFrequency: models.PaymentMonthly,
		AllowVideoRecording:       true,
	}

	session, err := svc.InitiateQuote(ctx, "device-1")
	if err != nil {
		t.Fatalf("InitiateQuote failed: %v", err)
	}
	if session.Context.Rooms["bedroom"] != 2 {
		t.Fatalf("expected seeded rooms, got %v", session.Context.Rooms)
	}
	if session.Context.ServiceType != models.ServiceTypeDetailing {
		t.Fatalf("expected seeded service type, got %q", session.Context.ServiceType)
	}
	if session.Context.Frequency != models.FrequencyWeekly {
		t.Fatalf("expected seeded frequency, got %q", session.Context.Frequency)
	}
	if !session.Context.AllowVideoRecording {
		t.Fatalf("expected seeded video flag")
	}
	// The initial breakdown reflects the seeded selection.
	if session.Breakdown.TotalPrice == 0 {
		t.Fatalf("expected a non-zero total for the seeded selection")
	}
}

func TestUpdateQuote_ClampsNegativeCounts(t *testing.T) {
	svc, _, _ := newTestQuoteService()
	ctx := context.Background()

	session, _ := svc.InitiateQuote(ctx, "")
	updated, err := svc.UpdateQuote(ctx, session.SessionID, QuoteUpdate{
		Rooms: &models.RoomSelection{"bedroom": -3, "kitchen": 1},
	})
	if err != nil {
		t.Fatalf("UpdateQuote failed: %v", err)
	}
	if updated.Context.Rooms["bedroom"] != 0 {
		t.Fatalf("expected negative count clamped to 0, got %d", updated.Context.Rooms["bedroom"])
	}
	if updated.Context.Rooms["kitchen"] != 1 {
		t.Fatalf("expected kitchen count 1, got %d", updated.Context.Rooms["kitchen"])
	}
}

func TestUpdateQuote_RejectsInvalidCleanlinessLevel(t *testing.T) {
	svc, _, _ := newTestQuoteService()
	ctx := context.Background()

	session, _ := svc.InitiateQuote(ctx, "")
	for _, level := range []int{0, 5, -1} {
		_, err := svc.UpdateQuote(ctx, session.SessionID, QuoteUpdate{CleanlinessLevel: ptr(level)})
		qerr, ok := err.(*QuoteError)
		if !ok || qerr.Code != "invalidCleanlinessLevel" {
			t.Fatalf("level %d: expected invalidCleanlinessLevel, got %v", level, err)
		}
	}
}

func TestUpdateQuote_RecomputesBreakdown(t *testing.T) {
	svc, _, _ := newTestQuoteService()
	ctx := context.Background()

	session, _ := svc.InitiateQuote(ctx, "")
	withRooms, err := svc.UpdateQuote(ctx, session.SessionID, QuoteUpdate{
		Rooms: &models.RoomSelection{"bedroom": 1},
	})
	if err != nil {
		t.Fatalf("UpdateQuote failed: %v", err)
	}
	if withRooms.Breakdown.TotalPrice <= 0 {
		t.Fatalf("expected positive total after adding a room, got %v", withRooms.Breakdown.TotalPrice)
	}

	dirtier, err := svc.UpdateQuote(ctx, session.SessionID, QuoteUpdate{CleanlinessLevel: ptr(3)})
	if err != nil {
		t.Fatalf("UpdateQuote failed: %v", err)
	}
	if dirtier.Breakdown.TotalPrice <= withRooms.Breakdown.TotalPrice {
		t.Fatalf("expected higher total at level 3: %v vs %v",
			dirtier.Breakdown.TotalPrice, withRooms.Breakdown.TotalPrice)
	}
	if dirtier.Breakdown.IsServiceAvailable {
		t.Fatalf("standard service at level 3 must be unavailable")
	}
}

func TestUpdateQuote_UnknownSession(t *testing.T) {
	svc, _, _ := newTestQuoteService()

	_, err := svc.UpdateQuote(context.Background(), "no-such-session", QuoteUpdate{})
	if err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSaveRoomConfiguration_FeedsTotal(t *testing.T) {
	svc, _, _ := newTestQuoteService()
	ctx := context.Background()

	session, _ := svc.InitiateQuote(ctx, "")
	_, err := svc.UpdateQuote(ctx, session.SessionID, QuoteUpdate{
		Rooms: &models.RoomSelection{"kitchen": 1},
	})
	if err != nil {
		t.Fatalf("UpdateQuote failed: %v", err)
	}

	configured, err := svc.SaveRoomConfiguration(ctx, session.SessionID, "kitchen", models.RoomConfigurationInput{
		SelectedTier:   "Deluxe",
		SelectedAddOns: []string{"inside-oven"},
	})
	if err != nil {
		t.Fatalf("SaveRoomConfiguration failed: %v", err)
	}

	cfg, ok := configured.Context.RoomConfigurations["kitchen"]
	if !ok {
		t.Fatalf("expected a saved kitchen configuration")
	}
	if cfg.TotalPrice <= 0 {
		t.Fatalf("expected a positive configured price, got %v", cfg.TotalPrice)
	}
	// Base price now comes from the configured room, not the flat rate.
	if configured.Breakdown.BasePrice != cfg.TotalPrice {
		t.Fatalf("expected base %v from configuration, got %v",
			cfg.TotalPrice, configured.Breakdown.BasePrice)
	}
}

func TestCompleteQuote_PersistsPreferences(t *testing.T) {
	svc, prefs, followups := newTestQuoteService()
	ctx := context.Background()

	session, _ := svc.InitiateQuote(ctx, "device-9")
	_, err := svc.UpdateQuote(ctx, session.SessionID, QuoteUpdate{
		Rooms:       &models.RoomSelection{"bathroom": 1},
		ServiceType: ptr(models.ServiceTypeDetailing),
	})
	if err != nil {
		t.Fatalf("UpdateQuote failed: %v", err)
	}

	result, err := svc.CompleteQuote(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("CompleteQuote failed: %v", err)
	}
	if result.Breakdown.TotalPrice <= 0 {
		t.Fatalf("expected positive total, got %v", result.Breakdown.TotalPrice)
	}

	saved, ok := prefs.prefs["device-9"]
	if !ok {
		t.Fatalf("expected preferences to be persisted")
	}
	if saved.PreferredServiceType != models.ServiceTypeDetailing {
		t.Fatalf("expected persisted service type, got %q", saved.PreferredServiceType)
	}
	if saved.LastSelectedRooms["bathroom"] != 1 {
		t.Fatalf("expected persisted rooms, got %v", saved.LastSelectedRooms)
	}

	// Available quote: no follow-up queued.
	if len(followups.sessionIDs) != 0 {
		t.Fatalf("unexpected follow-up for an available quote")
	}

	// Completed sessions are frozen.
	_, err = svc.UpdateQuote(ctx, session.SessionID, QuoteUpdate{CleanlinessLevel: ptr(2)})
	qerr, ok := err.(*QuoteError)
	if !ok || qerr.Code != "sessionCompleted" {
		t.Fatalf("expected sessionCompleted, got %v", err)
	}
}

func TestCompleteQuote_UnavailableEnqueuesFollowup(t *testing.T) {
	svc, _, followups := newTestQuoteService()
	ctx := context.Background()

	session, _ := svc.InitiateQuote(ctx, "device-2")
	_, err := svc.UpdateQuote(ctx, session.SessionID, QuoteUpdate{
		Rooms:            &models.RoomSelection{"bedroom": 1},
		CleanlinessLevel: ptr(4),
	})
	if err != nil {
		t.Fatalf("UpdateQuote failed: %v", err)
	}

	result, err := svc.CompleteQuote(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("CompleteQuote failed: %v", err)
	}
	if result.Breakdown.IsServiceAvailable {
		t.Fatalf("expected unavailable breakdown at level 4")
	}
	if len(followups.sessionIDs) != 1 || followups.sessionIDs[0] != session.SessionID {
		t.Fatalf("expected one follow-up for the session, got %v", followups.sessionIDs)
	}
}

func TestCancelQuote(t *testing.T) {
	svc, _, _ := newTestQuoteService()
	ctx := context.Background()

	session, _ := svc.InitiateQuote(ctx, "")
	if err := svc.CancelQuote(ctx, session.SessionID); err != nil {
		t.Fatalf("CancelQuote failed: %v", err)
	}
	if _, err := svc.GetQuote(ctx, session.SessionID); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after cancel, got %v", err)
	}
}
