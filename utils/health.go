package utils

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus names each backing service the ordering flow depends on:
// Mongo for orders and preferences, one Redis DB for quote sessions, and
// another for terms acceptance.
type HealthStatus struct {
	Mongo      bool      `json:"mongo"`
	QuoteCache bool      `json:"quoteCache"`
	TermsCache bool      `json:"termsCache"`
	CheckedAt  time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func probeHealth(mongoClient *mongo.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return HealthStatus{
		Mongo:      mongoClient.Ping(ctx, nil) == nil,
		QuoteCache: GetQuoteCacheClient().Ping(ctx).Err() == nil,
		TermsCache: GetTermsCacheClient().Ping(ctx).Err() == nil,
		CheckedAt:  time.Now().UTC(),
	}
}

// StartHealthMonitor probes the backing services once immediately and then
// every minute, keeping an in-memory snapshot for the /health endpoint.
func StartHealthMonitor(mongoClient *mongo.Client) {
	go func() {
		update := func() {
			snapshot := probeHealth(mongoClient)
			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
		update()

		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			update()
		}
	}()
}
