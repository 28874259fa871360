package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tidybook/config"
	"tidybook/models"

	"github.com/hibiken/asynq"
)

const TypeQuoteFollowup = "quote:followup"

// QuoteFollowupPayload is queued when a completed quote needs manual pricing.
type QuoteFollowupPayload struct {
	SessionID string             `json:"sessionId"`
	DeviceID  string             `json:"deviceId,omitempty"`
	Quote     models.QuoteResult `json:"quote"`
}

// FollowupClient enqueues follow-up tasks. Satisfies quote.FollowupScheduler.
type FollowupClient struct {
	client *asynq.Client
}

// NewFollowupClient builds the asynq client for the follow-up queue.
func NewFollowupClient() *FollowupClient {
	return &FollowupClient{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisFollowupDB,
		}),
	}
}

// EnqueueQuoteFollowup schedules a manual-quote follow-up shortly after
// completion so the ops team reaches out while the customer is still warm.
func (c *FollowupClient) EnqueueQuoteFollowup(sessionID, deviceID string, result models.QuoteResult) error {
	payload := QuoteFollowupPayload{
		SessionID: sessionID,
		DeviceID:  deviceID,
		Quote:     result,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeQuoteFollowup, b)
	_, err = c.client.Enqueue(task, asynq.ProcessIn(5*time.Minute), asynq.MaxRetry(3))
	return err
}

// InitFollowupWorker runs the async worker in background.
func InitFollowupWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFollowupDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeQuoteFollowup, handleQuoteFollowup)

	// Start async worker with retry logic
	go func() {
		log.Println("[FollowupWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FollowupWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FollowupWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleQuoteFollowup(ctx context.Context, task *asynq.Task) error {
	var p QuoteFollowupPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[FollowupHandler] invalid payload: %v", err)
		return err
	}

	// Dispatch to the ops queue. Today that is a structured log the ops
	// dashboard tails; a CRM hook can replace this without touching callers.
	log.Printf("[FollowupHandler] manual quote needed: session=%s device=%s serviceType=%s cleanliness=%d rooms=%d",
		p.SessionID, p.DeviceID, p.Quote.ServiceType, p.Quote.CleanlinessLevel, p.Quote.Rooms.TotalRooms())
	return nil
}
