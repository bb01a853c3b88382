package enrichment

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TypeEnrichProspect is the task type for AI prospect enrichment
const TypeEnrichProspect = "prospect:enrich"

// EnrichPayload is the task payload
type EnrichPayload struct {
	ProspectID uuid.UUID `json:"prospect_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address,omitempty"`
	Website    string    `json:"website,omitempty"`
}

// Enqueuer pushes enrichment jobs onto the queue
type Enqueuer struct {
	client     *asynq.Client
	maxRetries int
}

// NewEnqueuer creates a new enqueuer
func NewEnqueuer(client *asynq.Client, maxRetries int) *Enqueuer {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &Enqueuer{client: client, maxRetries: maxRetries}
}

// Enqueue queues an enrichment job for a prospect. Failed jobs are
// retried with exponential backoff starting at 5 seconds.
func (e *Enqueuer) Enqueue(payload EnrichPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal enrichment payload: %w", err)
	}

	task := asynq.NewTask(TypeEnrichProspect, data)

	_, err = e.client.Enqueue(task,
		asynq.MaxRetry(e.maxRetries),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue enrichment task: %w", err)
	}
	return nil
}

// RetryDelay implements the exponential backoff schedule: 5s, 10s,
// 20s and so on.
func RetryDelay(n int, _ error, _ *asynq.Task) time.Duration {
	return time.Duration(5*(1<<n)) * time.Second
}
