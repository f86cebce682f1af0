package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kinship-labs/kinship-ui/internal/domain/model"
)

const defaultSummaryTTL = 30 * time.Second

// SummaryStore caches the most-recent-events snapshot rendered on project
// overview pages. A short TTL keeps the widget fresh without hitting the
// backend on every overview render.
type SummaryStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewSummaryStore creates a summary snapshot cache with the given TTL.
// A non-positive TTL falls back to the default.
func NewSummaryStore(client redis.UniversalClient, ttl time.Duration) *SummaryStore {
	if ttl <= 0 {
		ttl = defaultSummaryTTL
	}
	return &SummaryStore{client: client, prefix: "feed_summary:", ttl: ttl}
}

// Get returns the cached snapshot and whether one was present.
func (s *SummaryStore) Get(ctx context.Context, projectID string) ([]model.Event, bool, error) {
	if projectID == "" {
		return nil, false, nil
	}

	data, err := s.client.Get(ctx, s.prefix+projectID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var events []model.Event
	if unmarshalErr := json.Unmarshal([]byte(data), &events); unmarshalErr != nil {
		return nil, false, fmt.Errorf("unmarshal summary: %w", unmarshalErr)
	}
	return events, true, nil
}

// Set stores a fresh snapshot under the configured TTL.
func (s *SummaryStore) Set(ctx context.Context, projectID string, events []model.Event) error {
	if projectID == "" {
		return errors.New("project id cannot be empty")
	}
	if events == nil {
		events = []model.Event{}
	}

	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	return s.client.Set(ctx, s.prefix+projectID, data, s.ttl).Err()
}

// Invalidate drops the cached snapshot, typically after a write.
func (s *SummaryStore) Invalidate(ctx context.Context, projectID string) error {
	if projectID == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+projectID).Err()
}
