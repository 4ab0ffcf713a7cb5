package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EventType_CACHE_INVALIDATED is the event_type attribute of cache invalidation messages.
const EventType_CACHE_INVALIDATED = "CACHE.INVALIDATED"

// CacheInvalidationPublisher implements domain.CacheInvalidationPublisher using Google Cloud Pub/Sub
type CacheInvalidationPublisher struct {
	Client  *pubsubV2.Client
	TopicID string
}

// NewCacheInvalidationPublisher creates a new instance of CacheInvalidationPublisher
func NewCacheInvalidationPublisher(client *pubsubV2.Client, topicID string) CacheInvalidationPublisher {
	return CacheInvalidationPublisher{Client: client, TopicID: topicID}
}

// PublishCacheInvalidation publishes the event so every replica drops its local entries.
func (p CacheInvalidationPublisher) PublishCacheInvalidation(ctx context.Context, event domain.CacheInvalidationEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("database_id", event.DatabaseID),
			attribute.String("pattern", event.Pattern),
			attribute.String("topic", p.TopicID),
		),
	)
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to encode cache invalidation: %w", err)
	}

	result := p.Client.Publisher(p.TopicID).Publish(spanCtx, &pubsubV2.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_type":  EventType_CACHE_INVALIDATED,
			"database_id": event.DatabaseID,
		},
	})

	_, err = result.Get(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to publish cache invalidation: %w", err)
	}
	return nil
}

// InitCacheInvalidationPublisher registers the CacheInvalidationPublisher when messaging is enabled.
type InitCacheInvalidationPublisher struct {
	Logger  *log.Logger `resolve:""`
	TopicID string      `config:"CACHE_INVALIDATION_TOPIC_ID" default:"cache-invalidations"`
}

// Initialize registers the publisher as the implementation of domain.CacheInvalidationPublisher
func (i InitCacheInvalidationPublisher) Initialize(ctx context.Context) (context.Context, error) {
	client := resolveClient()
	if client == nil {
		i.Logger.Println("InitCacheInvalidationPublisher: messaging disabled, invalidations stay local to this replica")
		return ctx, nil
	}
	depend.Register[domain.CacheInvalidationPublisher](NewCacheInvalidationPublisher(client, i.TopicID))
	return ctx, nil
}
