package workers

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/usecases"
)

// CacheInvalidationSubscriber applies invalidations broadcast by other replicas to the local cache tier.
type CacheInvalidationSubscriber struct {
	Logger              *log.Logger             `resolve:""`
	SubscriptionID      string                  `config:"CACHE_INVALIDATION_SUBSCRIPTION_ID" default:"cache-invalidations"`
	ContextManager      usecases.ContextManager `resolve:""`
	Client              *pubsub.Client
	workerExecutionChan chan struct{}
}

// Run starts the subscriber worker. Without a Pub/Sub client it idles until ctx is done.
func (s CacheInvalidationSubscriber) Run(ctx context.Context) error {
	if s.Client == nil {
		s.Client = resolveClient()
	}
	if s.Client == nil {
		s.Logger.Println("CacheInvalidationSubscriber: messaging disabled, idle")
		<-ctx.Done()
		return nil
	}

	s.Logger.Println("CacheInvalidationSubscriber: running...")

	err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, s.handle)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	s.Logger.Println("CacheInvalidationSubscriber: stopped")
	return nil
}

func (s CacheInvalidationSubscriber) handle(ctx context.Context, msg *pubsub.Message) {
	if s.workerExecutionChan != nil {
		defer func() {
			select {
			case s.workerExecutionChan <- struct{}{}:
			default:
			}
		}()
	}

	var event domain.CacheInvalidationEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		// Undecodable payloads never succeed on redelivery.
		s.Logger.Printf("CacheInvalidationSubscriber: dropping undecodable event: %v", err)
		msg.Ack()
		return
	}

	deleted, err := s.ContextManager.ApplyInvalidation(ctx, event)
	var validationErr *domain.ValidationErr
	switch {
	case err == nil:
		s.Logger.Printf("CacheInvalidationSubscriber: event %s dropped %d entries of %s", event.ID, deleted, event.DatabaseID)
		msg.Ack()
	case errors.As(err, &validationErr):
		s.Logger.Printf("CacheInvalidationSubscriber: dropping event %s: %v", event.ID, err)
		msg.Ack()
	default:
		s.Logger.Printf("CacheInvalidationSubscriber: %v", err)
		msg.Nack()
	}
}
