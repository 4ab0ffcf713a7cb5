package workers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
)

// KnowledgeEventSubscriber consumes knowledge change events from Pub/Sub
// and keeps the vector store in sync.
type KnowledgeEventSubscriber struct {
	Logger              *log.Logger               `resolve:""`
	Interval            time.Duration             `config:"KNOWLEDGE_EVENTS_BATCH_INTERVAL" default:"2s"`
	BatchSize           int                       `config:"KNOWLEDGE_EVENTS_BATCH_SIZE" default:"50"`
	SubscriptionID      string                    `config:"KNOWLEDGE_EVENTS_SUBSCRIPTION_ID" default:"knowledge-events"`
	KnowledgeIndexer    usecases.KnowledgeIndexer `resolve:""`
	Client              *pubsub.Client
	workerExecutionChan chan struct{}
}

// Run starts the subscriber worker. Without a Pub/Sub client it idles until ctx is done.
func (s KnowledgeEventSubscriber) Run(ctx context.Context) error {
	if s.Client == nil {
		s.Client = resolveClient()
	}
	if s.Client == nil {
		s.Logger.Println("KnowledgeEventSubscriber: messaging disabled, idle")
		<-ctx.Done()
		return nil
	}

	s.Logger.Println("KnowledgeEventSubscriber: running...")

	if s.BatchSize <= 0 {
		s.BatchSize = 50
	}
	if s.Interval <= 0 {
		s.Interval = 2 * time.Second
	}

	eventCh := make(chan *pubsub.Message, s.BatchSize*2)
	subscriberInitErrCh := make(chan error, 1)

	// 1. Receive messages in background (blocking call).
	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case eventCh <- msg:
				// Ack later, after batching.
			case <-ctx.Done():
				msg.Nack()
			}
		})

		if err != nil {
			subscriberInitErrCh <- err
		}
	}()

	// 2. Batch + flush loop.
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			s.Logger.Println("KnowledgeEventSubscriber: stopped")
			return nil

		case err := <-subscriberInitErrCh:
			return err

		case msg := <-eventCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

// knowledgeUpsertRun groups consecutive upsert events so they are embedded in one call.
type knowledgeUpsertRun struct {
	Entities []domain.KnowledgeEntity
	Messages []*pubsub.Message
}

// flush applies one batch of events in delivery order.
func (s KnowledgeEventSubscriber) flush(ctx context.Context, batch []*pubsub.Message) {
	s.Logger.Printf("KnowledgeEventSubscriber: processing batch size=%d", len(batch))

	if s.workerExecutionChan != nil {
		s.workerExecutionChan <- struct{}{}
	}

	var run knowledgeUpsertRun
	for _, msg := range batch {
		var event domain.KnowledgeEntityEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			s.Logger.Printf("KnowledgeEventSubscriber: dropping undecodable event: %v", err)
			msg.Ack()
			continue
		}

		switch event.Type {
		case domain.KnowledgeEventType_UPSERTED:
			if err := event.Entity.Validate(); err != nil {
				s.Logger.Printf("KnowledgeEventSubscriber: dropping event %s: %v", event.ID, err)
				msg.Ack()
				continue
			}
			run.Entities = append(run.Entities, event.Entity)
			run.Messages = append(run.Messages, msg)

		case domain.KnowledgeEventType_DELETED:
			s.upsert(ctx, run)
			run = knowledgeUpsertRun{}
			e := event.Entity
			err := s.KnowledgeIndexer.Remove(ctx, e.DatabaseID, e.Namespace, []string{e.ObjectID})
			s.settle(err, msg)

		default:
			// Ignore unrelated events that may be delivered to this subscription.
			msg.Ack()
		}
	}
	s.upsert(ctx, run)
}

func (s KnowledgeEventSubscriber) upsert(ctx context.Context, run knowledgeUpsertRun) {
	if len(run.Entities) == 0 {
		return
	}
	err := s.KnowledgeIndexer.Upsert(ctx, run.Entities)
	s.settle(err, run.Messages...)
}

// settle acks messages that succeeded or can never succeed, and nacks the rest for redelivery.
func (s KnowledgeEventSubscriber) settle(err error, msgs ...*pubsub.Message) {
	var validationErr *domain.ValidationErr
	switch {
	case err == nil:
		for _, msg := range msgs {
			msg.Ack()
		}
	case errors.As(err, &validationErr):
		s.Logger.Printf("KnowledgeEventSubscriber: dropping %d events: %v", len(msgs), err)
		for _, msg := range msgs {
			msg.Ack()
		}
	default:
		if !errors.Is(err, context.Canceled) {
			s.Logger.Printf("KnowledgeEventSubscriber: %v", err)
		}
		for _, msg := range msgs {
			msg.Nack()
		}
	}
}

// resolveClient returns the registered Pub/Sub client, or nil when messaging is disabled.
func resolveClient() *pubsub.Client {
	client, err := depend.Resolve[*pubsub.Client]()
	if err != nil {
		return nil
	}
	return client
}
