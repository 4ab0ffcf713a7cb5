package workers

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/usecases/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCacheInvalidationSubscriber_Run(t *testing.T) {
	event := domain.CacheInvalidationEvent{
		ID:         uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		DatabaseID: "sales",
		Pattern:    "qctx:sales:*",
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	tests := map[string]struct {
		payload         []byte
		setExpectations func(m *mocks.MockContextManager)
	}{
		"applies-invalidation": {
			payload: eventPayload(t, event),
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().ApplyInvalidation(mock.Anything, event).Return(3, nil).Once()
			},
		},
		"drops-foreign-pattern": {
			payload: eventPayload(t, domain.CacheInvalidationEvent{
				ID:         event.ID,
				DatabaseID: "sales",
				Pattern:    "qctx:hr:*",
				CreatedAt:  event.CreatedAt,
			}),
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().ApplyInvalidation(mock.Anything, mock.Anything).
					Return(0, domain.NewValidationErr(`pattern "qctx:hr:*" is outside database sales`)).
					Once()
			},
		},
		"cache-failure-nacks": {
			payload: eventPayload(t, event),
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().ApplyInvalidation(mock.Anything, event).Return(0, assert.AnError).Once()
				// the nacked message may be redelivered before the subscriber stops
				m.EXPECT().ApplyInvalidation(mock.Anything, event).Return(1, nil).Maybe()
			},
		},
		"invalid-payload": {
			payload:         []byte(`{"DatabaseID"`),
			setExpectations: func(*mocks.MockContextManager) {},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			subscriptionID := "invalidation-subscription-" + name
			client, topicName := setupPubSubServer(t, ctx, "invalidation-topic-"+name, subscriptionID)

			manager := mocks.NewMockContextManager(t)
			tt.setExpectations(manager)

			signalChan := make(chan struct{}, 10)
			subscriber := CacheInvalidationSubscriber{
				Logger:              log.New(io.Discard, "", 0),
				Client:              client,
				SubscriptionID:      subscriptionID,
				ContextManager:      manager,
				workerExecutionChan: signalChan,
			}

			cancel, doneChan := run(t, ctx, subscriber)
			err := publishMessages(ctx, client, topicName, [][]byte{tt.payload})
			assert.NoError(t, err)

			waitForBatchSignals(t, signalChan, 1, 2*time.Second)
			cancel()
			waitRunnableStop(t, doneChan)
		})
	}
}

func TestCacheInvalidationSubscriber_MessagingDisabled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	subscriber := CacheInvalidationSubscriber{
		Logger:         log.New(io.Discard, "", 0),
		ContextManager: mocks.NewMockContextManager(t),
	}

	_, doneChan := run(t, ctx, subscriber)
	cancel()
	waitRunnableStop(t, doneChan)
}
