package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitClient creates the Pub/Sub client used by the knowledge and invalidation workers.
// A PUBSUB_PROJECT_ID of "-" disables messaging; the engine then runs as a single replica.
type InitClient struct {
	Logger    *log.Logger `resolve:""`
	ProjectID string      `config:"PUBSUB_PROJECT_ID" default:"-"`
	client    *pubsubV2.Client
}

func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		if i.ProjectID == "-" {
			i.Logger.Println("InitClient: PUBSUB_PROJECT_ID not set, messaging disabled")
			return ctx, nil
		}
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	depend.Register(i.client)

	return ctx, nil
}

func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}

// resolveClient returns the registered client, or nil when messaging is disabled.
func resolveClient() *pubsubV2.Client {
	client, err := depend.Resolve[*pubsubV2.Client]()
	if err != nil {
		return nil
	}
	return client
}
