package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

type InitDockerCompose struct {
	compose *compose.DockerCompose
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	dc, err := compose.NewDockerCompose("../../docker-compose.deps.yml")
	if err != nil {
		return ctx, err
	}
	i.compose = dc

	err = i.compose.
		WaitForService("postgres", wait.NewLogStrategy(
			"database system is ready to accept connections",
		)).
		WaitForService("vault", wait.NewLogStrategy(
			"Vault server started!",
		)).
		WaitForService("redis", wait.NewLogStrategy(
			"Ready to accept connections",
		)).
		WaitForService("pubsub", wait.NewLogStrategy(
			"Server started",
		)).
		Up(ctx, compose.Wait(true))
	if err != nil {
		return ctx, err
	}
	return ctx, nil
}

func (i InitDockerCompose) Close() {
	if i.compose != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		err := i.compose.Down(
			cancelCtx,
			compose.RemoveOrphans(true),
			compose.RemoveVolumes(true),
			compose.RemoveImages(compose.RemoveImagesLocal),
		)
		if err != nil {
			log.Printf("failed to stop docker compose: %v", err)
		}
	}
}

// initEnvVars exports the test configuration before any component reads it.
type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for k, v := range i.envVars {
		if err := os.Setenv(k, v); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

// initPubSubTopics creates the topics and subscriptions on the emulator.
type initPubSubTopics struct {
	projectID string
	topics    map[string]string
}

func (i *initPubSubTopics) Initialize(ctx context.Context) (context.Context, error) {
	client, err := pubsubV2.NewClient(ctx, i.projectID)
	if err != nil {
		return ctx, err
	}
	defer client.Close() //nolint:errcheck

	for topicID, subscriptionID := range i.topics {
		topic, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
			Name: fmt.Sprintf("projects/%s/topics/%s", i.projectID, topicID),
		})
		if err != nil {
			return ctx, fmt.Errorf("create topic %s: %w", topicID, err)
		}
		_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
			Name:  fmt.Sprintf("projects/%s/subscriptions/%s", i.projectID, subscriptionID),
			Topic: topic.GetName(),
		})
		if err != nil {
			return ctx, fmt.Errorf("create subscription %s: %w", subscriptionID, err)
		}
	}
	return ctx, nil
}
