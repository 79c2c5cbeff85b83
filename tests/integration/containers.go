package integration

import (
	"context"
	"log"
	"os"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	vault "github.com/hashicorp/vault/api"
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
		WaitForService("pubsub", wait.NewLogStrategy(
			"Server started, listening on",
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

// initVaultSecret seeds the KV v2 secret the bridge reads its credentials from.
type initVaultSecret struct {
	Address string
	Token   string
	Mount   string
	Path    string
	Data    map[string]any
}

func (i initVaultSecret) Initialize(ctx context.Context) (context.Context, error) {
	cfg := vault.DefaultConfig()
	cfg.Address = i.Address
	client, err := vault.NewClient(cfg)
	if err != nil {
		return ctx, err
	}
	client.SetToken(i.Token)

	_, err = client.KVv2(i.Mount).Put(ctx, i.Path, i.Data)
	return ctx, err
}

// initPubSubTopic creates the tool event topic and a subscription on the emulator.
type initPubSubTopic struct {
	ProjectID      string
	TopicID        string
	SubscriptionID string
}

func (i initPubSubTopic) Initialize(ctx context.Context) (context.Context, error) {
	client, err := pubsubV2.NewClient(ctx, i.ProjectID)
	if err != nil {
		return ctx, err
	}
	defer client.Close() //nolint:errcheck

	topic, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
		Name: "projects/" + i.ProjectID + "/topics/" + i.TopicID,
	})
	if err != nil {
		return ctx, err
	}

	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  "projects/" + i.ProjectID + "/subscriptions/" + i.SubscriptionID,
		Topic: topic.GetName(),
	})
	return ctx, err
}

type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		os.Setenv(key, value) //nolint:errcheck
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for key := range i.envVars {
		os.Unsetenv(key) //nolint:errcheck
	}
}
