package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// InitClient creates the Pub/Sub client used to publish tool execution events.
// Publishing is disabled when PUBSUB_PROJECT_ID is unset. PUBSUB_EMULATOR_HOST points
// the client at a local emulator without credentials.
type InitClient struct {
	Logger       *log.Logger `resolve:""`
	ProjectID    string      `config:"PUBSUB_PROJECT_ID" default:"-"`
	EmulatorHost string      `config:"PUBSUB_EMULATOR_HOST" default:"-"`
	client       *pubsubV2.Client
}

func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		if isUnset(i.ProjectID) {
			i.Logger.Println("InitClient: PUBSUB_PROJECT_ID not set, tool execution events disabled")
			return ctx, nil
		}
		client, err := pubsubV2.NewClient(ctx, i.ProjectID, i.clientOptions()...)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client for project %s: %w", i.ProjectID, err)
		}
		i.client = client
		if isUnset(i.EmulatorHost) {
			i.Logger.Printf("InitClient: publishing tool execution events to project %s", i.ProjectID)
		} else {
			i.Logger.Printf("InitClient: publishing tool execution events to emulator %s (project %s)", i.EmulatorHost, i.ProjectID)
		}
	}

	depend.Register(i.client)

	return ctx, nil
}

func (i *InitClient) clientOptions() []option.ClientOption {
	if isUnset(i.EmulatorHost) {
		return nil
	}
	return []option.ClientOption{
		option.WithEndpoint(i.EmulatorHost),
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	}
}

func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}

func isUnset(v string) bool {
	return v == "" || v == "-"
}
