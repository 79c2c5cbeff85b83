package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider provides configuration values from a HashiCorp Vault KV v2 secret.
// The secret is read once and served from memory until the cache TTL expires, so resolving
// every bridge setting costs a single Vault round trip.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
	ttl        time.Duration
	now        func() time.Time
	cache      *secretCache
}

type secretCache struct {
	mu        sync.Mutex
	data      map[string]any
	fetchedAt time.Time
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The token is the Vault authentication token.
// The mountPath is the mount point for the KV secrets engine (e.g., "secret").
// The secretPath is the path to the secret within the mount (e.g., "mcpbridge").
// A ttl of zero re-reads the secret on every lookup.
func NewVaultProvider(server, token, mountPath, secretPath string, ttl time.Duration) (VaultProvider, error) {
	if server == "" {
		return VaultProvider{}, fmt.Errorf("server is required")
	}
	if token == "" || token == "-" {
		return VaultProvider{}, fmt.Errorf("token is required")
	}
	if mountPath == "" {
		return VaultProvider{}, fmt.Errorf("mountPath is required")
	}
	if secretPath == "" {
		return VaultProvider{}, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}

	client.SetToken(token)

	return VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
		ttl:        ttl,
		now:        time.Now,
		cache:      &secretCache{},
	}, nil
}

// Get retrieves a configuration value from the secret.
// Scalars are rendered as strings; nested objects and lists are rejected.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := vp.secret(ctx)
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number, bool, float64, int:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("vault secret key %s is not a scalar value", key)
	}
}

func (vp VaultProvider) secret(ctx context.Context) (map[string]any, error) {
	vp.cache.mu.Lock()
	defer vp.cache.mu.Unlock()

	if vp.cache.data != nil && vp.now().Sub(vp.cache.fetchedAt) < vp.ttl {
		return vp.cache.data, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	vp.cache.data = secret.Data
	vp.cache.fetchedAt = vp.now()
	return secret.Data, nil
}

// Ensure VaultProvider implements config.Provider interface.
var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider is used to initialize and register the VaultProvider.
// Vault is optional: when VAULT_ADDR is unset only environment variables are read.
type InitVaultProvider struct {
	Logger     *log.Logger   `resolve:""`
	Server     string        `config:"VAULT_ADDR" default:"-"`
	Token      string        `config:"VAULT_TOKEN" default:"-"`
	MountPath  string        `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string        `config:"VAULT_SECRET_PATH" default:"mcpbridge"`
	CacheTTL   time.Duration `config:"VAULT_CACHE_TTL" default:"1m"`
}

// Initialize checks the secret is readable, then registers Vault behind the environment
// in a composite global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == "-" || ivp.Server == "" {
		ivp.Logger.Print("Config: VAULT_ADDR not set, reading configuration from the environment only")
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath, ivp.CacheTTL)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}
	if _, err := vaultProvider.secret(ctx); err != nil {
		return ctx, fmt.Errorf("failed to read vault secret %s/%s: %w", ivp.MountPath, ivp.SecretPath, err)
	}
	ivp.Logger.Printf("Config: reading configuration from the environment and vault %s/%s", ivp.MountPath, ivp.SecretPath)

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)

	return ctx, nil
}
