package config

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider provides configuration values from one HashiCorp Vault KV v2 secret.
// The secret is read once by Load and served from memory afterwards, since a
// single run resolves every key of its initializers at startup.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
	values     map[string]string
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The mountPath is the mount point for the KV secrets engine (e.g., "secret").
// The secretPath is the path to the secret within the mount (e.g., "docexplore").
func NewVaultProvider(server, token, mountPath, secretPath string) (*VaultProvider, error) {
	switch {
	case server == "":
		return nil, fmt.Errorf("server is required")
	case token == "":
		return nil, fmt.Errorf("token is required")
	case mountPath == "":
		return nil, fmt.Errorf("mountPath is required")
	case secretPath == "":
		return nil, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return &VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
	}, nil
}

// Load reads the secret and keeps its scalar values. Nested values are rejected.
func (vp *VaultProvider) Load(ctx context.Context) error {
	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return fmt.Errorf("read vault secret %s: %w", vp.secretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	values := make(map[string]string, len(secret.Data))
	for key, raw := range secret.Data {
		value, err := scalarString(raw)
		if err != nil {
			return fmt.Errorf("vault secret %s key %s: %w", vp.secretPath, key, err)
		}
		values[key] = value
	}
	vp.values = values
	return nil
}

// Get returns a configuration value of the loaded secret.
func (vp *VaultProvider) Get(_ context.Context, key string) (string, error) {
	value, ok := vp.values[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}
	return value, nil
}

func scalarString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", raw)
	}
}

// Ensure VaultProvider implements config.Provider interface.
var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider is used to initialize and register the VaultProvider.
// Vault is skipped when VAULT_ADDR is "-", leaving the environment as the only source.
type InitVaultProvider struct {
	Server     string `config:"VAULT_ADDR" default:"-"`
	Token      string `config:"VAULT_TOKEN" default:"-"`
	MountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string `config:"VAULT_SECRET_PATH" default:"docexplore"`
}

// Initialize loads the secret and registers the VaultProvider behind the
// environment in a composite global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == "-" {
		return ctx, nil
	}
	token := ivp.Token
	if token == "-" {
		token = ""
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}
	if err := vaultProvider.Load(ctx); err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)

	return ctx, nil
}
