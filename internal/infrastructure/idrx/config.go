package idrx

import (
	"errors"
	"os"
	"strings"
	"time"
)

var ErrMissingAPIKey = errors.New("missing IDRX_API_KEY")

const (
	defaultBaseURL = "https://idrx.co"
	defaultChainID = "8453"
	defaultTimeout = 10 * time.Second
)

// Config holds the IDRX client settings. It is built once and injected into
// the client constructor; the client keeps no ambient process state.
type Config struct {
	BaseURL string
	// APIKey is sent as the idrx-api-key header.
	APIKey string
	// SecretKey keys the per-request HMAC signature. The provider issues it
	// alongside the API key; when unset we fall back to the API key, which is
	// how early integrations signed.
	SecretKey string
	// NetworkChainID selects the chain tokens are minted on.
	NetworkChainID string
	// DestinationWallet receives the minted tokens (treasury wallet).
	DestinationWallet string
	Timeout           time.Duration
}

// ConfigFromEnv reads IDRX_* environment variables.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		BaseURL:           getenvDefault("IDRX_API_URL", defaultBaseURL),
		APIKey:            strings.TrimSpace(os.Getenv("IDRX_API_KEY")),
		SecretKey:         strings.TrimSpace(os.Getenv("IDRX_SECRET_KEY")),
		NetworkChainID:    getenvDefault("IDRX_NETWORK_CHAIN_ID", defaultChainID),
		DestinationWallet: strings.TrimSpace(os.Getenv("TREASURY_WALLET")),
		Timeout:           defaultTimeout,
	}
	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = cfg.APIKey
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
