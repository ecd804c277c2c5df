package config

import (
	"fmt"
	"time"
)

// ClientSync holds the resolved replication tunables used by the engine.
type ClientSync struct {
	// PushBatchSize is the chunk size for batched upserts during push.
	PushBatchSize int
	// PullPageSize is the page limit for changes-since fetches.
	PullPageSize int
	// MaxRecordsPerTable caps one pull cycle's fetch volume per table.
	MaxRecordsPerTable int
	// TombstoneRetentionDays is the tombstone retention window.
	TombstoneRetentionDays int
	// Interval is the periodic sync cadence.
	Interval time.Duration
	// MinInterval is the debounce floor between cycles.
	MinInterval time.Duration
	// OnFocus triggers a cycle on foreground/visibility events.
	OnFocus bool
	// OnReconnect triggers a cycle on network-reconnect events.
	OnReconnect bool
}

// ClientRemote holds the resolved remote-authority transport settings.
type ClientRemote struct {
	// BaseURL is the authority's base URL.
	BaseURL string
	// RequestTimeout is the per-request transport timeout.
	RequestTimeout time.Duration
	// Token is the bearer token identifying the user scope.
	Token string
}

// ClientDB contains local replica database settings.
type ClientDB struct {
	// DSN is the SQLite file path for the local replica.
	DSN string
}

// ClientStorage groups local storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the engine-facing configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Sync contains the replication tunables.
	Sync ClientSync
	// Remote contains the remote-authority transport settings.
	Remote ClientRemote
	// Storage contains local storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates the engine configuration view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps an already-merged [StructuredConfig] onto the
// engine-facing view and validates it. Split from [GetClientConfig] so tests
// can build views without touching process flags or the environment.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	onFocus := true
	if cfg.Sync.OnFocus != nil {
		onFocus = *cfg.Sync.OnFocus
	}
	onReconnect := true
	if cfg.Sync.OnReconnect != nil {
		onReconnect = *cfg.Sync.OnReconnect
	}

	clientCfg := &ClientConfig{
		Sync: ClientSync{
			PushBatchSize:          cfg.Sync.PushBatchSize,
			PullPageSize:           cfg.Sync.PullPageSize,
			MaxRecordsPerTable:     cfg.Sync.MaxRecordsPerTable,
			TombstoneRetentionDays: cfg.Sync.TombstoneRetentionDays,
			Interval:               cfg.Sync.Interval,
			MinInterval:            cfg.Sync.MinInterval,
			OnFocus:                onFocus,
			OnReconnect:            onReconnect,
		},
		Remote: ClientRemote{
			BaseURL:        cfg.Remote.BaseURL,
			RequestTimeout: cfg.Remote.RequestTimeout,
			Token:          cfg.Remote.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	return clientCfg, clientCfg.validate()
}
