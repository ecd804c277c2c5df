// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the centavo
// sync engine. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults (first non-zero source wins).
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Sync holds the replication tunables: batch and page sizes, safety
	// caps, retention, and scheduling cadence.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds the device-local replica database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds the remote-authority endpoint settings used by the
	// HTTP adapter.
	Remote Remote `envPrefix:"REMOTE_"`

	// Server holds settings for the in-repo dev authority binary. Unused
	// by the engine itself.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after env and flags.
	// Populated via the CONFIG environment variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Sync groups the replication tunables. Zero values are filled from
// [Defaults].
type Sync struct {
	// PushBatchSize is the chunk size for batched upserts during push.
	// Env: SYNC_PUSH_BATCH_SIZE
	PushBatchSize int `env:"PUSH_BATCH_SIZE"`

	// PullPageSize is the page limit for changes-since fetches.
	// Env: SYNC_PULL_PAGE_SIZE
	PullPageSize int `env:"PULL_PAGE_SIZE"`

	// MaxRecordsPerTable caps how many records one pull cycle may fetch
	// for a single table. The page count cap is
	// ceil(MaxRecordsPerTable / PullPageSize).
	// Env: SYNC_MAX_RECORDS_PER_TABLE
	MaxRecordsPerTable int `env:"MAX_RECORDS_PER_TABLE"`

	// TombstoneRetentionDays is how long confirmed tombstones are kept
	// before physical removal.
	// Env: SYNC_TOMBSTONE_RETENTION_DAYS
	TombstoneRetentionDays int `env:"TOMBSTONE_RETENTION_DAYS"`

	// Interval is the periodic sync cadence.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// MinInterval is the debounce floor between two consecutive cycles,
	// regardless of what triggered them.
	// Env: SYNC_MIN_INTERVAL
	MinInterval time.Duration `env:"MIN_INTERVAL"`

	// OnFocus enables triggering a cycle when the host application
	// reports a foreground/visibility event.
	// Env: SYNC_ON_FOCUS
	OnFocus *bool `env:"ON_FOCUS"`

	// OnReconnect enables triggering a cycle on network-reconnect events.
	// Env: SYNC_ON_RECONNECT
	OnReconnect *bool `env:"ON_RECONNECT"`
}

// Storage groups the device-local persistence settings.
type Storage struct {
	// DB holds the local replica database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains the SQLite connection settings for the local replica.
type DB struct {
	// DSN is the SQLite file path for the local replica database.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Remote holds the remote-authority endpoint settings.
type Remote struct {
	// BaseURL is the authority's base URL (e.g. "https://api.centavo.app").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request transport timeout. The engine
	// treats a timeout like any other transport error: the affected batch
	// stays pending and is retried next cycle.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token identifying the user scope. Normally
	// supplied by the host application's auth layer; settable here for
	// development.
	// Env: REMOTE_TOKEN
	Token string `env:"TOKEN"`
}

// Server holds settings for the dev authority binary.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey signs and verifies the dev authority's JWT tokens.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
}

// Defaults returns the built-in configuration values merged in last, after
// env, flags, and JSON.
func Defaults() *StructuredConfig {
	onFocus := true
	onReconnect := true
	return &StructuredConfig{
		Sync: Sync{
			PushBatchSize:          50,
			PullPageSize:           500,
			MaxRecordsPerTable:     5000,
			TombstoneRetentionDays: 30,
			Interval:               5 * time.Minute,
			MinInterval:            30 * time.Second,
			OnFocus:                &onFocus,
			OnReconnect:            &onReconnect,
		},
		Remote: Remote{
			RequestTimeout: 15 * time.Second,
		},
		Server: Server{
			HTTPAddress: "localhost:8080",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (first non-zero
// source wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
