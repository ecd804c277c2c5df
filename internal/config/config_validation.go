// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// engine invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.PushBatchSize < 0 || cfg.Sync.PullPageSize < 0 || cfg.Sync.MaxRecordsPerTable < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Sync.PushBatchSize <= 0 || cfg.Sync.PullPageSize <= 0 || cfg.Sync.MaxRecordsPerTable <= 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Sync.Interval <= 0 || cfg.Sync.MinInterval <= 0 || cfg.Sync.TombstoneRetentionDays <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
