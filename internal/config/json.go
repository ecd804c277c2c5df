package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types (Duration accepts "5m"-style strings).
type StructuredJSONConfig struct {
	Sync struct {
		PushBatchSize          int      `json:"push_batch_size"`
		PullPageSize           int      `json:"pull_page_size"`
		MaxRecordsPerTable     int      `json:"max_records_per_table"`
		TombstoneRetentionDays int      `json:"tombstone_retention_days"`
		Interval               Duration `json:"interval"`
		MinInterval            Duration `json:"min_interval"`
		OnFocus                *bool    `json:"on_focus,omitempty"`
		OnReconnect            *bool    `json:"on_reconnect,omitempty"`
	} `json:"sync,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"remote,omitempty"`

	Server struct {
		HTTPAddress  string `json:"http_address"`
		TokenSignKey string `json:"token_sign_key"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Sync: Sync{
			PushBatchSize:          jsonCfg.Sync.PushBatchSize,
			PullPageSize:           jsonCfg.Sync.PullPageSize,
			MaxRecordsPerTable:     jsonCfg.Sync.MaxRecordsPerTable,
			TombstoneRetentionDays: jsonCfg.Sync.TombstoneRetentionDays,
			Interval:               time.Duration(jsonCfg.Sync.Interval),
			MinInterval:            time.Duration(jsonCfg.Sync.MinInterval),
			OnFocus:                jsonCfg.Sync.OnFocus,
			OnReconnect:            jsonCfg.Sync.OnReconnect,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
			Token:          jsonCfg.Remote.Token,
		},
		Server: Server{
			HTTPAddress:  jsonCfg.Server.HTTPAddress,
			TokenSignKey: jsonCfg.Server.TokenSignKey,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
