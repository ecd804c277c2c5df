package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a dev authority listen address in format [host]:[port]
//	-d local replica database path (SQLite file)
//	-remote remote authority base URL
//	-request-timeout remote request timeout (e.g., "15s")
//	-c/-config json file path with configs
//	-sync-interval periodic sync cadence (e.g., "5m")
//	-min-sync-interval debounce floor between cycles (e.g., "30s")
//	-push-batch-size push chunk size
//	-pull-page-size pull page limit
//	-max-records-per-table per-table pull safety cap
//	-tombstone-retention-days tombstone retention window
//	-token-sign-key dev authority token signing key
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var remoteBaseURL string
	var requestTimeout time.Duration
	var jsonConfigPath string
	var syncInterval time.Duration
	var minSyncInterval time.Duration
	var pushBatchSize int
	var pullPageSize int
	var maxRecordsPerTable int
	var tombstoneRetentionDays int
	var tokenSignKey string

	flag.Var(&serverAddress, "a", "Dev authority listen address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local replica database path")
	flag.StringVar(&remoteBaseURL, "remote", "", "Remote authority base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync cadence (e.g., 5m)")
	flag.DurationVar(&minSyncInterval, "min-sync-interval", 0, "Debounce floor between cycles (e.g., 30s)")
	flag.IntVar(&pushBatchSize, "push-batch-size", 0, "Push chunk size")
	flag.IntVar(&pullPageSize, "pull-page-size", 0, "Pull page limit")
	flag.IntVar(&maxRecordsPerTable, "max-records-per-table", 0, "Per-table pull safety cap")
	flag.IntVar(&tombstoneRetentionDays, "tombstone-retention-days", 0, "Tombstone retention window in days")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Dev authority token signing key")

	flag.Parse()

	return &StructuredConfig{
		Sync: Sync{
			PushBatchSize:          pushBatchSize,
			PullPageSize:           pullPageSize,
			MaxRecordsPerTable:     maxRecordsPerTable,
			TombstoneRetentionDays: tombstoneRetentionDays,
			Interval:               syncInterval,
			MinInterval:            minSyncInterval,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:  serverAddress.String(),
			TokenSignKey: tokenSignKey,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
