package config

import (
	"time"

	"github.com/spf13/pflag"
)

// DiscoverConfig holds configuration for the discover command.
type DiscoverConfig struct {
	RPCURL            string
	Factory           string
	Step              uint64
	TotalPairs        uint64
	Out               string
	PairsArtifact     string
	PoolArtifact      string
	Checkpoint        string
	CheckpointEnabled bool
	MaxRetries        int
	RetryBackoff      time.Duration
	LogLevel          string
}

// LoadDiscover merges config file, environment variables, and flags into
// DiscoverConfig.
func LoadDiscover(cfgFile string, flags *pflag.FlagSet) (DiscoverConfig, error) {
	v := newViper()

	v.SetDefault("step", uint64(766))
	v.SetDefault("out", "./data/pairs.txt")
	v.SetDefault("checkpoint", "./data/checkpoint.json")
	v.SetDefault("checkpoint-enabled", true)
	v.SetDefault("max-retries", 5)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("log-level", "info")

	if err := readIn(v, cfgFile, flags); err != nil {
		return DiscoverConfig{}, err
	}

	cfg := DiscoverConfig{
		RPCURL:            v.GetString("rpc"),
		Factory:           v.GetString("factory"),
		Step:              v.GetUint64("step"),
		TotalPairs:        v.GetUint64("total-pairs"),
		Out:               v.GetString("out"),
		PairsArtifact:     v.GetString("pairs-artifact"),
		PoolArtifact:      v.GetString("pool-artifact"),
		Checkpoint:        v.GetString("checkpoint"),
		CheckpointEnabled: v.GetBool("checkpoint-enabled"),
		MaxRetries:        v.GetInt("max-retries"),
		RetryBackoff:      v.GetDuration("retry-backoff"),
		LogLevel:          v.GetString("log-level"),
	}

	return cfg, nil
}
