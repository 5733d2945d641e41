package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"reserveScope/internal/batch"
	"reserveScope/internal/chain"
	"reserveScope/internal/config"
	"reserveScope/internal/scanner"
)

func main() {
	root := &cobra.Command{
		Use:          "reservescope",
		Short:        "Uniswap V2 pool state batch reader",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	discoverCmd := &cobra.Command{
		Use:   "discover",
		Short: "Discover pair addresses from a factory",
		RunE:  runDiscover,
	}

	discoverCmd.Flags().String("rpc", "", "EVM RPC URL")
	discoverCmd.Flags().String("factory", "", "factory contract address")
	discoverCmd.Flags().Uint64("step", 766, "pairs per discovery page")
	discoverCmd.Flags().Uint64("total-pairs", 0, "known pair count, 0 means page until exhausted")
	discoverCmd.Flags().String("out", "./data/pairs.txt", "output pair list path")
	discoverCmd.Flags().String("pairs-artifact", "", "hex file with the compiled pairs batch contract")
	discoverCmd.Flags().String("pool-artifact", "", "hex file with the compiled pool data batch contract")
	discoverCmd.Flags().String("checkpoint", "./data/checkpoint.json", "checkpoint file path")
	discoverCmd.Flags().Bool("checkpoint-enabled", true, "enable checkpointing")
	discoverCmd.Flags().Int("max-retries", 5, "maximum retry attempts")
	discoverCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	discoverCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(discoverCmd)

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Populate pool reserves and store snapshots",
		RunE:  runSync,
	}

	syncCmd.Flags().String("rpc", "", "EVM RPC URL")
	syncCmd.Flags().String("factory", "", "factory contract address (used when no addresses are given)")
	syncCmd.Flags().StringSlice("address", nil, "pool addresses (comma-separated); skips discovery")
	syncCmd.Flags().Uint64("step", 766, "pairs per discovery page")
	syncCmd.Flags().Uint64("total-pairs", 0, "known pair count, 0 means page until exhausted")
	syncCmd.Flags().Int("chunk-size", 120, "pools per state batch")
	syncCmd.Flags().String("out", "./data/pools.jsonl", "output snapshot JSONL path")
	syncCmd.Flags().String("pair-list", "./data/pairs.txt", "pair list path for discovery persistence")
	syncCmd.Flags().String("pairs-artifact", "", "hex file with the compiled pairs batch contract")
	syncCmd.Flags().String("pool-artifact", "", "hex file with the compiled pool data batch contract")
	syncCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for snapshot upserts")
	syncCmd.Flags().String("checkpoint", "./data/checkpoint.json", "checkpoint file path")
	syncCmd.Flags().Bool("checkpoint-enabled", true, "enable checkpointing")
	syncCmd.Flags().Int("max-retries", 5, "maximum retry attempts")
	syncCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	syncCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(syncCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDiscover(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadDiscover(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}
	if !common.IsHexAddress(cfg.Factory) {
		return fmt.Errorf("valid factory address is required")
	}

	if err := loadArtifacts(cfg.PairsArtifact, cfg.PoolArtifact, logger); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer chainClient.Close()

	runner := scanner.NewRunner(scanner.RunConfig{
		Factory:           common.HexToAddress(cfg.Factory),
		Step:              cfg.Step,
		TotalPairs:        cfg.TotalPairs,
		PairListPath:      cfg.Out,
		CheckpointPath:    cfg.Checkpoint,
		CheckpointEnabled: cfg.CheckpointEnabled,
		MaxRetries:        cfg.MaxRetries,
		RetryBackoff:      cfg.RetryBackoff,
	}, chainClient, nil, logger)

	logger.Info("discover start",
		zap.String("rpc", cfg.RPCURL),
		zap.String("factory", cfg.Factory),
		zap.Uint64("step", cfg.Step),
		zap.Uint64("total_pairs", cfg.TotalPairs),
		zap.String("out", cfg.Out),
	)

	pairs, err := runner.Discover(ctx)
	if err != nil {
		return err
	}

	logger.Info("discover done", zap.Int("pairs", len(pairs)), zap.String("out", cfg.Out))
	return nil
}

// loadArtifacts installs compiled batch contract bytecode when both paths
// are given. Without them the embedded placeholder blobs stay active, which
// only works against stubbed transports, so say so loudly.
func loadArtifacts(pairsPath, poolPath string, logger *zap.Logger) error {
	if pairsPath == "" && poolPath == "" {
		if batch.UsingPlaceholderArtifacts() {
			logger.Warn("no batch artifacts supplied; embedded placeholder bytecode is not runnable against a live node")
		}
		return nil
	}
	if pairsPath == "" || poolPath == "" {
		return fmt.Errorf("pairs-artifact and pool-artifact must be supplied together")
	}

	pairsBin, err := readArtifact(pairsPath)
	if err != nil {
		return err
	}
	poolBin, err := readArtifact(poolPath)
	if err != nil {
		return err
	}
	return batch.UseArtifacts(pairsBin, poolBin)
}

func readArtifact(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}
	bin := common.FromHex(strings.TrimSpace(string(data)))
	if len(bin) == 0 {
		return nil, fmt.Errorf("artifact %s is empty or not hex", path)
	}
	return bin, nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
