package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reserveScope/internal/chain"
	"reserveScope/internal/config"
	"reserveScope/internal/model"
	"reserveScope/internal/scanner"
	"reserveScope/internal/storage"
	"reserveScope/internal/storage/postgres"
)

func runSync(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
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

	addresses, err := scanner.ParseAddresses(cfg.Addresses)
	if err != nil {
		return err
	}
	if len(addresses) == 0 && !common.IsHexAddress(cfg.Factory) {
		return fmt.Errorf("either pool addresses or a valid factory address is required")
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

	// Every sink receives each chunk as it resolves, so a sync cut short
	// keeps what it already fetched in both stores.
	sinks := storage.MultiStorage{storage.NewJsonlStorage(cfg.Out)}
	if cfg.PGDSN != "" {
		pgStore, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pgStore.Close()
		sinks = append(sinks, postgres.NewSink(ctx, pgStore))
	}

	runner := scanner.NewRunner(scanner.RunConfig{
		Factory:           common.HexToAddress(cfg.Factory),
		Step:              cfg.Step,
		TotalPairs:        cfg.TotalPairs,
		ChunkSize:         cfg.ChunkSize,
		PairListPath:      cfg.PairList,
		CheckpointPath:    cfg.Checkpoint,
		CheckpointEnabled: cfg.CheckpointEnabled,
		MaxRetries:        cfg.MaxRetries,
		RetryBackoff:      cfg.RetryBackoff,
	}, chainClient, sinks, logger)

	logger.Info("sync start",
		zap.String("rpc", cfg.RPCURL),
		zap.String("factory", cfg.Factory),
		zap.Int("addresses", len(addresses)),
		zap.Uint64("step", cfg.Step),
		zap.Int("chunk_size", cfg.ChunkSize),
		zap.String("out", cfg.Out),
		zap.Bool("pg", cfg.PGDSN != ""),
	)

	var snapshots []model.PoolSnapshot
	if len(addresses) > 0 {
		snapshots, err = runner.Sync(ctx, scanner.NewPools(addresses))
	} else {
		snapshots, err = runner.Run(ctx)
	}
	if err != nil {
		return err
	}

	logger.Info("sync done", zap.Int("snapshots", len(snapshots)), zap.String("out", cfg.Out))
	return nil
}
