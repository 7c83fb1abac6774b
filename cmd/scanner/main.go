package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fraudScope/internal/config"
	"fraudScope/internal/model"
	"fraudScope/internal/storage"
	"fraudScope/internal/storage/postgres"
)

func main() {
	root := &cobra.Command{
		Use:          "scanner",
		Short:        "Wallet fraud-risk scanner",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a single wallet address",
		RunE:  runScan,
	}

	scanCmd.Flags().String("address", "", "wallet address (0x-prefixed hex)")
	scanCmd.Flags().String("chain", "ethereum", "chain identifier (ethereum, polygon, bsc)")
	scanCmd.Flags().String("provider", "simulated", "activity provider (simulated, file)")
	scanCmd.Flags().String("activity-file", "", "activity fixtures JSONL (file provider)")
	scanCmd.Flags().String("model", "", "anomaly artifact path")
	scanCmd.Flags().String("rules", "", "ruleset JSON path")
	scanCmd.Flags().Duration("timeout", 30*time.Second, "activity fetch timeout")
	scanCmd.Flags().Int("history-size", 1000, "retained scan history capacity")
	scanCmd.Flags().String("out", "", "output results JSONL path")
	scanCmd.Flags().String("pg-dsn", "", "Postgres DSN for the scan archive")
	scanCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(scanCmd)

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Scan a list of wallet addresses concurrently",
		RunE:  runBatch,
	}

	batchCmd.Flags().String("in", "", "input file with one address per line")
	batchCmd.Flags().String("chain", "ethereum", "chain identifier (ethereum, polygon, bsc)")
	batchCmd.Flags().String("provider", "simulated", "activity provider (simulated, file)")
	batchCmd.Flags().String("activity-file", "", "activity fixtures JSONL (file provider)")
	batchCmd.Flags().String("model", "", "anomaly artifact path")
	batchCmd.Flags().String("rules", "", "ruleset JSON path")
	batchCmd.Flags().Duration("timeout", 30*time.Second, "activity fetch timeout per address")
	batchCmd.Flags().Int("concurrency", 8, "concurrent scans")
	batchCmd.Flags().Int("history-size", 1000, "retained scan history capacity")
	batchCmd.Flags().String("out", "./data/scans.jsonl", "output results JSONL path")
	batchCmd.Flags().String("pg-dsn", "", "Postgres DSN for the scan archive")
	batchCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(batchCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate stats over the scan archive",
		RunE:  runStats,
	}

	statsCmd.Flags().String("pg-dsn", "", "Postgres DSN for the scan archive")
	statsCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(statsCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScan(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadScan(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Address == "" {
		return fmt.Errorf("address is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wallet, err := buildScanner(scannerDeps{
		chain:        cfg.Chain,
		provider:     cfg.Provider,
		activityFile: cfg.ActivityFile,
		modelPath:    cfg.ModelPath,
		rulesFile:    cfg.RulesFile,
		timeout:      cfg.Timeout,
		historySize:  cfg.HistorySize,
	}, logger)
	if err != nil {
		return err
	}

	result, err := wallet.Scan(ctx, cfg.Address)
	if err != nil {
		return err
	}

	if err := emitResults(ctx, []model.ScanResult{*result}, cfg.Out, cfg.PGDSN, logger); err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(encoded))

	return nil
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadStats(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.PGDSN == "" {
		return fmt.Errorf("pg-dsn is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := postgres.NewStore(ctx, cfg.PGDSN)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer store.Close()

	stats, err := store.QueryStats(ctx)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	fmt.Println(string(encoded))

	return nil
}

// emitResults writes results to the configured sinks.
func emitResults(ctx context.Context, results []model.ScanResult, out, pgDSN string, logger *zap.Logger) error {
	if out != "" {
		var sink storage.Storage = storage.NewJsonlStorage(out)
		if err := sink.PutScanBatch(results); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
	}

	if pgDSN != "" {
		store, err := postgres.NewStore(ctx, pgDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		if err := store.UpsertScans(ctx, results); err != nil {
			return fmt.Errorf("archive results: %w", err)
		}
		logger.Info("results archived", zap.Int("count", len(results)))
	}

	return nil
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
