package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fraudScope/internal/config"
	"fraudScope/internal/model"
)

func runBatch(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadBatch(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Input == "" {
		return fmt.Errorf("input file is required")
	}

	addresses, err := readAddressFile(cfg.Input)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		return fmt.Errorf("no addresses in %s", cfg.Input)
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

	runID := uuid.NewString()
	logger.Info("batch start",
		zap.String("run_id", runID),
		zap.Int("addresses", len(addresses)),
		zap.Int("concurrency", cfg.Concurrency),
	)

	var mu sync.Mutex
	results := make([]model.ScanResult, 0, len(addresses))
	var invalid int

	group, groupCtx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		group.SetLimit(cfg.Concurrency)
	}

	for _, address := range addresses {
		address := address
		group.Go(func() error {
			result, err := wallet.Scan(groupCtx, address)
			if err != nil {
				// Malformed addresses are skipped, not fatal to the batch.
				logger.Warn("address rejected", zap.String("address", address), zap.Error(err))
				mu.Lock()
				invalid++
				mu.Unlock()
				return nil
			}
			mu.Lock()
			results = append(results, *result)
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if err := emitResults(ctx, results, cfg.Out, cfg.PGDSN, logger); err != nil {
		return err
	}

	stats := wallet.History().Stats()
	logger.Info("batch complete",
		zap.String("run_id", runID),
		zap.Int("scanned", len(results)),
		zap.Int("invalid", invalid),
		zap.Float64("avg_safety_score", stats.AverageSafetyScore),
		zap.Int("critical", stats.RiskDistribution[model.RiskLevelCritical]),
		zap.Int("high", stats.RiskDistribution[model.RiskLevelHigh]),
	)

	return nil
}

func readAddressFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open address file: %w", err)
	}
	defer file.Close()

	var addresses []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addresses = append(addresses, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan address file: %w", err)
	}

	return addresses, nil
}
