package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"fraudScope/internal/anomaly"
	"fraudScope/internal/history"
	"fraudScope/internal/patterns"
	"fraudScope/internal/provider"
	"fraudScope/internal/scanner"
)

type scannerDeps struct {
	chain        string
	provider     string
	activityFile string
	modelPath    string
	rulesFile    string
	timeout      time.Duration
	historySize  int
}

// buildScanner wires the pipeline from configuration: ruleset snapshot,
// anomaly scorer with optional trained artifact, activity provider, and
// bounded history.
func buildScanner(deps scannerDeps, logger *zap.Logger) (*scanner.Scanner, error) {
	ruleset := patterns.DefaultRuleset()
	if deps.rulesFile != "" {
		loaded, err := patterns.LoadRuleset(deps.rulesFile)
		if err != nil {
			return nil, err
		}
		ruleset = loaded
		logger.Info("ruleset loaded",
			zap.String("path", deps.rulesFile),
			zap.String("version", ruleset.Version),
			zap.Int("blacklist", len(ruleset.Blacklist)),
		)
	}
	matcher := patterns.NewMatcher(patterns.NewRegistry(ruleset))

	scorer := anomaly.NewZScoreScorer(logger)
	if deps.modelPath != "" {
		if err := scorer.LoadFrom(deps.modelPath); err != nil {
			return nil, err
		}
	}

	var activityProvider provider.ActivityProvider
	switch deps.provider {
	case "", "simulated":
		activityProvider = provider.NewSimulatedProvider()
	case "file":
		if deps.activityFile == "" {
			return nil, fmt.Errorf("activity-file is required for the file provider")
		}
		fileProvider, err := provider.NewFileProvider(deps.activityFile, logger)
		if err != nil {
			return nil, err
		}
		activityProvider = fileProvider
	default:
		return nil, fmt.Errorf("unknown provider: %s", deps.provider)
	}

	modelVersion := scorer.Version()
	if modelVersion == "" {
		modelVersion = scanner.DefaultModelVersion
	}

	return scanner.New(scanner.Config{
		ModelVersion: modelVersion,
		Chain:        deps.chain,
		FetchTimeout: deps.timeout,
	}, activityProvider, scorer, matcher, history.New(deps.historySize), logger), nil
}
