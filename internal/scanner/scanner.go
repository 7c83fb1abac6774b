package scanner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fraudScope/internal/behavior"
	"fraudScope/internal/features"
	"fraudScope/internal/history"
	"fraudScope/internal/model"
	"fraudScope/internal/patterns"
	"fraudScope/internal/provider"
	"fraudScope/internal/risk"
)

// DefaultModelVersion tags results when no trained artifact supplies one.
const DefaultModelVersion = "1.0.0"

// Config holds scanner settings. FetchTimeout bounds the provider call only;
// the scoring pipeline itself has no deadline.
type Config struct {
	ModelVersion string
	Chain        string
	FetchTimeout time.Duration
}

// Scanner runs the full risk-scoring pipeline for wallet addresses. Each
// scan is a stateless computation over its inputs; the only shared state is
// the scorer's artifact (atomic swap) and the bounded history (mutex).
type Scanner struct {
	cfg      Config
	provider provider.ActivityProvider
	scorer   anomalyScorer
	matcher  *patterns.Matcher
	history  *history.History
	logger   *zap.Logger
	now      func() time.Time
}

type anomalyScorer interface {
	Score(vec model.FeatureVector) float64
}

// New builds a Scanner with its dependencies.
func New(cfg Config, activityProvider provider.ActivityProvider, scorer anomalyScorer, matcher *patterns.Matcher, hist *history.History, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ModelVersion == "" {
		cfg.ModelVersion = DefaultModelVersion
	}
	if cfg.Chain == "" {
		cfg.Chain = "ethereum"
	}
	if matcher == nil {
		matcher = patterns.NewMatcher(nil)
	}
	if hist == nil {
		hist = history.New(0)
	}
	return &Scanner{
		cfg:      cfg,
		provider: activityProvider,
		scorer:   scorer,
		matcher:  matcher,
		history:  hist,
		logger:   logger,
		now:      time.Now,
	}
}

// History exposes the retained scan log for stats queries.
func (s *Scanner) History() *history.History {
	return s.history
}

// Scan assesses one wallet address. A malformed address is rejected before
// the pipeline runs. Provider unavailability or any live-path fault degrades
// to the synthetic fallback; a well-formed address never returns an error.
func (s *Scanner) Scan(ctx context.Context, address string) (*model.ScanResult, error) {
	normalized, err := model.NormalizeAddress(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidAddress, address)
	}

	result := s.scanLive(ctx, normalized)
	if result == nil {
		result = Synthetic(normalized, s.cfg.ModelVersion, s.now())
		s.logger.Info("synthetic fallback",
			zap.String("address", normalized),
			zap.Int("safety_score", result.SafetyScore),
			zap.String("risk_level", string(result.RiskLevel)),
		)
	}

	s.history.Append(*result)
	return result, nil
}

// scanLive runs the full pipeline, returning nil when the scan must fall
// back. A panic anywhere in the live path is treated the same as provider
// unavailability.
func (s *Scanner) scanLive(ctx context.Context, address string) (result *model.ScanResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("live scan fault", zap.String("address", address), zap.Any("panic", r))
			result = nil
		}
	}()

	if s.provider == nil {
		return nil
	}

	fetchCtx := ctx
	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}

	activity, err := s.provider.Fetch(fetchCtx, address, s.cfg.Chain)
	if err != nil {
		s.logger.Warn("activity fetch failed", zap.String("address", address), zap.Error(err))
		return nil
	}

	vec := features.Extract(activity)

	anomalyScore := anomalyScoreOrNeutral(s.scorer, vec)
	report := s.matcher.Match(address, activity)
	profile := behavior.Analyze(activity)
	assessment := risk.Assess(vec)

	verdict := risk.Aggregate(anomalyScore, report, profile, assessment)
	recommendations := risk.Recommendations(verdict.SafetyScore, verdict.RiskFactors)

	at := s.now()
	result = &model.ScanResult{
		ScanID:             ScanID(address, at),
		WalletAddress:      address,
		RiskLevel:          verdict.RiskLevel,
		SafetyScore:        verdict.SafetyScore,
		RiskFactors:        verdict.RiskFactors,
		BehavioralAnalysis: profile,
		TransactionSummary: Summarize(activity),
		Recommendations:    recommendations,
		ScanTimestamp:      at.UTC().Format(time.RFC3339),
		ModelVersion:       s.cfg.ModelVersion,
	}

	s.logger.Info("scan complete",
		zap.String("scan_id", result.ScanID),
		zap.String("address", address),
		zap.Int("safety_score", result.SafetyScore),
		zap.String("risk_level", string(result.RiskLevel)),
		zap.Float64("anomaly", anomalyScore),
		zap.Int("patterns", report.Count),
	)

	return result
}

// anomalyScoreOrNeutral guards against a missing scorer: the pipeline
// continues with the neutral value rather than failing.
func anomalyScoreOrNeutral(scorer anomalyScorer, vec model.FeatureVector) float64 {
	if scorer == nil {
		return 0.5
	}
	score := scorer.Score(vec)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
