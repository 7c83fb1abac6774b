package anomaly

import (
	"math"
	"sync/atomic"

	"go.uber.org/zap"

	"fraudScope/internal/model"
)

// NeutralScore is returned when no trained state is loaded.
const NeutralScore = 0.5

// Scorer produces a continuous anomaly score in [0,1] from a feature vector,
// higher meaning more anomalous. Implementations must be safe for concurrent
// use: scans run fully in parallel.
type Scorer interface {
	Score(vec model.FeatureVector) float64
}

// ZScoreScorer is the default outlier baseline. It normalizes each feature
// with the artifact's mean and stddev and maps the mean absolute z-score
// into [0,1]. The artifact reference is swapped atomically on reload.
type ZScoreScorer struct {
	artifact atomic.Pointer[Artifact]
	logger   *zap.Logger
}

func NewZScoreScorer(logger *zap.Logger) *ZScoreScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZScoreScorer{logger: logger}
}

// LoadFrom loads the artifact at path and installs it. A missing file leaves
// the scorer in its neutral state.
func (s *ZScoreScorer) LoadFrom(path string) error {
	artifact, ok, err := LoadArtifact(path)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Warn("no trained artifact, scoring with neutral value", zap.String("path", path))
		return nil
	}

	s.artifact.Store(artifact)
	s.logger.Info("anomaly artifact loaded",
		zap.String("path", path),
		zap.String("version", artifact.Version),
		zap.Int("samples", artifact.Samples),
	)
	return nil
}

// Swap atomically replaces the current artifact.
func (s *ZScoreScorer) Swap(artifact *Artifact) {
	if artifact == nil {
		return
	}
	s.artifact.Store(artifact)
}

// Loaded reports whether trained state is installed.
func (s *ZScoreScorer) Loaded() bool {
	return s.artifact.Load() != nil
}

// Version returns the installed artifact version, or empty when none.
func (s *ZScoreScorer) Version() string {
	if artifact := s.artifact.Load(); artifact != nil {
		return artifact.Version
	}
	return ""
}

// Score implements Scorer.
func (s *ZScoreScorer) Score(vec model.FeatureVector) float64 {
	artifact := s.artifact.Load()
	if artifact == nil {
		return NeutralScore
	}

	var sum float64
	var counted int
	for i, v := range vec {
		std := artifact.Stddevs[i]
		if std <= 0 {
			continue
		}
		sum += math.Abs((v - artifact.Means[i]) / std)
		counted++
	}
	if counted == 0 {
		return NeutralScore
	}

	// Saturating map: z=0 scores 0, z=3 scores 0.6, large z approaches 1.
	meanAbsZ := sum / float64(counted)
	return meanAbsZ / (meanAbsZ + 2)
}
