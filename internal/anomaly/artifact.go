package anomaly

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"fraudScope/internal/model"
)

// Artifact is the trained scoring state: per-feature normalization parameters
// plus a version tag. Normalization is captured at training time and reused
// verbatim at scoring time, never recomputed.
type Artifact struct {
	Version   string    `json:"version"`
	Means     []float64 `json:"means"`
	Stddevs   []float64 `json:"stddevs"`
	Samples   int       `json:"samples"`
	TrainedAt string    `json:"trained_at"`
}

func (a *Artifact) validate() error {
	if len(a.Means) != model.FeatureCount || len(a.Stddevs) != model.FeatureCount {
		return fmt.Errorf("artifact dimension mismatch: means=%d stddevs=%d want=%d",
			len(a.Means), len(a.Stddevs), model.FeatureCount)
	}
	return nil
}

// LoadArtifact reads a trained artifact from disk. A missing file is not an
// error; the scorer runs with the neutral score until state is available.
func LoadArtifact(path string) (*Artifact, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read artifact: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, false, fmt.Errorf("parse artifact: %w", err)
	}
	if err := artifact.validate(); err != nil {
		return nil, false, err
	}

	return &artifact, true, nil
}

// SaveArtifact persists an artifact atomically via a temp file and rename.
func SaveArtifact(path string, artifact *Artifact) error {
	if artifact == nil {
		return fmt.Errorf("artifact is nil")
	}
	if err := artifact.validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create artifact dir: %w", err)
		}
	}

	data, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write artifact tmp: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename artifact: %w", err)
	}

	return nil
}

// Fit trains an artifact from sample feature vectors.
func Fit(samples []model.FeatureVector, version string) (*Artifact, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples to fit")
	}

	means := make([]float64, model.FeatureCount)
	stddevs := make([]float64, model.FeatureCount)

	for _, sample := range samples {
		for i, v := range sample {
			means[i] += v
		}
	}
	for i := range means {
		means[i] /= float64(len(samples))
	}

	for _, sample := range samples {
		for i, v := range sample {
			diff := v - means[i]
			stddevs[i] += diff * diff
		}
	}
	for i := range stddevs {
		stddevs[i] = math.Sqrt(stddevs[i] / float64(len(samples)))
	}

	return &Artifact{
		Version:   version,
		Means:     means,
		Stddevs:   stddevs,
		Samples:   len(samples),
		TrainedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
