package config

import (
	"time"

	"github.com/spf13/pflag"
)

// BatchConfig holds configuration for batch scanning.
type BatchConfig struct {
	Input        string
	Chain        string
	Provider     string
	ActivityFile string
	ModelPath    string
	RulesFile    string
	Timeout      time.Duration
	Concurrency  int
	HistorySize  int
	Out          string
	PGDSN        string
	LogLevel     string
}

// LoadBatch merges config file, environment variables, and flags into BatchConfig.
func LoadBatch(cfgFile string, flags *pflag.FlagSet) (BatchConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return BatchConfig{}, err
	}

	cfg := BatchConfig{
		Input:        v.GetString("in"),
		Chain:        v.GetString("chain"),
		Provider:     v.GetString("provider"),
		ActivityFile: v.GetString("activity-file"),
		ModelPath:    v.GetString("model"),
		RulesFile:    v.GetString("rules"),
		Timeout:      v.GetDuration("timeout"),
		Concurrency:  v.GetInt("concurrency"),
		HistorySize:  v.GetInt("history-size"),
		Out:          v.GetString("out"),
		PGDSN:        v.GetString("pg-dsn"),
		LogLevel:     v.GetString("log-level"),
	}

	return cfg, nil
}
