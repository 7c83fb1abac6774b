package config

import (
	"github.com/spf13/pflag"
)

// StatsConfig holds configuration for the stats query.
type StatsConfig struct {
	PGDSN    string
	LogLevel string
}

// LoadStats merges config file, environment variables, and flags into StatsConfig.
func LoadStats(cfgFile string, flags *pflag.FlagSet) (StatsConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return StatsConfig{}, err
	}

	cfg := StatsConfig{
		PGDSN:    v.GetString("pg-dsn"),
		LogLevel: v.GetString("log-level"),
	}

	return cfg, nil
}
