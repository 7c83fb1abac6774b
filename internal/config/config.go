package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ScanConfig holds configuration for a single wallet scan.
type ScanConfig struct {
	Address      string
	Chain        string
	Provider     string
	ActivityFile string
	ModelPath    string
	RulesFile    string
	Timeout      time.Duration
	HistorySize  int
	Out          string
	PGDSN        string
	LogLevel     string
}

// LoadScan merges config file, environment variables, and flags into ScanConfig.
func LoadScan(cfgFile string, flags *pflag.FlagSet) (ScanConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return ScanConfig{}, err
	}

	cfg := ScanConfig{
		Address:      v.GetString("address"),
		Chain:        v.GetString("chain"),
		Provider:     v.GetString("provider"),
		ActivityFile: v.GetString("activity-file"),
		ModelPath:    v.GetString("model"),
		RulesFile:    v.GetString("rules"),
		Timeout:      v.GetDuration("timeout"),
		HistorySize:  v.GetInt("history-size"),
		Out:          v.GetString("out"),
		PGDSN:        v.GetString("pg-dsn"),
		LogLevel:     v.GetString("log-level"),
	}

	return cfg, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("SCANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("chain", "ethereum")
	v.SetDefault("provider", "simulated")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("history-size", 1000)
	v.SetDefault("concurrency", 8)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}
