package provider

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"fraudScope/internal/model"
)

// FileProvider serves activity records from a JSONL fixture file, one
// WalletActivity per line, keyed by lowercased address.
type FileProvider struct {
	records map[string]*model.WalletActivity
}

func NewFileProvider(path string, logger *zap.Logger) (*FileProvider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open activity file: %w", err)
	}
	defer file.Close()

	records := make(map[string]*model.WalletActivity)

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var total, failed int
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		total++

		var activity model.WalletActivity
		if err := json.Unmarshal(line, &activity); err != nil {
			failed++
			logger.Warn("decode activity record", zap.Error(err))
			continue
		}
		records[strings.ToLower(activity.Address)] = &activity
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan activity file: %w", err)
	}

	logger.Info("activity fixtures loaded",
		zap.String("path", path),
		zap.Int("total", total),
		zap.Int("failed", failed),
	)

	return &FileProvider{records: records}, nil
}

// Fetch implements ActivityProvider.
func (p *FileProvider) Fetch(ctx context.Context, address, chain string) (*model.WalletActivity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	activity, ok := p.records[strings.ToLower(address)]
	if !ok {
		return nil, ErrUnavailable
	}
	if chain != "" && activity.Chain != "" && !strings.EqualFold(activity.Chain, chain) {
		return nil, ErrUnavailable
	}
	return activity, nil
}
