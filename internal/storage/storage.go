package storage

import "fraudScope/internal/model"

// Storage defines a sink for scan results.
type Storage interface {
	PutScanBatch(results []model.ScanResult) error
}
