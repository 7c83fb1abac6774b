package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fraudScope/internal/history"
	"fraudScope/internal/model"
)

// Store provides Postgres persistence for the scan archive. Writes are
// best-effort: the scan pipeline itself never depends on them.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertScans inserts or updates archived scan results.
func (s *Store) UpsertScans(ctx context.Context, results []model.ScanResult) error {
	if len(results) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, result := range results {
		payload, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshal scan %s: %w", result.ScanID, err)
		}
		batch.Queue(`
			INSERT INTO wallet_scans (
				scan_id, wallet_address, risk_level, safety_score, model_version, result, scan_timestamp, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, now())
			ON CONFLICT (scan_id)
			DO UPDATE SET
				risk_level = EXCLUDED.risk_level,
				safety_score = EXCLUDED.safety_score,
				model_version = EXCLUDED.model_version,
				result = EXCLUDED.result,
				scan_timestamp = EXCLUDED.scan_timestamp
		`,
			result.ScanID,
			result.WalletAddress,
			string(result.RiskLevel),
			result.SafetyScore,
			result.ModelVersion,
			payload,
			result.ScanTimestamp,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range results {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// QueryStats returns aggregate counts and the average safety score over the
// archived scans.
func (s *Store) QueryStats(ctx context.Context) (history.Stats, error) {
	stats := history.Stats{
		RiskDistribution: map[model.RiskLevel]int{
			model.RiskLevelLow:      0,
			model.RiskLevelMedium:   0,
			model.RiskLevelHigh:     0,
			model.RiskLevelCritical: 0,
		},
	}

	row := s.pool.QueryRow(ctx, `SELECT count(*), coalesce(avg(safety_score), 0) FROM wallet_scans`)
	if err := row.Scan(&stats.TotalScans, &stats.AverageSafetyScore); err != nil {
		return history.Stats{}, fmt.Errorf("scan totals: %w", err)
	}
	stats.RetainedScans = stats.TotalScans

	rows, err := s.pool.Query(ctx, `SELECT risk_level, count(*) FROM wallet_scans GROUP BY risk_level`)
	if err != nil {
		return history.Stats{}, fmt.Errorf("risk distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return history.Stats{}, fmt.Errorf("scan distribution row: %w", err)
		}
		stats.RiskDistribution[model.RiskLevel(level)] = count
	}
	if err := rows.Err(); err != nil {
		return history.Stats{}, fmt.Errorf("distribution rows: %w", err)
	}

	return stats, nil
}
