// Package sqlite persists control-cycle telemetry to an embedded SQLite
// database, for single-box deployments without a Postgres instance.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"traffic-advisory-service/internal/domain"
)

const (
	createTableSQL = `
CREATE TABLE IF NOT EXISTS road_segment_cycle (
    segment_id     INTEGER NOT NULL,
    ts             INTEGER NOT NULL,
    vehicle_count  INTEGER NOT NULL,
    avg_speed      REAL NOT NULL,
    advisory_speed REAL NOT NULL,
    throughput     REAL NOT NULL,
    PRIMARY KEY (segment_id, ts)
)`
	insertSQL = `
INSERT OR REPLACE INTO road_segment_cycle (segment_id, ts, vehicle_count, avg_speed, advisory_speed, throughput)
VALUES (?, ?, ?, ?, ?, ?)`
)

// Sink implements domain.TelemetrySink backed by SQLite. Writes are
// synchronous; at one row per control tick the insert rate is trivial.
type Sink struct {
	db        *sql.DB
	segmentID int

	mu     sync.Mutex
	closed bool
}

// New opens (or creates) the database file and ensures the schema.
func New(ctx context.Context, path string, segmentID int) (*Sink, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite sink: open %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite sink: ensure schema: %w", err)
	}

	return &Sink{db: db, segmentID: segmentID}, nil
}

func (s *Sink) Record(ctx context.Context, cycle domain.ControlCycleResult) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return domain.ErrSinkClosed
	}

	_, err := s.db.ExecContext(ctx, insertSQL,
		s.segmentID,
		cycle.Timestamp.UnixMilli(),
		cycle.VehicleCount,
		cycle.AverageSpeed,
		cycle.AdvisorySpeed,
		cycle.Throughput,
	)
	if err != nil {
		return fmt.Errorf("sqlite sink: insert: %w", err)
	}
	return nil
}

func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

var _ domain.TelemetrySink = (*Sink)(nil)
