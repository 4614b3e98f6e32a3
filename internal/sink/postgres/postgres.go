// Package postgres persists control-cycle telemetry to a Postgres database.
//
// Records are buffered and flushed in batches by a background goroutine, so
// the control loop's emission path never waits on the network.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"traffic-advisory-service/internal/domain"
	"traffic-advisory-service/internal/infra"
)

const (
	createTableSQL = `
CREATE TABLE IF NOT EXISTS road_segment_cycle (
    segment_id     INTEGER NOT NULL,
    ts             BIGINT NOT NULL,
    vehicle_count  BIGINT NOT NULL,
    avg_speed      DOUBLE PRECISION NOT NULL,
    advisory_speed DOUBLE PRECISION NOT NULL,
    throughput     DOUBLE PRECISION NOT NULL,
    PRIMARY KEY (segment_id, ts)
)`
	insertPrefixSQL = `
INSERT INTO road_segment_cycle (segment_id, ts, vehicle_count, avg_speed, advisory_speed, throughput)
VALUES `
)

// Execer is the slice of database/sql the sink needs. *sql.DB satisfies it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Close() error
}

// Config configures the Postgres sink.
type Config struct {
	DSN       string
	SegmentID int
	// BatchSize determines how many cycles are flushed together.
	BatchSize int
	// BatchTimeout is how long a partial batch waits before flushing.
	BatchTimeout time.Duration
	// BufferSize is the capacity of the inbound record queue.
	BufferSize int
	Logger     *infra.Logger
	// DB overrides the connection, for tests.
	DB Execer
}

// Sink implements domain.TelemetrySink backed by Postgres.
type Sink struct {
	db        Execer
	segmentID int
	logger    *infra.Logger

	batchSize    int
	batchTimeout time.Duration
	buffer       chan domain.ControlCycleResult
	stopCh       chan struct{}
	wg           sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// New opens the database, ensures the schema and starts the flusher.
func New(ctx context.Context, cfg Config) (*Sink, error) {
	db := cfg.DB
	if db == nil {
		if cfg.DSN == "" {
			return nil, errors.New("postgres sink: DSN is required")
		}
		opened, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("postgres sink: open: %w", err)
		}
		db = opened
	}

	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres sink: ensure schema: %w", err)
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 1
	}
	bufferSize := cfg.BufferSize
	if bufferSize <= 0 {
		bufferSize = batchSize
	}
	batchTimeout := cfg.BatchTimeout
	if batchTimeout < 0 {
		batchTimeout = 0
	}

	s := &Sink{
		db:           db,
		segmentID:    cfg.SegmentID,
		logger:       cfg.Logger,
		batchSize:    batchSize,
		batchTimeout: batchTimeout,
		buffer:       make(chan domain.ControlCycleResult, bufferSize),
		stopCh:       make(chan struct{}),
	}

	s.wg.Add(1)
	go s.run()

	return s, nil
}

// Record queues one cycle for persistence. It never blocks: when the buffer
// is full the record is dropped, matching the at-most-once sink contract.
func (s *Sink) Record(ctx context.Context, cycle domain.ControlCycleResult) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return domain.ErrSinkClosed
	}

	select {
	case s.buffer <- cycle:
		return nil
	default:
		return fmt.Errorf("postgres sink: buffer full, record for %s dropped", cycle.Timestamp.Format(time.RFC3339))
	}
}

// Close flushes pending records and releases the connection.
func (s *Sink) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	return s.db.Close()
}

func (s *Sink) run() {
	defer s.wg.Done()

	batch := make([]domain.ControlCycleResult, 0, s.batchSize)
	var timer *time.Timer
	var timerC <-chan time.Time

	armTimer := func() {
		if s.batchTimeout <= 0 {
			return
		}
		timer = time.NewTimer(s.batchTimeout)
		timerC = timer.C
	}
	disarmTimer := func() {
		if timer == nil {
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer = nil
		timerC = nil
	}

	flush := func() {
		if len(batch) == 0 {
			return
		}
		s.flushBatch(batch)
		batch = batch[:0]
		disarmTimer()
	}

	for {
		select {
		case cycle := <-s.buffer:
			batch = append(batch, cycle)
			if len(batch) == 1 {
				armTimer()
			}
			if len(batch) >= s.batchSize {
				flush()
			}
		case <-timerC:
			timer = nil
			timerC = nil
			flush()
		case <-s.stopCh:
			// Drain whatever is already queued, then flush once.
			for {
				select {
				case cycle := <-s.buffer:
					batch = append(batch, cycle)
				default:
					flush()
					return
				}
			}
		}
	}
}

func (s *Sink) flushBatch(batch []domain.ControlCycleResult) {
	start := time.Now()

	query, args := buildInsert(s.segmentID, batch)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		infra.SinkErrorsTotal.Inc()
		s.logger.Errorf(ctx, "postgres sink: flush of %d records failed: %v", len(batch), err)
		return
	}

	infra.RecordSinkFlush(time.Since(start))
	s.logger.Debugf(ctx, "postgres sink: flushed %d records", len(batch))
}

func buildInsert(segmentID int, batch []domain.ControlCycleResult) (string, []any) {
	var b strings.Builder
	b.WriteString(insertPrefixSQL)

	args := make([]any, 0, len(batch)*6)
	for i, cycle := range batch {
		if i > 0 {
			b.WriteString(", ")
		}
		base := i * 6
		fmt.Fprintf(&b, "($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args,
			segmentID,
			cycle.Timestamp.UnixMilli(),
			cycle.VehicleCount,
			cycle.AverageSpeed,
			cycle.AdvisorySpeed,
			cycle.Throughput,
		)
	}
	return b.String(), args
}

var _ domain.TelemetrySink = (*Sink)(nil)
