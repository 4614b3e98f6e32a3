package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traffic-advisory-service/internal/domain"
	"traffic-advisory-service/internal/infra"
)

type fakeExecer struct {
	mu      sync.Mutex
	queries []string
	args    [][]any
	execErr error
	closed  bool

	// insertGate, when set, stalls INSERT statements until it is closed.
	insertGate chan struct{}
}

func (f *fakeExecer) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	f.mu.Lock()
	gate := f.insertGate
	f.mu.Unlock()
	if gate != nil && strings.Contains(query, "INSERT") {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.execErr != nil {
		return nil, f.execErr
	}
	f.queries = append(f.queries, query)
	f.args = append(f.args, args)
	return nil, nil
}

func (f *fakeExecer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeExecer) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func (f *fakeExecer) lastArgs() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.args) == 0 {
		return nil
	}
	return f.args[len(f.args)-1]
}

func newTestSink(t *testing.T, db *fakeExecer, batchSize int, timeout time.Duration) *Sink {
	t.Helper()
	s, err := New(context.Background(), Config{
		SegmentID:    7,
		BatchSize:    batchSize,
		BatchTimeout: timeout,
		BufferSize:   16,
		Logger:       infra.NewLogger(io.Discard, "test"),
		DB:           db,
	})
	require.NoError(t, err)
	return s
}

func cycle(ts time.Time) domain.ControlCycleResult {
	return domain.ControlCycleResult{
		Timestamp:     ts,
		VehicleCount:  3,
		AverageSpeed:  8.0,
		AdvisorySpeed: 21.0,
		Throughput:    1.0,
	}
}

func TestSinkEnsuresSchemaOnStartup(t *testing.T) {
	db := &fakeExecer{}
	s := newTestSink(t, db, 4, time.Second)
	defer s.Close()

	require.Equal(t, 1, db.queryCount())
	assert.Contains(t, db.queries[0], "CREATE TABLE IF NOT EXISTS road_segment_cycle")
}

func TestSinkSchemaFailureClosesConnection(t *testing.T) {
	db := &fakeExecer{execErr: errors.New("permission denied")}

	_, err := New(context.Background(), Config{
		SegmentID: 7,
		Logger:    infra.NewLogger(io.Discard, "test"),
		DB:        db,
	})

	require.Error(t, err)
	assert.True(t, db.closed)
}

func TestSinkFlushesFullBatch(t *testing.T) {
	db := &fakeExecer{}
	s := newTestSink(t, db, 2, time.Minute)
	defer s.Close()

	ts := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Record(context.Background(), cycle(ts)))
	require.NoError(t, s.Record(context.Background(), cycle(ts.Add(time.Second))))

	// Schema statement plus one batched insert.
	require.Eventually(t, func() bool { return db.queryCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	args := db.lastArgs()
	require.Len(t, args, 12)
	assert.Equal(t, 7, args[0])
	assert.Equal(t, ts.UnixMilli(), args[1])
	assert.Equal(t, ts.Add(time.Second).UnixMilli(), args[7])
}

func TestSinkFlushesPartialBatchOnTimeout(t *testing.T) {
	db := &fakeExecer{}
	s := newTestSink(t, db, 100, 50*time.Millisecond)
	defer s.Close()

	require.NoError(t, s.Record(context.Background(), cycle(time.Now())))

	require.Eventually(t, func() bool { return db.queryCount() == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestSinkCloseDrainsQueuedRecords(t *testing.T) {
	db := &fakeExecer{}
	s := newTestSink(t, db, 100, time.Minute)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Record(context.Background(), cycle(time.Now().Add(time.Duration(i)*time.Second))))
	}

	require.NoError(t, s.Close())

	assert.Equal(t, 2, db.queryCount())
	assert.Len(t, db.lastArgs(), 18)
	assert.True(t, db.closed)
}

func TestSinkRecordAfterCloseFails(t *testing.T) {
	db := &fakeExecer{}
	s := newTestSink(t, db, 4, time.Second)
	require.NoError(t, s.Close())

	err := s.Record(context.Background(), cycle(time.Now()))
	assert.ErrorIs(t, err, domain.ErrSinkClosed)
}

func TestSinkRecordNeverBlocksWhenBufferFull(t *testing.T) {
	gate := make(chan struct{})
	db := &fakeExecer{insertGate: gate}
	s, err := New(context.Background(), Config{
		SegmentID:    7,
		BatchSize:    1,
		BatchTimeout: time.Minute,
		BufferSize:   1,
		Logger:       infra.NewLogger(io.Discard, "test"),
		DB:           db,
	})
	require.NoError(t, err)
	defer func() {
		close(gate)
		s.Close()
	}()

	// The first record goes straight into a flush that is stalled on the
	// gate; subsequent records pile into the unit buffer until one drops.
	var sawDrop bool
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if err := s.Record(context.Background(), cycle(time.Now())); err != nil {
			sawDrop = true
			break
		}
	}
	assert.True(t, sawDrop)
}

func TestBuildInsertPlaceholders(t *testing.T) {
	ts := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	batch := []domain.ControlCycleResult{cycle(ts), cycle(ts.Add(time.Second))}

	query, args := buildInsert(3, batch)

	assert.True(t, strings.Contains(query, "($1, $2, $3, $4, $5, $6)"))
	assert.True(t, strings.Contains(query, "($7, $8, $9, $10, $11, $12)"))
	assert.Len(t, args, 12)
	assert.Equal(t, 3, args[0])
	assert.Equal(t, 3, args[6])
}
