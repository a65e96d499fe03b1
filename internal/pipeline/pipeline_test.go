package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

// fakePipeline turns "<date>_<n>.csv" into n records. Names containing "bad" fail to transform.
type fakePipeline struct{}

func (fakePipeline) Name() string { return "fake" }

func (fakePipeline) Validate(inputFile string) error {
	if !strings.HasSuffix(inputFile, ".csv") {
		return errors.New("not a csv")
	}
	return nil
}

func (fakePipeline) GetSnapshotDate(filename string) (time.Time, error) {
	if len(filename) < 8 {
		return time.Time{}, errors.New("short name")
	}
	return time.Parse("20060102", filename[:8])
}

func (fakePipeline) Transform(ctx context.Context, inputFile string) ([]domain.SalesRecord, error) {
	if strings.Contains(inputFile, "bad") {
		return nil, errors.New("corrupt file")
	}
	var n int
	if _, err := fmt.Sscanf(inputFile[strings.LastIndex(inputFile, "_")+1:], "%d.csv", &n); err != nil {
		return nil, err
	}
	rows := make([]domain.SalesRecord, n)
	for i := range rows {
		rows[i] = domain.SalesRecord{ItemName: fmt.Sprintf("%s-%d", inputFile, i), QuantitySold: 1}
	}
	return rows, nil
}

type recordingSink struct {
	mu      sync.Mutex
	batches [][]domain.SalesRecord
	err     error
}

func (s *recordingSink) InsertSalesRecords(ctx context.Context, records []domain.SalesRecord) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	s.batches = append(s.batches, append([]domain.SalesRecord(nil), records...))
	return len(records), nil
}

func (s *recordingSink) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.batches {
		n += len(b)
	}
	return n
}

func TestBatchBufferFlushesAtBatchSize(t *testing.T) {
	sink := &recordingSink{}
	buf := NewBatchBuffer("test", 3, sink)
	ctx := context.Background()

	require.NoError(t, buf.Add(ctx, make([]domain.SalesRecord, 2)))
	assert.Empty(t, sink.batches)

	require.NoError(t, buf.Add(ctx, make([]domain.SalesRecord, 2)))
	require.Len(t, sink.batches, 1)
	assert.Len(t, sink.batches[0], 4)

	require.NoError(t, buf.Add(ctx, make([]domain.SalesRecord, 1)))
	require.NoError(t, buf.Finalize(ctx))

	buffered, written, flushes := buf.Stats()
	assert.Equal(t, 0, buffered)
	assert.Equal(t, 5, written)
	assert.Equal(t, 2, flushes)
}

func TestBatchBufferWithoutBatchSizeWaitsForFinalize(t *testing.T) {
	sink := &recordingSink{}
	buf := NewBatchBuffer("test", 0, sink)
	ctx := context.Background()

	require.NoError(t, buf.Add(ctx, make([]domain.SalesRecord, 10)))
	assert.Empty(t, sink.batches)
	require.NoError(t, buf.Finalize(ctx))
	assert.Equal(t, 10, sink.total())

	require.NoError(t, buf.Finalize(ctx))
	assert.Len(t, sink.batches, 1)
}

func TestBatchBufferSinkError(t *testing.T) {
	buf := NewBatchBuffer("test", 1, &recordingSink{err: errors.New("db down")})
	err := buf.Add(context.Background(), make([]domain.SalesRecord, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")

	nilSink := NewBatchBuffer("test", 1, nil)
	assert.Error(t, nilSink.Add(context.Background(), make([]domain.SalesRecord, 1)))
}

func TestWorkerProcessBatch(t *testing.T) {
	sink := &recordingSink{}
	cfg := PipelineConfig{Name: "fake", BatchSize: 4, WorkerCount: 3}
	w := NewWorker(fakePipeline{}, cfg, sink)

	files := []string{"20240101_2.csv", "20240101_3.csv", "20240101_5.csv", "20240101_0.csv"}
	stats, err := w.ProcessBatch(context.Background(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), files)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Files)
	assert.Equal(t, 10, stats.RowsParsed)
	assert.Equal(t, 10, stats.RowsWritten)
	assert.Equal(t, 10, sink.total())
	require.Len(t, stats.Jobs, 4)
	for _, job := range stats.Jobs {
		assert.Equal(t, FileStatusCompleted, job.Status)
		assert.NotNil(t, job.ProcessedAt)
	}
}

func TestWorkerStopsOnFailure(t *testing.T) {
	sink := &recordingSink{}
	w := NewWorker(fakePipeline{}, PipelineConfig{BatchSize: 100, WorkerCount: 1}, sink)

	stats, err := w.ProcessBatch(context.Background(), time.Time{}, []string{"20240101_2.csv", "20240101_bad_1.csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt file")
	assert.Equal(t, 0, sink.total())

	var failed int
	for _, job := range stats.Jobs {
		if job.Status == FileStatusFailed {
			failed++
			assert.NotEmpty(t, job.ErrorMessage)
		}
	}
	assert.Equal(t, 1, failed)
}

func TestWorkerValidationFailure(t *testing.T) {
	w := NewWorker(fakePipeline{}, PipelineConfig{BatchSize: 10, WorkerCount: 2}, &recordingSink{})
	_, err := w.ProcessBatch(context.Background(), time.Time{}, []string{"20240101_1.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestOrchestratorGroupsByDateInOrder(t *testing.T) {
	sink := &recordingSink{}
	o := NewOrchestrator(sink, PipelineConfig{BatchSize: 0, WorkerCount: 2})

	files := []string{"20240103_1.csv", "x_2.csv", "20240101_1.csv", "20240103_4.csv"}
	stats, err := o.Run(context.Background(), fakePipeline{}, files)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Files)
	assert.Equal(t, 8, stats.RowsWritten)
	// one flush per date batch, undated last
	require.Len(t, sink.batches, 3)
	assert.Len(t, sink.batches[0], 1)
	assert.Len(t, sink.batches[1], 5)
	assert.Len(t, sink.batches[2], 2)
}

func TestOrchestratorNoFiles(t *testing.T) {
	o := NewOrchestrator(&recordingSink{}, DefaultPipelineConfig("fake"))
	stats, err := o.Run(context.Background(), fakePipeline{}, nil)
	require.NoError(t, err)
	assert.Equal(t, RunStats{}, stats)
}
