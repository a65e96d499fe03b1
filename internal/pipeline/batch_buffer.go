package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
	"github.com/rs/zerolog/log"
)

// BatchBuffer collects records from concurrent workers and flushes them to a Sink in batches.
type BatchBuffer struct {
	name      string
	batchSize int
	sink      Sink

	mu      sync.Mutex
	buffer  []domain.SalesRecord
	written int
	flushes int
}

// NewBatchBuffer creates a buffer that flushes every batchSize records. A non-positive
// batchSize buffers everything until Finalize.
func NewBatchBuffer(name string, batchSize int, sink Sink) *BatchBuffer {
	capacity := batchSize
	if capacity < 0 {
		capacity = 0
	}
	return &BatchBuffer{
		name:      name,
		batchSize: batchSize,
		sink:      sink,
		buffer:    make([]domain.SalesRecord, 0, capacity),
	}
}

// Add appends rows from a single file and flushes once the batch is full.
func (b *BatchBuffer) Add(ctx context.Context, rows []domain.SalesRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buffer = append(b.buffer, rows...)

	if b.batchSize > 0 && len(b.buffer) >= b.batchSize {
		return b.flushLocked(ctx)
	}
	return nil
}

// Finalize flushes any remaining records.
func (b *BatchBuffer) Finalize(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.buffer) == 0 {
		log.Debug().Str("pipeline", b.name).Msg("no records to finalize")
		return nil
	}
	return b.flushLocked(ctx)
}

// flushLocked must be called with b.mu held.
func (b *BatchBuffer) flushLocked(ctx context.Context) error {
	if len(b.buffer) == 0 {
		return nil
	}
	if b.sink == nil {
		return fmt.Errorf("no sink configured for pipeline %s", b.name)
	}

	n, err := b.sink.InsertSalesRecords(ctx, b.buffer)
	if err != nil {
		return fmt.Errorf("failed to flush %d records: %w", len(b.buffer), err)
	}

	log.Info().
		Str("pipeline", b.name).
		Int("buffered", len(b.buffer)).
		Int("written", n).
		Msg("flushed sales batch")

	b.written += n
	b.flushes++
	b.buffer = make([]domain.SalesRecord, 0, cap(b.buffer))
	return nil
}

// Stats returns the number of buffered records, records written and flushes so far.
func (b *BatchBuffer) Stats() (buffered, written, flushes int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buffer), b.written, b.flushes
}
