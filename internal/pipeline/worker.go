package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Worker processes files for a specific pipeline
type Worker struct {
	pipeline Pipeline
	config   PipelineConfig
	sink     Sink
}

// NewWorker creates a new pipeline worker
func NewWorker(pipeline Pipeline, config PipelineConfig, sink Sink) *Worker {
	return &Worker{
		pipeline: pipeline,
		config:   config,
		sink:     sink,
	}
}

// ProcessBatch processes a batch of files for a specific date. The first failing
// file cancels the rest of the batch; records already flushed stay written.
func (w *Worker) ProcessBatch(ctx context.Context, date time.Time, files []string) (RunStats, error) {
	log.Info().
		Str("pipeline", w.pipeline.Name()).
		Str("date", batchLabel(date)).
		Int("files", len(files)).
		Msg("starting batch processing")

	buffer := NewBatchBuffer(w.pipeline.Name(), w.config.BatchSize, w.sink)

	jobs := make([]*FileJob, len(files))
	for i, file := range files {
		jobs[i] = &FileJob{FilePath: file, SnapshotDate: date, Status: FileStatusQueued}
	}

	err := w.processFilesParallel(ctx, buffer, jobs)
	if err == nil {
		if ferr := buffer.Finalize(ctx); ferr != nil {
			err = fmt.Errorf("failed to finalize batch: %w", ferr)
		}
	}

	stats := RunStats{Files: len(files)}
	for _, job := range jobs {
		stats.RowsParsed += job.Rows
		stats.Jobs = append(stats.Jobs, *job)
	}
	_, stats.RowsWritten, _ = buffer.Stats()

	if err != nil {
		return stats, err
	}

	log.Info().
		Str("pipeline", w.pipeline.Name()).
		Str("date", batchLabel(date)).
		Int("rows_parsed", stats.RowsParsed).
		Int("rows_written", stats.RowsWritten).
		Msg("batch processing completed")

	return stats, nil
}

// processFilesParallel processes files with at most WorkerCount in flight.
func (w *Worker) processFilesParallel(ctx context.Context, buffer *BatchBuffer, jobs []*FileJob) error {
	workerCount := w.config.WorkerCount
	if workerCount < 1 {
		workerCount = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount)

	for _, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := w.processFile(gctx, buffer, job)
			if err != nil {
				log.Error().
					Err(err).
					Str("pipeline", w.pipeline.Name()).
					Str("file", job.FilePath).
					Msg("failed to process file")
			}
			return err
		})
	}

	return g.Wait()
}

// processFile processes a single file. Each job is owned by one goroutine until the group returns.
func (w *Worker) processFile(ctx context.Context, buffer *BatchBuffer, job *FileJob) error {
	startTime := time.Now()
	setStatus := func(status FileJobStatus, rows int, err error) {
		job.Status = status
		job.Rows = rows
		if err != nil {
			job.ErrorMessage = err.Error()
		}
		if status == FileStatusCompleted || status == FileStatusFailed {
			now := time.Now()
			job.ProcessedAt = &now
		}
	}

	setStatus(FileStatusProcessing, 0, nil)

	if err := w.pipeline.Validate(job.FilePath); err != nil {
		err = fmt.Errorf("validation failed for %s: %w", job.FilePath, err)
		setStatus(FileStatusFailed, 0, err)
		return err
	}

	rows, err := w.pipeline.Transform(ctx, job.FilePath)
	if err != nil {
		err = fmt.Errorf("transformation failed for %s: %w", job.FilePath, err)
		setStatus(FileStatusFailed, 0, err)
		return err
	}

	if err := buffer.Add(ctx, rows); err != nil {
		setStatus(FileStatusFailed, len(rows), err)
		return err
	}

	setStatus(FileStatusCompleted, len(rows), nil)

	log.Debug().
		Str("pipeline", w.pipeline.Name()).
		Str("file", job.FilePath).
		Int("rows", len(rows)).
		Dur("duration", time.Since(startTime)).
		Msg("file processed")

	return nil
}
