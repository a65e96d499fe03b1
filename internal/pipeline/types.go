package pipeline

import (
	"context"
	"time"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

// Pipeline defines the interface that all import pipelines must implement
type Pipeline interface {
	// Name returns the unique identifier for this pipeline
	Name() string

	// Transform parses a single input file into sales records
	Transform(ctx context.Context, inputFile string) ([]domain.SalesRecord, error)

	// GetSnapshotDate extracts the date from the filename
	GetSnapshotDate(filename string) (time.Time, error)

	// Validate checks if the input file is valid for this pipeline
	Validate(inputFile string) error
}

// Sink receives flushed record batches and reports how many rows it wrote.
type Sink interface {
	InsertSalesRecords(ctx context.Context, records []domain.SalesRecord) (int, error)
}

// PipelineConfig holds configuration for a pipeline instance
type PipelineConfig struct {
	Name        string
	BatchSize   int // Number of records to buffer before flushing
	WorkerCount int // Number of concurrent file workers
}

// DefaultPipelineConfig returns sensible defaults
func DefaultPipelineConfig(name string) PipelineConfig {
	return PipelineConfig{
		Name:        name,
		BatchSize:   1000,
		WorkerCount: 4,
	}
}

// FileJobStatus represents the state of a single file processing job
type FileJobStatus string

const (
	FileStatusQueued     FileJobStatus = "queued"
	FileStatusProcessing FileJobStatus = "processing"
	FileStatusCompleted  FileJobStatus = "completed"
	FileStatusFailed     FileJobStatus = "failed"
)

// FileJob tracks the processing of a single file
type FileJob struct {
	FilePath     string
	SnapshotDate time.Time
	Status       FileJobStatus
	Rows         int
	ErrorMessage string
	ProcessedAt  *time.Time
}

// RunStats summarises one orchestrator or worker run.
type RunStats struct {
	Files       int
	RowsParsed  int
	RowsWritten int
	Jobs        []FileJob
}

func (s *RunStats) merge(other RunStats) {
	s.Files += other.Files
	s.RowsParsed += other.RowsParsed
	s.RowsWritten += other.RowsWritten
	s.Jobs = append(s.Jobs, other.Jobs...)
}
