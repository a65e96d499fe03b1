package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
)

// Orchestrator coordinates running a Pipeline over a set of local files grouped by snapshot date.
type Orchestrator struct {
	sink  Sink
	cfg   PipelineConfig
	makeW func(p Pipeline, cfg PipelineConfig, sink Sink) *Worker
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(sink Sink, cfg PipelineConfig) *Orchestrator {
	return &Orchestrator{
		sink:  sink,
		cfg:   cfg,
		makeW: NewWorker,
	}
}

// Run groups the provided files by snapshot date (using p.GetSnapshotDate) and
// runs a Worker batch for each date, oldest first. Files without a date in their
// name form a single undated batch that runs last; their rows must carry dates.
func (o *Orchestrator) Run(ctx context.Context, p Pipeline, files []string) (RunStats, error) {
	var total RunStats
	if len(files) == 0 {
		return total, nil
	}

	byDate := make(map[time.Time][]string)
	for _, f := range files {
		date, err := p.GetSnapshotDate(filepath.Base(f))
		if err != nil {
			log.Debug().Err(err).Str("file", f).Msg("no snapshot date in filename")
			date = time.Time{}
		} else {
			date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		}
		byDate[date] = append(byDate[date], f)
	}

	dates := make([]time.Time, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool {
		if dates[i].IsZero() != dates[j].IsZero() {
			return !dates[i].IsZero()
		}
		return dates[i].Before(dates[j])
	})

	worker := o.makeW(p, o.cfg, o.sink)

	for _, date := range dates {
		stats, err := worker.ProcessBatch(ctx, date, byDate[date])
		total.merge(stats)
		if err != nil {
			return total, fmt.Errorf("failed to process batch for %s: %w", batchLabel(date), err)
		}
	}

	return total, nil
}

func batchLabel(date time.Time) string {
	if date.IsZero() {
		return "undated files"
	}
	return date.Format("2006-01-02")
}
