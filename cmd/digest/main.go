package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/HJantango/wild-octave-august-sub004/internal/cache"
	"github.com/HJantango/wild-octave-august-sub004/internal/config"
	"github.com/HJantango/wild-octave-august-sub004/internal/repository/postgres"
	"github.com/HJantango/wild-octave-august-sub004/internal/service"
	"github.com/HJantango/wild-octave-august-sub004/internal/storage"
	"github.com/HJantango/wild-octave-august-sub004/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "digest",
		Usage: "Write the daily order digest (recommendations and reminders) as CSV and JSON",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "weeks",
				Usage: "Sales history window in weeks (0 uses ORDER_WINDOW_WEEKS)",
			},
			&cli.StringFlag{
				Name:    "out-dir",
				Usage:   "Directory for the digest files",
				Value:   "./data/output/digests",
				EnvVars: []string{"DIGEST_OUT_DIR"},
			},
			&cli.BoolFlag{
				Name:  "upload",
				Usage: "Also upload the digest to object storage",
			},
			&cli.StringFlag{
				Name:    "prefix",
				Usage:   "Object key prefix for uploads",
				Value:   "digests",
				EnvVars: []string{"DIGEST_PREFIX"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg := config.Load()
	logger.Configure(cfg.Server.Mode, os.Stderr)

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	stock, err := cache.NewStockStore(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("stock cache unavailable, assuming zero on hand")
		stock = cache.NewMemoryStockStore()
	}

	recommendations := service.NewRecommendationService(
		postgres.NewSalesRepository(db),
		postgres.NewSettingsRepository(db),
		stock,
		cfg.Ordering,
		nil,
	)

	digest, err := service.NewDigestService(recommendations).Build(c.Context, c.Int("weeks"))
	if err != nil {
		return err
	}

	outDir := c.String("out-dir")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	base := filepath.Join(outDir, digest.GeneratedAt.Format("2006-01-02"))

	var csvBuf, jsonBuf bytes.Buffer
	if err := service.WriteCSV(&csvBuf, digest); err != nil {
		return fmt.Errorf("failed to render digest csv: %w", err)
	}
	if err := service.WriteJSON(&jsonBuf, digest); err != nil {
		return fmt.Errorf("failed to render digest json: %w", err)
	}
	if err := os.WriteFile(base+".csv", csvBuf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write digest csv: %w", err)
	}
	if err := os.WriteFile(base+".json", jsonBuf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write digest json: %w", err)
	}

	logger.Log.Info().
		Str("path", base).
		Int("vendors", len(digest.Recommendations.Vendors)).
		Int("reminders", digest.Reminders.Counts.Total).
		Msg("digest written")

	if !c.Bool("upload") {
		return nil
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialise object storage: %w", err)
	}
	keys, err := service.Upload(c.Context, store, c.String("prefix"), digest)
	if err != nil {
		return err
	}
	logger.Log.Info().Strs("keys", keys).Msg("digest uploaded")
	return nil
}
