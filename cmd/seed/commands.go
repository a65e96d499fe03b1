package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/HJantango/wild-octave-august-sub004/internal/drive"
	"github.com/HJantango/wild-octave-august-sub004/internal/pipeline"
	"github.com/HJantango/wild-octave-august-sub004/internal/pipeline/sales_export"
	"github.com/HJantango/wild-octave-august-sub004/internal/pipeline/vendor_order"
	"github.com/HJantango/wild-octave-august-sub004/internal/repository/postgres"
)

func runMigrate(c *cli.Context) error {
	db, err := dbFrom(c)
	if err != nil {
		return err
	}

	files, err := filepath.Glob(filepath.Join(c.String("migrations-dir"), "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations found in %s", c.String("migrations-dir"))
	}
	sort.Strings(files)

	for _, file := range files {
		body, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if _, err := db.ExecContext(c.Context, string(body)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", filepath.Base(file), err)
		}
		log.Info().Str("migration", filepath.Base(file)).Msg("applied migration")
	}
	return nil
}

func runSalesImport(c *cli.Context) error {
	files, err := listCSVFiles(c.String("dir"))
	if err != nil {
		return err
	}
	return importFiles(c, files)
}

func runDriveSalesImport(c *cli.Context) error {
	svc, err := drive.NewService(c.Context, c.String("credentials-json"))
	if err != nil {
		return err
	}

	folderID := c.String("folder-id")
	if folderID == "" && c.String("folder-path") != "" {
		folderID, err = svc.FindFolderByPath(c.Context, c.String("folder-path"))
		if err != nil {
			return err
		}
	}

	files, err := drive.NewDownloader(svc).DownloadFolderCSV(c.Context, drive.DownloadOptions{
		FolderID:     folderID,
		DownloadDir:  c.String("download-dir"),
		NameContains: c.String("name-contains"),
	})
	if err != nil {
		return fmt.Errorf("failed to download sales exports: %w", err)
	}
	return importFiles(c, files)
}

func runStorageSalesImport(c *cli.Context) error {
	downloader, err := newObjectDownloader(c)
	if err != nil {
		return err
	}
	files, err := downloader.downloadSalesExports(c.Context, c.String("storage-prefix"), c.String("storage-object"))
	if err != nil {
		return err
	}
	return importFiles(c, files)
}

func runSeedDefaults(c *cli.Context) error {
	db, err := dbFrom(c)
	if err != nil {
		return err
	}

	settings := postgres.NewSettingsRepository(db)
	schedules := vendor_order.DefaultVendorSchedules()
	if err := settings.ReplaceVendorSchedules(c.Context, schedules); err != nil {
		return fmt.Errorf("failed to seed vendor schedules: %w", err)
	}
	packs := vendor_order.DefaultPackSizes()
	if err := settings.ReplacePackSizes(c.Context, packs); err != nil {
		return fmt.Errorf("failed to seed pack sizes: %w", err)
	}

	log.Info().Int("vendor_schedules", len(schedules)).Int("pack_sizes", len(packs)).Msg("seeded ordering defaults")
	return nil
}

func importFiles(c *cli.Context, files []string) error {
	if len(files) == 0 {
		log.Warn().Msg("no sales exports to import")
		return nil
	}

	db, err := dbFrom(c)
	if err != nil {
		return err
	}

	p := sales_export.NewSalesExportPipeline(sales_export.Config{
		DefaultVendor: c.String("default-vendor"),
	})
	cfg := pipeline.DefaultPipelineConfig(p.Name())
	if n := c.Int("workers"); n > 0 {
		cfg.WorkerCount = n
	}
	if n := c.Int("batch-size"); n > 0 {
		cfg.BatchSize = n
	}

	stats, err := pipeline.NewOrchestrator(postgres.NewSalesRepository(db), cfg).Run(c.Context, p, files)
	if err != nil {
		return fmt.Errorf("sales import failed after %d rows: %w", stats.RowsWritten, err)
	}

	log.Info().
		Int("files", stats.Files).
		Int("rows_parsed", stats.RowsParsed).
		Int("rows_written", stats.RowsWritten).
		Msg("sales import completed")
	return nil
}

func listCSVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
