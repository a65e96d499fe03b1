package drive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DownloadOptions controls how files are pulled from Google Drive.
type DownloadOptions struct {
	FolderID    string
	DownloadDir string
	// NameContains keeps only files whose name contains this substring, case-insensitively.
	NameContains string
}

// Downloader pulls POS sales exports out of a Drive folder.
type Downloader struct {
	source FileSource
}

// NewDownloader creates a new Downloader.
func NewDownloader(source FileSource) *Downloader {
	return &Downloader{source: source}
}

// DownloadFolderCSV downloads all CSV and XLSX files from the given Drive folder into
// DownloadDir and returns local CSV paths in listing order. XLSX workbooks are converted
// to CSV and the downloaded workbook is removed. Other file types are skipped.
func (d *Downloader) DownloadFolderCSV(ctx context.Context, opts DownloadOptions) ([]string, error) {
	if opts.DownloadDir == "" {
		return nil, fmt.Errorf("download dir is required")
	}
	if err := os.MkdirAll(opts.DownloadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create download dir: %w", err)
	}

	files, err := d.source.ListFiles(ctx, opts.FolderID)
	if err != nil {
		return nil, err
	}

	filter := strings.ToLower(strings.TrimSpace(opts.NameContains))

	var localPaths []string
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ext := strings.ToLower(filepath.Ext(f.Name))
		if ext != ".csv" && ext != ".xlsx" {
			log.Debug().Str("file", f.Name).Msg("drive: skipping unsupported file")
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(f.Name), filter) {
			continue
		}

		localPath := filepath.Join(opts.DownloadDir, filepath.Base(f.Name))
		if err := d.downloadTo(ctx, f, localPath); err != nil {
			return nil, err
		}

		if ext == ".xlsx" {
			csvPath := strings.TrimSuffix(localPath, filepath.Ext(localPath)) + ".csv"
			if err := convertXLSXToCSV(localPath, csvPath); err != nil {
				return nil, fmt.Errorf("failed to convert %s to csv: %w", f.Name, err)
			}
			_ = os.Remove(localPath)
			localPath = csvPath
		}

		log.Info().Str("file", f.Name).Str("path", localPath).Msg("drive: downloaded sales export")
		localPaths = append(localPaths, localPath)
	}

	return localPaths, nil
}

func (d *Downloader) downloadTo(ctx context.Context, f *File, localPath string) error {
	out, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create local file %s: %w", localPath, err)
	}
	if err := d.source.DownloadFile(ctx, f.ID, out); err != nil {
		out.Close()
		_ = os.Remove(localPath)
		return fmt.Errorf("failed to download %s: %w", f.Name, err)
	}
	return out.Close()
}
