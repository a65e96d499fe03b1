package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/HJantango/wild-octave-august-sub004/internal/config"
	"github.com/HJantango/wild-octave-august-sub004/internal/storage"
)

func storageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "storage-provider", Value: "minio", EnvVars: []string{"STORAGE_PROVIDER"}, Usage: "minio or sevalla"},
		&cli.StringFlag{Name: "storage-endpoint", EnvVars: []string{"STORAGE_ENDPOINT"}},
		&cli.StringFlag{Name: "storage-access-key", EnvVars: []string{"STORAGE_ACCESS_KEY"}},
		&cli.StringFlag{Name: "storage-secret-key", EnvVars: []string{"STORAGE_SECRET_KEY"}},
		&cli.StringFlag{Name: "storage-bucket", EnvVars: []string{"STORAGE_BUCKET"}},
		&cli.StringFlag{Name: "storage-region", EnvVars: []string{"STORAGE_REGION"}},
		&cli.BoolFlag{Name: "storage-use-ssl", Value: true, EnvVars: []string{"STORAGE_USE_SSL"}},
		&cli.StringFlag{Name: "storage-prefix", Value: "sales/", Usage: "Object prefix holding the exports"},
		&cli.StringFlag{Name: "storage-object", Usage: "Import a single object key instead of the whole prefix"},
		&cli.StringFlag{Name: "storage-download-dir", Value: "./data/tmp/storage"},
	}
}

func storageConfigFromFlags(c *cli.Context) config.StorageConfig {
	return config.StorageConfig{
		Provider:  c.String("storage-provider"),
		Endpoint:  c.String("storage-endpoint"),
		AccessKey: c.String("storage-access-key"),
		SecretKey: c.String("storage-secret-key"),
		Bucket:    c.String("storage-bucket"),
		Region:    c.String("storage-region"),
		UseSSL:    c.Bool("storage-use-ssl"),
	}
}

type objectDownloader struct {
	client  storage.ObjectStorage
	destDir string
}

func newObjectDownloader(c *cli.Context) (*objectDownloader, error) {
	client, err := storage.New(storageConfigFromFlags(c))
	if err != nil {
		return nil, err
	}

	destDir := c.String("storage-download-dir")
	if destDir == "" {
		destDir = "./data/tmp/storage"
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure download dir %s: %w", destDir, err)
	}

	return &objectDownloader{client: client, destDir: destDir}, nil
}

func (d *objectDownloader) downloadSalesExports(ctx context.Context, prefix, override string) ([]string, error) {
	var keys []string

	if override != "" {
		keys = []string{resolveObjectKey(prefix, override)}
	} else {
		listPrefix := strings.TrimSpace(prefix)
		objects, err := d.client.ListObjects(ctx, listPrefix)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects for prefix %s: %w", listPrefix, err)
		}
		for _, obj := range objects {
			if strings.HasSuffix(strings.ToLower(obj.Key), ".csv") {
				keys = append(keys, obj.Key)
			}
		}
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("no CSV files found for prefix %s", prefix)
	}

	localPaths := make([]string, 0, len(keys))
	for _, key := range keys {
		localPath := filepath.Join(d.destDir, objectRelativePath(prefix, key))
		if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to prepare directory for %s: %w", localPath, err)
		}
		if err := d.client.DownloadObject(ctx, key, localPath); err != nil {
			return nil, err
		}
		localPaths = append(localPaths, localPath)
	}

	sort.Strings(localPaths)
	return localPaths, nil
}

// resolveObjectKey joins override onto prefix unless override already carries it.
func resolveObjectKey(prefix, override string) string {
	if override == "" {
		return strings.TrimSpace(prefix)
	}
	if prefix == "" {
		return strings.TrimPrefix(override, "/")
	}

	prefixTrimmed := strings.TrimSuffix(strings.TrimSpace(prefix), "/")
	overrideTrimmed := strings.TrimPrefix(strings.TrimSpace(override), "/")

	if strings.HasPrefix(overrideTrimmed, prefixTrimmed) {
		return overrideTrimmed
	}
	return prefixTrimmed + "/" + overrideTrimmed
}

func objectRelativePath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	prefixTrimmed := strings.TrimSuffix(strings.TrimSpace(prefix), "/")
	rel := strings.TrimPrefix(key, prefixTrimmed+"/")
	if rel == "" {
		return filepath.Base(key)
	}
	return rel
}
