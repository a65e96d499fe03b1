package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HJantango/wild-octave-august-sub004/internal/config"
	"github.com/chartmuseum/storage"
)

// SevallaClient implements ObjectStorage for Sevalla / S3-compatible services.
type SevallaClient struct {
	backend storage.Backend
}

// NewSevallaClient builds a new SevallaClient backed by chartmuseum's Amazon storage backend.
func NewSevallaClient(cfg config.StorageConfig) (*SevallaClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("sevalla endpoint must be provided")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("sevalla credentials must be provided")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("sevalla bucket must be provided")
	}

	endpoint := withScheme(cfg.Endpoint, cfg.UseSSL)
	region := regionOrDefault(cfg.Region)

	os.Setenv("AWS_ACCESS_KEY_ID", cfg.AccessKey)
	os.Setenv("AWS_SECRET_ACCESS_KEY", cfg.SecretKey)
	os.Setenv("AWS_REGION", region)
	os.Setenv("AWS_DEFAULT_REGION", region)

	backend := storage.NewAmazonS3BackendWithOptions(
		cfg.Bucket,
		"", // no prefix
		region,
		endpoint,
		"",
		&storage.AmazonS3Options{
			S3ForcePathStyle: awsBool(true),
		},
	)

	return &SevallaClient{
		backend: backend,
	}, nil
}

// ListObjects lists all objects for a given prefix.
func (c *SevallaClient) ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	files, err := c.backend.ListObjects(prefix)
	if err != nil {
		return nil, fmt.Errorf("sevalla list failed: %w", err)
	}
	results := make([]ObjectInfo, 0)
	for _, object := range files {
		results = append(results, ObjectInfo{
			Key:  object.Path,
			Size: int64(len(object.Content)),
		})
	}
	return results, nil
}

// DownloadObject downloads an object to the provided destination path.
func (c *SevallaClient) DownloadObject(ctx context.Context, key, destPath string) error {
	object, err := c.backend.GetObject(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("failed creating directory for %s: %w", destPath, err)
	}
	if err := os.WriteFile(destPath, object.Content, 0o644); err != nil {
		return fmt.Errorf("failed writing %s: %w", destPath, err)
	}
	return nil
}

// UploadObject writes data under key.
func (c *SevallaClient) UploadObject(ctx context.Context, key string, data []byte) error {
	if err := c.backend.PutObject(key, data); err != nil {
		return fmt.Errorf("sevalla upload failed: %w", err)
	}
	return nil
}

var _ ObjectStorage = (*SevallaClient)(nil)

func withScheme(endpoint string, useSSL bool) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	scheme := "https"
	if !useSSL {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s", scheme, strings.TrimPrefix(endpoint, "//"))
}

func regionOrDefault(region string) string {
	region = strings.TrimSpace(region)
	if region == "" {
		return "us-east-1"
	}
	return region
}

func awsBool(v bool) *bool {
	return &v
}
