package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/HJantango/wild-octave-august-sub004/internal/config"
)

// ObjectInfo represents metadata for a remote file/object.
type ObjectInfo struct {
	Key  string
	Size int64
}

// ObjectStorage captures the minimal S3-compatible operations the digest and import tools need.
type ObjectStorage interface {
	ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error)
	DownloadObject(ctx context.Context, key string, destPath string) error
	UploadObject(ctx context.Context, key string, data []byte) error
}

// New picks a backend by cfg.Provider: "minio" (default) or "sevalla".
func New(cfg config.StorageConfig) (ObjectStorage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "minio", "s3":
		return NewMinioClient(cfg)
	case "sevalla":
		return NewSevallaClient(cfg)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}
