package repository

import (
	"context"
)

// StorageRepository defines the object storage operations used to read
// datasets and publish exported reports.
type StorageRepository interface {
	GetObject(ctx context.Context, profile, bucket, key string) ([]byte, error)
	UploadFile(ctx context.Context, profile, bucket, key, filePath string) (string, error)
}
