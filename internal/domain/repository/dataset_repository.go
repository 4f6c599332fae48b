package repository

import (
	"context"

	"github.com/inheeen/sales-bonus/internal/domain/entity"
)

// DatasetRepository loads the raw sales inputs from a local path or an
// s3://bucket/key location. profile selects the AWS credentials for the
// latter and may be empty.
type DatasetRepository interface {
	LoadDataset(ctx context.Context, profile, location string) (*entity.Dataset, error)
	DecodeDataset(data []byte, format string) (*entity.Dataset, error)
}
