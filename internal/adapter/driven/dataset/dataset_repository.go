package dataset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/inheeen/sales-bonus/internal/domain/entity"
	"github.com/inheeen/sales-bonus/internal/domain/repository"
	"github.com/inheeen/sales-bonus/internal/shared/fileformat"
	"github.com/inheeen/sales-bonus/internal/shared/types"
)

// DatasetRepositoryImpl implementa o DatasetRepository.
type DatasetRepositoryImpl struct {
	storage  repository.StorageRepository
	validate *validator.Validate
}

// NewDatasetRepository cria uma nova implementação do DatasetRepository.
// storage is only used for s3:// locations and may be nil.
func NewDatasetRepository(storage repository.StorageRepository) repository.DatasetRepository {
	return &DatasetRepositoryImpl{
		storage:  storage,
		validate: validator.New(),
	}
}

// LoadDataset carrega um dataset TOML, YAML ou JSON de um arquivo local ou do S3.
func (r *DatasetRepositoryImpl) LoadDataset(ctx context.Context, profile, location string) (*entity.Dataset, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: no dataset location given", types.ErrMissingData)
	}

	var (
		data []byte
		err  error
	)

	if bucket, key, ok := types.ParseS3URI(location); ok {
		if r.storage == nil {
			return nil, fmt.Errorf("cannot read %s: no object storage configured", location)
		}
		data, err = r.storage.GetObject(ctx, profile, bucket, key)
	} else {
		data, err = fileformat.ReadFile(location, "dataset")
	}
	if err != nil {
		return nil, err
	}

	return r.DecodeDataset(data, filepath.Ext(location))
}

// DecodeDataset parses data according to format (a file extension such as
// ".json" or a bare name such as "yaml") and validates the result.
func (r *DatasetRepositoryImpl) DecodeDataset(data []byte, format string) (*entity.Dataset, error) {
	var ds entity.Dataset
	if err := fileformat.Decode(data, format, &ds); err != nil {
		return nil, fmt.Errorf("error loading dataset: %w", err)
	}

	if err := r.Validate(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks the catalog identity rules: seller ids and product skus
// present and unique. Purchase records are not checked here; unresolved
// seller or sku references are skipped by the analyzer with a diagnostic.
// Empty lists are left to the analyzer too.
func (r *DatasetRepositoryImpl) Validate(ds *entity.Dataset) error {
	return Validate(r.validate, ds)
}

// Validate runs the dataset rules with v.
func Validate(v *validator.Validate, ds *entity.Dataset) error {
	if ds == nil {
		return types.ErrMissingData
	}

	err := v.Struct(ds)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", types.ErrInvalidDataset, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %v", types.ErrInvalidDataset, err)
}
