package types

import "errors"

var (
	ErrMissingData          = errors.New("missing data")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidDataset       = errors.New("invalid dataset")
	ErrUnsupportedFormat    = errors.New("unsupported file format")
)
