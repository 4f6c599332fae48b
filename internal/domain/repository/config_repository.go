package repository

import (
	"github.com/inheeen/sales-bonus/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadServerConfig() (*types.ServerConfig, error)
}
