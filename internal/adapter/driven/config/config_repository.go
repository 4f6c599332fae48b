package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/inheeen/sales-bonus/internal/domain/repository"
	"github.com/inheeen/sales-bonus/internal/shared/fileformat"
	"github.com/inheeen/sales-bonus/internal/shared/types"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every server environment variable.
const EnvPrefix = "SALES_BONUS"

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)

	fileData, err := fileformat.ReadFile(filePath, "config")
	if err != nil {
		return nil, err
	}

	var config types.Config
	if fileExtension == "" {
		return nil, fmt.Errorf("unsupported config file format: %s", filePath)
	}
	if err := fileformat.Decode(fileData, fileExtension, &config); err != nil {
		if errors.Is(err, types.ErrUnsupportedFormat) {
			return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
		}
		return nil, fmt.Errorf("error loading config file: %w", err)
	}

	return &config, nil
}

// LoadServerConfig lê as configurações do servidor HTTP das variáveis de ambiente.
func (r *ConfigRepositoryImpl) LoadServerConfig() (*types.ServerConfig, error) {
	var cfg types.ServerConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("error reading server environment: %w", err)
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("%s_RATE_LIMIT must be positive, got %d", EnvPrefix, cfg.RateLimit)
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("%s_MAX_BODY_BYTES must be positive, got %d", EnvPrefix, cfg.MaxBodyBytes)
	}
	return &cfg, nil
}
