package types

import "time"

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Data            string   `json:"data" yaml:"data" toml:"data"`
	ReportName      string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType      []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir             string   `json:"dir" yaml:"dir" toml:"dir"`
	RevenueStrategy string   `json:"revenue_strategy" yaml:"revenue_strategy" toml:"revenue_strategy"`
	BonusStrategy   string   `json:"bonus_strategy" yaml:"bonus_strategy" toml:"bonus_strategy"`
	Profile         string   `json:"profile" yaml:"profile" toml:"profile"`
	S3Bucket        string   `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Prefix        string   `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix"`
	Chart           bool     `json:"chart" yaml:"chart" toml:"chart"`
}

// ServerConfig holds the HTTP server settings read from the environment.
type ServerConfig struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	RateLimit       int           `envconfig:"RATE_LIMIT" default:"60"`
	MaxBodyBytes    int64         `envconfig:"MAX_BODY_BYTES" default:"10485760"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	RevenueStrategy string        `envconfig:"REVENUE_STRATEGY" default:"simple"`
	BonusStrategy   string        `envconfig:"BONUS_STRATEGY" default:"profit"`
}
