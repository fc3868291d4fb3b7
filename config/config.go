package config

import (
	"go.uber.org/zap"

	"github.com/influxkit/influx_sdk/common"
)

// Config contains SDK common configuration
type Config struct {
	// Logger log instance, if nil will use default nop logger
	Logger *zap.Logger
	// Debug whether to enable debug mode
	Debug bool
	// MaxBatchSize maximum number of points per write request,
	// 0 means the client default (5000)
	MaxBatchSize int
	// DefaultPrecision precision applied to writes that do not pass one,
	// empty means "let the server assign"
	DefaultPrecision common.Precision
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Logger: zap.NewNop(),
		Debug:  false,
	}
}

// NewDebugConfig returns configuration with debug mode enabled
func NewDebugConfig() *Config {
	debugLogger, err := zap.NewDevelopment()
	if err != nil {
		debugLogger = zap.NewNop()
	}

	return &Config{
		Logger: debugLogger,
		Debug:  true,
	}
}

// WithLogger sets custom logger
func (c *Config) WithLogger(logger *zap.Logger) *Config {
	c.Logger = logger
	return c
}

// WithProductionLogger sets production environment logger
func (c *Config) WithProductionLogger() *Config {
	logger, err := zap.NewProduction()
	if err != nil {
		c.Logger = zap.NewNop()
	} else {
		c.Logger = logger
	}
	return c
}

// WithDevelopmentLogger sets debug logger
func (c *Config) WithDevelopmentLogger() *Config {
	devLogger, err := zap.NewDevelopment()
	if err != nil {
		return c
	}
	c.Logger = devLogger
	c.Debug = true
	return c
}

// WithDebug sets debug mode. Enabling debug upgrades a missing logger to a
// development logger; a logger the caller set explicitly is kept.
func (c *Config) WithDebug(debug bool) *Config {
	c.Debug = debug

	if debug && c.Logger == nil {
		debugLogger, err := zap.NewDevelopment()
		if err != nil {
			return c
		}
		c.Logger = debugLogger
	}

	return c
}

// WithMaxBatchSize overrides the maximum number of points per write request
func (c *Config) WithMaxBatchSize(size int) *Config {
	c.MaxBatchSize = size
	return c
}

// WithDefaultPrecision sets the precision applied to writes that do not pass
// one
func (c *Config) WithDefaultPrecision(precision common.Precision) *Config {
	c.DefaultPrecision = precision
	return c
}

// GetLogger gets logger instance
func (c *Config) GetLogger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
