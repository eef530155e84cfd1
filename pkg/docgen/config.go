package docgen

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// Config contains configuration options for the document generation engine
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error)
	LogLevel string
	// MaxMergeDocuments caps the number of documents accepted by a single
	// merge call. 0 means no cap.
	MaxMergeDocuments int
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:          "info",
		MaxMergeDocuments: 0,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// DOCGEN_LOG_LEVEL
	if val := os.Getenv("DOCGEN_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	return config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.MaxMergeDocuments < 0 {
		return errors.New("max merge documents cannot be negative")
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})

	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	configOnce.Do(func() {})

	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()
}
