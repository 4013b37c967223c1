// Package config loads configuration for the suggestion service.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the suggestion service.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Complete   CompleteConfig   `mapstructure:"complete"`
	Trie       TrieConfig       `mapstructure:"trie"`
}

// ServerConfig holds HTTP server related configuration.
type ServerConfig struct {
	Host  string `mapstructure:"host"`
	Port  int    `mapstructure:"port"`
	Debug bool   `mapstructure:"debug"`
}

// DictionaryConfig describes the word list loaded at startup. Path may be
// empty, in which case the service starts with an empty trie.
type DictionaryConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// CompleteConfig bounds the completion endpoint.
type CompleteConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit"`
}

// TrieConfig selects the key folding behaviour of the trie.
type TrieConfig struct {
	CaseSensitive bool `mapstructure:"case_sensitive"`
	Normalise     bool `mapstructure:"normalise"`
}

// Load reads configuration from the given file (optional) and environment
// variables, falling back to defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.debug", false)

	v.SetDefault("dictionary.path", "")
	v.SetDefault("dictionary.format", "text")

	v.SetDefault("complete.default_limit", 10)
	v.SetDefault("complete.max_limit", 100)

	v.SetDefault("trie.case_sensitive", true)
	v.SetDefault("trie.normalise", false)
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Complete.DefaultLimit <= 0 {
		return fmt.Errorf("complete.default_limit must be positive, got %d", c.Complete.DefaultLimit)
	}
	if c.Complete.MaxLimit < c.Complete.DefaultLimit {
		return fmt.Errorf("complete.max_limit (%d) must be >= complete.default_limit (%d)",
			c.Complete.MaxLimit, c.Complete.DefaultLimit)
	}
	switch c.Dictionary.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("unsupported dictionary format: %q", c.Dictionary.Format)
	}
	return nil
}

// Addr returns the host:port the server should listen on.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
