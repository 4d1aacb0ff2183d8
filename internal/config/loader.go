package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override file values
const (
	EnvDBDriver   = "RESEARCH_CONNECT_DB_DRIVER"
	EnvDBPath     = "RESEARCH_CONNECT_DB_PATH"
	EnvDBDSN      = "RESEARCH_CONNECT_DB_DSN"
	EnvLogLevel   = "RESEARCH_CONNECT_LOG_LEVEL"
	EnvServerPort = "RESEARCH_CONNECT_SERVER_PORT"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	// Expand path
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	// Read file
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'researchhub config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse TOML
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// .env next to the working directory is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}

	// Expand paths in config
	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	return nil
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDBDriver); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvDBDSN); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be a number, got '%s'", EnvServerPort, v)
		}
		c.Server.Port = port
	}
	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Database validation
	switch c.Database.Driver {
	case "sqlite3":
		if c.Database.Path == "" {
			errs = append(errs, errors.New("database.path is required for sqlite3"))
		}
	case "mysql":
		if c.Database.DSN == "" {
			errs = append(errs, errors.New("database.dsn is required for mysql"))
		}
	default:
		errs = append(errs, fmt.Errorf("database.driver must be 'sqlite3' or 'mysql', got '%s'", c.Database.Driver))
	}
	if c.Database.MaxOpenConns < 1 {
		errs = append(errs, errors.New("database.max_open_conns must be at least 1"))
	}

	// Matching validation
	if c.Matching.MaxResults < 0 {
		errs = append(errs, errors.New("matching.max_results must not be negative"))
	}
	if c.Matching.MinCompatibility < 0 || c.Matching.MinCompatibility > 100 {
		errs = append(errs, errors.New("matching.min_compatibility must be between 0 and 100"))
	}

	// Forum validation
	if len(c.Forum.Categories) == 0 {
		errs = append(errs, errors.New("forum.categories must not be empty"))
	}
	if c.Forum.PageSize < 1 || c.Forum.PageSize > 500 {
		errs = append(errs, errors.New("forum.page_size must be between 1 and 500"))
	}
	if c.Highlights.PageSize < 1 || c.Highlights.PageSize > 500 {
		errs = append(errs, errors.New("highlights.page_size must be between 1 and 500"))
	}

	// Server validation
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, errors.New("server.port must be between 1 and 65535"))
	}

	// Log validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level))
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format must be 'console' or 'json', got '%s'", c.Log.Format))
	}

	// MCP validation
	if c.MCP.Transport != "stdio" {
		errs = append(errs, fmt.Errorf("mcp.transport must be 'stdio', got '%s'", c.MCP.Transport))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// ServerAddr returns the listen address for the HTTP API
func (c *Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// HasForumCategory reports whether the category is configured
func (c *Config) HasForumCategory(category string) bool {
	for _, cat := range c.Forum.Categories {
		if cat == category {
			return true
		}
	}
	return false
}

