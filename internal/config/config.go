package config

// Config represents the application configuration
type Config struct {
	Database   DatabaseConfig   `toml:"database"`
	Matching   MatchingConfig   `toml:"matching"`
	Forum      ForumConfig      `toml:"forum"`
	Highlights HighlightsConfig `toml:"highlights"`
	Server     ServerConfig     `toml:"server"`
	Log        LogConfig        `toml:"log"`
	MCP        MCPConfig        `toml:"mcp"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Driver       string `toml:"driver"` // sqlite3 or mysql
	Path         string `toml:"path"`   // sqlite3 only
	DSN          string `toml:"dsn"`    // mysql only
	MaxOpenConns int    `toml:"max_open_conns"`
}

// MatchingConfig controls how recommendations are presented
type MatchingConfig struct {
	MaxResults       int `toml:"max_results"`       // 0 = no limit
	MinCompatibility int `toml:"min_compatibility"` // display floor on top of the zero filter
}

// ForumConfig contains discussion forum settings
type ForumConfig struct {
	Categories []string `toml:"categories"`
	PageSize   int      `toml:"page_size"`
}

// HighlightsConfig contains research highlight settings
type HighlightsConfig struct {
	PageSize int `toml:"page_size"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	MetricsEnabled bool   `toml:"metrics_enabled"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // console or json
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:       "sqlite3",
			Path:         "~/.local/share/research-connect/research.db",
			MaxOpenConns: 10,
		},
		Matching: MatchingConfig{
			MaxResults:       0,
			MinCompatibility: 0,
		},
		Forum: ForumConfig{
			Categories: []string{
				"General Research",
				"Funding Opportunities",
				"Publication Help",
				"Research Groups",
			},
			PageSize: 20,
		},
		Highlights: HighlightsConfig{
			PageSize: 10,
		},
		Server: ServerConfig{
			Host:           "127.0.0.1",
			Port:           8080,
			MetricsEnabled: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}
