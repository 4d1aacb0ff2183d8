package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Database.Driver != "sqlite3" {
		t.Errorf("expected Driver=sqlite3, got %s", cfg.Database.Driver)
	}

	if cfg.Matching.MaxResults != 0 {
		t.Errorf("expected MaxResults=0, got %d", cfg.Matching.MaxResults)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected Port=8080, got %d", cfg.Server.Port)
	}

	if len(cfg.Forum.Categories) != 4 {
		t.Errorf("expected 4 forum categories, got %d", len(cfg.Forum.Categories))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "unknown driver",
			modify: func(c *Config) {
				c.Database.Driver = "postgres"
			},
			wantErr: true,
		},
		{
			name: "mysql without dsn",
			modify: func(c *Config) {
				c.Database.Driver = "mysql"
			},
			wantErr: true,
		},
		{
			name: "mysql with dsn",
			modify: func(c *Config) {
				c.Database.Driver = "mysql"
				c.Database.DSN = "user:pass@tcp(localhost:3306)/research"
			},
			wantErr: false,
		},
		{
			name: "negative max_results",
			modify: func(c *Config) {
				c.Matching.MaxResults = -1
			},
			wantErr: true,
		},
		{
			name: "min_compatibility above ceiling",
			modify: func(c *Config) {
				c.Matching.MinCompatibility = 101
			},
			wantErr: true,
		},
		{
			name: "no forum categories",
			modify: func(c *Config) {
				c.Forum.Categories = nil
			},
			wantErr: true,
		},
		{
			name: "invalid server port",
			modify: func(c *Config) {
				c.Server.Port = 0
			},
			wantErr: true,
		},
		{
			name: "invalid log format",
			modify: func(c *Config) {
				c.Log.Format = "xml"
			},
			wantErr: true,
		},
		{
			name: "invalid mcp transport",
			modify: func(c *Config) {
				c.MCP.Transport = "http"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		result, err := expandPath(tt.input)
		if err != nil {
			t.Errorf("expandPath(%q) error: %v", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	chdir(t, t.TempDir())

	path := writeConfig(t, `
[database]
path = "/tmp/research-test.db"

[matching]
max_results = 5

[server]
port = 9090
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/research-test.db", cfg.Database.Path)
	assert.Equal(t, 5, cfg.Matching.MaxResults)
	assert.Equal(t, 9090, cfg.Server.Port)
	// untouched sections keep their defaults
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:9090", cfg.ServerAddr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvDBPath, "/tmp/override.db")
	t.Setenv(EnvServerPort, "7000")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(writeConfig(t, "[log]\nlevel = \"warn\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvDBDriver+"=mysql\n"+EnvDBDSN+"=u:p@tcp(db:3306)/research\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv(EnvDBDriver)
		os.Unsetenv(EnvDBDSN)
	})

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "u:p@tcp(db:3306)/research", cfg.Database.DSN)
}

func TestLoad_Errors(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config init")

	_, err = Load(writeConfig(t, "[server\nport = 1"))
	assert.ErrorContains(t, err, "failed to parse config")

	t.Setenv(EnvServerPort, "eighty")
	_, err = Load(writeConfig(t, ""))
	assert.ErrorContains(t, err, EnvServerPort)
}

func TestHasForumCategory(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.HasForumCategory("Funding Opportunities"))
	assert.False(t, cfg.HasForumCategory("funding opportunities"))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
