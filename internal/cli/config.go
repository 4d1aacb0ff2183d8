package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "research-connect")
	dataDir := filepath.Join(home, ".local", "share", "research-connect")

	// Create directories
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(out, "Config file already exists at %s\n", configFile)
		fmt.Fprintln(out, "Use 'researchhub config show' to view current configuration")
		return nil
	}

	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Register yourself:  researchhub user add --name \"Ada Lovelace\" --email ada@campus.edu --role student")
	fmt.Fprintln(out, "  2. Add your interests: researchhub user update <id> --interests \"machine learning, robotics\"")
	fmt.Fprintln(out, "  3. Find professors:    researchhub match professors <id>")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "To use a campus MySQL server instead of SQLite, set [database] driver = \"mysql\"")
	fmt.Fprintln(out, "and dsn, or export RESEARCH_CONNECT_DB_DRIVER and RESEARCH_CONNECT_DB_DSN.")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(out, "No config file found. Run 'researchhub config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Fprintf(out, "# Config file: %s\n\n", configPath)
	fmt.Fprintln(out, string(data))
	return nil
}

const defaultConfig = `# Research Connect Configuration

[database]
driver = "sqlite3"   # sqlite3 or mysql
path = "~/.local/share/research-connect/research.db"
# dsn = "user:password@tcp(db.campus.edu:3306)/research"
max_open_conns = 10

[matching]
max_results = 0          # 0 keeps every match
min_compatibility = 0    # hide matches scoring below this (0-100)

[forum]
categories = [
    "General Research",
    "Funding Opportunities",
    "Publication Help",
    "Research Groups"
]
page_size = 20

[highlights]
page_size = 10

[server]
host = "127.0.0.1"
port = 8080
metrics_enabled = true

[log]
level = "info"      # debug, info, warn, error
format = "console"  # console or json

[mcp]
enabled = true
transport = "stdio"
`
