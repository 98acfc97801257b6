package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Service endpoint; empty means the client's default
	Endpoint string

	// Request timeout applied to every call
	// Default: 30s
	Timeout time.Duration

	// Log level for the CLI logger (debug, info, warn, error)
	LogLevel string

	// Fixed column width for table output (0 = natural width)
	OutputWidth int

	// Path to the call journal database; empty disables it
	// Default: ~/.local/share/sharkfin/journal.db
	JournalPath string

	// Grooveshark credentials
	Grooveshark GroovesharkConfig
}

// GroovesharkConfig holds service credentials. Login and Password are
// optional; without them only anonymous methods work.
type GroovesharkConfig struct {
	APIKey    string
	APISecret string
	Login     string
	Password  string
}

// HasLogin reports whether user credentials are configured
func (g GroovesharkConfig) HasLogin() bool {
	return g.Login != "" && g.Password != ""
}

// Load reads configuration from file, .env and environment
func Load() (*Config, error) {
	// A missing .env is fine; values already in the environment win
	_ = godotenv.Load()

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	v.AddConfigPath(getConfigDir())
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("endpoint", "")
	v.SetDefault("timeout", "30s")
	v.SetDefault("log_level", "info")
	v.SetDefault("output_width", 0)
	v.SetDefault("journal_path", filepath.Join(getDataDir(), "journal.db"))
	v.SetDefault("grooveshark.api_key", "")
	v.SetDefault("grooveshark.api_secret", "")
	v.SetDefault("grooveshark.login", "")
	v.SetDefault("grooveshark.password", "")

	// Read config file (optional - don't fail if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Read from environment variables, e.g. SHARKFIN_GROOVESHARK_API_KEY
	v.SetEnvPrefix("SHARKFIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		Endpoint:    v.GetString("endpoint"),
		Timeout:     v.GetDuration("timeout"),
		LogLevel:    v.GetString("log_level"),
		OutputWidth: v.GetInt("output_width"),
		JournalPath: v.GetString("journal_path"),
		Grooveshark: GroovesharkConfig{
			APIKey:    v.GetString("grooveshark.api_key"),
			APISecret: v.GetString("grooveshark.api_secret"),
			Login:     v.GetString("grooveshark.login"),
			Password:  v.GetString("grooveshark.password"),
		},
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "sharkfin")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// getDataDir returns the data directory path without creating it
func getDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".local", "share", "sharkfin")
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file. The password is never written;
// supply it through SHARKFIN_GROOVESHARK_PASSWORD or .env instead.
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configFile := filepath.Join(getConfigDir(), "config.yaml")

	// Set values in viper
	v.Set("endpoint", c.Endpoint)
	v.Set("timeout", c.Timeout.String())
	v.Set("log_level", c.LogLevel)
	v.Set("output_width", c.OutputWidth)
	v.Set("journal_path", c.JournalPath)
	v.Set("grooveshark.api_key", c.Grooveshark.APIKey)
	v.Set("grooveshark.api_secret", c.Grooveshark.APISecret)
	v.Set("grooveshark.login", c.Grooveshark.Login)

	// Write to file
	return v.WriteConfigAs(configFile)
}
