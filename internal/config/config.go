// Package config provides configuration loading for nessusctl.
// It supports a layered configuration approach with priority:
// CLI flags > environment variables (NESSUSCTL_*) > config file
// (~/.nessusctl.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds all nessusctl configuration options.
type Config struct {
	DefaultPort     int           `mapstructure:"default_port" yaml:"default_port"`
	DefaultUsername string        `mapstructure:"default_username" yaml:"default_username"`
	OutputFormat    string        `mapstructure:"output_format" yaml:"output_format"`
	Insecure        bool          `mapstructure:"insecure" yaml:"insecure"`
	Timeout         time.Duration `mapstructure:"timeout" yaml:"timeout"`
	SecretStore     bool          `mapstructure:"secret_store" yaml:"secret_store"`
}

// Defaults returns a Config populated with default values.
func Defaults() Config {
	return Config{
		DefaultPort:  443,
		OutputFormat: "table",
		Timeout:      30 * time.Second,
		SecretStore:  true,
	}
}

// Load reads configuration from ~/.nessusctl.yaml and environment variables.
// It does NOT apply CLI flag overrides; call ApplyFlags for that.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".nessusctl")
	v.SetConfigType("yaml")

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("NESSUSCTL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)

	v.SetEnvPrefix("NESSUSCTL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ApplyFlags overrides config values with any CLI flags that were explicitly set.
func ApplyFlags(cfg *Config, cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("port") {
		val, _ := flags.GetInt("port")
		cfg.DefaultPort = val
	}
	if flags.Changed("username") {
		val, _ := flags.GetString("username")
		cfg.DefaultUsername = val
	}
	if flags.Changed("format") {
		val, _ := flags.GetString("format")
		cfg.OutputFormat = val
	}
	if flags.Changed("insecure") {
		val, _ := flags.GetBool("insecure")
		cfg.Insecure = val
	}
}

// ConfigFilePath returns the default config file path (~/.nessusctl.yaml).
func ConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".nessusctl.yaml"
	}
	return filepath.Join(home, ".nessusctl.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("default_port", 443)
	v.SetDefault("output_format", "table")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("secret_store", true)
}
