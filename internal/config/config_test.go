package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, 443, cfg.DefaultPort)
	assert.Equal(t, "", cfg.DefaultUsername)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.False(t, cfg.Insecure)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, cfg.SecretStore)
}

func TestLoad_NoConfigFile(t *testing.T) {
	// Ensure no env vars interfere.
	for _, key := range []string{"NESSUSCTL_DEFAULT_PORT", "NESSUSCTL_DEFAULT_USERNAME", "NESSUSCTL_OUTPUT_FORMAT", "NESSUSCTL_INSECURE", "NESSUSCTL_TIMEOUT", "NESSUSCTL_SECRET_STORE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 443, cfg.DefaultPort)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, ".nessusctl.yaml")

	content := `default_port: 443
default_username: "scanner"
output_format: "json"
insecure: true
timeout: 10s
secret_store: false
`
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))

	cfg, err := LoadFromFile(cfgFile)
	require.NoError(t, err)

	assert.Equal(t, 443, cfg.DefaultPort)
	assert.Equal(t, "scanner", cfg.DefaultUsername)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.False(t, cfg.SecretStore)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().Int("port", 443, "")
	cmd.Flags().String("username", "", "")
	cmd.Flags().String("format", "table", "")
	cmd.Flags().Bool("insecure", false, "")

	require.NoError(t, cmd.Flags().Set("port", "443"))
	require.NoError(t, cmd.Flags().Set("format", "csv"))

	cfg := Defaults()
	cfg.DefaultUsername = "fromfile"
	ApplyFlags(&cfg, cmd)

	assert.Equal(t, 443, cfg.DefaultPort)
	assert.Equal(t, "csv", cfg.OutputFormat)
	// Unchanged flags leave file/env values alone.
	assert.Equal(t, "fromfile", cfg.DefaultUsername)
	assert.False(t, cfg.Insecure)
}
