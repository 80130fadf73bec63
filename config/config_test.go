package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almogdepaz/ursa/utils"
)

func TestMain(m *testing.M) {
	err := os.Chdir("../")
	utils.PanicOnError(err)
	os.Exit(m.Run())
}

func TestTIBEConfig_ReadConfig(t *testing.T) {
	cfg, err := NewConfig("config/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, uint32(5), cfg.TIBE.Parties)
	assert.Equal(t, uint32(3), cfg.TIBE.Threshold)
	assert.Equal(t, "alice@example.com", cfg.TIBE.Identity)
	assert.Equal(t, 2*time.Second, cfg.TIBE.Timeout())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"threshold.yaml": "tibe:\n  parties: 2\n  threshold: 3\n",
		"zero.yaml":      "tibe:\n  parties: 0\n  threshold: 0\n",
		"timeout.yaml":   "tibe:\n  request_timeout: -1\n",
		"broken.yaml":    "tibe: [",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		_, err := NewConfig(path)
		assert.Error(t, err, name)
	}

	_, err := NewConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	cfg.TIBE = nil
	assert.Error(t, cfg.Validate())
}
