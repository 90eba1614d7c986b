package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigIfFound(t *testing.T) {
	dir := t.TempDir()

	config := GetDefaultConfig()
	require.NoError(t, config.ReadConfigIfFound(filepath.Join(dir, "missing.yaml")))
	assert.Equal(t, GetDefaultConfig(), config)

	assert.Error(t, config.ReadConfigIfFound(dir))

	path := filepath.Join(dir, "timerhook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
settings:
  path: /srv/cs2/discordConfig.json
  watch: false
  reload_interval: "*/5 * * * *"
http:
  timeout_seconds: 3
steam:
  profile_url: https://steamcommunity.com/profiles
`), 0644))

	require.NoError(t, config.ReadConfigIfFound(path))
	assert.Equal(t, "/srv/cs2/discordConfig.json", config.Settings.Path)
	assert.False(t, config.Settings.ShouldWatch())
	assert.True(t, config.Settings.IsIntervalValid())
	assert.Equal(t, 3*time.Second, config.HTTP.Timeout())
	assert.Equal(t, "https://steamcommunity.com/profiles/", config.Steam.ProfileBase())
	// untouched sections keep their defaults
	assert.Equal(t, "logs", config.Logging.File.Directory)
}

func TestDefaults(t *testing.T) {
	config := GetDefaultConfig()

	assert.True(t, config.Settings.ShouldWatch())
	assert.True(t, config.Settings.IsIntervalValid())
	assert.Equal(t, 10*time.Second, config.HTTP.Timeout())
	assert.Equal(t, 10*time.Second, HTTP{}.Timeout())

	assert.False(t, Reload{Interval: "every day"}.IsIntervalValid())
}
