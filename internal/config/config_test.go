package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, defaultBaseURL, cfg.Site.BaseURL)
	assert.Equal(t, defaultSiteName, cfg.Site.Name)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Contains(t, cfg.DSN, "odhav_site")
	assert.Contains(t, cfg.DSN, "parseTime=True")
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8080
env: prod
dsn: user:pass@tcp(db:3306)/site?parseTime=True
allowed_origins:
  - example.com
  - "  "
site:
  base_url: https://example.com/
  name: Example Corp
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, []string{"example.com"}, cfg.AllowedOrigins)
	// Trailing slash is trimmed so URL joining stays predictable.
	assert.Equal(t, "https://example.com", cfg.Site.BaseURL)
	assert.Equal(t, "Example Corp", cfg.Site.Name)
}

func TestLoadProductionRequiresDatabase(t *testing.T) {
	dir := t.TempDir()

	bare := filepath.Join(dir, "bare.yml")
	require.NoError(t, os.WriteFile(bare, []byte("env: production\n"), 0o644))
	_, err := Load(bare)
	assert.Error(t, err)

	withDB := filepath.Join(dir, "with_db.yml")
	require.NoError(t, os.WriteFile(withDB, []byte("env: production\ndatabase:\n  host: db.internal\n"), 0o644))
	cfg, err := Load(withDB)
	require.NoError(t, err)
	assert.Contains(t, cfg.DSN, "db.internal")
}

func TestDSNValue(t *testing.T) {
	dsn := DatabaseRuntimeConfig{
		Host:     "db.internal",
		Port:     3307,
		User:     "site",
		Password: "secret",
		Name:     "odhav",
	}.DSNValue()

	assert.Contains(t, dsn, "site:secret@tcp(db.internal:3307)/odhav?")
	assert.Contains(t, dsn, "charset=utf8mb4")
	assert.Contains(t, dsn, "parseTime=True")

	explicit := DatabaseRuntimeConfig{DSN: "  raw-dsn  "}.DSNValue()
	assert.Equal(t, "raw-dsn", explicit)
}
