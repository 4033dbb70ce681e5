package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory so a developer's own
// ~/.learnhub/config.yaml cannot leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("backend", "", "")
	fs.String("db", "", "")
	fs.String("catalog", "", "")
	fs.String("log-level", "", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "learnhub-progress", cfg.Storage.Key)
	assert.Equal(t, filepath.Join(home, ".learnhub", "learnhub.db"), cfg.Storage.SQLite.Path)
	assert.Equal(t, filepath.Join(home, ".learnhub", "progress.json"), cfg.Storage.File.Path)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, 2*time.Second, cfg.Persist.FlushTimeout)
	assert.Equal(t, 5*time.Second, cfg.Persist.SaveTimeout)
	assert.Empty(t, cfg.Catalog.Path)
}

func TestLoad_UnsetFlagsDoNotOverride(t *testing.T) {
	isolate(t)
	fs := newFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Precedence(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".learnhub")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
log:
  level: info
storage:
  backend: file
  key: from-file
persist:
  flush_timeout: 500ms
`), 0o644))

	t.Run("file", func(t *testing.T) {
		cfg, err := Load(nil)
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, BackendFile, cfg.Storage.Backend)
		assert.Equal(t, "from-file", cfg.Storage.Key)
		assert.Equal(t, 500*time.Millisecond, cfg.Persist.FlushTimeout)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("LEARNHUB_STORAGE_BACKEND", "memory")
		t.Setenv("LEARNHUB_STORAGE_REDIS_DB", "3")
		cfg, err := Load(nil)
		require.NoError(t, err)
		assert.Equal(t, BackendMemory, cfg.Storage.Backend)
		assert.Equal(t, 3, cfg.Storage.Redis.DB)
		assert.Equal(t, "from-file", cfg.Storage.Key)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("LEARNHUB_STORAGE_BACKEND", "memory")
		fs := newFlags()
		require.NoError(t, fs.Parse([]string{"--backend", "redis", "--db", "/tmp/x.db", "--log-level", "debug"}))

		cfg, err := Load(fs)
		require.NoError(t, err)
		assert.Equal(t, BackendRedis, cfg.Storage.Backend)
		assert.Equal(t, "/tmp/x.db", cfg.Storage.SQLite.Path)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  path: /srv/catalog.yaml\n"), 0o644))

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--config", path}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "/srv/catalog.yaml", cfg.Catalog.Path)
}

func TestLoad_MissingExplicitConfigFileIsError(t *testing.T) {
	isolate(t)
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))

	_, err := Load(fs)
	assert.Error(t, err)
}

func TestLoad_UnknownBackend(t *testing.T) {
	isolate(t)
	t.Setenv("LEARNHUB_STORAGE_BACKEND", "Floppy")

	_, err := Load(nil)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestValidate(t *testing.T) {
	valid := Config{Storage: StorageConfig{Backend: BackendFile, Key: "k"}}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"empty key", func(c *Config) { c.Storage.Key = " " }, true},
		{"negative timeout", func(c *Config) { c.Persist.FlushTimeout = -time.Second }, true},
		{"negative save timeout", func(c *Config) { c.Persist.SaveTimeout = -time.Second }, true},
		{"empty backend", func(c *Config) { c.Storage.Backend = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
