package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "mock", cfg.Analysis.Provider)
	require.Equal(t, 2500*time.Millisecond, cfg.Analysis.Delay)
	require.Equal(t, "file", cfg.Store.Driver)
	require.Equal(t, "ideas", cfg.Store.Key)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
log:
  level: debug
auth:
  apiKeys:
    u1: secret
analysis:
  delay: 0s
  timeout: 3s
store:
  driver: sqlite
  path: /tmp/ideas.db
database:
  host: db
  port: 5432
  user: app
  password: pw
  name: ideas
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, map[string]string{"u1": "secret"}, cfg.Auth.APIKeys)
	require.Zero(t, cfg.Analysis.Delay)
	require.Equal(t, 3*time.Second, cfg.Analysis.Timeout)
	require.Equal(t, "sqlite", cfg.Store.Driver)
	// untouched keys keep their defaults
	require.Equal(t, "ideas", cfg.Store.Key)
	require.Equal(t, "host=db port=5432 user=app password=pw dbname=ideas sslmode=disable", cfg.PostgresDSN())
	require.Equal(t, "app:pw@tcp(db:5432)/ideas?parseTime=true&charset=utf8mb4&loc=UTC", cfg.MySQLDSN())
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"IDEAFORGE_PORT":              "7000",
		"IDEAFORGE_STORE_DRIVER":      "redis",
		"IDEAFORGE_ANALYSIS_PROVIDER": "openai",
		"IDEAFORGE_ANALYSIS_DELAY":    "100ms",
		"OPENAI_API_KEY":              "sk-test",
	}
	cfg := Default()
	require.NoError(t, cfg.applyEnv(func(k string) string { return env[k] }))
	require.Equal(t, 7000, cfg.Server.Port)
	require.Equal(t, "redis", cfg.Store.Driver)
	require.Equal(t, 100*time.Millisecond, cfg.Analysis.Delay)
	require.NoError(t, cfg.Validate())

	cfg = Default()
	require.Error(t, cfg.applyEnv(func(k string) string {
		if k == "IDEAFORGE_PORT" {
			return "abc"
		}
		return ""
	}))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Analysis.Provider = "openai"
	require.ErrorContains(t, cfg.Validate(), "apiKey")

	cfg = Default()
	cfg.Store.Driver = "cassandra"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Analysis.Delay = -time.Second
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.Port = 0
	require.Error(t, cfg.Validate())
}
