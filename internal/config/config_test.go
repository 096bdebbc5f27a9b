package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawko/lawsearch/internal/domain/search/scope"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{DSN: "postgres://localhost/lawsearch?sslmode=disable"},
		Engine: EngineConfig{
			Host: "http://localhost:7700",
			Indexes: []IndexBinding{
				{Name: "civil-articles", LawCode: "CIVIL_CODE", Scope: "civil"},
				{Name: "criminal-articles", LawCode: "CRIMINAL_CODE", Scope: "criminal"},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	cfg = validConfig()
	cfg.HTTP.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Engine.Host = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Engine.Indexes = nil
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Engine.Indexes[0].LawCode = ""
	assert.Error(t, cfg.Validate())

	// "all" is a caller-side scope, never a binding scope.
	cfg = validConfig()
	cfg.Engine.Indexes[0].Scope = "all"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Database.DSN = ""
	assert.Error(t, cfg.Validate())
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	assert.Equal(t, 10, cfg.HTTP.ReadTimeoutSec)
	assert.Equal(t, 10, cfg.HTTP.WriteTimeoutSec)
	assert.Equal(t, 10, cfg.HTTP.ShutdownSec)
	assert.Equal(t, 10, cfg.Database.ReadinessTimeout)
	assert.Equal(t, 8, cfg.Engine.TimeoutSec)
}

func TestBindings_PreserveOrder(t *testing.T) {
	cfg := validConfig()
	got := cfg.Bindings()
	require.Len(t, got, 2)
	assert.Equal(t, scope.Binding{Index: "civil-articles", LawCode: "CIVIL_CODE", Scope: scope.Civil}, got[0])
	assert.Equal(t, scope.Criminal, got[1].Scope)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	raw := `
http:
  port: 8080
database:
  dsn: ${LAWSEARCH_TEST_DSN}
engine:
  host: ${LAWSEARCH_TEST_ENGINE:-http://localhost:7700}
  api_key: secret
  indexes:
    - name: civil-articles
      law_code: CIVIL_CODE
      scope: civil
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "test.yaml"), []byte(raw), 0o600))

	t.Setenv("LAWSEARCH_TEST_DSN", "postgres://db/lawsearch")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("test")
	require.NoError(t, err)
	assert.Equal(t, "postgres://db/lawsearch", cfg.Database.DSN)
	assert.Equal(t, "http://localhost:7700", cfg.Engine.Host, "missing env var falls back to default")
	assert.Equal(t, 8, cfg.Engine.TimeoutSec, "defaults applied on load")
}
