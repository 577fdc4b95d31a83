package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/toeiz/internal/llm"
	"github.com/abhisek/toeiz/internal/store"
)

// clearEnv blanks every bound variable so the host environment cannot
// leak into a test. Viper treats empty variables as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toeiz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*24*time.Hour, cfg.Server.SessionMaxAge)
	assert.Equal(t, store.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-flash", cfg.LLM.Gemini.Model)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.Generation.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.Generation.CycleTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `server:
  addr: 127.0.0.1:9000
  secure_cookies: true
  cors_origins:
    - https://toeiz.example.com
  session_max_age: 12h
database:
  driver: mysql
  mysql:
    host: db.internal
    port: 3307
llm:
  provider: anthropic
  anthropic:
    model: claude-sonnet
generation:
  max_attempts: 2
  attempt_timeout: 30s
  structured_output: true
log:
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.True(t, cfg.Server.SecureCookies)
	assert.Equal(t, []string{"https://toeiz.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 12*time.Hour, cfg.Server.SessionMaxAge)
	assert.Equal(t, "db.internal", cfg.Database.MySQL.Host)
	assert.Equal(t, 3307, cfg.Database.MySQL.Port)
	assert.Equal(t, "toeiz", cfg.Database.MySQL.Database)
	assert.Equal(t, "claude-sonnet", cfg.LLM.Anthropic.Model)
	assert.Equal(t, 2, cfg.Generation.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Generation.AttemptTimeout)
	assert.True(t, cfg.Generation.StructuredOutput)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `llm:
  provider: openai
  gemini:
    api_key: from-file
`)
	t.Setenv("TOEIZ_LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("TOEIZ_SECRET_KEY", "s3cret")
	t.Setenv("TOEIZ_DB", "/var/lib/toeiz/toeiz.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "from-env", cfg.LLM.Gemini.APIKey)
	assert.Equal(t, "s3cret", cfg.Server.SecretKey)
	assert.Equal(t, "/var/lib/toeiz/toeiz.db", cfg.Database.Path)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  addr: [[[\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantErr   bool
		configErr bool
	}{
		{"valid", func(c *Config) {}, false, false},
		{"missing api key", func(c *Config) { c.LLM.Gemini.APIKey = "" }, true, true},
		{"mock needs no key", func(c *Config) { c.LLM.Provider = "mock"; c.LLM.Gemini.APIKey = "" }, false, false},
		{"zero attempts", func(c *Config) { c.Generation.MaxAttempts = 0 }, true, false},
		{"too many attempts", func(c *Config) { c.Generation.MaxAttempts = 4 }, true, false},
		{"fewer attempts", func(c *Config) { c.Generation.MaxAttempts = 2 }, false, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "postgres" }, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Chdir(t.TempDir())
			cfg, err := Load("")
			require.NoError(t, err)
			cfg.LLM.Gemini.APIKey = "key"
			tt.mutate(cfg)

			err = cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.configErr, llm.IsConfigurationError(err))
		})
	}
}

func TestValidateServer_RequiresSecret(t *testing.T) {
	cfg := &Config{
		LLM:        LLMConfig{Provider: "mock"},
		Database:   DatabaseConfig{Driver: store.DriverSQLite},
		Generation: GenerationConfig{MaxAttempts: 3},
	}
	assert.ErrorContains(t, cfg.ValidateServer(), "TOEIZ_SECRET_KEY")

	cfg.Server.SecretKey = "s3cret"
	assert.NoError(t, cfg.ValidateServer())
}

func TestConversions(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: store.DriverMySQL, MySQL: MySQLConfig{Host: "db", Port: 3306}},
		LLM: LLMConfig{
			Provider:   "openrouter",
			Timeout:    time.Minute,
			OpenRouter: ProviderConfig{APIKey: "k", Model: "meta/llama", BaseURL: "http://proxy"},
		},
		Generation: GenerationConfig{MaxAttempts: 2, StructuredOutput: true},
	}

	lc := cfg.LLMConfig()
	assert.Equal(t, "openrouter", lc.Provider)
	assert.Equal(t, "http://proxy", lc.OpenRouter.BaseURL)
	assert.Equal(t, time.Minute, lc.Timeout)

	sc := cfg.StoreConfig()
	assert.Equal(t, store.DriverMySQL, sc.Driver)
	assert.Equal(t, "db", sc.MySQL.Host)

	gc := cfg.GeneratorConfig(nil)
	assert.Equal(t, 2, gc.MaxAttempts)
	assert.Equal(t, 0.5, gc.Temperature)
	assert.True(t, gc.StructuredOutput)
	assert.NotEmpty(t, gc.Validators)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Log: LogConfig{Level: "warn", Format: "json"}}

	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	cfg.Log.Format = "xml"
	_, err = cfg.NewLogger(&buf)
	assert.Error(t, err)

	cfg.Log = LogConfig{Level: "loud"}
	_, err = cfg.NewLogger(&buf)
	assert.Error(t, err)
}
