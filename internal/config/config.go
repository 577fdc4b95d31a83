// Package config loads toeiz settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/toeiz/internal/llm"
	"github.com/abhisek/toeiz/internal/questiongen"
	"github.com/abhisek/toeiz/internal/store"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Generation GenerationConfig `mapstructure:"generation"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Addr          string        `mapstructure:"addr"`
	SecretKey     string        `mapstructure:"secret_key"`
	SecureCookies bool          `mapstructure:"secure_cookies"`
	CORSOrigins   []string      `mapstructure:"cors_origins"`
	SessionMaxAge time.Duration `mapstructure:"session_max_age"`
}

type DatabaseConfig struct {
	Driver string      `mapstructure:"driver"`
	Path   string      `mapstructure:"path"`
	MySQL  MySQLConfig `mapstructure:"mysql"`
}

type MySQLConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

type LLMConfig struct {
	Provider   string         `mapstructure:"provider"`
	Timeout    time.Duration  `mapstructure:"timeout"`
	Gemini     ProviderConfig `mapstructure:"gemini"`
	Anthropic  ProviderConfig `mapstructure:"anthropic"`
	OpenAI     ProviderConfig `mapstructure:"openai"`
	OpenRouter ProviderConfig `mapstructure:"openrouter"`
}

type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type GenerationConfig struct {
	MaxAttempts      int           `mapstructure:"max_attempts"`
	MaxTokens        int           `mapstructure:"max_tokens"`
	AttemptTimeout   time.Duration `mapstructure:"attempt_timeout"`
	CycleTimeout     time.Duration `mapstructure:"cycle_timeout"`
	StructuredOutput bool          `mapstructure:"structured_output"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// envBindings maps config keys to the environment variables that override
// them.
var envBindings = map[string]string{
	"llm.provider":            "TOEIZ_LLM_PROVIDER",
	"llm.gemini.api_key":      "GEMINI_API_KEY",
	"llm.anthropic.api_key":   "ANTHROPIC_API_KEY",
	"llm.openai.api_key":      "OPENAI_API_KEY",
	"llm.openrouter.api_key":  "OPENROUTER_API_KEY",
	"server.secret_key":       "TOEIZ_SECRET_KEY",
	"server.addr":             "TOEIZ_ADDR",
	"database.path":           "TOEIZ_DB",
	"database.mysql.password": "TOEIZ_MYSQL_PASSWORD",
}

// Load reads configFile, or toeiz.yaml from the working directory or
// $HOME/.config/toeiz when configFile is empty. A missing file is not an
// error; defaults and environment variables still apply.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("toeiz")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/toeiz")
	}

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	llmDefaults := llm.DefaultConfig()
	genDefaults := questiongen.DefaultConfig()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.secure_cookies", false)
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("server.session_max_age", 30*24*time.Hour)

	v.SetDefault("database.driver", store.DriverSQLite)
	v.SetDefault("database.mysql.host", "127.0.0.1")
	v.SetDefault("database.mysql.port", 3306)
	v.SetDefault("database.mysql.username", "toeiz")
	v.SetDefault("database.mysql.database", "toeiz")

	v.SetDefault("llm.provider", llmDefaults.Provider)
	v.SetDefault("llm.timeout", llmDefaults.Timeout)
	v.SetDefault("llm.gemini.model", llmDefaults.Gemini.Model)
	v.SetDefault("llm.anthropic.model", llmDefaults.Anthropic.Model)
	v.SetDefault("llm.openai.model", llmDefaults.OpenAI.Model)
	v.SetDefault("llm.openrouter.model", llmDefaults.OpenRouter.Model)

	v.SetDefault("generation.max_attempts", genDefaults.MaxAttempts)
	v.SetDefault("generation.max_tokens", genDefaults.MaxTokens)
	v.SetDefault("generation.attempt_timeout", genDefaults.AttemptTimeout)
	v.SetDefault("generation.cycle_timeout", genDefaults.CycleTimeout)
	v.SetDefault("generation.structured_output", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate checks the settings every command needs: a usable LLM provider.
// A missing API key is reported as *llm.ErrConfiguration.
func (c *Config) Validate() error {
	if err := c.LLMConfig().Validate(); err != nil {
		return err
	}
	if c.Generation.MaxAttempts < 1 || c.Generation.MaxAttempts > questiongen.MaxAttemptLimit {
		return fmt.Errorf("generation.max_attempts must be between 1 and %d, got %d",
			questiongen.MaxAttemptLimit, c.Generation.MaxAttempts)
	}
	switch c.Database.Driver {
	case store.DriverSQLite, store.DriverMySQL:
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	return nil
}

// ValidateServer additionally checks what the web server needs.
func (c *Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Server.SecretKey == "" {
		return errors.New("TOEIZ_SECRET_KEY is not set")
	}
	return nil
}

// LLMConfig converts the llm section for llm.NewProvider.
func (c *Config) LLMConfig() llm.Config {
	return llm.Config{
		Provider: c.LLM.Provider,
		Timeout:  c.LLM.Timeout,
		Gemini: llm.GeminiConfig{
			APIKey: c.LLM.Gemini.APIKey,
			Model:  c.LLM.Gemini.Model,
		},
		Anthropic: llm.AnthropicConfig{
			APIKey: c.LLM.Anthropic.APIKey,
			Model:  c.LLM.Anthropic.Model,
		},
		OpenAI: llm.OpenAIConfig{
			APIKey:  c.LLM.OpenAI.APIKey,
			Model:   c.LLM.OpenAI.Model,
			BaseURL: c.LLM.OpenAI.BaseURL,
		},
		OpenRouter: llm.OpenRouterConfig{
			APIKey:  c.LLM.OpenRouter.APIKey,
			Model:   c.LLM.OpenRouter.Model,
			BaseURL: c.LLM.OpenRouter.BaseURL,
		},
	}
}

// StoreConfig converts the database section for store.Open.
func (c *Config) StoreConfig() store.Config {
	return store.Config{
		Driver: c.Database.Driver,
		Path:   c.Database.Path,
		MySQL: store.MySQLConfig{
			Host:     c.Database.MySQL.Host,
			Port:     c.Database.MySQL.Port,
			Username: c.Database.MySQL.Username,
			Password: c.Database.MySQL.Password,
			Database: c.Database.MySQL.Database,
		},
	}
}

// GeneratorConfig converts the generation section. The validator chain and
// the sampling temperature are always the defaults.
func (c *Config) GeneratorConfig(logger *slog.Logger) questiongen.Config {
	cfg := questiongen.DefaultConfig()
	cfg.MaxAttempts = c.Generation.MaxAttempts
	cfg.MaxTokens = c.Generation.MaxTokens
	cfg.AttemptTimeout = c.Generation.AttemptTimeout
	cfg.CycleTimeout = c.Generation.CycleTimeout
	cfg.StructuredOutput = c.Generation.StructuredOutput
	cfg.Logger = logger
	return cfg
}

// NewLogger builds the slog logger described by the log section.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.Log.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
}
