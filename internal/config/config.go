package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Generate  GenerateConfig  `yaml:"generate" mapstructure:"generate"`
	Deploy    DeployConfig    `yaml:"deploy" mapstructure:"deploy"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Pipeline  PipelineConfig  `yaml:"pipeline" mapstructure:"pipeline"`
	Batch     BatchConfig     `yaml:"batch" mapstructure:"batch"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures run persistence.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// GenerateConfig selects the chat backend used for analysis generation.
// Provider is one of "deploy", "anthropic", "synth", or "auto" (pick the
// first backend with credentials, falling back to the local synthesizer).
type GenerateConfig struct {
	Provider string `yaml:"provider" mapstructure:"provider"`
}

// DeployConfig holds Deploy AI gateway credentials.
type DeployConfig struct {
	ClientID     string `yaml:"client_id" mapstructure:"client_id"`
	ClientSecret string `yaml:"client_secret" mapstructure:"client_secret"`
	OrgID        string `yaml:"org_id" mapstructure:"org_id"`
	AuthURL      string `yaml:"auth_url" mapstructure:"auth_url"`
	BaseURL      string `yaml:"base_url" mapstructure:"base_url"`
	AgentID      string `yaml:"agent_id" mapstructure:"agent_id"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// PipelineConfig configures analysis behavior. Year anchors revival plans
// and relaunch naming; zero means the current year.
type PipelineConfig struct {
	Year int `yaml:"year" mapstructure:"year"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	MaxConcurrent int     `yaml:"max_concurrent" mapstructure:"max_concurrent"`
	RatePerSec    float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
}

// ServerConfig configures the HTTP serve surface.
type ServerConfig struct {
	Port      int    `yaml:"port" mapstructure:"port"`
	StaticDir string `yaml:"static_dir" mapstructure:"static_dir"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ResolveProvider returns the effective backend provider. "auto" selects
// Deploy AI when its credentials are present, then Anthropic, then the
// local synthesizer.
func (c *Config) ResolveProvider() string {
	switch c.Generate.Provider {
	case "", "auto":
	default:
		return c.Generate.Provider
	}
	if c.Deploy.ClientID != "" && c.Deploy.ClientSecret != "" {
		return "deploy"
	}
	if c.Anthropic.Key != "" {
		return "anthropic"
	}
	return "synth"
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("RELAUNCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "memory")
	v.SetDefault("generate.provider", "auto")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.static_dir", "static")
	v.SetDefault("batch.max_concurrent", 4)
	v.SetDefault("batch.rate_per_sec", 1.0)
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
