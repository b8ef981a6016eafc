package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort            = "3000"
	defaultUpstreamTimeout = 2 * time.Minute
)

// ProviderCredentials holds the settings needed to reach one upstream provider
type ProviderCredentials struct {
	APIKey         string `yaml:"api_key"`
	Endpoint       string `yaml:"endpoint,omitempty"`
	APIVersion     string `yaml:"api_version,omitempty"`
	DeploymentName string `yaml:"deployment_name,omitempty"`
	Model          string `yaml:"model,omitempty"`
	BaseURL        string `yaml:"base_url,omitempty"`
}

// ProvidersConfig groups the credentials of every supported provider
type ProvidersConfig struct {
	Gemini ProviderCredentials `yaml:"gemini"`
	OpenAI ProviderCredentials `yaml:"openai"`
	Azure  ProviderCredentials `yaml:"azure"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	Environment  string        `yaml:"environment"`
}

// Config is the process-wide configuration. It is built once by Load and
// must be treated as read-only afterwards.
type Config struct {
	Server          ServerConfig    `yaml:"server"`
	UpstreamTimeout time.Duration   `yaml:"upstream_timeout"`
	LogLevel        string          `yaml:"log_level"`
	Providers       ProvidersConfig `yaml:"providers"`
}

// Overrides holds CLI flag values that take priority over everything else
type Overrides struct {
	ConfigFile string
	EnvFile    string
	Host       string
	Port       string
	LogLevel   string
}

// Development reports whether the server runs outside production
func (c *Config) Development() bool {
	return c.Server.Environment != "production"
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GeminiConfigured reports whether the Gemini provider can be built
func (c *Config) GeminiConfigured() bool {
	return c.Providers.Gemini.APIKey != ""
}

// OpenAIConfigured reports whether the hosted Whisper provider can be built
func (c *Config) OpenAIConfigured() bool {
	return c.Providers.OpenAI.APIKey != ""
}

// AzureConfigured reports whether the managed Whisper deployment can be built
func (c *Config) AzureConfigured() bool {
	az := c.Providers.Azure
	return az.APIKey != "" && az.Endpoint != "" && az.DeploymentName != "" && az.APIVersion != ""
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         defaultPort,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: defaultUpstreamTimeout + 30*time.Second,
			IdleTimeout:  120 * time.Second,
			Environment:  "development",
		},
		UpstreamTimeout: defaultUpstreamTimeout,
		LogLevel:        "info",
	}
}

// LoadEnv loads variables from a .env file if one exists. An explicit path is
// used as-is; otherwise the usual locations are searched. Variables already
// present in the environment are never overwritten.
func LoadEnv(path string) error {
	envPaths := []string{".env", ".env.local", "../.env"}
	if path != "" {
		envPaths = []string{path}
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// LoadFile decodes a YAML config file on top of cfg
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Load builds the configuration.
// Priority: CLI overrides > environment variables > .env file > YAML file > defaults.
func Load(overrides Overrides) (*Config, error) {
	cfg := defaults()

	if overrides.ConfigFile != "" {
		if err := LoadFile(overrides.ConfigFile, cfg); err != nil {
			return nil, err
		}
	}

	if err := LoadEnv(overrides.EnvFile); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if overrides.Host != "" {
		cfg.Server.Host = overrides.Host
	}
	if overrides.Port != "" {
		cfg.Server.Port = overrides.Port
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// The write deadline must outlive the slowest upstream call
	if cfg.Server.WriteTimeout > 0 && cfg.Server.WriteTimeout <= cfg.UpstreamTimeout {
		cfg.Server.WriteTimeout = cfg.UpstreamTimeout + 30*time.Second
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Server.Host, "HOST")
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.Environment, "APP_ENV")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	if v := lookup("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", v, err)
		}
		cfg.UpstreamTimeout = d
	}

	setString(&cfg.Providers.Gemini.APIKey, "GOOGLE_API_KEY")
	setString(&cfg.Providers.Gemini.Model, "GEMINI_MODEL")
	setString(&cfg.Providers.Gemini.BaseURL, "GEMINI_BASE_URL")

	setString(&cfg.Providers.OpenAI.APIKey, "OPENAI_API_KEY")
	setString(&cfg.Providers.OpenAI.BaseURL, "OPENAI_BASE_URL")

	setString(&cfg.Providers.Azure.APIKey, "AZURE_OPENAI_KEY")
	setString(&cfg.Providers.Azure.APIVersion, "AZURE_OPENAI_API_VERSION")
	setString(&cfg.Providers.Azure.Endpoint, "AZURE_OPENAI_ENDPOINT")
	setString(&cfg.Providers.Azure.DeploymentName, "DEPLOYMENT_NAME")

	return nil
}

func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func setString(dst *string, key string) {
	if v := lookup(key); v != "" {
		*dst = v
	}
}
