package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 3180
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "foundrbox"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"
	defaultRedisURL   = "redis://localhost:6379/0"

	defaultAIMaxOutputTokens = 8192
	defaultAITimeoutSeconds  = 90
)

// Environment variable overrides for secrets, so deployments do not have to
// write credentials into the config file.
const (
	EnvDSN       = "FOUNDRBOX_DSN"
	EnvRedisURL  = "FOUNDRBOX_REDIS_URL"
	EnvJWTSecret = "FOUNDRBOX_JWT_SECRET"
	EnvAIAPIKey  = "FOUNDRBOX_AI_API_KEY"
)

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Database: DatabaseRuntimeConfig{
			Host:    defaultDBHost,
			Port:    defaultDBPort,
			User:    defaultDBUser,
			Name:    defaultDBName,
			Charset: defaultDBCharset,
			Loc:     defaultDBLoc,
		},
		RedisURL: defaultRedisURL,
		AI: AIConfig{
			MaxOutputTokens: defaultAIMaxOutputTokens,
			RequestTimeout:  defaultAITimeoutSeconds,
		},
	}
}

// Load reads the YAML config file, applies defaults and environment
// overrides, and validates the result. A missing file is not an error:
// defaults plus environment variables are enough to boot a dev instance.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if decodeErr := decoder.Decode(&cfg); decodeErr != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, decodeErr)
		}
	case os.IsNotExist(err):
		// fall through to defaults + env
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	normalize(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.Database.DSN == "" && (cfg.Database.Port < 1 || cfg.Database.Port > 65535) {
		return nil, fmt.Errorf("invalid database.port %d in %q, expected 1-65535", cfg.Database.Port, path)
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvDSN)); v != "" {
		cfg.Database.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvRedisURL)); v != "" {
		cfg.RedisURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvJWTSecret)); v != "" {
		cfg.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAIAPIKey)); v != "" {
		for i := range cfg.AI.Providers {
			if strings.TrimSpace(cfg.AI.Providers[i].APIKey) == "" {
				cfg.AI.Providers[i].APIKey = v
			}
		}
		if len(cfg.AI.Providers) == 0 {
			cfg.AI.Providers = []AIProvider{{
				ID:      "default",
				Name:    "Default",
				Type:    "OpenAI-Compatible",
				APIKey:  v,
				Enabled: true,
			}}
		}
	}
}

func normalize(cfg *AppConfig) {
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = defaultRedisURL
	}
	if cfg.AI.MaxOutputTokens <= 0 {
		cfg.AI.MaxOutputTokens = defaultAIMaxOutputTokens
	}
	if cfg.AI.RequestTimeout <= 0 {
		cfg.AI.RequestTimeout = defaultAITimeoutSeconds
	}

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	cfg.AllowedOrigins = origins
}
