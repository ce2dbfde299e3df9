package config

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	Env            string                `yaml:"env"` // "development" | "production"
	Database       DatabaseRuntimeConfig `yaml:"database"`
	RedisURL       string                `yaml:"redis_url"`
	AllowedOrigins []string              `yaml:"allowed_origins"`
	JWTSecret      string                `yaml:"jwt_secret"`
	AI             AIConfig              `yaml:"ai"`
}

type DatabaseRuntimeConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
	Loc      string `yaml:"loc"`
}

// AIConfig configures the completion providers and per-capability model
// assignments. The first enabled provider is the default.
type AIConfig struct {
	Providers      []AIProvider       `yaml:"providers"`
	ValidationModel *AIModelAssignment `yaml:"validation_model,omitempty"`
	ResearchModel   *AIModelAssignment `yaml:"research_model,omitempty"`
	PitchModel      *AIModelAssignment `yaml:"pitch_model,omitempty"`
	ChatModel       *AIModelAssignment `yaml:"chat_model,omitempty"`
	MaxOutputTokens int                `yaml:"max_output_tokens"`
	RequestTimeout  int                `yaml:"request_timeout_seconds"`
}

type AIModelAssignment struct {
	ProviderID string `yaml:"provider_id"`
	Model      string `yaml:"model"`
}

type AIProvider struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"` // OpenAI | OpenAI-Compatible | Anthropic
	APIKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint,omitempty"`
	DefaultModel string `yaml:"default_model"`
	Enabled      bool   `yaml:"enabled"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }
