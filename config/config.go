package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Voice Task Uploader specifics
	Accounts       AccountsConfig
	Session        SessionConfig
	Auth           AuthConfig
	Upload         UploadConfig
	Todoist        TodoistConfig
	GoogleCalendar GoogleCalendarConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AccountsConfig points at the accounts file holding per-user credentials
// and provider settings.
type AccountsConfig struct {
	File string
}

// SessionConfig selects the session backend. Backend "memory" keeps
// sessions in-process; "redis" shares them across instances.
type SessionConfig struct {
	Backend string
	TTL     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type AuthConfig struct {
	LoginRatePerMin     int
	CookieMaxAgeSeconds int
	CookieSecure        bool
}

// UploadConfig controls where uploaded clips are spooled. An empty dir
// uses the system temp directory.
type UploadConfig struct {
	TempDir string
}

type TodoistConfig struct {
	BaseURL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Accounts
	cfg.Accounts.File = viper.GetString("accounts.file")
	if accountsFile := viper.GetString("accounts_file"); accountsFile != "" {
		cfg.Accounts.File = accountsFile
	}

	// Session store
	cfg.Session.Backend = viper.GetString("session.backend")
	cfg.Session.TTL = viper.GetString("session.ttl")
	cfg.Session.RedisAddr = viper.GetString("session.redis_addr")
	cfg.Session.RedisPassword = viper.GetString("session.redis_password")
	cfg.Session.RedisDB = viper.GetInt("session.redis_db")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Session.RedisAddr = redisAddr
	}

	// Auth behavior
	cfg.Auth.LoginRatePerMin = viper.GetInt("auth.login_rate_per_min")
	cfg.Auth.CookieMaxAgeSeconds = viper.GetInt("auth.cookie_max_age_seconds")
	cfg.Auth.CookieSecure = viper.GetBool("auth.cookie_secure")

	// Uploads
	cfg.Upload.TempDir = viper.GetString("upload.temp_dir")

	// Todoist
	cfg.Todoist.BaseURL = viper.GetString("todoist.base_url")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	if cfg.Accounts.File == "" {
		return nil, fmt.Errorf("accounts.file is required - set ACCOUNTS_FILE or accounts.file in config.yaml")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("accounts.file", "accounts.json")
	viper.SetDefault("session.backend", "memory")
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.redis_db", 0)
	viper.SetDefault("auth.login_rate_per_min", 10)
	viper.SetDefault("auth.cookie_max_age_seconds", 86400)
	viper.SetDefault("auth.cookie_secure", false)
	viper.SetDefault("todoist.base_url", "https://api.todoist.com")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true

			if provider.APIKey == "" {
				fmt.Printf("Warning: provider %s has no API key configured\n", provider.Name)
			}
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
