// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Sheets        SheetsConfig       `mapstructure:"sheets"`
	Redis         RedisConfig        `mapstructure:"redis"`
	RateLimit     RateLimitConfig    `mapstructure:"rate_limit"`
	Forms         FormsConfig        `mapstructure:"forms"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int    `mapstructure:"port"`
	FrontendURL     string `mapstructure:"frontend_url"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// SheetsConfig carries the Google service-account credentials and the target
// spreadsheets. Loaded once at startup; immutable for the process lifetime.
type SheetsConfig struct {
	ProjectID           string `mapstructure:"project_id"`
	PrivateKeyID        string `mapstructure:"private_key_id"`
	PrivateKey          string `mapstructure:"private_key"`
	ServiceAccountEmail string `mapstructure:"service_account_email"`
	ClientID            string `mapstructure:"client_id"`
	BootstrapHeaders    bool   `mapstructure:"bootstrap_headers"`
}

// HasCredentials reports whether enough credential material is present to
// attempt a connection. Absence is not fatal: the store handle stays nil and
// per-submission behavior follows the deployment policy.
func (s SheetsConfig) HasCredentials() bool {
	return s.PrivateKey != "" && s.ServiceAccountEmail != ""
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig bounds submissions per client address.
type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"`
}

// StorePolicy selects how store-layer failures affect the caller-visible result.
type StorePolicy string

const (
	// PolicyBestEffort skips persistence on store failure and still reports success.
	PolicyBestEffort StorePolicy = "best-effort"
	// PolicyStrict surfaces store failures as server errors to the caller.
	PolicyStrict StorePolicy = "strict"
)

// FormConfig holds the per-deployment settings of one form pipeline.
type FormConfig struct {
	Enabled         bool        `mapstructure:"enabled"`
	SpreadsheetID   string      `mapstructure:"spreadsheet_id"`
	SheetName       string      `mapstructure:"sheet_name"`
	Policy          StorePolicy `mapstructure:"policy"`
	TimestampLayout string      `mapstructure:"timestamp_layout"` // Go reference layout
}

type FormsConfig struct {
	JobApplication     FormConfig `mapstructure:"job_application"`
	TalentRegistration FormConfig `mapstructure:"talent_registration"`
}

// NotificationConfig holds settings for the optional confirmation email.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
