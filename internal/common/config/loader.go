// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like SHEETS_PRIVATE_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Both forms serve unless explicitly switched off.
	viper.SetDefault("forms.job_application.enabled", true)
	viper.SetDefault("forms.talent_registration.enabled", true)

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay (config.development.yaml etc.)
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig() // ignore error if not found

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile loads .env from multiple possible locations so the server,
// tools, and tests all pick up the same credentials.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Walk up directories looking for go.mod
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// overrideEmptyConfig falls back to the well-known environment variable names
// used by the original deployment when the yaml left a field empty.
func overrideEmptyConfig(cfg *Config) {
	// Google Sheets service account
	if cfg.Sheets.ProjectID == "" {
		if val := os.Getenv("GOOGLE_PROJECT_ID"); val != "" {
			cfg.Sheets.ProjectID = val
		}
	}
	if cfg.Sheets.PrivateKeyID == "" {
		if val := os.Getenv("GOOGLE_PRIVATE_KEY_ID"); val != "" {
			cfg.Sheets.PrivateKeyID = val
		}
	}
	if cfg.Sheets.PrivateKey == "" {
		if val := os.Getenv("GOOGLE_PRIVATE_KEY"); val != "" {
			// Keys arrive with literal \n sequences when passed through env
			cfg.Sheets.PrivateKey = strings.ReplaceAll(val, `\n`, "\n")
		}
	}
	if cfg.Sheets.ServiceAccountEmail == "" {
		if val := os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL"); val != "" {
			cfg.Sheets.ServiceAccountEmail = val
		}
	}
	if cfg.Sheets.ClientID == "" {
		if val := os.Getenv("GOOGLE_CLIENT_ID"); val != "" {
			cfg.Sheets.ClientID = val
		}
	}

	// Per-form spreadsheets
	if cfg.Forms.JobApplication.SpreadsheetID == "" {
		if val := os.Getenv("GOOGLE_SHEET_ID"); val != "" {
			cfg.Forms.JobApplication.SpreadsheetID = val
		}
	}
	if cfg.Forms.TalentRegistration.SpreadsheetID == "" {
		if val := os.Getenv("GOOGLE_REGISTRATION_SHEET_ID"); val != "" {
			cfg.Forms.TalentRegistration.SpreadsheetID = val
		}
	}

	// Server
	if cfg.Server.FrontendURL == "" {
		if val := os.Getenv("FRONTEND_URL"); val != "" {
			cfg.Server.FrontendURL = val
		}
	}
	if cfg.Server.Port == 0 {
		if val := os.Getenv("PORT"); val != "" {
			fmt.Sscanf(val, "%d", &cfg.Server.Port)
		}
	}

	// Redis
	if cfg.Redis.Address == "" {
		if val := os.Getenv("REDIS_ADDRESS"); val != "" {
			cfg.Redis.Address = val
			cfg.Redis.Enabled = true
		}
	}
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	viper.SetDefault("forms.job_application.enabled", true)
	viper.SetDefault("forms.talent_registration.enabled", true)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for optional configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "submission-server"
	}

	// Server defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3001
	}
	if cfg.Server.FrontendURL == "" {
		cfg.Server.FrontendURL = "http://localhost:3000"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15000
	}

	// Rate limit: observed policy is 5 submissions per minute per client.
	if cfg.RateLimit.PerMinute == 0 {
		cfg.RateLimit.PerMinute = 5
	}

	// Form defaults. The two deployments intentionally diverge: the job
	// application keeps accepting when the sheet is down, the talent
	// registration fails the whole request.
	if cfg.Forms.JobApplication.SheetName == "" {
		cfg.Forms.JobApplication.SheetName = "Sheet1"
	}
	if cfg.Forms.JobApplication.Policy == "" {
		cfg.Forms.JobApplication.Policy = PolicyBestEffort
	}
	if cfg.Forms.JobApplication.TimestampLayout == "" {
		cfg.Forms.JobApplication.TimestampLayout = time.RFC3339
	}
	if cfg.Forms.TalentRegistration.SheetName == "" {
		cfg.Forms.TalentRegistration.SheetName = "Sheet1"
	}
	if cfg.Forms.TalentRegistration.Policy == "" {
		cfg.Forms.TalentRegistration.Policy = PolicyStrict
	}
	if cfg.Forms.TalentRegistration.TimestampLayout == "" {
		cfg.Forms.TalentRegistration.TimestampLayout = "02/01/2006 15:04:05"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields.
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port number")
	}

	if cfg.RateLimit.PerMinute < 0 {
		return fmt.Errorf("rate_limit.per_minute must be non-negative")
	}

	for name, form := range map[string]FormConfig{
		"forms.job_application":     cfg.Forms.JobApplication,
		"forms.talent_registration": cfg.Forms.TalentRegistration,
	} {
		if form.Policy != PolicyBestEffort && form.Policy != PolicyStrict {
			return fmt.Errorf("%s.policy must be %q or %q", name, PolicyBestEffort, PolicyStrict)
		}
	}

	if cfg.Redis.Enabled && cfg.Redis.Address == "" {
		return fmt.Errorf("redis.address is required when redis is enabled")
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
