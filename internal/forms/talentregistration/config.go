// internal/forms/talentregistration/config.go
package talentregistration

import (
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/config"
)

// Config holds the per-deployment knobs of the talent registration form.
type Config struct {
	Policy          config.StorePolicy
	TimestampLayout string
}

// LoadConfig derives the form config from the application config, applying
// the registration deployment defaults.
func LoadConfig(form config.FormConfig) *Config {
	cfg := &Config{
		Policy:          form.Policy,
		TimestampLayout: form.TimestampLayout,
	}
	if cfg.Policy == "" {
		cfg.Policy = config.PolicyStrict
	}
	if cfg.TimestampLayout == "" {
		cfg.TimestampLayout = "02/01/2006 15:04:05"
	}
	return cfg
}
