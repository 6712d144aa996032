// internal/forms/jobapplication/config.go
package jobapplication

import (
	"time"

	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/config"
)

type Config struct {
	Policy          config.StorePolicy
	TimestampLayout string
}

func LoadConfig(form config.FormConfig) *Config {
	cfg := &Config{
		Policy:          form.Policy,
		TimestampLayout: form.TimestampLayout,
	}
	if cfg.Policy == "" {
		cfg.Policy = config.PolicyBestEffort
	}
	if cfg.TimestampLayout == "" {
		cfg.TimestampLayout = time.RFC3339
	}
	return cfg
}
