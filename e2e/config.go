package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_TRANSCRIPT points to a real export to run the scenarios against, generated when empty
	Transcript string `envconfig:"E2E_TRANSCRIPT"`
	// E2E_DEBUG_JSON dumps the full report as JSON in the test log
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	Workers int  `envconfig:"E2E_WORKERS" default:"4"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
