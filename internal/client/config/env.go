package config

import "github.com/caarlos0/env/v11"

// envConfig is a DTO for environment parsing. All variables are prefixed
// with PATIENTCLI_.
type envConfig struct {
	ServerBaseURL string `env:"SERVER_BASE_URL"`
	LocalDBPath   string `env:"LOCAL_DB_PATH"`
}

// parseEnv overlays Config with values from the environment. Unset
// variables leave the earlier value in place.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: "PATIENTCLI_"}); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.LocalDBPath != "" {
		cfg.LocalDBPath = ec.LocalDBPath
	}
}
