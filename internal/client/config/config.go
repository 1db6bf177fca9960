package config

// Config holds runtime settings for the patientcli client.
//
// Fields:
//   - ServerBaseURL: base URL of the patient-profile REST backend.
//   - LocalDBPath: path of the sqlite file used for durable session storage.
type Config struct {
	ServerBaseURL string
	LocalDBPath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.LocalDBPath = "patientcli.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
