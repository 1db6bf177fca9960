package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/patientcli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config; absent keys leave the earlier value in
// place.
type JsonConfig struct {
	ServerBaseURL string `json:"server_base_url"`
	LocalDBPath   string `json:"local_db_path"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (see
// flagx.JsonConfigFlags); when neither is given, nothing is loaded. Read or
// unmarshal errors panic, matching the fail-fast startup policy of the other
// config stages.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
}
