// Package config loads runtime configuration for the patientcli client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the PATIENTCLI_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend server
//	-d string   path of the local sqlite session database
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://localhost:8000",
//	  "local_db_path": "patientcli.db"
//	}
//
// # Environment
//
//	PATIENTCLI_SERVER_BASE_URL
//	PATIENTCLI_LOCAL_DB_PATH
//
// Primary API
//
//   - type Config                     — holds ServerBaseURL and LocalDBPath
//   - func LoadConfig() *Config       — builds Config by applying all sources in order
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
