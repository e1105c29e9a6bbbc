package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/talentflow-app/talentflow/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Delays are
// integer milliseconds in the file; they are converted to time.Duration when
// copied into the runtime Config.
type JsonConfig struct {
	Addr        *string `json:"addr"`
	DatabaseDSN *string `json:"database_dsn"`
	Seed        *int64  `json:"seed"`

	BackendMinDelayMs  *int64   `json:"backend_min_delay_ms"`
	BackendMaxDelayMs  *int64   `json:"backend_max_delay_ms"`
	BackendFailureRate *float64 `json:"backend_failure_rate"`

	ClientMinDelayMs  *int64   `json:"client_min_delay_ms"`
	ClientMaxDelayMs  *int64   `json:"client_max_delay_ms"`
	ClientFailureRate *float64 `json:"client_failure_rate"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. Absent file means no overlay; read or unmarshal errors panic
// (the caller may recover if desired). Only fields present in the file are
// copied, so a partial file keeps the remaining defaults.
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

	if jc.Addr != nil {
		cfg.Addr = *jc.Addr
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.Seed != nil {
		cfg.Seed = *jc.Seed
	}
	if jc.BackendMinDelayMs != nil {
		cfg.BackendMinDelay = time.Duration(*jc.BackendMinDelayMs) * time.Millisecond
	}
	if jc.BackendMaxDelayMs != nil {
		cfg.BackendMaxDelay = time.Duration(*jc.BackendMaxDelayMs) * time.Millisecond
	}
	if jc.BackendFailureRate != nil {
		cfg.BackendFailureRate = *jc.BackendFailureRate
	}
	if jc.ClientMinDelayMs != nil {
		cfg.ClientMinDelay = time.Duration(*jc.ClientMinDelayMs) * time.Millisecond
	}
	if jc.ClientMaxDelayMs != nil {
		cfg.ClientMaxDelay = time.Duration(*jc.ClientMaxDelayMs) * time.Millisecond
	}
	if jc.ClientFailureRate != nil {
		cfg.ClientFailureRate = *jc.ClientFailureRate
	}
}
