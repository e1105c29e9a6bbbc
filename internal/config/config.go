// Package config loads runtime settings for the talentflow demo server and
// the sync client. Values come from defaults, then an optional JSON file,
// then command-line flags, with later sources taking precedence.
package config

import "time"

// Config holds runtime settings.
//
// The two chaos sections are independent: Backend simulates the API's own
// latency/failures, Client simulates flaky network conditions on top of it.
type Config struct {
	Addr        string
	DatabaseDSN string
	Seed        int64

	BackendMinDelay    time.Duration
	BackendMaxDelay    time.Duration
	BackendFailureRate float64

	ClientMinDelay    time.Duration
	ClientMaxDelay    time.Duration
	ClientFailureRate float64
}

// LoadDefaults populates c with sensible defaults: the seed the original demo
// data was authored against, the documented 200ms-1s artificial latency, and
// an occasional backend failure.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabaseDSN = "talentflow.db"
	c.Seed = 123

	c.BackendMinDelay = 200 * time.Millisecond
	c.BackendMaxDelay = 1000 * time.Millisecond
	c.BackendFailureRate = 0.08

	c.ClientMinDelay = 200 * time.Millisecond
	c.ClientMaxDelay = 1000 * time.Millisecond
	c.ClientFailureRate = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file was given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
