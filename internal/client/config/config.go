package config

import "time"

// Config holds runtime settings for the game-site CLI.
//
// Fields:
//   - ServerRootURL: root URL of the backend HTTP API.
//   - RequestTimeout: per-request timeout of the HTTP client.
type Config struct {
	ServerRootURL  string        `env:"GAMESITE_SERVER_URL"`
	RequestTimeout time.Duration `env:"GAMESITE_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerRootURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags
// (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
