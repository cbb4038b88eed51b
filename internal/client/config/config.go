package config

// Config holds runtime settings for the FlowGate CLI.
//
// Fields:
//   - ServerURL: base URL of the gateway management backend (auth, /apis).
//   - ProxyURL: public proxy endpoint shown to users in usage hints.
//   - SessionDBPath: SQLite file holding the persisted session credential.
//   - LogLevel / LogFormat: diagnostics written to stderr.
type Config struct {
	ServerURL     string
	ProxyURL      string
	SessionDBPath string
	LogLevel      string
	LogFormat     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.ProxyURL = "http://localhost:8080/proxy"
	c.SessionDBPath = "session.db"
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given), the environment and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
