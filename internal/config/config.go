// Package config holds runtime settings for the chat CLI and loads them in
// layers: defaults, then an optional JSON file, then command-line flags.
package config

// Config holds runtime settings.
//
// Fields:
//   - StorePath: path of the SQLite store file.
//   - MinPasswordLength: minimum accepted password length.
//   - MaxMessageLength: maximum accepted message length, in characters.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	StorePath         string
	MinPasswordLength int
	MaxMessageLength  int
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "chat.db"
	c.MinPasswordLength = 6
	c.MaxMessageLength = 500
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file was given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
