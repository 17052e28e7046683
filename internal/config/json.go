package config

import (
	"encoding/json"
	"os"

	"github.com/guidolabarca009-sketch/chat-app/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Omitted fields
// keep their current (default) values.
type JsonConfig struct {
	StorePath         *string `json:"store_path"`
	MinPasswordLength *int    `json:"min_password_length"`
	MaxMessageLength  *int    `json:"max_message_length"`
	LogLevel          *string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Without that flag it is a no-op. Read or unmarshal errors panic; the caller
// sits directly under main and has nothing better to do with a broken config.
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

	if jc.StorePath != nil {
		cfg.StorePath = *jc.StorePath
	}
	if jc.MinPasswordLength != nil {
		cfg.MinPasswordLength = *jc.MinPasswordLength
	}
	if jc.MaxMessageLength != nil {
		cfg.MaxMessageLength = *jc.MaxMessageLength
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
