package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/seed-converter/internal/log"
)

// LoadFile loads configuration from a .conf file.
// Format: key = value (one per line, # for comments). A missing file
// yields an empty map.
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets a config value by key.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	case "type":
		return cfg.Type.UnmarshalText([]byte(value))
	case "path":
		cfg.Path = value
	case "encoding":
		cfg.Encoding = Encoding(strings.ToLower(value))
	case "fingerprint":
		cfg.Fingerprint = parseBool(value)

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	default:
		// Unknown keys are ignored
		log.Config.Warn().Str("key", key).Msg("ignoring unknown config key")
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// WriteDefaultConfig writes a commented default configuration file.
// An existing file is left untouched.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	d := Default()
	content := `# seed-converter configuration
#
# Command-line flags override these values.

# Mnemonic type: labs (12 words, alias bip39) or legacy (24 words)
type = ` + d.Type.String() + `

# Derivation path for labs phrases (ignored for legacy)
path = ` + d.Path + `

# Key output encoding: hex or base64
encoding = ` + string(d.Encoding) + `

# Add a short BLAKE3 fingerprint of the public key to derive/pubkey output
fingerprint = false

# Logging (written to stderr)
log.level = ` + d.Log.Level + `
log.json = false
# log.file = /path/to/seed-converter.log
`
	return os.WriteFile(path, []byte(content), 0600)
}
