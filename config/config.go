// Package config handles seed-converter configuration.
//
// Settings come from three layers, later layers winning:
//   - built-in defaults (Default)
//   - the config file (LoadFile / ApplyFileConfig)
//   - command-line flags (ApplyFlags)
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Klingon-tech/seed-converter/internal/wallet"
)

// Encoding selects how keys are printed.
type Encoding string

const (
	EncodingHex    Encoding = "hex"
	EncodingBase64 Encoding = "base64"
)

// ConfigFileName is the name of the config file inside the data directory.
const ConfigFileName = "seed-converter.conf"

// Config holds runtime settings.
type Config struct {
	// Mnemonic
	Type wallet.MnemonicType `conf:"type"` // legacy, labs or bip39
	Path string              `conf:"path"` // labs derivation path, unused for legacy

	// Output
	Encoding    Encoding `conf:"encoding"`
	Fingerprint bool     `conf:"fingerprint"`

	// Logging
	Log LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// DefaultDataDir returns the platform-specific directory holding the config file.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seed-converter"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "SeedConverter")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "SeedConverter")
		}
		return filepath.Join(home, "AppData", "Roaming", "SeedConverter")
	default:
		return filepath.Join(home, ".seed-converter")
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDataDir(), ConfigFileName)
}
