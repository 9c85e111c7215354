package config

import "github.com/Klingon-tech/seed-converter/internal/wallet"

// DefaultLabsPath is the derivation path used when none is configured.
var DefaultLabsPath = wallet.DefaultLabsPath

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Type:     wallet.Labs,
		Path:     DefaultLabsPath,
		Encoding: EncodingHex,
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
