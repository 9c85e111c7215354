package config

import (
	"fmt"

	"github.com/Klingon-tech/seed-converter/internal/log"
	"github.com/Klingon-tech/seed-converter/internal/wallet"
)

// Validate checks the config for operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if _, err := cfg.Type.MarshalText(); err != nil {
		return fmt.Errorf("type: %w", err)
	}
	// The path only matters for labs phrases.
	if cfg.Type == wallet.Labs {
		if _, err := wallet.ParsePath(cfg.Path); err != nil {
			return fmt.Errorf("path: %w", err)
		}
	}
	switch cfg.Encoding {
	case EncodingHex, EncodingBase64:
	default:
		return fmt.Errorf("encoding must be %q or %q", EncodingHex, EncodingBase64)
	}
	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, error or off")
	}
	return nil
}
