package config

import (
	"github.com/spf13/pflag"

	"github.com/Klingon-tech/seed-converter/internal/wallet"
)

// Flags holds command-line flag values that map onto Config.
type Flags struct {
	Config string

	Type        wallet.MnemonicType
	Path        string
	Base64      bool
	Fingerprint bool

	LogLevel string
	LogFile  string
	LogJSON  bool

	// Explicitly-set flags (for overrides of file values).
	SetType        bool
	SetPath        bool
	SetBase64      bool
	SetFingerprint bool
	SetLogLevel    bool
	SetLogFile     bool
	SetLogJSON     bool
}

// RegisterGlobal adds the global flags to fs.
func (f *Flags) RegisterGlobal(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Config, "config", "c", "", "Config file path (default "+DefaultConfigPath()+")")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error, off)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")
}

// RegisterType adds the --type flag to fs.
func (f *Flags) RegisterType(fs *pflag.FlagSet) {
	fs.VarP(&f.Type, "type", "t", "Mnemonic type: labs (alias bip39) or legacy")
}

// RegisterOutput adds the key output flags to fs.
func (f *Flags) RegisterOutput(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.Base64, "base64", "b", false, "Encode keys in base64 (hex by default)")
	fs.BoolVar(&f.Fingerprint, "fingerprint", false, "Include a BLAKE3 fingerprint of the public key")
}

// RegisterPath adds the --path flag to fs.
func (f *Flags) RegisterPath(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Path, "path", "p", "", "Derivation path for labs mnemonics (default "+DefaultLabsPath+")")
}

// Capture records which flags were explicitly set on fs.
func (f *Flags) Capture(fs *pflag.FlagSet) {
	f.SetType = fs.Changed("type")
	f.SetPath = fs.Changed("path")
	f.SetBase64 = fs.Changed("base64")
	f.SetFingerprint = fs.Changed("fingerprint")
	f.SetLogLevel = fs.Changed("log-level")
	f.SetLogFile = fs.Changed("log-file")
	f.SetLogJSON = fs.Changed("log-json")
}

// ApplyFlags applies explicitly-set command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.SetType {
		cfg.Type = f.Type
	}
	if f.SetPath {
		cfg.Path = f.Path
	}
	if f.SetBase64 {
		if f.Base64 {
			cfg.Encoding = EncodingBase64
		} else {
			cfg.Encoding = EncodingHex
		}
	}
	if f.SetFingerprint {
		cfg.Fingerprint = f.Fingerprint
	}

	if f.SetLogLevel {
		cfg.Log.Level = f.LogLevel
	}
	if f.SetLogFile {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// Load builds the effective config: defaults, then the config file, then flags.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	path := f.Config
	if path == "" {
		path = DefaultConfigPath()
	}
	values, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyFileConfig(cfg, values); err != nil {
		return nil, err
	}

	ApplyFlags(cfg, f)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
