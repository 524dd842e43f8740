package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"pairwise/internal/domain"
)

// EnvPrefix prefixes environment overrides, e.g. PAIRWISE_KEY_TYPE.
const EnvPrefix = "PAIRWISE"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home  string      `mapstructure:"home" yaml:"home"` // state directory, e.g. $HOME/.pairwise
	Key   KeyConfig   `mapstructure:"key" yaml:"key"`
	Prime PrimeConfig `mapstructure:"prime" yaml:"prime"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
}

// KeyConfig holds the default generation parameters for the CLI.
type KeyConfig struct {
	Type        string `mapstructure:"type" yaml:"type"`
	Curve       string `mapstructure:"curve" yaml:"curve"`
	ModulusBits int    `mapstructure:"modulus_bits" yaml:"modulus_bits"`
	Use         string `mapstructure:"use" yaml:"use"`
}

// PrimeConfig bounds the RSA prime search.
type PrimeConfig struct {
	MaxTests int `mapstructure:"max_tests" yaml:"max_tests"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // text or json
}

// DefaultHome returns $HOME/.pairwise.
func DefaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".pairwise"
	}
	return filepath.Join(dir, ".pairwise")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("home", DefaultHome())
	v.SetDefault("key.type", string(domain.KeyTypeEC))
	v.SetDefault("key.curve", string(domain.CurveK256))
	v.SetDefault("key.modulus_bits", 2048)
	v.SetDefault("key.use", string(domain.KeyUseSig))
	v.SetDefault("prime.max_tests", 1<<16)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() Config {
	cfg, err := LoadConfig("")
	if err != nil {
		// Defaults alone never fail to unmarshal or validate.
		panic(err)
	}
	return cfg
}

// LoadConfig reads path (YAML) if non-empty, applies PAIRWISE_* environment
// overrides over the defaults, and validates the result. A missing file at
// path is an error; an empty path uses defaults and environment only.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that every field names something pairwise can derive.
func (c Config) Validate() error {
	var errs []error
	if c.Home == "" {
		errs = append(errs, errors.New("home cannot be empty"))
	}
	switch domain.KeyType(c.Key.Type) {
	case domain.KeyTypeEC, domain.KeyTypeRSA:
	default:
		errs = append(errs, fmt.Errorf("key.type: %w: %q", domain.ErrUnsupportedKeyType, c.Key.Type))
	}
	switch domain.CurveName(c.Key.Curve) {
	case domain.CurveK256, domain.CurveP256K:
	default:
		errs = append(errs, fmt.Errorf("key.curve: %w: %q", domain.ErrUnsupportedCurve, c.Key.Curve))
	}
	if c.Key.ModulusBits < 1024 || c.Key.ModulusBits%16 != 0 {
		errs = append(errs, fmt.Errorf("key.modulus_bits: %w: %d", domain.ErrInvalidModulusBits, c.Key.ModulusBits))
	}
	switch domain.KeyUse(c.Key.Use) {
	case domain.KeyUseSig, domain.KeyUseEnc:
	default:
		errs = append(errs, fmt.Errorf("key.use: must be sig or enc, got %q", c.Key.Use))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format: must be text or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// GenerateParams returns the generation parameters selected by c.
func (c Config) GenerateParams(exportable bool) domain.GenerateParams {
	kt := domain.KeyType(c.Key.Type)
	p := domain.DefaultGenerateParams(kt)
	p.Use = domain.KeyUse(c.Key.Use)
	p.Exportable = exportable
	switch kt {
	case domain.KeyTypeEC:
		p.Algorithm.NamedCurve = domain.CurveName(c.Key.Curve)
	case domain.KeyTypeRSA:
		p.Algorithm.ModulusLength = c.Key.ModulusBits
	}
	return p
}
