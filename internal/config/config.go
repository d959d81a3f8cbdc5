package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/normhash/pkg/normhash"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileConfig holds the hashing options a config file or the environment may
// set. Nil fields were not set and leave the current value alone.
type FileConfig struct {
	EOL               *string `yaml:"eol" toml:"eol"`
	NoEOF             *bool   `yaml:"no_eof" toml:"no_eof"`
	IgnoreWhitespaces *bool   `yaml:"ignore_whitespaces" toml:"ignore_whitespaces"`
}

// ConfigFileNames are looked up, in order, by Discover.
var ConfigFileNames = []string{".normhash.yaml", ".normhash.yml", ".normhash.toml"}

const (
	EnvEOL               = normhash.EnvPrefix + "EOL"
	EnvNoEOF             = normhash.EnvPrefix + "NO_EOF"
	EnvIgnoreWhitespaces = normhash.EnvPrefix + "IGNORE_WHITESPACES"
)

// Load reads the config file at path. The format follows the extension:
// .toml is TOML, anything else is YAML.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	var cfg FileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", normhash.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

// Discover loads the first of ConfigFileNames present in dir and returns it
// with its path. ErrConfigNotFound means none exists.
func Discover(dir string) (*FileConfig, string, error) {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		cfg, err := Load(path)
		if errors.Is(err, ErrConfigNotFound) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}
	return nil, "", ErrConfigNotFound
}

// LoadDotEnv loads dir/.env into the process environment without
// overriding variables that are already set. A missing file is fine.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %w", normhash.ErrInvalidConfig, path, err)
	}
	return nil
}

// FromEnv reads the NORMHASH_* overrides through lookup, usually os.LookupEnv.
// NORMHASH_EOL is taken literally; the boolean variables accept the values
// strconv.ParseBool does.
func FromEnv(lookup func(string) (string, bool)) (*FileConfig, error) {
	var cfg FileConfig

	if v, ok := lookup(EnvEOL); ok {
		cfg.EOL = &v
	}

	var err error
	if cfg.NoEOF, err = envBool(lookup, EnvNoEOF); err != nil {
		return nil, err
	}
	if cfg.IgnoreWhitespaces, err = envBool(lookup, EnvIgnoreWhitespaces); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func envBool(lookup func(string) (string, bool), key string) (*bool, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not a boolean", normhash.ErrInvalidConfig, key, v)
	}
	return &b, nil
}

// Apply returns cfg with every field set in f overridden. A nil f changes nothing.
func (f *FileConfig) Apply(cfg normhash.Config) normhash.Config {
	if f == nil {
		return cfg
	}
	if f.EOL != nil {
		cfg = cfg.WithEOL(*f.EOL)
	}
	if f.NoEOF != nil {
		cfg = cfg.WithNoEOF(*f.NoEOF)
	}
	if f.IgnoreWhitespaces != nil {
		cfg = cfg.WithIgnoreWhitespaces(*f.IgnoreWhitespaces)
	}
	return cfg
}
