// Package config resolves jumble settings from defaults, an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/karthick18/jumble/internal/pkg/dictionary"
)

const (
	// DefaultPath is read when no config file is named. It may be absent.
	DefaultPath = "jumble.yaml"

	DefaultDictionary = "/usr/share/dict/words"
	DefaultMaxLetters = 12

	EnvDictionary = "JUMBLE_DICT"
	EnvMaxLetters = "JUMBLE_MAX_LETTERS"
	EnvIndex      = "JUMBLE_INDEX"
	EnvLogLevel   = "JUMBLE_LOG_LEVEL"
)

var ErrInvalid = errors.New("invalid config")

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type Config struct {
	// Dictionary is the path of the word list, one word per line.
	Dictionary string `yaml:"dictionary"`
	// MinWordLen drops shorter words when the dictionary is loaded.
	MinWordLen int `yaml:"min_word_len"`
	// MaxLetters bounds the jumble length, enumeration grows with n!.
	MaxLetters int       `yaml:"max_letters"`
	Index      string    `yaml:"index"`
	Log        LogConfig `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Dictionary: DefaultDictionary,
		MinWordLen: dictionary.DefaultMinLen,
		MaxLetters: DefaultMaxLetters,
		Index:      string(dictionary.IndexSet),
		Log: LogConfig{
			Level:    "info",
			Encoding: "plain",
		},
	}
}

// Load builds the config from defaults, then the YAML file at path, then the
// environment. An empty path reads DefaultPath when it exists.
func Load(path string) (*Config, error) {
	c := Default()

	if err := c.loadFile(path); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if err := c.loadEnv(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) loadFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

func (c *Config) loadEnv() error {
	if v, ok := os.LookupEnv(EnvDictionary); ok && v != "" {
		c.Dictionary = v
	}

	if v, ok := os.LookupEnv(EnvMaxLetters); ok && v != "" {
		n, err := cast.ToIntE(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, EnvMaxLetters, err)
		}

		c.MaxLetters = n
	}

	if v, ok := os.LookupEnv(EnvIndex); ok && v != "" {
		c.Index = v
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}

	return nil
}

// Validate checks the resolved settings.
func (c *Config) Validate() error {
	if c.Dictionary == "" {
		return fmt.Errorf("%w: dictionary path is empty", ErrInvalid)
	}

	if c.MinWordLen < 1 {
		return fmt.Errorf("%w: min_word_len must be at least 1, got %d", ErrInvalid, c.MinWordLen)
	}

	if c.MaxLetters < 1 {
		return fmt.Errorf("%w: max_letters must be at least 1, got %d", ErrInvalid, c.MaxLetters)
	}

	if _, err := dictionary.ParseIndex(c.Index); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	switch c.Log.Level {
	case "debug", "info", "error", "severe":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}

	switch c.Log.Encoding {
	case "plain", "json":
	default:
		return fmt.Errorf("%w: log encoding %q", ErrInvalid, c.Log.Encoding)
	}

	return nil
}

// DictionaryIndex returns the validated index kind.
func (c *Config) DictionaryIndex() dictionary.Index {
	index, _ := dictionary.ParseIndex(c.Index)
	return index
}
