// Package config loads the YAML file that tunes the BDD manager and the
// dictionary's word-length bound.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds every value xword needs that a user might reasonably want to
// override without recompiling.
type Config struct {
	// MaxWordLen bounds the length of any admitted word or clue pattern,
	// including its NUL terminator. It fixes the width of the dictionary
	// variable region, so it cannot grow once a dictionary has been built.
	MaxWordLen int `yaml:"max_word_len"`

	// Nodesize, Cachesize and Cacheratio are passed straight through to
	// rudd.New; see that package's documentation for their meaning.
	Nodesize   int `yaml:"nodesize"`
	Cachesize  int `yaml:"cachesize"`
	Cacheratio int `yaml:"cacheratio"`
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		MaxWordLen: 25,
		Nodesize:   10000,
		Cachesize:  10000,
		Cacheratio: 0,
	}
}

// Load reads cfg from path, falling back to Defaults for any field an empty
// or partial file leaves unset.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
