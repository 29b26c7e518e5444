package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir is the project metadata directory, holding the config file and
// run artifacts.
const Dir = ".robogen"

// FileName is the config file name inside Dir.
const FileName = "config.yaml"

type Config struct {
	Model           string   `yaml:"model"`
	APIKeyEnv       string   `yaml:"api-key-env"`
	OutputDir       string   `yaml:"output-dir"`
	Ignore          []string `yaml:"ignore"`
	ProseExtensions []string `yaml:"prose-extensions"`
	MaxFileBytes    int64    `yaml:"max-file-bytes"`
	MaxContextBytes int64    `yaml:"max-context-bytes"`
	RequestTimeout  int      `yaml:"request-timeout"`
}

// Load reads a YAML config file and returns a validated Config. Every
// field is optional: a missing file yields pure defaults so the tool
// works in projects that never ran init.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	if err := Validate(cfg); err != nil {
		// The zero config only receives defaults; it cannot fail.
		panic(err)
	}
	return cfg
}

// Path returns the config file path under root.
func Path(root string) string {
	return filepath.Join(root, Dir, FileName)
}

// FindProjectRoot walks up from cwd looking for an existing config
// file. When none exists anywhere up the tree, cwd itself is the
// project root and defaults apply.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	start := dir
	for {
		if _, err := os.Stat(Path(dir)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}
