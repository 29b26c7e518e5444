package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jorge-barreto/robogen/internal/fileset"
	"github.com/jorge-barreto/robogen/internal/gemini"
)

var varNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Model == "" {
		cfg.Model = gemini.DefaultModel
	}
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = "GEMINI_API_KEY"
	}
	if !varNameRe.MatchString(cfg.APIKeyEnv) {
		return fmt.Errorf("config: 'api-key-env' %q is not a valid environment variable name (must match [A-Za-z_][A-Za-z0-9_]*)", cfg.APIKeyEnv)
	}

	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = "robot_tests"
	}

	if cfg.Ignore == nil {
		cfg.Ignore = DefaultIgnore()
	}
	for _, p := range cfg.Ignore {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("config: 'ignore' entries must be non-empty")
		}
	}

	if cfg.ProseExtensions == nil {
		cfg.ProseExtensions = append([]string{}, fileset.DefaultProseExts...)
	}
	for i, ext := range cfg.ProseExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("config: 'prose-extensions' entry %q must be an extension like \".md\"", cfg.ProseExtensions[i])
		}
		cfg.ProseExtensions[i] = ext
	}

	if cfg.MaxFileBytes == 0 {
		cfg.MaxFileBytes = 64 * 1024
	}
	if cfg.MaxFileBytes < 0 {
		return fmt.Errorf("config: 'max-file-bytes' must be >= 0")
	}
	if cfg.MaxContextBytes == 0 {
		cfg.MaxContextBytes = 2 * 1024 * 1024
	}
	if cfg.MaxContextBytes < 0 {
		return fmt.Errorf("config: 'max-context-bytes' must be >= 0")
	}

	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 4
	}
	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("config: 'request-timeout' must be >= 0 minutes")
	}

	return nil
}

// DefaultIgnore returns a fresh copy of the default ignore patterns:
// VCS and CI metadata, dependency and build trees, lockfiles, binary
// assets, docker files, and the tool's default output directory.
// Callers own the returned slice.
func DefaultIgnore() []string {
	return []string{
		".git",
		".github",
		".next",
		".sauce",
		".storybook",
		"node_modules",
		"__pycache__",
		"__tests__",
		"__mocks__",
		"venv",
		".venv",
		"dist",
		"build",
		"public",
		"package-lock.json",
		"yarn.lock",
		"pnpm-lock.yaml",
		".env",
		".env.*",
		".DS_Store",
		"*.log",
		"*.xml",
		"*.png",
		"*.jpg",
		"*.jpeg",
		"*.gif",
		"*.ico",
		"*.svg",
		"*.zip",
		"*.pdf",
		"Dockerfile",
		".dockerignore",
		"docker-compose.yml",
		"docker-compose.override.yml",
		"docker-compose.override.yaml",
		"README.md",
		"LICENSE.*",
		"Jenkinsfile",
		"Makefile",
		"Makefile.*",
		"robot_tests",
	}
}
