package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jorge-barreto/robogen/internal/config"
)

func TestInit_CreatesDirectoryStructure(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for _, path := range []string{
		".robogen",
		filepath.Join(".robogen", "config.yaml"),
		filepath.Join(".robogen", ".gitignore"),
	} {
		full := filepath.Join(dir, path)
		info, err := os.Stat(full)
		if err != nil {
			t.Fatalf("%s not created: %v", path, err)
		}
		if !info.IsDir() && info.Size() == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
}

func TestInit_GeneratedConfigIsValid(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg, err := config.Load(config.Path(dir))
	if err != nil {
		t.Fatalf("config.Load failed on generated config: %v", err)
	}

	def := config.Default()
	if cfg.Model != def.Model {
		t.Fatalf("model = %q, want default %q", cfg.Model, def.Model)
	}
	if cfg.OutputDir != def.OutputDir {
		t.Fatalf("output-dir = %q, want default %q", cfg.OutputDir, def.OutputDir)
	}
	if cfg.APIKeyEnv != def.APIKeyEnv {
		t.Fatalf("api-key-env = %q, want default %q", cfg.APIKeyEnv, def.APIKeyEnv)
	}
	if cfg.RequestTimeout != def.RequestTimeout {
		t.Fatalf("request-timeout = %d, want default %d", cfg.RequestTimeout, def.RequestTimeout)
	}
}

func TestInit_IgnoresArtifacts(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".robogen", ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "artifacts/") {
		t.Fatalf(".gitignore = %q, should exclude artifacts/", data)
	}
}

func TestInit_FailsIfDirExists(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".robogen"), 0755); err != nil {
		t.Fatal(err)
	}

	err := Init(dir)
	if err == nil {
		t.Fatal("expected error when .robogen already exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected error containing 'already exists', got: %s", err)
	}
}
