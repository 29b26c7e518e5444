package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/robogen/internal/config"
	"github.com/jorge-barreto/robogen/internal/ux"
)

var configTemplate = `# robogen configuration. Every field is optional; the values below are
# the defaults.

# Gemini model used for every stage.
model: gemini-2.0-flash-001

# Environment variable read for the API key when --api-key is not passed.
api-key-env: GEMINI_API_KEY

# Where the generated suite is written, relative to the project root.
output-dir: robot_tests

# Minutes allowed per Gemini request. Zero disables the timeout.
request-timeout: 4

# File extensions treated as prose when parsing generated files: their
# bodies keep embedded code fences verbatim.
#prose-extensions:
#  - .md
#  - .markdown

# Gitignore-syntax patterns excluded from the analysis context.
# Setting this replaces the default list entirely.
#ignore:
#  - .git/
#  - node_modules
#  - dist
#  - "*.log"

# Per-file and total caps on the gathered application context, in bytes.
#max-file-bytes: 65536
#max-context-bytes: 2097152
`

// Init creates a new .robogen/ directory with a config file.
func Init(targetDir string) error {
	dir := filepath.Join(targetDir, config.Dir)
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("%s directory already exists in %s", config.Dir, targetDir)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", config.Dir, err)
	}

	configPath := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.FileName, err)
	}

	gitignorePath := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(gitignorePath, []byte("artifacts/\n"), 0644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Printf("\n%s%s✓ Initialized .robogen/ directory%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Created:\n")
	fmt.Printf("    %s.robogen/config.yaml%s — generation settings\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %s.robogen/.gitignore%s  — keeps run artifacts out of version control\n\n", ux.Cyan, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Export your API key: %sexport GEMINI_API_KEY=...%s\n", ux.Cyan, ux.Reset)
	fmt.Printf("    2. Preview a run: %srobogen run <app-path> --dry-run%s\n", ux.Cyan, ux.Reset)
	fmt.Printf("    3. Generate the suite: %srobogen run <app-path>%s\n\n", ux.Cyan, ux.Reset)

	return nil
}
