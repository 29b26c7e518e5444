package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunDir returns the artifacts directory for a run ID.
func RunDir(base, runID string) string {
	return filepath.Join(base, runID)
}

// EnsureRunDir creates the run directory structure.
func EnsureRunDir(runDir string) error {
	dirs := []string{
		runDir,
		filepath.Join(runDir, "prompts"),
		filepath.Join(runDir, "replies"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("creating run dir %s: %w", d, err)
		}
	}
	return nil
}

// PromptPath returns the path for a stage's rendered prompt.
func PromptPath(runDir, stage string) string {
	return filepath.Join(runDir, "prompts", stage+".md")
}

// ReplyPath returns the path for a stage's raw model reply.
func ReplyPath(runDir, stage string) string {
	return filepath.Join(runDir, "replies", stage+".txt")
}

// PlanPath returns the path for the decoded analysis plan.
func PlanPath(runDir string) string {
	return filepath.Join(runDir, "plan.json")
}

// ReportPath returns the path for the validation report.
func ReportPath(runDir string) string {
	return filepath.Join(runDir, "validation_report.json")
}

// OutcomePath returns the path for the store-stage outcome.
func OutcomePath(runDir string) string {
	return filepath.Join(runDir, "outcome.json")
}

// WriteJSON stores v as indented JSON at path.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LatestRunDir returns the most recently modified run directory under
// base, for status and doctor.
func LatestRunDir(base string) (string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", err
	}
	var best string
	var bestTime time.Time
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if best == "" || info.ModTime().After(bestTime) {
			best = filepath.Join(base, e.Name())
			bestTime = info.ModTime()
		}
	}
	if best == "" {
		return "", errors.New("no runs recorded yet")
	}
	return best, nil
}
