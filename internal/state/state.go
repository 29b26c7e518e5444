package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	StatusRunning     = "running"
	StatusCompleted   = "completed"
	StatusFailed      = "failed"
	StatusInterrupted = "interrupted"
)

// Stage names, in pipeline order.
const (
	StageAnalysis   = "analysis"
	StageGeneration = "generation"
	StageValidation = "validation"
	StageStore      = "store"
)

// Stages lists the pipeline stages in execution order.
var Stages = []string{StageAnalysis, StageGeneration, StageValidation, StageStore}

// StageIndex returns the position of a stage in the pipeline, or -1.
func StageIndex(stage string) int {
	for i, s := range Stages {
		if s == stage {
			return i
		}
	}
	return -1
}

// Run is the persisted record of one generation run.
type Run struct {
	ID        string    `json:"id"`
	AppPath   string    `json:"app_path"`
	OutputDir string    `json:"output_dir"`
	Stage     string    `json:"stage"`
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
	Error     string    `json:"error,omitempty"`
}

// NewRun mints a run with a fresh ID.
func NewRun(appPath, outputDir string) *Run {
	return &Run{
		ID:        uuid.NewString(),
		AppPath:   appPath,
		OutputDir: outputDir,
		Status:    StatusRunning,
		StartedAt: time.Now().UTC(),
	}
}

func statePath(runDir string) string {
	return filepath.Join(runDir, "state.json")
}

// Load reads the run record from a run directory.
func Load(runDir string) (*Run, error) {
	data, err := os.ReadFile(statePath(runDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("no run state recorded in " + runDir)
		}
		return nil, err
	}
	var r Run
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Save writes the run record to its run directory.
func (r *Run) Save(runDir string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(statePath(runDir), data, 0644)
}

// Fail marks the run failed with the given cause.
func (r *Run) Fail(err error) {
	r.Status = StatusFailed
	if err != nil {
		r.Error = err.Error()
	}
}
