package ux

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/robogen/internal/state"
)

// RenderStatus prints the full status display for a run.
func RenderStatus(run *state.Run, runDir string) {
	timing, _ := state.LoadTiming(runDir)

	// Header
	fmt.Printf("%sRun:%s     %s\n", Bold, Reset, run.ID)
	fmt.Printf("%sApp:%s     %s\n", Bold, Reset, run.AppPath)
	fmt.Printf("%sOutput:%s  %s\n", Bold, Reset, run.OutputDir)

	current := state.StageIndex(run.Stage)
	if current < 0 {
		current = 0
	}
	if run.Status == state.StatusCompleted {
		current = len(state.Stages)
		fmt.Printf("%sState:%s   %s%scompleted%s\n", Bold, Reset, Green, Bold, Reset)
	} else {
		fmt.Printf("%sState:%s   %d/%d (%s) — %s\n",
			Bold, Reset, current+1, len(state.Stages), run.Stage, run.Status)
		if run.Error != "" {
			fmt.Printf("%sError:%s   %s%s%s\n", Bold, Reset, Red, run.Error, Reset)
		}
	}

	// Completed stages
	if current > 0 {
		fmt.Printf("\n%sCompleted:%s\n", Bold, Reset)
		for i := 0; i < current && i < len(state.Stages); i++ {
			name := state.Stages[i]
			dur := findDuration(timing, name)
			fmt.Printf("  %s%d%s  %-12s %sdone%s  %s\n",
				Dim, i+1, Reset, name, Green, Reset, dur)
		}
	}

	// Remaining stages
	if current < len(state.Stages) {
		fmt.Printf("\n%sRemaining:%s\n", Bold, Reset)
		for i := current; i < len(state.Stages); i++ {
			marker := "  "
			if i == current {
				marker = fmt.Sprintf("%s→%s ", Yellow, Reset)
			}
			fmt.Printf("  %s%s%d%s  %s\n", marker, Dim, i+1, Reset, state.Stages[i])
		}
	}

	// Artifacts listing
	fmt.Printf("\n%sArtifacts:%s\n", Bold, Reset)
	entries, err := os.ReadDir(runDir)
	if err != nil {
		fmt.Printf("  %s(none)%s\n", Dim, Reset)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			subEntries, _ := os.ReadDir(filepath.Join(runDir, e.Name()))
			if len(subEntries) > 0 {
				first := subEntries[0].Name()
				last := subEntries[len(subEntries)-1].Name()
				if first == last {
					fmt.Printf("  %s/%s/%s\n", runDir, e.Name(), first)
				} else {
					fmt.Printf("  %s/%s/%s .. %s\n", runDir, e.Name(), first, last)
				}
			}
		} else {
			fmt.Printf("  %s/%s\n", runDir, e.Name())
		}
	}
	fmt.Println()
}

func findDuration(timing *state.Timing, stage string) string {
	if timing == nil {
		return ""
	}
	for i := len(timing.Entries) - 1; i >= 0; i-- {
		if timing.Entries[i].Stage == stage && timing.Entries[i].Duration != "" {
			return fmt.Sprintf("(%s)", timing.Entries[i].Duration)
		}
	}
	return ""
}
