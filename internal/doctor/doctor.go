package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jorge-barreto/robogen/internal/gemini"
	"github.com/jorge-barreto/robogen/internal/state"
	"github.com/jorge-barreto/robogen/internal/ux"
)

const maxReplyLines = 200

const diagTemplate = `You are diagnosing a failed Robot Framework suite generation run. Analyze the context below and provide a concise diagnosis.

## Run
%s

## Stage Reply (last %d lines)
%s
%s%s
Instructions:
1. Identify what went wrong from the run record and the reply.
2. Classify this as a PIPELINE problem (unparseable reply, empty application context, bad configuration) or an APPLICATION problem (the source tree being analyzed).
3. Suggest specific fixes.
4. Recommend the next command to run:
   - robogen run <app-path>                     (start a fresh run)
   - robogen run <app-path> --skip-validation   (when validation keeps failing)
   - Fix the underlying issue first, then re-run

Be direct and concise. Focus on actionable advice.`

// Run gathers failure context from a run's artifacts and asks the
// generator for a diagnosis.
func Run(ctx context.Context, gen gemini.Generator, runDir string, run *state.Run) error {
	if run.Status != state.StatusFailed && run.Status != state.StatusInterrupted {
		fmt.Println("No failed run to diagnose.")
		return nil
	}

	stage := run.Stage
	if state.StageIndex(stage) < 0 {
		stage = state.StageAnalysis
	}

	runInfo := gatherRun(run)
	reply := gatherReply(runDir, stage)
	report := gatherReport(runDir)
	timing := gatherTiming(runDir, stage)

	diagText := buildPrompt(runInfo, reply, report, timing)

	fmt.Printf("\n%s%s══ Doctor: diagnosing stage %s of run %s ══%s\n\n",
		ux.Bold, ux.Cyan, stage, shortID(run.ID), ux.Reset)

	answer, err := gen.Generate(ctx, diagText)
	if err != nil {
		return fmt.Errorf("diagnosis request failed: %w", err)
	}
	fmt.Println(answer)
	return nil
}

func buildPrompt(runInfo, reply, report, timing string) string {
	var reportSection, timingSection string
	if report != "" {
		reportSection = fmt.Sprintf("\n## Validation Report\n%s\n", report)
	}
	if timing != "" {
		timingSection = fmt.Sprintf("\n## Execution Context\nTiming: %s\n", timing)
	}
	return fmt.Sprintf(diagTemplate, runInfo, maxReplyLines, reply, reportSection, timingSection)
}

func gatherRun(run *state.Run) string {
	parts := []string{
		fmt.Sprintf("ID: %s", run.ID),
		fmt.Sprintf("Application: %s", run.AppPath),
		fmt.Sprintf("Output: %s", run.OutputDir),
		fmt.Sprintf("Stage: %s", run.Stage),
		fmt.Sprintf("Status: %s", run.Status),
	}
	if run.Error != "" {
		parts = append(parts, fmt.Sprintf("Error: %s", run.Error))
	}
	return strings.Join(parts, "\n")
}

func gatherReply(runDir, stage string) string {
	data, err := os.ReadFile(state.ReplyPath(runDir, stage))
	if err != nil {
		return "(no reply recorded)"
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) > maxReplyLines {
		lines = lines[len(lines)-maxReplyLines:]
		return fmt.Sprintf("... (truncated to last %d lines)\n%s", maxReplyLines, strings.Join(lines, "\n"))
	}
	return string(data)
}

func gatherReport(runDir string) string {
	data, err := os.ReadFile(state.ReportPath(runDir))
	if err != nil {
		return ""
	}
	return string(data)
}

func gatherTiming(runDir, stage string) string {
	timing, err := state.LoadTiming(runDir)
	if err != nil {
		return ""
	}
	var parts []string
	for _, e := range timing.Entries {
		if e.Stage != stage {
			continue
		}
		if e.Duration != "" {
			parts = append(parts, fmt.Sprintf("%s started %s, duration %s",
				e.Stage, e.Start.Format("15:04:05"), e.Duration))
		} else {
			parts = append(parts, fmt.Sprintf("%s started %s (did not complete)",
				e.Stage, e.Start.Format("15:04:05")))
		}
	}
	return strings.Join(parts, "; ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
