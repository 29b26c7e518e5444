// Package pipeline drives the four-stage suite generation run:
// analysis, generation, validation, store.
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jorge-barreto/robogen/internal/codebase"
	"github.com/jorge-barreto/robogen/internal/config"
	"github.com/jorge-barreto/robogen/internal/extract"
	"github.com/jorge-barreto/robogen/internal/fileset"
	"github.com/jorge-barreto/robogen/internal/gemini"
	"github.com/jorge-barreto/robogen/internal/materialize"
	"github.com/jorge-barreto/robogen/internal/plan"
	"github.com/jorge-barreto/robogen/internal/prompt"
	"github.com/jorge-barreto/robogen/internal/report"
	"github.com/jorge-barreto/robogen/internal/state"
	"github.com/jorge-barreto/robogen/internal/ux"
)

// Pipeline drives one generation run from application source to a
// materialized suite.
type Pipeline struct {
	Config    *config.Config
	Generator gemini.Generator
	Run       *state.Run
	RunDir    string
	Timing    *state.Timing

	// AppDir is the application source tree being analyzed.
	AppDir string
	// OutputRoot is where the suite is materialized.
	OutputRoot string
	// UserContext carries user overrides into every prompt.
	UserContext string

	ClearOutput    bool
	SkipValidation bool

	// Products of earlier stages, filled as the run advances.
	planJSON string
	files    *fileset.Set
	written  int
}

type stage struct {
	name        string
	description string
	run         func(ctx context.Context) error
}

func (p *Pipeline) stages() []stage {
	return []stage{
		{state.StageAnalysis, "analyze the application and draft a test plan", p.analyze},
		{state.StageGeneration, "generate the Robot Framework suite", p.generate},
		{state.StageValidation, "review the suite against the plan", p.validate},
		{state.StageStore, "write the suite to the output directory", p.store},
	}
}

// fail records the terminal status, saves state (warning on error),
// flushes timing, prints a doctor hint for failures, and returns the
// given error.
func (p *Pipeline) fail(status string, err error) error {
	if status == state.StatusFailed {
		p.Run.Fail(err)
	} else {
		p.Run.Status = status
	}
	if saveErr := p.Run.Save(p.RunDir); saveErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save run state: %v\n", saveErr)
	}
	if p.Timing != nil {
		if flushErr := p.Timing.Flush(p.RunDir); flushErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to flush timing: %v\n", flushErr)
		}
	}
	if status == state.StatusFailed {
		ux.DoctorHint()
	}
	return err
}

// Execute runs every stage in order.
func (p *Pipeline) Execute(ctx context.Context) error {
	if err := state.EnsureRunDir(p.RunDir); err != nil {
		return err
	}
	if p.Timing == nil {
		p.Timing = &state.Timing{}
	}

	stages := p.stages()
	total := len(stages)

	for i, st := range stages {
		if ctx.Err() != nil {
			return p.fail(state.StatusInterrupted, ctx.Err())
		}

		if st.name == state.StageValidation && p.SkipValidation {
			ux.StageSkip(i, st.name, "--skip-validation")
			continue
		}

		ux.StageHeader(i, total, st.name, st.description)
		p.Timing.StageStart(st.name)
		p.Run.Stage = st.name
		if err := p.Run.Save(p.RunDir); err != nil {
			return fmt.Errorf("saving run state: %w", err)
		}

		start := time.Now()
		err := st.run(ctx)

		if ctx.Err() != nil {
			return p.fail(state.StatusInterrupted, ctx.Err())
		}
		if err != nil {
			ux.StageFail(i, st.name, err.Error())
			return p.fail(state.StatusFailed, fmt.Errorf("stage %s: %w", st.name, err))
		}

		p.Timing.StageEnd(st.name)
		if err := p.Timing.Flush(p.RunDir); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to flush timing: %v\n", err)
		}
		ux.StageComplete(i, time.Since(start))
	}

	p.Run.Status = state.StatusCompleted
	if err := p.Run.Save(p.RunDir); err != nil {
		return fmt.Errorf("saving final run state: %w", err)
	}
	if err := p.Timing.Flush(p.RunDir); err != nil {
		return fmt.Errorf("flushing timing: %w", err)
	}
	ux.Success(p.written, p.Run.OutputDir)
	return nil
}

// converse saves the prompt artifact, asks the generator, and saves the
// reply artifact. The prompt lands on disk before the request so a
// failed run still leaves it for diagnosis.
func (p *Pipeline) converse(ctx context.Context, stage, text string) (string, error) {
	if err := os.WriteFile(state.PromptPath(p.RunDir, stage), []byte(text), 0644); err != nil {
		return "", fmt.Errorf("saving prompt: %w", err)
	}
	reply, err := p.Generator.Generate(ctx, text)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(state.ReplyPath(p.RunDir, stage), []byte(reply), 0644); err != nil {
		return "", fmt.Errorf("saving reply: %w", err)
	}
	return reply, nil
}

// analyze gathers the application source, asks for a test plan, and
// keeps the plan JSON for the later prompts.
func (p *Pipeline) analyze(ctx context.Context) error {
	cb, err := codebase.Gather(p.AppDir, codebase.Options{
		Ignore:          p.Config.Ignore,
		OutputDir:       p.Config.OutputDir,
		MaxFileBytes:    p.Config.MaxFileBytes,
		MaxContextBytes: p.Config.MaxContextBytes,
	})
	if err != nil {
		return fmt.Errorf("reading application source: %w", err)
	}
	if cb.FileCount() == 0 {
		return fmt.Errorf("no readable source files under %s", p.AppDir)
	}
	appContext := cb.Render()
	ux.Detail("application context: %d files, %d bytes", cb.FileCount(), len(appContext))
	if cb.Truncated() {
		ux.Warn("application context hit the size limit; some files were omitted")
	}

	reply, err := p.converse(ctx, state.StageAnalysis, prompt.Analysis(appContext, p.UserContext))
	if err != nil {
		return err
	}

	raw, err := extract.JSON(reply)
	if err != nil {
		return fmt.Errorf("analysis reply: %w", err)
	}
	pl, err := plan.Decode(raw)
	if err != nil {
		return fmt.Errorf("analysis reply: %w", err)
	}

	// Indent the raw JSON rather than re-marshal the decoded plan, so
	// fields outside the known schema still reach the later prompts.
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(raw)
	}
	p.planJSON = pretty.String()
	if err := os.WriteFile(state.PlanPath(p.RunDir), pretty.Bytes(), 0644); err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}

	pages, keywords, scenarios := pl.Counts()
	ux.Detail("plan: %d pages, %d keyword groups, %d test scenarios", pages, keywords, scenarios)
	return nil
}

// generate asks for the full suite and parses the combined reply into
// per-file bodies.
func (p *Pipeline) generate(ctx context.Context) error {
	reply, err := p.converse(ctx, state.StageGeneration, prompt.Generation(p.planJSON, p.UserContext))
	if err != nil {
		return err
	}
	parser := fileset.Parser{ProseExts: p.Config.ProseExtensions}
	files := parser.Parse(reply)
	if files.Len() == 0 {
		return fmt.Errorf("reply contained no suite files; reply begins: %q", extract.Diagnostic(reply))
	}
	p.files = files
	ux.Detail("generated %d files", files.Len())
	return nil
}

// validate reviews the generated suite. Validation is advisory: a
// transport failure or an unusable reply demotes to a warning and the
// run proceeds with the unvalidated files. Corrected files are merged
// only when the report confirms issues were found.
func (p *Pipeline) validate(ctx context.Context) error {
	reply, err := p.converse(ctx, state.StageValidation, prompt.Validation(p.planJSON, p.files, p.UserContext))
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		ux.Warn("validation request failed: %v", err)
		ux.Warn("proceeding with unvalidated files")
		return nil
	}

	rep, rest, _ := report.Parse(reply)
	corrected := report.Files(rest, p.Config.ProseExtensions)

	if rep == nil {
		ux.Warn("no validation report in reply; proceeding with unvalidated files")
		return nil
	}
	if err := state.WriteJSON(state.ReportPath(p.RunDir), rep); err != nil {
		return fmt.Errorf("saving validation report: %w", err)
	}

	if !rep.IssuesFound {
		ux.Detail("no issues found")
		return nil
	}

	issues := rep.Issues()
	ux.Detail("validation found %d issues", len(issues))
	for _, is := range issues {
		ux.Issue(is)
	}

	if !report.ShouldMerge(rep, corrected) {
		ux.Warn("issues were found but no corrected files were returned; keeping the generated suite")
		return nil
	}

	ux.Detail("applying fixes to %d files", corrected.Len())
	for _, path := range corrected.Paths() {
		fixed, _ := corrected.Get(path)
		if old, ok := p.files.Get(path); ok {
			added, removed := report.DiffStat(old, fixed)
			ux.Merged(path, added, removed)
		} else {
			ux.Detail("new file from validation: %s", path)
		}
	}
	p.files = p.files.Merge(corrected)
	return nil
}

type storedSkip struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

type storeOutcome struct {
	OutputDir string       `json:"output_dir"`
	Written   []string     `json:"written"`
	Skipped   []storedSkip `json:"skipped,omitempty"`
}

// store materializes the final suite and records the outcome artifact.
func (p *Pipeline) store(ctx context.Context) error {
	out, err := materialize.Write(p.files, p.OutputRoot, p.ClearOutput)
	if err != nil {
		return err
	}
	for _, w := range out.Warnings {
		ux.Warn("%s", w)
	}
	for _, path := range out.Written {
		ux.FileWritten(path)
	}
	for _, sk := range out.Skipped {
		ux.FileSkipped(sk.Path, sk.Reason)
	}

	outcome := storeOutcome{OutputDir: p.OutputRoot, Written: out.Written}
	for _, sk := range out.Skipped {
		outcome.Skipped = append(outcome.Skipped, storedSkip{Path: sk.Path, Reason: sk.Reason})
	}
	if err := state.WriteJSON(state.OutcomePath(p.RunDir), outcome); err != nil {
		return fmt.Errorf("saving outcome: %w", err)
	}

	if len(out.Written) == 0 {
		return errors.New("no files were written")
	}
	p.written = len(out.Written)
	return nil
}

// DryRunPrint prints the stage plan without executing.
func (p *Pipeline) DryRunPrint() {
	stages := p.stages()
	fmt.Printf("\n%sDry run — %d stages:%s\n\n", ux.Bold, len(stages), ux.Reset)
	for i, st := range stages {
		note := ""
		if st.name == state.StageValidation && p.SkipValidation {
			note = fmt.Sprintf(" %s(skipped: --skip-validation)%s", ux.Dim, ux.Reset)
		}
		fmt.Printf("  %s%d.%s %s%s%s — %s%s\n",
			ux.Cyan, i+1, ux.Reset, ux.Bold, st.name, ux.Reset, st.description, note)
	}
	fmt.Printf("\n  app:    %s\n", p.AppDir)
	fmt.Printf("  output: %s\n", p.OutputRoot)
	fmt.Printf("  model:  %s\n", p.Config.Model)
	fmt.Println()
}
