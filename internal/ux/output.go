package ux

import (
	"fmt"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// StageHeader prints a timestamped stage header.
func StageHeader(index, total int, name, description string) {
	fmt.Printf("\n%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
	desc := ""
	if description != "" {
		desc = fmt.Sprintf(" — %s", description)
	}
	fmt.Printf("%s[%s]%s  %sStage %d/%d: %s%s%s\n",
		Dim, timestamp(), Reset, Bold, index+1, total, name, desc, Reset)
	fmt.Printf("%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
}

// StageComplete prints a stage completion message.
func StageComplete(index int, duration time.Duration) {
	m := int(duration.Minutes())
	s := int(duration.Seconds()) % 60
	fmt.Printf("%s[%s]%s  %s✓ Stage %d complete (%dm %02ds)%s\n",
		Dim, timestamp(), Reset, Green, index+1, m, s, Reset)
}

// StageFail prints a stage failure message.
func StageFail(index int, name, errMsg string) {
	fmt.Printf("%s[%s]%s  %s✗ Stage %d (%s) failed: %s%s\n",
		Dim, timestamp(), Reset, Red, index+1, name, errMsg, Reset)
}

// StageSkip prints a stage skip message.
func StageSkip(index int, name, reason string) {
	fmt.Printf("%s[%s]%s  %s– Stage %d (%s) skipped (%s)%s\n",
		Dim, timestamp(), Reset, Dim, index+1, name, reason, Reset)
}

// Warn prints a non-fatal warning.
func Warn(format string, args ...any) {
	fmt.Printf("  %s⚠ %s%s\n", Yellow, fmt.Sprintf(format, args...), Reset)
}

// Detail prints an indented progress line.
func Detail(format string, args ...any) {
	fmt.Printf("  %s%s%s\n", Dim, fmt.Sprintf(format, args...), Reset)
}

// FileWritten prints one stored suite file.
func FileWritten(path string) {
	fmt.Printf("  %s✓%s %s\n", Green, Reset, path)
}

// FileSkipped prints one rejected suite file with the reason.
func FileSkipped(path, reason string) {
	fmt.Printf("  %s– %s (%s)%s\n", Dim, path, reason, Reset)
}

// Issue prints one validation finding.
func Issue(text string) {
	summary := text
	if len(summary) > 120 {
		summary = summary[:117] + "..."
	}
	fmt.Printf("  %s• %s%s\n", Yellow, summary, Reset)
}

// Merged prints one file overwritten by a validation fix.
func Merged(path string, added, removed int) {
	fmt.Printf("  %s~ %s%s %s(+%d/-%d)%s\n", Cyan, path, Reset, Dim, added, removed, Reset)
}

// DoctorHint prints a diagnosis command hint.
func DoctorHint() {
	fmt.Printf("\n%sDiagnose:%s robogen doctor\n", Yellow, Reset)
}

// Success prints a final success message.
func Success(written int, outputDir string) {
	fmt.Printf("\n%s[%s]%s  %s%s══ Suite complete: %d files in %s ══%s\n\n",
		Dim, timestamp(), Reset, Bold, Green, written, outputDir, Reset)
}
