// Package report parses the validation stage's reply: a fenced JSON
// findings report followed by the corrected files.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jorge-barreto/robogen/internal/extract"
	"github.com/jorge-barreto/robogen/internal/fileset"
)

// Report is the validation findings document. Category slices may be
// empty or absent; IssuesFound is the generator's own verdict and is
// what drives the merge decision, not the category contents.
type Report struct {
	IssuesFound               bool   `json:"issues_found"`
	CriticalPOMViolations     []Item `json:"critical_pom_violations"`
	MissingImplementations    []Item `json:"missing_implementations"`
	IncorrectFileOrganization []Item `json:"incorrect_file_organization"`
	SyntaxErrors              []Item `json:"syntax_errors"`
	ImportErrors              []Item `json:"import_errors"`
	RecommendedFixes          []Item `json:"recommended_fixes"`
}

// Item is a single finding. The generator emits findings both as bare
// strings and as objects, so Item accepts either shape.
type Item struct {
	File        string `json:"file"`
	IssueType   string `json:"issue_type"`
	Description string `json:"description"`
	Severity    string `json:"severity"`

	// text holds the finding when it arrived as a bare string.
	text string
}

func (it *Item) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*it = Item{text: s}
		return nil
	}
	type plain Item
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*it = Item(p)
	return nil
}

// String renders a finding for the run log.
func (it Item) String() string {
	if it.text != "" {
		return it.text
	}
	var b strings.Builder
	if it.File != "" {
		fmt.Fprintf(&b, "[%s] ", it.File)
	}
	switch {
	case it.IssueType != "" && it.Description != "":
		b.WriteString(it.IssueType)
		b.WriteString(": ")
		b.WriteString(it.Description)
	case it.IssueType != "":
		b.WriteString(it.IssueType)
	default:
		b.WriteString(it.Description)
	}
	if b.Len() == 0 {
		return "unspecified issue"
	}
	return strings.TrimSpace(b.String())
}

// Parse splits the validation reply into its report and the remainder
// holding the corrected files. The report is the first fenced JSON block;
// rest is everything after that block so a brace inside a corrected file
// cannot be mistaken for report JSON. When no report can be decoded, ok
// is false and rest still carries whatever file sections are present.
func Parse(text string) (rep *Report, rest string, ok bool) {
	raw, end, found := extract.FencedJSON(text)
	rest = text
	if found && end < len(text) {
		rest = text[end:]
	}
	if raw == nil {
		return nil, rest, false
	}
	var r Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, rest, false
	}
	return &r, rest, true
}

// Files parses the corrected file sections out of the post-report text.
func Files(rest string, proseExts []string) *fileset.Set {
	p := fileset.Parser{ProseExts: proseExts}
	return p.Parse(rest)
}

// Issues flattens every category, in schema order, for display.
func (r *Report) Issues() []string {
	var out []string
	for _, cat := range [][]Item{
		r.CriticalPOMViolations,
		r.MissingImplementations,
		r.IncorrectFileOrganization,
		r.SyntaxErrors,
		r.ImportErrors,
		r.RecommendedFixes,
	} {
		for _, it := range cat {
			out = append(out, it.String())
		}
	}
	return out
}

// IssueCount reports the total number of findings across categories.
func (r *Report) IssueCount() int {
	return len(r.CriticalPOMViolations) +
		len(r.MissingImplementations) +
		len(r.IncorrectFileOrganization) +
		len(r.SyntaxErrors) +
		len(r.ImportErrors) +
		len(r.RecommendedFixes)
}

// ShouldMerge reports whether corrected files replace their generated
// counterparts: only when the report itself flagged issues and the
// validator actually returned files. A report with issues but no files
// leaves the generated set untouched.
func ShouldMerge(rep *Report, corrected *fileset.Set) bool {
	return rep != nil && rep.IssuesFound && corrected != nil && corrected.Len() > 0
}

// DiffStat compares two file bodies line-wise and reports how many lines
// the new version adds and removes.
func DiffStat(old, new string) (added, removed int) {
	if old == new {
		return 0, 0
	}
	dmp := diffmatchpatch.New()
	c1, c2, lineArray := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffMain(c1, c2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			removed += countLines(d.Text)
		}
	}
	return added, removed
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
