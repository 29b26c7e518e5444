package report

import (
	"strings"
	"testing"

	"github.com/jorge-barreto/robogen/internal/fileset"
)

const validationReply = "Validation complete. Report follows.\n" +
	"```json\n" +
	"{\n" +
	"  \"issues_found\": true,\n" +
	"  \"critical_pom_violations\": [\n" +
	"    {\"file\": \"pages/LoginPage.robot\", \"issue_type\": \"Keyword in page file\", \"description\": \"Login keyword implemented in page object\", \"severity\": \"critical\"}\n" +
	"  ],\n" +
	"  \"missing_implementations\": [\"Click Login Button is never implemented\"],\n" +
	"  \"recommended_fixes\": [\n" +
	"    {\"description\": \"Move keyword to keywords/LoginKeywords.robot\"}\n" +
	"  ]\n" +
	"}\n" +
	"```\n" +
	"\n" +
	"--- File: pages/LoginPage.robot ---\n" +
	"```robotframework\n" +
	"*** Variables ***\n" +
	"${USERNAME_FIELD}    id=username\n" +
	"```\n" +
	"--- File: keywords/LoginKeywords.robot (NEW) ---\n" +
	"*** Keywords ***\n" +
	"Click Login Button\n" +
	"    Click Element    id=login\n"

func TestParse_ReportAndCorrectedFiles(t *testing.T) {
	rep, rest, ok := Parse(validationReply)
	if !ok {
		t.Fatal("expected a parsed report")
	}
	if !rep.IssuesFound {
		t.Fatal("issues_found lost")
	}
	if strings.Contains(rest, "issues_found") {
		t.Fatal("rest should start after the report block")
	}

	files := Files(rest, nil)
	if files.Len() != 2 {
		t.Fatalf("expected 2 corrected files, got %d (%v)", files.Len(), files.Paths())
	}
	body, _ := files.Get("pages/LoginPage.robot")
	if strings.Contains(body, "```") {
		t.Fatalf("fence lines not stripped: %q", body)
	}
	if !strings.Contains(body, "${USERNAME_FIELD}") {
		t.Fatalf("corrected content lost: %q", body)
	}
	if _, found := files.Get("keywords/LoginKeywords.robot"); !found {
		t.Fatal("NEW-marked file missing")
	}
}

func TestParse_NoReportStillYieldsFiles(t *testing.T) {
	reply := "--- File: tests/Smoke.robot ---\n*** Test Cases ***\nOpen Home\n    Log    ok\n"
	rep, rest, ok := Parse(reply)
	if ok || rep != nil {
		t.Fatal("expected no report")
	}
	if rest != reply {
		t.Fatal("rest should be the whole reply when no fence exists")
	}
	files := Files(rest, nil)
	if files.Len() != 1 {
		t.Fatalf("expected the file section to survive, got %v", files.Paths())
	}
}

func TestParse_BrokenFenceRecoveredByBraces(t *testing.T) {
	reply := "```json\nnot json at all\n```\nBut the object is here: {\"issues_found\": false}"
	rep, _, ok := Parse(reply)
	if !ok {
		t.Fatal("expected the brace fallback to recover the report")
	}
	if rep.IssuesFound {
		t.Fatal("unexpected issues_found")
	}
}

func TestParse_NonObjectReportRejected(t *testing.T) {
	reply := "```json\n[1, 2, 3]\n```\n--- File: a.robot ---\nbody\n"
	rep, rest, ok := Parse(reply)
	if ok || rep != nil {
		t.Fatal("array reports are not reports")
	}
	if Files(rest, nil).Len() != 1 {
		t.Fatal("file sections after a bad report must still parse")
	}
}

func TestItem_BothShapes(t *testing.T) {
	rep, _, ok := Parse(validationReply)
	if !ok {
		t.Fatal("expected a parsed report")
	}
	obj := rep.CriticalPOMViolations[0]
	if obj.File != "pages/LoginPage.robot" || obj.Severity != "critical" {
		t.Fatalf("object item fields lost: %+v", obj)
	}
	if got := obj.String(); got != "[pages/LoginPage.robot] Keyword in page file: Login keyword implemented in page object" {
		t.Fatalf("unexpected object rendering: %q", got)
	}
	str := rep.MissingImplementations[0]
	if got := str.String(); got != "Click Login Button is never implemented" {
		t.Fatalf("unexpected string rendering: %q", got)
	}
	fix := rep.RecommendedFixes[0]
	if got := fix.String(); got != "Move keyword to keywords/LoginKeywords.robot" {
		t.Fatalf("description-only item should render bare: %q", got)
	}
}

func TestIssues_FlattensInSchemaOrder(t *testing.T) {
	rep, _, ok := Parse(validationReply)
	if !ok {
		t.Fatal("expected a parsed report")
	}
	issues := rep.Issues()
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %v", issues)
	}
	if rep.IssueCount() != 3 {
		t.Fatalf("IssueCount disagrees with Issues: %d", rep.IssueCount())
	}
	if !strings.HasPrefix(issues[0], "[pages/LoginPage.robot]") {
		t.Fatalf("POM violations should come first, got %q", issues[0])
	}
	if issues[2] != "Move keyword to keywords/LoginKeywords.robot" {
		t.Fatalf("recommended fixes should come last, got %q", issues[2])
	}
}

func TestShouldMerge(t *testing.T) {
	corrected := fileset.NewSet()
	corrected.Add("a.robot", "x")
	empty := fileset.NewSet()

	cases := []struct {
		name      string
		rep       *Report
		corrected *fileset.Set
		want      bool
	}{
		{"no report", nil, corrected, false},
		{"no issues", &Report{IssuesFound: false}, corrected, false},
		{"issues but no files", &Report{IssuesFound: true}, empty, false},
		{"issues but nil set", &Report{IssuesFound: true}, nil, false},
		{"issues and files", &Report{IssuesFound: true}, corrected, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShouldMerge(tc.rep, tc.corrected); got != tc.want {
				t.Fatalf("ShouldMerge = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDiffStat(t *testing.T) {
	old := "*** Settings ***\nLibrary    SeleniumLibrary\n"
	same := old
	if a, r := DiffStat(old, same); a != 0 || r != 0 {
		t.Fatalf("identical bodies should diff clean, got +%d -%d", a, r)
	}

	appended := old + "Resource    ../resources/Common.robot\n"
	if a, r := DiffStat(old, appended); a != 1 || r != 0 {
		t.Fatalf("pure append should be +1 -0, got +%d -%d", a, r)
	}

	replaced := "*** Settings ***\nLibrary    Browser\nResource    ../resources/Common.robot\n"
	a, r := DiffStat(old, replaced)
	if a != 2 || r != 1 {
		t.Fatalf("replacement should be +2 -1, got +%d -%d", a, r)
	}
}
