package extract

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestJSON_Direct(t *testing.T) {
	raw, err := JSON(`  {"a": 1, "b": [1, 2]}  `)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"a": 1, "b": [1, 2]}` {
		t.Fatalf("unexpected raw: %s", raw)
	}
}

func TestJSON_TaggedFenceWithSurroundingText(t *testing.T) {
	raw, err := JSON("Here is the plan:\n```json\n{\"a\":1}\n```\nThanks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var v map[string]int
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("result not unmarshalable: %v", err)
	}
	if v["a"] != 1 {
		t.Fatalf("expected a=1, got %v", v)
	}
}

func TestJSON_EquivalentAcrossWrappings(t *testing.T) {
	const doc = `{"summary":"s","pages":[{"name":"Login"}]}`
	inputs := []string{
		doc,
		"```json\n" + doc + "\n```",
		"```\n" + doc + "\n```",
	}
	var results []string
	for _, in := range inputs {
		raw, err := JSON(in)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", in, err)
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			t.Fatalf("input %q: invalid result: %v", in, err)
		}
		norm, _ := json.Marshal(v)
		results = append(results, string(norm))
	}
	if results[0] != results[1] || results[1] != results[2] {
		t.Fatalf("wrapping changed the parsed result: %v", results)
	}
}

func TestJSON_GreedyBraces(t *testing.T) {
	raw, err := JSON("The plan is as follows {\"a\": {\"b\": 2}} hope that helps")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"a": {"b": 2}}` {
		t.Fatalf("unexpected raw: %s", raw)
	}
}

func TestJSON_TaggedFenceWinsOverBraceInPreface(t *testing.T) {
	raw, err := JSON("Note the {braces} here are prose.\n```json\n{\"a\":1}\n```\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"a":1}` {
		t.Fatalf("expected the fenced block, got %s", raw)
	}
}

func TestJSON_OuterFenceUntaggedArray(t *testing.T) {
	raw, err := JSON("```\n[1, 2, 3]\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != "[1, 2, 3]" {
		t.Fatalf("unexpected raw: %s", raw)
	}
}

func TestJSON_ScalarIsValid(t *testing.T) {
	raw, err := JSON("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != "42" {
		t.Fatalf("unexpected raw: %s", raw)
	}
}

func TestJSON_AllStrategiesFail(t *testing.T) {
	_, err := JSON("I am sorry, I cannot produce a plan for this input.")
	if err == nil {
		t.Fatal("expected an error for unparseable reply")
	}
	if !strings.Contains(err.Error(), "cannot produce a plan") {
		t.Fatalf("error should carry a reply prefix, got: %v", err)
	}
}

func TestJSON_DiagnosticIsBounded(t *testing.T) {
	_, err := JSON("garbage " + strings.Repeat("x", 5000))
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(err.Error()) > 700 {
		t.Fatalf("diagnostic not bounded: %d bytes", len(err.Error()))
	}
}

func TestFencedJSON_ReportThenFiles(t *testing.T) {
	text := "Report first:\n```json\n{\"issues_found\": true}\n```\n--- File: a.robot ---\nbody\n"
	raw, end, found := FencedJSON(text)
	if !found {
		t.Fatal("expected a fence to be found")
	}
	if string(raw) != `{"issues_found": true}` {
		t.Fatalf("unexpected raw: %s", raw)
	}
	if !strings.Contains(text[end:], "--- File: a.robot ---") {
		t.Fatalf("end offset should leave the file section, got rest %q", text[end:])
	}
	if strings.Contains(text[:end], "--- File:") {
		t.Fatalf("end offset overshot into the file section")
	}
}

func TestFencedJSON_NoFence(t *testing.T) {
	_, _, found := FencedJSON("no fences anywhere")
	if found {
		t.Fatal("expected found=false without a fence")
	}
}

func TestFencedJSON_InvalidInteriorFallsBackToBraces(t *testing.T) {
	raw, _, found := FencedJSON("```\nstatus line then {\"a\":1}\n```")
	if !found {
		t.Fatal("expected fence to be found")
	}
	if string(raw) != `{"a":1}` {
		t.Fatalf("expected greedy-brace fallback, got %s", raw)
	}
}

func TestFencedJSON_FoundButNoJSON(t *testing.T) {
	raw, end, found := FencedJSON("```\nplain text\n```\ntrailing")
	if !found {
		t.Fatal("expected found=true")
	}
	if raw != nil {
		t.Fatalf("expected nil raw, got %s", raw)
	}
	if end == 0 {
		t.Fatal("expected a non-zero end offset for the fence")
	}
}

func TestDiagnostic(t *testing.T) {
	if got := Diagnostic("  short  "); got != "short" {
		t.Fatalf("expected trimmed text, got %q", got)
	}
	long := strings.Repeat("a", 600)
	got := Diagnostic(long)
	if len(got) != diagnosticLimit+3 {
		t.Fatalf("expected bounded diagnostic, got %d bytes", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-10:])
	}
}
