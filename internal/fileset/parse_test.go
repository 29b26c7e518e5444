package fileset

import (
	"strings"
	"testing"
)

func TestParse_TwoFilesWithFences(t *testing.T) {
	input := "--- File: pages/LoginPage.robot ---\n```\nLOGIN = id=login\n```\n--- File: tests/LoginTests.robot ---\nSuite Setup  Open Browser\n"
	set := Parse(input)
	if set.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", set.Len())
	}
	if body, _ := set.Get("pages/LoginPage.robot"); body != "LOGIN = id=login" {
		t.Fatalf("unexpected body for pages/LoginPage.robot: %q", body)
	}
	if body, _ := set.Get("tests/LoginTests.robot"); body != "Suite Setup  Open Browser" {
		t.Fatalf("unexpected body for tests/LoginTests.robot: %q", body)
	}
}

func TestParse_MarkerVariants(t *testing.T) {
	tests := []struct {
		name   string
		marker string
	}{
		{"closing sentinel", "--- File: a/b.robot ---"},
		{"no closing sentinel", "--- File: a/b.robot"},
		{"new annotation", "--- File: a/b.robot (NEW) ---"},
		{"new after sentinel", "--- File: a/b.robot --- (NEW)"},
		{"new without sentinel", "--- File: a/b.robot (NEW)"},
		{"leading whitespace", "  --- File: a/b.robot ---"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Parse(tt.marker + "\ncontent\n")
			if set.Len() != 1 {
				t.Fatalf("expected 1 entry, got %d", set.Len())
			}
			if body, ok := set.Get("a/b.robot"); !ok || body != "content" {
				t.Fatalf("expected a/b.robot -> content, got %q (ok=%v)", body, ok)
			}
		})
	}
}

func TestParse_DuplicatePathLastWins(t *testing.T) {
	input := "--- File: p.robot ---\ndraft\n--- File: q.robot ---\nother\n--- File: p.robot ---\nfinal\n"
	set := Parse(input)
	if set.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", set.Len())
	}
	if body, _ := set.Get("p.robot"); body != "final" {
		t.Fatalf("expected last body to win, got %q", body)
	}
	paths := set.Paths()
	if paths[0] != "p.robot" || paths[1] != "q.robot" {
		t.Fatalf("expected first-seen order preserved, got %v", paths)
	}
}

func TestParse_PreambleDiscarded(t *testing.T) {
	input := "Sure! Here are the files you asked for.\n\n--- File: t.robot ---\nbody\n"
	set := Parse(input)
	if set.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", set.Len())
	}
	if body, _ := set.Get("t.robot"); body != "body" {
		t.Fatalf("preamble leaked into body: %q", body)
	}
}

func TestParse_NoMarkers_EmptySet(t *testing.T) {
	set := Parse("I could not generate any files, sorry.")
	if set.Len() != 0 {
		t.Fatalf("expected empty set, got %d entries", set.Len())
	}
}

func TestParse_FinalFileFlushedAtEOF(t *testing.T) {
	input := "--- File: one.robot ---\nfirst\n--- File: two.robot\nsecond line one\nsecond line two"
	set := Parse(input)
	if set.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", set.Len())
	}
	if body, _ := set.Get("two.robot"); body != "second line one\nsecond line two" {
		t.Fatalf("final file lost or mangled: %q", body)
	}
}

func TestParse_FenceStripping_ExactLinesOnly(t *testing.T) {
	input := "--- File: k.robot ---\n```robotframework\nLog  use ``` to fence code\n\nClick Button  id=ok\n```\n"
	set := Parse(input)
	body, _ := set.Get("k.robot")
	want := "Log  use ``` to fence code\n\nClick Button  id=ok"
	if body != want {
		t.Fatalf("expected %q, got %q", want, body)
	}
}

func TestParse_IndentedFenceStripped(t *testing.T) {
	input := "--- File: k.robot ---\n  ```\nbody\n  ```\n"
	set := Parse(input)
	if body, _ := set.Get("k.robot"); body != "body" {
		t.Fatalf("expected indented fence lines dropped, got %q", body)
	}
}

func TestParse_MarkdownVerbatim(t *testing.T) {
	input := "--- File: README.md ---\n# Setup\n\n```bash\npip install robotframework\n```\n"
	set := Parse(input)
	body, _ := set.Get("README.md")
	want := "# Setup\n\n```bash\npip install robotframework\n```"
	if body != want {
		t.Fatalf("markdown body not preserved verbatim: %q", body)
	}
}

func TestParse_MarkdownExtensionCaseInsensitive(t *testing.T) {
	input := "--- File: NOTES.MD ---\n```\nkept\n```\n"
	set := Parse(input)
	if body, _ := set.Get("NOTES.MD"); body != "```\nkept\n```" {
		t.Fatalf("uppercase .MD should be prose, got %q", body)
	}
}

func TestParse_EmptyPathMarkerIsNotAMarker(t *testing.T) {
	input := "--- File: real.robot ---\nline one\n--- File: ---\nline two\n"
	set := Parse(input)
	if set.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", set.Len())
	}
	body, _ := set.Get("real.robot")
	if !strings.Contains(body, "line one") || !strings.Contains(body, "line two") {
		t.Fatalf("pathless marker should be treated as body text, got %q", body)
	}
}

func TestParse_OrderIsFirstSeen(t *testing.T) {
	input := "--- File: c.robot ---\n1\n--- File: a.robot ---\n2\n--- File: b.robot ---\n3\n"
	set := Parse(input)
	paths := set.Paths()
	want := []string{"c.robot", "a.robot", "b.robot"}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, paths)
		}
	}
}

func TestParse_CustomProseExts(t *testing.T) {
	p := Parser{ProseExts: []string{".txt"}}
	set := p.Parse("--- File: note.txt ---\n```\nkept\n```\n--- File: doc.md ---\n```\ndropped\n```\n")
	if body, _ := set.Get("note.txt"); body != "```\nkept\n```" {
		t.Fatalf(".txt should be prose under custom exts, got %q", body)
	}
	if body, _ := set.Get("doc.md"); body != "dropped" {
		t.Fatalf(".md should not be prose under custom exts, got %q", body)
	}
}

func TestMachine_SeekingDiscardsUntilMarker(t *testing.T) {
	var m machine
	if rec := m.feed("stray text"); rec != nil {
		t.Fatalf("seeking state should not flush, got %+v", rec)
	}
	if rec := m.feed("--- File: x.robot ---"); rec != nil {
		t.Fatalf("first marker should not flush, got %+v", rec)
	}
	if m.state != stateAccumulating || m.path != "x.robot" {
		t.Fatalf("expected accumulating x.robot, got state=%d path=%q", m.state, m.path)
	}
}

func TestMachine_MarkerFlushesAndRestarts(t *testing.T) {
	var m machine
	m.feed("--- File: x.robot ---")
	m.feed("one")
	m.feed("two")
	rec := m.feed("--- File: y.robot ---")
	if rec == nil || rec.path != "x.robot" {
		t.Fatalf("expected flush of x.robot, got %+v", rec)
	}
	if len(rec.lines) != 2 || rec.lines[0] != "one" || rec.lines[1] != "two" {
		t.Fatalf("unexpected buffered lines: %v", rec.lines)
	}
	if m.path != "y.robot" || len(m.buf) != 0 {
		t.Fatalf("machine did not restart for new path: path=%q buf=%v", m.path, m.buf)
	}
}

func TestMachine_FinishFlushesPending(t *testing.T) {
	var m machine
	if rec := m.finish(); rec != nil {
		t.Fatalf("finish with nothing pending should be nil, got %+v", rec)
	}
	m.feed("--- File: x.robot ---")
	m.feed("last")
	rec := m.finish()
	if rec == nil || rec.path != "x.robot" || len(rec.lines) != 1 {
		t.Fatalf("expected pending record at EOF, got %+v", rec)
	}
}
