package fileset

import (
	"path"
	"regexp"
	"strings"
)

// markerRe matches a file boundary line after trimming. The closing
// sentinel and the (NEW) annotation are both optional, in either order:
//
//	--- File: pages/LoginPage.robot ---
//	--- File: tests/LoginTests.robot
//	--- File: keywords/CartKeywords.robot (NEW) ---
//	--- File: resources/Common.robot --- (NEW)
var markerRe = regexp.MustCompile(`^--- File:\s*(.*?)\s*(?:\(NEW\))?\s*(?:---)?\s*(?:\(NEW\))?$`)

// fenceRe matches a line that is exactly a code fence marker after
// trimming: three backticks plus an optional language tag and nothing else.
var fenceRe = regexp.MustCompile("^```\\w*$")

// DefaultProseExts are the extensions whose bodies are kept verbatim.
var DefaultProseExts = []string{".md", ".markdown"}

// matchMarker reports whether line is a boundary marker and returns the
// path it announces. A marker with an empty path token is not a marker.
func matchMarker(line string) (string, bool) {
	m := markerRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// parseState is the scanner state: seeking a first marker, or accumulating
// body lines for the current path.
type parseState int

const (
	stateSeeking parseState = iota
	stateAccumulating
)

// record is a flushed file section: the announced path and its raw
// buffered lines, before any fence post-processing.
type record struct {
	path  string
	lines []string
}

// machine is the two-state line scanner. Boundary markers are the only
// transition trigger: a marker flushes the current buffer (if any) and
// restarts accumulation under the new path. Non-marker lines accumulate
// while a path is current and are discarded while seeking.
type machine struct {
	state parseState
	path  string
	buf   []string
}

// feed advances the machine by one line and returns the record flushed by
// a boundary transition, or nil.
func (m *machine) feed(line string) *record {
	if p, ok := matchMarker(line); ok {
		var flushed *record
		if m.state == stateAccumulating {
			flushed = &record{path: m.path, lines: m.buf}
		}
		m.state = stateAccumulating
		m.path = p
		m.buf = nil
		return flushed
	}
	if m.state == stateAccumulating {
		m.buf = append(m.buf, line)
	}
	return nil
}

// finish flushes the record pending at end of input, if any. The final
// file must not be lost when the reply ends without a trailing marker.
func (m *machine) finish() *record {
	if m.state != stateAccumulating {
		return nil
	}
	rec := &record{path: m.path, lines: m.buf}
	m.state = stateSeeking
	m.path = ""
	m.buf = nil
	return rec
}

// Parser splits combined replies into per-file bodies. The zero value is
// ready to use with the default prose extensions.
type Parser struct {
	// ProseExts lists lowercase extensions whose bodies are preserved
	// verbatim, embedded fences included. Nil means DefaultProseExts.
	ProseExts []string
}

// Parse scans text for boundary markers and returns the resulting Set.
// It never fails: text without any marker yields an empty Set, and a later
// marker for an already-seen path replaces the earlier body (a correction
// within the same reply supersedes the draft). Text before the first
// marker is discarded.
func (p *Parser) Parse(text string) *Set {
	set := NewSet()
	var m machine
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if rec := m.feed(line); rec != nil {
			set.Add(rec.path, p.body(rec))
		}
	}
	if rec := m.finish(); rec != nil {
		set.Add(rec.path, p.body(rec))
	}
	return set
}

// Parse is a convenience for a Parser with default prose extensions.
func Parse(text string) *Set {
	var p Parser
	return p.Parse(text)
}

func (p *Parser) body(rec *record) string {
	if p.isProse(rec.path) {
		return strings.Join(rec.lines, "\n")
	}
	return stripFenceLines(rec.lines)
}

func (p *Parser) isProse(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	exts := p.ProseExts
	if exts == nil {
		exts = DefaultProseExts
	}
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// stripFenceLines drops every line that is exactly a fence marker and
// joins the rest. Lines that merely contain backticks alongside other
// text are body content and stay.
func stripFenceLines(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if fenceRe.MatchString(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
