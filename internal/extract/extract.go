// Package extract pulls structured JSON out of free-form generator
// replies, which may arrive bare, fenced, or buried in explanation text.
package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// diagnosticLimit bounds how much raw reply text an extraction error
// carries. Replies can be arbitrarily large; diagnostics must not be.
const diagnosticLimit = 500

var (
	taggedFenceRe = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")
	anyFenceRe    = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")
	outerFenceRe  = regexp.MustCompile("^```(?:json)?\\s*([\\s\\S]*)\\s*```$")
)

// A strategy attempts to locate one JSON candidate in text. Returning
// ok=false means the strategy does not apply or its candidate failed to
// parse; the cascade moves on either way.
type strategy func(text string) (json.RawMessage, bool)

// strategies are ordered from cheapest to most permissive: a direct parse
// rewards clean replies with zero overhead, the tagged fence is the most
// common real-world shape, and the greedy brace scan runs after it so an
// explanatory preface containing a brace cannot shadow a well-formed
// fenced block. The outer-fence strip is the last resort for minimal
// untagged wrapping.
var strategies = []strategy{direct, taggedFence, greedyBraces, outerFence}

// JSON runs the strategy cascade over text and returns the first valid
// candidate. Individual strategy failures are never surfaced; only total
// failure returns an error, carrying a bounded prefix of the reply.
func JSON(text string) (json.RawMessage, error) {
	for _, s := range strategies {
		if raw, ok := s(text); ok {
			return raw, nil
		}
	}
	return nil, fmt.Errorf("no parseable JSON in reply; reply begins: %q", Diagnostic(text))
}

// FencedJSON locates the first fenced block in text (```json or bare
// ```) and returns its interior as JSON plus the offset just past the
// closing fence, so callers can keep scanning the remainder of the
// reply. found reports whether a fence was present at all; raw is nil
// when a fence was found but neither its interior nor the greedy brace
// fallback yielded valid JSON.
func FencedJSON(text string) (raw json.RawMessage, end int, found bool) {
	loc := anyFenceRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, 0, false
	}
	end = loc[1]
	if r, ok := valid(text[loc[2]:loc[3]]); ok {
		return r, end, true
	}
	if r, ok := greedyBraces(text); ok {
		return r, end, true
	}
	return nil, end, true
}

// Diagnostic returns a bounded prefix of text for error messages and
// warnings.
func Diagnostic(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= diagnosticLimit {
		return text
	}
	return text[:diagnosticLimit] + "..."
}

// valid trims a candidate and accepts it if it is syntactically valid
// JSON of any kind. Schema conformance is the consumer's concern.
func valid(candidate string) (json.RawMessage, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || !json.Valid([]byte(candidate)) {
		return nil, false
	}
	return json.RawMessage(candidate), true
}

func direct(text string) (json.RawMessage, bool) {
	return valid(text)
}

func taggedFence(text string) (json.RawMessage, bool) {
	m := taggedFenceRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return valid(m[1])
}

// greedyBraces takes the substring from the first opening brace to the
// last closing brace anywhere in the text.
func greedyBraces(text string) (json.RawMessage, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, false
	}
	return valid(text[start : end+1])
}

// outerFence strips exactly one outermost fence pair when the trimmed
// text both opens and closes with one. Only an optional json tag is
// recognized on the opening line.
func outerFence(text string) (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") {
		return nil, false
	}
	m := outerFenceRe.FindStringSubmatch(trimmed)
	if m == nil {
		return nil, false
	}
	return valid(m[1])
}
