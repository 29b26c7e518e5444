// Package codebase walks an application tree and renders its readable
// source files into the boundary-marker format the prompts use. Ignore
// rules always arrive through Options; this package keeps no built-in
// pattern list.
package codebase

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// binaryProbeLen bounds how much of a file is scanned for NUL bytes.
const binaryProbeLen = 8000

// Options controls the walk. Zero caps mean unlimited.
type Options struct {
	// Ignore holds gitignore-syntax patterns from configuration.
	Ignore []string
	// OutputDir is the generation target; its basename is always
	// ignored so a prior run's output never feeds the next prompt.
	OutputDir string
	// MaxFileBytes caps each file body; larger files are cut and
	// marked truncated.
	MaxFileBytes int64
	// MaxContextBytes caps the sum of gathered bodies; the walk stops
	// once the next file would exceed it.
	MaxContextBytes int64
}

// Context is the gathered application source.
type Context struct {
	sections  []section
	truncated bool
}

type section struct {
	path string
	body string
}

// Gather collects files under root, honoring the configured ignore
// patterns plus the application's own .gitignore.
func Gather(root string, opts Options) (*Context, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving application path: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("reading application path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("application path %s is not a directory", root)
	}

	matcher := compileMatcher(absRoot, opts)
	fileCap := opts.MaxFileBytes
	if fileCap <= 0 {
		fileCap = math.MaxInt64
	}
	contextCap := opts.MaxContextBytes
	if contextCap <= 0 {
		contextCap = math.MaxInt64
	}

	ctx := &Context{}
	var total int64
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == absRoot {
				return walkErr
			}
			if d != nil && d.IsDir() {
				return nil
			}
			rel := relSlash(absRoot, path)
			ctx.sections = append(ctx.sections, section{path: rel, body: readError(rel, walkErr)})
			return nil
		}
		if path == absRoot {
			return nil
		}
		rel := relSlash(absRoot, path)
		if d.IsDir() {
			if matcher.MatchesPath(rel + "/") {
				return filepath.SkipDir
			}
			return nil
		}
		if matcher.MatchesPath(rel) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			st, err := os.Stat(path)
			if err != nil || st.IsDir() {
				return nil
			}
		}

		body, fileTruncated, err := readCapped(path, fileCap)
		if err != nil {
			ctx.sections = append(ctx.sections, section{path: rel, body: readError(rel, err)})
			return nil
		}
		if looksBinary(body) {
			return nil
		}
		if total+int64(len(body)) > contextCap {
			ctx.truncated = true
			return fs.SkipAll
		}
		total += int64(len(body))

		text := string(body)
		if fileTruncated {
			text += "\n... (truncated)"
		}
		ctx.sections = append(ctx.sections, section{path: rel, body: text})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking application path: %w", err)
	}
	return ctx, nil
}

// Render formats the gathered files as prompt sections.
func (c *Context) Render() string {
	var buf strings.Builder
	for _, s := range c.sections {
		fmt.Fprintf(&buf, "--- File: %s ---\n%s\n\n", s.path, s.body)
	}
	if c.truncated {
		buf.WriteString("... (remaining files omitted: context size limit reached)\n\n")
	}
	return buf.String()
}

// FileCount reports how many files were gathered.
func (c *Context) FileCount() int {
	return len(c.sections)
}

// Paths lists the gathered files in walk order.
func (c *Context) Paths() []string {
	out := make([]string, len(c.sections))
	for i, s := range c.sections {
		out[i] = s.path
	}
	return out
}

// Truncated reports whether the walk stopped at the context cap.
func (c *Context) Truncated() bool {
	return c.truncated
}

// compileMatcher merges the configured patterns, the application's own
// .gitignore, and the output directory basename into one matcher.
func compileMatcher(root string, opts Options) *ignore.GitIgnore {
	patterns := append([]string{}, opts.Ignore...)
	patterns = append(patterns, readIgnoreFile(filepath.Join(root, ".gitignore"))...)
	if opts.OutputDir != "" {
		patterns = append(patterns, filepath.Base(opts.OutputDir))
	}
	return ignore.CompileIgnoreLines(patterns...)
}

func readIgnoreFile(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

func readCapped(path string, limit int64) (data []byte, truncated bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	// Read one byte past the limit so truncation is detectable without
	// overflowing when the limit is unbounded.
	probe := limit
	if probe < math.MaxInt64 {
		probe++
	}
	data, err = io.ReadAll(io.LimitReader(f, probe))
	if err != nil {
		return nil, false, err
	}
	if int64(len(data)) > limit {
		return data[:limit], true, nil
	}
	return data, false, nil
}

func looksBinary(data []byte) bool {
	probe := data
	if len(probe) > binaryProbeLen {
		probe = probe[:binaryProbeLen]
	}
	return bytes.IndexByte(probe, 0) >= 0
}

func readError(rel string, err error) string {
	return fmt.Sprintf("[Error reading file %s: %v]", rel, err)
}

func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
