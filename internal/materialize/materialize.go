// Package materialize writes a parsed file set beneath a sandbox root.
// No entry may escape the root; unsafe entries are skipped, never written.
package materialize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jorge-barreto/robogen/internal/fileset"
)

// Skip records one rejected entry and why it was rejected.
type Skip struct {
	Path   string
	Reason string
}

// Outcome reports what a single Write call did. It is a plain call
// result; nothing here is persisted by this package.
type Outcome struct {
	Written  []string
	Skipped  []Skip
	Warnings []string
}

// Write materializes files beneath root in the set's order. When clear is
// set the root is removed first; a removal failure is recorded as a
// warning and the batch proceeds. Failure to create the root itself is
// fatal for the whole batch. Every per-entry problem is a recorded skip
// and the batch continues. Writes overwrite and directory creation is
// idempotent, so re-running the same batch is safe.
func Write(files *fileset.Set, root string, clear bool) (*Outcome, error) {
	out := &Outcome{}

	if clear {
		if err := os.RemoveAll(root); err != nil {
			out.Warnings = append(out.Warnings, fmt.Sprintf("clearing %s: %v", root, err))
		}
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating output root %s: %w", root, err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving output root %s: %w", root, err)
	}
	// The root exists now; canonicalize it once so the sandbox check
	// below compares against a symlink-free base.
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}

	for _, p := range files.Paths() {
		body, _ := files.Get(p)

		rel, reason := sanitize(p)
		if reason != "" {
			out.Skipped = append(out.Skipped, Skip{Path: p, Reason: reason})
			continue
		}

		final, err := resolveExisting(filepath.Join(absRoot, rel))
		if err != nil {
			out.Skipped = append(out.Skipped, Skip{Path: p, Reason: fmt.Sprintf("resolving path: %v", err)})
			continue
		}
		if final != absRoot && !strings.HasPrefix(final, absRoot+string(filepath.Separator)) {
			out.Skipped = append(out.Skipped, Skip{Path: p, Reason: "resolves outside the output root"})
			continue
		}

		if err := os.MkdirAll(filepath.Dir(final), 0755); err != nil {
			out.Skipped = append(out.Skipped, Skip{Path: p, Reason: fmt.Sprintf("creating directory: %v", err)})
			continue
		}
		if err := os.WriteFile(final, []byte(body), 0644); err != nil {
			out.Skipped = append(out.Skipped, Skip{Path: p, Reason: fmt.Sprintf("writing file: %v", err)})
			continue
		}
		out.Written = append(out.Written, rel)
	}

	return out, nil
}

// sanitize normalizes an entry path and rejects the shapes that can
// never be safe: empty paths, parent references that survive
// normalization, and absolute paths that would ignore the root entirely.
func sanitize(p string) (rel, reason string) {
	if strings.TrimSpace(p) == "" {
		return "", "empty path"
	}
	rel = filepath.Clean(filepath.FromSlash(p))
	for _, seg := range strings.Split(rel, string(filepath.Separator)) {
		if seg == ".." {
			return "", "parent reference after normalization"
		}
	}
	if filepath.IsAbs(rel) {
		return "", "absolute path"
	}
	return rel, ""
}

// resolveExisting canonicalizes the deepest existing ancestor of p and
// rejoins the not-yet-created remainder. The sandbox check must run on a
// fully resolved path, and symlinks can only hide in path components that
// already exist.
func resolveExisting(p string) (string, error) {
	rest := ""
	dir := p
	for {
		resolved, err := filepath.EvalSymlinks(dir)
		if err == nil {
			return filepath.Join(resolved, rest), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		rest = filepath.Join(filepath.Base(dir), rest)
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", err
		}
		dir = parent
	}
}
