// Package cleanup removes template-only artifacts from a freshly cloned
// project.
//
// Artifacts are slash-separated doublestar patterns relative to the project
// root. A literal path matches itself when it exists, so the default table
// is plain paths; glob entries such as "**/.DS_Store" work the same way.
package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Artifact is one entry of the cleanup table.
type Artifact struct {
	Pattern string `json:"pattern"`
	Reason  string `json:"reason"`
}

// DefaultArtifacts lists what the template carries only for its own
// bootstrapping and maintenance.
var DefaultArtifacts = []Artifact{
	{Pattern: ".git", Reason: "template history"},
	{Pattern: "bootstrap.py", Reason: "bootstrap entry point"},
	{Pattern: "_uvx_install", Reason: "installer support"},
	{Pattern: "_install", Reason: "legacy installer support"},
	{Pattern: ".uvx-install", Reason: "legacy installer support"},
	{Pattern: "pyproject.toml", Reason: "installer packaging manifest"},
	{Pattern: ".mise.lock", Reason: "tool version lock file"},
	{Pattern: ".cwai", Reason: "assistant configuration"},
	{Pattern: ".github/prompts", Reason: "assistant prompts"},
}

// Patterns returns the patterns of artifacts in table order.
func Patterns(artifacts []Artifact) []string {
	patterns := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		patterns = append(patterns, a.Pattern)
	}
	return patterns
}

// Validate checks that every artifact pattern is well formed.
func Validate(artifacts []Artifact) error {
	for _, a := range artifacts {
		if a.Pattern == "" || !doublestar.ValidatePattern(a.Pattern) {
			return fmt.Errorf("invalid cleanup pattern %q", a.Pattern)
		}
	}
	return nil
}

// Remove deletes everything under root that matches artifacts, directories
// recursively, and returns the removed paths relative to root in slash form.
// Patterns that match nothing are skipped. Symlinks are removed, never
// followed: a match whose parent directory is reached through a symlink is
// left alone and passed to onSkipped. onRemoved, when non-nil, is called
// after each removal.
func Remove(root string, artifacts []Artifact, onRemoved, onSkipped func(rel string)) ([]string, error) {
	if err := Validate(artifacts); err != nil {
		return nil, err
	}

	fsys := os.DirFS(root)
	var removed []string

	for _, a := range artifacts {
		matches, err := doublestar.Glob(fsys, a.Pattern, doublestar.WithNoFollow())
		if err != nil {
			return removed, fmt.Errorf("matching %q: %w", a.Pattern, err)
		}

		for _, rel := range matches {
			linked, err := throughSymlink(root, rel)
			if err != nil {
				return removed, fmt.Errorf("checking %s: %w", rel, err)
			}
			if linked {
				if onSkipped != nil {
					onSkipped(rel)
				}
				continue
			}

			ok, err := removePath(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				return removed, fmt.Errorf("removing %s: %w", rel, err)
			}
			if !ok {
				continue
			}
			removed = append(removed, rel)
			if onRemoved != nil {
				onRemoved(rel)
			}
		}
	}

	return removed, nil
}

// throughSymlink reports whether any parent directory of rel under root is
// a symlink. A missing parent is not one.
func throughSymlink(root, rel string) (bool, error) {
	dir := root
	parts := strings.Split(rel, "/")
	for _, part := range parts[:len(parts)-1] {
		dir = filepath.Join(dir, part)
		info, err := os.Lstat(dir)
		if err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, err
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return true, nil
		}
	}
	return false, nil
}

// removePath deletes path and reports whether anything was there.
func removePath(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Already gone with an earlier match's parent directory.
			return false, nil
		}
		return false, err
	}

	if info.IsDir() {
		return true, os.RemoveAll(path)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return false, err
	}
	return true, nil
}
