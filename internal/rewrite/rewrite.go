// Package rewrite substitutes the template's identity strings in project
// metadata files.
//
// Rules are plain tables (see DefaultRules): each file gets an ordered list
// of regular expressions and the replacement built from the new project's
// Identity. Files are treated as text; nothing is parsed, and a pattern that
// does not match changes nothing.
package rewrite

import (
	"fmt"
	"os"
	"path/filepath"
)

// ApplyFile applies rule to its file under root and reports whether the file
// existed. A missing file is not an error. The file is rewritten in place,
// keeping its permissions, even when no pattern matched.
func ApplyFile(root string, rule FileRule, id Identity) (bool, error) {
	path := filepath.Join(root, filepath.FromSlash(rule.Path))

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s: %w", rule.Path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", rule.Path, err)
	}

	content := Content(string(data), rule.Substitutions, id)

	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing %s: %w", rule.Path, err)
	}
	return true, nil
}

// Apply runs every rule against root and returns the paths that were
// rewritten, in rule order. onUpdated, when non-nil, is called after each
// rewritten file.
func Apply(root string, rules []FileRule, id Identity, onUpdated func(rel string)) ([]string, error) {
	var updated []string
	for _, rule := range rules {
		ok, err := ApplyFile(root, rule, id)
		if err != nil {
			return updated, err
		}
		if !ok {
			continue
		}
		updated = append(updated, rule.Path)
		if onUpdated != nil {
			onUpdated(rule.Path)
		}
	}
	return updated, nil
}

// Content applies subs to content in order.
func Content(content string, subs []Substitution, id Identity) string {
	for _, sub := range subs {
		content = sub.apply(content, id)
	}
	return content
}
