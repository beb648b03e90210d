// Package naming turns directory names into project identifiers.
//
// A project name is lowercase ASCII letters, digits and hyphens, starts with
// a letter and is never empty. Normalize enforces that shape on arbitrary
// input; Derive picks the input from a target path.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultName is used when normalization leaves nothing behind.
	DefaultName = "go-template"

	// DigitPrefix is prepended to names that would start with a digit.
	DigitPrefix = "go-"
)

var (
	separators = strings.NewReplacer(" ", "-", "_", "-", ".", "-")
	invalid    = regexp.MustCompile(`[^a-z0-9-]`)
	validName  = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// Normalize converts raw into a valid project name.
//
//	Normalize("Foo_Bar.2")  // "foo-bar-2"
//	Normalize("42-widgets") // "go-42-widgets"
//	Normalize("!!!")        // "go-template"
func Normalize(raw string) string {
	name := strings.ToLower(separators.Replace(raw))
	name = invalid.ReplaceAllString(name, "")
	name = strings.Trim(name, "-")

	if name == "" {
		return DefaultName
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = DigitPrefix + name
	}
	return name
}

// Derive returns the normalized project name for target. When target names
// the current directory (".", "" or a filesystem root) the base name of cwd
// is used instead.
func Derive(target, cwd string) string {
	base := baseName(target)
	if base == "" {
		base = baseName(cwd)
	}
	return Normalize(base)
}

// baseName returns the final path element, or "" when the path has none.
func baseName(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(filepath.Clean(path))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return base
}

// Valid reports whether name already satisfies the project name constraint.
func Valid(name string) bool {
	return validName.MatchString(name)
}

// Title builds a human readable heading from a project name. Every run of
// letters is a word, so a letter after a digit is capitalized too.
//
//	Title("my-go-project") // "My Go Project"
//	Title("my2fa-app")     // "My2Fa App"
func Title(name string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	caser := cases.Title(language.Und)

	var b strings.Builder
	start := -1
	for i, r := range words {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(words[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(words[start:]))
	}
	return b.String()
}
