package rewrite

import (
	"regexp"
	"strings"
)

// Substitution replaces every match of Pattern with the text Replace
// produces. The replacement is literal: "$" has no special meaning. When
// Pattern has a group named "keep", the text it captured is appended to the
// replacement unchanged.
type Substitution struct {
	Pattern *regexp.Regexp
	Replace func(id Identity) string
}

// apply runs the substitution over content.
func (s Substitution) apply(content string, id Identity) string {
	repl := strings.ReplaceAll(s.Replace(id), "$", "$$")
	if s.Pattern.SubexpIndex("keep") >= 0 {
		repl += "${keep}"
	}
	return s.Pattern.ReplaceAllString(content, repl)
}

// FileRule lists the substitutions applied, in order, to one file.
type FileRule struct {
	// Path is slash-separated and relative to the project root.
	Path          string
	Substitutions []Substitution
}

// BootstrapCommand is how a generated README tells readers to scaffold a
// project of their own.
const BootstrapCommand = "go run github.com/gorewood/gostrap/cmd/gostrap@latest"

// Template identity strings.
const (
	templateRepo   = `https://github\.com/templ-project/go`
	templateModule = `github\.com/templ-project/go`

	// repoEnd ends a repository path: hyphens and word characters would
	// continue it, as in templ-project/go-x.
	repoEnd = `(?P<keep>[^\w-]|$)`
	// lineEnd tolerates trailing blanks and a CRLF line ending.
	lineEnd = `(?P<keep>[ \t]*\r?)$`
)

// DefaultRules rewrites the template's identity in go.mod, Taskfile.yml,
// README.md and CONTRIBUTING.md. Within a file, patterns that contain the
// template repository URL run before the bare URL so the longer forms still
// match.
var DefaultRules = []FileRule{
	{
		Path: "go.mod",
		Substitutions: []Substitution{
			{
				Pattern: regexp.MustCompile(`(?m)^module ` + templateModule + repoEnd),
				Replace: func(id Identity) string { return "module " + id.ModulePath() },
			},
		},
	},
	{
		Path: "Taskfile.yml",
		Substitutions: []Substitution{
			{
				Pattern: regexp.MustCompile(regexp.QuoteMeta(`GO_PROJECT_NAME: '{{default .GO_PROJECT_NAME "go-template"}}'`)),
				Replace: func(id Identity) string {
					return `GO_PROJECT_NAME: '{{default .GO_PROJECT_NAME "` + id.Name + `"}}'`
				},
			},
		},
	},
	{
		Path: "README.md",
		Substitutions: []Substitution{
			{
				Pattern: regexp.MustCompile(`(?m)^# Go Bootstrap Template` + lineEnd),
				Replace: func(id Identity) string { return "# " + id.Title },
			},
			{
				Pattern: regexp.MustCompile(regexp.QuoteMeta(
					"> A modern Go project template with testing, linting, formatting, and quality tools built-in.")),
				Replace: func(id Identity) string { return "> " + id.Title + " - A Go project" },
			},
			{
				Pattern: regexp.MustCompile(`git clone ` + templateRepo + `\.git my-project`),
				Replace: func(id Identity) string { return "git clone " + id.RepoURL() + ".git " + id.Name },
			},
			{
				Pattern: regexp.MustCompile(`uvx --from git\+` + templateRepo + `\.git bootstrap \./my-go-project`),
				Replace: func(id Identity) string { return BootstrapCommand + " ./" + id.Name },
			},
			{
				Pattern: regexp.MustCompile(templateRepo + repoEnd),
				Replace: Identity.RepoURL,
			},
		},
	},
	{
		Path: "CONTRIBUTING.md",
		Substitutions: []Substitution{
			{
				Pattern: regexp.MustCompile(`git clone ` + templateRepo + `\.git`),
				Replace: func(id Identity) string { return "git clone " + id.RepoURL() + ".git" },
			},
			{
				Pattern: regexp.MustCompile(templateRepo + repoEnd),
				Replace: Identity.RepoURL,
			},
		},
	},
}
