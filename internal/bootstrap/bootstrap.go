// Package bootstrap materializes a new project from the Go template.
//
// A run has two halves. Resolve turns user input into a Plan (absolute
// target, project identity, template source) without touching the
// filesystem. Execute carries the plan out: acquire the template into an
// empty target, remove template-only artifacts, and rewrite the metadata
// files. Run does both.
//
//	plan, err := bootstrap.Resolve(opts, cwd)
//	result, err := bootstrap.Execute(ctx, plan, git.Cloner{}, reporter)
//
// Fatal errors are *output.ExitError values whose cause is a
// *NonEmptyTargetError or *RetrievalError when the failure is one of those.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gorewood/gostrap/internal/cleanup"
	"github.com/gorewood/gostrap/internal/naming"
	"github.com/gorewood/gostrap/internal/output"
	"github.com/gorewood/gostrap/internal/rewrite"
)

// DefaultTemplateURL is the upstream template repository.
const DefaultTemplateURL = "https://github.com/templ-project/go.git"

// Options is the user-facing input of a run.
type Options struct {
	// Target is the destination directory; empty means ".".
	Target string
	// ProjectName overrides the name derived from Target. It is used
	// verbatim unless Normalize is set.
	ProjectName string
	Normalize   bool
	// Org is the organisation placeholder in repository URLs.
	Org string
	// TemplateURL is the clone source; empty means DefaultTemplateURL.
	TemplateURL string

	// Artifacts and Rules default to cleanup.DefaultArtifacts and
	// rewrite.DefaultRules when nil.
	Artifacts []cleanup.Artifact
	Rules     []rewrite.FileRule
}

// Plan is a fully resolved run.
type Plan struct {
	Target      string
	TemplateURL string
	Identity    rewrite.Identity
	// NameSource is "derived", "override" or "override (normalized)".
	NameSource string
	Artifacts  []cleanup.Artifact
	Rules      []rewrite.FileRule
}

// Result records what a run did.
type Result struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	ModulePath string   `json:"module_path"`
	Target     string   `json:"target"`
	Template   string   `json:"template"`
	Removed    []string `json:"removed"`
	Skipped    []string `json:"skipped,omitempty"`
	Updated    []string `json:"updated"`
}

// Reporter receives progress while a plan executes.
type Reporter interface {
	// Stage announces the start of a stage.
	Stage(title string)
	// Step confirms one completed action within the current stage.
	Step(message string)
	// Warn reports something the run deliberately left undone.
	Warn(message string)
}

// NopReporter discards progress.
type NopReporter struct{}

// Stage implements Reporter.
func (NopReporter) Stage(string) {}

// Step implements Reporter.
func (NopReporter) Step(string) {}

// Warn implements Reporter.
func (NopReporter) Warn(string) {}

// Resolve derives the plan for opts. cwd is the working directory used to
// absolutize a relative target and to name a "." target.
func Resolve(opts Options, cwd string) (Plan, error) {
	target := opts.Target
	if target == "" {
		target = "."
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(cwd, target)
	}
	target = filepath.Clean(target)

	name, source := resolveName(opts, target, cwd)

	plan := Plan{
		Target:      target,
		TemplateURL: opts.TemplateURL,
		Identity:    rewrite.NewIdentity(name, opts.Org),
		NameSource:  source,
		Artifacts:   opts.Artifacts,
		Rules:       opts.Rules,
	}
	if plan.TemplateURL == "" {
		plan.TemplateURL = DefaultTemplateURL
	}
	if plan.Artifacts == nil {
		plan.Artifacts = cleanup.DefaultArtifacts
	}
	if plan.Rules == nil {
		plan.Rules = rewrite.DefaultRules
	}

	if err := cleanup.Validate(plan.Artifacts); err != nil {
		return Plan{}, output.NewUserError(err.Error())
	}
	return plan, nil
}

// resolveName picks the override or derives a name from the absolute target.
func resolveName(opts Options, target, cwd string) (string, string) {
	switch {
	case opts.ProjectName == "":
		return naming.Derive(target, cwd), "derived"
	case opts.Normalize:
		return naming.Normalize(opts.ProjectName), "override (normalized)"
	default:
		return opts.ProjectName, "override"
	}
}

// Execute acquires the template, removes artifacts and rewrites metadata.
// It stops at the first error; nothing is rolled back.
func Execute(ctx context.Context, plan Plan, fetcher Fetcher, reporter Reporter) (*Result, error) {
	if reporter == nil {
		reporter = NopReporter{}
	}

	result := &Result{
		Name:       plan.Identity.Name,
		Title:      plan.Identity.Title,
		ModulePath: plan.Identity.ModulePath(),
		Target:     plan.Target,
		Template:   plan.TemplateURL,
		Removed:    []string{},
		Updated:    []string{},
	}

	reporter.Stage("Cloning template repository")
	if err := Acquire(ctx, fetcher, plan.TemplateURL, plan.Target); err != nil {
		return nil, err
	}
	reporter.Step("Template cloned to " + plan.Target)

	reporter.Stage("Cleaning up template artifacts")
	removed, err := cleanup.Remove(plan.Target, plan.Artifacts, func(rel string) {
		reporter.Step("Removed: " + rel)
	}, func(rel string) {
		result.Skipped = append(result.Skipped, rel)
		reporter.Warn("Kept " + rel + ": a parent directory is a symlink")
	})
	if err != nil {
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("cleanup failed: %v", err), err)
	}
	result.Removed = append(result.Removed, removed...)

	reporter.Stage(fmt.Sprintf("Updating project metadata for '%s'", plan.Identity.Name))
	updated, err := rewrite.Apply(plan.Target, plan.Rules, plan.Identity, func(rel string) {
		reporter.Step("Updated: " + rel)
	})
	if err != nil {
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("metadata rewrite failed: %v", err), err)
	}
	result.Updated = append(result.Updated, updated...)

	return result, nil
}

// Run resolves opts and executes the resulting plan.
func Run(ctx context.Context, opts Options, cwd string, fetcher Fetcher, reporter Reporter) (*Result, error) {
	plan, err := Resolve(opts, cwd)
	if err != nil {
		return nil, err
	}
	return Execute(ctx, plan, fetcher, reporter)
}
