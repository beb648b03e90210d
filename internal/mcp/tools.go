package mcp

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/gostrap/internal/bootstrap"
	"github.com/gorewood/gostrap/internal/cleanup"
	"github.com/gorewood/gostrap/internal/rewrite"
)

// ProjectInput is shared by the resolve and bootstrap tools.
type ProjectInput struct {
	Path        string `json:"path"                   jsonschema:"absolute target directory (required)"`
	ProjectName string `json:"project_name,omitempty" jsonschema:"explicit project name; derived from the directory name when empty"`
	Normalize   *bool  `json:"normalize,omitempty"    jsonschema:"normalize project_name like a derived name; omitted uses the server configuration"`
	Org         string `json:"org,omitempty"          jsonschema:"organisation used in the module path"`
	Template    string `json:"template,omitempty"     jsonschema:"template repository URL"`
	Ref         string `json:"ref,omitempty"          jsonschema:"template branch or tag"`
}

// ResolveOutput is the output for the resolve tool.
type ResolveOutput struct {
	Name       string   `json:"name"        jsonschema:"project name"`
	Title      string   `json:"title"       jsonschema:"human readable title"`
	NameSource string   `json:"name_source" jsonschema:"derived, override or override (normalized)"`
	ModulePath string   `json:"module_path" jsonschema:"Go module path written to go.mod"`
	Target     string   `json:"target"      jsonschema:"absolute target directory"`
	Template   string   `json:"template"    jsonschema:"template repository URL"`
	Ref        string   `json:"ref,omitempty" jsonschema:"template branch or tag"`
	Artifacts  []string `json:"artifacts"   jsonschema:"cleanup patterns removed after cloning"`
	Files      []string `json:"files"       jsonschema:"metadata files rewritten when present"`
}

// BootstrapOutput is the output for the bootstrap tool.
type BootstrapOutput struct {
	Result *bootstrap.Result `json:"result" jsonschema:"what the run created, removed and rewrote"`
}

func handleResolve(svc *Service) mcp.ToolHandlerFor[ProjectInput, ResolveOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ProjectInput) (*mcp.CallToolResult, ResolveOutput, error) {
		plan, ref, err := svc.plan(input)
		if err != nil {
			return nil, ResolveOutput{}, err
		}
		return nil, ResolveOutput{
			Name:       plan.Identity.Name,
			Title:      plan.Identity.Title,
			NameSource: plan.NameSource,
			ModulePath: plan.Identity.ModulePath(),
			Target:     plan.Target,
			Template:   plan.TemplateURL,
			Ref:        ref,
			Artifacts:  cleanup.Patterns(plan.Artifacts),
			Files:      rulePaths(plan.Rules),
		}, nil
	}
}

func handleBootstrap(svc *Service) mcp.ToolHandlerFor[ProjectInput, BootstrapOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProjectInput) (*mcp.CallToolResult, BootstrapOutput, error) {
		plan, ref, err := svc.plan(input)
		if err != nil {
			return nil, BootstrapOutput{}, err
		}
		result, err := bootstrap.Execute(ctx, plan, svc.NewFetcher(ref), bootstrap.NopReporter{})
		if err != nil {
			return nil, BootstrapOutput{}, err
		}
		return nil, BootstrapOutput{Result: result}, nil
	}
}

// plan validates input and resolves it over the service configuration.
func (svc *Service) plan(input ProjectInput) (bootstrap.Plan, string, error) {
	if input.Path == "" {
		return bootstrap.Plan{}, "", errors.New("path is required")
	}
	if !filepath.IsAbs(input.Path) {
		return bootstrap.Plan{}, "", errors.New("path must be absolute")
	}

	cfg := svc.Config
	opts := bootstrap.Options{
		Target:      input.Path,
		ProjectName: input.ProjectName,
		Normalize:   cfg.Normalize,
		Org:         firstNonEmpty(input.Org, cfg.Org),
		TemplateURL: firstNonEmpty(input.Template, cfg.Template),
		Artifacts:   cfg.Artifacts(),
	}

	if input.Normalize != nil {
		opts.Normalize = *input.Normalize
	}

	// An absolute target never consults the working directory.
	plan, err := bootstrap.Resolve(opts, filepath.Dir(input.Path))
	if err != nil {
		return bootstrap.Plan{}, "", err
	}
	return plan, firstNonEmpty(input.Ref, cfg.Ref), nil
}

func rulePaths(rules []rewrite.FileRule) []string {
	paths := make([]string, 0, len(rules))
	for _, rule := range rules {
		paths = append(paths, rule.Path)
	}
	return paths
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
