//go:build integration

// Package integration provides end-to-end tests for the gostrap CLI.
// These tests build the binary, publish a template as a real git
// repository and bootstrap projects from it over file://.
//
// Run with: go test -tags=integration ./internal/integration/...
package integration

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// templateFiles mirrors the layout of the upstream Go template, including
// the files that only the template itself needs.
var templateFiles = map[string]string{
	"Taskfile.yml": "version: '3'\n\nvars:\n" +
		"  GO_PROJECT_NAME: '{{default .GO_PROJECT_NAME \"go-template\"}}'\n",
	"README.md": "# Go Bootstrap Template\n\n" +
		"> A modern Go project template with testing, linting, formatting, and quality tools built-in.\n\n" +
		"uvx --from git+https://github.com/templ-project/go.git bootstrap ./my-go-project\n\n" +
		"git clone https://github.com/templ-project/go.git my-project\n\n" +
		"Issues: https://github.com/templ-project/go/issues\n",
	"CONTRIBUTING.md": "git clone https://github.com/templ-project/go.git\n" +
		"See https://github.com/templ-project/go/pulls\n",
	"go.mod":                        "module github.com/templ-project/go\n\ngo 1.24\n",
	"cmd/cli/main.go":               "package main\n\nfunc main() {}\n",
	"internal/greeting/greeting.go": "package greeting\n",
	"bootstrap.py":                  "#!/usr/bin/env python3\n",
	"pyproject.toml":                "[project]\nname = \"go-template-bootstrap\"\n",
	".mise.lock":                    "[tools]\n",
	"_uvx_install/__init__.py":      "",
	".cwai/config.yml":              "agents: []\n",
	".github/prompts/review.md":     "Review the change.\n",
	".github/workflows/ci.yml":      "name: ci\n",
	".vscode/settings.json":         "{}\n",
}

// workspace holds the built binary and a published template repository.
type workspace struct {
	t        *testing.T
	dir      string
	binary   string
	template string
}

// newWorkspace builds gostrap and publishes the template fixture.
func newWorkspace(t *testing.T) *workspace {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()

	binary := filepath.Join(dir, "gostrap")
	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/gostrap")
	buildCmd.Dir = findProjectRoot(t)
	buildCmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build gostrap: %v\n%s", err, output)
	}

	ws := &workspace{t: t, dir: dir, binary: binary}
	ws.template = ws.publishTemplate()
	return ws
}

// findProjectRoot locates the project root by finding go.mod.
func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// publishTemplate commits templateFiles into a fresh repository and returns
// its file:// URL.
func (w *workspace) publishTemplate() string {
	w.t.Helper()

	repo := filepath.Join(w.dir, "template")
	for name, content := range templateFiles {
		writeFile(w.t, filepath.Join(repo, filepath.FromSlash(name)), content)
	}

	w.git(repo, "init", "--quiet", "--initial-branch=main")
	w.git(repo, "add", "-A")
	w.git(repo, "-c", "user.name=Test User", "-c", "user.email=test@example.com",
		"-c", "commit.gpgsign=false", "commit", "--quiet", "-m", "Initial template")
	w.git(repo, "tag", "v1.0.0")

	return "file://" + filepath.ToSlash(repo)
}

// git runs a git command in dir.
func (w *workspace) git(dir string, args ...string) string {
	w.t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		w.t.Fatalf("git %v failed: %v\n%s", args, err, output)
	}
	return strings.TrimSpace(string(output))
}

// gostrap runs the binary from dir with an isolated configuration home.
// Returns stdout, stderr and the process exit code.
func (w *workspace) gostrap(dir string, args ...string) (string, string, int) {
	w.t.Helper()

	cmd := exec.Command(w.binary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GOSTRAP_CONFIG_HOME="+filepath.Join(w.dir, "config"))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else if err != nil {
		w.t.Fatalf("gostrap %v could not run: %v", args, err)
	}
	return stdout.String(), stderr.String(), code
}

// gostrapOK runs gostrap and expects success.
func (w *workspace) gostrapOK(dir string, args ...string) string {
	w.t.Helper()

	stdout, stderr, code := w.gostrap(dir, args...)
	if code != 0 {
		w.t.Fatalf("gostrap %v exited %d\nstdout: %s\nstderr: %s", args, code, stdout, stderr)
	}
	return stdout
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// TestBootstrapFromTemplate runs the whole pipeline against a real clone.
func TestBootstrapFromTemplate(t *testing.T) {
	ws := newWorkspace(t)
	target := filepath.Join(ws.dir, "projects", "Weather_Station")

	stdout := ws.gostrapOK(ws.dir, "--template", ws.template, "--org", "acme", target)

	for _, want := range []string{
		"Project name: weather-station",
		"Cloning template repository",
		"Removed: .git",
		"Updated: CONTRIBUTING.md",
		"Bootstrap complete!",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout should contain %q:\n%s", want, stdout)
		}
	}

	for _, gone := range []string{".git", "bootstrap.py", "pyproject.toml", ".mise.lock", "_uvx_install", ".cwai", ".github/prompts"} {
		if exists(filepath.Join(target, filepath.FromSlash(gone))) {
			t.Errorf("%s should have been removed", gone)
		}
	}
	for _, kept := range []string{".github/workflows/ci.yml", ".vscode/settings.json", "cmd/cli/main.go", "internal/greeting/greeting.go"} {
		if !exists(filepath.Join(target, filepath.FromSlash(kept))) {
			t.Errorf("%s should have been kept", kept)
		}
	}

	files := []struct {
		name string
		want []string
	}{
		{"go.mod", []string{"module github.com/acme/weather-station\n"}},
		{"Taskfile.yml", []string{`GO_PROJECT_NAME: '{{default .GO_PROJECT_NAME "weather-station"}}'`}},
		{"README.md", []string{
			"# Weather Station\n",
			"> Weather Station - A Go project\n",
			"go run github.com/gorewood/gostrap/cmd/gostrap@latest ./weather-station\n",
			"git clone https://github.com/acme/weather-station.git weather-station\n",
			"Issues: https://github.com/acme/weather-station/issues\n",
		}},
		{"CONTRIBUTING.md", []string{
			"git clone https://github.com/acme/weather-station.git\n",
			"See https://github.com/acme/weather-station/pulls\n",
		}},
	}
	for _, f := range files {
		content := readFile(t, filepath.Join(target, f.name))
		if strings.Contains(content, "templ-project") {
			t.Errorf("%s still references the template:\n%s", f.name, content)
		}
		for _, want := range f.want {
			if !strings.Contains(content, want) {
				t.Errorf("%s should contain %q:\n%s", f.name, want, content)
			}
		}
	}
}

// TestBootstrapCurrentDirectory bootstraps "." and names the project after
// the working directory.
func TestBootstrapCurrentDirectory(t *testing.T) {
	ws := newWorkspace(t)
	target := filepath.Join(ws.dir, "2fast")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}

	out := ws.gostrapOK(target, "--json", "--template", ws.template, "--ref", "v1.0.0")

	var result struct {
		Name    string   `json:"name"`
		Target  string   `json:"target"`
		Removed []string `json:"removed"`
		Updated []string `json:"updated"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\n%s", err, out)
	}
	if result.Name != "go-2fast" {
		t.Errorf("name = %q, want %q", result.Name, "go-2fast")
	}
	if len(result.Removed) != 7 || len(result.Updated) != 4 {
		t.Errorf("removed=%v updated=%v", result.Removed, result.Updated)
	}
	if !strings.Contains(readFile(t, filepath.Join(target, "go.mod")), "module github.com/your-org/go-2fast") {
		t.Error("go.mod was not rewritten")
	}
}

// TestBootstrapNonEmptyTarget refuses to touch a populated directory.
func TestBootstrapNonEmptyTarget(t *testing.T) {
	ws := newWorkspace(t)
	target := filepath.Join(ws.dir, "existing")
	writeFile(t, filepath.Join(target, "keep.txt"), "mine")

	_, stderr, code := ws.gostrap(ws.dir, "--template", ws.template, target)

	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	if !strings.Contains(stderr, "not empty") {
		t.Errorf("stderr should explain the conflict: %q", stderr)
	}
	entries, err := os.ReadDir(target)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || readFile(t, filepath.Join(target, "keep.txt")) != "mine" {
		t.Error("target directory should be left untouched")
	}
}

// TestBootstrapMissingTemplate reports a retrieval failure.
func TestBootstrapMissingTemplate(t *testing.T) {
	ws := newWorkspace(t)
	missing := "file://" + filepath.ToSlash(filepath.Join(ws.dir, "no-such-repo"))

	_, stderr, code := ws.gostrap(ws.dir, "--template", missing, filepath.Join(ws.dir, "p"))

	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	for _, want := range []string{"failed to clone", "git is installed"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr should contain %q: %q", want, stderr)
		}
	}
}

// TestBootstrapConfigFile reads defaults from config.yaml.
func TestBootstrapConfigFile(t *testing.T) {
	ws := newWorkspace(t)
	writeFile(t, filepath.Join(ws.dir, "config", "config.yaml"),
		"template: "+ws.template+"\norg: configured\nnormalize: true\nextra_cleanup:\n  - .vscode\n")
	target := filepath.Join(ws.dir, "cfg")

	ws.gostrapOK(ws.dir, "--project-name", "Config Project", target)

	if got := readFile(t, filepath.Join(target, "go.mod")); !strings.Contains(got, "module github.com/configured/config-project") {
		t.Errorf("go.mod = %q", got)
	}
	if exists(filepath.Join(target, ".vscode")) {
		t.Error(".vscode should be removed by extra_cleanup")
	}
}
