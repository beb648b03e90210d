package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/gostrap/internal/bootstrap"
	"github.com/gorewood/gostrap/internal/config"
	"github.com/gorewood/gostrap/internal/git"
	"github.com/gorewood/gostrap/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results.
type doctorResult struct {
	Version string         `json:"version"`
	Checks  []checkResult  `json:"checks"`
	Summary *doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// doctorFlags holds the command-line flags for the doctor command.
type doctorFlags struct {
	offline  bool
	template string
}

// templateProbe checks template reachability; replaced in tests.
var templateProbe = git.Reachable

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	flags := &doctorFlags{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that gostrap can bootstrap from this machine",
		Long: `Check that gostrap can bootstrap from this machine.

Checks:
  Git           - git is installed and on PATH
  Configuration - config.yaml and GOSTRAP_* variables are valid
  Template      - the template repository answers (skipped with --offline)

Examples:
  gostrap doctor              # Run all checks
  gostrap doctor --offline    # Skip the network check
  gostrap doctor --json       # Output results as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.offline, "offline", false, "Skip the template reachability check")
	cmd.Flags().StringVar(&flags.template, "template", "", "Template repository URL to check")

	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, flags *doctorFlags) error {
	printer := newPrinter(cmd)

	result := gatherDoctorChecks(cmd.Context(), flags)

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	outputDoctorHuman(printer, result)
	return nil
}

// gatherDoctorChecks runs all checks and tallies them.
func gatherDoctorChecks(ctx context.Context, flags *doctorFlags) *doctorResult {
	cfg, cfgCheck := checkConfig()

	checks := []checkResult{checkGit(), cfgCheck}
	checks = append(checks, checkTemplate(ctx, flags, cfg))

	result := &doctorResult{
		Version: buildVersion(),
		Checks:  checks,
		Summary: &doctorSummary{},
	}
	for _, check := range checks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}
	return result
}

// checkGit reports whether git can be executed.
func checkGit() checkResult {
	if !git.Available() {
		return checkResult{
			Name:    "Git",
			Status:  checkFail,
			Message: "git not found in PATH",
			Hint:    "Install git from https://git-scm.com/downloads",
		}
	}
	ver, err := git.Version()
	if err != nil {
		return checkResult{Name: "Git", Status: checkWarn, Message: "git found but 'git version' failed"}
	}
	return checkResult{Name: "Git", Status: checkPass, Message: ver}
}

// checkConfig loads the configuration and reports where it came from.
func checkConfig() (config.Config, checkResult) {
	path := config.FilePath()
	cfg, err := loadConfig()
	if err != nil {
		return config.Config{}, checkResult{
			Name:    "Configuration",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Fix or remove " + path,
		}
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		return cfg, checkResult{Name: "Configuration", Status: checkPass, Message: "no config file, using defaults"}
	}
	return cfg, checkResult{Name: "Configuration", Status: checkPass, Message: "loaded " + path}
}

// checkTemplate probes the template repository the next run would clone.
func checkTemplate(ctx context.Context, flags *doctorFlags, cfg config.Config) checkResult {
	url := firstNonEmpty(flags.template, cfg.Template, bootstrap.DefaultTemplateURL)
	if flags.offline {
		return checkResult{Name: "Template", Status: checkWarn, Message: "skipped (offline): " + url}
	}

	label := url
	if cfg.Ref != "" {
		label += " @ " + cfg.Ref
	}
	if err := templateProbe(ctx, url, cfg.Ref); err != nil {
		msg := err.Error()
		var exitErr *output.ExitError
		if errors.As(err, &exitErr) {
			msg = exitErr.Message
		}
		return checkResult{
			Name:    "Template",
			Status:  checkFail,
			Message: label + " unreachable: " + strings.TrimPrefix(msg, "git command failed: "),
			Hint:    "Check network access or set --template / GOSTRAP_TEMPLATE",
		}
	}
	return checkResult{Name: "Template", Status: checkPass, Message: label + " reachable"}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult) {
	printer.Println()
	printer.Print("gostrap doctor %s\n", result.Version)
	printer.Println()

	for _, check := range result.Checks {
		printer.Print("  %s  %s %s\n", statusIcon(check.Status), check.Name, printer.Dim(check.Message))
		if check.Hint != "" {
			printer.Print("     -> %s\n", check.Hint)
		}
	}

	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		statusIcon(checkPass), result.Summary.Passed,
		statusIcon(checkWarn), result.Summary.Warnings,
		statusIcon(checkFail), result.Summary.Failed,
	)
}

// statusIcon returns the icon for a check status.
func statusIcon(status checkStatus) string {
	switch status {
	case checkPass:
		return "ok"
	case checkWarn:
		return "!!"
	case checkFail:
		return "XX"
	default:
		return "??"
	}
}
