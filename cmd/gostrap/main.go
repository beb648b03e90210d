// Package main provides the entry point for the gostrap CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/gostrap/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves --color against TTY detection of the command's stdout.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter builds the printer every command renders through.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(handleError),
	)
	return output.GetExitCode(err)
}

// handleError lets fang render errors the commands have not already printed.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command: gostrap [path].
func newRootCmd() *cobra.Command {
	flags := &bootstrapFlags{}

	cmd := &cobra.Command{
		Use:   "gostrap [path]",
		Short: "Bootstrap a new Go project from the templ-project/go template",
		Long: `Gostrap - bootstrap a new Go project from the templ-project/go template.

Gostrap clones the template into an empty directory, removes the files the
template only needs for itself (git history, installer scripts, packaging
manifests, assistant configuration) and rewrites go.mod, Taskfile.yml,
README.md and CONTRIBUTING.md for the new project's name.

The project name defaults to the target directory's name, lowercased with
spaces, underscores and periods turned into hyphens.

Examples:
  # Bootstrap in current directory
  go run github.com/gorewood/gostrap/cmd/gostrap@latest .

  # Bootstrap in specific directory
  go run github.com/gorewood/gostrap/cmd/gostrap@latest ./my-go-project

  # Bootstrap with custom project name
  go run github.com/gorewood/gostrap/cmd/gostrap@latest --project-name awesome-lib ./my-project

  # Pin the template version and set the module organisation
  gostrap --ref v1.2.0 --org acme ./service`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd, args, flags)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		mode, _ := cmd.Root().PersistentFlags().GetString("color")
		if !output.ValidColorMode(mode) {
			err := output.NewUserError(fmt.Sprintf("invalid --color value %q: want auto, always or never", mode))
			newPrinter(cmd).Error(err)
			return err
		}
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")

	cmd.Flags().StringVar(&flags.projectName, "project-name", "",
		"Project name (default: extracted from target directory name)")
	cmd.Flags().BoolVar(&flags.normalize, "normalize", false,
		"Normalize --project-name the same way derived names are")
	cmd.Flags().StringVar(&flags.org, "org", "", "Organisation used in the module path (default \"your-org\")")
	cmd.Flags().StringVar(&flags.template, "template", "", "Template repository URL (default upstream templ-project/go)")
	cmd.Flags().StringVar(&flags.ref, "ref", "", "Template branch or tag to clone (default: remote HEAD)")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}
