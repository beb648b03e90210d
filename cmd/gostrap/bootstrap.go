package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/gostrap/internal/bootstrap"
	"github.com/gorewood/gostrap/internal/config"
	"github.com/gorewood/gostrap/internal/git"
	"github.com/gorewood/gostrap/internal/output"
)

// bootstrapFlags holds the command-line flags for the root command.
type bootstrapFlags struct {
	projectName string
	normalize   bool
	org         string
	template    string
	ref         string
}

// Seams replaced in tests.
var (
	newFetcher = func(ref string) bootstrap.Fetcher { return git.Cloner{Ref: ref} }
	loadConfig = config.LoadDefault
)

// runBootstrap executes the root command.
func runBootstrap(cmd *cobra.Command, args []string, flags *bootstrapFlags) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig()
	if err != nil {
		exitErr := output.NewUserError("invalid configuration: " + err.Error())
		printer.Error(exitErr)
		return exitErr
	}

	cwd, err := os.Getwd()
	if err != nil {
		exitErr := output.NewSystemErrorWithCause("failed to get working directory", err)
		printer.Error(exitErr)
		return exitErr
	}

	opts, ref := buildOptions(cmd, args, flags, cfg)
	plan, err := bootstrap.Resolve(opts, cwd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if !printer.IsJSON() {
		printHeader(printer, plan)
	}

	result, err := bootstrap.Execute(cmd.Context(), plan, newFetcher(ref), newCLIReporter(printer))
	if err != nil {
		printFailure(printer, err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	printNextSteps(printer, result)
	return nil
}

// buildOptions merges flags over configuration. It also returns the
// template ref to clone.
func buildOptions(cmd *cobra.Command, args []string, flags *bootstrapFlags, cfg config.Config) (bootstrap.Options, string) {
	opts := bootstrap.Options{
		Target:      ".",
		ProjectName: flags.projectName,
		Normalize:   cfg.Normalize,
		Org:         cfg.Org,
		TemplateURL: cfg.Template,
		Artifacts:   cfg.Artifacts(),
	}
	if len(args) > 0 {
		opts.Target = args[0]
	}
	if cmd.Flags().Changed("normalize") {
		opts.Normalize = flags.normalize
	}
	if flags.org != "" {
		opts.Org = flags.org
	}
	if flags.template != "" {
		opts.TemplateURL = flags.template
	}

	ref := cfg.Ref
	if flags.ref != "" {
		ref = flags.ref
	}
	return opts, ref
}

// printFailure prints err with any remediation hints it carries.
func printFailure(printer *output.Printer, err error) {
	printer.Error(err)

	var hinter bootstrap.Hinter
	if errors.As(err, &hinter) {
		printer.Hint(hinter.Hints()...)
	}
}
