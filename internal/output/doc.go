// Package output provides structured output and exit-code handling for the
// gostrap CLI.
//
// Every command renders through a Printer, which switches between styled
// human output and JSON depending on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Section("Cleaning up template artifacts")
//	printer.Step("Removed .git")
//	printer.Error(err)
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: success
//	output.ExitUserError   // 1: bad flags or arguments
//	output.ExitSystemError // 2: retrieval failure, I/O error
//	output.ExitConflict    // 3: target directory is not empty
//
// Errors built with NewUserError, NewSystemError and NewConflictError carry
// their exit code; GetExitCode recovers it from any error chain.
package output
