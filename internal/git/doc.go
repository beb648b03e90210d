// Package git wraps the git executable for gostrap.
//
// Commands run through Run or RunContext, which capture stdout and translate
// failures into *output.ExitError values carrying git's stderr:
//
//	out, err := git.Run("version")
//
// Template retrieval uses Cloner, a shallow clone that satisfies the
// bootstrap fetcher contract:
//
//	err := git.Cloner{Ref: "v1.2.0"}.Fetch(ctx, url, dir)
//
// Reachable probes a remote with ls-remote without downloading it.
//
// A missing git binary is reported as a system error (exit code 2) with a
// hint to install git.
package git
