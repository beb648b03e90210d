package git

import (
	"context"
)

// Cloner retrieves a repository with a shallow, single-revision clone.
// The zero value clones the remote's default branch.
type Cloner struct {
	// Ref selects a branch or tag; empty means the remote HEAD.
	Ref string
}

// Fetch clones sourceURL into dest, which must be absent or empty.
func (c Cloner) Fetch(ctx context.Context, sourceURL, dest string) error {
	_, err := RunContext(ctx, CloneArgs(sourceURL, dest, c.Ref)...)
	return err
}

// CloneArgs builds the git arguments for a shallow clone.
func CloneArgs(sourceURL, dest, ref string) []string {
	args := []string{"clone", "--depth", "1", "--quiet"}
	if ref != "" {
		args = append(args, "--branch", ref)
	}
	return append(args, "--", sourceURL, dest)
}

// Reachable checks that sourceURL answers and, when ref is set, that it
// advertises that branch or tag. Nothing is downloaded.
func Reachable(ctx context.Context, sourceURL, ref string) error {
	args := []string{"ls-remote", "--exit-code", "--", sourceURL}
	if ref != "" {
		args = append(args, ref)
	} else {
		args = append(args, "HEAD")
	}
	_, err := RunContext(ctx, args...)
	return err
}
