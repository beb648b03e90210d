package bootstrap

import (
	"context"
	"os"

	"github.com/gorewood/gostrap/internal/output"
)

// Fetcher retrieves the template source into dest.
type Fetcher interface {
	Fetch(ctx context.Context, sourceURL, dest string) error
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, sourceURL, dest string) error

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, sourceURL, dest string) error {
	return f(ctx, sourceURL, dest)
}

// Acquire creates target if needed, refuses to proceed when it already has
// entries, and fetches sourceURL into it. The fetcher is never called for a
// non-empty target. A failed fetch may leave target partially populated.
func Acquire(ctx context.Context, fetcher Fetcher, sourceURL, target string) error {
	if err := os.MkdirAll(target, 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create target directory "+target, err)
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to read target directory "+target, err)
	}
	if len(entries) > 0 {
		return nonEmptyTarget(target, len(entries))
	}

	if err := fetcher.Fetch(ctx, sourceURL, target); err != nil {
		return retrievalFailed(sourceURL, err)
	}
	return nil
}
