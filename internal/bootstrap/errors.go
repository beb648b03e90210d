package bootstrap

import (
	"fmt"

	"github.com/gorewood/gostrap/internal/output"
)

// NonEmptyTargetError reports a target directory that already has entries.
type NonEmptyTargetError struct {
	Path    string
	Entries int
}

func (e *NonEmptyTargetError) Error() string {
	return fmt.Sprintf("target directory is not empty: %s (%d entries)", e.Path, e.Entries)
}

// Hints returns remediation guidance for the user.
func (e *NonEmptyTargetError) Hints() []string {
	return []string{
		"Directory: " + e.Path,
		"Please use an empty directory or remove existing files.",
	}
}

// RetrievalError reports a failed template fetch.
type RetrievalError struct {
	URL string
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed to clone %s: %v", e.URL, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// Hints returns the checklist of likely causes.
func (e *RetrievalError) Hints() []string {
	return []string{
		"Please ensure:",
		"  1. git is installed and available in PATH",
		"  2. you have internet connectivity",
		"  3. you have access to " + e.URL,
	}
}

// Hinter is implemented by errors that carry remediation guidance.
type Hinter interface {
	Hints() []string
}

func nonEmptyTarget(path string, entries int) error {
	cause := &NonEmptyTargetError{Path: path, Entries: entries}
	return output.NewConflictErrorWithCause(cause.Error(), cause)
}

func retrievalFailed(url string, err error) error {
	cause := &RetrievalError{URL: url, Err: err}
	return output.NewSystemErrorWithCause(cause.Error(), cause)
}
