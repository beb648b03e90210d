package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError(t *testing.T) {
	tests := []struct {
		name        string
		err         *ExitError
		wantCode    int
		wantMessage string
	}{
		{
			name:        "user error",
			err:         NewUserError("accepts at most 1 arg(s), received 2"),
			wantCode:    ExitUserError,
			wantMessage: "accepts at most 1 arg(s), received 2",
		},
		{
			name:        "system error",
			err:         NewSystemError("failed to clone template repository"),
			wantCode:    ExitSystemError,
			wantMessage: "failed to clone template repository",
		},
		{
			name:        "conflict error",
			err:         NewConflictError("target directory is not empty"),
			wantCode:    ExitConflict,
			wantMessage: "target directory is not empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("exit status 128")

	t.Run("system", func(t *testing.T) {
		err := NewSystemErrorWithCause("git clone failed", underlying)
		if err.Code != ExitSystemError {
			t.Errorf("Code = %d, want %d", err.Code, ExitSystemError)
		}
		if !errors.Is(err, underlying) {
			t.Error("errors.Is should find underlying error")
		}
	})

	t.Run("conflict", func(t *testing.T) {
		err := NewConflictErrorWithCause("not empty", underlying)
		if err.Code != ExitConflict {
			t.Errorf("Code = %d, want %d", err.Code, ExitConflict)
		}
		if !errors.Is(err, underlying) {
			t.Error("errors.Is should find underlying error")
		}
	})
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "user", err: NewUserError("bad input"), expected: ExitUserError},
		{name: "system", err: NewSystemError("clone failed"), expected: ExitSystemError},
		{name: "conflict", err: NewConflictError("not empty"), expected: ExitConflict},
		{
			name:     "wrapped exit error keeps its code",
			err:      fmt.Errorf("bootstrap: %w", NewConflictError("not empty")),
			expected: ExitConflict,
		},
		{name: "regular error defaults to user error", err: errors.New("unknown flag"), expected: ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
