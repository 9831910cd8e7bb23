// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and exit code mapping

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/lgulich/dotfiles/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "discovery_error",
			code:    errors.ErrDiscovery,
			message: "root does not exist",
			wantStr: "[DISCOVERY] root does not exist",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "unknown platform",
			wantStr: "[INVALID_INPUT] unknown platform",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidInput, "unknown topic: %s", "vim")
	if err.Message != "unknown topic: vim" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileAccess, "cannot read root")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[FILE_ACCESS] cannot read root: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}

		if !stderrors.Is(err, baseErr) {
			t.Error("errors.Is() should see the wrapped error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDiscovery, "missing").
		WithDetail("path", "/dotfiles").
		WithDetail("platform", "ubuntu")

	details := errors.GetErrorDetails(err)
	if details["path"] != "/dotfiles" || details["platform"] != "ubuntu" {
		t.Errorf("unexpected details: %v", details)
	}

	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrDiscovery, "error 1")
	err2 := errors.New(errors.ErrDiscovery, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestGetErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errors.New(errors.ErrManifestParse, "bad yaml"))

	if got := errors.GetErrorCode(wrapped); got != errors.ErrManifestParse {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrManifestParse)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
	if !errors.IsErrorCode(wrapped, errors.ErrManifestParse) {
		t.Error("IsErrorCode() should see through fmt wrapping")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, errors.ExitOK},
		{"discovery", errors.New(errors.ErrDiscovery, "missing root"), errors.ExitFailure},
		{"plain", stderrors.New("boom"), errors.ExitFailure},
		{"cancelled", errors.New(errors.ErrCancelled, "interrupted"), errors.ExitCancelled},
		{"wrapped_cancelled", fmt.Errorf("run: %w", errors.New(errors.ErrCancelled, "interrupted")), errors.ExitCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
