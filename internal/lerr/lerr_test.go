package lerr

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(ValidationFailed, "text cannot be empty")
	want := "[VALIDATION_FAILED] text cannot be empty"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := os.ErrNotExist
	err := Wrap(ParsingFailed, "cannot read file", cause)

	if !errors.Is(err, os.ErrNotExist) {
		t.Error("wrapped cause lost")
	}
	if err.Code != ParsingFailed {
		t.Errorf("code = %s", err.Code)
	}
}

func TestWithDetails(t *testing.T) {
	err := New(ConfigInvalid, "bad level").WithDetails("got \"extreme\"")
	if err.Details == "" {
		t.Error("details not set")
	}
}

func TestCodeOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"direct", New(DetectorFailed, "boom"), DetectorFailed},
		{"wrapped in fmt", fmt.Errorf("outer: %w", New(ModelUnavailable, "no model")), ModelUnavailable},
		{"plain error", errors.New("plain"), InternalError},
		{"nil", nil, InternalError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CodeOf(tc.err); got != tc.want {
				t.Errorf("CodeOf = %s, want %s", got, tc.want)
			}
		})
	}
}
