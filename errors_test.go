package slotkit

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pthm/slotkit/lib/encoding"
)

func TestTypedErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		contain []string
	}{
		{
			name:    "configuration error with component",
			err:     &ConfigurationError{Component: "Dialog", Key: "role", Reason: "attribute is fixed"},
			contain: []string{"Dialog", "role", "attribute is fixed"},
		},
		{
			name:    "configuration error without component",
			err:     &ConfigurationError{Key: "tag", Reason: "nope"},
			contain: []string{"tag", "nope"},
		},
		{
			name:    "precondition error",
			err:     &PreconditionError{Component: "Layout", Reason: "render predicate is false"},
			contain: []string{"Layout", "precondition"},
		},
		{
			name:    "reuse error",
			err:     &ReuseError{Component: "Panel", Op: "populate"},
			contain: []string{"Panel", "populate", "single-use"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contain {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, missing %q", msg, want)
				}
			}
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	cfgErr := fmt.Errorf("wrapped: %w", &ConfigurationError{Key: "k", Reason: "r"})
	preErr := fmt.Errorf("wrapped: %w", &PreconditionError{Component: "c"})
	reuseErr := fmt.Errorf("wrapped: %w", &ReuseError{Component: "c", Op: "render"})

	if !IsConfiguration(cfgErr) || IsConfiguration(preErr) {
		t.Error("IsConfiguration misclassifies")
	}
	if !IsPrecondition(preErr) || IsPrecondition(reuseErr) {
		t.Error("IsPrecondition misclassifies")
	}
	if !IsReuse(reuseErr) || IsReuse(cfgErr) {
		t.Error("IsReuse misclassifies")
	}
	if IsConfiguration(nil) || IsPrecondition(nil) || IsReuse(nil) {
		t.Error("helpers must be false for nil")
	}
}

func TestWrapEncodingError(t *testing.T) {
	tests := []struct {
		name   string
		in     error
		expect error
	}{
		{"nil passes through", nil, nil},
		{"invalid format", encoding.ErrInvalidFormat, ErrInvalidFormat},
		{"signature invalid", encoding.ErrSignatureInvalid, ErrSignatureInvalid},
		{"decrypt failed", encoding.ErrDecryptFailed, ErrDecryptFailed},
		{"unknown error unchanged", errors.New("other"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapEncodingError(tt.in)
			if tt.name == "unknown error unchanged" {
				if got != tt.in {
					t.Errorf("wrapEncodingError() = %v, want original", got)
				}
				return
			}
			if got != tt.expect {
				t.Errorf("wrapEncodingError() = %v, want %v", got, tt.expect)
			}
		})
	}
}
