package slotkit

import (
	"errors"
	"fmt"

	"github.com/pthm/slotkit/lib/encoding"
)

// Sentinel errors surfaced by the preview-link codec.
var (
	ErrNotFound         = errors.New("slotkit: component not found")
	ErrDecryptFailed    = errors.New("slotkit: config decryption failed")
	ErrSignatureInvalid = errors.New("slotkit: signature verification failed")
	ErrInvalidFormat    = errors.New("slotkit: invalid config format")
)

// ConfigurationError reports a structural violation in caller-supplied
// configuration: a key the component forbids (because it fixes the
// attribute itself), an undeclared slot name, or a slot config of the
// wrong type.
//
// This is distinct from an invalid enumerated option value, which is
// never an error - options degrade to their default (see Option).
type ConfigurationError struct {
	Component string // component name, may be empty for bare SystemArgs
	Key       string // offending configuration key or slot name
	Reason    string
}

func (e *ConfigurationError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("slotkit: %s: configuration error: %s: %s", e.Component, e.Key, e.Reason)
	}
	return fmt.Sprintf("slotkit: configuration error: %s: %s", e.Key, e.Reason)
}

// PreconditionError reports a render attempted while the component's
// render predicate is false - typically a composite component with a
// mandatory slot left unpopulated. The component produced no output;
// callers that tolerate empty output should use RenderOptional instead
// of treating this as fatal.
type PreconditionError struct {
	Component string
	Reason    string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("slotkit: %s: render precondition not met: %s", e.Component, e.Reason)
}

// ReuseError reports a lifecycle violation: a second Render on the same
// instance, or slot population after the component has rendered.
// Components are single-use; build a fresh instance per render.
type ReuseError struct {
	Component string
	Op        string // "render" or "populate"
}

func (e *ReuseError) Error() string {
	return fmt.Sprintf("slotkit: %s: %s after render: component instances are single-use", e.Component, e.Op)
}

// IsConfiguration checks if err is a ConfigurationError.
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsPrecondition checks if err is a PreconditionError.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

// IsReuse checks if err is a ReuseError.
func IsReuse(err error) bool {
	var re *ReuseError
	return errors.As(err, &re)
}

// wrapEncodingError wraps encoding package errors with slotkit sentinels.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return ErrInvalidFormat
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}
