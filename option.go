package slotkit

import (
	"fmt"
	"log/slog"
)

// Option is an enumerated configuration option: a set of allowed values
// and a default that is itself a member of the set.
//
// Options are declared once per component type (typically as package-level
// vars) and resolved exactly once, at component construction:
//
//	var buttonScheme = NewOption("scheme", "default", "default", "primary", "danger", "invisible")
//
//	scheme := buttonScheme.Resolve(cfg.Scheme)
//
// Resolution never fails: a candidate outside the allowed set degrades to
// the default. This is the documented leniency policy - malformed caller
// input produces default styling rather than a failed render.
type Option[T comparable] struct {
	name    string
	def     T
	allowed []T
}

// NewOption declares an enumerated option.
//
// Panics if def is not a member of allowed. A default outside its own
// allowed set is a programming error in the component definition, so it
// is caught when the definition is evaluated (package init), never per
// call.
func NewOption[T comparable](name string, def T, allowed ...T) Option[T] {
	o := Option[T]{name: name, def: def, allowed: allowed}
	if !o.member(def) {
		panic(fmt.Sprintf("slotkit: option %q: default %v is not in the allowed set %v", name, def, allowed))
	}
	return o
}

// Name returns the option's declared name.
func (o Option[T]) Name() string { return o.name }

// Default returns the option's default value.
func (o Option[T]) Default() T { return o.def }

// Allowed returns the allowed value set in declaration order.
func (o Option[T]) Allowed() []T {
	out := make([]T, len(o.allowed))
	copy(out, o.allowed)
	return out
}

// Resolve returns candidate if it is a member of the allowed set, and the
// default otherwise. It never fails; the fallback path emits a debug-level
// diagnostic only.
func (o Option[T]) Resolve(candidate T) T {
	if o.member(candidate) {
		return candidate
	}
	var zero T
	if candidate == zero {
		// Unset, not invalid - the common path for zero-valued config
		// fields. No diagnostic.
		return o.def
	}
	slog.Debug("slotkit: option fallback",
		"option", o.name,
		"candidate", fmt.Sprintf("%v", candidate),
		"default", fmt.Sprintf("%v", o.def))
	return o.def
}

func (o Option[T]) member(v T) bool {
	for _, a := range o.allowed {
		if a == v {
			return true
		}
	}
	return false
}
