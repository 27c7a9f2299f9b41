package slotkit

import (
	"sort"

	"github.com/a-h/templ"
)

// SystemArgs is the canonical configuration bag attached to every
// component instance: the rendered tag, the composed class string, and
// free-form HTML attributes (ARIA, data-*, etc.).
//
// SystemArgs is owned by the component that created it and is mutated
// only during construction and slot resolution. The single sanctioned
// exception is ParentRef, the narrow handle a slot factory may receive
// to append class tokens to its parent's bag (a header slot marking its
// parent with "Dialog--withHeader", for example).
//
// SystemArgs is not safe for concurrent use; a component instance is
// owned by the single render that builds it.
type SystemArgs struct {
	tag     string
	classes string
	attrs   templ.Attributes
}

// NewSystemArgs creates a bag with the given tag and no attributes.
func NewSystemArgs(tag string) *SystemArgs {
	return &SystemArgs{tag: tag, attrs: templ.Attributes{}}
}

// Disallow fails with a ConfigurationError if any of keys is present in
// the caller-supplied attribute map. Components call this where they fix
// an attribute structurally and must not let the caller override it:
//
//	if err := args.Disallow(cfg.Attrs, "role"); err != nil {
//	    return nil, err
//	}
//
// Keys are checked in the order given; the first match is reported.
func (a *SystemArgs) Disallow(raw templ.Attributes, keys ...string) error {
	for _, key := range keys {
		if _, present := raw[key]; present {
			return &ConfigurationError{Key: key, Reason: "attribute is fixed by the component and cannot be overridden"}
		}
	}
	return nil
}

// SetTag sets the rendered element kind. Last write wins.
func (a *SystemArgs) SetTag(tag string) { a.tag = tag }

// Tag returns the rendered element kind.
func (a *SystemArgs) Tag() string { return a.tag }

// Set assigns an attribute. Last write wins for repeated keys. The
// "class" key is reserved; use MergeClasses or AppendClasses so class
// state always flows through the composer.
func (a *SystemArgs) Set(key string, value any) {
	if key == "class" {
		a.MergeClasses(a.classes, value)
		return
	}
	a.attrs[key] = value
}

// SetAll assigns every attribute in raw, in sorted key order so repeated
// application is deterministic. Reserved keys route as in Set.
func (a *SystemArgs) SetAll(raw templ.Attributes) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.Set(k, raw[k])
	}
}

// MergeClasses composes the given contributions with ClassNames and
// stores the result as the bag's class entry, replacing any previous
// value. Include the current value explicitly to extend rather than
// replace:
//
//	args.MergeClasses(args.Classes(), "Dialog-footer")
func (a *SystemArgs) MergeClasses(contributions ...any) {
	a.classes = ClassNames(contributions...)
}

// AppendClasses composes the given contributions onto the end of the
// existing class entry. Duplicate tokens collapse to their first
// occurrence, so appending an already-present token is a no-op.
func (a *SystemArgs) AppendClasses(contributions ...any) {
	merged := make([]any, 0, len(contributions)+1)
	merged = append(merged, a.classes)
	merged = append(merged, contributions...)
	a.classes = ClassNames(merged...)
}

// Classes returns the composed class string.
func (a *SystemArgs) Classes() string { return a.classes }

// Get returns the value of a free-form attribute.
func (a *SystemArgs) Get(key string) (any, bool) {
	v, ok := a.attrs[key]
	return v, ok
}

// Attributes returns the final attribute map for rendering, with the
// composed class string folded in under "class" when non-empty. The
// returned map is a copy; mutating it does not affect the bag.
func (a *SystemArgs) Attributes() templ.Attributes {
	out := make(templ.Attributes, len(a.attrs)+1)
	for k, v := range a.attrs {
		out[k] = v
	}
	if a.classes != "" {
		out["class"] = a.classes
	}
	return out
}

// ParentRef is the restricted mutator handle a slot factory receives for
// its parent's SystemArgs. It permits exactly one operation - appending
// class tokens - bounding the blast radius of cross-component mutation.
// The zero ParentRef is valid and ignores all writes.
type ParentRef struct {
	args *SystemArgs
}

// AppendClasses appends class contributions to the parent's composed
// class string. Appending the same token twice is a no-op, so a slot
// factory can write its marker class unconditionally.
func (p ParentRef) AppendClasses(contributions ...any) {
	if p.args == nil {
		return
	}
	p.args.AppendClasses(contributions...)
}
