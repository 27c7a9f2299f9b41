package slotkit

import (
	"errors"

	"github.com/a-h/templ"
)

// Component is the composition unit: anything that can render itself to
// a resolved Node tree. Concrete components embed *Base to gain slot
// management, the SystemArgs bag, and the render lifecycle.
//
// Example:
//
//	type Banner struct {
//	    *slotkit.Base
//	}
//
//	func NewBanner(cfg BannerConfig) (*Banner, error) {
//	    b := slotkit.NewBase("Banner", "div")
//	    b.Args().MergeClasses("Banner", slotkit.When("Banner--full", cfg.Full))
//	    if err := b.Args().Disallow(cfg.Attrs, "role"); err != nil {
//	        return nil, err
//	    }
//	    b.Args().SetAll(cfg.Attrs)
//	    return &Banner{Base: b}, nil
//	}
//
// A component instance moves through three lifecycle states:
// constructed, configuring (slots being populated), rendered (terminal).
// Render is single-use; a second Render or a Populate after Render fails
// with a ReuseError.
type Component interface {
	Render() (*Node, error)
}

type lifecycleState uint8

const (
	stateConstructed lifecycleState = iota
	stateConfiguring
	stateRendered
)

// Base is the embedded core of every component: resolved SystemArgs,
// declared slots, the render predicate, and the lifecycle state machine.
type Base struct {
	name      string
	args      *SystemArgs
	slots     []*slot // declaration order
	byName    map[string]*slot
	content   []*Node // inline content, rendered before slot children
	predicate func() bool
	state     lifecycleState
}

// NewBase creates the component core with the given component name (used
// in error messages and diagnostics) and rendered tag.
//
// Construction never touches slots: declare them immediately after with
// DeclareSlot, and let callers fill them with Populate.
func NewBase(name, tag string) *Base {
	return &Base{
		name:   name,
		args:   NewSystemArgs(tag),
		byName: make(map[string]*slot),
	}
}

// Name returns the component name.
func (b *Base) Name() string { return b.name }

// Args returns the component's SystemArgs bag. The bag is meant to be
// mutated during construction and slot resolution only.
func (b *Base) Args() *SystemArgs { return b.args }

// DisallowAttrs is SystemArgs.Disallow with the component name attached
// to the resulting ConfigurationError.
func (b *Base) DisallowAttrs(raw templ.Attributes, keys ...string) error {
	if err := b.args.Disallow(raw, keys...); err != nil {
		var ce *ConfigurationError
		if errors.As(err, &ce) {
			ce.Component = b.name
		}
		return err
	}
	return nil
}

// ParentRef returns the restricted mutator handle for this component's
// SystemArgs, for granting to slot factories that contribute structural
// classes to their parent wrapper.
func (b *Base) ParentRef() ParentRef { return ParentRef{args: b.args} }

// RenderWhen installs the render predicate. The default (no predicate)
// is always-true; composite components install one to require mandatory
// slots:
//
//	b.RenderWhen(func() bool { return b.Present("main") && b.Present("pane") })
func (b *Base) RenderWhen(predicate func() bool) {
	b.predicate = predicate
}

// AppendContent appends inline content nodes, rendered before any slot
// children. Used by leaf components for label text and the like.
func (b *Base) AppendContent(nodes ...*Node) {
	for _, n := range nodes {
		if n != nil {
			b.content = append(b.content, n)
		}
	}
}

// Present reports whether the named slot is populated: a single slot with
// a resolved child, or a many slot with a non-empty sequence. Undeclared
// names report false.
func (b *Base) Present(name string) bool {
	s, ok := b.byName[name]
	if !ok {
		return false
	}
	if s.card == Many {
		return len(s.items) > 0
	}
	return s.filled
}

// Render checks the render predicate and assembles the resolved tree:
// the component's own tag and attributes, inline content, then slot
// children in declaration order (population order within a many slot).
//
// Fails with a PreconditionError when the predicate is false (see
// RenderOptional for callers that tolerate empty output) and with a
// ReuseError on a second call. Child render errors propagate unmodified.
func (b *Base) Render() (*Node, error) {
	if b.state == stateRendered {
		return nil, &ReuseError{Component: b.name, Op: "render"}
	}
	if b.predicate != nil && !b.predicate() {
		return nil, &PreconditionError{Component: b.name, Reason: "render predicate is false"}
	}
	b.state = stateRendered

	node := &Node{Tag: b.args.Tag(), Attrs: b.args.Attributes()}
	node.Children = append(node.Children, b.content...)

	for _, s := range b.slots {
		for _, child := range s.children() {
			cn, err := child.Render()
			if err != nil {
				return nil, err
			}
			if cn != nil {
				node.Children = append(node.Children, cn)
			}
		}
	}
	return node, nil
}
