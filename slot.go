package slotkit

import "fmt"

// Cardinality selects how many children a slot holds.
type Cardinality uint8

const (
	// One holds at most a single child; repopulating replaces it.
	One Cardinality = iota
	// Many holds an ordered, unbounded sequence; repopulating appends.
	Many
)

// String returns the string representation of the Cardinality.
func (c Cardinality) String() string {
	switch c {
	case One:
		return "one"
	case Many:
		return "many"
	default:
		return "unknown"
	}
}

// slot is the per-instance state of one declared slot.
type slot struct {
	name    string
	card    Cardinality
	factory func(cfg any, parent ParentRef) (Component, error)
	single  Component
	filled  bool
	items   []Component
}

func (s *slot) children() []Component {
	if s.card == Many {
		return s.items
	}
	if s.filled {
		return []Component{s.single}
	}
	return nil
}

// DeclareSlot declares a named slot on a component during construction.
//
// The factory builds the child component from the caller's typed slot
// config. It also receives the parent's ParentRef: factories for slots
// that must contribute structural classes to the parent wrapper (header,
// footer, pane) append them through it, and factories with no such need
// simply ignore it.
//
//	slotkit.DeclareSlot(d.Base, "header", slotkit.One,
//	    func(cfg HeaderConfig, parent slotkit.ParentRef) (slotkit.Component, error) {
//	        parent.AppendClasses("Dialog--withHeader")
//	        return newDialogHeader(cfg)
//	    })
//
// Declaration order is render order. Declaring the same name twice is a
// programming error in the component definition and panics.
func DeclareSlot[C any](b *Base, name string, card Cardinality, factory func(cfg C, parent ParentRef) (Component, error)) {
	if _, exists := b.byName[name]; exists {
		panic(fmt.Sprintf("slotkit: %s: slot %q declared twice", b.name, name))
	}
	s := &slot{
		name: name,
		card: card,
		factory: func(cfg any, parent ParentRef) (Component, error) {
			typed, ok := cfg.(C)
			if !ok {
				var want C
				return nil, &ConfigurationError{
					Component: b.name,
					Key:       name,
					Reason:    fmt.Sprintf("slot config must be %T, got %T", want, cfg),
				}
			}
			return factory(typed, parent)
		},
	}
	b.slots = append(b.slots, s)
	b.byName[name] = s
}

// Populate fills a declared slot with a child built from cfg by the
// slot's factory and returns the child.
//
// For a One slot the last call wins, replacing any previous child. For a
// Many slot each call appends; population order is preserved on render.
//
// Errors: an undeclared slot name or a config of the wrong type is a
// ConfigurationError; populating after the component has rendered is a
// ReuseError; factory errors propagate unmodified. A failed Populate
// leaves the slot's previous state intact.
func Populate[C any](b *Base, name string, cfg C) (Component, error) {
	if b.state == stateRendered {
		return nil, &ReuseError{Component: b.name, Op: "populate"}
	}
	s, ok := b.byName[name]
	if !ok {
		return nil, &ConfigurationError{Component: b.name, Key: name, Reason: "slot is not declared"}
	}

	b.state = stateConfiguring
	child, err := s.factory(cfg, b.ParentRef())
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, &ConfigurationError{Component: b.name, Key: name, Reason: "slot factory returned no component"}
	}

	if s.card == Many {
		s.items = append(s.items, child)
	} else {
		s.single = child
		s.filled = true
	}
	return child, nil
}
