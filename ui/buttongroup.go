package ui

import (
	"github.com/a-h/templ"
	"github.com/pthm/slotkit"
)

// ButtonGroupConfig is the caller-supplied configuration for a ButtonGroup.
type ButtonGroupConfig struct {
	Size  string // applied to every button in the group
	Attrs templ.Attributes
}

// ButtonGroup renders an ordered sequence of buttons. Its "buttons" slot
// has Many cardinality: each AddButton call appends, and render order is
// population order.
type ButtonGroup struct {
	*slotkit.Base
	size string
}

// NewButtonGroup constructs a ButtonGroup.
func NewButtonGroup(cfg ButtonGroupConfig) (*ButtonGroup, error) {
	b := slotkit.NewBase("ButtonGroup", "div")
	size := buttonSize.Resolve(cfg.Size)

	b.Args().MergeClasses("ButtonGroup")
	b.Args().Set("role", "group")
	b.Args().SetAll(cfg.Attrs)

	g := &ButtonGroup{Base: b, size: size}
	slotkit.DeclareSlot(g.Base, "buttons", slotkit.Many,
		func(bc ButtonConfig, _ slotkit.ParentRef) (slotkit.Component, error) {
			// The group's size wins over per-button size.
			bc.Size = g.size
			return NewButton(bc)
		})
	return g, nil
}

// AddButton appends a button to the group.
func (g *ButtonGroup) AddButton(cfg ButtonConfig) error {
	_, err := slotkit.Populate(g.Base, "buttons", cfg)
	return err
}
