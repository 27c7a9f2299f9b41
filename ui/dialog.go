package ui

import (
	"github.com/a-h/templ"
	"github.com/pthm/slotkit"
)

var dialogWidth = slotkit.NewOption("width", "medium", "auto", "small", "medium", "large", "xlarge")

// DialogConfig is the caller-supplied configuration for a Dialog.
type DialogConfig struct {
	Width string // auto, small, medium, large, xlarge
	Attrs templ.Attributes
}

// DialogHeaderConfig configures the header slot. Divider contributes a
// single structural marker class to the dialog wrapper itself, which is
// why the header factory holds the parent's ParentRef.
type DialogHeaderConfig struct {
	Title   string
	Divider bool
	Attrs   templ.Attributes
}

// DialogBodyConfig configures the body slot.
type DialogBodyConfig struct {
	Text  string
	Nodes []*slotkit.Node // arbitrary pre-built content, appended after Text
	Attrs templ.Attributes
}

// DialogFooterConfig configures the footer slot.
type DialogFooterConfig struct {
	Divider bool
	Buttons []ButtonConfig
	Attrs   templ.Attributes
}

// Dialog is a composite component with One-cardinality header, body, and
// footer slots. The header and footer factories cross-write structural
// marker classes ("Dialog--withHeader", divider variants) onto the dialog
// wrapper through ParentRef - the one sanctioned mutation-at-a-distance
// in the engine.
type Dialog struct {
	*slotkit.Base
}

// NewDialog constructs a Dialog. The "role" attribute is fixed to
// "dialog" and cannot be supplied through Attrs.
func NewDialog(cfg DialogConfig) (*Dialog, error) {
	width := dialogWidth.Resolve(cfg.Width)

	b := slotkit.NewBase("Dialog", "div")
	if err := b.DisallowAttrs(cfg.Attrs, "role"); err != nil {
		return nil, err
	}

	b.Args().MergeClasses("Dialog", "Dialog--width-"+width)
	b.Args().Set("role", "dialog")
	b.Args().SetAll(cfg.Attrs)

	d := &Dialog{Base: b}

	slotkit.DeclareSlot(d.Base, "header", slotkit.One,
		func(hc DialogHeaderConfig, parent slotkit.ParentRef) (slotkit.Component, error) {
			parent.AppendClasses(
				"Dialog--withHeader",
				slotkit.When("Dialog--withHeaderDivider", hc.Divider),
			)
			return newDialogHeader(hc)
		})

	slotkit.DeclareSlot(d.Base, "body", slotkit.One,
		func(bc DialogBodyConfig, _ slotkit.ParentRef) (slotkit.Component, error) {
			return newDialogBody(bc)
		})

	slotkit.DeclareSlot(d.Base, "footer", slotkit.One,
		func(fc DialogFooterConfig, parent slotkit.ParentRef) (slotkit.Component, error) {
			parent.AppendClasses(
				"Dialog--withFooter",
				slotkit.When("Dialog--withFooterDivider", fc.Divider),
			)
			return newDialogFooter(fc)
		})

	return d, nil
}

// WithHeader fills the header slot. A second call replaces the first.
func (d *Dialog) WithHeader(cfg DialogHeaderConfig) error {
	_, err := slotkit.Populate(d.Base, "header", cfg)
	return err
}

// WithBody fills the body slot.
func (d *Dialog) WithBody(cfg DialogBodyConfig) error {
	_, err := slotkit.Populate(d.Base, "body", cfg)
	return err
}

// WithFooter fills the footer slot.
func (d *Dialog) WithFooter(cfg DialogFooterConfig) error {
	_, err := slotkit.Populate(d.Base, "footer", cfg)
	return err
}

type dialogHeader struct {
	*slotkit.Base
}

func newDialogHeader(cfg DialogHeaderConfig) (*dialogHeader, error) {
	b := slotkit.NewBase("DialogHeader", "header")
	b.Args().MergeClasses("Dialog-header")
	b.Args().SetAll(cfg.Attrs)
	if cfg.Title != "" {
		b.AppendContent(slotkit.Element("h1",
			templ.Attributes{"class": "Dialog-title"},
			slotkit.TextNode(cfg.Title)))
	}
	return &dialogHeader{Base: b}, nil
}

type dialogBody struct {
	*slotkit.Base
}

func newDialogBody(cfg DialogBodyConfig) (*dialogBody, error) {
	b := slotkit.NewBase("DialogBody", "div")
	b.Args().MergeClasses("Dialog-body")
	b.Args().SetAll(cfg.Attrs)
	if cfg.Text != "" {
		b.AppendContent(slotkit.TextNode(cfg.Text))
	}
	b.AppendContent(cfg.Nodes...)
	return &dialogBody{Base: b}, nil
}

type dialogFooter struct {
	*slotkit.Base
}

func newDialogFooter(cfg DialogFooterConfig) (*dialogFooter, error) {
	b := slotkit.NewBase("DialogFooter", "footer")
	b.Args().MergeClasses("Dialog-footer")
	b.Args().SetAll(cfg.Attrs)

	f := &dialogFooter{Base: b}
	slotkit.DeclareSlot(f.Base, "buttons", slotkit.Many,
		func(bc ButtonConfig, _ slotkit.ParentRef) (slotkit.Component, error) {
			return NewButton(bc)
		})
	for _, bc := range cfg.Buttons {
		if _, err := slotkit.Populate(f.Base, "buttons", bc); err != nil {
			return nil, err
		}
	}
	return f, nil
}
