package ui

import (
	"github.com/a-h/templ"
	"github.com/pthm/slotkit"
)

// Button options. Defaults are validated against their allowed sets at
// package init.
var (
	buttonTag    = slotkit.NewOption("tag", "button", "button", "a", "summary")
	buttonScheme = slotkit.NewOption("scheme", "default", "default", "primary", "danger", "invisible")
	buttonSize   = slotkit.NewOption("size", "medium", "small", "medium", "large")
)

// ButtonConfig is the caller-supplied configuration for a Button.
// Tag, Scheme, and Size are enumerated options; values outside the
// allowed sets degrade to defaults.
type ButtonConfig struct {
	Tag    string // button, a, summary
	Scheme string // default, primary, danger, invisible
	Size   string // small, medium, large
	Block  bool   // full-width
	Label  string
	Attrs  templ.Attributes
}

// Button is a leaf component: no slots, inline label content.
type Button struct {
	*slotkit.Base
}

// NewButton constructs a Button. The "type" attribute is fixed by the
// component for button tags and cannot be supplied through Attrs.
func NewButton(cfg ButtonConfig) (*Button, error) {
	tag := buttonTag.Resolve(cfg.Tag)
	scheme := buttonScheme.Resolve(cfg.Scheme)
	size := buttonSize.Resolve(cfg.Size)

	b := slotkit.NewBase("Button", tag)
	if err := b.DisallowAttrs(cfg.Attrs, "type"); err != nil {
		return nil, err
	}

	b.Args().MergeClasses(
		"btn",
		slotkit.When("btn-"+scheme, scheme != "default"),
		slotkit.When("btn-sm", size == "small"),
		slotkit.When("btn-lg", size == "large"),
		slotkit.When("btn-block", cfg.Block),
	)
	if tag == "button" {
		b.Args().Set("type", "button")
	}
	b.Args().SetAll(cfg.Attrs)

	if cfg.Label != "" {
		b.AppendContent(slotkit.TextNode(cfg.Label))
	}
	return &Button{Base: b}, nil
}
