package ui

import (
	"github.com/a-h/templ"
	"github.com/pthm/slotkit"
	"github.com/pthm/slotkit/theme"
)

// Layout options. Resolved values index into the theme token tables.
var (
	layoutGutter   = slotkit.NewOption("gutter", "normal", "none", "condensed", "normal", "spacious")
	layoutSpacing  = slotkit.NewOption("spacing", "normal", "none", "condensed", "normal")
	layoutStacking = slotkit.NewOption("stacking", "stack", "stack", "separate")
	panePosition   = slotkit.NewOption("position", "end", "start", "end")
	paneWidth      = slotkit.NewOption("width", "default", "default", "narrow", "wide")
)

// LayoutConfig is the caller-supplied configuration for a Layout.
// A nil Theme uses theme.Default().
type LayoutConfig struct {
	Gutter   string // none, condensed, normal, spacious
	Spacing  string // none, condensed, normal
	Stacking string // stack, separate
	Theme    *theme.Theme
	Attrs    templ.Attributes
}

// LayoutMainConfig configures the main region.
type LayoutMainConfig struct {
	Nodes []*slotkit.Node
	Attrs templ.Attributes
}

// LayoutPaneConfig configures the pane region. Position contributes a
// positioning class to the layout wrapper via the sanctioned ParentRef
// cross-write; Width resolves through the theme's pane-width table on
// the pane element itself.
type LayoutPaneConfig struct {
	Position string // start, end
	Width    string // default, narrow, wide
	Nodes    []*slotkit.Node
	Attrs    templ.Attributes
}

// Layout is the two-region composite: a main region and a pane. Its
// render predicate requires both slots - with either missing the layout
// produces no output ("no partial render"), surfacing as a
// PreconditionError from Render or a nil node from RenderOptional.
type Layout struct {
	*slotkit.Base
	theme *theme.Theme
}

// NewLayout constructs a Layout.
func NewLayout(cfg LayoutConfig) (*Layout, error) {
	th := cfg.Theme
	if th == nil {
		th = theme.Default()
	}

	gutter := layoutGutter.Resolve(cfg.Gutter)
	spacing := layoutSpacing.Resolve(cfg.Spacing)
	stacking := layoutStacking.Resolve(cfg.Stacking)

	b := slotkit.NewBase("Layout", "div")
	b.Args().MergeClasses(
		"LayoutBeta",
		th.GutterClass(gutter),
		th.SpacingClass(spacing),
		th.StackingClass(stacking),
	)
	b.Args().SetAll(cfg.Attrs)

	l := &Layout{Base: b, theme: th}

	slotkit.DeclareSlot(l.Base, "main", slotkit.One,
		func(mc LayoutMainConfig, _ slotkit.ParentRef) (slotkit.Component, error) {
			return newLayoutRegion("LayoutMain", "LayoutBeta-main", mc.Attrs, mc.Nodes), nil
		})

	slotkit.DeclareSlot(l.Base, "pane", slotkit.One,
		func(pc LayoutPaneConfig, parent slotkit.ParentRef) (slotkit.Component, error) {
			position := panePosition.Resolve(pc.Position)
			width := paneWidth.Resolve(pc.Width)
			parent.AppendClasses("LayoutBeta--panePos-" + position)
			region := newLayoutRegion("LayoutPane", "LayoutBeta-pane", pc.Attrs, pc.Nodes)
			region.Args().AppendClasses(l.theme.PaneWidthClass(width))
			return region, nil
		})

	l.RenderWhen(func() bool {
		return l.Present("main") && l.Present("pane")
	})
	return l, nil
}

// WithMain fills the main region.
func (l *Layout) WithMain(cfg LayoutMainConfig) error {
	_, err := slotkit.Populate(l.Base, "main", cfg)
	return err
}

// WithPane fills the pane region.
func (l *Layout) WithPane(cfg LayoutPaneConfig) error {
	_, err := slotkit.Populate(l.Base, "pane", cfg)
	return err
}

type layoutRegion struct {
	*slotkit.Base
}

func newLayoutRegion(name, class string, attrs templ.Attributes, nodes []*slotkit.Node) *layoutRegion {
	b := slotkit.NewBase(name, "div")
	b.Args().MergeClasses(class)
	b.Args().SetAll(attrs)
	b.AppendContent(nodes...)
	return &layoutRegion{Base: b}
}
