// Package slotkit provides the configuration and composition engine for
// building declarative, server-rendered UI components in Go.
//
// slotkit is the shared substrate a design-system component library is
// built on. Every component follows the same contract: caller-supplied
// configuration is validated against enumerated option sets with safe
// fallback, CSS class and attribute state is merged across the component
// and its named child regions ("slots"), and the assembled tree of
// sub-components is resolved into a single render output handed to the
// templ rendering layer.
//
// # Core Concepts
//
// Components embed *Base and are constructed from a typed config struct.
// Construction resolves every enumerated option via Option, composes the
// canonical class string via ClassNames, and stores the result in the
// component's SystemArgs:
//
//	type Banner struct {
//	    *slotkit.Base
//	}
//
//	var bannerScheme = slotkit.NewOption("scheme", "default", "default", "warning", "danger")
//
//	func NewBanner(cfg BannerConfig) (*Banner, error) {
//	    b := slotkit.NewBase("Banner", "div")
//	    scheme := bannerScheme.Resolve(cfg.Scheme)
//	    b.Args().MergeClasses("Banner", slotkit.When("Banner--"+scheme, scheme != "default"))
//	    b.Args().SetAll(cfg.Attrs)
//	    return &Banner{Base: b}, nil
//	}
//
// Invalid option values never fail a render - they degrade to the
// option's default. Structural violations (a caller overriding an
// attribute the component fixes, rendering an unsatisfied composite,
// reusing a rendered instance) surface as typed errors:
// ConfigurationError, PreconditionError, ReuseError.
//
// # Slots
//
// Slots are named, typed extension points declared at construction with
// DeclareSlot and filled by callers through Populate. A One slot holds at
// most a single child (last call wins); a Many slot holds an ordered
// sequence. Slot factories may receive the parent's ParentRef, a
// restricted handle that permits exactly one cross-component write:
// appending class tokens to the parent wrapper. Header, footer, and pane
// slots use it to contribute structural markers like "Dialog--withHeader".
//
// A component's render predicate gates output on slot presence. A
// composite layout that requires two regions renders nothing - failing
// with PreconditionError, or returning no output via RenderOptional -
// until both are populated.
//
// # Lifecycle
//
// Each instance moves Constructed -> Configuring -> Rendered, and
// Rendered is terminal: components are single-use per render pass, and
// reuse fails fast with ReuseError.
//
// # Rendering
//
// Render produces a *Node tree: tag, final attribute map, ordered
// children. The tree is fully resolved and deterministic - class tokens
// dedup with first occurrence winning, attributes write in sorted order -
// so markup snapshots are stable across runs. Node.Templ adapts the tree
// to a templ.Component for the rendering layer.
//
// # Previews
//
// Registry mounts registered component definitions on an HTTP handler
// for catalog preview pages, with config payloads carried in signed
// (tamper-proof) URL parameters. See the ui package for the component
// catalog and cmd/slotkit for the preview server.
package slotkit
