package slotkit

import (
	"net/http"

	"github.com/a-h/templ"
)

// RenderOptional renders a component, mapping the predicate-false case to
// (nil, nil) instead of a PreconditionError.
//
// Use this where "component produced no output" is an expected outcome
// the page assembler handles - a composite layout whose mandatory regions
// were never populated simply contributes nothing:
//
//	node, err := slotkit.RenderOptional(layout)
//	if err != nil {
//	    return err
//	}
//	if node == nil {
//	    // no output for this component
//	}
//
// All other errors, ReuseError included, propagate unmodified.
func RenderOptional(c Component) (*Node, error) {
	node, err := c.Render()
	if err != nil {
		if IsPrecondition(err) {
			return nil, nil
		}
		return nil, err
	}
	return node, nil
}

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders using the request's context.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    node, _ := dialog.Render()
//	    slotkit.Render(w, r, node.Templ())
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// WriteNode renders a resolved node tree to the HTTP response.
func WriteNode(w http.ResponseWriter, r *http.Request, node *Node) error {
	if node == nil {
		return nil
	}
	return Render(w, r, node.Templ())
}
