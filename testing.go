package slotkit

import "strings"

// TestResult holds the result of rendering a component for testing.
//
// Provides convenience methods for asserting on the resolved tree and
// its markup without hand-walking nodes in every test.
type TestResult struct {
	Node *Node
	HTML string
}

// RenderTest renders a component and returns testable output.
//
//	result, err := slotkit.RenderTest(dialog)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	if !result.HasClass("Dialog--withHeader") {
//	    t.Error("missing header marker class")
//	}
//
// Render errors (PreconditionError, ReuseError, child failures) return
// unmodified; use RenderOptional directly when testing the tolerate-empty
// path.
func RenderTest(c Component) (*TestResult, error) {
	node, err := c.Render()
	if err != nil {
		return nil, err
	}
	return &TestResult{Node: node, HTML: node.HTML()}, nil
}

// HTMLContains checks if the rendered HTML contains the given string.
func (tr *TestResult) HTMLContains(s string) bool {
	return strings.Contains(tr.HTML, s)
}

// RootTag returns the root node's tag.
func (tr *TestResult) RootTag() string {
	return tr.Node.Tag
}

// RootClasses returns the root node's composed class string.
func (tr *TestResult) RootClasses() string {
	if v, ok := tr.Node.Attrs["class"].(string); ok {
		return v
	}
	return ""
}

// HasClass checks if the root node's class string contains the token.
func (tr *TestResult) HasClass(token string) bool {
	for _, t := range strings.Fields(tr.RootClasses()) {
		if t == token {
			return true
		}
	}
	return false
}

// Attr returns the root node's attribute value as a string.
func (tr *TestResult) Attr(key string) string {
	if v, ok := tr.Node.Attrs[key].(string); ok {
		return v
	}
	return ""
}

// ChildCount returns the number of direct children of the root node.
func (tr *TestResult) ChildCount() int {
	return len(tr.Node.Children)
}

// Child returns the i-th direct child of the root node, or nil if out of
// range.
func (tr *TestResult) Child(i int) *Node {
	if i < 0 || i >= len(tr.Node.Children) {
		return nil
	}
	return tr.Node.Children[i]
}
