package slotkit

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/a-h/templ"
)

// Definition describes a registered component type: a unique name and a
// builder that constructs an instance from a decoded config payload.
//
// Build receives the raw keyword configuration (as decoded from a preview
// link) and is responsible for mapping it onto the component's typed
// config, populating slots, and returning the configured instance ready
// to render. Build runs once per request; returned components are
// single-use, matching the component lifecycle.
type Definition struct {
	Name  string
	Build func(config map[string]any) (Component, error)
}

// Registry manages component definitions and serves rendered previews.
//
// Each definition is mounted at GET /{name}; the optional "p" query
// parameter carries a signed config payload produced by PreviewURL, so
// preview links are shareable but tamper-proof. GET / serves a plain
// index of registered names.
type Registry struct {
	mu      sync.RWMutex
	mux     *http.ServeMux
	encoder *Encoder
	defs    map[string]Definition

	// OnError is called when building or rendering a component fails.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// NewRegistry creates a new component registry with the given signing key.
func NewRegistry(key []byte) *Registry {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("slotkit: failed to create encoder: %v", err))
	}

	reg := &Registry{
		mux:     http.NewServeMux(),
		encoder: enc,
		defs:    make(map[string]Definition),
	}

	// Default error handler
	reg.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		switch {
		case err == ErrNotFound:
			http.Error(w, "Not found", http.StatusNotFound)
		case err == ErrSignatureInvalid || err == ErrInvalidFormat || err == ErrDecryptFailed:
			http.Error(w, "Bad request", http.StatusBadRequest)
		case IsConfiguration(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case IsPrecondition(err):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
	}

	reg.mux.HandleFunc("/", reg.handleIndex)
	return reg
}

// Encoder returns the registry's encoder.
func (reg *Registry) Encoder() *Encoder { return reg.encoder }

// Add registers component definitions.
// Panics on a missing name/builder or a name collision - these are
// programming errors in the catalog, caught at registration time.
func (reg *Registry) Add(defs ...Definition) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, def := range defs {
		if def.Name == "" || def.Build == nil {
			panic("slotkit: definition requires a name and a builder")
		}
		if _, exists := reg.defs[def.Name]; exists {
			panic(fmt.Sprintf("slotkit: definition collision for %q", def.Name))
		}
		reg.defs[def.Name] = def
		reg.mux.HandleFunc("/"+def.Name, reg.handlePreview(def))
	}
}

// Names returns the registered component names, sorted.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	names := make([]string, 0, len(reg.defs))
	for name := range reg.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PreviewURL returns a relative preview link for a registered component
// with the given config payload signed into the "p" parameter.
func (reg *Registry) PreviewURL(name string, config map[string]any) (string, error) {
	reg.mu.RLock()
	_, exists := reg.defs[name]
	reg.mu.RUnlock()
	if !exists {
		return "", ErrNotFound
	}
	if len(config) == 0 {
		return "/" + name, nil
	}
	encoded, err := reg.encoder.Encode(config, false)
	if err != nil {
		return "", err
	}
	return "/" + name + "?p=" + encoded, nil
}

// Handler returns the HTTP handler for preview routes.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		reg.mux.ServeHTTP(w, r)
	})
}

func (reg *Registry) handlePreview(def Definition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config := map[string]any{}
		if encoded := r.URL.Query().Get("p"); encoded != "" {
			decoded, err := reg.encoder.Decode(encoded, false)
			if err != nil {
				reg.OnError(w, r, wrapEncodingError(err))
				return
			}
			config = decoded
		}

		comp, err := def.Build(config)
		if err != nil {
			reg.OnError(w, r, err)
			return
		}

		node, err := comp.Render()
		if err != nil {
			reg.OnError(w, r, err)
			return
		}

		if err := WriteNode(w, r, node); err != nil {
			reg.OnError(w, r, err)
		}
	}
}

func (reg *Registry) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		reg.OnError(w, r, ErrNotFound)
		return
	}

	list := &Node{Tag: "ul", Attrs: templ.Attributes{"class": "slotkit-index"}}
	for _, name := range reg.Names() {
		list.Children = append(list.Children, Element("li", nil,
			Element("a", templ.Attributes{"href": "/" + name}, TextNode(name))))
	}
	_ = WriteNode(w, r, list)
}
