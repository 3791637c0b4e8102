package renderer

import (
	"sort"
	"sync"

	"github.com/contentkit/richhtml/pkg/errors"
	"github.com/contentkit/richhtml/pkg/logging"
	"github.com/contentkit/richhtml/pkg/richtext"
)

// Priority bands for renderer resolution. Lower values win. The fallback
// sits strictly above everything else so that caller extensions at the
// default priority are always reachable for nodes the built-ins don't
// claim.
const (
	PriorityOverride = 0
	PriorityDefault  = 100
	PriorityFallback = 1000
)

// Renderer produces an HTML fragment for the node variants it claims.
type Renderer interface {
	// Name identifies the renderer in logs and errors.
	Name() string

	// Priority orders resolution; lower values are consulted first.
	Priority() int

	// Matches reports whether this renderer handles the given node.
	Matches(node richtext.Node) bool

	// Render produces the HTML fragment for node. Composite renderers
	// delegate child nodes back through ctx so that custom renderers
	// apply at any depth.
	Render(ctx *Context, node richtext.Node) (string, error)
}

// registration pairs a renderer with its insertion sequence so equal
// priorities keep registration order.
type registration struct {
	seq      int
	renderer Renderer
}

// Registry is the ordered collection of renderers plus the resolution
// rule that picks one for a given node. Construct it with New, which
// installs the built-in renderers and the fallback.
type Registry struct {
	mu      sync.RWMutex
	opts    Options
	entries []registration
	nextSeq int
}

// New creates a Registry with the built-in renderers installed. The
// registry is long-lived: build it once, extend it if needed, then reuse
// it across documents.
func New(opts Options) *Registry {
	r := &Registry{opts: opts}
	r.Register(NewTextRenderer())
	r.Register(NewParagraphRenderer())
	r.Register(NewHeadingRenderer())
	r.Register(NewHyperlinkRenderer())
	r.Register(NewAssetRenderer())
	r.Register(NewFallbackRenderer())
	return r
}

// Options returns the rendering options the registry was built with.
func (r *Registry) Options() Options {
	return r.opts
}

// Register appends a renderer. Duplicate claims are allowed; among
// renderers with equal priority the one registered first wins. Register
// must not run concurrently with renders.
func (r *Registry) Register(rend Renderer) {
	logger := logging.GetLogger("renderer.registry")

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, registration{seq: r.nextSeq, renderer: rend})
	r.nextSeq++

	// Keep the list resolution-ordered: ascending priority, insertion
	// sequence breaks ties.
	sort.SliceStable(r.entries, func(i, j int) bool {
		pi, pj := r.entries[i].renderer.Priority(), r.entries[j].renderer.Priority()
		if pi != pj {
			return pi < pj
		}
		return r.entries[i].seq < r.entries[j].seq
	})

	logger.Debug().
		Str("renderer", rend.Name()).
		Int("priority", rend.Priority()).
		Int("registered", len(r.entries)).
		Msg("renderer registered")
}

// Resolve returns the renderer to use for node: the first renderer in
// priority order whose Matches predicate accepts it. With the built-in
// fallback installed this cannot fail for a non-nil node; a failure
// signals a misconfigured registry and is reported, never swallowed.
func (r *Registry) Resolve(node richtext.Node) (Renderer, error) {
	if node == nil {
		return nil, errors.New(errors.ErrInvalidNode, "cannot resolve a nil node")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.renderer.Matches(node) {
			return e.renderer, nil
		}
	}
	return nil, errors.Newf(errors.ErrNoRenderer, "no renderer matches node of type %T (registry misconfigured: fallback missing?)", node)
}
