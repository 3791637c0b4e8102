package renderer

import "github.com/contentkit/richhtml/pkg/richtext"

// Func is a Renderer built from plain functions, for callers who want to
// register custom rendering without defining a type.
type Func struct {
	name     string
	priority int
	matches  func(richtext.Node) bool
	render   func(*Context, richtext.Node) (string, error)
}

// NewFunc builds a function-backed renderer. matches and render must be
// non-nil; a nil matches would make the renderer either dead or an
// accidental catch-all, so both cases panic at construction instead of
// misresolving later.
func NewFunc(name string, priority int, matches func(richtext.Node) bool, render func(*Context, richtext.Node) (string, error)) *Func {
	if matches == nil {
		panic("renderer.NewFunc: nil matches predicate")
	}
	if render == nil {
		panic("renderer.NewFunc: nil render func")
	}
	return &Func{name: name, priority: priority, matches: matches, render: render}
}

// Name returns the unique name of this renderer
func (f *Func) Name() string {
	return f.name
}

// Priority returns the resolution priority of this renderer
func (f *Func) Priority() int {
	return f.priority
}

// Matches reports whether the wrapped predicate accepts node
func (f *Func) Matches(node richtext.Node) bool {
	return f.matches(node)
}

// Render invokes the wrapped render function
func (f *Func) Render(ctx *Context, node richtext.Node) (string, error) {
	return f.render(ctx, node)
}
