package renderer

import (
	"strings"

	"github.com/contentkit/richhtml/pkg/richtext"
)

// Context is handed to renderers during a walk. It carries the registry
// (so composite renderers can delegate children without knowing their
// variants) and the emission options.
type Context struct {
	registry *Registry
	opts     Options
}

// Options returns the emission options for this render.
func (c *Context) Options() Options {
	return c.opts
}

// Escape applies the configured escaping policy to a text or attribute
// value. Renderers must route every interpolated value through this.
func (c *Context) Escape(s string) string {
	return c.opts.escape(s)
}

// Render resolves and renders a single node.
func (c *Context) Render(node richtext.Node) (string, error) {
	rend, err := c.registry.Resolve(node)
	if err != nil {
		return "", err
	}
	return rend.Render(c, node)
}

// RenderChildren renders a child sequence in order and concatenates the
// fragments. A nil sequence is treated as empty: composite nodes without
// children render as an empty element rather than failing.
func (c *Context) RenderChildren(children []richtext.Node) (string, error) {
	if len(children) == 0 {
		return "", nil
	}
	var b strings.Builder
	for _, child := range children {
		frag, err := c.Render(child)
		if err != nil {
			return "", err
		}
		b.WriteString(frag)
	}
	return b.String(), nil
}
