package renderer

import (
	"strings"

	"github.com/contentkit/richhtml/pkg/errors"
	"github.com/contentkit/richhtml/pkg/richtext"
)

const (
	HyperlinkRendererName     = "hyperlink"
	HyperlinkRendererPriority = PriorityDefault
)

// HyperlinkRenderer wraps recursively rendered children in an anchor
// element. The link's URL and title become attributes; the children are
// the visible content.
type HyperlinkRenderer struct{}

// NewHyperlinkRenderer creates a HyperlinkRenderer.
func NewHyperlinkRenderer() *HyperlinkRenderer {
	return &HyperlinkRenderer{}
}

// Name returns the unique name of this renderer
func (r *HyperlinkRenderer) Name() string {
	return HyperlinkRendererName
}

// Priority returns the resolution priority of this renderer
func (r *HyperlinkRenderer) Priority() int {
	return HyperlinkRendererPriority
}

// Matches reports whether node is a hyperlink
func (r *HyperlinkRenderer) Matches(node richtext.Node) bool {
	_, ok := node.(*richtext.Hyperlink)
	return ok
}

// Render emits the anchor element
func (r *HyperlinkRenderer) Render(ctx *Context, node richtext.Node) (string, error) {
	link, ok := node.(*richtext.Hyperlink)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidNode, "%s renderer got node of type %T", r.Name(), node)
	}

	inner, err := ctx.RenderChildren(link.Children)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(ctx.Escape(link.URL))
	b.WriteString(`" title="`)
	b.WriteString(ctx.Escape(link.Title))
	b.WriteString(`">`)
	b.WriteString(inner)
	b.WriteString("</a>")
	return b.String(), nil
}
