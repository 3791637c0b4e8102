package renderer

import (
	"strconv"

	"github.com/contentkit/richhtml/pkg/errors"
	"github.com/contentkit/richhtml/pkg/richtext"
)

const (
	HeadingRendererName     = "heading"
	HeadingRendererPriority = PriorityDefault
)

// HeadingRenderer wraps recursively rendered children in an h1..h6
// element matching the heading's level. A level outside 1..6 violates
// the caller contract and is rejected with a descriptive error rather
// than clamped.
type HeadingRenderer struct{}

// NewHeadingRenderer creates a HeadingRenderer.
func NewHeadingRenderer() *HeadingRenderer {
	return &HeadingRenderer{}
}

// Name returns the unique name of this renderer
func (r *HeadingRenderer) Name() string {
	return HeadingRendererName
}

// Priority returns the resolution priority of this renderer
func (r *HeadingRenderer) Priority() int {
	return HeadingRendererPriority
}

// Matches reports whether node is a heading
func (r *HeadingRenderer) Matches(node richtext.Node) bool {
	_, ok := node.(*richtext.Heading)
	return ok
}

// Render emits the heading element
func (r *HeadingRenderer) Render(ctx *Context, node richtext.Node) (string, error) {
	heading, ok := node.(*richtext.Heading)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidNode, "%s renderer got node of type %T", r.Name(), node)
	}
	if heading.Level < 1 || heading.Level > 6 {
		return "", errors.Newf(errors.ErrInvalidNode, "heading level %d out of range 1-6", heading.Level)
	}

	inner, err := ctx.RenderChildren(heading.Children)
	if err != nil {
		return "", err
	}
	tag := "h" + strconv.Itoa(heading.Level)
	return "<" + tag + ">" + inner + "</" + tag + ">", nil
}
