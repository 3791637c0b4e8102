package renderer

import (
	"github.com/contentkit/richhtml/pkg/errors"
	"github.com/contentkit/richhtml/pkg/richtext"
)

const (
	ParagraphRendererName     = "paragraph"
	ParagraphRendererPriority = PriorityDefault
)

// ParagraphRenderer wraps recursively rendered children in a paragraph
// element. It never inspects child variants itself; children go back
// through the registry.
type ParagraphRenderer struct{}

// NewParagraphRenderer creates a ParagraphRenderer.
func NewParagraphRenderer() *ParagraphRenderer {
	return &ParagraphRenderer{}
}

// Name returns the unique name of this renderer
func (r *ParagraphRenderer) Name() string {
	return ParagraphRendererName
}

// Priority returns the resolution priority of this renderer
func (r *ParagraphRenderer) Priority() int {
	return ParagraphRendererPriority
}

// Matches reports whether node is a paragraph
func (r *ParagraphRenderer) Matches(node richtext.Node) bool {
	_, ok := node.(*richtext.Paragraph)
	return ok
}

// Render emits the paragraph element
func (r *ParagraphRenderer) Render(ctx *Context, node richtext.Node) (string, error) {
	para, ok := node.(*richtext.Paragraph)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidNode, "%s renderer got node of type %T", r.Name(), node)
	}

	inner, err := ctx.RenderChildren(para.Children)
	if err != nil {
		return "", err
	}
	return "<p>" + inner + "</p>", nil
}
