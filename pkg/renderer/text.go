package renderer

import (
	"strings"

	"github.com/contentkit/richhtml/pkg/errors"
	"github.com/contentkit/richhtml/pkg/richtext"
)

const (
	TextRendererName     = "text"
	TextRendererPriority = PriorityDefault
)

// TextRenderer renders text runs, wrapping the value in one inline tag
// per mark. Tags open in mark sequence order and close in reverse order,
// so multiple simultaneous marks nest instead of crossing:
// bold+italic produces <strong><em>x</em></strong>.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Name returns the unique name of this renderer
func (r *TextRenderer) Name() string {
	return TextRendererName
}

// Priority returns the resolution priority of this renderer
func (r *TextRenderer) Priority() int {
	return TextRendererPriority
}

// Matches reports whether node is a text run
func (r *TextRenderer) Matches(node richtext.Node) bool {
	_, ok := node.(*richtext.Text)
	return ok
}

// Render emits the marked-up text run
func (r *TextRenderer) Render(ctx *Context, node richtext.Node) (string, error) {
	text, ok := node.(*richtext.Text)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidNode, "%s renderer got node of type %T", r.Name(), node)
	}

	var b strings.Builder
	for _, m := range text.Marks {
		b.WriteString("<")
		b.WriteString(markTag(m))
		b.WriteString(">")
	}
	b.WriteString(ctx.Escape(text.Value))
	for i := len(text.Marks) - 1; i >= 0; i-- {
		b.WriteString("</")
		b.WriteString(markTag(text.Marks[i]))
		b.WriteString(">")
	}
	return b.String(), nil
}

// markTag maps a mark kind to its inline element. Unrecognized kinds get
// a generic span rather than an error.
func markTag(m richtext.Mark) string {
	switch m.Kind {
	case richtext.MarkBold:
		return "strong"
	case richtext.MarkItalic:
		return "em"
	case richtext.MarkUnderline:
		return "u"
	default:
		return "span"
	}
}
