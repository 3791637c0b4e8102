package renderer

import (
	"strings"

	"github.com/contentkit/richhtml/pkg/errors"
	"github.com/contentkit/richhtml/pkg/logging"
	"github.com/contentkit/richhtml/pkg/richtext"
)

// RenderDocument renders a document's top-level nodes in order and
// concatenates the fragments into the final HTML string. There is no
// per-node isolation: the first failing node aborts the whole render, so
// callers never receive partially valid HTML with silent gaps.
func (r *Registry) RenderDocument(doc *richtext.Document) (string, error) {
	logger := logging.GetLogger("renderer.walker")

	if doc == nil {
		return "", errors.New(errors.ErrInvalidNode, "cannot render a nil document")
	}

	ctx := &Context{registry: r, opts: r.opts}

	var b strings.Builder
	for i, node := range doc.Content {
		frag, err := ctx.Render(node)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrRender, "rendering top-level node %d", i)
		}
		b.WriteString(frag)
	}

	logger.Debug().
		Int("topLevelNodes", len(doc.Content)).
		Int("outputBytes", b.Len()).
		Msg("document rendered")

	return b.String(), nil
}

// RenderNode renders a single node subtree, resolving through the
// registry exactly as RenderDocument does.
func (r *Registry) RenderNode(node richtext.Node) (string, error) {
	ctx := &Context{registry: r, opts: r.opts}
	return ctx.Render(node)
}
