package renderer

import (
	"strings"

	"github.com/contentkit/richhtml/pkg/errors"
	"github.com/contentkit/richhtml/pkg/richtext"
)

const (
	AssetRendererName     = "asset"
	AssetRendererPriority = PriorityDefault
)

// AssetRenderer renders embedded asset blocks. Image assets (content type
// containing "image", case-insensitively) become img elements with the
// asset title as alt text; everything else, including assets with no
// content type at all, becomes a download link with the title as the
// visible text.
type AssetRenderer struct{}

// NewAssetRenderer creates an AssetRenderer.
func NewAssetRenderer() *AssetRenderer {
	return &AssetRenderer{}
}

// Name returns the unique name of this renderer
func (r *AssetRenderer) Name() string {
	return AssetRendererName
}

// Priority returns the resolution priority of this renderer
func (r *AssetRenderer) Priority() int {
	return AssetRendererPriority
}

// Matches reports whether node is an asset block
func (r *AssetRenderer) Matches(node richtext.Node) bool {
	_, ok := node.(*richtext.AssetBlock)
	return ok
}

// Render emits either an img element or a download link for the asset
func (r *AssetRenderer) Render(ctx *Context, node richtext.Node) (string, error) {
	block, ok := node.(*richtext.AssetBlock)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidNode, "%s renderer got node of type %T", r.Name(), node)
	}
	if block.Target == nil {
		return "", errors.New(errors.ErrInvalidNode, "asset block has no resolved target")
	}

	asset := block.Target
	var b strings.Builder

	if asset.File.IsImage() {
		b.WriteString(`<img src="`)
		b.WriteString(ctx.Escape(asset.File.URL))
		b.WriteString(`" alt="`)
		b.WriteString(ctx.Escape(asset.Title))
		b.WriteString(`"`)
		if ctx.Options().SelfClose {
			b.WriteString(" /")
		}
		b.WriteString(">")
		return b.String(), nil
	}

	b.WriteString(`<a href="`)
	b.WriteString(ctx.Escape(asset.File.URL))
	b.WriteString(`">`)
	b.WriteString(ctx.Escape(asset.Title))
	b.WriteString("</a>")
	return b.String(), nil
}
