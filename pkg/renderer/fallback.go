package renderer

import (
	"github.com/contentkit/richhtml/pkg/logging"
	"github.com/contentkit/richhtml/pkg/richtext"
)

const (
	FallbackRendererName = "fallback"

	// FallbackRendererPriority is strictly the lowest precedence in the
	// registry. Any caller-registered renderer at PriorityDefault is
	// therefore reachable for nodes the built-ins don't claim; the
	// fallback only wins when nothing else matches at all.
	FallbackRendererPriority = PriorityFallback
)

// FallbackRenderer matches every node and renders it as the empty string.
// It guarantees Resolve always succeeds for a well-formed tree; the cost
// is that unrecognized node variants are silently dropped from the
// output. That skip-unknown-content policy is deliberate.
type FallbackRenderer struct{}

// NewFallbackRenderer creates a FallbackRenderer.
func NewFallbackRenderer() *FallbackRenderer {
	return &FallbackRenderer{}
}

// Name returns the unique name of this renderer
func (r *FallbackRenderer) Name() string {
	return FallbackRendererName
}

// Priority returns the resolution priority of this renderer
func (r *FallbackRenderer) Priority() int {
	return FallbackRendererPriority
}

// Matches accepts every node
func (r *FallbackRenderer) Matches(node richtext.Node) bool {
	return true
}

// Render drops the node, producing no output
func (r *FallbackRenderer) Render(ctx *Context, node richtext.Node) (string, error) {
	logger := logging.GetLogger("renderer.fallback")
	logger.Trace().Type("node", node).Msg("unrecognized node dropped")
	return "", nil
}
