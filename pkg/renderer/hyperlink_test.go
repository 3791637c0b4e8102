package renderer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentkit/richhtml/pkg/renderer"
	"github.com/contentkit/richhtml/pkg/testutil"
)

func TestHyperlinkRenderer(t *testing.T) {
	reg := renderer.New(renderer.DefaultOptions())

	t.Run("url and title become attributes, children the content", func(t *testing.T) {
		out, err := reg.RenderNode(testutil.Link("https://x", "T", testutil.Txt("go")))
		require.NoError(t, err)
		assert.Equal(t, `<a href="https://x" title="T">go</a>`, out)
	})

	t.Run("attribute values are escaped", func(t *testing.T) {
		out, err := reg.RenderNode(testutil.Link(`https://x?a=1&b="2"`, `say "hi"`, testutil.Txt("go")))
		require.NoError(t, err)
		assert.Equal(t, `<a href="https://x?a=1&amp;b=&#34;2&#34;" title="say &#34;hi&#34;">go</a>`, out)
	})

	t.Run("no children renders empty anchor", func(t *testing.T) {
		out, err := reg.RenderNode(testutil.Link("https://x", "T"))
		require.NoError(t, err)
		assert.Equal(t, `<a href="https://x" title="T"></a>`, out)
	})
}
