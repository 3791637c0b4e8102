package renderer_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentkit/richhtml/pkg/errors"
	"github.com/contentkit/richhtml/pkg/renderer"
	"github.com/contentkit/richhtml/pkg/richtext"
	"github.com/contentkit/richhtml/pkg/testutil"
)

func TestRenderDocument_ConcatenatesTopLevelNodesInOrder(t *testing.T) {
	reg := renderer.New(renderer.DefaultOptions())

	doc := testutil.Doc(
		testutil.H(1, testutil.Txt("Title")),
		testutil.Para(testutil.Txt("First.")),
		testutil.Para(testutil.Txt("Second.")),
	)

	out, err := reg.RenderDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Title</h1><p>First.</p><p>Second.</p>", out)
}

func TestRenderDocument_IsPure(t *testing.T) {
	reg := renderer.New(renderer.DefaultOptions())

	doc := testutil.Doc(
		testutil.Para(testutil.Txt("same ", richtext.MarkBold), testutil.Txt("input")),
		testutil.AssetOf("Diagram", "https://x/d.png", "image/png"),
	)

	first, err := reg.RenderDocument(doc)
	require.NoError(t, err)
	second, err := reg.RenderDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderDocument_UnknownNodesDropSilently(t *testing.T) {
	reg := renderer.New(renderer.DefaultOptions())

	doc := testutil.Doc(
		testutil.Para(testutil.Txt("before")),
		&richtext.Unknown{NodeType: "table"},
		testutil.Para(testutil.Txt("after")),
	)

	out, err := reg.RenderDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, "<p>before</p><p>after</p>", out)
}

func TestRenderDocument_EmptyDocument(t *testing.T) {
	reg := renderer.New(renderer.DefaultOptions())

	out, err := reg.RenderDocument(testutil.Doc())
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderDocument_NilDocument(t *testing.T) {
	reg := renderer.New(renderer.DefaultOptions())

	_, err := reg.RenderDocument(nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidNode))
}

func TestRenderDocument_FirstErrorAbortsWholeRender(t *testing.T) {
	reg := renderer.New(renderer.DefaultOptions())

	doc := testutil.Doc(
		testutil.Para(testutil.Txt("fine")),
		testutil.H(9, testutil.Txt("broken")),
		testutil.Para(testutil.Txt("never reached")),
	)

	out, err := reg.RenderDocument(doc)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
	assert.Contains(t, err.Error(), "heading level 9")
}

// Mark nesting must be structurally well-formed, not just textually as
// expected: parse the rendered fragment as XML and check the element
// chain.
func TestRenderDocument_MarkNestingIsWellFormed(t *testing.T) {
	reg := renderer.New(renderer.DefaultOptions())

	doc := testutil.Doc(
		testutil.Para(testutil.Txt("x", richtext.MarkBold, richtext.MarkItalic, richtext.MarkUnderline)),
	)

	out, err := reg.RenderDocument(doc)
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromString(out), "rendered fragment must parse cleanly")

	p := parsed.SelectElement("p")
	require.NotNil(t, p)
	strong := p.SelectElement("strong")
	require.NotNil(t, strong)
	em := strong.SelectElement("em")
	require.NotNil(t, em)
	u := em.SelectElement("u")
	require.NotNil(t, u)
	assert.Equal(t, "x", u.Text())
}
