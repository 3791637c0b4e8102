package renderer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentkit/richhtml/pkg/renderer"
	"github.com/contentkit/richhtml/pkg/richtext"
	"github.com/contentkit/richhtml/pkg/testutil"
)

func TestTextRenderer_Marks(t *testing.T) {
	reg := renderer.New(renderer.DefaultOptions())

	tests := []struct {
		name string
		node richtext.Node
		want string
	}{
		{
			name: "no marks",
			node: testutil.Txt("plain"),
			want: "plain",
		},
		{
			name: "bold",
			node: testutil.Txt("x", richtext.MarkBold),
			want: "<strong>x</strong>",
		},
		{
			name: "italic",
			node: testutil.Txt("x", richtext.MarkItalic),
			want: "<em>x</em>",
		},
		{
			name: "underline",
			node: testutil.Txt("x", richtext.MarkUnderline),
			want: "<u>x</u>",
		},
		{
			name: "unrecognized mark becomes span",
			node: testutil.Txt("x", "highlight"),
			want: "<span>x</span>",
		},
		{
			name: "bold italic closes in reverse order",
			node: testutil.Txt("x", richtext.MarkBold, richtext.MarkItalic),
			want: "<strong><em>x</em></strong>",
		},
		{
			name: "three marks nest properly",
			node: testutil.Txt("x", richtext.MarkBold, richtext.MarkItalic, richtext.MarkUnderline),
			want: "<strong><em><u>x</u></em></strong>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := reg.RenderNode(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTextRenderer_Escaping(t *testing.T) {
	escaped := renderer.New(renderer.DefaultOptions())
	out, err := escaped.RenderNode(testutil.Txt(`<script>&"`))
	require.NoError(t, err)
	assert.Equal(t, "&lt;script&gt;&amp;&#34;", out)

	raw := renderer.New(renderer.Options{Escape: false})
	out, err = raw.RenderNode(testutil.Txt("<b>trusted</b>"))
	require.NoError(t, err)
	assert.Equal(t, "<b>trusted</b>", out)
}
