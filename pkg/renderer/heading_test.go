package renderer_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentkit/richhtml/pkg/errors"
	"github.com/contentkit/richhtml/pkg/renderer"
	"github.com/contentkit/richhtml/pkg/testutil"
)

func TestHeadingRenderer_Levels(t *testing.T) {
	reg := renderer.New(renderer.DefaultOptions())

	for level := 1; level <= 6; level++ {
		t.Run(fmt.Sprintf("level %d", level), func(t *testing.T) {
			out, err := reg.RenderNode(testutil.H(level, testutil.Txt("hi")))
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("<h%d>hi</h%d>", level, level), out)
		})
	}
}

func TestHeadingRenderer_OutOfRangeLevel(t *testing.T) {
	reg := renderer.New(renderer.DefaultOptions())

	for _, level := range []int{0, -1, 7, 100} {
		t.Run(fmt.Sprintf("level %d", level), func(t *testing.T) {
			_, err := reg.RenderNode(testutil.H(level, testutil.Txt("hi")))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidNode))
		})
	}
}

func TestHeadingRenderer_NilChildrenRendersEmptyElement(t *testing.T) {
	reg := renderer.New(renderer.DefaultOptions())

	out, err := reg.RenderNode(testutil.H(3))
	require.NoError(t, err)
	assert.Equal(t, "<h3></h3>", out)
}
